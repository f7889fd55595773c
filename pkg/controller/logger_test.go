package controller_test

import (
	"journal/pkg/controller"
	"journal/pkg/logger"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetClientIP(t *testing.T) {
	cases := []struct {
		name   string
		header map[string]string
		remote string
		want   string
	}{
		{name: "x-forwarded-for", header: map[string]string{"X-Forwarded-For": "1.2.3.4, 5.6.7.8"}, want: "1.2.3.4"},
		{name: "x-real-ip", header: map[string]string{"X-Real-IP": "9.8.7.6"}, want: "9.8.7.6"},
		{name: "remote addr", remote: "10.0.0.1:12345", want: "10.0.0.1"},
		{name: "invalid remote addr", remote: "not-an-addr", want: "not-an-addr"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tc.header {
				req.Header.Set(k, v)
			}
			if tc.remote != "" {
				req.RemoteAddr = tc.remote
			}
			require.Equal(t, tc.want, controller.GetClientIP(req))
		})
	}
}

func TestTrustedProxies_ClientIP(t *testing.T) {
	proxies, err := controller.NewTrustedProxies([]string{"10.0.0.0/8", "127.0.0.1", ""})
	require.NoError(t, err)

	cases := []struct {
		name    string
		proxies *controller.TrustedProxies
		remote  string
		xff     string
		realIP  string
		want    string
	}{
		{name: "direct client ignores headers", proxies: proxies, remote: "203.0.113.7:1", xff: "1.2.3.4", realIP: "5.6.7.8", want: "203.0.113.7"},
		{name: "nil trusts nobody", remote: "10.0.0.1:1", xff: "1.2.3.4", want: "10.0.0.1"},
		{name: "trusted proxy", proxies: proxies, remote: "10.0.0.1:1", xff: "1.2.3.4", want: "1.2.3.4"},
		{name: "spoofed left hop", proxies: proxies, remote: "10.0.0.1:1", xff: "6.6.6.6, 1.2.3.4, 10.0.0.2", want: "1.2.3.4"},
		{name: "all hops trusted", proxies: proxies, remote: "127.0.0.1:1", xff: "10.0.0.3, 10.0.0.2", want: "10.0.0.3"},
		{name: "garbage hop", proxies: proxies, remote: "10.0.0.1:1", xff: "not-an-ip", want: "10.0.0.1"},
		{name: "x-real-ip", proxies: proxies, remote: "127.0.0.1:1", realIP: "9.8.7.6", want: "9.8.7.6"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tc.remote
			if tc.xff != "" {
				req.Header.Set("X-Forwarded-For", tc.xff)
			}
			if tc.realIP != "" {
				req.Header.Set("X-Real-IP", tc.realIP)
			}
			require.Equal(t, tc.want, tc.proxies.ClientIP(req))
		})
	}

	_, err = controller.NewTrustedProxies([]string{"10.0.0.0/33"})
	require.Error(t, err)
	_, err = controller.NewTrustedProxies([]string{"proxy.local"})
	require.Error(t, err)
}

func TestWithLogger_SetsRequestIDAndPassesStatus(t *testing.T) {
	require.NoError(t, logger.Setup(logger.DevelopmentEnvironment, "debug"))

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Echo-Request-Id", controller.RequestID(r.Context()))
		w.WriteHeader(http.StatusCreated)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-Id", "abc-123")
	rec := httptest.NewRecorder()
	controller.WithLogger(next).ServeHTTP(rec, req)
	res := rec.Result()
	require.Equal(t, http.StatusCreated, res.StatusCode)
	require.Equal(t, "abc-123", res.Header.Get("X-Echo-Request-Id"))
	require.Equal(t, "abc-123", res.Header.Get("X-Request-Id"))

	// without a header an ID is generated
	rec = httptest.NewRecorder()
	controller.WithLogger(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.NotEmpty(t, rec.Result().Header.Get("X-Echo-Request-Id"))
}
