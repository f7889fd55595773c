package controller_test

import (
	"fmt"
	"journal/pkg/controller"
	"journal/pkg/logger"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

const firefox = "Mozilla/5.0 (X11; Linux x86_64; rv:128.0) Gecko/20100101 Firefox/128.0"

func TestWithRecovery(t *testing.T) {
	require.NoError(t, logger.Setup(logger.DevelopmentEnvironment, "debug"))

	h := controller.WithRecovery(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.JSONEq(t, `{"code":"INTERNAL","message":"internal server error"}`, rec.Body.String())
}

func TestIsBot(t *testing.T) {
	require.True(t, controller.IsBot(""))
	require.True(t, controller.IsBot("curl/8.5.0"))
	require.True(t, controller.IsBot("python-requests/2.31.0"))
	require.True(t, controller.IsBot("Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)"))
	require.False(t, controller.IsBot(firefox))
}

func TestWithBotGuard(t *testing.T) {
	h := controller.WithBotGuard([]string{"journal-mobile"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	serve := func(ua, client string) int {
		req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", nil)
		req.Header.Set("User-Agent", ua)
		if client != "" {
			req.Header.Set("X-Client", client)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		return rec.Code
	}

	require.Equal(t, http.StatusNoContent, serve(firefox, ""))
	require.Equal(t, http.StatusForbidden, serve("curl/8.5.0", ""))
	require.Equal(t, http.StatusNoContent, serve("okhttp/4.12.0", "journal-mobile"))
	require.Equal(t, http.StatusForbidden, serve("okhttp/4.12.0", "unknown"))
}

func TestRateLimiter(t *testing.T) {
	require.NoError(t, logger.Setup(logger.DevelopmentEnvironment, "debug"))

	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	rl := controller.NewRateLimiter(60, 2, time.Minute)
	rl.SetClock(func() time.Time { return now })

	h := rl.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	serve := func(ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", nil)
		req.RemoteAddr = ip + ":4000"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		return rec
	}

	require.Equal(t, http.StatusOK, serve("10.0.0.1").Code)
	require.Equal(t, http.StatusOK, serve("10.0.0.1").Code)
	limited := serve("10.0.0.1")
	require.Equal(t, http.StatusTooManyRequests, limited.Code)
	require.NotEmpty(t, limited.Header().Get("Retry-After"))
	require.True(t, strings.Contains(limited.Body.String(), "RATE_LIMITED"))

	// other clients have their own bucket
	require.Equal(t, http.StatusOK, serve("10.0.0.2").Code)

	// one token refills per second
	now = now.Add(time.Second)
	require.Equal(t, http.StatusOK, serve("10.0.0.1").Code)

	require.Equal(t, 2, rl.Len())
	now = now.Add(2 * time.Minute)
	rl.Cleanup()
	require.Equal(t, 0, rl.Len())
}

func TestRateLimiter_ignoresSpoofedForwardedFor(t *testing.T) {
	require.NoError(t, logger.Setup(logger.DevelopmentEnvironment, "debug"))

	proxies, err := controller.NewTrustedProxies([]string{"10.0.0.0/8"})
	require.NoError(t, err)
	rl := controller.NewRateLimiter(1, 1, time.Minute).WithTrustedProxies(proxies)
	h := rl.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	serve := func(remote, xff string) int {
		req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", nil)
		req.RemoteAddr = remote + ":4000"
		req.Header.Set("X-Forwarded-For", xff)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		return rec.Code
	}

	allowed := 0
	for i := range 50 {
		if serve("203.0.113.7", fmt.Sprintf("198.51.100.%d", i)) == http.StatusOK {
			allowed++
		}
	}
	require.Equal(t, 1, allowed)
	require.Equal(t, 1, rl.Len())

	// behind a trusted proxy each forwarded client gets its own bucket
	require.Equal(t, http.StatusOK, serve("10.1.2.3", "198.51.100.1"))
	require.Equal(t, http.StatusOK, serve("10.1.2.3", "198.51.100.2"))
	require.Equal(t, http.StatusTooManyRequests, serve("10.1.2.3", "198.51.100.1"))
}

func TestWithMetrics(t *testing.T) {
	r := chi.NewRouter()
	r.Use(controller.WithMetrics)
	r.Get("/v1/entries/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/entries/123", nil))
	require.Equal(t, http.StatusOK, rec.Code)
}
