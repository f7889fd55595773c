package api_test

import (
	"context"
	"errors"
	"journal/internal/api"
	"journal/internal/api/handler/v1handler"
	"journal/pkg/logger"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	if err := logger.Setup(logger.DevelopmentEnvironment, "debug"); err != nil {
		panic(err)
	}
	m.Run()
}

// The otel exporter registers with the default prometheus registry, so the
// handler is built once for every case.
func TestHandler(t *testing.T) {
	var redisDown atomic.Bool
	h, err := api.NewHandler(api.Deps{
		HealthChecks: []api.HealthCheck{
			{Name: "postgres", Check: func(context.Context) error { return nil }},
			{Name: "redis", Check: func(context.Context) error {
				if redisDown.Load() {
					return errors.New("connection refused")
				}

				return nil
			}},
		},
	}, api.Options{
		V1:             v1handler.Options{CookieName: "journal_session", MaxBodyBytes: 1024},
		MetricsPath:    "/metrics",
		AllowedOrigins: []string{"https://journal.example.com"},
	})
	require.NoError(t, err)

	get := func(path string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("Origin", "https://journal.example.com")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		return rec
	}

	t.Run("healthz", func(t *testing.T) {
		rec := get("/healthz")
		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

		redisDown.Store(true)
		defer redisDown.Store(false)
		require.Equal(t, http.StatusServiceUnavailable, get("/healthz").Code)
	})

	t.Run("spec", func(t *testing.T) {
		rec := get("/specs/v1.yaml")
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "openapi: 3.0.3")
	})

	t.Run("metrics", func(t *testing.T) {
		require.Equal(t, http.StatusOK, get("/metrics").Code)
	})

	t.Run("v1 requires session", func(t *testing.T) {
		rec := get("/v1/me")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.NotEmpty(t, rec.Header().Get("X-Request-Id"))
		require.Equal(t, "https://journal.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
	})
}
