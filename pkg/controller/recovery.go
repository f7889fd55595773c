package controller

import (
	"fmt"
	"journal/pkg/errtrack"
	"journal/pkg/logger"
	"net/http"
	"runtime/debug"

	"go.uber.org/zap"
)

// WithRecovery turns a panicking handler into a 500 response. The panic is
// logged with its stack and reported to the error tracker. Requests passing
// through carry an error tracking hub scoped to the request.
func WithRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := errtrack.WithRequest(r.Context(), r)

		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler { //nolint: errorlint
				panic(rec)
			}

			logger.Error(ctx, "panic while serving request",
				zap.String("panic", fmt.Sprint(rec)),
				zap.ByteString("stack", debug.Stack()),
			)
			errtrack.CapturePanic(ctx, rec)

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"code":"INTERNAL","message":"internal server error"}`))
		}()

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
