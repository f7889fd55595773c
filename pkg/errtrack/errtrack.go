// Package errtrack reports server errors and panics to Sentry. Until Init
// is called with a DSN every function is a no-op.
package errtrack

import (
	"context"
	"fmt"
	"journal/pkg/logger"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
	"go.uber.org/zap"
)

type Options struct {
	DSN         string
	Environment string
	Release     string
	SampleRate  float64
}

// Init configures the global Sentry client. An empty DSN disables reporting.
func Init(options Options) error {
	if options.DSN == "" {
		return nil
	}
	if options.SampleRate <= 0 {
		options.SampleRate = 1
	}
	err := sentry.Init(sentry.ClientOptions{
		Dsn:              options.DSN,
		Environment:      options.Environment,
		Release:          options.Release,
		SampleRate:       options.SampleRate,
		AttachStacktrace: true,
	})
	if err != nil {
		return fmt.Errorf("could not init sentry: %w", err)
	}

	return nil
}

// Flush waits up to timeout for buffered events to be sent.
func Flush(timeout time.Duration) {
	sentry.Flush(timeout)
}

type hubKey struct{}

// WithRequest returns a context carrying a hub scoped to r.
func WithRequest(ctx context.Context, r *http.Request) context.Context {
	hub := sentry.CurrentHub().Clone()
	hub.Scope().SetRequest(r)

	return context.WithValue(ctx, hubKey{}, hub)
}

// SetUser tags future events of ctx with the user.
func SetUser(ctx context.Context, id, username string) {
	hub(ctx).Scope().SetUser(sentry.User{ID: id, Username: username})
}

func hub(ctx context.Context) *sentry.Hub {
	if h, _ := ctx.Value(hubKey{}).(*sentry.Hub); h != nil {
		return h
	}

	return sentry.CurrentHub()
}

// Capture reports err with optional tags.
func Capture(ctx context.Context, err error, tags map[string]string) {
	if err == nil {
		return
	}
	h := hub(ctx)
	if h.Client() == nil {
		return
	}
	h.WithScope(func(scope *sentry.Scope) {
		scope.SetTags(tags)
		if id := h.CaptureException(err); id != nil {
			logger.Debug(ctx, "error reported", zap.String("eventID", string(*id)))
		}
	})
}

// CapturePanic reports a recovered panic value.
func CapturePanic(ctx context.Context, recovered any) {
	h := hub(ctx)
	if h.Client() == nil {
		return
	}
	h.Recover(recovered)
}
