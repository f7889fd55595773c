// Package metrics holds the service's Prometheus collectors and the
// OpenTelemetry domain counters.
package metrics

import (
	"context"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

//nolint: gochecknoglobals
var requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "journal_http_request_duration_seconds",
	Help:    "Latency of HTTP requests by route, method and status code",
	Buckets: DefaultBuckets,
}, []string{"route", "method", "status"})

// ObserveRequest records the latency of one HTTP request.
func ObserveRequest(route, method, status string, d time.Duration) {
	requestDuration.WithLabelValues(route, method, status).Observe(d.Seconds())
}

type counters struct {
	sponsorshipsConfirmed metric.Int64Counter
	payoutsRequested      metric.Int64Counter
	emailsSent            metric.Int64Counter
}

//nolint: gochecknoglobals
var (
	once sync.Once
	c    counters
)

// domain lazily creates the counters on the global meter provider. Counters
// created before the provider is installed delegate to it once it is.
func domain() *counters {
	once.Do(func() {
		meter := otel.Meter("journal")
		c.sponsorshipsConfirmed, _ = meter.Int64Counter("journal.sponsorships.confirmed",
			metric.WithDescription("Sponsorship charges confirmed by the payment provider"))
		c.payoutsRequested, _ = meter.Int64Counter("journal.payouts.requested",
			metric.WithDescription("Payouts requested by explorers"))
		c.emailsSent, _ = meter.Int64Counter("journal.emails.sent",
			metric.WithDescription("Transactional emails sent"))
	})

	return &c
}

func SponsorshipConfirmed(ctx context.Context, sponsorshipType string) {
	if ctr := domain().sponsorshipsConfirmed; ctr != nil {
		ctr.Add(ctx, 1, metric.WithAttributes(attribute.String("type", sponsorshipType)))
	}
}

func PayoutRequested(ctx context.Context) {
	if ctr := domain().payoutsRequested; ctr != nil {
		ctr.Add(ctx, 1)
	}
}

func EmailSent(ctx context.Context, template string) {
	if ctr := domain().emailsSent; ctr != nil {
		ctr.Add(ctx, 1, metric.WithAttributes(attribute.String("template", template)))
	}
}
