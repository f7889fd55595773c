// Package worker runs the background side effects enqueued by the services.
package worker

import (
	"context"
	"fmt"
	"journal/internal/config"
	"journal/internal/events"
	"journal/internal/membership"
	"journal/pkg/logger"
	"journal/pkg/mailer"
	"journal/pkg/payments"
	"journal/pkg/storage"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"go.uber.org/zap/exp/zapslog"
)

// Options configure the River client.
type Options struct {
	Concurrency int
	MaxAttempts int
	FanoutBatch int
	// ExpireInterval is how often incomplete memberships are expired.
	ExpireInterval time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Concurrency:    cfg.Worker.Concurrency,
		MaxAttempts:    cfg.Worker.MaxAttempts,
		FanoutBatch:    cfg.Worker.FanoutBatch,
		ExpireInterval: time.Hour,
	}
}

type Deps struct {
	Storage    storage.Storage
	Mailer     mailer.Mailer
	Payments   payments.Client
	Membership membership.Service
	Emitter    *events.Emitter
}

// Workers registers a worker for every job kind.
func Workers(deps Deps, options Options) *river.Workers {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewEmailWorker(deps.Mailer))
	river.AddWorker(workers, NewNotificationWorker(deps.Storage))
	river.AddWorker(workers, NewEntryFanoutWorker(deps.Storage, options.FanoutBatch))
	river.AddWorker(workers, NewPayoutWorker(deps.Storage, deps.Payments, deps.Emitter))
	river.AddWorker(workers, NewExpireMembershipsWorker(deps.Membership))

	return workers
}

func periodicJobs(options Options) []*river.PeriodicJob {
	interval := options.ExpireInterval
	if interval <= 0 {
		interval = time.Hour
	}

	return []*river.PeriodicJob{
		river.NewPeriodicJob(
			river.PeriodicInterval(interval),
			func() (river.JobArgs, *river.InsertOpts) { return events.ExpireMembershipsJob{}, nil },
			&river.PeriodicJobOpts{RunOnStart: true},
		),
	}
}

func Start(ctx context.Context, dbPool *pgxpool.Pool, deps Deps, options Options) (*river.Client[pgx.Tx], error) {
	if options.Concurrency <= 0 {
		options.Concurrency = 10
	}

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: options.Concurrency},
		},
		Workers:      Workers(deps, options),
		PeriodicJobs: periodicJobs(options),
		MaxAttempts:  options.MaxAttempts,
		Logger:       slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
