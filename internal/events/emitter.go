package events

import (
	"context"
	"fmt"
	"journal/pkg/domain"
	"journal/pkg/logger"
	"journal/pkg/storage"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// Emitter enqueues side effect jobs. The storage handle is passed per call so
// callers inside a transaction emit through it.
type Emitter struct {
	maxAttempts int
}

func NewEmitter(maxAttempts int) *Emitter {
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}

	return &Emitter{maxAttempts: maxAttempts}
}

func (e *Emitter) opts(args river.JobArgs) *river.InsertOpts {
	opts := river.InsertOpts{}
	if withOpts, ok := args.(river.JobArgsWithInsertOpts); ok {
		opts = withOpts.InsertOpts()
	}
	opts.MaxAttempts = e.maxAttempts

	return &opts
}

func (e *Emitter) emit(ctx context.Context, jobs storage.JobStorage, args river.JobArgs) error {
	inserted, err := jobs.AddJob(ctx, args, e.opts(args))
	if err != nil {
		return fmt.Errorf("could not emit %s: %w", args.Kind(), err)
	}
	if !inserted {
		logger.Debug(ctx, "duplicate job skipped", zap.String("kind", args.Kind()))
	}

	return nil
}

// Email enqueues a templated email.
func (e *Emitter) Email(ctx context.Context, jobs storage.JobStorage, to, template string, data map[string]string) error {
	return e.emit(ctx, jobs, EmailJob{To: to, Template: template, Data: data})
}

// Notify enqueues an in-app notification for n.UserID.
func (e *Emitter) Notify(ctx context.Context, jobs storage.JobStorage, n domain.Notification) error {
	return e.emit(ctx, jobs, NotificationJob{
		UserID:        n.UserID,
		ActorID:       n.ActorID,
		Type:          n.Kind,
		EntryID:       n.EntryID,
		SponsorshipID: n.SponsorshipID,
	})
}

// EntryPublished enqueues the follower fan out of a published entry.
func (e *Emitter) EntryPublished(ctx context.Context, jobs storage.JobStorage, id domain.EntryID) error {
	return e.emit(ctx, jobs, EntryFanoutJob{EntryID: id})
}

// PayoutRequested enqueues the transfer of a pending payout.
func (e *Emitter) PayoutRequested(ctx context.Context, jobs storage.JobStorage, id domain.PayoutID) error {
	return e.emit(ctx, jobs, PayoutJob{PayoutID: id})
}
