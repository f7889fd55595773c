package worker

import (
	"context"
	"fmt"
	"journal/internal/events"
	"journal/pkg/domain"
	"journal/pkg/logger"
	"journal/pkg/storage"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

const defaultFanoutBatch = 500

// NotificationWorker stores one in-app notification per job.
type NotificationWorker struct {
	river.WorkerDefaults[events.NotificationJob]

	storage storage.Storage
}

func NewNotificationWorker(st storage.Storage) *NotificationWorker {
	return &NotificationWorker{storage: st}
}

func (w *NotificationWorker) Work(ctx context.Context, job *river.Job[events.NotificationJob]) error {
	args := job.Args
	if args.ActorID != nil && *args.ActorID == args.UserID {
		return nil
	}

	if _, err := w.storage.CreateNotifications(ctx, []domain.Notification{{
		UserID:        args.UserID,
		ActorID:       args.ActorID,
		Kind:          args.Type,
		EntryID:       args.EntryID,
		SponsorshipID: args.SponsorshipID,
	}}); err != nil {
		return fmt.Errorf("could not store notification: %w", err)
	}

	return nil
}

// EntryFanoutWorker notifies the followers of an entry's author. Every batch
// is written in one transaction so a retried job never notifies twice.
type EntryFanoutWorker struct {
	river.WorkerDefaults[events.EntryFanoutJob]

	storage storage.Storage
	batch   int
}

func NewEntryFanoutWorker(st storage.Storage, batch int) *EntryFanoutWorker {
	if batch <= 0 {
		batch = defaultFanoutBatch
	}

	return &EntryFanoutWorker{storage: st, batch: batch}
}

func (w *EntryFanoutWorker) Work(ctx context.Context, job *river.Job[events.EntryFanoutJob]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID), zap.Stringer("entryID", job.Args.EntryID))

	entry, err := w.storage.EntryByID(ctx, job.Args.EntryID)
	if err != nil {
		return fmt.Errorf("could not get entry: %w", err)
	}
	if entry == nil || !entry.IsPublished() {
		logger.Debug(ctx, "entry no longer published, fan out skipped")

		return nil
	}

	followers, err := w.storage.FollowerIDs(ctx, entry.AuthorID)
	if err != nil {
		return fmt.Errorf("could not get followers: %w", err)
	}
	if len(followers) == 0 {
		return nil
	}

	err = w.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		for start := 0; start < len(followers); start += w.batch {
			end := min(start+w.batch, len(followers))
			batch := make([]domain.Notification, 0, end-start)
			for _, id := range followers[start:end] {
				batch = append(batch, domain.Notification{
					UserID:  id,
					ActorID: &entry.AuthorID,
					Kind:    domain.NotificationEntry,
					EntryID: &entry.ID,
				})
			}
			if _, err := tx.CreateNotifications(ctx, batch); err != nil {
				return fmt.Errorf("could not store notifications: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return err
	}
	logger.Info(ctx, "entry fanned out", zap.Int("followers", len(followers)))

	return nil
}
