package worker

import (
	"context"
	"errors"
	"fmt"
	"journal/internal/events"
	"journal/pkg/logger"
	"journal/pkg/mailer"
	"journal/pkg/metrics"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// EmailWorker renders and sends one templated email per job.
type EmailWorker struct {
	river.WorkerDefaults[events.EmailJob]

	mailer mailer.Mailer
}

func NewEmailWorker(m mailer.Mailer) *EmailWorker {
	return &EmailWorker{mailer: m}
}

func (w *EmailWorker) Work(ctx context.Context, job *river.Job[events.EmailJob]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID), zap.String("template", job.Args.Template))

	if err := w.mailer.Send(ctx, job.Args.To, job.Args.Template, job.Args.Data); err != nil {
		if errors.Is(err, mailer.ErrUnknownTemplate) {
			return river.JobCancel(err) //nolint: wrapcheck
		}
		logger.Error(ctx, "error sending email", zap.Error(err), zap.Int("attempt", job.Attempt))

		return fmt.Errorf("could not send email: %w", err)
	}
	metrics.EmailSent(ctx, job.Args.Template)

	return nil
}
