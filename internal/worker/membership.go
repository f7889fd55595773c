package worker

import (
	"context"
	"fmt"
	"journal/internal/events"
	"journal/internal/membership"
	"journal/pkg/logger"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// ExpireMembershipsWorker cancels memberships whose first invoice was never paid.
type ExpireMembershipsWorker struct {
	river.WorkerDefaults[events.ExpireMembershipsJob]

	membership membership.Service
}

func NewExpireMembershipsWorker(svc membership.Service) *ExpireMembershipsWorker {
	return &ExpireMembershipsWorker{membership: svc}
}

func (w *ExpireMembershipsWorker) Work(ctx context.Context, _ *river.Job[events.ExpireMembershipsJob]) error {
	n, err := w.membership.ExpireIncomplete(ctx)
	if err != nil {
		return fmt.Errorf("could not expire memberships: %w", err)
	}
	if n > 0 {
		logger.Info(ctx, "incomplete memberships expired", zap.Int64("count", n))
	}

	return nil
}
