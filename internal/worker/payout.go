package worker

import (
	"context"
	"errors"
	"fmt"
	"journal/internal/events"
	"journal/pkg/domain"
	"journal/pkg/logger"
	"journal/pkg/mailer"
	"journal/pkg/money"
	"journal/pkg/payments"
	"journal/pkg/serrors"
	"journal/pkg/storage"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// PayoutWorker transfers a pending payout to the explorer's connected account.
// The payout ID is the idempotency key, so a transfer retried after a lost
// response is not sent twice. Declined transfers and the last failed attempt
// mark the payout failed, which returns the amount to the available balance.
type PayoutWorker struct {
	river.WorkerDefaults[events.PayoutJob]

	storage  storage.Storage
	payments payments.Client
	emitter  *events.Emitter
}

func NewPayoutWorker(st storage.Storage, client payments.Client, emitter *events.Emitter) *PayoutWorker {
	return &PayoutWorker{storage: st, payments: client, emitter: emitter}
}

func (w *PayoutWorker) Work(ctx context.Context, job *river.Job[events.PayoutJob]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID), zap.Stringer("payoutID", job.Args.PayoutID))

	payout, err := w.storage.PayoutByID(ctx, job.Args.PayoutID)
	if err != nil {
		return fmt.Errorf("could not get payout: %w", err)
	}
	if payout == nil {
		return river.JobCancel(errors.New("payout not found")) //nolint: wrapcheck
	}
	if payout.Status != domain.PayoutPending {
		return nil
	}

	explorer, err := w.storage.UserByID(ctx, payout.ExplorerID)
	if err != nil {
		return fmt.Errorf("could not get explorer: %w", err)
	}
	if explorer == nil || explorer.StripeAccountID == "" {
		return w.fail(ctx, *payout, explorer, "no connected account")
	}

	transferID, err := w.payments.CreateTransfer(ctx, payments.TransferParams{
		Amount:         payout.Amount,
		Currency:       payout.Currency,
		Destination:    explorer.StripeAccountID,
		IdempotencyKey: "payout_" + payout.ID.String(),
		TransferGroup:  domain.TransferGroup(explorer.ID),
		Metadata:       map[string]string{"payout_id": payout.ID.String()},
	})
	if err != nil {
		logger.Error(ctx, "error transferring payout", zap.Error(err), zap.Int("attempt", job.Attempt))
		if errors.Is(err, serrors.ErrBadRequest) || job.Attempt >= job.MaxAttempts {
			return w.fail(ctx, *payout, explorer, err.Error())
		}

		return fmt.Errorf("could not transfer payout: %w", err)
	}

	return w.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		status := domain.PayoutPaid
		if _, err := tx.UpdatePayout(ctx, payout.ID, storage.PayoutUpdates{Status: &status, TransferID: &transferID}); err != nil {
			return fmt.Errorf("could not update payout: %w", err)
		}
		logger.Info(ctx, "payout transferred", zap.String("transferID", transferID))

		return w.tell(ctx, tx, *payout, *explorer, mailer.TemplatePayoutPaid, "")
	})
}

func (w *PayoutWorker) fail(ctx context.Context, payout domain.Payout, explorer *domain.User, reason string) error {
	return w.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		status := domain.PayoutFailed
		if _, err := tx.UpdatePayout(ctx, payout.ID, storage.PayoutUpdates{Status: &status, FailureReason: &reason}); err != nil {
			return fmt.Errorf("could not update payout: %w", err)
		}
		logger.Warn(ctx, "payout failed", zap.String("reason", reason))
		if explorer == nil {
			return nil
		}

		return w.tell(ctx, tx, payout, *explorer, mailer.TemplatePayoutFailed, reason)
	})
}

func (w *PayoutWorker) tell(ctx context.Context, tx storage.AllStorage, payout domain.Payout, explorer domain.User, template, reason string) error {
	if err := w.emitter.Notify(ctx, tx, domain.Notification{UserID: explorer.ID, Kind: domain.NotificationPayout}); err != nil {
		return err
	}

	return w.emitter.Email(ctx, tx, explorer.Email, template, map[string]string{
		"username": explorer.Username,
		"amount":   money.Format(payout.Amount, payout.Currency),
		"reason":   reason,
	})
}
