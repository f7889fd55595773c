// Package webhook verifies payment provider deliveries and routes each event
// to the services owning the affected objects.
package webhook

import (
	"context"
	"fmt"
	"journal/pkg/logger"
	"journal/pkg/payments"
	"journal/pkg/serrors"
	"journal/pkg/storage"

	"go.uber.org/zap"
)

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(ctx context.Context, tx storage.AllStorage, event payments.Event) error

func (f HandlerFunc) HandleEvent(ctx context.Context, tx storage.AllStorage, event payments.Event) error {
	return f(ctx, tx, event)
}

type dispatcher struct {
	storage  storage.Storage
	payments payments.Client
	handlers []Handler
}

// Dispatch records the event and runs every handler in one transaction. A
// failing handler rolls the record back so the provider's retry is processed
// again.
func (d *dispatcher) Dispatch(ctx context.Context, payload []byte, signature string) error {
	event, err := d.payments.ParseWebhook(payload, signature)
	if err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid webhook")
	}
	ctx = logger.WithFields(ctx, zap.String("eventID", event.ID), zap.String("eventType", event.Type))

	return d.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		recorded, err := tx.RecordWebhookEvent(ctx, event.ID, event.Type)
		if err != nil {
			return fmt.Errorf("could not record webhook event: %w", err)
		}
		if !recorded {
			logger.Debug(ctx, "duplicate webhook event skipped")

			return nil
		}

		for _, h := range d.handlers {
			if err := h.HandleEvent(ctx, tx, *event); err != nil {
				return fmt.Errorf("could not handle %s: %w", event.Type, err)
			}
		}
		logger.Info(ctx, "webhook event processed")

		return nil
	})
}

func New(st storage.Storage, client payments.Client, handlers ...Handler) Dispatcher {
	return &dispatcher{storage: st, payments: client, handlers: handlers}
}
