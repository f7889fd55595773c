package webhook

import (
	"context"
	"journal/pkg/payments"
	"journal/pkg/storage"
)

// Handler applies an event inside the transaction recording its delivery.
type Handler interface {
	HandleEvent(ctx context.Context, tx storage.AllStorage, event payments.Event) error
}

//go:generate mockgen -package mockwebhook -source=interface.go -destination=mock/mockwebhook.go *
type Dispatcher interface {
	// Dispatch verifies the payload and applies the event at most once.
	Dispatch(ctx context.Context, payload []byte, signature string) error
}

