// Package payments defines the payment provider operations used for
// sponsorships, memberships and explorer payouts.
package payments

import (
	"context"
	"time"
)

// Event types handled by the services.
const (
	EventPaymentSucceeded    = "payment_intent.succeeded"
	EventPaymentFailed       = "payment_intent.payment_failed"
	EventInvoicePaid         = "invoice.paid"
	EventSubscriptionDeleted = "customer.subscription.deleted"
	EventAccountUpdated      = "account.updated"
)

// PaymentIntentParams describes a one-time charge collected by the platform.
type PaymentIntentParams struct {
	Amount      int64
	Currency    string
	CustomerID  string
	Description string
	// TransferGroup ties the charge to the explorer's later transfers.
	TransferGroup string
	Metadata      map[string]string
}

type PaymentIntent struct {
	ID           string
	ClientSecret string
	Status       string
}

// SubscriptionParams creates a subscription either for a fixed PriceID or,
// when PriceID is empty, for an inline price of Amount per Interval on
// ProductID.
type SubscriptionParams struct {
	CustomerID string
	PriceID    string
	ProductID  string
	Amount     int64
	Currency   string
	Interval   string
	Metadata   map[string]string
}

type Subscription struct {
	ID     string
	Status string
	// ClientSecret confirms the first invoice's payment on the client.
	ClientSecret     string
	CurrentPeriodEnd time.Time
}

type AccountLink struct {
	URL       string
	ExpiresAt time.Time
}

type TransferParams struct {
	Amount      int64
	Currency    string
	Destination string
	// IdempotencyKey makes retried transfers safe.
	IdempotencyKey string
	TransferGroup  string
	Metadata       map[string]string
}

// Event is a verified provider webhook event reduced to the fields the
// services act upon.
type Event struct {
	ID       string
	Type     string
	ObjectID string
	// SubscriptionID is the invoice's subscription for invoice events and
	// the object itself for subscription events.
	SubscriptionID string
	PeriodEnd      time.Time
	PayoutsEnabled bool
	FailureMessage string
	Metadata       map[string]string
}

// Client is the payment provider.
//
//go:generate mockgen -package mockpayments -source=interface.go -destination=mock/mockpayments.go *
type Client interface {
	// CreateCustomer returns the new customer ID.
	CreateCustomer(ctx context.Context, email, name string, metadata map[string]string) (string, error)
	CreatePaymentIntent(ctx context.Context, params PaymentIntentParams) (*PaymentIntent, error)
	CreateSubscription(ctx context.Context, params SubscriptionParams) (*Subscription, error)
	CancelSubscription(ctx context.Context, subscriptionID string) error
	// CreateConnectedAccount returns the new connected account ID.
	CreateConnectedAccount(ctx context.Context, email, country string) (string, error)
	CreateAccountLink(ctx context.Context, accountID, refreshURL, returnURL string) (*AccountLink, error)
	// CreateTransfer moves funds to a connected account and returns the transfer ID.
	CreateTransfer(ctx context.Context, params TransferParams) (string, error)
	// ParseWebhook verifies the signature header and decodes the event.
	ParseWebhook(payload []byte, signatureHeader string) (*Event, error)
}
