// Package stripe provides a payments.Client backed by stripe-go.
package stripe

import (
	"context"
	"errors"
	"journal/pkg/payments"
	"journal/pkg/serrors"
	"net/http"
	"strings"
	"time"

	faster "github.com/go-faster/errors"
	stripego "github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/client"
	"go.uber.org/zap"
)

const defaultMaxNetworkRetries = 2

// Client talks to Stripe with a secret key and verifies webhooks with the
// endpoint signing secret. It is safe for concurrent use.
type Client struct {
	api           *client.API
	webhookSecret string

	httpClient *http.Client
	baseURL    string
	retries    int64
	log        stripego.LeveledLoggerInterface
}

// apiError maps a Stripe error to a semantic error where one fits.
func apiError(err error) error {
	var serr *stripego.Error
	if !errors.As(err, &serr) {
		return err
	}
	msg := serr.Msg
	if msg == "" {
		msg = string(serr.Type)
	}
	switch status := serr.HTTPStatusCode; {
	case status == http.StatusBadRequest:
		return serrors.With(serrors.ErrBadRequest, "stripe: %s", msg)
	case status == http.StatusPaymentRequired:
		return serrors.With(serrors.ErrBadRequest, "payment declined: %s", msg)
	case status == http.StatusNotFound:
		return serrors.With(serrors.ErrNotFound, "stripe: %s", msg)
	case status == http.StatusTooManyRequests:
		return serrors.With(serrors.ErrRateLimited, "stripe rate limited")
	case status >= http.StatusInternalServerError:
		return serrors.With(serrors.ErrUnavailable, "stripe unavailable (%d): %s", status, msg)
	}

	return faster.Wrapf(err, "stripe request failed (%d)", serr.HTTPStatusCode)
}

func params(ctx context.Context, metadata map[string]string) stripego.Params {
	p := stripego.Params{Context: ctx}
	for k, v := range metadata {
		p.AddMetadata(k, v)
	}

	return p
}

func optional(s string) *string {
	if s == "" {
		return nil
	}

	return stripego.String(s)
}

func unix(sec int64) time.Time {
	if sec == 0 {
		return time.Time{}
	}

	return time.Unix(sec, 0).UTC()
}

func (c *Client) CreateCustomer(ctx context.Context, email, name string, metadata map[string]string) (string, error) {
	cus, err := c.api.Customers.New(&stripego.CustomerParams{
		Params: params(ctx, metadata),
		Email:  optional(email),
		Name:   optional(name),
	})
	if err != nil {
		return "", faster.Wrap(apiError(err), "create customer")
	}

	return cus.ID, nil
}

func (c *Client) CreatePaymentIntent(ctx context.Context, p payments.PaymentIntentParams) (*payments.PaymentIntent, error) {
	pi, err := c.api.PaymentIntents.New(&stripego.PaymentIntentParams{
		Params:   params(ctx, p.Metadata),
		Amount:   stripego.Int64(p.Amount),
		Currency: stripego.String(strings.ToLower(p.Currency)),
		AutomaticPaymentMethods: &stripego.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripego.Bool(true),
		},
		Customer:      optional(p.CustomerID),
		Description:   optional(p.Description),
		TransferGroup: optional(p.TransferGroup),
	})
	if err != nil {
		return nil, faster.Wrap(apiError(err), "create payment intent")
	}

	return &payments.PaymentIntent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Status:       string(pi.Status),
	}, nil
}

func (c *Client) CreateSubscription(ctx context.Context, p payments.SubscriptionParams) (*payments.Subscription, error) {
	item := &stripego.SubscriptionItemsParams{}
	if p.PriceID != "" {
		item.Price = stripego.String(p.PriceID)
	} else {
		item.PriceData = &stripego.SubscriptionItemPriceDataParams{
			Product:    stripego.String(p.ProductID),
			Currency:   stripego.String(strings.ToLower(p.Currency)),
			UnitAmount: stripego.Int64(p.Amount),
			Recurring: &stripego.SubscriptionItemPriceDataRecurringParams{
				Interval: stripego.String(p.Interval),
			},
		}
	}

	sp := &stripego.SubscriptionParams{
		Params:          params(ctx, p.Metadata),
		Customer:        stripego.String(p.CustomerID),
		Items:           []*stripego.SubscriptionItemsParams{item},
		PaymentBehavior: stripego.String("default_incomplete"),
		PaymentSettings: &stripego.SubscriptionPaymentSettingsParams{
			SaveDefaultPaymentMethod: stripego.String("on_subscription"),
		},
	}
	sp.AddExpand("latest_invoice.payment_intent")

	sub, err := c.api.Subscriptions.New(sp)
	if err != nil {
		return nil, faster.Wrap(apiError(err), "create subscription")
	}

	res := &payments.Subscription{
		ID:               sub.ID,
		Status:           string(sub.Status),
		CurrentPeriodEnd: unix(sub.CurrentPeriodEnd),
	}
	if sub.LatestInvoice != nil && sub.LatestInvoice.PaymentIntent != nil {
		res.ClientSecret = sub.LatestInvoice.PaymentIntent.ClientSecret
	}

	return res, nil
}

func (c *Client) CancelSubscription(ctx context.Context, subscriptionID string) error {
	_, err := c.api.Subscriptions.Cancel(subscriptionID, &stripego.SubscriptionCancelParams{
		Params: stripego.Params{Context: ctx},
	})
	if err != nil {
		return faster.Wrap(apiError(err), "cancel subscription")
	}

	return nil
}

func (c *Client) CreateConnectedAccount(ctx context.Context, email, country string) (string, error) {
	acct, err := c.api.Accounts.New(&stripego.AccountParams{
		Params:  stripego.Params{Context: ctx},
		Type:    stripego.String(string(stripego.AccountTypeExpress)),
		Email:   optional(email),
		Country: optional(strings.ToUpper(country)),
		Capabilities: &stripego.AccountCapabilitiesParams{
			Transfers: &stripego.AccountCapabilitiesTransfersParams{Requested: stripego.Bool(true)},
		},
	})
	if err != nil {
		return "", faster.Wrap(apiError(err), "create connected account")
	}

	return acct.ID, nil
}

func (c *Client) CreateAccountLink(ctx context.Context, accountID, refreshURL, returnURL string) (*payments.AccountLink, error) {
	link, err := c.api.AccountLinks.New(&stripego.AccountLinkParams{
		Params:     stripego.Params{Context: ctx},
		Account:    stripego.String(accountID),
		RefreshURL: stripego.String(refreshURL),
		ReturnURL:  stripego.String(returnURL),
		Type:       stripego.String("account_onboarding"),
	})
	if err != nil {
		return nil, faster.Wrap(apiError(err), "create account link")
	}

	return &payments.AccountLink{URL: link.URL, ExpiresAt: unix(link.ExpiresAt)}, nil
}

func (c *Client) CreateTransfer(ctx context.Context, p payments.TransferParams) (string, error) {
	tp := &stripego.TransferParams{
		Params:        params(ctx, p.Metadata),
		Amount:        stripego.Int64(p.Amount),
		Currency:      stripego.String(strings.ToLower(p.Currency)),
		Destination:   stripego.String(p.Destination),
		TransferGroup: optional(p.TransferGroup),
	}
	if p.IdempotencyKey != "" {
		tp.SetIdempotencyKey(p.IdempotencyKey)
	}

	tr, err := c.api.Transfers.New(tp)
	if err != nil {
		return "", faster.Wrap(apiError(err), "create transfer")
	}

	return tr.ID, nil
}

var _ payments.Client = (*Client)(nil)

// Option customizes a Client.
type Option func(*Client)

// WithBaseURL points the client at another API host, e.g. stripe-mock.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithMaxNetworkRetries sets how often stripe-go retries failed requests.
func WithMaxNetworkRetries(n int64) Option {
	return func(c *Client) { c.retries = n }
}

// WithLogger routes stripe-go's own logging through zap.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.log = l.Sugar() }
}

// backendConfig returns a fresh config per backend since stripe-go fills in
// the default URL of the backend type in place.
func (c *Client) backendConfig(api bool) *stripego.BackendConfig {
	cfg := &stripego.BackendConfig{
		HTTPClient:        c.httpClient,
		LeveledLogger:     c.log,
		MaxNetworkRetries: stripego.Int64(c.retries),
	}
	if api && c.baseURL != "" {
		cfg.URL = stripego.String(c.baseURL)
	}

	return cfg
}

// New constructs a Client.
func New(httpClient *http.Client, secretKey, webhookSecret string, opts ...Option) *Client {
	c := &Client{
		webhookSecret: webhookSecret,
		httpClient:    httpClient,
		retries:       defaultMaxNetworkRetries,
		log:           &stripego.LeveledLogger{Level: stripego.LevelError},
	}
	for _, opt := range opts {
		opt(c)
	}

	backends := &stripego.Backends{
		API:     stripego.GetBackendWithConfig(stripego.APIBackend, c.backendConfig(true)),
		Connect: stripego.GetBackendWithConfig(stripego.ConnectBackend, c.backendConfig(false)),
		Uploads: stripego.GetBackendWithConfig(stripego.UploadsBackend, c.backendConfig(false)),
	}
	c.api = client.New(secretKey, backends)

	return c
}
