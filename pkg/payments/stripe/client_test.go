package stripe_test

import (
	"context"
	"errors"
	"io"
	"journal/pkg/payments"
	"journal/pkg/payments/stripe"
	"journal/pkg/serrors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

const (
	testKey    = "sk_test_123"
	testSecret = "whsec_test"
)

func newTestClient(fn rtFunc) *stripe.Client {
	return stripe.New(&http.Client{Transport: fn}, testKey, testSecret, stripe.WithMaxNetworkRetries(0))
}

func jsonResp(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": {"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func requireForm(t *testing.T, r *http.Request) {
	t.Helper()
	require.Equal(t, "Bearer "+testKey, r.Header.Get("Authorization"))
	require.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
	require.NotEmpty(t, r.Header.Get("Stripe-Version"))
	require.NoError(t, r.ParseForm())
}

func TestClient_CreatePaymentIntent(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/payment_intents", r.URL.Path)
		requireForm(t, r)
		require.Equal(t, "2500", r.PostForm.Get("amount"))
		require.Equal(t, "usd", r.PostForm.Get("currency"))
		require.Equal(t, "explorer_1", r.PostForm.Get("transfer_group"))
		require.Equal(t, "spn_1", r.PostForm.Get("metadata[sponsorship_id]"))

		return jsonResp(http.StatusOK, `{"id":"pi_1","client_secret":"pi_1_secret","status":"requires_payment_method"}`), nil
	})

	pi, err := c.CreatePaymentIntent(context.Background(), payments.PaymentIntentParams{
		Amount:        2500,
		Currency:      "USD",
		TransferGroup: "explorer_1",
		Metadata:      map[string]string{"sponsorship_id": "spn_1"},
	})
	require.NoError(t, err)
	require.Equal(t, "pi_1", pi.ID)
	require.Equal(t, "pi_1_secret", pi.ClientSecret)
}

func TestClient_CreateSubscription(t *testing.T) {
	t.Run("inline price", func(t *testing.T) {
		c := newTestClient(func(r *http.Request) (*http.Response, error) {
			require.Equal(t, "/v1/subscriptions", r.URL.Path)
			requireForm(t, r)
			require.Equal(t, "cus_1", r.PostForm.Get("customer"))
			require.Equal(t, "prod_sponsor", r.PostForm.Get("items[0][price_data][product]"))
			require.Equal(t, "500", r.PostForm.Get("items[0][price_data][unit_amount]"))
			require.Equal(t, "month", r.PostForm.Get("items[0][price_data][recurring][interval]"))
			require.Equal(t, "default_incomplete", r.PostForm.Get("payment_behavior"))

			return jsonResp(http.StatusOK, `{
				"id":"sub_1","status":"incomplete","current_period_end":1767225600,
				"latest_invoice":{"payment_intent":{"client_secret":"pi_sub_secret"}}
			}`), nil
		})

		sub, err := c.CreateSubscription(context.Background(), payments.SubscriptionParams{
			CustomerID: "cus_1",
			ProductID:  "prod_sponsor",
			Amount:     500,
			Currency:   "usd",
			Interval:   "month",
		})
		require.NoError(t, err)
		require.Equal(t, "sub_1", sub.ID)
		require.Equal(t, "pi_sub_secret", sub.ClientSecret)
		require.True(t, sub.CurrentPeriodEnd.Equal(time.Unix(1767225600, 0)))
	})

	t.Run("fixed price", func(t *testing.T) {
		c := newTestClient(func(r *http.Request) (*http.Response, error) {
			requireForm(t, r)
			require.Equal(t, "price_pro_monthly", r.PostForm.Get("items[0][price]"))
			require.Empty(t, r.PostForm.Get("items[0][price_data][product]"))

			return jsonResp(http.StatusOK, `{"id":"sub_2","status":"incomplete"}`), nil
		})

		sub, err := c.CreateSubscription(context.Background(), payments.SubscriptionParams{CustomerID: "cus_1", PriceID: "price_pro_monthly"})
		require.NoError(t, err)
		require.True(t, sub.CurrentPeriodEnd.IsZero())
	})
}

func TestClient_CancelSubscription(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/v1/subscriptions/sub_1", r.URL.Path)

		return jsonResp(http.StatusOK, `{"id":"sub_1","status":"canceled"}`), nil
	})

	require.NoError(t, c.CancelSubscription(context.Background(), "sub_1"))
}

func TestClient_Connect(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		requireForm(t, r)
		switch r.URL.Path {
		case "/v1/accounts":
			require.Equal(t, "express", r.PostForm.Get("type"))
			require.Equal(t, "US", r.PostForm.Get("country"))

			return jsonResp(http.StatusOK, `{"id":"acct_1"}`), nil
		case "/v1/account_links":
			require.Equal(t, "acct_1", r.PostForm.Get("account"))
			require.Equal(t, "account_onboarding", r.PostForm.Get("type"))

			return jsonResp(http.StatusOK, `{"url":"https://connect.stripe.com/setup/x","expires_at":1767225600}`), nil
		}
		t.Fatalf("unexpected path %s", r.URL.Path)

		return nil, nil
	})

	acct, err := c.CreateConnectedAccount(context.Background(), "a@example.com", "us")
	require.NoError(t, err)
	require.Equal(t, "acct_1", acct)

	link, err := c.CreateAccountLink(context.Background(), acct, "https://app/refresh", "https://app/return")
	require.NoError(t, err)
	require.Equal(t, "https://connect.stripe.com/setup/x", link.URL)
}

func TestClient_CreateTransfer(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, "/v1/transfers", r.URL.Path)
		require.Equal(t, "payout_1", r.Header.Get("Idempotency-Key"))
		requireForm(t, r)
		require.Equal(t, "acct_1", r.PostForm.Get("destination"))

		return jsonResp(http.StatusOK, `{"id":"tr_1"}`), nil
	})

	id, err := c.CreateTransfer(context.Background(), payments.TransferParams{
		Amount:         1000,
		Currency:       "usd",
		Destination:    "acct_1",
		IdempotencyKey: "payout_1",
	})
	require.NoError(t, err)
	require.Equal(t, "tr_1", id)
}

func TestClient_errors(t *testing.T) {
	cases := []struct {
		status int
		kind   serrors.Kind
	}{
		{http.StatusPaymentRequired, serrors.ErrBadRequest},
		{http.StatusNotFound, serrors.ErrNotFound},
		{http.StatusTooManyRequests, serrors.ErrRateLimited},
		{http.StatusBadGateway, serrors.ErrUnavailable},
	}
	for _, tc := range cases {
		c := newTestClient(func(*http.Request) (*http.Response, error) {
			return jsonResp(tc.status, `{"error":{"type":"card_error","message":"Your card was declined."}}`), nil
		})
		_, err := c.CreateCustomer(context.Background(), "a@example.com", "A", nil)
		require.ErrorIs(t, err, tc.kind, "status %d", tc.status)
	}

	c := newTestClient(func(*http.Request) (*http.Response, error) {
		return jsonResp(http.StatusBadRequest, `{"error":{"type":"invalid_request_error","message":"Amount must be no more than $999,999.99"}}`), nil
	})
	_, err := c.CreatePaymentIntent(context.Background(), payments.PaymentIntentParams{Amount: 100_000_000, Currency: "usd"})
	require.ErrorIs(t, err, serrors.ErrBadRequest)
	require.ErrorContains(t, err, "no more than")

	c = newTestClient(func(*http.Request) (*http.Response, error) {
		return jsonResp(http.StatusConflict, `{"error":{"type":"idempotency_error","message":"Keys for idempotent requests can only be used with the same parameters"}}`), nil
	})
	_, err = c.CreateCustomer(context.Background(), "", "", nil)
	require.Error(t, err)
	kind, _ := serrors.KindOf(err)
	require.Equal(t, serrors.ErrInternal, kind)

	c = newTestClient(func(*http.Request) (*http.Response, error) {
		return nil, errors.New("connection reset")
	})
	_, err = c.CreateCustomer(context.Background(), "", "", nil)
	require.ErrorContains(t, err, "connection reset")
}
