package stripe_test

import (
	"journal/pkg/payments"
	"journal/pkg/serrors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v81/webhook"
)

func noHTTP(t *testing.T) rtFunc {
	return func(*http.Request) (*http.Response, error) {
		t.Fatal("unexpected request")

		return nil, nil
	}
}

func sign(secret string, payload []byte, ts time.Time) string {
	return webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   payload,
		Secret:    secret,
		Timestamp: ts,
	}).Header
}

func TestClient_ParseWebhook(t *testing.T) {
	c := newTestClient(noHTTP(t))
	now := time.Now()

	t.Run("payment intent", func(t *testing.T) {
		payload := []byte(`{"id":"evt_1","object":"event","type":"payment_intent.payment_failed","data":{"object":{
			"id":"pi_1","object":"payment_intent","metadata":{"sponsorship_id":"s1"},
			"last_payment_error":{"message":"card declined"}}}}`)

		ev, err := c.ParseWebhook(payload, sign(testSecret, payload, now))
		require.NoError(t, err)
		require.Equal(t, "evt_1", ev.ID)
		require.Equal(t, payments.EventPaymentFailed, ev.Type)
		require.Equal(t, "pi_1", ev.ObjectID)
		require.Equal(t, "card declined", ev.FailureMessage)
		require.Equal(t, "s1", ev.Metadata["sponsorship_id"])
	})

	t.Run("invoice", func(t *testing.T) {
		payload := []byte(`{"id":"evt_2","object":"event","type":"invoice.paid","data":{"object":{
			"id":"in_1","object":"invoice","subscription":"sub_1",
			"lines":{"data":[{"period":{"end":1767225600}}]}}}}`)

		ev, err := c.ParseWebhook(payload, sign(testSecret, payload, now.Add(-time.Minute)))
		require.NoError(t, err)
		require.Equal(t, "sub_1", ev.SubscriptionID)
		require.True(t, ev.PeriodEnd.Equal(time.Unix(1767225600, 0)))
	})

	t.Run("subscription", func(t *testing.T) {
		payload := []byte(`{"id":"evt_3","object":"event","type":"customer.subscription.deleted","data":{"object":{"id":"sub_9","object":"subscription"}}}`)

		ev, err := c.ParseWebhook(payload, sign(testSecret, payload, now))
		require.NoError(t, err)
		require.Equal(t, "sub_9", ev.SubscriptionID)
	})

	t.Run("account", func(t *testing.T) {
		payload := []byte(`{"id":"evt_4","object":"event","type":"account.updated","data":{"object":{"id":"acct_1","object":"account","payouts_enabled":true}}}`)

		ev, err := c.ParseWebhook(payload, sign(testSecret, payload, now))
		require.NoError(t, err)
		require.True(t, ev.PayoutsEnabled)
	})
}

func TestClient_ParseWebhook_rejects(t *testing.T) {
	c := newTestClient(noHTTP(t))
	now := time.Now()
	payload := []byte(`{"id":"evt_1","object":"event","type":"invoice.paid","data":{"object":{}}}`)

	cases := map[string]string{
		"empty header":   "",
		"no signature":   "t=1760000000",
		"wrong secret":   sign("whsec_other", payload, now),
		"too old":        sign(testSecret, payload, now.Add(-6*time.Minute)),
		"bad timestamp":  "t=abc,v1=00",
		"tampered input": sign(testSecret, []byte(`{}`), now),
	}
	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := c.ParseWebhook(payload, header)
			require.ErrorIs(t, err, serrors.ErrBadRequest)
		})
	}

	t.Run("no event id", func(t *testing.T) {
		body := []byte(`{"object":"event","type":"invoice.paid","data":{"object":{}}}`)
		_, err := c.ParseWebhook(body, sign(testSecret, body, now))
		require.ErrorIs(t, err, serrors.ErrBadRequest)
	})
}

func TestClient_ParseWebhook_multipleSignatures(t *testing.T) {
	c := newTestClient(noHTTP(t))
	payload := []byte(`{"id":"evt_1","object":"event","type":"invoice.paid","data":{"object":{}}}`)

	header := sign(testSecret, payload, time.Now()) + ",v1=deadbeef"
	_, err := c.ParseWebhook(payload, header)
	require.NoError(t, err)
}
