package stripe

import (
	"journal/pkg/payments"
	"journal/pkg/serrors"
	"time"

	"github.com/stripe/stripe-go/v81/webhook"
	"github.com/tidwall/gjson"
)

// WebhookTolerance is the maximum age of a signed webhook payload.
const WebhookTolerance = 5 * time.Minute

func (c *Client) ParseWebhook(payload []byte, signatureHeader string) (*payments.Event, error) {
	event, err := webhook.ConstructEventWithOptions(payload, signatureHeader, c.webhookSecret,
		webhook.ConstructEventOptions{
			Tolerance: WebhookTolerance,
			// Payloads are read field by field, so the endpoint version may differ.
			IgnoreAPIVersionMismatch: true,
		})
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid webhook")
	}
	if event.ID == "" || event.Type == "" || event.Data == nil {
		return nil, serrors.With(serrors.ErrBadRequest, "event without id, type or data")
	}

	obj := gjson.ParseBytes(event.Data.Raw)
	ev := &payments.Event{
		ID:             event.ID,
		Type:           string(event.Type),
		ObjectID:       obj.Get("id").String(),
		PayoutsEnabled: obj.Get("payouts_enabled").Bool(),
		FailureMessage: obj.Get("last_payment_error.message").String(),
	}

	switch obj.Get("object").String() {
	case "invoice":
		ev.SubscriptionID = obj.Get("subscription").String()
		ev.PeriodEnd = unix(obj.Get("lines.data.0.period.end").Int())
	case "subscription":
		ev.SubscriptionID = ev.ObjectID
		ev.PeriodEnd = unix(obj.Get("current_period_end").Int())
	}

	if md := obj.Get("metadata").Map(); len(md) > 0 {
		ev.Metadata = make(map[string]string, len(md))
		for k, v := range md {
			ev.Metadata[k] = v.String()
		}
	}

	return ev, nil
}
