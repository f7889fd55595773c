package v1handler

import (
	"io"
	"journal/pkg/serrors"
	"net/http"
)

// stripeWebhook hands the raw, signed body to the dispatcher. Any error makes
// Stripe redeliver the event later.
func (h *Handler) stripeWebhook(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.options.MaxBodyBytes))
	if err != nil {
		WriteError(r.Context(), w, serrors.Wrap(serrors.ErrBadRequest, err, "could not read webhook body"))

		return
	}

	if err = h.Webhook.Dispatch(r.Context(), payload, r.Header.Get("Stripe-Signature")); err != nil {
		WriteError(r.Context(), w, err)

		return
	}

	noContent(w)
}
