package v1handler

import "net/http"

type payoutRequest struct {
	Amount int64 `json:"amount" validate:"gt=0,lte=99999999"`
}

func (h *Handler) onboard(w http.ResponseWriter, r *http.Request) {
	link, err := h.Payout.Onboard(r.Context(), principal(r))
	if err != nil {
		WriteError(r.Context(), w, err)

		return
	}

	writeJSON(w, http.StatusOK, newAccountLink(*link))
}

func (h *Handler) balance(w http.ResponseWriter, r *http.Request) {
	b, err := h.Payout.Balance(r.Context(), principal(r).UserID)
	if err != nil {
		WriteError(r.Context(), w, err)

		return
	}

	writeJSON(w, http.StatusOK, balanceDTO{
		Currency:  b.Currency,
		Earned:    b.Earned,
		PaidOut:   b.PaidOut,
		Available: b.Available(),
	})
}

func (h *Handler) requestPayout(w http.ResponseWriter, r *http.Request) {
	var req payoutRequest
	if err := h.decode(w, r, &req); err != nil {
		WriteError(r.Context(), w, err)

		return
	}

	p, err := h.Payout.Request(r.Context(), principal(r).UserID, req.Amount)
	if err != nil {
		WriteError(r.Context(), w, err)

		return
	}

	writeJSON(w, http.StatusAccepted, newPayout(*p))
}

func (h *Handler) listPayouts(w http.ResponseWriter, r *http.Request) {
	cursor, limit, err := page(r)
	if err != nil {
		WriteError(r.Context(), w, err)

		return
	}

	payouts, next, err := h.Payout.List(r.Context(), principal(r).UserID, cursor, limit)
	if err != nil {
		WriteError(r.Context(), w, err)

		return
	}

	writeJSON(w, http.StatusOK, newList(payouts, next, newPayout))
}
