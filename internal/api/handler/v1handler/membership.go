package v1handler

import (
	"journal/pkg/domain"
	"net/http"
)

type subscribeRequest struct {
	Plan domain.MembershipPlan `json:"plan" validate:"required,oneof=monthly annual"`
}

func (h *Handler) getMembership(w http.ResponseWriter, r *http.Request) {
	m, err := h.Membership.Current(r.Context(), principal(r).UserID)
	if err != nil {
		WriteError(r.Context(), w, err)

		return
	}

	writeJSON(w, http.StatusOK, newMembership(*m))
}

func (h *Handler) subscribe(w http.ResponseWriter, r *http.Request) {
	var req subscribeRequest
	if err := h.decode(w, r, &req); err != nil {
		WriteError(r.Context(), w, err)

		return
	}

	res, err := h.Membership.Subscribe(r.Context(), principal(r).UserID, req.Plan)
	if err != nil {
		WriteError(r.Context(), w, err)

		return
	}

	writeJSON(w, http.StatusCreated, membershipCheckoutDTO{
		Membership:   newMembership(res.Membership),
		ClientSecret: res.ClientSecret,
	})
}

func (h *Handler) cancelMembership(w http.ResponseWriter, r *http.Request) {
	m, err := h.Membership.Cancel(r.Context(), principal(r).UserID)
	if err != nil {
		WriteError(r.Context(), w, err)

		return
	}

	writeJSON(w, http.StatusOK, newMembership(*m))
}
