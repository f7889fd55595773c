package v1handler

import (
	"context"
	"journal/internal/sponsorship"
	"journal/pkg/domain"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type createTierRequest struct {
	Title       string              `json:"title" validate:"required,max=100"`
	Description string              `json:"description" validate:"max=1000"`
	Price       int64               `json:"price" validate:"gt=0,lte=99999999"`
	Interval    domain.TierInterval `json:"interval" validate:"required"`
}

type updateTierRequest struct {
	Title       *string `json:"title" validate:"omitnil,min=1,max=100"`
	Description *string `json:"description" validate:"omitnil,max=1000"`
	Price       *int64  `json:"price" validate:"omitnil,gt=0,lte=99999999"`
	Active      *bool   `json:"active"`
}

type checkoutRequest struct {
	Explorer string                 `json:"explorer" validate:"required"`
	TierID   *domain.TierID         `json:"tierId"`
	Amount   int64                  `json:"amount" validate:"gte=0,lte=99999999"`
	Type     domain.SponsorshipType `json:"type"`
	Message  string                 `json:"message"`
}

func (h *Handler) listTiers(w http.ResponseWriter, r *http.Request) {
	tiers, err := h.Sponsorship.Tiers(r.Context(), viewer(r.Context()), chi.URLParam(r, "username"))
	if err != nil {
		WriteError(r.Context(), w, err)

		return
	}

	writeJSON(w, http.StatusOK, newList(tiers, "", newTier))
}

func (h *Handler) createTier(w http.ResponseWriter, r *http.Request) {
	var req createTierRequest
	if err := h.decode(w, r, &req); err != nil {
		WriteError(r.Context(), w, err)

		return
	}

	tier, err := h.Sponsorship.CreateTier(r.Context(), principal(r), sponsorship.TierInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Interval:    req.Interval,
	})
	if err != nil {
		WriteError(r.Context(), w, err)

		return
	}

	writeJSON(w, http.StatusCreated, newTier(*tier))
}

func (h *Handler) updateTier(w http.ResponseWriter, r *http.Request) {
	id, err := pathID[domain.TierID](r, "id")
	if err != nil {
		WriteError(r.Context(), w, err)

		return
	}

	var req updateTierRequest
	if err = h.decode(w, r, &req); err != nil {
		WriteError(r.Context(), w, err)

		return
	}

	tier, err := h.Sponsorship.UpdateTier(r.Context(), principal(r), id, sponsorship.TierUpdateInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Active:      req.Active,
	})
	if err != nil {
		WriteError(r.Context(), w, err)

		return
	}

	writeJSON(w, http.StatusOK, newTier(*tier))
}

func (h *Handler) deleteTier(w http.ResponseWriter, r *http.Request) {
	id, err := pathID[domain.TierID](r, "id")
	if err != nil {
		WriteError(r.Context(), w, err)

		return
	}

	if err = h.Sponsorship.DeleteTier(r.Context(), principal(r), id); err != nil {
		WriteError(r.Context(), w, err)

		return
	}

	noContent(w)
}

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := h.decode(w, r, &req); err != nil {
		WriteError(r.Context(), w, err)

		return
	}

	res, err := h.Sponsorship.Checkout(r.Context(), principal(r).UserID, sponsorship.CheckoutInput{
		Explorer: req.Explorer,
		TierID:   req.TierID,
		Amount:   req.Amount,
		Type:     req.Type,
		Message:  req.Message,
	})
	if err != nil {
		WriteError(r.Context(), w, err)

		return
	}

	writeJSON(w, http.StatusCreated, checkoutDTO{
		Sponsorship:  newSponsorship(res.Sponsorship),
		ClientSecret: res.ClientSecret,
	})
}

func (h *Handler) cancelSponsorship(w http.ResponseWriter, r *http.Request) {
	id, err := pathID[domain.SponsorshipID](r, "id")
	if err != nil {
		WriteError(r.Context(), w, err)

		return
	}

	s, err := h.Sponsorship.Cancel(r.Context(), principal(r).UserID, id)
	if err != nil {
		WriteError(r.Context(), w, err)

		return
	}

	writeJSON(w, http.StatusOK, newSponsorship(*s))
}

func (h *Handler) listGiven(w http.ResponseWriter, r *http.Request) {
	h.listSponsorships(w, r, h.Sponsorship.Given)
}

func (h *Handler) listReceived(w http.ResponseWriter, r *http.Request) {
	h.listSponsorships(w, r, h.Sponsorship.Received)
}

func (h *Handler) listSponsorships(
	w http.ResponseWriter,
	r *http.Request,
	list func(ctx context.Context, user domain.UserID, cursor string, limit uint) ([]domain.Sponsorship, string, error),
) {
	cursor, limit, err := page(r)
	if err != nil {
		WriteError(r.Context(), w, err)

		return
	}

	items, next, err := list(r.Context(), principal(r).UserID, cursor, limit)
	if err != nil {
		WriteError(r.Context(), w, err)

		return
	}

	writeJSON(w, http.StatusOK, newList(items, next, newSponsorship))
}
