package v1handler

import (
	"context"
	"journal/internal/expedition"
	"journal/pkg/domain"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

type createExpeditionRequest struct {
	Title       string                  `json:"title" validate:"required"`
	Description string                  `json:"description"`
	Status      domain.ExpeditionStatus `json:"status"`
	Visibility  domain.Visibility       `json:"visibility"`
	StartDate   time.Time               `json:"startDate"`
	EndDate     time.Time               `json:"endDate"`
}

type updateExpeditionRequest struct {
	Title       *string                  `json:"title"`
	Description *string                  `json:"description"`
	Status      *domain.ExpeditionStatus `json:"status"`
	Visibility  *domain.Visibility       `json:"visibility"`
	StartDate   *time.Time               `json:"startDate"`
	EndDate     *time.Time               `json:"endDate"`
}

func (h *Handler) createExpedition(w http.ResponseWriter, r *http.Request) {
	var req createExpeditionRequest
	if err := h.decode(w, r, &req); err != nil {
		WriteError(r.Context(), w, err)

		return
	}

	exp, err := h.Expedition.Create(r.Context(), principal(r).UserID, expedition.Input{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Visibility:  req.Visibility,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	})
	if err != nil {
		WriteError(r.Context(), w, err)

		return
	}

	writeJSON(w, http.StatusCreated, newExpedition(*exp))
}

func (h *Handler) updateExpedition(w http.ResponseWriter, r *http.Request) {
	id, err := pathID[domain.ExpeditionID](r, "id")
	if err != nil {
		WriteError(r.Context(), w, err)

		return
	}

	var req updateExpeditionRequest
	if err = h.decode(w, r, &req); err != nil {
		WriteError(r.Context(), w, err)

		return
	}

	exp, err := h.Expedition.Update(r.Context(), principal(r).UserID, id, expedition.UpdateInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Visibility:  req.Visibility,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	})
	if err != nil {
		WriteError(r.Context(), w, err)

		return
	}

	writeJSON(w, http.StatusOK, newExpedition(*exp))
}

func (h *Handler) deleteExpedition(w http.ResponseWriter, r *http.Request) {
	id, err := pathID[domain.ExpeditionID](r, "id")
	if err != nil {
		WriteError(r.Context(), w, err)

		return
	}

	if err = h.Expedition.Delete(r.Context(), principal(r).UserID, id); err != nil {
		WriteError(r.Context(), w, err)

		return
	}

	noContent(w)
}

func (h *Handler) getExpedition(w http.ResponseWriter, r *http.Request) {
	id, err := pathID[domain.ExpeditionID](r, "id")
	if err != nil {
		WriteError(r.Context(), w, err)

		return
	}

	details, err := h.Expedition.Get(r.Context(), viewer(r.Context()), id)
	if err != nil {
		WriteError(r.Context(), w, err)

		return
	}

	writeJSON(w, http.StatusOK, newExpeditionDetails(*details))
}

func (h *Handler) listUserExpeditions(w http.ResponseWriter, r *http.Request) {
	cursor, limit, err := page(r)
	if err != nil {
		WriteError(r.Context(), w, err)

		return
	}

	exps, next, err := h.Expedition.ListByAuthor(r.Context(), viewer(r.Context()),
		chi.URLParam(r, "username"), cursor, limit)
	if err != nil {
		WriteError(r.Context(), w, err)

		return
	}

	writeJSON(w, http.StatusOK, newList(exps, next, newExpedition))
}

func (h *Handler) attachEntry(w http.ResponseWriter, r *http.Request) {
	h.linkEntry(w, r, h.Expedition.AttachEntry)
}

func (h *Handler) detachEntry(w http.ResponseWriter, r *http.Request) {
	h.linkEntry(w, r, h.Expedition.DetachEntry)
}

func (h *Handler) linkEntry(
	w http.ResponseWriter,
	r *http.Request,
	link func(ctx context.Context, author domain.UserID, id domain.ExpeditionID, entryID domain.EntryID) error,
) {
	id, err := pathID[domain.ExpeditionID](r, "id")
	if err != nil {
		WriteError(r.Context(), w, err)

		return
	}
	entryID, err := pathID[domain.EntryID](r, "entryID")
	if err != nil {
		WriteError(r.Context(), w, err)

		return
	}

	if err = link(r.Context(), principal(r).UserID, id, entryID); err != nil {
		WriteError(r.Context(), w, err)

		return
	}

	noContent(w)
}
