package v1handler

import (
	"journal/internal/journal"
	"journal/pkg/domain"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
)

type createEntryRequest struct {
	Title        string               `json:"title" validate:"required"`
	Content      string               `json:"content"`
	Place        string               `json:"place"`
	Location     *pointDTO            `json:"location"`
	Date         time.Time            `json:"date"`
	Visibility   domain.Visibility    `json:"visibility"`
	IsDraft      bool                 `json:"isDraft"`
	ExpeditionID *domain.ExpeditionID `json:"expeditionId"`
}

type updateEntryRequest struct {
	Title    *string   `json:"title"`
	Content  *string   `json:"content"`
	Place    *string   `json:"place"`
	Location *pointDTO `json:"location"`
	// ClearLocation removes the location and wins over Location.
	ClearLocation bool               `json:"clearLocation"`
	Date          *time.Time         `json:"date"`
	Visibility    *domain.Visibility `json:"visibility"`
	IsDraft       *bool              `json:"isDraft"`
}

func (h *Handler) createEntry(w http.ResponseWriter, r *http.Request) {
	var req createEntryRequest
	if err := h.decode(w, r, &req); err != nil {
		WriteError(r.Context(), w, err)

		return
	}

	entry, err := h.Journal.Create(r.Context(), principal(r).UserID, journal.EntryInput{
		Title:        req.Title,
		Content:      req.Content,
		Place:        req.Place,
		Location:     req.Location.domain(),
		Date:         req.Date,
		Visibility:   req.Visibility,
		IsDraft:      req.IsDraft,
		ExpeditionID: req.ExpeditionID,
	})
	if err != nil {
		WriteError(r.Context(), w, err)

		return
	}

	writeJSON(w, http.StatusCreated, newEntry(*entry))
}

func (h *Handler) updateEntry(w http.ResponseWriter, r *http.Request) {
	id, err := pathID[domain.EntryID](r, "id")
	if err != nil {
		WriteError(r.Context(), w, err)

		return
	}

	var req updateEntryRequest
	if err = h.decode(w, r, &req); err != nil {
		WriteError(r.Context(), w, err)

		return
	}

	entry, err := h.Journal.Update(r.Context(), principal(r).UserID, id, journal.EntryUpdateInput{
		Title:         req.Title,
		Content:       req.Content,
		Place:         req.Place,
		Location:      req.Location.domain(),
		ClearLocation: req.ClearLocation,
		Date:          req.Date,
		Visibility:    req.Visibility,
		IsDraft:       req.IsDraft,
	})
	if err != nil {
		WriteError(r.Context(), w, err)

		return
	}

	writeJSON(w, http.StatusOK, newEntry(*entry))
}

func (h *Handler) deleteEntry(w http.ResponseWriter, r *http.Request) {
	id, err := pathID[domain.EntryID](r, "id")
	if err != nil {
		WriteError(r.Context(), w, err)

		return
	}

	if err = h.Journal.Delete(r.Context(), principal(r).UserID, id); err != nil {
		WriteError(r.Context(), w, err)

		return
	}

	noContent(w)
}

func (h *Handler) getEntry(w http.ResponseWriter, r *http.Request) {
	id, err := pathID[domain.EntryID](r, "id")
	if err != nil {
		WriteError(r.Context(), w, err)

		return
	}

	entry, err := h.Journal.Get(r.Context(), viewer(r.Context()), id)
	if err != nil {
		WriteError(r.Context(), w, err)

		return
	}

	writeJSON(w, http.StatusOK, newEntry(*entry))
}

func (h *Handler) listUserEntries(w http.ResponseWriter, r *http.Request) {
	cursor, limit, err := page(r)
	if err != nil {
		WriteError(r.Context(), w, err)

		return
	}

	entries, next, err := h.Journal.ListByAuthor(r.Context(), viewer(r.Context()),
		chi.URLParam(r, "username"), cursor, limit)
	if err != nil {
		WriteError(r.Context(), w, err)

		return
	}

	writeJSON(w, http.StatusOK, newList(entries, next, newEntry))
}

func (h *Handler) publicFeed(w http.ResponseWriter, r *http.Request) {
	cursor, limit, err := page(r)
	if err != nil {
		WriteError(r.Context(), w, err)

		return
	}

	entries, next, err := h.Journal.PublicFeed(r.Context(), cursor, limit)
	if err != nil {
		WriteError(r.Context(), w, err)

		return
	}

	writeJSON(w, http.StatusOK, newList(entries, next, newEntry))
}

func (h *Handler) followingFeed(w http.ResponseWriter, r *http.Request) {
	cursor, limit, err := page(r)
	if err != nil {
		WriteError(r.Context(), w, err)

		return
	}

	entries, next, err := h.Journal.FollowingFeed(r.Context(), principal(r).UserID, cursor, limit)
	if err != nil {
		WriteError(r.Context(), w, err)

		return
	}

	writeJSON(w, http.StatusOK, newList(entries, next, newEntry))
}

func (h *Handler) mapEntries(w http.ResponseWriter, r *http.Request) {
	var (
		box domain.BoundingBox
		err error
	)
	for _, p := range []struct {
		name string
		dst  *float64
	}{
		{"west", &box.West},
		{"south", &box.South},
		{"east", &box.East},
		{"north", &box.North},
	} {
		if *p.dst, err = floatParam(r, p.name); err != nil {
			WriteError(r.Context(), w, err)

			return
		}
	}

	cursor, limit, err := page(r)
	if err != nil {
		WriteError(r.Context(), w, err)

		return
	}

	entries, next, err := h.Journal.InBoundingBox(r.Context(), box, cursor, limit)
	if err != nil {
		WriteError(r.Context(), w, err)

		return
	}

	writeJSON(w, http.StatusOK, newList(entries, next, newEntry))
}

func (h *Handler) searchPlaces(w http.ResponseWriter, r *http.Request) {
	places, err := h.Journal.SearchPlaces(r.Context(), strings.TrimSpace(r.URL.Query().Get("q")))
	if err != nil {
		WriteError(r.Context(), w, err)

		return
	}

	writeJSON(w, http.StatusOK, newList(places, "", newPlace))
}

