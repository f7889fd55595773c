package v1handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

type sendMessageRequest struct {
	Body string `json:"body" validate:"required"`
}

func (h *Handler) sendMessage(w http.ResponseWriter, r *http.Request) {
	var req sendMessageRequest
	if err := h.decode(w, r, &req); err != nil {
		WriteError(r.Context(), w, err)

		return
	}

	msg, err := h.Message.Send(r.Context(), principal(r), chi.URLParam(r, "username"), req.Body)
	if err != nil {
		WriteError(r.Context(), w, err)

		return
	}

	writeJSON(w, http.StatusCreated, newMessage(*msg))
}

func (h *Handler) conversation(w http.ResponseWriter, r *http.Request) {
	cursor, limit, err := page(r)
	if err != nil {
		WriteError(r.Context(), w, err)

		return
	}

	msgs, next, err := h.Message.Conversation(r.Context(), principal(r).UserID,
		chi.URLParam(r, "username"), cursor, limit)
	if err != nil {
		WriteError(r.Context(), w, err)

		return
	}

	writeJSON(w, http.StatusOK, newList(msgs, next, newMessage))
}
