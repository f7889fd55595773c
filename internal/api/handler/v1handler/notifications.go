package v1handler

import (
	"journal/pkg/domain"
	"net/http"
)

func (h *Handler) listNotifications(w http.ResponseWriter, r *http.Request) {
	cursor, limit, err := page(r)
	if err != nil {
		WriteError(r.Context(), w, err)

		return
	}

	items, next, err := h.Notification.List(r.Context(), principal(r).UserID, cursor, limit)
	if err != nil {
		WriteError(r.Context(), w, err)

		return
	}

	writeJSON(w, http.StatusOK, newList(items, next, newNotification))
}

func (h *Handler) unreadCount(w http.ResponseWriter, r *http.Request) {
	n, err := h.Notification.UnreadCount(r.Context(), principal(r).UserID)
	if err != nil {
		WriteError(r.Context(), w, err)

		return
	}

	writeJSON(w, http.StatusOK, countDTO{Count: n})
}

func (h *Handler) markRead(w http.ResponseWriter, r *http.Request) {
	id, err := pathID[domain.NotificationID](r, "id")
	if err != nil {
		WriteError(r.Context(), w, err)

		return
	}

	if err = h.Notification.MarkRead(r.Context(), principal(r).UserID, id); err != nil {
		WriteError(r.Context(), w, err)

		return
	}

	noContent(w)
}

func (h *Handler) markAllRead(w http.ResponseWriter, r *http.Request) {
	n, err := h.Notification.MarkAllRead(r.Context(), principal(r).UserID)
	if err != nil {
		WriteError(r.Context(), w, err)

		return
	}

	writeJSON(w, http.StatusOK, countDTO{Count: n})
}
