package v1handler

import (
	"context"
	"journal/internal/account"
	"journal/pkg/domain"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type updateMeRequest struct {
	Name      *string `json:"name" validate:"omitnil,max=100"`
	Bio       *string `json:"bio" validate:"omitnil,max=2000"`
	Location  *string `json:"location" validate:"omitnil,max=200"`
	AvatarURL *string `json:"avatarUrl" validate:"omitnil,omitempty,url"`
	Website   *string `json:"website" validate:"omitnil,omitempty,url"`
}

type changePasswordRequest struct {
	Current string `json:"current" validate:"required"`
	Next    string `json:"next" validate:"required"`
}

func (h *Handler) getMe(w http.ResponseWriter, r *http.Request) {
	user, err := h.Account.Me(r.Context(), principal(r).UserID)
	if err != nil {
		WriteError(r.Context(), w, err)

		return
	}

	writeJSON(w, http.StatusOK, newMe(*user))
}

func (h *Handler) updateMe(w http.ResponseWriter, r *http.Request) {
	var req updateMeRequest
	if err := h.decode(w, r, &req); err != nil {
		WriteError(r.Context(), w, err)

		return
	}

	user, err := h.Account.UpdateProfile(r.Context(), principal(r).UserID, account.ProfileInput{
		Name:      req.Name,
		Bio:       req.Bio,
		Location:  req.Location,
		AvatarURL: req.AvatarURL,
		Website:   req.Website,
	})
	if err != nil {
		WriteError(r.Context(), w, err)

		return
	}

	writeJSON(w, http.StatusOK, newMe(*user))
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	var req changePasswordRequest
	if err := h.decode(w, r, &req); err != nil {
		WriteError(r.Context(), w, err)

		return
	}

	if err := h.Account.ChangePassword(r.Context(), principal(r), req.Current, req.Next); err != nil {
		WriteError(r.Context(), w, err)

		return
	}

	noContent(w)
}

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.Account.Profile(r.Context(), viewer(r.Context()), chi.URLParam(r, "username"))
	if err != nil {
		WriteError(r.Context(), w, err)

		return
	}

	writeJSON(w, http.StatusOK, newProfile(*profile))
}

func (h *Handler) follow(w http.ResponseWriter, r *http.Request) {
	if err := h.Account.Follow(r.Context(), principal(r).UserID, chi.URLParam(r, "username")); err != nil {
		WriteError(r.Context(), w, err)

		return
	}

	noContent(w)
}

func (h *Handler) unfollow(w http.ResponseWriter, r *http.Request) {
	if err := h.Account.Unfollow(r.Context(), principal(r).UserID, chi.URLParam(r, "username")); err != nil {
		WriteError(r.Context(), w, err)

		return
	}

	noContent(w)
}

func (h *Handler) listFollowers(w http.ResponseWriter, r *http.Request) {
	h.listUsers(w, r, h.Account.Followers)
}

func (h *Handler) listFollowing(w http.ResponseWriter, r *http.Request) {
	h.listUsers(w, r, h.Account.Following)
}

type userLister func(ctx context.Context, username, cursor string, limit uint) ([]domain.User, string, error)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request, list userLister) {
	cursor, limit, err := page(r)
	if err != nil {
		WriteError(r.Context(), w, err)

		return
	}

	users, next, err := list(r.Context(), chi.URLParam(r, "username"), cursor, limit)
	if err != nil {
		WriteError(r.Context(), w, err)

		return
	}

	writeJSON(w, http.StatusOK, newList(users, next, newUser))
}
