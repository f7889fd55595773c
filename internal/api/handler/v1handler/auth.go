package v1handler

import (
	"journal/internal/account"
	"net/http"
)

type signUpRequest struct {
	Username     string `json:"username" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required"`
	CaptchaToken string `json:"captchaToken"`
}

type loginRequest struct {
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	var req signUpRequest
	if err := h.decode(w, r, &req); err != nil {
		WriteError(r.Context(), w, err)

		return
	}

	res, err := h.Account.SignUp(r.Context(), account.SignUpInput{
		Username:     req.Username,
		Email:        req.Email,
		Password:     req.Password,
		CaptchaToken: req.CaptchaToken,
		RemoteIP:     h.Proxies.ClientIP(r),
		UserAgent:    r.UserAgent(),
	})
	if err != nil {
		WriteError(r.Context(), w, err)

		return
	}

	h.startSession(w, http.StatusCreated, res)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := h.decode(w, r, &req); err != nil {
		WriteError(r.Context(), w, err)

		return
	}

	res, err := h.Account.Login(r.Context(), account.LoginInput{
		Login:     req.Login,
		Password:  req.Password,
		RemoteIP:  h.Proxies.ClientIP(r),
		UserAgent: r.UserAgent(),
	})
	if err != nil {
		WriteError(r.Context(), w, err)

		return
	}

	h.startSession(w, http.StatusOK, res)
}

func (h *Handler) startSession(w http.ResponseWriter, status int, res *account.AuthResult) {
	h.setCookie(w, res.Token, res.ExpiresAt)
	writeJSON(w, status, sessionDTO{
		User:      newMe(res.User),
		Token:     res.Token,
		ExpiresAt: res.ExpiresAt,
	})
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if err := h.Account.Logout(r.Context(), principal(r).SessionID); err != nil {
		WriteError(r.Context(), w, err)

		return
	}

	h.clearCookie(w)
	noContent(w)
}
