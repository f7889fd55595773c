package v1handler

import (
	"context"
	"errors"
	"journal/pkg/domain"
	"journal/pkg/errtrack"
	"journal/pkg/logger"
	"journal/pkg/serrors"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

type principalKey struct{}

// authenticate resolves the session cookie or bearer token, if any, to a
// principal. Requests without credentials, or with an expired or revoked
// session, continue anonymously.
func (h *Handler) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := h.sessionToken(r)
		if token == "" {
			next.ServeHTTP(w, r)

			return
		}

		ctx := r.Context()
		principal, err := h.Account.Authenticate(ctx, token)
		if errors.Is(err, serrors.ErrUnauthorized) {
			h.clearCookie(w)
			next.ServeHTTP(w, r)

			return
		}
		if err != nil {
			WriteError(ctx, w, err)

			return
		}

		ctx = context.WithValue(ctx, principalKey{}, *principal)
		ctx = logger.WithFields(ctx, zap.String("userID", principal.UserID.String()))
		errtrack.SetUser(ctx, principal.UserID.String(), principal.Username)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := principalFrom(r.Context()); !ok {
			WriteError(r.Context(), w, serrors.KindOnly(serrors.ErrUnauthorized))

			return
		}

		next.ServeHTTP(w, r)
	})
}

func principalFrom(ctx context.Context) (domain.Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(domain.Principal)

	return p, ok
}

// viewer is the caller's user ID, zero for anonymous requests.
func viewer(ctx context.Context) domain.UserID {
	p, _ := principalFrom(ctx)

	return p.UserID
}

// principal must only be called behind requireAuth.
func principal(r *http.Request) domain.Principal {
	p, _ := principalFrom(r.Context())

	return p
}

func (h *Handler) sessionToken(r *http.Request) string {
	if auth := r.Header.Get("Authorization"); auth != "" {
		if token, ok := strings.CutPrefix(auth, "Bearer "); ok {
			return strings.TrimSpace(token)
		}
	}
	if c, err := r.Cookie(h.options.CookieName); err == nil {
		return c.Value
	}

	return ""
}

func (h *Handler) setCookie(w http.ResponseWriter, token string, expires time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.options.CookieName,
		Value:    token,
		Path:     "/",
		Domain:   h.options.CookieDomain,
		Expires:  expires,
		MaxAge:   int(time.Until(expires).Seconds()),
		HttpOnly: true,
		Secure:   h.options.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) clearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.options.CookieName,
		Value:    "",
		Path:     "/",
		Domain:   h.options.CookieDomain,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.options.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}
