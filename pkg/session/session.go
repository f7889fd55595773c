// Package session issues and verifies session tokens. A token is an HS256
// JWT whose ID (jti) names a server side session record, so revoking the
// record invalidates the token before it expires.
package session

import (
	"context"
	"errors"
	"journal/pkg/domain"
	"journal/pkg/serrors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Store persists session records.
//
//go:generate mockgen -package mocksession -source=session.go -destination=mock/mocksession.go
type Store interface {
	// Create stores s until s.ExpiresAt.
	Create(ctx context.Context, s domain.Session) error
	// Get returns nil when the session does not exist or expired.
	Get(ctx context.Context, id string) (*domain.Session, error)
	Delete(ctx context.Context, id string) error
	// DeleteUserSessions removes every session of the user except keepID.
	DeleteUserSessions(ctx context.Context, userID domain.UserID, keepID string) error
}

// Claims are the verified contents of a token.
type Claims struct {
	SessionID string
	UserID    domain.UserID
	ExpiresAt time.Time
}

// Codec signs and verifies tokens with a shared secret.
type Codec struct {
	secret []byte
	issuer string
}

func NewCodec(secret, issuer string) (*Codec, error) {
	if len(secret) < 32 {
		return nil, errors.New("session secret must be at least 32 bytes")
	}

	return &Codec{secret: []byte(secret), issuer: issuer}, nil
}

// Issue returns the signed token for s.
func (c *Codec) Issue(s domain.Session) (string, error) {
	claims := jwt.RegisteredClaims{
		ID:        s.ID,
		Subject:   s.UserID.String(),
		Issuer:    c.issuer,
		IssuedAt:  jwt.NewNumericDate(s.CreatedAt),
		NotBefore: jwt.NewNumericDate(s.CreatedAt),
		ExpiresAt: jwt.NewNumericDate(s.ExpiresAt),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", serrors.Wrap(serrors.ErrInternal, err, "could not sign session token")
	}

	return signed, nil
}

// Parse verifies token and returns its claims. Any failure is UNAUTHORIZED.
func (c *Codec) Parse(token string) (Claims, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return c.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(c.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(5*time.Second),
	)
	if err != nil {
		return Claims{}, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid session token")
	}
	if claims.ID == "" {
		return Claims{}, serrors.With(serrors.ErrUnauthorized, "session token without id")
	}

	uid, err := domain.ParseID[domain.UserID](claims.Subject)
	if err != nil {
		return Claims{}, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid session subject")
	}

	return Claims{
		SessionID: claims.ID,
		UserID:    uid,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
