package account

import (
	"context"
	"errors"
	"fmt"
	"journal/internal/config"
	"journal/internal/events"
	"journal/pkg/captcha"
	"journal/pkg/domain"
	"journal/pkg/logger"
	"journal/pkg/mailer"
	"journal/pkg/serrors"
	"journal/pkg/session"
	"journal/pkg/storage"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const invalidCredentials = "invalid login or password"

// Options configure sessions and password hashing.
type Options struct {
	// SessionTTL is the lifetime of a session created by SignUp or Login.
	SessionTTL time.Duration
	// BcryptCost defaults to bcrypt.DefaultCost.
	BcryptCost int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		SessionTTL: cfg.Session.TTL,
		BcryptCost: bcrypt.DefaultCost,
	}
}

// Deps are the collaborators of the account service.
type Deps struct {
	Storage  storage.Storage
	Captcha  captcha.Verifier
	Codec    *session.Codec
	Sessions session.Store
	Emitter  *events.Emitter
}

type service struct {
	options Options
	Deps
	now func() time.Time
}

// dummyHash is compared against when no user matches a login so both paths
// take the same time.
//
//nolint: gochecknoglobals
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("journal-dummy-password"), bcrypt.DefaultCost)

func (s *service) newSession(ctx context.Context, user domain.User, remoteIP, userAgent string) (*AuthResult, error) {
	now := s.now()
	sess := domain.Session{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		UserAgent: userAgent,
		IP:        remoteIP,
		CreatedAt: now,
		ExpiresAt: now.Add(s.options.SessionTTL),
	}
	if err := s.Sessions.Create(ctx, sess); err != nil {
		return nil, fmt.Errorf("could not store session: %w", err)
	}
	token, err := s.Codec.Issue(sess)
	if err != nil {
		return nil, fmt.Errorf("could not issue session token: %w", err)
	}

	return &AuthResult{User: user, SessionID: sess.ID, Token: token, ExpiresAt: sess.ExpiresAt}, nil
}

func (s *service) SignUp(ctx context.Context, input SignUpInput) (*AuthResult, error) {
	username, email := normalize(input.Username), normalize(input.Email)
	switch {
	case !validUsername(username):
		return nil, serrors.With(serrors.ErrBadRequest,
			"username must be 3 to 30 lowercase letters, digits or underscores")
	case !validEmail(email):
		return nil, serrors.With(serrors.ErrBadRequest, "invalid email address")
	case !validPassword(input.Password):
		return nil, serrors.With(serrors.ErrBadRequest,
			"password must be %d to %d characters", minPasswordLength, maxPasswordLength)
	}

	if err := s.Captcha.Verify(ctx, input.CaptchaToken, input.RemoteIP); err != nil {
		return nil, fmt.Errorf("could not verify captcha: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.options.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("could not hash password: %w", err)
	}

	var user *domain.User
	err = s.Storage.WithTx(ctx, func(tx storage.AllStorage) error {
		created, err := tx.CreateUser(ctx, domain.User{
			Username:     username,
			Email:        email,
			PasswordHash: string(hash),
			Role:         domain.RoleUser,
		})
		if err != nil {
			return err
		}
		user = created

		return s.Emitter.Email(ctx, tx, email, mailer.TemplateWelcome, map[string]string{
			"username": username,
		})
	})
	if errors.Is(err, storage.ErrDuplicate) {
		return nil, serrors.With(serrors.ErrConflict, "username or email already taken")
	}
	if err != nil {
		return nil, fmt.Errorf("could not create user: %w", err)
	}

	logger.Info(ctx, "user signed up", zap.String("userID", user.ID.String()))

	return s.newSession(ctx, *user, input.RemoteIP, input.UserAgent)
}

func (s *service) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	login := normalize(input.Login)
	if login == "" || input.Password == "" {
		return nil, serrors.With(serrors.ErrUnauthorized, invalidCredentials)
	}

	user, err := s.Storage.UserByLogin(ctx, login)
	if err != nil {
		return nil, fmt.Errorf("could not get user: %w", err)
	}
	if user == nil {
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(input.Password))

		return nil, serrors.With(serrors.ErrUnauthorized, invalidCredentials)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, serrors.With(serrors.ErrUnauthorized, invalidCredentials)
	}

	return s.newSession(ctx, *user, input.RemoteIP, input.UserAgent)
}

func (s *service) Logout(ctx context.Context, sessionID string) error {
	if err := s.Sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("could not delete session: %w", err)
	}

	return nil
}

// Authenticate resolves a session token to its principal. Tokens of revoked
// sessions or deleted users are rejected.
func (s *service) Authenticate(ctx context.Context, token string) (*domain.Principal, error) {
	claims, err := s.Codec.Parse(token)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	sess, err := s.Sessions.Get(ctx, claims.SessionID)
	if err != nil {
		return nil, fmt.Errorf("could not get session: %w", err)
	}
	if sess == nil || sess.UserID != claims.UserID {
		return nil, serrors.With(serrors.ErrUnauthorized, "session expired")
	}

	user, err := s.Storage.UserByID(ctx, claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("could not get user: %w", err)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrUnauthorized, "session expired")
	}

	return &domain.Principal{
		UserID:    user.ID,
		Username:  user.Username,
		Role:      user.Role,
		SessionID: sess.ID,
	}, nil
}

// New creates the account service.
func New(deps Deps, options Options) Service {
	if options.BcryptCost == 0 {
		options.BcryptCost = bcrypt.DefaultCost
	}
	if options.SessionTTL <= 0 {
		options.SessionTTL = 30 * 24 * time.Hour
	}

	return &service{options: options, Deps: deps, now: time.Now}
}
