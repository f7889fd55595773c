package account

import (
	"context"
	"journal/pkg/domain"
	"time"
)

// SignUpInput is a registration request.
type SignUpInput struct {
	Username     string
	Email        string
	Password     string
	CaptchaToken string
	RemoteIP     string
	UserAgent    string
}

// LoginInput authenticates by email or username.
type LoginInput struct {
	Login     string
	Password  string
	RemoteIP  string
	UserAgent string
}

// ProfileInput lists the profile fields to change. Nil fields are left untouched.
type ProfileInput struct {
	Name      *string
	Bio       *string
	Location  *string
	AvatarURL *string
	Website   *string
}

// AuthResult is a freshly created session.
type AuthResult struct {
	User      domain.User
	SessionID string
	Token     string
	ExpiresAt time.Time
}

//go:generate mockgen -package mockaccount -source=interface.go -destination=mock/mockaccount.go *
type Service interface {
	SignUp(ctx context.Context, input SignUpInput) (*AuthResult, error)
	Login(ctx context.Context, input LoginInput) (*AuthResult, error)
	Logout(ctx context.Context, sessionID string) error
	Authenticate(ctx context.Context, token string) (*domain.Principal, error)
	Me(ctx context.Context, userID domain.UserID) (*domain.User, error)
	Profile(ctx context.Context, viewer domain.UserID, username string) (*domain.Profile, error)
	UpdateProfile(ctx context.Context, userID domain.UserID, input ProfileInput) (*domain.User, error)
	ChangePassword(ctx context.Context, principal domain.Principal, current, next string) error
	Follow(ctx context.Context, follower domain.UserID, username string) error
	Unfollow(ctx context.Context, follower domain.UserID, username string) error
	Followers(ctx context.Context, username, cursor string, limit uint) ([]domain.User, string, error)
	Following(ctx context.Context, username, cursor string, limit uint) ([]domain.User, string, error)
}
