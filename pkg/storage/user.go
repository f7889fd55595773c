package storage

import (
	"context"
	"journal/pkg/domain"
	"time"
)

// UserUpdates lists the user fields to change. Nil fields are left untouched.
type UserUpdates struct {
	Name             *string
	Bio              *string
	Location         *string
	AvatarURL        *string
	Website          *string
	PasswordHash     *string
	Role             *domain.Role
	StripeCustomerID *string
	StripeAccountID  *string
	PayoutsEnabled   *bool
}

// UserStorage persists accounts. Usernames and emails are stored lowercase and
// are unique among non-deleted users.
type UserStorage interface {
	// CreateUser returns ErrDuplicate when the username or email is taken.
	CreateUser(ctx context.Context, user domain.User) (*domain.User, error)
	UserByID(ctx context.Context, id domain.UserID) (*domain.User, error)
	UserByUsername(ctx context.Context, username string) (*domain.User, error)
	// UserByLogin matches either the email or the username.
	UserByLogin(ctx context.Context, login string) (*domain.User, error)
	UserByStripeAccount(ctx context.Context, accountID string) (*domain.User, error)
	UpdateUser(ctx context.Context, id domain.UserID, updates UserUpdates) (*domain.User, error)
	// LockUser takes a row lock on the user until the surrounding transaction ends.
	LockUser(ctx context.Context, id domain.UserID) error
}

// FollowStorage persists the follower graph.
type FollowStorage interface {
	// Follow reports whether a new edge was created.
	Follow(ctx context.Context, followerID, followeeID domain.UserID) (bool, error)
	// Unfollow reports whether an edge was removed.
	Unfollow(ctx context.Context, followerID, followeeID domain.UserID) (bool, error)
	IsFollowing(ctx context.Context, followerID, followeeID domain.UserID) (bool, error)
	// Followers pages over users following userID, by follow time.
	Followers(ctx context.Context, userID domain.UserID, cursor time.Time, limit uint) (Page[domain.User], error)
	// Following pages over users followed by userID, by follow time.
	Following(ctx context.Context, userID domain.UserID, cursor time.Time, limit uint) (Page[domain.User], error)
	FollowerIDs(ctx context.Context, userID domain.UserID) ([]domain.UserID, error)
	FollowCounts(ctx context.Context, userID domain.UserID) (int64, int64, error)
}
