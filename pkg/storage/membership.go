package storage

import (
	"context"
	"journal/pkg/domain"
	"time"
)

// MembershipUpdates lists the membership fields to change. Nil fields are left untouched.
type MembershipUpdates struct {
	Status           *domain.MembershipStatus
	CurrentPeriodEnd *time.Time
}

// MembershipStorage persists Explorer Pro memberships.
type MembershipStorage interface {
	CreateMembership(ctx context.Context, membership domain.Membership) (*domain.Membership, error)
	MembershipBySubscription(ctx context.Context, subscriptionID string) (*domain.Membership, error)
	// CurrentMembership returns the most recent membership of the user that is not canceled.
	CurrentMembership(ctx context.Context, userID domain.UserID) (*domain.Membership, error)
	UpdateMembership(ctx context.Context, id domain.MembershipID, updates MembershipUpdates) (*domain.Membership, error)
	// ExpireIncompleteMemberships cancels incomplete memberships created before the given time.
	ExpireIncompleteMemberships(ctx context.Context, before time.Time) (int64, error)
}
