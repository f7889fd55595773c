package storage

import (
	"context"
	"journal/pkg/domain"
	"time"
)

// TierUpdates lists the tier fields to change. Nil fields are left untouched.
type TierUpdates struct {
	Title       *string
	Description *string
	Price       *int64
	Active      *bool
}

// TierStorage persists sponsorship tiers.
type TierStorage interface {
	CreateTier(ctx context.Context, tier domain.SponsorshipTier) (*domain.SponsorshipTier, error)
	TierByID(ctx context.Context, id domain.TierID) (*domain.SponsorshipTier, error)
	UpdateTier(ctx context.Context, id domain.TierID, updates TierUpdates) (*domain.SponsorshipTier, error)
	DeleteTier(ctx context.Context, explorerID domain.UserID, id domain.TierID) (*domain.SponsorshipTier, error)
	// Tiers returns the explorer's tiers ordered by price.
	Tiers(ctx context.Context, explorerID domain.UserID, activeOnly bool) ([]domain.SponsorshipTier, error)
}

// SponsorshipUpdates lists the sponsorship fields to change. Nil fields are left untouched.
type SponsorshipUpdates struct {
	Status               *domain.SponsorshipStatus
	PaymentIntentID      *string
	StripeSubscriptionID *string
	CurrentPeriodEnd     *time.Time
	// IncrementPaid records one more successful charge.
	IncrementPaid bool
}

// SponsorshipFilter narrows sponsorship listings. Zero fields do not filter.
type SponsorshipFilter struct {
	SponsorID  *domain.UserID
	ExplorerID *domain.UserID
	Status     domain.SponsorshipStatus
}

// SponsorshipStorage persists sponsorships.
type SponsorshipStorage interface {
	CreateSponsorship(ctx context.Context, sponsorship domain.Sponsorship) (*domain.Sponsorship, error)
	SponsorshipByID(ctx context.Context, id domain.SponsorshipID) (*domain.Sponsorship, error)
	SponsorshipByPaymentIntent(ctx context.Context, paymentIntentID string) (*domain.Sponsorship, error)
	SponsorshipBySubscription(ctx context.Context, subscriptionID string) (*domain.Sponsorship, error)
	UpdateSponsorship(ctx context.Context, id domain.SponsorshipID, updates SponsorshipUpdates) (*domain.Sponsorship, error)
	Sponsorships(ctx context.Context, filter SponsorshipFilter, cursor time.Time, limit uint) (Page[domain.Sponsorship], error)
	// EarnedTotal sums the net of every successful charge received by the explorer.
	EarnedTotal(ctx context.Context, explorerID domain.UserID) (int64, error)
}
