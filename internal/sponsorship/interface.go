package sponsorship

import (
	"context"
	"journal/pkg/domain"
	"journal/pkg/payments"
	"journal/pkg/storage"
)

type TierInput struct {
	Title       string
	Description string
	Price       int64
	Interval    domain.TierInterval
}

// TierUpdateInput lists the tier fields to change. Nil fields are left untouched.
type TierUpdateInput struct {
	Title       *string
	Description *string
	Price       *int64
	Active      *bool
}

// CheckoutInput starts a sponsorship of Explorer. With a TierID the amount
// and type come from the tier, otherwise from Amount and Type.
type CheckoutInput struct {
	Explorer string
	TierID   *domain.TierID
	Amount   int64
	Type     domain.SponsorshipType
	Message  string
}

//go:generate mockgen -package mocksponsorship -source=interface.go -destination=mock/mocksponsorship.go *
type Service interface {
	CreateTier(ctx context.Context, principal domain.Principal, input TierInput) (*domain.SponsorshipTier, error)
	UpdateTier(ctx context.Context, principal domain.Principal, id domain.TierID, input TierUpdateInput) (*domain.SponsorshipTier, error)
	DeleteTier(ctx context.Context, principal domain.Principal, id domain.TierID) error
	Tiers(ctx context.Context, viewer domain.UserID, username string) ([]domain.SponsorshipTier, error)
	Checkout(ctx context.Context, sponsor domain.UserID, input CheckoutInput) (*domain.Checkout, error)
	Cancel(ctx context.Context, sponsor domain.UserID, id domain.SponsorshipID) (*domain.Sponsorship, error)
	Given(ctx context.Context, sponsor domain.UserID, cursor string, limit uint) ([]domain.Sponsorship, string, error)
	Received(ctx context.Context, explorer domain.UserID, cursor string, limit uint) ([]domain.Sponsorship, string, error)
	HandleEvent(ctx context.Context, tx storage.AllStorage, event payments.Event) error
}
