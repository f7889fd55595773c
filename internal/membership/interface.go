package membership

import (
	"context"
	"journal/pkg/domain"
	"journal/pkg/payments"
	"journal/pkg/storage"
)

//go:generate mockgen -package mockmembership -source=interface.go -destination=mock/mockmembership.go *
type Service interface {
	Subscribe(ctx context.Context, user domain.UserID, plan domain.MembershipPlan) (*domain.MembershipCheckout, error)
	Current(ctx context.Context, user domain.UserID) (*domain.Membership, error)
	Cancel(ctx context.Context, user domain.UserID) (*domain.Membership, error)
	// ExpireIncomplete cancels memberships whose first invoice was never paid.
	ExpireIncomplete(ctx context.Context) (int64, error)
	HandleEvent(ctx context.Context, tx storage.AllStorage, event payments.Event) error
}
