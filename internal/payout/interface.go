package payout

import (
	"context"
	"journal/pkg/domain"
	"journal/pkg/payments"
	"journal/pkg/storage"
)

//go:generate mockgen -package mockpayout -source=interface.go -destination=mock/mockpayout.go *
type Service interface {
	// Onboard returns a link to the provider's onboarding of the explorer's connected account.
	Onboard(ctx context.Context, principal domain.Principal) (*payments.AccountLink, error)
	Balance(ctx context.Context, explorer domain.UserID) (*domain.Balance, error)
	Request(ctx context.Context, explorer domain.UserID, amount int64) (*domain.Payout, error)
	List(ctx context.Context, explorer domain.UserID, cursor string, limit uint) ([]domain.Payout, string, error)
	HandleEvent(ctx context.Context, tx storage.AllStorage, event payments.Event) error
}
