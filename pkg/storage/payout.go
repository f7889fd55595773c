package storage

import (
	"context"
	"journal/pkg/domain"
	"time"
)

// PayoutUpdates lists the payout fields to change. Nil fields are left untouched.
type PayoutUpdates struct {
	Status        *domain.PayoutStatus
	TransferID    *string
	FailureReason *string
}

// PayoutStorage persists payouts.
type PayoutStorage interface {
	CreatePayout(ctx context.Context, payout domain.Payout) (*domain.Payout, error)
	PayoutByID(ctx context.Context, id domain.PayoutID) (*domain.Payout, error)
	UpdatePayout(ctx context.Context, id domain.PayoutID, updates PayoutUpdates) (*domain.Payout, error)
	Payouts(ctx context.Context, explorerID domain.UserID, cursor time.Time, limit uint) (Page[domain.Payout], error)
	// PaidOutTotal sums pending and paid payouts of the explorer.
	PaidOutTotal(ctx context.Context, explorerID domain.UserID) (int64, error)
}
