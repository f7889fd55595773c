package storage

import (
	"context"
	"journal/pkg/domain"
	"time"
)

// ExpeditionUpdates lists the expedition fields to change. Nil fields are left untouched.
type ExpeditionUpdates struct {
	Title       *string
	Description *string
	Status      *domain.ExpeditionStatus
	Visibility  *domain.Visibility
	StartDate   *time.Time
	EndDate     *time.Time
}

// ExpeditionStorage persists expeditions.
type ExpeditionStorage interface {
	CreateExpedition(ctx context.Context, expedition domain.Expedition) (*domain.Expedition, error)
	ExpeditionByID(ctx context.Context, id domain.ExpeditionID) (*domain.Expedition, error)
	UpdateExpedition(ctx context.Context, id domain.ExpeditionID, updates ExpeditionUpdates) (*domain.Expedition, error)
	DeleteExpedition(ctx context.Context, authorID domain.UserID, id domain.ExpeditionID) (*domain.Expedition, error)
	Expeditions(ctx context.Context, authorID domain.UserID, publicOnly bool, cursor time.Time, limit uint) (Page[domain.Expedition], error)
	CountExpeditions(ctx context.Context, authorID domain.UserID, publicOnly bool) (int64, error)
}
