package expedition

import (
	"context"
	"journal/pkg/domain"
	"time"
)

// Input is a new expedition.
type Input struct {
	Title       string
	Description string
	Status      domain.ExpeditionStatus
	Visibility  domain.Visibility
	StartDate   time.Time
	EndDate     time.Time
}

// UpdateInput lists the fields to change. Nil fields are left untouched.
type UpdateInput struct {
	Title       *string
	Description *string
	Status      *domain.ExpeditionStatus
	Visibility  *domain.Visibility
	StartDate   *time.Time
	EndDate     *time.Time
}

//go:generate mockgen -package mockexpedition -source=interface.go -destination=mock/mockexpedition.go *
type Service interface {
	Create(ctx context.Context, author domain.UserID, input Input) (*domain.Expedition, error)
	Update(ctx context.Context, author domain.UserID, id domain.ExpeditionID, input UpdateInput) (*domain.Expedition, error)
	Delete(ctx context.Context, author domain.UserID, id domain.ExpeditionID) error
	Get(ctx context.Context, viewer domain.UserID, id domain.ExpeditionID) (*domain.ExpeditionDetails, error)
	ListByAuthor(ctx context.Context, viewer domain.UserID, username, cursor string, limit uint) ([]domain.Expedition, string, error)
	AttachEntry(ctx context.Context, author domain.UserID, id domain.ExpeditionID, entryID domain.EntryID) error
	DetachEntry(ctx context.Context, author domain.UserID, id domain.ExpeditionID, entryID domain.EntryID) error
}
