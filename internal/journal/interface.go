package journal

import (
	"context"
	"journal/pkg/domain"
	"journal/pkg/geocoder"
	"time"
)

// EntryInput is a new journal entry.
type EntryInput struct {
	Title        string
	Content      string
	Place        string
	Location     *domain.Point
	Date         time.Time
	Visibility   domain.Visibility
	IsDraft      bool
	ExpeditionID *domain.ExpeditionID
}

// EntryUpdateInput lists the entry fields to change. Nil fields are left untouched.
type EntryUpdateInput struct {
	Title         *string
	Content       *string
	Place         *string
	Location      *domain.Point
	ClearLocation bool
	Date          *time.Time
	Visibility    *domain.Visibility
	IsDraft       *bool
}

//go:generate mockgen -package mockjournal -source=interface.go -destination=mock/mockjournal.go *
type Service interface {
	Create(ctx context.Context, author domain.UserID, input EntryInput) (*domain.Entry, error)
	Update(ctx context.Context, author domain.UserID, id domain.EntryID, input EntryUpdateInput) (*domain.Entry, error)
	Delete(ctx context.Context, author domain.UserID, id domain.EntryID) error
	Get(ctx context.Context, viewer domain.UserID, id domain.EntryID) (*domain.Entry, error)
	ListByAuthor(ctx context.Context, viewer domain.UserID, username, cursor string, limit uint) ([]domain.Entry, string, error)
	PublicFeed(ctx context.Context, cursor string, limit uint) ([]domain.Entry, string, error)
	FollowingFeed(ctx context.Context, user domain.UserID, cursor string, limit uint) ([]domain.Entry, string, error)
	InBoundingBox(ctx context.Context, box domain.BoundingBox, cursor string, limit uint) ([]domain.Entry, string, error)
	SearchPlaces(ctx context.Context, query string) ([]geocoder.Place, error)
}
