package storage

import (
	"context"
	"journal/pkg/domain"
	"time"
)

// EntryUpdates lists the entry fields to change. Nil fields are left untouched.
type EntryUpdates struct {
	Title      *string
	Content    *string
	Place      *string
	Location   *domain.Point
	Date       *time.Time
	Visibility *domain.Visibility
	IsDraft    *bool
	// ClearLocation removes the coordinates. It wins over Location.
	ClearLocation bool
	ExpeditionID  *domain.ExpeditionID
	// ClearExpedition detaches the entry. It wins over ExpeditionID.
	ClearExpedition bool
}

// EntryFilter narrows entry listings. Zero fields do not filter.
type EntryFilter struct {
	AuthorID *domain.UserID
	// AuthorIDs restricts results to any of the given authors. An empty
	// non-nil slice matches nothing.
	AuthorIDs []domain.UserID
	// FollowedBy restricts results to authors followed by this user.
	FollowedBy *domain.UserID
	// PublishedOnly hides drafts and private entries.
	PublishedOnly bool
	Bounds        *domain.BoundingBox
}

// EntryStorage persists journal entries.
type EntryStorage interface {
	CreateEntry(ctx context.Context, entry domain.Entry) (*domain.Entry, error)
	EntryByID(ctx context.Context, id domain.EntryID) (*domain.Entry, error)
	UpdateEntry(ctx context.Context, id domain.EntryID, updates EntryUpdates) (*domain.Entry, error)
	// DeleteEntry soft deletes an entry owned by authorID and returns it, or nil when not found.
	DeleteEntry(ctx context.Context, authorID domain.UserID, id domain.EntryID) (*domain.Entry, error)
	Entries(ctx context.Context, filter EntryFilter, cursor time.Time, limit uint) (Page[domain.Entry], error)
	// ExpeditionEntries returns the entries of an expedition ordered by date, oldest first.
	ExpeditionEntries(ctx context.Context, expeditionID domain.ExpeditionID, publishedOnly bool) ([]domain.Entry, error)
	CountEntries(ctx context.Context, authorID domain.UserID, publishedOnly bool) (int64, error)
	// DetachExpeditionEntries clears the expedition of all its entries.
	DetachExpeditionEntries(ctx context.Context, expeditionID domain.ExpeditionID) (int64, error)
}
