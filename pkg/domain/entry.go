package domain

import "time"

// Visibility controls who can read an entry or an expedition.
type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
)

func (v Visibility) Valid() bool {
	return v == VisibilityPublic || v == VisibilityPrivate
}

// Entry is a geo-tagged journal entry.
type Entry struct {
	ID           EntryID
	AuthorID     UserID
	ExpeditionID *ExpeditionID

	Title string
	// Content is sanitized HTML.
	Content string
	// Place is a human readable location, usually resolved from Location.
	Place    string
	Location *Point
	// Date is when the journaled events happened, not when the entry was written.
	Date time.Time

	Visibility Visibility
	IsDraft    bool

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt time.Time
}

// IsPublished reports whether the entry can be shown to anyone besides its author.
func (e Entry) IsPublished() bool {
	return e.Visibility == VisibilityPublic && !e.IsDraft
}

// VisibleTo reports whether viewer may read the entry. A zero viewer is anonymous.
func (e Entry) VisibleTo(viewer UserID) bool {
	return e.IsPublished() || (viewer != UserID{} && viewer == e.AuthorID)
}
