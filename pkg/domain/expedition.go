package domain

import "time"

// ExpeditionStatus is the lifecycle state of an expedition.
type ExpeditionStatus string

const (
	ExpeditionPlanned   ExpeditionStatus = "planned"
	ExpeditionActive    ExpeditionStatus = "active"
	ExpeditionCompleted ExpeditionStatus = "completed"
)

func (s ExpeditionStatus) Valid() bool {
	switch s {
	case ExpeditionPlanned, ExpeditionActive, ExpeditionCompleted:
		return true
	default:
		return false
	}
}

// Expedition groups journal entries into a trip.
type Expedition struct {
	ID          ExpeditionID
	AuthorID    UserID
	Title       string
	Description string
	Status      ExpeditionStatus
	Visibility  Visibility
	StartDate   time.Time
	EndDate     time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt time.Time
}

// VisibleTo reports whether viewer may read the expedition.
func (e Expedition) VisibleTo(viewer UserID) bool {
	return e.Visibility == VisibilityPublic || (viewer != UserID{} && viewer == e.AuthorID)
}

// Waypoint is one stop of an expedition path, derived from an entry.
type Waypoint struct {
	EntryID EntryID
	Title   string
	Place   string
	Point   Point
	Date    time.Time
}

// ExpeditionDetails is an expedition with its entries and ordered path.
type ExpeditionDetails struct {
	Expedition Expedition
	Entries    []Entry
	Path       []Waypoint
}
