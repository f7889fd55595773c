package storage

import (
	"fmt"
	"time"
)

// Page is one page of a cursor paginated listing ordered by creation time,
// newest first. NextCursor is nil on the last page.
type Page[T any] struct {
	Items      []T
	NextCursor *time.Time
}

// Cursor returns the opaque text form of NextCursor, empty on the last page.
func (p Page[T]) Cursor() string {
	if p.NextCursor == nil {
		return ""
	}

	return p.NextCursor.UTC().Format(time.RFC3339Nano)
}

// ParseCursor parses a cursor returned by Page.Cursor. An empty cursor is the
// zero time, which starts from the newest row.
func ParseCursor(cursor string) (time.Time, error) {
	if cursor == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339Nano, cursor)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid cursor %q: %w", cursor, err)
	}

	return t, nil
}

const (
	DefaultPageSize uint = 20
	MaxPageSize     uint = 100
)

// PageSize clamps a requested page size to (0, MaxPageSize].
func PageSize(limit uint) uint {
	switch {
	case limit == 0:
		return DefaultPageSize
	case limit > MaxPageSize:
		return MaxPageSize
	default:
		return limit
	}
}
