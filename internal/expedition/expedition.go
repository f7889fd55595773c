// Package expedition groups journal entries into trips with a derived path.
package expedition

import (
	"context"
	"fmt"
	"journal/pkg/domain"
	"journal/pkg/sanitize"
	"journal/pkg/serrors"
	"journal/pkg/storage"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	maxTitleLength       = 200
	maxDescriptionLength = 5000
)

type service struct {
	storage storage.Storage
}

func cleanTitle(title string) (string, error) {
	title = strings.TrimSpace(sanitize.Text(title))
	if title == "" || utf8.RuneCountInString(title) > maxTitleLength {
		return "", serrors.With(serrors.ErrBadRequest, "title must be 1 to %d characters", maxTitleLength)
	}

	return title, nil
}

func cleanDescription(description string) (string, error) {
	description = strings.TrimSpace(sanitize.Text(description))
	if utf8.RuneCountInString(description) > maxDescriptionLength {
		return "", serrors.With(serrors.ErrBadRequest, "description must be at most %d characters", maxDescriptionLength)
	}

	return description, nil
}

func checkDates(start, end time.Time) error {
	if !start.IsZero() && !end.IsZero() && end.Before(start) {
		return serrors.With(serrors.ErrBadRequest, "end date must not be before start date")
	}

	return nil
}

func (s service) Create(ctx context.Context, author domain.UserID, input Input) (*domain.Expedition, error) {
	exp := domain.Expedition{
		AuthorID:   author,
		Status:     input.Status,
		Visibility: input.Visibility,
		StartDate:  input.StartDate,
		EndDate:    input.EndDate,
	}
	var err error
	if exp.Title, err = cleanTitle(input.Title); err != nil {
		return nil, err
	}
	if exp.Description, err = cleanDescription(input.Description); err != nil {
		return nil, err
	}
	if exp.Status == "" {
		exp.Status = domain.ExpeditionPlanned
	}
	if exp.Visibility == "" {
		exp.Visibility = domain.VisibilityPublic
	}
	if !exp.Status.Valid() {
		return nil, serrors.With(serrors.ErrBadRequest, "invalid status %q", exp.Status)
	}
	if !exp.Visibility.Valid() {
		return nil, serrors.With(serrors.ErrBadRequest, "invalid visibility %q", exp.Visibility)
	}
	if err := checkDates(exp.StartDate, exp.EndDate); err != nil {
		return nil, err
	}

	created, err := s.storage.CreateExpedition(ctx, exp)
	if err != nil {
		return nil, fmt.Errorf("could not store expedition: %w", err)
	}

	return created, nil
}

func (s service) owned(ctx context.Context, st storage.AllStorage, author domain.UserID, id domain.ExpeditionID) (*domain.Expedition, error) {
	exp, err := st.ExpeditionByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get expedition: %w", err)
	}
	if exp == nil || exp.AuthorID != author {
		return nil, serrors.With(serrors.ErrNotFound, "expedition not found")
	}

	return exp, nil
}

func (s service) Update(ctx context.Context, author domain.UserID, id domain.ExpeditionID, input UpdateInput) (*domain.Expedition, error) {
	updates := storage.ExpeditionUpdates{
		Status:     input.Status,
		Visibility: input.Visibility,
		StartDate:  input.StartDate,
		EndDate:    input.EndDate,
	}
	if input.Title != nil {
		title, err := cleanTitle(*input.Title)
		if err != nil {
			return nil, err
		}
		updates.Title = &title
	}
	if input.Description != nil {
		description, err := cleanDescription(*input.Description)
		if err != nil {
			return nil, err
		}
		updates.Description = &description
	}
	if input.Status != nil && !input.Status.Valid() {
		return nil, serrors.With(serrors.ErrBadRequest, "invalid status %q", *input.Status)
	}
	if input.Visibility != nil && !input.Visibility.Valid() {
		return nil, serrors.With(serrors.ErrBadRequest, "invalid visibility %q", *input.Visibility)
	}

	current, err := s.owned(ctx, s.storage, author, id)
	if err != nil {
		return nil, err
	}
	start, end := current.StartDate, current.EndDate
	if input.StartDate != nil {
		start = *input.StartDate
	}
	if input.EndDate != nil {
		end = *input.EndDate
	}
	if err := checkDates(start, end); err != nil {
		return nil, err
	}

	updated, err := s.storage.UpdateExpedition(ctx, id, updates)
	if err != nil {
		return nil, fmt.Errorf("could not update expedition: %w", err)
	}
	if updated == nil {
		return nil, serrors.With(serrors.ErrNotFound, "expedition not found")
	}

	return updated, nil
}

// Delete soft deletes the expedition and detaches its entries, which stay published.
func (s service) Delete(ctx context.Context, author domain.UserID, id domain.ExpeditionID) error {
	return s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		deleted, err := tx.DeleteExpedition(ctx, author, id)
		if err != nil {
			return fmt.Errorf("could not delete expedition: %w", err)
		}
		if deleted == nil {
			return serrors.With(serrors.ErrNotFound, "expedition not found")
		}
		if _, err := tx.DetachExpeditionEntries(ctx, id); err != nil {
			return fmt.Errorf("could not detach entries: %w", err)
		}

		return nil
	})
}

// Path derives the route of an expedition from its located entries, in date order.
func Path(entries []domain.Entry) []domain.Waypoint {
	path := make([]domain.Waypoint, 0, len(entries))
	for _, e := range entries {
		if e.Location == nil {
			continue
		}
		path = append(path, domain.Waypoint{
			EntryID: e.ID,
			Title:   e.Title,
			Place:   e.Place,
			Point:   *e.Location,
			Date:    e.Date,
		})
	}

	return path
}

// Get returns the expedition with the entries visible to viewer and the path through them.
func (s service) Get(ctx context.Context, viewer domain.UserID, id domain.ExpeditionID) (*domain.ExpeditionDetails, error) {
	exp, err := s.storage.ExpeditionByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get expedition: %w", err)
	}
	if exp == nil || !exp.VisibleTo(viewer) {
		return nil, serrors.With(serrors.ErrNotFound, "expedition not found")
	}

	entries, err := s.storage.ExpeditionEntries(ctx, id, viewer != exp.AuthorID)
	if err != nil {
		return nil, fmt.Errorf("could not get expedition entries: %w", err)
	}

	return &domain.ExpeditionDetails{
		Expedition: *exp,
		Entries:    entries,
		Path:       Path(entries),
	}, nil
}

func (s service) ListByAuthor(ctx context.Context, viewer domain.UserID, username, cursor string, limit uint) ([]domain.Expedition, string, error) {
	author, err := s.storage.UserByUsername(ctx, username)
	if err != nil {
		return nil, "", fmt.Errorf("could not get user: %w", err)
	}
	if author == nil {
		return nil, "", serrors.With(serrors.ErrNotFound, "user %q not found", username)
	}
	cursorTime, err := storage.ParseCursor(cursor)
	if err != nil {
		return nil, "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
	}

	page, err := s.storage.Expeditions(ctx, author.ID, viewer != author.ID, cursorTime, storage.PageSize(limit))
	if err != nil {
		return nil, "", fmt.Errorf("could not list expeditions: %w", err)
	}

	return page.Items, page.Cursor(), nil
}

// AttachEntry moves an entry into the expedition. Both must belong to author.
func (s service) AttachEntry(ctx context.Context, author domain.UserID, id domain.ExpeditionID, entryID domain.EntryID) error {
	return s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		if _, err := s.owned(ctx, tx, author, id); err != nil {
			return err
		}
		entry, err := tx.EntryByID(ctx, entryID)
		if err != nil {
			return fmt.Errorf("could not get entry: %w", err)
		}
		if entry == nil || entry.AuthorID != author {
			return serrors.With(serrors.ErrNotFound, "entry not found")
		}
		if _, err := tx.UpdateEntry(ctx, entryID, storage.EntryUpdates{ExpeditionID: &id}); err != nil {
			return fmt.Errorf("could not attach entry: %w", err)
		}

		return nil
	})
}

func (s service) DetachEntry(ctx context.Context, author domain.UserID, id domain.ExpeditionID, entryID domain.EntryID) error {
	return s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		if _, err := s.owned(ctx, tx, author, id); err != nil {
			return err
		}
		entry, err := tx.EntryByID(ctx, entryID)
		if err != nil {
			return fmt.Errorf("could not get entry: %w", err)
		}
		if entry == nil || entry.ExpeditionID == nil || *entry.ExpeditionID != id {
			return serrors.With(serrors.ErrNotFound, "entry is not part of the expedition")
		}
		if _, err := tx.UpdateEntry(ctx, entryID, storage.EntryUpdates{ClearExpedition: true}); err != nil {
			return fmt.Errorf("could not detach entry: %w", err)
		}

		return nil
	})
}

// New creates the expedition service.
func New(st storage.Storage) Service {
	return service{storage: st}
}
