// Package journal implements journal entries: authoring, visibility and feeds.
package journal

import (
	"context"
	"fmt"
	"journal/internal/events"
	"journal/pkg/domain"
	"journal/pkg/geocoder"
	"journal/pkg/logger"
	"journal/pkg/sanitize"
	"journal/pkg/serrors"
	"journal/pkg/storage"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"
)

const (
	maxTitleLength   = 200
	maxContentLength = 100_000
	maxPlaceLength   = 200
	maxSearchLength  = 256
	placeSearchLimit = 5
)

// Deps are the collaborators of the journal service.
type Deps struct {
	Storage  storage.Storage
	Geocoder geocoder.Geocoder
	Emitter  *events.Emitter
}

type service struct {
	Deps
	now func() time.Time
}

func cleanTitle(title string) (string, error) {
	title = strings.TrimSpace(sanitize.Text(title))
	if title == "" || utf8.RuneCountInString(title) > maxTitleLength {
		return "", serrors.With(serrors.ErrBadRequest, "title must be 1 to %d characters", maxTitleLength)
	}

	return title, nil
}

func cleanContent(content string) (string, error) {
	content = strings.TrimSpace(sanitize.HTML(content))
	if utf8.RuneCountInString(content) > maxContentLength {
		return "", serrors.With(serrors.ErrBadRequest, "content must be at most %d characters", maxContentLength)
	}

	return content, nil
}

func cleanPlace(place string) (string, error) {
	place = strings.TrimSpace(sanitize.Text(place))
	if utf8.RuneCountInString(place) > maxPlaceLength {
		return "", serrors.With(serrors.ErrBadRequest, "place must be at most %d characters", maxPlaceLength)
	}

	return place, nil
}

func validLocation(p *domain.Point) error {
	if p == nil {
		return nil
	}
	if err := p.Validate(); err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid location")
	}

	return nil
}

// resolvePlace reverse geocodes p. Failures only cost the place name.
func (s *service) resolvePlace(ctx context.Context, p domain.Point) string {
	place, err := s.Geocoder.Reverse(ctx, p)
	if err != nil {
		logger.Warn(ctx, "could not reverse geocode entry location",
			zap.Float64("lat", p.Lat), zap.Float64("lon", p.Lon), zap.Error(err))

		return ""
	}
	if utf8.RuneCountInString(place) > maxPlaceLength {
		place = string([]rune(place)[:maxPlaceLength])
	}

	return place
}

// checkExpedition makes sure the expedition exists and belongs to author.
func checkExpedition(ctx context.Context, st storage.AllStorage, author domain.UserID, id domain.ExpeditionID) error {
	exp, err := st.ExpeditionByID(ctx, id)
	if err != nil {
		return fmt.Errorf("could not get expedition: %w", err)
	}
	if exp == nil || exp.AuthorID != author {
		return serrors.With(serrors.ErrBadRequest, "expedition not found")
	}

	return nil
}

func (s *service) Create(ctx context.Context, author domain.UserID, input EntryInput) (*domain.Entry, error) {
	entry := domain.Entry{
		AuthorID:     author,
		ExpeditionID: input.ExpeditionID,
		Location:     input.Location,
		Date:         input.Date,
		Visibility:   input.Visibility,
		IsDraft:      input.IsDraft,
	}
	var err error
	if entry.Title, err = cleanTitle(input.Title); err != nil {
		return nil, err
	}
	if entry.Content, err = cleanContent(input.Content); err != nil {
		return nil, err
	}
	if entry.Place, err = cleanPlace(input.Place); err != nil {
		return nil, err
	}
	if err := validLocation(entry.Location); err != nil {
		return nil, err
	}
	if entry.Visibility == "" {
		entry.Visibility = domain.VisibilityPublic
	}
	if !entry.Visibility.Valid() {
		return nil, serrors.With(serrors.ErrBadRequest, "invalid visibility %q", entry.Visibility)
	}
	if entry.Date.IsZero() {
		entry.Date = s.now().UTC()
	}
	if entry.Place == "" && entry.Location != nil {
		entry.Place = s.resolvePlace(ctx, *entry.Location)
	}

	var created *domain.Entry
	if err := s.Storage.WithTx(ctx, func(tx storage.AllStorage) error {
		if entry.ExpeditionID != nil {
			if err := checkExpedition(ctx, tx, author, *entry.ExpeditionID); err != nil {
				return err
			}
		}

		var err error
		if created, err = tx.CreateEntry(ctx, entry); err != nil {
			return fmt.Errorf("could not store entry: %w", err)
		}
		if created.IsPublished() {
			return s.Emitter.EntryPublished(ctx, tx, created.ID)
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not create entry: %w", err)
	}

	return created, nil
}

func (s *service) Update(ctx context.Context, author domain.UserID, id domain.EntryID, input EntryUpdateInput) (*domain.Entry, error) {
	updates := storage.EntryUpdates{
		Location:      input.Location,
		ClearLocation: input.ClearLocation,
		Date:          input.Date,
		Visibility:    input.Visibility,
		IsDraft:       input.IsDraft,
	}
	if input.Title != nil {
		title, err := cleanTitle(*input.Title)
		if err != nil {
			return nil, err
		}
		updates.Title = &title
	}
	if input.Content != nil {
		content, err := cleanContent(*input.Content)
		if err != nil {
			return nil, err
		}
		updates.Content = &content
	}
	if input.Place != nil {
		place, err := cleanPlace(*input.Place)
		if err != nil {
			return nil, err
		}
		updates.Place = &place
	}
	if err := validLocation(input.Location); err != nil {
		return nil, err
	}
	if input.Visibility != nil && !input.Visibility.Valid() {
		return nil, serrors.With(serrors.ErrBadRequest, "invalid visibility %q", *input.Visibility)
	}

	if updates.Place == nil && input.Location != nil && !input.ClearLocation {
		current, err := s.Storage.EntryByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("could not get entry: %w", err)
		}
		if current == nil || current.AuthorID != author {
			return nil, serrors.With(serrors.ErrNotFound, "entry not found")
		}
		if current.Location == nil || *current.Location != *input.Location {
			place := s.resolvePlace(ctx, *input.Location)
			updates.Place = &place
		}
	}

	var updated *domain.Entry
	if err := s.Storage.WithTx(ctx, func(tx storage.AllStorage) error {
		current, err := tx.EntryByID(ctx, id)
		if err != nil {
			return fmt.Errorf("could not get entry: %w", err)
		}
		if current == nil || current.AuthorID != author {
			return serrors.With(serrors.ErrNotFound, "entry not found")
		}

		if updated, err = tx.UpdateEntry(ctx, id, updates); err != nil {
			return fmt.Errorf("could not update entry: %w", err)
		}
		if updated == nil {
			return serrors.With(serrors.ErrNotFound, "entry not found")
		}
		if !current.IsPublished() && updated.IsPublished() {
			return s.Emitter.EntryPublished(ctx, tx, updated.ID)
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not update entry: %w", err)
	}

	return updated, nil
}

func (s *service) Delete(ctx context.Context, author domain.UserID, id domain.EntryID) error {
	deleted, err := s.Storage.DeleteEntry(ctx, author, id)
	if err != nil {
		return fmt.Errorf("could not delete entry: %w", err)
	}
	if deleted == nil {
		return serrors.With(serrors.ErrNotFound, "entry not found")
	}

	return nil
}

// Get hides drafts and private entries from everyone but their author.
func (s *service) Get(ctx context.Context, viewer domain.UserID, id domain.EntryID) (*domain.Entry, error) {
	entry, err := s.Storage.EntryByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get entry: %w", err)
	}
	if entry == nil || !entry.VisibleTo(viewer) {
		return nil, serrors.With(serrors.ErrNotFound, "entry not found")
	}

	return entry, nil
}

func (s *service) SearchPlaces(ctx context.Context, query string) ([]geocoder.Place, error) {
	query = strings.TrimSpace(query)
	if query == "" || utf8.RuneCountInString(query) > maxSearchLength {
		return nil, serrors.With(serrors.ErrBadRequest, "query must be 1 to %d characters", maxSearchLength)
	}

	places, err := s.Geocoder.Forward(ctx, query, placeSearchLimit)
	if err != nil {
		return nil, fmt.Errorf("could not search places: %w", err)
	}

	return places, nil
}

// New creates the journal service.
func New(deps Deps) Service {
	if deps.Geocoder == nil {
		deps.Geocoder = geocoder.Disabled{}
	}

	return &service{Deps: deps, now: time.Now}
}
