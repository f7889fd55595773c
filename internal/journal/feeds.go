package journal

import (
	"context"
	"fmt"
	"journal/pkg/domain"
	"journal/pkg/serrors"
	"journal/pkg/storage"
)

func (s *service) list(ctx context.Context, filter storage.EntryFilter, cursor string, limit uint) ([]domain.Entry, string, error) {
	cursorTime, err := storage.ParseCursor(cursor)
	if err != nil {
		return nil, "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
	}

	page, err := s.Storage.Entries(ctx, filter, cursorTime, storage.PageSize(limit))
	if err != nil {
		return nil, "", fmt.Errorf("could not list entries: %w", err)
	}

	return page.Items, page.Cursor(), nil
}

// ListByAuthor lists the entries of username. Authors see their drafts and
// private entries, everyone else only published ones.
func (s *service) ListByAuthor(ctx context.Context, viewer domain.UserID, username, cursor string, limit uint) ([]domain.Entry, string, error) {
	author, err := s.Storage.UserByUsername(ctx, username)
	if err != nil {
		return nil, "", fmt.Errorf("could not get user: %w", err)
	}
	if author == nil {
		return nil, "", serrors.With(serrors.ErrNotFound, "user %q not found", username)
	}

	return s.list(ctx, storage.EntryFilter{
		AuthorID:      &author.ID,
		PublishedOnly: viewer != author.ID,
	}, cursor, limit)
}

func (s *service) PublicFeed(ctx context.Context, cursor string, limit uint) ([]domain.Entry, string, error) {
	return s.list(ctx, storage.EntryFilter{PublishedOnly: true}, cursor, limit)
}

// FollowingFeed lists published entries of the users followed by user.
func (s *service) FollowingFeed(ctx context.Context, user domain.UserID, cursor string, limit uint) ([]domain.Entry, string, error) {
	return s.list(ctx, storage.EntryFilter{FollowedBy: &user, PublishedOnly: true}, cursor, limit)
}

// InBoundingBox lists published entries located inside box. Boxes may cross
// the antimeridian (west > east).
func (s *service) InBoundingBox(ctx context.Context, box domain.BoundingBox, cursor string, limit uint) ([]domain.Entry, string, error) {
	if err := box.Validate(); err != nil {
		return nil, "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid bounding box")
	}

	return s.list(ctx, storage.EntryFilter{Bounds: &box, PublishedOnly: true}, cursor, limit)
}
