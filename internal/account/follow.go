package account

import (
	"context"
	"fmt"
	"journal/pkg/domain"
	"journal/pkg/serrors"
	"journal/pkg/storage"
	"time"
)

// Follow is idempotent. A follow notification is emitted only for new edges.
func (s *service) Follow(ctx context.Context, follower domain.UserID, username string) error {
	followee, err := s.userByUsername(ctx, username)
	if err != nil {
		return err
	}
	if followee.ID == follower {
		return serrors.With(serrors.ErrBadRequest, "you cannot follow yourself")
	}

	return s.Storage.WithTx(ctx, func(tx storage.AllStorage) error {
		created, err := tx.Follow(ctx, follower, followee.ID)
		if err != nil {
			return fmt.Errorf("could not follow: %w", err)
		}
		if !created {
			return nil
		}

		return s.Emitter.Notify(ctx, tx, domain.Notification{
			UserID:  followee.ID,
			ActorID: &follower,
			Kind:    domain.NotificationFollow,
		})
	})
}

// Unfollow is idempotent.
func (s *service) Unfollow(ctx context.Context, follower domain.UserID, username string) error {
	followee, err := s.userByUsername(ctx, username)
	if err != nil {
		return err
	}
	if _, err := s.Storage.Unfollow(ctx, follower, followee.ID); err != nil {
		return fmt.Errorf("could not unfollow: %w", err)
	}

	return nil
}

type listFunc func(ctx context.Context, userID domain.UserID, cursor time.Time, limit uint) (storage.Page[domain.User], error)

func (s *service) list(ctx context.Context, fn listFunc, username, cursor string, limit uint) ([]domain.User, string, error) {
	user, err := s.userByUsername(ctx, username)
	if err != nil {
		return nil, "", err
	}
	cursorTime, err := storage.ParseCursor(cursor)
	if err != nil {
		return nil, "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
	}

	page, err := fn(ctx, user.ID, cursorTime, storage.PageSize(limit))
	if err != nil {
		return nil, "", fmt.Errorf("could not list users: %w", err)
	}

	return page.Items, page.Cursor(), nil
}

func (s *service) Followers(ctx context.Context, username, cursor string, limit uint) ([]domain.User, string, error) {
	return s.list(ctx, s.Storage.Followers, username, cursor, limit)
}

func (s *service) Following(ctx context.Context, username, cursor string, limit uint) ([]domain.User, string, error) {
	return s.list(ctx, s.Storage.Following, username, cursor, limit)
}
