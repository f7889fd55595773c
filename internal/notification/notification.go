// Package notification reads in-app notifications. They are written by the
// notification and fan out workers only.
package notification

import (
	"context"
	"fmt"
	"journal/pkg/domain"
	"journal/pkg/serrors"
	"journal/pkg/storage"
)

type service struct {
	storage storage.Storage
}

func (s service) List(ctx context.Context, user domain.UserID, cursor string, limit uint) ([]domain.Notification, string, error) {
	cursorTime, err := storage.ParseCursor(cursor)
	if err != nil {
		return nil, "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
	}
	page, err := s.storage.Notifications(ctx, user, cursorTime, storage.PageSize(limit))
	if err != nil {
		return nil, "", fmt.Errorf("could not list notifications: %w", err)
	}

	return page.Items, page.Cursor(), nil
}

func (s service) UnreadCount(ctx context.Context, user domain.UserID) (int64, error) {
	n, err := s.storage.UnreadNotificationCount(ctx, user)
	if err != nil {
		return 0, fmt.Errorf("could not count notifications: %w", err)
	}

	return n, nil
}

func (s service) MarkRead(ctx context.Context, user domain.UserID, id domain.NotificationID) error {
	found, err := s.storage.MarkNotificationRead(ctx, user, id)
	if err != nil {
		return fmt.Errorf("could not mark notification read: %w", err)
	}
	if !found {
		return serrors.With(serrors.ErrNotFound, "notification not found")
	}

	return nil
}

func (s service) MarkAllRead(ctx context.Context, user domain.UserID) (int64, error) {
	n, err := s.storage.MarkAllNotificationsRead(ctx, user)
	if err != nil {
		return 0, fmt.Errorf("could not mark notifications read: %w", err)
	}

	return n, nil
}

func New(st storage.Storage) Service {
	return service{storage: st}
}
