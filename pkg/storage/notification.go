package storage

import (
	"context"
	"journal/pkg/domain"
	"time"
)

// NotificationStorage persists in-app notifications.
type NotificationStorage interface {
	CreateNotifications(ctx context.Context, notifications []domain.Notification) (int64, error)
	Notifications(ctx context.Context, userID domain.UserID, cursor time.Time, limit uint) (Page[domain.Notification], error)
	UnreadNotificationCount(ctx context.Context, userID domain.UserID) (int64, error)
	MarkNotificationRead(ctx context.Context, userID domain.UserID, id domain.NotificationID) (bool, error)
	MarkAllNotificationsRead(ctx context.Context, userID domain.UserID) (int64, error)
}
