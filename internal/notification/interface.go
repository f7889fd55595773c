package notification

import (
	"context"
	"journal/pkg/domain"
)

//go:generate mockgen -package mocknotification -source=interface.go -destination=mock/mocknotification.go *
type Service interface {
	List(ctx context.Context, user domain.UserID, cursor string, limit uint) ([]domain.Notification, string, error)
	UnreadCount(ctx context.Context, user domain.UserID) (int64, error)
	MarkRead(ctx context.Context, user domain.UserID, id domain.NotificationID) error
	MarkAllRead(ctx context.Context, user domain.UserID) (int64, error)
}
