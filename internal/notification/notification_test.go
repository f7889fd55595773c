package notification_test

import (
	"context"
	"journal/internal/notification"
	"journal/pkg/domain"
	"journal/pkg/serrors"
	"journal/pkg/storage"
	mockstorage "journal/pkg/storage/mock"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestList(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	svc := notification.New(st)
	user := domain.UserID(uuid.New())
	next := time.Date(2026, 10, 1, 12, 0, 0, 500, time.UTC)

	st.EXPECT().Notifications(gomock.Any(), user, time.Time{}, uint(20)).
		Return(storage.Page[domain.Notification]{Items: []domain.Notification{{UserID: user}}, NextCursor: &next}, nil)
	items, cursor, err := svc.List(context.Background(), user, "", 0)
	require.NoError(t, err)
	require.Len(t, items, 1)

	st.EXPECT().Notifications(gomock.Any(), user, next, uint(5)).Return(storage.Page[domain.Notification]{}, nil)
	_, cursor, err = svc.List(context.Background(), user, cursor, 5)
	require.NoError(t, err)
	require.Empty(t, cursor)

	_, _, err = svc.List(context.Background(), user, "yesterday", 5)
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestMarkRead(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	svc := notification.New(st)
	user := domain.UserID(uuid.New())
	id := domain.NotificationID(uuid.New())

	st.EXPECT().MarkNotificationRead(gomock.Any(), user, id).Return(true, nil)
	require.NoError(t, svc.MarkRead(context.Background(), user, id))

	st.EXPECT().MarkNotificationRead(gomock.Any(), user, id).Return(false, nil)
	require.ErrorIs(t, svc.MarkRead(context.Background(), user, id), serrors.ErrNotFound)

	st.EXPECT().MarkAllNotificationsRead(gomock.Any(), user).Return(int64(4), nil)
	n, err := svc.MarkAllRead(context.Background(), user)
	require.NoError(t, err)
	require.Equal(t, int64(4), n)

	st.EXPECT().UnreadNotificationCount(gomock.Any(), user).Return(int64(0), nil)
	n, err = svc.UnreadCount(context.Background(), user)
	require.NoError(t, err)
	require.Zero(t, n)
}
