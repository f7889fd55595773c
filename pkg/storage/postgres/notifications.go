package postgres

import (
	"context"
	"fmt"
	"journal/pkg/domain"
	"journal/pkg/storage"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const notificationsTable = "notifications"

func (p *PgSQL) CreateNotifications(ctx context.Context, notifications []domain.Notification) (int64, error) {
	if len(notifications) == 0 {
		return 0, nil
	}

	rows := make([]PgNotification, len(notifications))
	for i, n := range notifications {
		rows[i].FromDomain(n)
	}

	res, err := p.Builder.Insert(notificationsTable).
		Rows(rows).
		Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not store notifications into pg: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not get affected rows: %w", err)
	}

	return n, nil
}

func (p *PgSQL) Notifications(ctx context.Context,
	userID domain.UserID,
	cursor time.Time,
	limit uint) (storage.Page[domain.Notification], error) {
	ds := p.Builder.From(notificationsTable).Where(goqu.I("user_id").Eq(uuid.UUID(userID)))

	var rows []PgNotification
	if err := paginate(ds, "created_at", "id", cursor, limit).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.Page[domain.Notification]{}, fmt.Errorf("could not fetch notifications from pg: %w", err)
	}

	rows, next := trimPage(rows, limit, func(r *PgNotification) time.Time { return r.CreatedAt })

	return storage.Page[domain.Notification]{
		Items:      toDomain(rows, (*PgNotification).ToDomain),
		NextCursor: next,
	}, nil
}

func (p *PgSQL) UnreadNotificationCount(ctx context.Context, userID domain.UserID) (int64, error) {
	n, err := p.Builder.From(notificationsTable).
		Where(goqu.I("user_id").Eq(uuid.UUID(userID)), goqu.I("is_read").IsFalse()).
		CountContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not count notifications in pg: %w", err)
	}

	return n, nil
}

func (p *PgSQL) MarkNotificationRead(ctx context.Context, userID domain.UserID, id domain.NotificationID) (bool, error) {
	res, err := p.Builder.Update(notificationsTable).
		Set(goqu.Record{"is_read": true}).
		Where(goqu.I("id").Eq(uuid.UUID(id)), goqu.I("user_id").Eq(uuid.UUID(userID))).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not mark notification read in pg: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not get affected rows: %w", err)
	}

	return n > 0, nil
}

func (p *PgSQL) MarkAllNotificationsRead(ctx context.Context, userID domain.UserID) (int64, error) {
	res, err := p.Builder.Update(notificationsTable).
		Set(goqu.Record{"is_read": true}).
		Where(goqu.I("user_id").Eq(uuid.UUID(userID)), goqu.I("is_read").IsFalse()).
		Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not mark notifications read in pg: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not get affected rows: %w", err)
	}

	return n, nil
}
