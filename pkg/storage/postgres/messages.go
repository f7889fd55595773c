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

const (
	messagesTable = "messages"
	webhooksTable = "webhook_events"
)

func (p *PgSQL) CreateMessage(ctx context.Context, message domain.Message) (*domain.Message, error) {
	var row PgMessage
	row.FromDomain(message)

	var out PgMessage
	if _, err := p.Builder.Insert(messagesTable).
		Rows(row).
		Returning(&PgMessage{}).
		Executor().ScanStructContext(ctx, &out); err != nil {
		return nil, wrapWriteErr(err, "could not store message into pg")
	}

	return out.ToDomain(), nil
}

func (p *PgSQL) Conversation(ctx context.Context,
	userID, otherID domain.UserID,
	cursor time.Time,
	limit uint) (storage.Page[domain.Message], error) {
	a, b := uuid.UUID(userID), uuid.UUID(otherID)
	ds := p.Builder.From(messagesTable).Where(goqu.Or(
		goqu.And(goqu.I("sender_id").Eq(a), goqu.I("recipient_id").Eq(b)),
		goqu.And(goqu.I("sender_id").Eq(b), goqu.I("recipient_id").Eq(a)),
	))

	var rows []PgMessage
	if err := paginate(ds, "created_at", "id", cursor, limit).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.Page[domain.Message]{}, fmt.Errorf("could not fetch conversation from pg: %w", err)
	}

	rows, next := trimPage(rows, limit, func(r *PgMessage) time.Time { return r.CreatedAt })

	return storage.Page[domain.Message]{
		Items:      toDomain(rows, (*PgMessage).ToDomain),
		NextCursor: next,
	}, nil
}

func (p *PgSQL) MarkConversationRead(ctx context.Context, recipientID, senderID domain.UserID) (int64, error) {
	res, err := p.Builder.Update(messagesTable).
		Set(goqu.Record{"is_read": true}).
		Where(
			goqu.I("recipient_id").Eq(uuid.UUID(recipientID)),
			goqu.I("sender_id").Eq(uuid.UUID(senderID)),
			goqu.I("is_read").IsFalse(),
		).
		Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not mark messages read in pg: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not get affected rows: %w", err)
	}

	return n, nil
}

func (p *PgSQL) RecordWebhookEvent(ctx context.Context, id, eventType string) (bool, error) {
	res, err := p.Builder.Insert(webhooksTable).
		Rows(goqu.Record{"id": id, "type": eventType}).
		OnConflict(goqu.DoNothing()).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not record webhook event in pg: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not get affected rows: %w", err)
	}

	return n > 0, nil
}
