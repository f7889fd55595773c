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

const payoutsTable = "payouts"

func (p *PgSQL) CreatePayout(ctx context.Context, payout domain.Payout) (*domain.Payout, error) {
	var row PgPayout
	row.FromDomain(payout)

	var out PgPayout
	if _, err := p.Builder.Insert(payoutsTable).
		Rows(row).
		Returning(&PgPayout{}).
		Executor().ScanStructContext(ctx, &out); err != nil {
		return nil, wrapWriteErr(err, "could not store payout into pg")
	}

	return out.ToDomain(), nil
}

func (p *PgSQL) PayoutByID(ctx context.Context, id domain.PayoutID) (*domain.Payout, error) {
	var row PgPayout
	found, err := p.Builder.From(payoutsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch payout by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) UpdatePayout(ctx context.Context, id domain.PayoutID, updates storage.PayoutUpdates) (*domain.Payout, error) {
	rec := goqu.Record{"updated_at": goqu.L("CURRENT_TIMESTAMP")}
	setIf(rec, "transfer_id", updates.TransferID)
	setIf(rec, "failure_reason", updates.FailureReason)
	if updates.Status != nil {
		rec["status"] = string(*updates.Status)
	}

	var row PgPayout
	found, err := p.Builder.Update(payoutsTable).
		Set(rec).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Returning(&PgPayout{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update payout in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) Payouts(ctx context.Context,
	explorerID domain.UserID,
	cursor time.Time,
	limit uint) (storage.Page[domain.Payout], error) {
	ds := p.Builder.From(payoutsTable).Where(goqu.I("explorer_id").Eq(uuid.UUID(explorerID)))

	var rows []PgPayout
	if err := paginate(ds, "created_at", "id", cursor, limit).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.Page[domain.Payout]{}, fmt.Errorf("could not fetch payouts from pg: %w", err)
	}

	rows, next := trimPage(rows, limit, func(r *PgPayout) time.Time { return r.CreatedAt })

	return storage.Page[domain.Payout]{
		Items:      toDomain(rows, (*PgPayout).ToDomain),
		NextCursor: next,
	}, nil
}

func (p *PgSQL) PaidOutTotal(ctx context.Context, explorerID domain.UserID) (int64, error) {
	var total int64
	if _, err := p.Builder.From(payoutsTable).
		Select(goqu.COALESCE(goqu.SUM("amount"), 0)).
		Where(
			goqu.I("explorer_id").Eq(uuid.UUID(explorerID)),
			goqu.I("status").In(string(domain.PayoutPending), string(domain.PayoutPaid)),
		).
		ScanValContext(ctx, &total); err != nil {
		return 0, fmt.Errorf("could not sum payouts in pg: %w", err)
	}

	return total, nil
}
