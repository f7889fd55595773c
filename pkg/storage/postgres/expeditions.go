package postgres

import (
	"context"
	"fmt"
	"journal/pkg/domain"
	"journal/pkg/storage"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"
)

const expeditionsTable = "expeditions"

func (p *PgSQL) CreateExpedition(ctx context.Context, expedition domain.Expedition) (*domain.Expedition, error) {
	var row PgExpedition
	row.FromDomain(expedition)

	var out PgExpedition
	if _, err := p.Builder.Insert(expeditionsTable).
		Rows(row).
		Returning(&PgExpedition{}).
		Executor().ScanStructContext(ctx, &out); err != nil {
		return nil, wrapWriteErr(err, "could not store expedition into pg")
	}

	return out.ToDomain(), nil
}

func (p *PgSQL) ExpeditionByID(ctx context.Context, id domain.ExpeditionID) (*domain.Expedition, error) {
	var row PgExpedition
	found, err := p.Builder.From(expeditionsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id)), notDeleted("")).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch expedition by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) UpdateExpedition(ctx context.Context,
	id domain.ExpeditionID,
	updates storage.ExpeditionUpdates) (*domain.Expedition, error) {
	rec := goqu.Record{"updated_at": goqu.L("CURRENT_TIMESTAMP")}
	setIf(rec, "title", updates.Title)
	setIf(rec, "description", updates.Description)
	setIf(rec, "start_date", updates.StartDate)
	setIf(rec, "end_date", updates.EndDate)
	if updates.Status != nil {
		rec["status"] = string(*updates.Status)
	}
	if updates.Visibility != nil {
		rec["visibility"] = string(*updates.Visibility)
	}

	var row PgExpedition
	found, err := p.Builder.Update(expeditionsTable).
		Set(rec).
		Where(goqu.I("id").Eq(uuid.UUID(id)), notDeleted("")).
		Returning(&PgExpedition{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update expedition in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) DeleteExpedition(ctx context.Context,
	authorID domain.UserID,
	id domain.ExpeditionID) (*domain.Expedition, error) {
	var row PgExpedition
	found, err := p.Builder.Update(expeditionsTable).
		Set(goqu.Record{"deleted_at": goqu.L("CURRENT_TIMESTAMP")}).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("author_id").Eq(uuid.UUID(authorID)),
			notDeleted(""),
		).
		Returning(&PgExpedition{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete expedition in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func expeditionWhere(authorID domain.UserID, publicOnly bool) []exp.Expression {
	w := []exp.Expression{goqu.I("author_id").Eq(uuid.UUID(authorID)), notDeleted("")}
	if publicOnly {
		w = append(w, goqu.I("visibility").Eq(string(domain.VisibilityPublic)))
	}

	return w
}

func (p *PgSQL) Expeditions(ctx context.Context,
	authorID domain.UserID,
	publicOnly bool,
	cursor time.Time,
	limit uint) (storage.Page[domain.Expedition], error) {
	ds := p.Builder.From(expeditionsTable).Where(expeditionWhere(authorID, publicOnly)...)

	var rows []PgExpedition
	if err := paginate(ds, "created_at", "id", cursor, limit).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.Page[domain.Expedition]{}, fmt.Errorf("could not fetch expeditions from pg: %w", err)
	}

	rows, next := trimPage(rows, limit, func(r *PgExpedition) time.Time { return r.CreatedAt })

	return storage.Page[domain.Expedition]{
		Items:      toDomain(rows, (*PgExpedition).ToDomain),
		NextCursor: next,
	}, nil
}

func (p *PgSQL) CountExpeditions(ctx context.Context, authorID domain.UserID, publicOnly bool) (int64, error) {
	n, err := p.Builder.From(expeditionsTable).Where(expeditionWhere(authorID, publicOnly)...).CountContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not count expeditions in pg: %w", err)
	}

	return n, nil
}
