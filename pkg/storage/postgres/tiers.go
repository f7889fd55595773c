package postgres

import (
	"context"
	"fmt"
	"journal/pkg/domain"
	"journal/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"
)

const tiersTable = "sponsorship_tiers"

func (p *PgSQL) CreateTier(ctx context.Context, tier domain.SponsorshipTier) (*domain.SponsorshipTier, error) {
	var row PgTier
	row.FromDomain(tier)

	var out PgTier
	if _, err := p.Builder.Insert(tiersTable).
		Rows(row).
		Returning(&PgTier{}).
		Executor().ScanStructContext(ctx, &out); err != nil {
		return nil, wrapWriteErr(err, "could not store tier into pg")
	}

	return out.ToDomain(), nil
}

func (p *PgSQL) TierByID(ctx context.Context, id domain.TierID) (*domain.SponsorshipTier, error) {
	var row PgTier
	found, err := p.Builder.From(tiersTable).
		Where(goqu.I("id").Eq(uuid.UUID(id)), notDeleted("")).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch tier by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) UpdateTier(ctx context.Context, id domain.TierID, updates storage.TierUpdates) (*domain.SponsorshipTier, error) {
	rec := goqu.Record{"updated_at": goqu.L("CURRENT_TIMESTAMP")}
	setIf(rec, "title", updates.Title)
	setIf(rec, "description", updates.Description)
	setIf(rec, "price", updates.Price)
	setIf(rec, "active", updates.Active)

	var row PgTier
	found, err := p.Builder.Update(tiersTable).
		Set(rec).
		Where(goqu.I("id").Eq(uuid.UUID(id)), notDeleted("")).
		Returning(&PgTier{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update tier in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) DeleteTier(ctx context.Context, explorerID domain.UserID, id domain.TierID) (*domain.SponsorshipTier, error) {
	var row PgTier
	found, err := p.Builder.Update(tiersTable).
		Set(goqu.Record{
			"deleted_at": goqu.L("CURRENT_TIMESTAMP"),
			"active":     false,
		}).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("explorer_id").Eq(uuid.UUID(explorerID)),
			notDeleted(""),
		).
		Returning(&PgTier{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete tier in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) Tiers(ctx context.Context, explorerID domain.UserID, activeOnly bool) ([]domain.SponsorshipTier, error) {
	w := []exp.Expression{goqu.I("explorer_id").Eq(uuid.UUID(explorerID)), notDeleted("")}
	if activeOnly {
		w = append(w, goqu.I("active").IsTrue())
	}

	var rows []PgTier
	if err := p.Builder.From(tiersTable).
		Where(w...).
		Order(goqu.I("price").Asc(), goqu.I("created_at").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch tiers from pg: %w", err)
	}

	return toDomain(rows, (*PgTier).ToDomain), nil
}
