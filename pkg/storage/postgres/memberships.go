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

const membershipsTable = "memberships"

func (p *PgSQL) CreateMembership(ctx context.Context, membership domain.Membership) (*domain.Membership, error) {
	var row PgMembership
	row.FromDomain(membership)

	var out PgMembership
	if _, err := p.Builder.Insert(membershipsTable).
		Rows(row).
		Returning(&PgMembership{}).
		Executor().ScanStructContext(ctx, &out); err != nil {
		return nil, wrapWriteErr(err, "could not store membership into pg")
	}

	return out.ToDomain(), nil
}

func (p *PgSQL) MembershipBySubscription(ctx context.Context, subscriptionID string) (*domain.Membership, error) {
	var row PgMembership
	found, err := p.Builder.From(membershipsTable).
		Where(goqu.I("stripe_subscription_id").Eq(subscriptionID)).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch membership by subscription: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) CurrentMembership(ctx context.Context, userID domain.UserID) (*domain.Membership, error) {
	var row PgMembership
	found, err := p.Builder.From(membershipsTable).
		Where(
			goqu.I("user_id").Eq(uuid.UUID(userID)),
			goqu.I("status").Neq(string(domain.MembershipCanceled)),
		).
		Order(goqu.I("created_at").Desc()).
		Limit(1).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch current membership: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) UpdateMembership(ctx context.Context,
	id domain.MembershipID,
	updates storage.MembershipUpdates) (*domain.Membership, error) {
	rec := goqu.Record{"updated_at": goqu.L("CURRENT_TIMESTAMP")}
	setIf(rec, "current_period_end", updates.CurrentPeriodEnd)
	if updates.Status != nil {
		rec["status"] = string(*updates.Status)
	}

	var row PgMembership
	found, err := p.Builder.Update(membershipsTable).
		Set(rec).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Returning(&PgMembership{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update membership in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) ExpireIncompleteMemberships(ctx context.Context, before time.Time) (int64, error) {
	res, err := p.Builder.Update(membershipsTable).
		Set(goqu.Record{
			"status":     string(domain.MembershipCanceled),
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(
			goqu.I("status").Eq(string(domain.MembershipIncomplete)),
			goqu.I("created_at").Lt(before),
		).
		Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not expire memberships in pg: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not get affected rows: %w", err)
	}

	return n, nil
}
