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

const sponsorshipsTable = "sponsorships"

func (p *PgSQL) CreateSponsorship(ctx context.Context, sponsorship domain.Sponsorship) (*domain.Sponsorship, error) {
	var row PgSponsorship
	row.FromDomain(sponsorship)

	var out PgSponsorship
	if _, err := p.Builder.Insert(sponsorshipsTable).
		Rows(row).
		Returning(&PgSponsorship{}).
		Executor().ScanStructContext(ctx, &out); err != nil {
		return nil, wrapWriteErr(err, "could not store sponsorship into pg")
	}

	return out.ToDomain(), nil
}

func (p *PgSQL) sponsorshipWhere(ctx context.Context, where exp.Expression) (*domain.Sponsorship, error) {
	var row PgSponsorship
	found, err := p.Builder.From(sponsorshipsTable).
		Where(where).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch sponsorship from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) SponsorshipByID(ctx context.Context, id domain.SponsorshipID) (*domain.Sponsorship, error) {
	return p.sponsorshipWhere(ctx, goqu.I("id").Eq(uuid.UUID(id)))
}

func (p *PgSQL) SponsorshipByPaymentIntent(ctx context.Context, paymentIntentID string) (*domain.Sponsorship, error) {
	return p.sponsorshipWhere(ctx, goqu.I("payment_intent_id").Eq(paymentIntentID))
}

func (p *PgSQL) SponsorshipBySubscription(ctx context.Context, subscriptionID string) (*domain.Sponsorship, error) {
	return p.sponsorshipWhere(ctx, goqu.I("stripe_subscription_id").Eq(subscriptionID))
}

func (p *PgSQL) UpdateSponsorship(ctx context.Context,
	id domain.SponsorshipID,
	updates storage.SponsorshipUpdates) (*domain.Sponsorship, error) {
	rec := goqu.Record{"updated_at": goqu.L("CURRENT_TIMESTAMP")}
	setIf(rec, "payment_intent_id", updates.PaymentIntentID)
	setIf(rec, "stripe_subscription_id", updates.StripeSubscriptionID)
	setIf(rec, "current_period_end", updates.CurrentPeriodEnd)
	if updates.Status != nil {
		rec["status"] = string(*updates.Status)
	}
	if updates.IncrementPaid {
		rec["paid_count"] = goqu.L("paid_count + 1")
	}

	var row PgSponsorship
	found, err := p.Builder.Update(sponsorshipsTable).
		Set(rec).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Returning(&PgSponsorship{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, wrapWriteErr(err, "could not update sponsorship in pg")
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) Sponsorships(ctx context.Context,
	filter storage.SponsorshipFilter,
	cursor time.Time,
	limit uint) (storage.Page[domain.Sponsorship], error) {
	var w []exp.Expression
	if filter.SponsorID != nil {
		w = append(w, goqu.I("sponsor_id").Eq(uuid.UUID(*filter.SponsorID)))
	}
	if filter.ExplorerID != nil {
		w = append(w, goqu.I("explorer_id").Eq(uuid.UUID(*filter.ExplorerID)))
	}
	if filter.Status != "" {
		w = append(w, goqu.I("status").Eq(string(filter.Status)))
	}

	var rows []PgSponsorship
	if err := paginate(p.Builder.From(sponsorshipsTable).Where(w...), "created_at", "id", cursor, limit).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.Page[domain.Sponsorship]{}, fmt.Errorf("could not fetch sponsorships from pg: %w", err)
	}

	rows, next := trimPage(rows, limit, func(r *PgSponsorship) time.Time { return r.CreatedAt })

	return storage.Page[domain.Sponsorship]{
		Items:      toDomain(rows, (*PgSponsorship).ToDomain),
		NextCursor: next,
	}, nil
}

// EarnedTotal counts every charge regardless of the current status, so a
// canceled subscription keeps the months it already paid for.
func (p *PgSQL) EarnedTotal(ctx context.Context, explorerID domain.UserID) (int64, error) {
	var total int64
	if _, err := p.Builder.From(sponsorshipsTable).
		Select(goqu.COALESCE(goqu.SUM(goqu.L("(amount - fee) * paid_count")), 0)).
		Where(goqu.I("explorer_id").Eq(uuid.UUID(explorerID))).
		ScanValContext(ctx, &total); err != nil {
		return 0, fmt.Errorf("could not sum earnings in pg: %w", err)
	}

	return total, nil
}
