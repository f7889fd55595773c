package postgres_test

import (
	"journal/pkg/domain"
	"journal/pkg/storage"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPgSQL_TiersAndSponsorships(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := t.Context()

	explorer := createUser(t, pg, "explorer")
	sponsor := createUser(t, pg, "sponsor")

	big, err := pg.CreateTier(ctx, domain.SponsorshipTier{ExplorerID: explorer.ID, Title: "big", Price: 5000, Interval: domain.IntervalMonth, Active: true})
	require.NoError(t, err)
	small, err := pg.CreateTier(ctx, domain.SponsorshipTier{ExplorerID: explorer.ID, Title: "small", Price: 500, Interval: domain.IntervalOneTime, Active: true})
	require.NoError(t, err)

	tiers, err := pg.Tiers(ctx, explorer.ID, true)
	require.NoError(t, err)
	require.Len(t, tiers, 2)
	require.Equal(t, small.ID, tiers[0].ID)

	inactive := false
	_, err = pg.UpdateTier(ctx, big.ID, storage.TierUpdates{Active: &inactive})
	require.NoError(t, err)
	tiers, err = pg.Tiers(ctx, explorer.ID, true)
	require.NoError(t, err)
	require.Len(t, tiers, 1)

	deleted, err := pg.DeleteTier(ctx, sponsor.ID, small.ID)
	require.NoError(t, err)
	require.Nil(t, deleted)

	oneTime, err := pg.CreateSponsorship(ctx, domain.Sponsorship{
		SponsorID:       sponsor.ID,
		ExplorerID:      explorer.ID,
		TierID:          &small.ID,
		Amount:          1000,
		Currency:        "usd",
		Fee:             100,
		Type:            domain.SponsorshipOneTime,
		Status:          domain.SponsorshipPending,
		PaymentIntentID: "pi_1",
	})
	require.NoError(t, err)

	_, err = pg.CreateSponsorship(ctx, domain.Sponsorship{
		SponsorID:       sponsor.ID,
		ExplorerID:      explorer.ID,
		Amount:          1000,
		Currency:        "usd",
		Type:            domain.SponsorshipOneTime,
		Status:          domain.SponsorshipPending,
		PaymentIntentID: "pi_1",
	})
	require.ErrorIs(t, err, storage.ErrDuplicate)

	recurring, err := pg.CreateSponsorship(ctx, domain.Sponsorship{
		SponsorID:            sponsor.ID,
		ExplorerID:           explorer.ID,
		TierID:               &big.ID,
		Amount:               5000,
		Currency:             "usd",
		Fee:                  500,
		Type:                 domain.SponsorshipRecurring,
		Status:               domain.SponsorshipPending,
		StripeSubscriptionID: "sub_1",
	})
	require.NoError(t, err)

	earned, err := pg.EarnedTotal(ctx, explorer.ID)
	require.NoError(t, err)
	require.Zero(t, earned)

	confirmed := domain.SponsorshipConfirmed
	_, err = pg.UpdateSponsorship(ctx, oneTime.ID, storage.SponsorshipUpdates{Status: &confirmed, IncrementPaid: true})
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		_, err = pg.UpdateSponsorship(ctx, recurring.ID, storage.SponsorshipUpdates{Status: &confirmed, IncrementPaid: true})
		require.NoError(t, err)
	}

	bySub, err := pg.SponsorshipBySubscription(ctx, "sub_1")
	require.NoError(t, err)
	require.Equal(t, 2, bySub.PaidCount)

	byPI, err := pg.SponsorshipByPaymentIntent(ctx, "pi_1")
	require.NoError(t, err)
	require.Equal(t, oneTime.ID, byPI.ID)

	earned, err = pg.EarnedTotal(ctx, explorer.ID)
	require.NoError(t, err)
	require.EqualValues(t, 900+2*4500, earned)

	page, err := pg.Sponsorships(ctx, storage.SponsorshipFilter{SponsorID: &sponsor.ID}, time.Time{}, 10)
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	require.Equal(t, recurring.ID, page.Items[0].ID)
}

func TestPgSQL_Payouts(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := t.Context()

	explorer := createUser(t, pg, "explorer")

	pending, err := pg.CreatePayout(ctx, domain.Payout{ExplorerID: explorer.ID, Amount: 700, Currency: "usd", Status: domain.PayoutPending})
	require.NoError(t, err)
	failed, err := pg.CreatePayout(ctx, domain.Payout{ExplorerID: explorer.ID, Amount: 300, Currency: "usd", Status: domain.PayoutPending})
	require.NoError(t, err)

	status := domain.PayoutFailed
	reason := "account closed"
	_, err = pg.UpdatePayout(ctx, failed.ID, storage.PayoutUpdates{Status: &status, FailureReason: &reason})
	require.NoError(t, err)

	total, err := pg.PaidOutTotal(ctx, explorer.ID)
	require.NoError(t, err)
	require.EqualValues(t, 700, total)

	paid := domain.PayoutPaid
	transfer := "tr_1"
	p, err := pg.UpdatePayout(ctx, pending.ID, storage.PayoutUpdates{Status: &paid, TransferID: &transfer})
	require.NoError(t, err)
	require.Equal(t, "tr_1", p.TransferID)

	total, err = pg.PaidOutTotal(ctx, explorer.ID)
	require.NoError(t, err)
	require.EqualValues(t, 700, total)

	page, err := pg.Payouts(ctx, explorer.ID, time.Time{}, 10)
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
}
