package postgres_test

import (
	"journal/pkg/domain"
	"journal/pkg/storage"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPgSQL_Notifications(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := t.Context()

	alice := createUser(t, pg, "alice")
	bob := createUser(t, pg, "bob")

	n, err := pg.CreateNotifications(ctx, []domain.Notification{
		{UserID: alice.ID, ActorID: &bob.ID, Kind: domain.NotificationFollow},
		{UserID: alice.ID, ActorID: &bob.ID, Kind: domain.NotificationMessage},
	})
	require.NoError(t, err)
	require.EqualValues(t, 2, n)

	n, err = pg.CreateNotifications(ctx, nil)
	require.NoError(t, err)
	require.Zero(t, n)

	unread, err := pg.UnreadNotificationCount(ctx, alice.ID)
	require.NoError(t, err)
	require.EqualValues(t, 2, unread)

	page, err := pg.Notifications(ctx, alice.ID, time.Time{}, 10)
	require.NoError(t, err)
	require.Len(t, page.Items, 2)

	ok, err := pg.MarkNotificationRead(ctx, bob.ID, page.Items[0].ID)
	require.NoError(t, err)
	require.False(t, ok)
	ok, err = pg.MarkNotificationRead(ctx, alice.ID, page.Items[0].ID)
	require.NoError(t, err)
	require.True(t, ok)

	marked, err := pg.MarkAllNotificationsRead(ctx, alice.ID)
	require.NoError(t, err)
	require.EqualValues(t, 1, marked)

	unread, err = pg.UnreadNotificationCount(ctx, alice.ID)
	require.NoError(t, err)
	require.Zero(t, unread)
}

func TestPgSQL_Memberships(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := t.Context()

	alice := createUser(t, pg, "alice")

	m, err := pg.CreateMembership(ctx, domain.Membership{
		UserID:               alice.ID,
		Plan:                 domain.PlanMonthly,
		Status:               domain.MembershipIncomplete,
		StripeSubscriptionID: "sub_pro",
	})
	require.NoError(t, err)

	current, err := pg.CurrentMembership(ctx, alice.ID)
	require.NoError(t, err)
	require.Equal(t, m.ID, current.ID)

	active := domain.MembershipActive
	end := time.Now().Add(30 * 24 * time.Hour).UTC().Truncate(time.Second)
	updated, err := pg.UpdateMembership(ctx, m.ID, storage.MembershipUpdates{Status: &active, CurrentPeriodEnd: &end})
	require.NoError(t, err)
	require.Equal(t, domain.MembershipActive, updated.Status)
	require.True(t, end.Equal(updated.CurrentPeriodEnd))

	bySub, err := pg.MembershipBySubscription(ctx, "sub_pro")
	require.NoError(t, err)
	require.Equal(t, m.ID, bySub.ID)

	_, err = pg.CreateMembership(ctx, domain.Membership{
		UserID:               alice.ID,
		Plan:                 domain.PlanAnnual,
		Status:               domain.MembershipIncomplete,
		StripeSubscriptionID: "sub_stale",
	})
	require.NoError(t, err)

	expired, err := pg.ExpireIncompleteMemberships(ctx, time.Now().Add(time.Minute))
	require.NoError(t, err)
	require.EqualValues(t, 1, expired)

	current, err = pg.CurrentMembership(ctx, alice.ID)
	require.NoError(t, err)
	require.Equal(t, m.ID, current.ID)
}

func TestPgSQL_Messages(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := t.Context()

	alice := createUser(t, pg, "alice")
	bob := createUser(t, pg, "bob")
	carol := createUser(t, pg, "carol")

	for _, m := range []domain.Message{
		{SenderID: alice.ID, RecipientID: bob.ID, Body: "hi"},
		{SenderID: bob.ID, RecipientID: alice.ID, Body: "hello"},
		{SenderID: carol.ID, RecipientID: alice.ID, Body: "unrelated"},
	} {
		_, err := pg.CreateMessage(ctx, m)
		require.NoError(t, err)
	}

	page, err := pg.Conversation(ctx, alice.ID, bob.ID, time.Time{}, 10)
	require.NoError(t, err)
	require.Len(t, page.Items, 2)

	marked, err := pg.MarkConversationRead(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	require.EqualValues(t, 1, marked)
}

func TestPgSQL_RecordWebhookEvent(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := t.Context()

	first, err := pg.RecordWebhookEvent(ctx, "evt_1", "payment_intent.succeeded")
	require.NoError(t, err)
	require.True(t, first)

	again, err := pg.RecordWebhookEvent(ctx, "evt_1", "payment_intent.succeeded")
	require.NoError(t, err)
	require.False(t, again)
}
