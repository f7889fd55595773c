package postgres_test

import (
	"journal/pkg/domain"
	"journal/pkg/storage"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPgSQL_Users(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := t.Context()

	alice := createUser(t, pg, "Alice")
	require.Equal(t, "alice", alice.Username)
	require.Equal(t, "alice@example.com", alice.Email)

	t.Run("duplicate username", func(t *testing.T) {
		_, err := pg.CreateUser(ctx, domain.User{Username: "ALICE", Email: "other@example.com", PasswordHash: "x", Role: domain.RoleUser})
		require.ErrorIs(t, err, storage.ErrDuplicate)
	})

	t.Run("lookup by login", func(t *testing.T) {
		byEmail, err := pg.UserByLogin(ctx, "Alice@Example.com")
		require.NoError(t, err)
		require.Equal(t, alice.ID, byEmail.ID)

		byName, err := pg.UserByLogin(ctx, "alice")
		require.NoError(t, err)
		require.Equal(t, alice.ID, byName.ID)

		missing, err := pg.UserByLogin(ctx, "nobody")
		require.NoError(t, err)
		require.Nil(t, missing)
	})

	t.Run("update", func(t *testing.T) {
		bio := "walking the world"
		role := domain.RoleCreator
		acct := "acct_123"
		enabled := true
		u, err := pg.UpdateUser(ctx, alice.ID, storage.UserUpdates{
			Bio:             &bio,
			Role:            &role,
			StripeAccountID: &acct,
			PayoutsEnabled:  &enabled,
		})
		require.NoError(t, err)
		require.Equal(t, bio, u.Bio)
		require.True(t, u.CanReceiveSponsorships())

		byAcct, err := pg.UserByStripeAccount(ctx, acct)
		require.NoError(t, err)
		require.Equal(t, alice.ID, byAcct.ID)
	})

	t.Run("lock inside tx", func(t *testing.T) {
		tx, err := pg.Begin(ctx)
		require.NoError(t, err)
		defer func() { _ = tx.Rollback() }()
		require.NoError(t, tx.LockUser(ctx, alice.ID))
	})
}

func TestPgSQL_Follows(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := t.Context()

	alice := createUser(t, pg, "alice")
	bob := createUser(t, pg, "bob")
	carol := createUser(t, pg, "carol")

	created, err := pg.Follow(ctx, bob.ID, alice.ID)
	require.NoError(t, err)
	require.True(t, created)
	created, err = pg.Follow(ctx, bob.ID, alice.ID)
	require.NoError(t, err)
	require.False(t, created)

	time.Sleep(10 * time.Millisecond)
	_, err = pg.Follow(ctx, carol.ID, alice.ID)
	require.NoError(t, err)

	following, err := pg.IsFollowing(ctx, bob.ID, alice.ID)
	require.NoError(t, err)
	require.True(t, following)

	followers, following2, err := pg.FollowCounts(ctx, alice.ID)
	require.NoError(t, err)
	require.EqualValues(t, 2, followers)
	require.EqualValues(t, 0, following2)

	page, err := pg.Followers(ctx, alice.ID, time.Time{}, 1)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	require.Equal(t, carol.ID, page.Items[0].ID)
	require.NotNil(t, page.NextCursor)

	page, err = pg.Followers(ctx, alice.ID, *page.NextCursor, 1)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	require.Equal(t, bob.ID, page.Items[0].ID)
	require.Nil(t, page.NextCursor)

	ids, err := pg.FollowerIDs(ctx, alice.ID)
	require.NoError(t, err)
	require.ElementsMatch(t, []domain.UserID{bob.ID, carol.ID}, ids)

	removed, err := pg.Unfollow(ctx, bob.ID, alice.ID)
	require.NoError(t, err)
	require.True(t, removed)
	removed, err = pg.Unfollow(ctx, bob.ID, alice.ID)
	require.NoError(t, err)
	require.False(t, removed)
}
