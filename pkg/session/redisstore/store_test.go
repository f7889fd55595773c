package redisstore_test

import (
	"context"
	"journal/pkg/domain"
	"journal/pkg/session/redisstore"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupRedis(t *testing.T) *redis.Client {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping redis integration test in short mode")
	}
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections"),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	endpoint, err := container.Endpoint(ctx, "")
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: endpoint})
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, client.Ping(ctx).Err())

	return client
}

func newSession(userID domain.UserID, ttl time.Duration) domain.Session {
	now := time.Now().UTC().Truncate(time.Second)

	return domain.Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		UserAgent: "Mozilla/5.0",
		IP:        "10.0.0.1",
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

func TestStore_Lifecycle(t *testing.T) {
	client := setupRedis(t)
	store := redisstore.New(client)
	ctx := context.Background()

	uid := domain.UserID(uuid.New())
	s := newSession(uid, time.Hour)
	require.NoError(t, store.Create(ctx, s))

	got, err := store.Get(ctx, s.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, uid, got.UserID)
	require.Equal(t, "10.0.0.1", got.IP)
	require.True(t, s.ExpiresAt.Equal(got.ExpiresAt))

	ttl, err := client.TTL(ctx, "sess:"+s.ID).Result()
	require.NoError(t, err)
	require.Greater(t, ttl, 50*time.Minute)

	require.NoError(t, store.Delete(ctx, s.ID))
	got, err = store.Get(ctx, s.ID)
	require.NoError(t, err)
	require.Nil(t, got)

	// deleting twice is fine
	require.NoError(t, store.Delete(ctx, s.ID))
}

func TestStore_CreateExpired(t *testing.T) {
	store := redisstore.New(setupRedis(t))
	require.Error(t, store.Create(context.Background(), newSession(domain.UserID(uuid.New()), -time.Minute)))
}

func TestStore_DeleteUserSessions(t *testing.T) {
	store := redisstore.New(setupRedis(t))
	ctx := context.Background()

	uid := domain.UserID(uuid.New())
	keep := newSession(uid, time.Hour)
	drop := []domain.Session{newSession(uid, time.Hour), newSession(uid, 2*time.Hour)}
	other := newSession(domain.UserID(uuid.New()), time.Hour)
	for _, s := range append([]domain.Session{keep, other}, drop...) {
		require.NoError(t, store.Create(ctx, s))
	}

	require.NoError(t, store.DeleteUserSessions(ctx, uid, keep.ID))

	for _, s := range drop {
		got, err := store.Get(ctx, s.ID)
		require.NoError(t, err)
		require.Nil(t, got)
	}
	for _, s := range []domain.Session{keep, other} {
		got, err := store.Get(ctx, s.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
	}

	require.NoError(t, store.DeleteUserSessions(ctx, domain.UserID(uuid.New()), ""))
}
