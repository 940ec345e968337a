package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/canopy/pkg/adapters/redis"
	"github.com/aretw0/canopy/pkg/domain"
	"github.com/aretw0/canopy/pkg/ports"
)

func newTestClient(t *testing.T) *backend.Client {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to start miniredis")
	t.Cleanup(mr.Close)

	return backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})
}

func TestRedisStore_Contract(t *testing.T) {
	store := redis.NewFromClient(newTestClient(t))
	ports.RunSnapshotStoreContract(t, store)
}

func TestRedisStore_TTL_Expiration(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})

	store := redis.NewFromClient(client, redis.WithTTL(1*time.Second))
	ctx := context.Background()
	actorID := "actor-ttl"
	snap := domain.Snapshot{
		States:     []domain.ID{"root", "grounded", "idle"},
		CapturedAt: time.Now(),
	}

	require.NoError(t, store.Save(ctx, actorID, snap))

	actors, err := store.List(ctx)
	require.NoError(t, err)
	assert.Contains(t, actors, actorID)

	// Fast forward time in miniredis for key expiration.
	mr.FastForward(2 * time.Second)

	_, err = store.Load(ctx, actorID)
	assert.ErrorIs(t, err, domain.ErrSnapshotNotFound)

	// Lazy index cleanup keys off time.Now(), so wait out the TTL before
	// asserting the pruned list.
	time.Sleep(1200 * time.Millisecond)

	actors, err = store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, actors)
}

func TestRedisStore_Prefix(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	a := redis.NewFromClient(client, redis.WithPrefix("world-a:"))
	b := redis.NewFromClient(client, redis.WithPrefix("world-b:"))

	require.NoError(t, a.Save(ctx, "actor-1", domain.Snapshot{States: []domain.ID{"root"}}))

	_, err := b.Load(ctx, "actor-1")
	assert.ErrorIs(t, err, domain.ErrSnapshotNotFound, "prefixes must isolate stores")

	_, err = a.Load(ctx, "actor-1")
	assert.NoError(t, err)
}
