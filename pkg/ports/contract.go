package ports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/canopy/pkg/domain"
)

// RunSnapshotStoreContract runs a suite of tests to verify that a
// SnapshotStore implementation adheres to the defined interface contract.
func RunSnapshotStoreContract(t *testing.T, store SnapshotStore) {
	ctx := context.Background()
	actorID := "contract-test-actor-" + time.Now().Format("20060102150405")

	t.Run("Save and Load", func(t *testing.T) {
		snap := domain.Snapshot{
			States:     []domain.ID{"root", "grounded", "idle"},
			CapturedAt: time.Now().UTC().Truncate(time.Second),
		}

		err := store.Save(ctx, actorID, snap)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, actorID)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, snap.States, loaded.States)
		assert.False(t, loaded.CapturedAt.IsZero())
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+actorID)
		assert.ErrorIs(t, err, domain.ErrSnapshotNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		err := store.Save(ctx, actorID, domain.Snapshot{States: []domain.ID{"root"}})
		require.NoError(t, err)

		err = store.Delete(ctx, actorID)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, actorID)
		assert.ErrorIs(t, err, domain.ErrSnapshotNotFound, "Load after Delete should return ErrSnapshotNotFound")
	})

	t.Run("List", func(t *testing.T) {
		id1 := actorID + "-1"
		id2 := actorID + "-2"
		_ = store.Save(ctx, id1, domain.Snapshot{States: []domain.ID{"root"}})
		_ = store.Save(ctx, id2, domain.Snapshot{States: []domain.ID{"root"}})

		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		actors, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, actors, id1)
		assert.Contains(t, actors, id2)
	})
}
