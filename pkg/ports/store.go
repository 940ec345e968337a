package ports

import (
	"context"

	"github.com/aretw0/canopy/pkg/domain"
)

// SnapshotStore defines the interface for persisting actor active-path
// snapshots, enabling actors to detach and re-attach across process
// restarts.
type SnapshotStore interface {
	// Save persists the snapshot for a given actor ID.
	Save(ctx context.Context, actorID string, snap domain.Snapshot) error

	// Load retrieves the snapshot for a given actor ID.
	// Returns domain.ErrSnapshotNotFound if none exists.
	Load(ctx context.Context, actorID string) (domain.Snapshot, error)

	// Delete removes the snapshot for a given actor ID.
	Delete(ctx context.Context, actorID string) error

	// List returns the actor IDs with a stored snapshot.
	List(ctx context.Context) ([]string, error)
}
