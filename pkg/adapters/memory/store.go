package memory

import (
	"context"
	"sync"

	"github.com/aretw0/canopy/pkg/domain"
)

// Store implements ports.SnapshotStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]domain.Snapshot
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]domain.Snapshot),
	}
}

// Save persists the snapshot in memory.
func (s *Store) Save(ctx context.Context, actorID string, snap domain.Snapshot) error {
	// Copy the chain so the caller can't mutate stored state by reference.
	copied := snap
	copied.States = append([]domain.ID(nil), snap.States...)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[actorID] = copied
	return nil
}

// Load retrieves the snapshot from memory.
func (s *Store) Load(ctx context.Context, actorID string) (domain.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap, ok := s.data[actorID]
	if !ok {
		return domain.Snapshot{}, domain.ErrSnapshotNotFound
	}

	ret := snap
	ret.States = append([]domain.ID(nil), snap.States...)
	return ret, nil
}

// Delete removes the snapshot.
func (s *Store) Delete(ctx context.Context, actorID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, actorID)
	return nil
}

// List returns actor IDs with a stored snapshot.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	actors := make([]string, 0, len(s.data))
	for id := range s.data {
		actors = append(actors, id)
	}
	return actors, nil
}
