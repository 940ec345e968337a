package domain

import "time"

// Snapshot is a persistable capture of an actor's active path. It references
// states by identity only, so it survives process restarts as long as the
// tree shape is unchanged.
type Snapshot struct {
	States     []ID      `json:"states" yaml:"states"` // root first, occupied slots only
	CapturedAt time.Time `json:"captured_at" yaml:"captured_at"`
}
