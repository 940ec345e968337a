package domain

import "time"

// StateEvent describes the activation or deactivation of one state.
type StateEvent struct {
	Timestamp time.Time `json:"timestamp"`
	State     ID        `json:"state"`
	Depth     int       `json:"depth"` // slot index, 0 = root level
}

// TransitionEvent describes one committed transition.
type TransitionEvent struct {
	Timestamp time.Time `json:"timestamp"`
	Source    ID        `json:"source"` // state whose predicate fired
	Target    ID        `json:"target"`
	Path      []ID      `json:"path"` // new active path, root first
}

// CycleEvent describes a descent step that was aborted because it would
// revisit an identity already in the path under construction.
type CycleEvent struct {
	Timestamp time.Time `json:"timestamp"`
	Entering  ID        `json:"entering"`
	From      ID        `json:"from"`
}

// TickPhase distinguishes the two host notification points.
type TickPhase string

const (
	PhaseTick      TickPhase = "tick"
	PhaseFixedTick TickPhase = "fixed_tick"
)

// TickEvent describes one completed tick for one actor.
type TickEvent struct {
	Timestamp time.Time `json:"timestamp"`
	Phase     TickPhase `json:"phase"`
	Depth     int       `json:"depth"` // resolved depth after the tick
}

// LifecycleHooks defines callbacks for engine observability. Hooks run
// synchronously on the ticking goroutine and must not block.
type LifecycleHooks struct {
	OnStateEnter   func(*StateEvent)
	OnStateExit    func(*StateEvent)
	OnTransition   func(*TransitionEvent)
	OnResolveCycle func(*CycleEvent)
	OnTickComplete func(*TickEvent)
}
