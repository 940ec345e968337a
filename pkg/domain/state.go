package domain

// ID is the stable identity of a state kind. The tree's lookup table keys on
// this value, and transition predicates return it to name their target.
// The empty string means "no state".
type ID string

// None is the zero ID, returned by resolution hooks to signal "nothing".
const None ID = ""

// Actor is the external entity driven by a state tree. The actor owns its
// active path; the engine keeps no per-actor data, so one tree may drive any
// number of actors. Concrete actors typically embed an ActivePath field and
// return its address.
type Actor interface {
	// Path returns the actor's active-path storage. It must return the same
	// instance for the lifetime of the actor.
	Path() *ActivePath
}

// State is one node in the behavior hierarchy.
//
// Children declares the owned child states explicitly; the tree builder
// follows these references and nothing else, so the structure is statically
// inspectable. A state appears under exactly one parent.
//
// Transition must be a pure predicate over the actor's observable data: no
// side effects, no mutation. It may name any state in the tree, not just a
// descendant of the caller.
type State[A Actor] interface {
	// ID returns the state's identity.
	ID() ID

	// Children returns the owned child states, or nil for a leaf.
	Children() []State[A]

	// InitialChild names the child entered by default when this state is
	// activated with no deeper transition pending. Leaves return None.
	InitialChild() ID

	// Transition returns the identity of a state to move toward, or None if
	// no transition fires from this level.
	Transition(actor A) ID

	// OnEnter runs exactly once per activation of this state.
	OnEnter(actor A)

	// OnExit runs exactly once per deactivation of this state.
	OnExit(actor A)

	// OnTick runs once per frame tick for every state on the active path.
	OnTick(actor A, dt float64)

	// OnFixedTick runs once per fixed-rate tick for every state on the
	// active path.
	OnFixedTick(actor A, dt float64)
}

// Base provides no-op defaults for every State method except ID. Concrete
// states embed it and override only what they need.
type Base[A Actor] struct{}

// Children returns nil; embedders with children must override.
func (Base[A]) Children() []State[A] { return nil }

// InitialChild returns None.
func (Base[A]) InitialChild() ID { return None }

// Transition returns None.
func (Base[A]) Transition(A) ID { return None }

// OnEnter is a no-op.
func (Base[A]) OnEnter(A) {}

// OnExit is a no-op.
func (Base[A]) OnExit(A) {}

// OnTick is a no-op.
func (Base[A]) OnTick(A, float64) {}

// OnFixedTick is a no-op.
func (Base[A]) OnFixedTick(A, float64) {}
