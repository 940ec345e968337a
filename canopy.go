package canopy

import (
	"log/slog"
	"time"

	"github.com/aretw0/canopy/internal/runtime"
	"github.com/aretw0/canopy/pkg/domain"
	"github.com/aretw0/canopy/pkg/observability"
)

// Version is the library version, surfaced by the CLI.
var Version = "0.2.0"

// Machine is the high-level entry point for the Canopy library. It wraps the
// internal tree and transition engine behind a simplified API.
//
// A Machine holds no per-actor state: the tree is built once and shared,
// read-only, while each actor carries its own active path. One machine may
// therefore drive any number of actors, as long as a given actor is ticked
// by at most one goroutine at a time.
type Machine[A domain.Actor] struct {
	engine *runtime.Engine[A]
	logger *slog.Logger
}

// Option defines a functional option for configuring a Machine.
type Option func(*settings)

type settings struct {
	logger  *slog.Logger
	lenient bool
	hooks   []domain.LifecycleHooks
}

// WithLogger sets a custom structured logger for the machine.
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// WithLenientBuild makes tree construction drop a branch (with a warning)
// when it revisits an already-registered identity, instead of failing.
// Strict construction is the default: a revisit almost always means a
// diamond or a cycle in the state registration.
func WithLenientBuild() Option {
	return func(s *settings) {
		s.lenient = true
	}
}

// WithLifecycleHooks registers observability hooks. May be given more than
// once; all registered hook sets are invoked.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(s *settings) {
		s.hooks = append(s.hooks, hooks)
	}
}

// WithMetrics wires a Prometheus metrics collector into the machine's
// lifecycle hooks.
func WithMetrics(m *observability.Metrics) Option {
	return func(s *settings) {
		s.hooks = append(s.hooks, m.Hooks())
	}
}

// New builds the state tree reachable from root and returns a Machine
// driving it. The tree is discovered once, through each state's declared
// children, and is immutable afterwards.
func New[A domain.Actor](root domain.State[A], opts ...Option) (*Machine[A], error) {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}

	tree, err := runtime.BuildTree(root, s.lenient, s.logger)
	if err != nil {
		return nil, err
	}

	m := &Machine[A]{
		engine: runtime.NewEngine(tree, s.logger, mergeHooks(s.hooks)),
		logger: s.logger,
	}
	return m, nil
}

// Height returns one plus the maximum parent-hop depth of the tree, or 0 for
// an empty machine.
func (m *Machine[A]) Height() int {
	return m.engine.Tree().Height()
}

// InitialEntry attaches the actor: it allocates the active path and enters
// the initial-child chain from the root, root-to-leaf. Call exactly once per
// actor, before the first Tick.
func (m *Machine[A]) InitialEntry(actor A) error {
	return m.engine.InitialEntry(actor)
}

// Tick advances the actor by one frame: at most one transition is resolved
// and committed, then OnTick runs for every occupied slot, root to leaf.
func (m *Machine[A]) Tick(actor A, dt float64) error {
	return m.engine.Tick(actor, dt)
}

// FixedTick is the fixed-simulation-rate variant of Tick, dispatching
// OnFixedTick.
func (m *Machine[A]) FixedTick(actor A, dt float64) error {
	return m.engine.FixedTick(actor, dt)
}

// Detach exits the actor's occupied states leaf-to-root and discards its
// active path.
func (m *Machine[A]) Detach(actor A) {
	m.engine.Detach(actor)
}

// Describe returns the introspectable shape of the built tree.
func (m *Machine[A]) Describe() domain.TreeInfo {
	return m.engine.Tree().Describe()
}

// Snapshot captures the actor's current active path for persistence.
func (m *Machine[A]) Snapshot(actor A) domain.Snapshot {
	return domain.Snapshot{
		States:     actor.Path().IDs(),
		CapturedAt: time.Now(),
	}
}

// Restore attaches a detached actor at a previously captured path, entering
// each state root-to-leaf. The snapshot chain is validated against the live
// tree first; an unknown identity or a broken parent link fails the restore
// without touching the actor.
func (m *Machine[A]) Restore(actor A, snap domain.Snapshot) error {
	return m.engine.Restore(actor, snap.States)
}

// mergeHooks fans one engine callback out to every registered hook set.
func mergeHooks(all []domain.LifecycleHooks) domain.LifecycleHooks {
	switch len(all) {
	case 0:
		return domain.LifecycleHooks{}
	case 1:
		return all[0]
	}
	merged := domain.LifecycleHooks{
		OnStateEnter: func(e *domain.StateEvent) {
			for _, h := range all {
				if h.OnStateEnter != nil {
					h.OnStateEnter(e)
				}
			}
		},
		OnStateExit: func(e *domain.StateEvent) {
			for _, h := range all {
				if h.OnStateExit != nil {
					h.OnStateExit(e)
				}
			}
		},
		OnTransition: func(e *domain.TransitionEvent) {
			for _, h := range all {
				if h.OnTransition != nil {
					h.OnTransition(e)
				}
			}
		},
		OnResolveCycle: func(e *domain.CycleEvent) {
			for _, h := range all {
				if h.OnResolveCycle != nil {
					h.OnResolveCycle(e)
				}
			}
		},
		OnTickComplete: func(e *domain.TickEvent) {
			for _, h := range all {
				if h.OnTickComplete != nil {
					h.OnTickComplete(e)
				}
			}
		},
	}
	return merged
}
