package runtime

import (
	"github.com/aretw0/canopy/internal/logging"
	"github.com/aretw0/canopy/pkg/domain"
)

// testActor drives the engine through boolean flags read by transition
// predicates.
type testActor struct {
	path  domain.ActivePath
	flags map[string]bool
}

func newTestActor() *testActor {
	return &testActor{flags: make(map[string]bool)}
}

func (a *testActor) Path() *domain.ActivePath { return &a.path }

// stub is a configurable state that records every hook invocation into a
// shared call log as "<id>:<event>".
type stub struct {
	domain.Base[*testActor]
	id       domain.ID
	children []domain.State[*testActor]
	initial  domain.ID
	next     func(*testActor) domain.ID
	calls    *[]string
}

func (s *stub) ID() domain.ID { return s.id }

func (s *stub) Children() []domain.State[*testActor] { return s.children }

func (s *stub) InitialChild() domain.ID { return s.initial }

func (s *stub) Transition(a *testActor) domain.ID {
	if s.next != nil {
		return s.next(a)
	}
	return domain.None
}

func (s *stub) OnEnter(*testActor) { s.record("enter") }

func (s *stub) OnExit(*testActor) { s.record("exit") }

func (s *stub) OnTick(*testActor, float64) { s.record("tick") }

func (s *stub) OnFixedTick(*testActor, float64) { s.record("fixed") }

func (s *stub) record(event string) {
	if s.calls != nil {
		*s.calls = append(*s.calls, string(s.id)+":"+event)
	}
}

// platformStates builds Root -> {Grounded -> {Idle, Move}, Airborne}, the
// canonical scenario tree, all states sharing one call log.
func platformStates(calls *[]string) map[domain.ID]*stub {
	mk := func(id domain.ID) *stub { return &stub{id: id, calls: calls} }

	states := map[domain.ID]*stub{
		"root":     mk("root"),
		"grounded": mk("grounded"),
		"idle":     mk("idle"),
		"move":     mk("move"),
		"airborne": mk("airborne"),
	}

	states["grounded"].children = []domain.State[*testActor]{states["idle"], states["move"]}
	states["grounded"].initial = "idle"
	states["root"].children = []domain.State[*testActor]{states["grounded"], states["airborne"]}
	states["root"].initial = "grounded"
	return states
}

func platformEngine(calls *[]string, hooks domain.LifecycleHooks) (*Engine[*testActor], map[domain.ID]*stub) {
	states := platformStates(calls)
	engine, _ := platformEngineFrom(states, hooks)
	return engine, states
}

func platformEngineFrom(states map[domain.ID]*stub, hooks ...domain.LifecycleHooks) (*Engine[*testActor], map[domain.ID]*stub) {
	var h domain.LifecycleHooks
	if len(hooks) > 0 {
		h = hooks[0]
	}
	tree, err := BuildTree[*testActor](states["root"], false, logging.NewNop())
	if err != nil {
		panic(err)
	}
	return NewEngine(tree, logging.NewNop(), h), states
}
