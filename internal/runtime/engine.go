package runtime

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/canopy/pkg/domain"
)

// Engine is the transition engine. Per tick it scans the actor's active path
// root-first for a fired transition, resolves the replacement path, diffs it
// against the committed one, and delivers exit/enter notifications in order.
//
// The engine holds no per-actor state; everything actor-specific lives in the
// actor's ActivePath, so a single engine may drive any number of actors as
// long as each actor is ticked by at most one goroutine at a time.
type Engine[A domain.Actor] struct {
	tree   *Tree[A]
	logger *slog.Logger
	hooks  domain.LifecycleHooks
}

// NewEngine creates an engine over a built tree. A nil logger falls back to
// slog.Default.
func NewEngine[A domain.Actor](tree *Tree[A], logger *slog.Logger, hooks domain.LifecycleHooks) *Engine[A] {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine[A]{tree: tree, logger: logger, hooks: hooks}
}

// Tree returns the engine's immutable tree.
func (e *Engine[A]) Tree() *Tree[A] {
	return e.tree
}

// InitialEntry allocates the actor's active path and fills it by repeatedly
// resolving InitialChild from the root, invoking OnEnter for each filled slot
// in root-to-leaf order. It must be called exactly once before the first Tick.
func (e *Engine[A]) InitialEntry(actor A) error {
	p := actor.Path()
	if p == nil {
		return fmt.Errorf("actor exposes no active path")
	}
	if p.Attached() {
		return domain.ErrAlreadyEntered
	}

	p.Reset(e.tree.Height())
	cur := e.tree.Root()
	if cur == nil {
		return nil
	}

	for i := 0; i < p.Capacity(); i++ {
		p.Set(i, cur.ID())
		cur.OnEnter(actor)
		e.emitEnter(cur.ID(), i)

		childID := cur.InitialChild()
		if childID == domain.None {
			break
		}
		next, ok := e.tree.Node(childID)
		if !ok {
			return fmt.Errorf("initial child %q of %q: %w", childID, cur.ID(), domain.ErrUnknownState)
		}
		cur = next
	}
	return nil
}

// Detach exits every occupied slot leaf-to-root and releases the actor's
// path storage. Detaching an actor that never entered is a no-op.
func (e *Engine[A]) Detach(actor A) {
	p := actor.Path()
	if p == nil || !p.Attached() {
		return
	}
	for i := p.Depth() - 1; i >= 0; i-- {
		if node, ok := e.tree.Node(p.At(i)); ok {
			node.OnExit(actor)
			e.emitExit(node.ID(), i)
		}
	}
	p.Release()
}

// Tick runs one frame tick: transition resolution followed by OnTick for
// every occupied slot, root to leaf.
func (e *Engine[A]) Tick(actor A, dt float64) error {
	return e.step(actor, dt, domain.PhaseTick)
}

// FixedTick is the fixed-rate variant of Tick, dispatching OnFixedTick.
func (e *Engine[A]) FixedTick(actor A, dt float64) error {
	return e.step(actor, dt, domain.PhaseFixedTick)
}

func (e *Engine[A]) step(actor A, dt float64, phase domain.TickPhase) error {
	p := actor.Path()
	if p == nil || !p.Attached() {
		return domain.ErrNotEntered
	}

	var stepErr error

	// 1. Root-first scan: the shallowest fired transition wins, so an
	// ancestor declaring "leave this whole branch" pre-empts any child-level
	// transition logic.
	source, target := domain.None, domain.None
	for i, depth := 0, p.Depth(); i < depth; i++ {
		id := p.At(i)
		node, ok := e.tree.Node(id)
		if !ok {
			stepErr = fmt.Errorf("active slot %d holds %q: %w", i, id, domain.ErrUnknownState)
			break
		}
		if tgt := node.Transition(actor); tgt != domain.None {
			source, target = id, tgt
			break
		}
	}

	// 2-3. Resolve the replacement path and commit the diff. A failed
	// resolution aborts the transition and leaves the committed path intact.
	if stepErr == nil && target != domain.None {
		newPath, err := e.Resolve(target, actor)
		if err != nil {
			e.logger.Error("transition aborted", "source", source, "target", target, "err", err)
			stepErr = err
		} else {
			e.commit(actor, p, newPath)
			e.emitTransition(source, target, p.IDs())
		}
	}

	// 4. Batch notification for every occupied slot post-update, root to
	// leaf, delivered even when the transition attempt failed.
	depth := p.Depth()
	for i := 0; i < depth; i++ {
		node, ok := e.tree.Node(p.At(i))
		if !ok {
			continue
		}
		if phase == domain.PhaseFixedTick {
			node.OnFixedTick(actor, dt)
		} else {
			node.OnTick(actor, dt)
		}
	}
	e.emitTick(phase, depth)

	return stepErr
}

// commit diffs newPath against the committed path and applies it. Stale
// occupants exit deepest-first from the divergence slot, then replacements
// enter shallowest-first, so a child is never active while its parent slot
// is stale.
func (e *Engine[A]) commit(actor A, p *domain.ActivePath, newPath []domain.ID) {
	div := 0
	for div < len(newPath) && newPath[div] != domain.None && newPath[div] == p.At(div) {
		div++
	}

	for i := p.Depth() - 1; i >= div; i-- {
		if node, ok := e.tree.Node(p.At(i)); ok {
			node.OnExit(actor)
			e.emitExit(node.ID(), i)
		}
		p.Clear(i)
	}

	for i := div; i < len(newPath); i++ {
		id := newPath[i]
		if id == domain.None {
			break
		}
		p.Set(i, id)
		if node, ok := e.tree.Node(id); ok {
			node.OnEnter(actor)
			e.emitEnter(id, i)
		}
	}
}

// Restore rebuilds an actor's active path from a persisted chain of
// identities, re-entering each state root-to-leaf. The chain must start at
// the root and follow live parent links.
func (e *Engine[A]) Restore(actor A, states []domain.ID) error {
	p := actor.Path()
	if p == nil {
		return fmt.Errorf("actor exposes no active path")
	}
	if p.Attached() {
		return domain.ErrAlreadyEntered
	}
	if len(states) > e.tree.Height() {
		return fmt.Errorf("chain of %d states exceeds height %d: %w",
			len(states), e.tree.Height(), domain.ErrInvalidSnapshot)
	}

	for i, id := range states {
		if _, ok := e.tree.Node(id); !ok {
			return fmt.Errorf("state %q: %w", id, domain.ErrUnknownState)
		}
		if i == 0 {
			if root := e.tree.Root(); root == nil || root.ID() != id {
				return fmt.Errorf("chain does not start at the root: %w", domain.ErrInvalidSnapshot)
			}
			continue
		}
		if pid, _ := e.tree.ParentOf(id); pid != states[i-1] {
			return fmt.Errorf("%q is not a child of %q: %w", id, states[i-1], domain.ErrInvalidSnapshot)
		}
	}

	p.Reset(e.tree.Height())
	for i, id := range states {
		p.Set(i, id)
		if node, ok := e.tree.Node(id); ok {
			node.OnEnter(actor)
			e.emitEnter(id, i)
		}
	}
	return nil
}

func (e *Engine[A]) emitEnter(id domain.ID, depth int) {
	if e.hooks.OnStateEnter != nil {
		e.hooks.OnStateEnter(&domain.StateEvent{Timestamp: time.Now(), State: id, Depth: depth})
	}
}

func (e *Engine[A]) emitExit(id domain.ID, depth int) {
	if e.hooks.OnStateExit != nil {
		e.hooks.OnStateExit(&domain.StateEvent{Timestamp: time.Now(), State: id, Depth: depth})
	}
}

func (e *Engine[A]) emitTransition(source, target domain.ID, path []domain.ID) {
	if e.hooks.OnTransition != nil {
		e.hooks.OnTransition(&domain.TransitionEvent{
			Timestamp: time.Now(),
			Source:    source,
			Target:    target,
			Path:      path,
		})
	}
}

func (e *Engine[A]) emitCycle(entering, from domain.ID) {
	if e.hooks.OnResolveCycle != nil {
		e.hooks.OnResolveCycle(&domain.CycleEvent{Timestamp: time.Now(), Entering: entering, From: from})
	}
}

func (e *Engine[A]) emitTick(phase domain.TickPhase, depth int) {
	if e.hooks.OnTickComplete != nil {
		e.hooks.OnTickComplete(&domain.TickEvent{Timestamp: time.Now(), Phase: phase, Depth: depth})
	}
}
