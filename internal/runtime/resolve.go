package runtime

import (
	"fmt"

	"github.com/aretw0/canopy/pkg/domain"
)

// Resolve computes the full root-to-leaf (or root-to-partial) path that
// should become current when moving toward target. The result always has
// exactly Height slots, root first, trailing slots empty.
//
// It ascends from target to the root to place the ancestor chain, then
// descends again from target: each step enters the current state's initial
// child, unless that child itself declares an immediate transition, in which
// case the transition target is preferred. A descent step that would revisit
// an identity already in the path under construction aborts the descent for
// this tick, keeping the path as built so far.
func (e *Engine[A]) Resolve(target domain.ID, actor A) ([]domain.ID, error) {
	node, ok := e.tree.Node(target)
	if !ok {
		return nil, fmt.Errorf("resolve target %q: %w", target, domain.ErrUnknownState)
	}

	path := make([]domain.ID, e.tree.Height())

	// Ascend: collect leaf-to-root, then reverse into the head of the path.
	chain := []domain.ID{target}
	for {
		pid, ok := e.tree.ParentOf(chain[len(chain)-1])
		if !ok {
			break
		}
		chain = append(chain, pid)
	}
	for i, id := range chain {
		path[len(chain)-1-i] = id
	}
	idx := len(chain)

	// Descend.
	cur := node
	for idx < len(path) {
		childID := cur.InitialChild()
		if childID == domain.None {
			break
		}
		next, ok := e.tree.Node(childID)
		if !ok {
			return nil, fmt.Errorf("initial child %q of %q: %w", childID, cur.ID(), domain.ErrUnknownState)
		}
		nextID := childID
		if redirect := next.Transition(actor); redirect != domain.None {
			rn, ok := e.tree.Node(redirect)
			if !ok {
				return nil, fmt.Errorf("transition target %q of %q: %w", redirect, childID, domain.ErrUnknownState)
			}
			nextID, next = redirect, rn
		}
		if containsID(path[:idx], nextID) {
			e.logger.Warn("cycle detected during descent",
				"entering", nextID, "from", cur.ID())
			e.emitCycle(nextID, cur.ID())
			break
		}
		path[idx] = nextID
		idx++
		cur = next
	}

	return path, nil
}

func containsID(ids []domain.ID, id domain.ID) bool {
	for _, s := range ids {
		if s == id {
			return true
		}
	}
	return false
}
