package runtime

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/canopy/pkg/domain"
)

// Tree is the immutable product of state discovery: a lookup table from
// identity to its singleton instance, parent links, and the maximum depth
// ("height", root counted as 1). It is built once per machine and shared,
// read-only, by every actor the machine drives.
type Tree[A domain.Actor] struct {
	root   domain.State[A]
	nodes  map[domain.ID]domain.State[A]
	parent map[domain.ID]domain.ID
	depth  map[domain.ID]int
	order  []domain.ID // depth-first discovery order
	height int
}

// BuildTree discovers every state reachable from root through declared child
// references.
//
// Revisiting an identity signals a malformed registration (a diamond or a
// cycle). In strict mode (lenient=false) the build fails with
// domain.ErrDuplicateState; in lenient mode the offending branch is dropped
// with a warning, matching the forgiving behavior some hosts rely on.
//
// A nil root yields an empty tree with height 0.
func BuildTree[A domain.Actor](root domain.State[A], lenient bool, logger *slog.Logger) (*Tree[A], error) {
	if logger == nil {
		logger = slog.Default()
	}

	t := &Tree[A]{
		nodes:  make(map[domain.ID]domain.State[A]),
		parent: make(map[domain.ID]domain.ID),
		depth:  make(map[domain.ID]int),
	}
	if root == nil {
		return t, nil
	}
	t.root = root

	var visit func(s domain.State[A], parent domain.ID, d int) error
	visit = func(s domain.State[A], parent domain.ID, d int) error {
		id := s.ID()
		if _, seen := t.nodes[id]; seen {
			if !lenient {
				return fmt.Errorf("state %q revisited under %q: %w", id, parent, domain.ErrDuplicateState)
			}
			logger.Warn("dropping branch: state identity already registered",
				"state", id, "parent", parent)
			return nil
		}

		t.nodes[id] = s
		t.depth[id] = d
		t.order = append(t.order, id)
		if parent != domain.None {
			t.parent[id] = parent
		}
		if d > t.height {
			t.height = d
		}

		for _, child := range s.Children() {
			if child == nil {
				continue
			}
			if err := visit(child, id, d+1); err != nil {
				return err
			}
		}
		return nil
	}

	if err := visit(root, domain.None, 1); err != nil {
		return nil, err
	}
	return t, nil
}

// Height returns one plus the maximum parent-hop depth discovered during
// construction, or 0 for an empty tree.
func (t *Tree[A]) Height() int {
	return t.height
}

// Len returns the number of discovered states.
func (t *Tree[A]) Len() int {
	return len(t.nodes)
}

// Root returns the root state, or nil for an empty tree.
func (t *Tree[A]) Root() domain.State[A] {
	return t.root
}

// Node returns the singleton instance for id.
func (t *Tree[A]) Node(id domain.ID) (domain.State[A], bool) {
	s, ok := t.nodes[id]
	return s, ok
}

// ParentOf returns the parent identity of id. The root (and any unknown id)
// has no parent.
func (t *Tree[A]) ParentOf(id domain.ID) (domain.ID, bool) {
	p, ok := t.parent[id]
	return p, ok
}

// Describe returns the introspectable shape of the tree in discovery order.
func (t *Tree[A]) Describe() domain.TreeInfo {
	info := domain.TreeInfo{Height: t.height}
	if t.root != nil {
		info.Root = t.root.ID()
	}
	for _, id := range t.order {
		s := t.nodes[id]
		n := domain.NodeInfo{
			ID:      id,
			Parent:  t.parent[id],
			Initial: s.InitialChild(),
			Depth:   t.depth[id],
		}
		for _, child := range s.Children() {
			if child == nil {
				continue
			}
			// Skip children that lenient builds dropped or re-parented.
			if p, ok := t.parent[child.ID()]; ok && p == id {
				n.Children = append(n.Children, child.ID())
			}
		}
		info.Nodes = append(info.Nodes, n)
	}
	return info
}
