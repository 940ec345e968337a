package ports

import "github.com/aretw0/canopy/pkg/domain"

// Inspector is the read-only view a built machine exposes to presentation
// adapters (graph renderer, inspector server) regardless of its actor type.
type Inspector interface {
	// Describe returns the tree structure in discovery order.
	Describe() domain.TreeInfo

	// Height returns the tree height (0 for an empty machine).
	Height() int
}
