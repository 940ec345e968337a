package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/canopy/pkg/domain"
)

// Overlay contains dynamic actor data to visualize on the tree.
type Overlay struct {
	ActivePath []domain.ID
}

// GenerateMermaid produces a Mermaid flowchart syntax string from a tree
// description. It applies semantic styling:
// - Root: ((Circle))
// - Composite (has children): [[Subroutine]]
// - Leaf: [Rectangle]
// Solid arrows are parent->child ownership; the designated initial child is
// annotated. Overlay styling highlights the actor's active path.
func GenerateMermaid(tree domain.TreeInfo, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for _, node := range tree.Nodes {
		safeID := sanitizeMermaidID(string(node.ID))

		opener, closer := "[", "]"
		switch {
		case node.ID == tree.Root:
			opener, closer = "((", "))"
		case len(node.Children) > 0:
			opener, closer = "[[", "]]"
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", safeID, opener, node.ID, closer))

		for _, child := range node.Children {
			safeChild := sanitizeMermaidID(string(child))
			arrow := "-->"
			if child == node.Initial {
				arrow = "-- \"initial\" -->"
			}
			sb.WriteString(fmt.Sprintf("    %s %s %s\n", safeID, arrow, safeChild))
		}
	}

	if overlay != nil && len(overlay.ActivePath) > 0 {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text for high-contrast regardless of theme.
		sb.WriteString("    classDef active fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef leaf fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		for i, id := range overlay.ActivePath {
			safeID := sanitizeMermaidID(string(id))
			if safeID == "" {
				continue
			}
			class := "active"
			if i == len(overlay.ActivePath)-1 {
				class = "leaf"
			}
			sb.WriteString(fmt.Sprintf("    class %s %s;\n", safeID, class))
		}
	}

	return sb.String()
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}
