package domain

// NodeInfo is the introspectable shape of one state in a built tree.
type NodeInfo struct {
	ID       ID   `json:"id" yaml:"id"`
	Parent   ID   `json:"parent,omitempty" yaml:"parent,omitempty"`
	Children []ID `json:"children,omitempty" yaml:"children,omitempty"`
	Initial  ID   `json:"initial,omitempty" yaml:"initial,omitempty"`
	Depth    int  `json:"depth" yaml:"depth"` // root = 1
}

// TreeInfo is the introspectable shape of a built tree, consumed by the
// graph renderer and the inspector server. Nodes are in depth-first
// declaration order, root first.
type TreeInfo struct {
	Root   ID         `json:"root,omitempty" yaml:"root,omitempty"`
	Height int        `json:"height" yaml:"height"`
	Nodes  []NodeInfo `json:"nodes" yaml:"nodes"`
}

// Node returns the info for id, or nil if absent.
func (t TreeInfo) Node(id ID) *NodeInfo {
	for i := range t.Nodes {
		if t.Nodes[i].ID == id {
			return &t.Nodes[i]
		}
	}
	return nil
}
