package hclust

// Node is a single cluster in a dendrogram: either a leaf holding one
// observation, or an internal node recording the merge of its two children.
// Nodes are identified by their index into [Dendrogram.Nodes]; Parent and
// Children hold such indices, with -1 meaning "none".
type Node struct {
	// Members lists the observations subsumed by this node, left child
	// first for internal nodes. A leaf holds exactly one.
	Members []string

	// Height is half the raw linkage distance between the two children
	// at the time they were merged. Leaves have height 0.
	Height float64

	// Parent is the index of the node this one was merged into. It is -1
	// until the merge happens and is set exactly once; the trunk keeps -1.
	Parent int

	// Children holds the indices of the two merged nodes, or {-1, -1}
	// for a leaf.
	Children [2]int
}

// IsLeaf reports whether the node is an original observation.
func (n Node) IsLeaf() bool { return n.Children[0] == -1 }
