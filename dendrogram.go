package hclust

import "fmt"

// Dendrogram is the permanent record of a clustering run: a binary merge
// tree over the original observations. Query it with [Dendrogram.CutByHeight]
// and [Dendrogram.CutByCount] to extract flat clusterings.
type Dendrogram struct {
	// Nodes holds every cluster ever formed: the N leaves in observation
	// order followed by the N-1 internal nodes in creation order. Nodes
	// are never removed; a merged node is superseded by having its Parent
	// set.
	Nodes []Node

	leaves int
}

// Leaves returns the original observation names, in input order.
func (d *Dendrogram) Leaves() []string {
	out := make([]string, d.leaves)
	for i := 0; i < d.leaves; i++ {
		out[i] = d.Nodes[i].Members[0]
	}
	return out
}

// Trunk returns the members of the final, all-subsuming cluster.
func (d *Dendrogram) Trunk() []string {
	return d.Nodes[len(d.Nodes)-1].Members
}

// CutByHeight flattens the dendrogram at merge height h: every observation
// belongs to its highest ancestor whose height does not exceed h. Groups
// are returned in first-encounter order over the leaves. Cutting at a
// larger height never yields more groups than a smaller one.
func (d *Dendrogram) CutByHeight(h float64) ([][]string, error) {
	if h < 0 {
		return nil, fmt.Errorf("%w, got %v", ErrNegativeHeight, h)
	}

	seen := make([]bool, len(d.Nodes))
	groups := make([][]string, 0, d.leaves)
	for leaf := 0; leaf < d.leaves; leaf++ {
		node := leaf
		for {
			p := d.Nodes[node].Parent
			// NaN parent heights fail the <= test and stop the walk.
			if p == -1 || !(d.Nodes[p].Height <= h) {
				break
			}
			node = p
		}
		if !seen[node] {
			seen[node] = true
			groups = append(groups, d.Nodes[node].Members)
		}
	}
	return groups, nil
}

// CutByCount undoes the clustering until exactly k groups remain: starting
// from the leaves, the open pair whose shared parent has the smallest
// height is repeatedly replaced by that parent. Ties resolve to the first
// candidate in group order; a parent with NaN height collapses only when
// no finite-height parent is available. If k is at least the number of
// leaves, every observation is its own group.
func (d *Dendrogram) CutByCount(k int) ([][]string, error) {
	if k <= 0 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidCount, k)
	}

	open := make([]int, d.leaves)
	isOpen := make([]bool, len(d.Nodes))
	for i := range open {
		open[i] = i
		isOpen[i] = true
	}

	for len(open) > k {
		// Find the lowest parent whose children are both still open.
		lowest := -1
		for _, x := range open {
			p := d.Nodes[x].Parent
			if p == -1 {
				continue
			}
			if !isOpen[d.Nodes[p].Children[0]] || !isOpen[d.Nodes[p].Children[1]] {
				continue
			}
			if lowest == -1 || closerThan(d.Nodes[p].Height, d.Nodes[lowest].Height) {
				lowest = p
			}
		}
		if lowest == -1 {
			break
		}

		a, b := d.Nodes[lowest].Children[0], d.Nodes[lowest].Children[1]
		next := open[:0]
		for _, x := range open {
			if x != a && x != b {
				next = append(next, x)
			}
		}
		open = append(next, lowest)
		isOpen[a], isOpen[b] = false, false
		isOpen[lowest] = true
	}

	groups := make([][]string, len(open))
	for i, x := range open {
		groups[i] = d.Nodes[x].Members
	}
	return groups, nil
}
