package hclust

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Linkage selects how the distance between two clusters is derived from
// the pairwise distances of their members.
type Linkage string

const (
	// LinkageAverage uses the mean distance over all cross-cluster member
	// pairs, as in UPGMA.
	LinkageAverage Linkage = "average"

	// LinkageMax uses the largest such distance (complete linkage).
	LinkageMax Linkage = "max"

	// LinkageMin uses the smallest such distance (single linkage).
	LinkageMin Linkage = "min"
)

// linkageDistance computes the distance between two clusters from the
// original matrix over the cross product of their members, never from
// previously aggregated working distances. Pairs the matrix never
// recorded are skipped; if no pair is recorded at all the result is NaN.
func linkageDistance(m *DistanceMatrix, method Linkage, a, b []string) float64 {
	dists := make([]float64, 0, len(a)*len(b))
	for _, p := range a {
		for _, q := range b {
			if d, ok := m.Distance(p, q); ok {
				dists = append(dists, d)
			}
		}
	}
	if len(dists) == 0 {
		return math.NaN()
	}

	switch method {
	case LinkageMax:
		return floats.Max(dists)
	case LinkageMin:
		return floats.Min(dists)
	default:
		return stat.Mean(dists, nil)
	}
}

// closerThan reports whether distance a should be preferred over an
// incumbent b when scanning for a closest pair: a recorded (finite)
// distance always beats NaN, otherwise the strictly smaller one wins.
func closerThan(a, b float64) bool {
	if math.IsNaN(b) {
		return !math.IsNaN(a)
	}
	return a < b
}
