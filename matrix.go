package hclust

import (
	"fmt"
	"math"
)

// Row is one parsed line of a lower-triangular distance table: an
// observation's label plus its distances to every observation that
// appeared before it.
type Row struct {
	Label     string
	Distances []float64
}

// DistanceMatrix holds one symmetric distance for every unordered pair of
// observations. It is immutable once built; clustering only ever reads it.
type DistanceMatrix struct {
	obs   []string
	index map[string]int

	// vals is the flat lower triangle: the distance between observations
	// i and j (i > j) lives at i*(i-1)/2 + j. NaN marks pairs the input
	// never recorded.
	vals []float64
}

// triIndex flattens lower-triangle coordinates into vals. Requires i > j.
func triIndex(i, j int) int { return i*(i-1)/2 + j }

// NewDistanceMatrix builds a matrix from a header naming the leading
// observations and the rows of a lower-triangular table. A label appearing
// both in the header and as a row label joins the observation order exactly
// once. A row may carry fewer distances than its position allows (the
// missing pairs stay unrecorded) but never more, since that would imply a
// self-distance.
func NewDistanceMatrix(header []string, rows []Row) (*DistanceMatrix, error) {
	m := &DistanceMatrix{index: make(map[string]int, len(header)+len(rows))}

	add := func(name string) error {
		if name == "" {
			return fmt.Errorf("hclust: empty observation name")
		}
		if _, ok := m.index[name]; ok {
			return fmt.Errorf("hclust: duplicate observation %q", name)
		}
		m.index[name] = len(m.obs)
		m.obs = append(m.obs, name)
		return nil
	}

	for _, name := range header {
		if err := add(name); err != nil {
			return nil, err
		}
	}
	seen := make(map[string]bool, len(rows))
	for _, row := range rows {
		if seen[row.Label] {
			return nil, fmt.Errorf("hclust: duplicate row %q", row.Label)
		}
		seen[row.Label] = true
		if _, ok := m.index[row.Label]; !ok {
			if err := add(row.Label); err != nil {
				return nil, err
			}
		}
	}

	n := len(m.obs)
	m.vals = make([]float64, n*(n-1)/2)
	for i := range m.vals {
		m.vals[i] = math.NaN()
	}
	for _, row := range rows {
		i := m.index[row.Label]
		if len(row.Distances) > i {
			return nil, fmt.Errorf("hclust: row %q has %d distances, want at most %d",
				row.Label, len(row.Distances), i)
		}
		for j, d := range row.Distances {
			m.vals[triIndex(i, j)] = d
		}
	}
	return m, nil
}

// Len returns the number of observations in the matrix.
func (m *DistanceMatrix) Len() int { return len(m.obs) }

// Observations returns the observation names in input order.
func (m *DistanceMatrix) Observations() []string {
	out := make([]string, len(m.obs))
	copy(out, m.obs)
	return out
}

// Distance returns the recorded distance between two observations. Both
// orientations resolve to the same value. ok is false when either name is
// unknown, when a == b (no self-distances are stored), or when the input
// never recorded the pair.
func (m *DistanceMatrix) Distance(a, b string) (float64, bool) {
	i, ok := m.index[a]
	if !ok {
		return 0, false
	}
	j, ok := m.index[b]
	if !ok || i == j {
		return 0, false
	}
	if i < j {
		i, j = j, i
	}
	d := m.vals[triIndex(i, j)]
	if math.IsNaN(d) {
		return 0, false
	}
	return d, true
}

// Closest returns the pair of observations with the smallest recorded
// distance, in observation order. The triangle is scanned in (row, column)
// order and ties resolve to the first pair encountered, so the result is
// deterministic for a given matrix. ok is false when fewer than two
// observations exist or no distance was recorded at all.
func (m *DistanceMatrix) Closest() (a, b string, ok bool) {
	if len(m.obs) < 2 {
		return "", "", false
	}
	var best float64
	bi, bj := -1, -1
	for i := 1; i < len(m.obs); i++ {
		for j := 0; j < i; j++ {
			d := m.vals[triIndex(i, j)]
			if math.IsNaN(d) {
				continue
			}
			if bi == -1 || d < best {
				best, bi, bj = d, i, j
			}
		}
	}
	if bi == -1 {
		return "", "", false
	}
	return m.obs[bj], m.obs[bi], true
}
