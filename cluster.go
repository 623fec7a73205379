package hclust

import (
	"fmt"
	"io"
	"log/slog"
	"math"
)

// Config controls dendrogram construction.
// Start with [DefaultConfig] and override the fields you need.
type Config struct {
	// Linkage is the rule for deriving cluster-to-cluster distances from
	// the distances of their members: LinkageAverage, LinkageMax or
	// LinkageMin. Default: LinkageAverage.
	Linkage Linkage

	// Logger, if set, receives a debug record for every merge and a
	// warning when a merge produces a non-finite height. Default: nil
	// (logging disabled).
	Logger *slog.Logger
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{Linkage: LinkageAverage}
}

// validateConfig checks that cfg fields are valid and returns a descriptive error if not.
func validateConfig(cfg *Config) error {
	switch cfg.Linkage {
	case LinkageAverage, LinkageMax, LinkageMin:
		return nil
	default:
		return fmt.Errorf("%w %q", ErrInvalidLinkage, cfg.Linkage)
	}
}

// applyDefaults fills in zero-valued config fields with their defaults.
func applyDefaults(cfg *Config) {
	if cfg.Linkage == "" {
		cfg.Linkage = LinkageAverage
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
}

// Cluster agglomeratively merges the observations of m until a single
// cluster remains and returns the dendrogram recording every merge. Each
// new cluster's distance to the remaining clusters is recomputed from the
// original matrix with the configured linkage, never from already
// aggregated distances, so rounding does not compound across merges.
// Construction runs to completion synchronously; m is not modified.
func Cluster(m *DistanceMatrix, cfg Config) (*Dendrogram, error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	n := m.Len()
	if n == 0 {
		return nil, ErrNoObservations
	}

	d := &Dendrogram{
		Nodes:  make([]Node, 0, 2*n-1),
		leaves: n,
	}
	for _, name := range m.obs {
		d.Nodes = append(d.Nodes, Node{
			Members:  []string{name},
			Parent:   -1,
			Children: [2]int{-1, -1},
		})
	}

	w := newWorkingState(m)
	for len(w.active) > 1 {
		a, b, raw := w.closestPair()
		if a == -1 {
			// no recorded distance joins the remaining clusters
			break
		}

		members := make([]string, 0, len(d.Nodes[a].Members)+len(d.Nodes[b].Members))
		members = append(members, d.Nodes[a].Members...)
		members = append(members, d.Nodes[b].Members...)

		c := len(d.Nodes)
		height := raw * 0.5
		d.Nodes = append(d.Nodes, Node{
			Members:  members,
			Height:   height,
			Parent:   -1,
			Children: [2]int{a, b},
		})
		d.Nodes[a].Parent = c
		d.Nodes[b].Parent = c

		if math.IsNaN(height) || math.IsInf(height, 0) {
			cfg.Logger.Warn("non-finite merge height", "node", c, "height", height)
		}

		w.remove(a, b)
		row := make(map[int]float64, len(w.active))
		for _, x := range w.active {
			row[x] = linkageDistance(m, cfg.Linkage, d.Nodes[x].Members, members)
		}
		w.add(c, row)

		cfg.Logger.Debug("merged clusters",
			"node", c, "left", a, "right", b, "size", len(members),
			"distance", raw, "height", height,
			"remaining", len(w.active))
	}

	return d, nil
}

// workingState is the disposable side of clustering: the set of live node
// indices plus the current distance between every live pair, each pair
// stored once. It shrinks by one entry per merge and is discarded when
// clustering completes; the dendrogram is the only lasting output.
type workingState struct {
	active []int // live node indices, in creation order
	dist   map[int]map[int]float64
}

func newWorkingState(m *DistanceMatrix) *workingState {
	n := m.Len()
	w := &workingState{
		active: make([]int, n),
		dist:   make(map[int]map[int]float64, n),
	}
	for i := range w.active {
		w.active[i] = i
	}
	for i := 1; i < n; i++ {
		for j := 0; j < i; j++ {
			if d := m.vals[triIndex(i, j)]; !math.IsNaN(d) {
				w.set(i, j, d)
			}
		}
	}
	return w
}

func (w *workingState) set(a, b int, d float64) {
	row := w.dist[a]
	if row == nil {
		row = make(map[int]float64)
		w.dist[a] = row
	}
	row[b] = d
}

// lookup checks both storage orientations.
func (w *workingState) lookup(a, b int) (float64, bool) {
	if d, ok := w.dist[a][b]; ok {
		return d, true
	}
	d, ok := w.dist[b][a]
	return d, ok
}

// closestPair returns the live pair with the smallest current distance,
// ordered by creation. Pairs are scanned in a fixed order and ties break
// to the first minimum, so a given matrix always merges identically. A
// pair whose linkage came out NaN is chosen only when no pair with a
// recorded distance remains. Returns -1 indices when no live pair has
// any distance entry.
func (w *workingState) closestPair() (a, b int, d float64) {
	a, b = -1, -1
	for i := 1; i < len(w.active); i++ {
		for j := 0; j < i; j++ {
			v, ok := w.lookup(w.active[i], w.active[j])
			if !ok {
				continue
			}
			if a == -1 || closerThan(v, d) {
				a, b, d = w.active[j], w.active[i], v
			}
		}
	}
	return a, b, d
}

// remove retires two merged nodes: they leave the live list, their own
// distance rows are dropped, and their entries under other rows are
// deleted.
func (w *workingState) remove(a, b int) {
	live := w.active[:0]
	for _, x := range w.active {
		if x != a && x != b {
			live = append(live, x)
		}
	}
	w.active = live

	delete(w.dist, a)
	delete(w.dist, b)
	for _, row := range w.dist {
		delete(row, a)
		delete(row, b)
	}
}

// add introduces a new node along with its distances to every live node.
func (w *workingState) add(c int, row map[int]float64) {
	w.dist[c] = row
	w.active = append(w.active, c)
}
