package hclust

import (
	"errors"
	"reflect"
	"testing"
)

// assertPartition fails unless groups is a partition of names.
func assertPartition(t *testing.T, groups [][]string, names []string) {
	t.Helper()
	counts := make(map[string]int)
	total := 0
	for _, group := range groups {
		if len(group) == 0 {
			t.Fatal("cut produced an empty group")
		}
		total += len(group)
		for _, name := range group {
			counts[name]++
		}
	}
	if total != len(names) {
		t.Errorf("groups cover %d names, want %d", total, len(names))
	}
	for _, name := range names {
		if counts[name] != 1 {
			t.Errorf("%q appears %d times across groups, want once", name, counts[name])
		}
	}
}

func averageDendrogram(t *testing.T) *Dendrogram {
	t.Helper()
	dend, err := Cluster(cytochrome(t), DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return dend
}

func TestLeaves(t *testing.T) {
	dend := averageDendrogram(t)

	want := []string{"Turtle", "Human", "Tuna", "Chicken", "Moth", "Monkey", "Dog"}
	if got := dend.Leaves(); !reflect.DeepEqual(got, want) {
		t.Errorf("Leaves = %v, want %v", got, want)
	}
}

func TestCutByHeight(t *testing.T) {
	dend := averageDendrogram(t)
	leaves := dend.Leaves()

	tests := []struct {
		height float64
		groups int
	}{
		{0, 7},
		{0.4, 7},
		{0.5, 6},
		{4, 5},
		{5, 5},
		{6.25, 4},
		{8.25, 3},
		{10, 3},
		{14.5, 2},
		{17, 1},
		{50, 1},
	}
	for _, tt := range tests {
		groups, err := dend.CutByHeight(tt.height)
		if err != nil {
			t.Fatalf("CutByHeight(%v): unexpected error: %v", tt.height, err)
		}
		if len(groups) != tt.groups {
			t.Errorf("CutByHeight(%v) = %d groups, want %d", tt.height, len(groups), tt.groups)
		}
		assertPartition(t, groups, leaves)
	}
}

func TestCutByHeight_GroupContents(t *testing.T) {
	dend := averageDendrogram(t)

	got, err := dend.CutByHeight(5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Groups surface in the order their first leaf appears in the input.
	want := [][]string{
		{"Turtle", "Chicken"},
		{"Human", "Monkey"},
		{"Tuna"},
		{"Moth"},
		{"Dog"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CutByHeight(5) = %v, want %v", got, want)
	}
}

func TestCutByHeight_ZeroKeepsLeavesApart(t *testing.T) {
	dend := averageDendrogram(t)

	got, err := dend.CutByHeight(0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := [][]string{{"Turtle"}, {"Human"}, {"Tuna"}, {"Chicken"}, {"Moth"}, {"Monkey"}, {"Dog"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CutByHeight(0) = %v, want %v", got, want)
	}
}

func TestCutByHeight_BoundaryInclusive(t *testing.T) {
	dend := averageDendrogram(t)

	// A node whose height equals the cut exactly is still absorbed.
	groups, err := dend.CutByHeight(0.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	found := false
	for _, group := range groups {
		if sameMembers(group, []string{"Human", "Monkey"}) {
			found = true
		}
	}
	if !found {
		t.Errorf("CutByHeight(0.5) = %v, want Human and Monkey joined", groups)
	}
}

func TestCutByHeight_NegativeHeight(t *testing.T) {
	dend := averageDendrogram(t)

	for _, h := range []float64{-0.001, -5} {
		_, err := dend.CutByHeight(h)
		if err == nil {
			t.Fatalf("expected error for height %v", h)
		}
		if !errors.Is(err, ErrNegativeHeight) {
			t.Errorf("got %v, want ErrNegativeHeight", err)
		}
	}
}

func TestCutByHeight_Monotonic(t *testing.T) {
	dend := averageDendrogram(t)

	prev := len(dend.Leaves()) + 1
	for _, h := range []float64{0, 0.5, 2, 4, 6.25, 8.25, 12, 14.5, 17, 100} {
		groups, err := dend.CutByHeight(h)
		if err != nil {
			t.Fatalf("CutByHeight(%v): unexpected error: %v", h, err)
		}
		if len(groups) > prev {
			t.Errorf("CutByHeight(%v) = %d groups, more than at a lower cut", h, len(groups))
		}
		prev = len(groups)
	}
}

func TestCutByCount(t *testing.T) {
	dend := averageDendrogram(t)
	leaves := dend.Leaves()

	for k := 1; k <= 7; k++ {
		groups, err := dend.CutByCount(k)
		if err != nil {
			t.Fatalf("CutByCount(%d): unexpected error: %v", k, err)
		}
		if len(groups) != k {
			t.Errorf("CutByCount(%d) = %d groups, want %d", k, len(groups), k)
		}
		assertPartition(t, groups, leaves)
	}
}

func TestCutByCount_GroupContents(t *testing.T) {
	dend := averageDendrogram(t)

	got, err := dend.CutByCount(5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Untouched leaves keep their input order; merged groups follow.
	want := [][]string{
		{"Tuna"},
		{"Moth"},
		{"Dog"},
		{"Human", "Monkey"},
		{"Turtle", "Chicken"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CutByCount(5) = %v, want %v", got, want)
	}
}

func TestCutByCount_MoreThanLeaves(t *testing.T) {
	dend := averageDendrogram(t)

	groups, err := dend.CutByCount(10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(groups) != 7 {
		t.Errorf("CutByCount(10) = %d groups, want all 7 leaves", len(groups))
	}
	for _, group := range groups {
		if len(group) != 1 {
			t.Errorf("group %v should be a single leaf", group)
		}
	}
}

func TestCutByCount_Invalid(t *testing.T) {
	dend := averageDendrogram(t)

	for _, k := range []int{0, -3} {
		_, err := dend.CutByCount(k)
		if err == nil {
			t.Fatalf("expected error for count %d", k)
		}
		if !errors.Is(err, ErrInvalidCount) {
			t.Errorf("got %v, want ErrInvalidCount", err)
		}
	}
}

func TestCutByCount_MatchesHeightCut(t *testing.T) {
	dend := averageDendrogram(t)

	// Cutting to k groups and cutting just under the k-th merge height
	// carve up the tree the same way.
	byCount, err := dend.CutByCount(3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	byHeight, err := dend.CutByHeight(10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	key := func(groups [][]string) map[string]int {
		assign := make(map[string]int)
		for i, group := range groups {
			for _, name := range group {
				assign[name] = i
			}
		}
		return assign
	}
	a, b := key(byCount), key(byHeight)
	for name, ga := range a {
		for other, gb := range a {
			if (ga == gb) != (b[name] == b[other]) {
				t.Errorf("%s and %s grouped differently by count and by height", name, other)
			}
		}
	}
}
