// Package hclust implements agglomerative hierarchical clustering of
// observations described only by their pairwise distances.
//
// Every observation starts as its own cluster; the two closest clusters
// are repeatedly merged until a single one remains. The result is a
// dendrogram: a binary tree recording the order and height of every
// merge. Flat clusterings are extracted by cutting the tree at a height
// or by undoing merges until a target number of groups remains.
//
// Basic usage:
//
//	m, err := hclust.LoadMatrix("distances.dist", false)
//	// ...
//	dend, err := hclust.Cluster(m, hclust.DefaultConfig())
//	// ...
//	groups, err := dend.CutByHeight(10) // clusters merged at height <= 10
//	groups, err = dend.CutByCount(5)    // exactly 5 clusters
//
// # Input format
//
// Distance tables are tab-delimited text. The lower-triangular form has a
// header row (starting with a tab) naming every observation except the
// last, then one row per remaining observation listing its distances to
// the observations before it:
//
//	'	Turtle	Human	Tuna'
//	'Human	19'
//	'Tuna	27	31'
//	'Chicken	8	18	26'
//
// [ReadFullMatrix] accepts the equivalent full symmetric matrix and
// reduces it to its lower triangle. Files compressed with gzip, zstd or
// lz4 load transparently through [LoadMatrix].
//
// # Linkage
//
// The distance between two multi-member clusters is always derived from
// the original matrix over all cross-cluster member pairs: the mean
// (LinkageAverage), the maximum (LinkageMax) or the minimum (LinkageMin)
// of those distances. A node's height is half the linkage distance of the
// merge that formed it.
package hclust
