package hclust

import "errors"

var (
	// ErrNoObservations is returned by Cluster when the distance matrix
	// holds no observations.
	ErrNoObservations = errors.New("hclust: distance matrix has no observations")

	// ErrInvalidLinkage is returned when Config.Linkage is not one of
	// LinkageAverage, LinkageMax or LinkageMin.
	ErrInvalidLinkage = errors.New("hclust: invalid linkage")

	// ErrNegativeHeight is returned by CutByHeight for a negative height.
	ErrNegativeHeight = errors.New("hclust: cut height must be >= 0")

	// ErrInvalidCount is returned by CutByCount for a non-positive count.
	ErrInvalidCount = errors.New("hclust: cluster count must be >= 1")
)
