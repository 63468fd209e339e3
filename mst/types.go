package mst

import "errors"

var (
	// ErrInvalidSize indicates a negative vertex count.
	ErrInvalidSize = errors.New("mst: vertex count must be non-negative")

	// ErrDisconnected indicates that no single tree spans every vertex.
	ErrDisconnected = errors.New("mst: graph is disconnected")
)

// Edge is an undirected weighted edge between vertices U and V.
type Edge struct {
	U, V   int
	Weight int64
}

// Forest is a minimum spanning forest.
type Forest struct {
	// Edges lists the kept edges in the order they were accepted.
	Edges []Edge
	// Weight is the sum of the kept edge weights.
	Weight int64
	// Trees is the number of trees, isolated vertices included.
	Trees int
}
