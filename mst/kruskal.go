package mst

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/connectivity/unionfind"
)

// Kruskal computes a minimum spanning forest of the graph with vertices
// 0..n-1 and the given edges. The input slice is not modified.
//
// Steps:
//  1. Validate n; build a forest of n singletons.
//  2. Copy edges, dropping self-loops, and stable-sort by weight.
//  3. For each edge, Merge its endpoints; keep the edge when a merge happened.
//  4. Stop once the forest is down to one component.
//
// An endpoint outside [0, n) fails with an error wrapping
// unionfind.ErrIndexOutOfRange.
func Kruskal(n int, edges []Edge) (Forest, error) {
	// 1. Validate n and start from n singleton components.
	if n < 0 {
		return Forest{}, fmt.Errorf("%w: got %d", ErrInvalidSize, n)
	}
	uf, err := unionfind.New(n)
	if err != nil {
		return Forest{}, err
	}

	// 2. Copy edges without self-loops; stable sort keeps input order on ties.
	sorted := make([]Edge, 0, len(edges))
	for _, e := range edges {
		if e.U == e.V {
			continue
		}
		sorted = append(sorted, e)
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Weight < sorted[j].Weight
	})

	// 3. Keep every edge that joins two components.
	var out Forest
	for _, e := range sorted {
		// 4. A single tree remains: no further edge can be kept.
		if uf.Count() <= 1 {
			break
		}
		merged, err := uf.Merge(e.U, e.V)
		if err != nil {
			return Forest{}, fmt.Errorf("mst: edge %d-%d: %w", e.U, e.V, err)
		}
		if merged {
			out.Edges = append(out.Edges, e)
			out.Weight += e.Weight
		}
	}
	out.Trees = uf.Count()

	return out, nil
}

// SpanningTree is Kruskal that insists on a single tree.
// Returns ErrDisconnected when the graph has more than one component;
// an empty graph (n == 0) is disconnected by convention.
func SpanningTree(n int, edges []Edge) (Forest, error) {
	f, err := Kruskal(n, edges)
	if err != nil {
		return Forest{}, err
	}
	if f.Trees != 1 {
		return Forest{}, fmt.Errorf("%w: %d components", ErrDisconnected, f.Trees)
	}

	return f, nil
}
