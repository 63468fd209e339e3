// Package mst computes minimum spanning forests of undirected, weighted graphs
// whose vertices are the integers 0..n-1, using Kruskal's algorithm on top of
// a unionfind.Forest.
//
// What & Why
//
//   - A minimum spanning forest keeps, for every connected part of the graph,
//     the cheapest set of edges that still connects it.
//   - Network design, clustering (cut the heaviest tree edges) and bottleneck
//     paths all start from one.
//
// Algorithm
//
//	Sort edges by ascending weight (stable, so equal weights keep input order).
//	Walk the sorted list; keep an edge when its endpoints are not yet
//	connected, and union them. Stop early once a single tree remains.
//
// Complexity: O(E log E + E·α(V)) time, O(V + E) memory.
//
// Errors
//
//   - ErrInvalidSize:   n < 0.
//   - ErrDisconnected:  SpanningTree found more than one tree.
//   - unionfind.ErrIndexOutOfRange: an edge endpoint outside [0, n).
package mst
