// Package connectivity is an in-memory toolkit for incremental connectivity:
// feed it pairs, ask whether two elements are already joined.
//
// What's inside
//
//	unionfind/   — weighted quick-union forest with path halving (the engine)
//	percolation/ — n×n percolation grid and Monte Carlo threshold estimates
//	mst/         — Kruskal minimum spanning forests over integer vertices
//	cmd/ufctl/   — batch driver: union pairs, open sites, estimate thresholds
//
// Quick example:
//
//	uf, _ := unionfind.New(10)
//	_ = uf.Union(4, 3)
//	_ = uf.Union(3, 8)
//	ok, _ := uf.Connected(4, 8) // true
//	uf.Count()                  // 8
//
// Every structure is a plain value with no global state; give each goroutine
// its own, or use unionfind.SyncForest when one must be shared.
//
//	go get github.com/katalvlaran/connectivity
package connectivity
