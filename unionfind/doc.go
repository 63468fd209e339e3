// Package unionfind answers incremental dynamic-connectivity queries over a
// fixed universe of n elements, numbered 0 through n-1.
//
// What:
//
//   - Forest is a weighted quick-union forest with halving path compression.
//   - Every element starts as its own singleton component; Union merges two
//     components, Connected tells whether two elements share one.
//   - SyncForest wraps a Forest behind a single mutex for callers that share
//     one instance across goroutines.
//
// Why:
//
//   - Percolation models: is the top row linked to the bottom row yet?
//   - Kruskal's MST: skip edges whose endpoints already share a tree.
//   - Equivalence classes over a stream of pairs (networks, pixels, accounts).
//
// Algorithm:
//
//	find:  walk parent pointers to the root; at each step replace parent[i]
//	       by its grandparent, so every traversal roughly halves the path.
//	union: link the root of the smaller tree under the root of the larger one
//	       (union by size; on equal sizes q's root goes under p's root).
//
// Union by size alone keeps every tree at height ≤ lg n. Combined with path
// halving, any sequence of M operations on n elements touches the arrays
// O(n + M·α(n)) times, which is linear in practice.
//
// Complexity:
//
//   - New:            O(n) time, O(n) memory.
//   - FindRoot:       amortized O(α(n)), no allocation.
//   - Connected:      amortized O(α(n)).
//   - Union / Merge:  amortized O(α(n)).
//   - Count, Len:     O(1).
//
// Concurrency:
//
//	Forest has no internal locking. FindRoot rewrites parent pointers, so even
//	Connected is a writer: guard every call with one lock (SyncForest does
//	exactly that) or give each goroutine its own Forest. Separate forests
//	share no state.
//
// Errors:
//
//   - ErrInvalidSize:     New was called with n < 0.
//   - ErrIndexOutOfRange: an element index lies outside [0, n). The forest is
//     left untouched when either argument of a call is rejected.
//
// Non-goals: unions cannot be undone, and the members of a component cannot
// be listed.
package unionfind
