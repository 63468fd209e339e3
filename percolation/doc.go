// Package percolation models an n×n grid of sites that are opened one by one
// and answers whether the open sites connect the top row to the bottom row.
//
// What:
//
//   - Grid tracks open sites and keeps two unionfind forests over them.
//   - IsFull reports whether a site is reachable from the top row through
//     open sites; Percolates reports whether the bottom row is.
//   - Estimate runs Monte Carlo trials to approximate the fraction of open
//     sites at which a random grid starts to percolate (≈0.5927 for Conn4).
//
// Layout:
//
//	Sites are addressed by 1-based (row, col) with row 1 at the top.
//	Site (row, col) lives at linear index (row-1)*n + (col-1); index n*n is a
//	virtual top site linked to every open top-row site and n*n+1 a virtual
//	bottom site linked to every open bottom-row site.
//
//	    top (n*n)
//	   ┌─┬─┬─┐
//	   │0│1│2│
//	   ├─┼─┼─┤
//	   │3│4│5│
//	   ├─┼─┼─┤
//	   │6│7│8│
//	   └─┴─┴─┘
//	    bottom (n*n+1)
//
// Backwash:
//
//	With a single forest, once the system percolates every open bottom-row
//	site looks full through the virtual bottom. Grid therefore keeps a second
//	forest without the virtual bottom and answers IsFull from it.
//
// Complexity:
//
//   - New:        O(n²) time and memory.
//   - Open:       amortized O(d·α(n²)), d = 4 or 8 neighbors.
//   - IsFull:     amortized O(α(n²)).
//   - Percolates: amortized O(α(n²)).
//   - Estimate:   O(T·n²·α(n²)) for T trials, spread over the worker pool.
//
// Errors:
//
//   - ErrInvalidSize:   grid side n ≤ 0.
//   - ErrOutOfGrid:     (row, col) outside [1, n]×[1, n].
//   - ErrInvalidTrials: Estimate called with trials < 1.
package percolation
