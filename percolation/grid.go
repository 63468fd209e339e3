package percolation

import (
	"fmt"

	"github.com/katalvlaran/connectivity/unionfind"
)

// Grid is an n×n percolation system. All sites start blocked.
// A Grid is not safe for concurrent use.
type Grid struct {
	n         int
	open      []bool
	openCount int
	offsets   [][2]int

	// perc links both virtual sites and answers Percolates.
	perc *unionfind.Forest
	// full links only the virtual top and answers IsFull without backwash.
	full *unionfind.Forest
}

// New returns an n×n grid with every site blocked.
// Returns ErrInvalidSize if n ≤ 0 or n*n+2 overflows int.
// Complexity: O(n²) time and memory.
func New(n int, opts ...Option) (*Grid, error) {
	if err := checkSize(n); err != nil {
		return nil, err
	}
	o := buildOptions(opts)
	sites := n * n
	perc, err := unionfind.New(sites + 2)
	if err != nil {
		return nil, err
	}
	full, err := unionfind.New(sites + 1)
	if err != nil {
		return nil, err
	}

	return &Grid{
		n:       n,
		open:    make([]bool, sites),
		offsets: o.Conn.offsets(),
		perc:    perc,
		full:    full,
	}, nil
}

// Size returns the grid side n.
func (g *Grid) Size() int {
	return g.n
}

// Open opens site (row, col) and links it to its open neighbors and, on the
// top or bottom row, to the matching virtual site. Opening an open site is a
// no-op.
func (g *Grid) Open(row, col int) error {
	i, err := g.index(row, col)
	if err != nil {
		return err
	}
	if g.open[i] {
		return nil
	}
	g.open[i] = true
	g.openCount++

	if row == 1 {
		if err := g.link(i, g.top()); err != nil {
			return err
		}
	}
	if row == g.n {
		// The full forest has no virtual bottom.
		if err := g.perc.Union(i, g.bottom()); err != nil {
			return err
		}
	}
	for _, d := range g.offsets {
		r, c := row+d[0], col+d[1]
		if !g.inBounds(r, c) {
			continue
		}
		j := g.site(r, c)
		if !g.open[j] {
			continue
		}
		if err := g.link(i, j); err != nil {
			return err
		}
	}

	return nil
}

// IsOpen reports whether site (row, col) is open.
func (g *Grid) IsOpen(row, col int) (bool, error) {
	i, err := g.index(row, col)
	if err != nil {
		return false, err
	}

	return g.open[i], nil
}

// IsFull reports whether site (row, col) is open and connected to the top
// row through open sites.
func (g *Grid) IsFull(row, col int) (bool, error) {
	i, err := g.index(row, col)
	if err != nil {
		return false, err
	}
	if !g.open[i] {
		return false, nil
	}

	return g.full.Connected(i, g.top())
}

// Percolates reports whether some open path joins the top and bottom rows.
func (g *Grid) Percolates() bool {
	// Both virtual indices are always valid.
	ok, _ := g.perc.Connected(g.top(), g.bottom())

	return ok
}

// OpenSites returns the number of open sites.
func (g *Grid) OpenSites() int {
	return g.openCount
}

// link unions i and j in both forests.
func (g *Grid) link(i, j int) error {
	if err := g.perc.Union(i, j); err != nil {
		return err
	}

	return g.full.Union(i, j)
}

func (g *Grid) top() int    { return g.n * g.n }
func (g *Grid) bottom() int { return g.n*g.n + 1 }

func (g *Grid) inBounds(row, col int) bool {
	return row >= 1 && row <= g.n && col >= 1 && col <= g.n
}

// site maps a valid (row, col) to its linear index.
func (g *Grid) site(row, col int) int {
	return (row-1)*g.n + (col - 1)
}

func (g *Grid) index(row, col int) (int, error) {
	if !g.inBounds(row, col) {
		return 0, fmt.Errorf("%w: (%d, %d) not in [1, %d]×[1, %d]", ErrOutOfGrid, row, col, g.n, g.n)
	}

	return g.site(row, col), nil
}
