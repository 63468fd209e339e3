package percolation

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for percolation operations.
var (
	// ErrInvalidSize indicates a grid side that is not positive.
	ErrInvalidSize = errors.New("percolation: grid size must be positive")
	// ErrOutOfGrid indicates a (row, col) outside the grid.
	ErrOutOfGrid = errors.New("percolation: site outside the grid")
	// ErrInvalidTrials indicates a non-positive number of Monte Carlo trials.
	ErrInvalidTrials = errors.New("percolation: number of trials must be positive")
)

// Connectivity selects which open neighbors a newly opened site links to.
type Connectivity int

const (
	// Conn4 links orthogonal neighbors: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 also links diagonal neighbors.
	Conn8
)

// offsets returns the (dRow, dCol) neighbor offsets for c.
func (c Connectivity) offsets() [][2]int {
	if c == Conn8 {
		return [][2]int{{-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}}
	}

	return [][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
}

// Options holds the tunables of Grid and Estimate.
type Options struct {
	// Conn chooses 4- or 8-directional neighbor linking.
	Conn Connectivity
	// Seed feeds the per-trial random sources of Estimate.
	Seed int64
	// Workers bounds the number of trials Estimate runs at once.
	Workers int
}

// Option configures Options.
type Option func(*Options)

// WithConnectivity sets the neighbor connectivity.
func WithConnectivity(c Connectivity) Option {
	return func(o *Options) {
		o.Conn = c
	}
}

// WithSeed fixes the random seed of Estimate so that runs are repeatable.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithWorkers sets how many trials Estimate may run in parallel.
// Values below 1 are treated as 1.
func WithWorkers(n int) Option {
	return func(o *Options) {
		o.Workers = n
	}
}

// DefaultOptions returns Options with Conn4, seed 1 and a single worker.
func DefaultOptions() Options {
	return Options{
		Conn:    Conn4,
		Seed:    1,
		Workers: 1,
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Workers < 1 {
		o.Workers = 1
	}

	return o
}

// checkSize rejects grid sides that are not positive or whose n*n sites plus
// two virtual sites do not fit in an int.
func checkSize(n int) error {
	if n <= 0 || n > (math.MaxInt-2)/n {
		return fmt.Errorf("%w: got %d", ErrInvalidSize, n)
	}

	return nil
}
