package unionfind

import (
	"errors"
	"fmt"
)

// Sentinel errors for forest operations.
var (
	// ErrInvalidSize indicates a negative universe size was requested.
	ErrInvalidSize = errors.New("unionfind: universe size must be non-negative")

	// ErrIndexOutOfRange indicates an element index outside [0, n).
	ErrIndexOutOfRange = errors.New("unionfind: element index out of range")
)

// Forest is a disjoint-set forest over the elements 0..n-1.
//
// parent[i] is the parent of i; a root satisfies parent[r] == r.
// size[r] is only meaningful while r is a root and counts the elements of
// its tree. count is the number of distinct roots.
//
// The zero value is an empty forest (n = 0). A Forest must not be copied
// after first use.
type Forest struct {
	parent []int
	size   []int
	count  int
}

// rangeError wraps ErrIndexOutOfRange with the offending index.
func rangeError(i, n int) error {
	if n == 0 {
		return fmt.Errorf("%w: index %d, forest is empty", ErrIndexOutOfRange, i)
	}

	return fmt.Errorf("%w: index %d not in [0, %d]", ErrIndexOutOfRange, i, n-1)
}
