package unionfind

import "fmt"

// New returns a forest of n singleton components.
// Returns ErrInvalidSize if n < 0; no forest is built in that case.
// Complexity: O(n) time and memory.
func New(n int) (*Forest, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, n)
	}
	f := &Forest{
		parent: make([]int, n),
		size:   make([]int, n),
		count:  n,
	}
	for i := 0; i < n; i++ {
		f.parent[i] = i
		f.size[i] = 1
	}

	return f, nil
}

// Len returns the universe size n.
func (f *Forest) Len() int {
	return len(f.parent)
}

// Count returns the number of disjoint components, between 0 and Len().
// Complexity: O(1).
func (f *Forest) Count() int {
	return f.count
}

// FindRoot returns the representative of the component containing i.
//
// The returned value identifies the component only until the next Union
// touching it: after a merge one of the two old roots stops being a root.
// Compare roots (or call Connected) rather than caching them.
//
// Returns ErrIndexOutOfRange unless 0 ≤ i < Len().
// Complexity: amortized O(α(n)); mutates parent pointers along the path.
func (f *Forest) FindRoot(i int) (int, error) {
	if err := f.validate(i); err != nil {
		return 0, err
	}

	return f.root(i), nil
}

// Connected reports whether p and q belong to the same component.
// Both indices are checked before any lookup.
func (f *Forest) Connected(p, q int) (bool, error) {
	if err := f.validate2(p, q); err != nil {
		return false, err
	}

	return f.root(p) == f.root(q), nil
}

// Union merges the components containing p and q.
// Merging an element with its own component is a no-op.
// On error the forest is unchanged.
func (f *Forest) Union(p, q int) error {
	_, err := f.Merge(p, q)

	return err
}

// Merge is Union that also reports whether two distinct components were
// joined (and Count therefore dropped by one).
//
// Steps:
//  1. Validate both indices; nothing is touched if either is rejected.
//  2. Resolve both roots (compressing both paths).
//  3. Equal roots: already connected, return false.
//  4. Attach the smaller tree's root under the larger one's; on a tie q's
//     root goes under p's root. Grow the receiving size, decrement count.
//
// Complexity: amortized O(α(n)).
func (f *Forest) Merge(p, q int) (bool, error) {
	// 1. Validate both indices before any path is compressed.
	if err := f.validate2(p, q); err != nil {
		return false, err
	}
	// 2. Resolve both roots.
	rootP, rootQ := f.root(p), f.root(q)
	// 3. Same component: nothing to merge.
	if rootP == rootQ {
		return false, nil
	}
	// 4. Smaller tree goes under the larger root; ties go under rootP.
	if f.size[rootP] < f.size[rootQ] {
		f.parent[rootP] = rootQ
		f.size[rootQ] += f.size[rootP]
	} else {
		f.parent[rootQ] = rootP
		f.size[rootP] += f.size[rootQ]
	}
	f.count--

	return true, nil
}

// ComponentSize returns the number of elements in the component containing i.
func (f *Forest) ComponentSize(i int) (int, error) {
	if err := f.validate(i); err != nil {
		return 0, err
	}

	return f.size[f.root(i)], nil
}

// root walks to the root of i with path halving. i must be valid.
func (f *Forest) root(i int) int {
	parent := f.parent
	for parent[i] != i {
		parent[i] = parent[parent[i]]
		i = parent[i]
	}

	return i
}

func (f *Forest) validate(i int) error {
	if n := len(f.parent); i < 0 || i >= n {
		return rangeError(i, n)
	}

	return nil
}

func (f *Forest) validate2(p, q int) error {
	if err := f.validate(p); err != nil {
		return err
	}

	return f.validate(q)
}
