package unionfind

import "sync"

// SyncForest is a Forest guarded by a single mutex.
//
// Every method takes the lock for its whole duration. A sync.RWMutex would
// not help: path halving makes FindRoot and Connected writers too.
type SyncForest struct {
	mu sync.Mutex
	f  *Forest
}

// NewSync returns a lock-guarded forest of n singleton components.
// Returns ErrInvalidSize if n < 0.
func NewSync(n int) (*SyncForest, error) {
	f, err := New(n)
	if err != nil {
		return nil, err
	}

	return &SyncForest{f: f}, nil
}

// Len returns the universe size n.
func (s *SyncForest) Len() int {
	// parent is never resized, no lock needed.
	return s.f.Len()
}

// Count returns the number of disjoint components.
func (s *SyncForest) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.f.Count()
}

// FindRoot returns the representative of the component containing i.
func (s *SyncForest) FindRoot(i int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.f.FindRoot(i)
}

// Connected reports whether p and q belong to the same component.
func (s *SyncForest) Connected(p, q int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.f.Connected(p, q)
}

// Union merges the components containing p and q.
func (s *SyncForest) Union(p, q int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.f.Union(p, q)
}

// Merge merges the components containing p and q and reports whether they
// were distinct. The check and the merge happen under one lock acquisition,
// so exactly one of several racing Merge calls on the same pair sees true.
func (s *SyncForest) Merge(p, q int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.f.Merge(p, q)
}

// ComponentSize returns the number of elements in the component containing i.
func (s *SyncForest) ComponentSize(i int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.f.ComponentSize(i)
}
