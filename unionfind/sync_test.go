package unionfind_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/katalvlaran/connectivity/unionfind"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestNewSync_InvalidSize(t *testing.T) {
	s, err := unionfind.NewSync(-4)
	assert.Nil(t, s)
	assert.ErrorIs(t, err, unionfind.ErrInvalidSize)
}

// TestSyncForest_ConcurrentMerge races many goroutines over the same pairs.
// Exactly n-1 merges may report true when everything is joined into one.
func TestSyncForest_ConcurrentMerge(t *testing.T) {
	defer goleak.VerifyNone(t)

	const n, workers = 512, 8
	s, err := unionfind.NewSync(n)
	require.NoError(t, err)

	var (
		wg     sync.WaitGroup
		merges atomic.Int64
	)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(offset int) {
			defer wg.Done()
			for i := 1; i < n; i++ {
				// Every worker links the same chain, starting at different points.
				j := (i+offset*n/workers)%(n-1) + 1
				ok, err := s.Merge(j-1, j)
				if err != nil {
					t.Error(err)
					return
				}
				if ok {
					merges.Add(1)
				}
				if _, err := s.Connected(0, j); err != nil {
					t.Error(err)
					return
				}
			}
		}(w)
	}
	wg.Wait()

	assert.EqualValues(t, n-1, merges.Load())
	assert.Equal(t, 1, s.Count())
	assert.Equal(t, n, s.Len())
	sz, err := s.ComponentSize(n - 1)
	require.NoError(t, err)
	assert.Equal(t, n, sz)
	r0, err := s.FindRoot(0)
	require.NoError(t, err)
	r1, err := s.FindRoot(n - 1)
	require.NoError(t, err)
	assert.Equal(t, r0, r1)
}

func TestSyncForest_RangeError(t *testing.T) {
	s, err := unionfind.NewSync(2)
	require.NoError(t, err)
	assert.ErrorIs(t, s.Union(0, 2), unionfind.ErrIndexOutOfRange)
	assert.Equal(t, 2, s.Count())
}
