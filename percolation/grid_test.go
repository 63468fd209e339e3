package percolation

import (
	"context"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openAll(t *testing.T, g *Grid, sites ...[2]int) {
	t.Helper()
	for _, s := range sites {
		require.NoError(t, g.Open(s[0], s[1]))
	}
}

func TestNew_InvalidSize(t *testing.T) {
	// Past the square root of MaxInt, n*n wraps around.
	overflow := int(math.Sqrt(float64(math.MaxInt))) + 1
	for _, n := range []int{0, -3, overflow, math.MaxInt / 2, math.MaxInt} {
		g, err := New(n)
		assert.Nil(t, g)
		assert.ErrorIs(t, err, ErrInvalidSize)
	}
}

func TestGrid_SingleSite(t *testing.T) {
	g, err := New(1)
	require.NoError(t, err)
	assert.False(t, g.Percolates())

	require.NoError(t, g.Open(1, 1))
	assert.True(t, g.Percolates())
	full, err := g.IsFull(1, 1)
	require.NoError(t, err)
	assert.True(t, full)
	assert.Equal(t, 1, g.OpenSites())
}

// TestGrid_Column opens the middle column of a 3×3 grid top to bottom and
// checks that the system percolates only when the last site opens.
func TestGrid_Column(t *testing.T) {
	g, err := New(3)
	require.NoError(t, err)

	openAll(t, g, [2]int{1, 2}, [2]int{2, 2})
	assert.False(t, g.Percolates())
	full, err := g.IsFull(2, 2)
	require.NoError(t, err)
	assert.True(t, full)

	require.NoError(t, g.Open(3, 2))
	assert.True(t, g.Percolates())
	assert.Equal(t, 3, g.OpenSites())
}

// TestGrid_NoBackwash guards against bottom-row sites turning full through
// the virtual bottom once the system percolates.
//
//	X . .
//	X . .
//	X . X
func TestGrid_NoBackwash(t *testing.T) {
	g, err := New(3)
	require.NoError(t, err)
	openAll(t, g, [2]int{1, 1}, [2]int{2, 1}, [2]int{3, 1}, [2]int{3, 3})
	require.True(t, g.Percolates())

	full, err := g.IsFull(3, 3)
	require.NoError(t, err)
	assert.False(t, full)
	full, err = g.IsFull(3, 1)
	require.NoError(t, err)
	assert.True(t, full)
}

func TestGrid_OpenIdempotent(t *testing.T) {
	g, err := New(2)
	require.NoError(t, err)
	openAll(t, g, [2]int{1, 1}, [2]int{1, 1})
	assert.Equal(t, 1, g.OpenSites())

	open, err := g.IsOpen(1, 1)
	require.NoError(t, err)
	assert.True(t, open)
	open, err = g.IsOpen(2, 2)
	require.NoError(t, err)
	assert.False(t, open)
	full, err := g.IsFull(2, 2)
	require.NoError(t, err)
	assert.False(t, full, "blocked sites are never full")
}

// TestGrid_Connectivity opens a diagonal: only Conn8 links it.
func TestGrid_Connectivity(t *testing.T) {
	diag := [][2]int{{1, 1}, {2, 2}, {3, 3}}

	g4, err := New(3)
	require.NoError(t, err)
	openAll(t, g4, diag...)
	assert.False(t, g4.Percolates())

	g8, err := New(3, WithConnectivity(Conn8))
	require.NoError(t, err)
	openAll(t, g8, diag...)
	assert.True(t, g8.Percolates())
}

func TestGrid_OutOfGrid(t *testing.T) {
	g, err := New(4)
	require.NoError(t, err)

	cases := [][2]int{{0, 1}, {1, 0}, {5, 1}, {1, 5}, {-1, -1}}
	for _, c := range cases {
		assert.ErrorIs(t, g.Open(c[0], c[1]), ErrOutOfGrid)
		_, err := g.IsOpen(c[0], c[1])
		assert.ErrorIs(t, err, ErrOutOfGrid)
		_, err = g.IsFull(c[0], c[1])
		assert.ErrorIs(t, err, ErrOutOfGrid)
	}
	assert.Equal(t, 0, g.OpenSites())
	assert.Equal(t, 4, g.Size())
}

func TestTrial_StopsWhenCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := trial(ctx, 64, Conn4, rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, context.Canceled)

	x, err := trial(context.Background(), 1, Conn4, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.Equal(t, 1.0, x)
}
