package percolation_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/connectivity/percolation"
)

// BenchmarkEstimate measures 16 trials on a 200×200 grid with 4 workers.
// Complexity: O(T·n²·α(n²)).
func BenchmarkEstimate(b *testing.B) {
	ctx := context.Background()
	for i := 0; i < b.N; i++ {
		if _, err := percolation.Estimate(ctx, 200, 16, percolation.WithWorkers(4)); err != nil {
			b.Fatalf("Estimate failed: %v", err)
		}
	}
}
