package percolation

import (
	"context"
	"fmt"
	"math"
	"math/rand"

	"golang.org/x/sync/errgroup"
)

// confidence95 is the z-score of a two-sided 95% confidence interval.
const confidence95 = 1.96

// Stats summarizes the percolation thresholds observed over several trials.
type Stats struct {
	Size         int     // grid side n
	Trials       int     // number of trials T
	Mean         float64 // sample mean of the thresholds
	StdDev       float64 // sample standard deviation; 0 when T == 1
	ConfidenceLo float64 // Mean - 1.96·StdDev/√T
	ConfidenceHi float64 // Mean + 1.96·StdDev/√T
}

// Estimate runs trials independent experiments on n×n grids. Each experiment
// opens blocked sites in uniformly random order until the grid percolates and
// records the fraction of open sites.
//
// Trials run on a pool of opts.Workers goroutines, each trial on its own Grid
// and its own random source seeded with Seed+trial, so the result does not
// depend on the number of workers. Cancelling ctx stops scheduling new trials
// and Estimate returns ctx.Err().
//
// Running trials check ctx every n opens, so cancellation does not wait for
// them to finish.
//
// Returns ErrInvalidSize if n ≤ 0 or n*n+2 overflows int, ErrInvalidTrials
// if trials < 1.
func Estimate(ctx context.Context, n, trials int, opts ...Option) (Stats, error) {
	if err := checkSize(n); err != nil {
		return Stats{}, err
	}
	if trials < 1 {
		return Stats{}, fmt.Errorf("%w: got %d", ErrInvalidTrials, trials)
	}
	o := buildOptions(opts)

	thresholds := make([]float64, trials)
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(o.Workers)
	for t := 0; t < trials; t++ {
		if egCtx.Err() != nil {
			break
		}
		t := t
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			r := rand.New(rand.NewSource(o.Seed + int64(t)))
			x, err := trial(egCtx, n, o.Conn, r)
			if err != nil {
				return err
			}
			thresholds[t] = x

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return Stats{}, err
	}
	if err := ctx.Err(); err != nil {
		return Stats{}, err
	}

	return summarize(n, thresholds), nil
}

// trial opens sites of a fresh grid in random order until it percolates and
// returns the open fraction. It gives up with ctx.Err() once ctx is done,
// checking every n opens.
func trial(ctx context.Context, n int, conn Connectivity, r *rand.Rand) (float64, error) {
	g, err := New(n, WithConnectivity(conn))
	if err != nil {
		return 0, err
	}
	for k, i := range r.Perm(n * n) {
		if k%n == 0 {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
		}
		if err := g.Open(i/n+1, i%n+1); err != nil {
			return 0, err
		}
		if g.Percolates() {
			break
		}
	}

	return float64(g.OpenSites()) / float64(n*n), nil
}

func summarize(n int, xs []float64) Stats {
	t := float64(len(xs))
	var sum float64
	for _, x := range xs {
		sum += x
	}
	mean := sum / t

	var stddev float64
	if len(xs) > 1 {
		var sq float64
		for _, x := range xs {
			sq += (x - mean) * (x - mean)
		}
		stddev = math.Sqrt(sq / (t - 1))
	}
	half := confidence95 * stddev / math.Sqrt(t)

	return Stats{
		Size:         n,
		Trials:       len(xs),
		Mean:         mean,
		StdDev:       stddev,
		ConfidenceLo: mean - half,
		ConfidenceHi: mean + half,
	}
}
