package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/katalvlaran/connectivity/internal/ingest"
	"github.com/katalvlaran/connectivity/percolation"
	"github.com/pingcap/errors"
	"go.uber.org/zap"
)

func connectivity(diagonal bool) percolation.Connectivity {
	if diagonal {
		return percolation.Conn8
	}

	return percolation.Conn4
}

// runPercolate reads the grid side followed by 1-based row col sites, opens
// each one and reports whether it is full and whether the grid percolates.
func runPercolate(in io.Reader, out io.Writer, logger *zap.Logger, conn percolation.Connectivity) error {
	r := ingest.NewReader(in)
	n, err := r.Header()
	if err != nil {
		return errors.Trace(err)
	}
	g, err := percolation.New(n, percolation.WithConnectivity(conn))
	if err != nil {
		return errors.Annotate(err, "read grid size")
	}
	if _, err := fmt.Fprintf(out, "%d x %d grid created\n", n, n); err != nil {
		return errors.Trace(err)
	}

	for {
		row, col, err := r.Pair()
		if err == io.EOF {
			break
		}
		if err != nil {
			return errors.Trace(err)
		}
		if err := g.Open(row, col); err != nil {
			return errors.Annotatef(err, "open site %d", g.OpenSites()+1)
		}
		full, err := g.IsFull(row, col)
		if err != nil {
			return errors.Trace(err)
		}
		if _, err := fmt.Fprintf(out, "is %d %d  full: %t\n", row, col, full); err != nil {
			return errors.Trace(err)
		}
		if _, err := fmt.Fprintf(out, "is %d %d percolated: %t\n", row, col, g.Percolates()); err != nil {
			return errors.Trace(err)
		}
	}
	logger.Info("percolation finished",
		zap.Int("n", n),
		zap.Int("open", g.OpenSites()),
		zap.Bool("percolates", g.Percolates()))

	return nil
}

type thresholdConfig struct {
	size    int
	trials  int
	seed    int64
	workers int
	conn    percolation.Connectivity
}

// runThreshold prints the Monte Carlo estimate of the percolation threshold.
func runThreshold(ctx context.Context, out io.Writer, logger *zap.Logger, cfg thresholdConfig) error {
	logger.Debug("estimating threshold",
		zap.Int("size", cfg.size),
		zap.Int("trials", cfg.trials),
		zap.Int64("seed", cfg.seed),
		zap.Int("workers", cfg.workers))

	start := time.Now()
	st, err := percolation.Estimate(ctx, cfg.size, cfg.trials,
		percolation.WithConnectivity(cfg.conn),
		percolation.WithSeed(cfg.seed),
		percolation.WithWorkers(cfg.workers))
	if err != nil {
		return errors.Trace(err)
	}
	_, err = fmt.Fprintf(out,
		"mean                    = %.6f\nstddev                  = %.6f\n95%% confidence interval = [%.6f, %.6f]\n",
		st.Mean, st.StdDev, st.ConfidenceLo, st.ConfidenceHi)
	if err != nil {
		return errors.Trace(err)
	}
	logger.Info("threshold estimated", zap.Duration("elapsed", time.Since(start)))

	return nil
}
