package main

import (
	"fmt"
	"io"
	"time"

	"github.com/katalvlaran/connectivity/internal/ingest"
	"github.com/katalvlaran/connectivity/unionfind"
	"github.com/pingcap/errors"
	"go.uber.org/zap"
)

// runUnion reads n followed by pairs. Every pair whose elements are not yet
// connected is merged and echoed; the final component count closes the
// output.
func runUnion(in io.Reader, out io.Writer, logger *zap.Logger) error {
	r := ingest.NewReader(in)
	n, err := r.Header()
	if err != nil {
		return errors.Trace(err)
	}
	uf, err := unionfind.New(n)
	if err != nil {
		return errors.Annotate(err, "read universe size")
	}
	logger.Debug("forest created", zap.Int("n", n))

	start := time.Now()
	pairs := 0
	for {
		p, q, err := r.Pair()
		if err == io.EOF {
			break
		}
		if err != nil {
			return errors.Trace(err)
		}
		pairs++
		merged, err := uf.Merge(p, q)
		if err != nil {
			return errors.Annotatef(err, "pair %d (%d %d)", pairs, p, q)
		}
		if !merged {
			continue
		}
		if _, err := fmt.Fprintln(out, p, q); err != nil {
			return errors.Trace(err)
		}
	}
	if _, err := fmt.Fprintln(out, uf.Count(), "components"); err != nil {
		return errors.Trace(err)
	}
	logger.Info("union-find finished",
		zap.Int("n", n),
		zap.Int("pairs", pairs),
		zap.Int("components", uf.Count()),
		zap.Duration("elapsed", time.Since(start)))

	return nil
}
