// Command ufctl drives the connectivity packages from the command line.
//
//	ufctl union [FILE]        read n and pairs, print the pairs that join components
//	ufctl percolate [FILE]    read grid size and sites, open each and report
//	ufctl threshold -n N -t T estimate the percolation threshold
//
// FILE defaults to standard input. Results go to standard output, logs to
// standard error.
package main

import (
	"context"
	"io"
	"os"
	"os/signal"

	"github.com/alecthomas/kingpin"
	"github.com/pingcap/errors"
	"go.uber.org/zap"
)

var (
	app     = kingpin.New("ufctl", "dynamic connectivity and percolation driver")
	verbose = app.Flag("verbose", "log at debug level").Short('v').Bool()
)

var (
	unionCmd  = app.Command("union", "report the pairs that merge two components")
	unionPath = unionCmd.Arg("path", "input file: n followed by p q pairs").String()
)

var (
	percolateCmd  = app.Command("percolate", "open grid sites and report fullness and percolation")
	percolatePath = percolateCmd.Arg("path", "input file: n followed by row col sites").String()
	percolateConn = percolateCmd.Flag("diagonal", "link diagonal neighbors too").Bool()
)

var (
	thresholdCmd     = app.Command("threshold", "estimate the percolation threshold by Monte Carlo")
	thresholdSize    = thresholdCmd.Flag("size", "grid side").Short('n').Default("200").Int()
	thresholdTrials  = thresholdCmd.Flag("trials", "number of trials").Short('t').Default("100").Int()
	thresholdSeed    = thresholdCmd.Flag("seed", "random seed").Default("1").Int64()
	thresholdWorkers = thresholdCmd.Flag("workers", "parallel trials").Short('w').Default("4").Int()
	thresholdConn    = thresholdCmd.Flag("diagonal", "link diagonal neighbors too").Bool()
)

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	logger, err := newLogger(*verbose)
	if err != nil {
		app.Fatalf("init logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := dispatch(ctx, command, os.Stdout, logger); err != nil {
		logger.Error("command failed", zap.String("command", command), zap.Error(err))
		stop()
		os.Exit(1)
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	return cfg.Build()
}

func dispatch(ctx context.Context, command string, out io.Writer, logger *zap.Logger) error {
	switch command {
	case unionCmd.FullCommand():
		return withInput(*unionPath, func(in io.Reader) error {
			return runUnion(in, out, logger)
		})
	case percolateCmd.FullCommand():
		return withInput(*percolatePath, func(in io.Reader) error {
			return runPercolate(in, out, logger, connectivity(*percolateConn))
		})
	case thresholdCmd.FullCommand():
		return runThreshold(ctx, out, logger, thresholdConfig{
			size:    *thresholdSize,
			trials:  *thresholdTrials,
			seed:    *thresholdSeed,
			workers: *thresholdWorkers,
			conn:    connectivity(*thresholdConn),
		})
	}

	return errors.Errorf("unknown command %q", command)
}

// withInput opens path, or uses stdin when path is empty, and hands it to fn.
func withInput(path string, fn func(io.Reader) error) error {
	if path == "" {
		return fn(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return errors.Trace(err)
	}
	defer f.Close()

	return fn(f)
}
