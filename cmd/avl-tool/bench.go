package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"os/signal"
	"syscall"
	"time"

	"github.com/bluesky-social/avltree/avl"
	"github.com/bluesky-social/avltree/pkg/metrics"

	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
)

var cmdBench = &cli.Command{
	Name:  "bench",
	Usage: "repeatedly merge random trees, exposing prometheus metrics while running",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:  "size",
			Usage: "maximum number of keys per input tree",
			Value: 10_000,
		},
		&cli.IntFlag{
			Name:  "iterations",
			Usage: "number of merges to run (0 runs until interrupted)",
			Value: 1000,
		},
		&cli.Int64Flag{
			Name:  "seed",
			Usage: "random seed (0 picks one from the clock)",
		},
		&cli.StringFlag{
			Name:    "metrics-listen",
			Usage:   "address for prometheus metrics HTTP server (empty to disable)",
			Value:   "localhost:2472",
			EnvVars: []string{"AVL_METRICS_LISTEN"},
		},
	},
	Action: runBench,
}

func runBench(cctx *cli.Context) error {
	ctx, stop := signal.NotifyContext(cctx.Context, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	size := cctx.Int("size")
	if size <= 0 {
		return fmt.Errorf("size must be positive: %d", size)
	}
	seed := cctx.Int64("seed")
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g, ctx := errgroup.WithContext(ctx)
	workCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	g.Go(func() error {
		return metrics.RunServer(workCtx, cctx.String("metrics-listen"))
	})
	g.Go(func() error {
		// shut the metrics server down once the workload is done
		defer cancel()
		return benchMerges(workCtx, rand.New(rand.NewSource(seed)), size, cctx.Int("iterations"))
	})

	return g.Wait()
}

func benchMerges(ctx context.Context, rng *rand.Rand, size, iterations int) error {
	slog.Info("starting merge benchmark", "size", size, "iterations", iterations)
	counts := make(map[avl.Strategy]int)
	start := time.Now()

	for i := 0; iterations == 0 || i < iterations; i++ {
		select {
		case <-ctx.Done():
			slog.Info("merge benchmark interrupted", "merges", i)
			return nil
		default:
		}

		a := randomTree(rng, 0, 1+rng.Intn(size))
		// every other merge shifts the second tree past the first one's range
		offset := 0
		if i%2 == 1 {
			offset = 4 * size
		}
		b := randomTree(rng, offset, 1+rng.Intn(size))

		merged, res := avl.MergeWithResult(a, b)
		if err := merged.Verify(); err != nil {
			return fmt.Errorf("merge %d: %w", i, err)
		}
		counts[res.Strategy]++
		slog.Debug("merge", "iteration", i, "strategy", res.Strategy, "sizeA", res.SizeA, "sizeB", res.SizeB, "dropped", res.Dropped)
	}

	slog.Info("merge benchmark finished",
		"duration", time.Since(start),
		"disjoint", counts[avl.StrategyDisjoint],
		"reinsert", counts[avl.StrategyReinsert],
		"empty", counts[avl.StrategyEmpty],
	)
	return nil
}

// random keys in [offset, offset+2*count), so about half of the candidate keys are used
func randomTree(rng *rand.Rand, offset, count int) *avl.Tree[int] {
	tree := avl.NewEmptyTree[int]()
	for range count {
		tree.Insert(offset + rng.Intn(2*count))
	}
	return tree
}
