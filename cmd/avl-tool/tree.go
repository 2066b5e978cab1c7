package main

import (
	"fmt"
	"log/slog"

	"github.com/bluesky-social/avltree/avl"

	"github.com/urfave/cli/v2"
)

var cmdBuild = &cli.Command{
	Name:      "build",
	Usage:     "build a tree from integer keys and print its shape",
	ArgsUsage: "<key>...",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "insert",
			Usage: "insert keys one at a time (in argument order) instead of bulk building",
		},
	},
	Action: runBuild,
}

var cmdMerge = &cli.Command{
	Name:  "merge",
	Usage: "merge two trees built from integer key lists and print the result",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "left",
			Usage:    "comma-separated keys for the first tree",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "right",
			Usage:    "comma-separated keys for the second tree",
			Required: true,
		},
	},
	Action: runMerge,
}

func runBuild(cctx *cli.Context) error {
	keys, err := parseKeys(cctx.Args().Slice()...)
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return fmt.Errorf("need to provide keys as arguments")
	}

	ctr := avl.NewCounter()
	var tree *avl.Tree[int]
	if cctx.Bool("insert") {
		tree = avl.NewEmptyTree[int]().WithCounter(ctr)
		for _, k := range keys {
			if !tree.Insert(k) {
				slog.Debug("skipping duplicate key", "key", k)
			}
		}
	} else {
		tree, err = avl.NewTreeFromSortedWithCounter(normalizeKeys(keys), ctr)
		if err != nil {
			return err
		}
	}
	if err := tree.Verify(); err != nil {
		return err
	}

	w := cctx.App.Writer
	if err := avl.DebugPrintTree(w, tree); err != nil {
		return err
	}
	fmt.Fprintf(w, "size: %d\theight: %d\tcomparisons: %d\n", tree.Size(), tree.Height(), ctr.Count())
	return nil
}

func runMerge(cctx *cli.Context) error {
	a, err := treeFromFlag(cctx, "left")
	if err != nil {
		return err
	}
	b, err := treeFromFlag(cctx, "right")
	if err != nil {
		return err
	}

	ctr := avl.NewCounter()
	merged, res := avl.MergeWithResult(a.WithCounter(ctr), b)
	if err := merged.Verify(); err != nil {
		return err
	}
	slog.Debug("merged trees", "strategy", res.Strategy, "sizeA", res.SizeA, "sizeB", res.SizeB, "size", res.Size)

	w := cctx.App.Writer
	fmt.Fprintf(w, "strategy: %s\n", res.Strategy)
	fmt.Fprintf(w, "keys: %s\n", formatKeys(merged.Flatten()))
	if res.Dropped > 0 {
		fmt.Fprintf(w, "duplicates dropped: %d\n", res.Dropped)
	}
	fmt.Fprintf(w, "comparisons: %d\n", ctr.Count())
	return avl.DebugPrintTree(w, merged)
}

func treeFromFlag(cctx *cli.Context, name string) (*avl.Tree[int], error) {
	keys, err := parseKeys(cctx.String(name))
	if err != nil {
		return nil, fmt.Errorf("--%s: %w", name, err)
	}
	tree, err := avl.NewTreeFromSorted(normalizeKeys(keys))
	if err != nil {
		return nil, fmt.Errorf("--%s: %w", name, err)
	}
	return tree, nil
}
