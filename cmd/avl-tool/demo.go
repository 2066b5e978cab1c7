package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/bluesky-social/avltree/avl"

	"github.com/urfave/cli/v2"
)

var cmdDemo = &cli.Command{
	Name:   "demo",
	Usage:  "insert, build, and merge small example trees, printing sorted output and comparison counts",
	Action: runDemo,
}

func runDemo(cctx *cli.Context) error {
	return demo(cctx.App.Writer)
}

func demo(w io.Writer) error {
	ctr := avl.NewCounter()

	// tree 1: one key at a time
	tree1 := avl.NewTree(1).WithCounter(ctr)
	for k := 3; k <= 19; k += 2 {
		tree1.Insert(k)
	}
	fmt.Fprintln(w, "Testing insert function - Tree 1")
	fmt.Fprintf(w, "Sorted tree: %s\n", formatKeys(tree1.Flatten()))
	fmt.Fprintf(w, "Number of comparisons needed to build and sort: %d\n\n", ctr.Count())

	// tree 2: bulk build
	ctr.Reset()
	keys := make([]int, 0, 10)
	for k := 2; k <= 20; k += 2 {
		keys = append(keys, k)
	}
	tree2, err := avl.NewTreeFromSortedWithCounter(keys, ctr)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "Testing array-to-tree function - Tree 2")
	fmt.Fprintf(w, "Sorted tree: %s\n", formatKeys(tree2.Flatten()))
	fmt.Fprintf(w, "Number of comparisons needed to build and sort: %d\n\n", ctr.Count())

	ctr.Reset()
	merged, res := avl.MergeWithResult(tree1, tree2)
	fmt.Fprintln(w, "Testing merge function - Tree 1 + Tree 2")
	fmt.Fprintf(w, "Sorted tree: %s\n", formatKeys(merged.Flatten()))
	fmt.Fprintf(w, "Number of comparisons needed to merge and sort: %d\n", ctr.Count())
	slog.Debug("demo merge", "strategy", res.Strategy, "size", res.Size, "dropped", res.Dropped)

	return merged.Verify()
}
