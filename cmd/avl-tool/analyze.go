package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/bluesky-social/avltree/avl"

	"github.com/urfave/cli/v2"
)

var cmdAnalyze = &cli.Command{
	Name:  "analyze",
	Usage: "count comparisons for build, flatten, and three merge shapes over a data set of the given size",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:    "size",
			Aliases: []string{"k"},
			Usage:   "data set size (must be a positive multiple of 10)",
			Value:   1000,
		},
		&cli.BoolFlag{
			Name:  "json",
			Usage: "output report as JSON",
		},
	},
	Action: runAnalyze,
}

type mergeReport struct {
	Shape       string `json:"shape"`
	Strategy    string `json:"strategy"`
	SizeA       int    `json:"sizeA"`
	SizeB       int    `json:"sizeB"`
	Size        int    `json:"size"`
	Comparisons int64  `json:"comparisons"`
}

type analysisReport struct {
	Size               int           `json:"size"`
	BuildComparisons   int64         `json:"buildComparisons"`
	FlattenComparisons int64         `json:"flattenComparisons"`
	Merges             []mergeReport `json:"merges"`
}

func runAnalyze(cctx *cli.Context) error {
	start := time.Now()
	report, err := analyze(cctx.Int("size"))
	if err != nil {
		return err
	}
	slog.Debug("analysis complete", "size", report.Size, "duration", time.Since(start))

	if cctx.Bool("json") {
		enc := json.NewEncoder(cctx.App.Writer)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}
	printReport(cctx.App.Writer, report)
	return nil
}

// Measures comparisons for each operation over k keys. Merge shapes:
//
//   - disjoint: {0 .. k/2-1} and {k/2 .. k-1}
//   - uneven: {0 .. 0.2k-1, k} and {0.2k .. k-2}; the outlier key forces overlapping ranges
//   - interleaved: odd keys and even keys, k/2 of each
func analyze(k int) (*analysisReport, error) {
	if k <= 0 || k%10 != 0 {
		return nil, fmt.Errorf("data set size must be a positive multiple of 10: %d", k)
	}
	report := analysisReport{Size: k}
	ctr := avl.NewCounter()

	keys := make([]int, k)
	for i := range keys {
		keys[i] = i
	}
	tree, err := avl.NewTreeFromSortedWithCounter(keys, ctr)
	if err != nil {
		return nil, err
	}
	report.BuildComparisons = ctr.Count()

	ctr.Reset()
	tree.Flatten()
	report.FlattenComparisons = ctr.Count()

	for _, s := range mergeShapes(k) {
		a, err := avl.NewTreeFromSorted(s.left)
		if err != nil {
			return nil, fmt.Errorf("%s shape: %w", s.name, err)
		}
		b, err := avl.NewTreeFromSorted(s.right)
		if err != nil {
			return nil, fmt.Errorf("%s shape: %w", s.name, err)
		}
		ctr.Reset()
		merged, res := avl.MergeWithResult(a.WithCounter(ctr), b)
		if err := merged.Verify(); err != nil {
			return nil, fmt.Errorf("%s shape: %w", s.name, err)
		}
		report.Merges = append(report.Merges, mergeReport{
			Shape:       s.name,
			Strategy:    res.Strategy.String(),
			SizeA:       res.SizeA,
			SizeB:       res.SizeB,
			Size:        res.Size,
			Comparisons: ctr.Count(),
		})
	}
	return &report, nil
}

type mergeShape struct {
	name  string
	left  []int
	right []int
}

func mergeShapes(k int) []mergeShape {
	half := k / 2
	fifth := k * 2 / 10

	disjoint := mergeShape{name: "disjoint", left: make([]int, half), right: make([]int, half)}
	for i := range half {
		disjoint.left[i] = i
		disjoint.right[i] = i + half
	}

	uneven := mergeShape{name: "uneven", left: make([]int, 0, fifth+1), right: make([]int, k*8/10-1)}
	for i := range fifth {
		uneven.left = append(uneven.left, i)
	}
	uneven.left = append(uneven.left, k)
	for i := range uneven.right {
		uneven.right[i] = i + fifth
	}

	interleaved := mergeShape{name: "interleaved", left: make([]int, half), right: make([]int, half)}
	for i := range half {
		interleaved.left[i] = 2*i + 1
		interleaved.right[i] = 2 * i
	}

	return []mergeShape{disjoint, uneven, interleaved}
}

func printReport(w io.Writer, report *analysisReport) {
	fmt.Fprintf(w, "Number of comparisons needed to build tree from sorted array of size %d is %d\n\n", report.Size, report.BuildComparisons)
	fmt.Fprintf(w, "Number of comparisons needed to sort tree of size %d into an array is %d\n\n", report.Size, report.FlattenComparisons)
	for _, m := range report.Merges {
		fmt.Fprintf(w, "Number of comparisons needed to merge %s trees (%d + %d, %s) of combined size %d is %d\n\n", m.Shape, m.SizeA, m.SizeB, m.Strategy, report.Size, m.Comparisons)
	}
}
