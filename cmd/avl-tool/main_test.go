package main

import (
	"bytes"
	"context"
	"math/rand"
	"testing"

	"github.com/bluesky-social/avltree/avl"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKeys(t *testing.T) {
	assert := assert.New(t)

	testVec := []struct {
		Args []string
		Keys []int
	}{
		{[]string{"1,2,3"}, []int{1, 2, 3}},
		{[]string{"1", "2", "3"}, []int{1, 2, 3}},
		{[]string{"5, 4", "-3"}, []int{5, 4, -3}},
		{[]string{",,7,"}, []int{7}},
		{[]string{}, nil},
	}
	for _, c := range testVec {
		keys, err := parseKeys(c.Args...)
		assert.NoError(err)
		assert.Equal(c.Keys, keys)
	}

	_, err := parseKeys("1,two,3")
	assert.Error(err)
}

func TestNormalizeKeys(t *testing.T) {
	assert := assert.New(t)

	assert.Equal([]int{1, 2, 3, 9}, normalizeKeys([]int{9, 2, 1, 3, 2, 9}))
	assert.Equal("1 2 3", formatKeys([]int{1, 2, 3}))
	assert.Equal("", formatKeys(nil))
}

func TestDemo(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	assert.NoError(demo(&buf))
	out := buf.String()
	assert.Contains(out, "Sorted tree: 1 3 5 7 9 11 13 15 17 19\n")
	assert.Contains(out, "Sorted tree: 2 4 6 8 10 12 14 16 18 20\n")
	assert.Contains(out, "Sorted tree: 1 2 3 4 5 6 7 8 9 10 11 12 13 14 15 16 17 18 19 20\n")
	// tree 2: bulk build (2 per key) plus flatten (2 per key) over 10 keys
	assert.Contains(out, "Testing array-to-tree function - Tree 2\nSorted tree: 2 4 6 8 10 12 14 16 18 20\nNumber of comparisons needed to build and sort: 40\n")
}

func TestAnalyze(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	report, err := analyze(100)
	require.NoError(err)
	assert.Equal(100, report.Size)
	assert.Equal(int64(200), report.BuildComparisons)
	assert.Equal(int64(200), report.FlattenComparisons)
	require.Len(report.Merges, 3)

	assert.Equal("disjoint", report.Merges[0].Shape)
	assert.Equal(avl.StrategyDisjoint.String(), report.Merges[0].Strategy)
	assert.Equal(100, report.Merges[0].Size)

	assert.Equal("uneven", report.Merges[1].Shape)
	assert.Equal(avl.StrategyReinsert.String(), report.Merges[1].Strategy)
	assert.Equal(21, report.Merges[1].SizeA)
	assert.Equal(79, report.Merges[1].SizeB)
	assert.Equal(100, report.Merges[1].Size)

	assert.Equal("interleaved", report.Merges[2].Shape)
	assert.Equal(avl.StrategyReinsert.String(), report.Merges[2].Strategy)
	assert.Equal(100, report.Merges[2].Size)

	var buf bytes.Buffer
	printReport(&buf, report)
	assert.Contains(buf.String(), "array of size 100 is 200")

	_, err = analyze(15)
	assert.Error(err)
	_, err = analyze(0)
	assert.Error(err)
}

func TestBenchMerges(t *testing.T) {
	assert := assert.New(t)

	rng := rand.New(rand.NewSource(7))
	assert.NoError(benchMerges(context.Background(), rng, 200, 20))

	// a cancelled context stops the loop without error
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.NoError(benchMerges(ctx, rng, 200, 0))
}

func TestRunBuild(t *testing.T) {
	assert.NoError(t, run([]string{"avl-tool", "build", "5", "1,3", "2"}))
	assert.NoError(t, run([]string{"avl-tool", "build", "--insert", "5", "1", "3", "1"}))
	assert.Error(t, run([]string{"avl-tool", "build"}))
	assert.NoError(t, run([]string{"avl-tool", "merge", "--left", "1,2,3", "--right", "3,4"}))
}
