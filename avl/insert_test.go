package avl

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func oddKeys(n int) []int {
	out := make([]int, n)
	for i := range n {
		out[i] = 2*i + 1
	}
	return out
}

func TestInsertOddKeys(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	tree := NewTree(1)
	require.NoError(tree.Verify())
	for k := 3; k <= 19; k += 2 {
		assert.True(tree.Insert(k))
		// every intermediate tree must be balanced, not just the final one
		require.NoError(tree.Verify())
	}
	assert.Equal(oddKeys(10), tree.Flatten())
	assert.Equal(10, tree.Size())
	assert.LessOrEqual(tree.Height(), 4)
}

func TestInsertRotationCases(t *testing.T) {
	assert := assert.New(t)

	testVec := []struct {
		Name string
		Keys []int
		Root int
	}{
		{"left-left", []int{3, 2, 1}, 2},
		{"right-right", []int{1, 2, 3}, 2},
		{"left-right", []int{3, 1, 2}, 2},
		{"right-left", []int{1, 3, 2}, 2},
		{"deep left-right", []int{50, 20, 80, 10, 30, 25}, 30},
		{"deep right-left", []int{50, 20, 80, 70, 90, 75}, 70},
	}

	for _, c := range testVec {
		tree := NewEmptyTree[int]()
		for _, k := range c.Keys {
			tree.Insert(k)
		}
		assert.Equal(c.Root, tree.Root.Key, c.Name)
		assert.NoError(tree.Verify(), c.Name)

		sorted := slices.Clone(c.Keys)
		slices.Sort(sorted)
		assert.Equal(sorted, tree.Flatten(), c.Name)
	}
}

func TestInsertDuplicate(t *testing.T) {
	assert := assert.New(t)

	tree, err := NewTreeFromSorted([]int{1, 3, 5, 7, 9})
	assert.NoError(err)
	before := tree.Flatten()
	root := tree.Root

	for _, k := range before {
		assert.False(tree.Insert(k))
	}
	assert.Equal(before, tree.Flatten())
	assert.Equal(5, tree.Size())
	assert.Same(root, tree.Root)
	assert.NoError(tree.Verify())
}

func TestInsertZeroValueTree(t *testing.T) {
	assert := assert.New(t)

	var tree Tree[string]
	assert.True(tree.Insert("b"))
	assert.True(tree.Insert("a"))
	assert.True(tree.Insert("c"))
	assert.False(tree.Insert("a"))
	assert.Equal([]string{"a", "b", "c"}, tree.Flatten())
	assert.NoError(tree.Verify())
}

func TestRandomInserts(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)
	rng := rand.New(rand.NewSource(1))

	for range 20 {
		tree := NewEmptyTree[int]()
		seen := make(map[int]bool)
		for range 500 {
			k := rng.Intn(1000)
			assert.Equal(!seen[k], tree.Insert(k))
			seen[k] = true
		}
		require.NoError(tree.Verify())

		want := make([]int, 0, len(seen))
		for k := range seen {
			want = append(want, k)
		}
		slices.Sort(want)
		assert.Equal(want, tree.Flatten())
		assert.Equal(len(want), tree.Size())

		// AVL height bound: h < 1.4405 log2(n+2)
		assert.Less(float64(tree.Height()), 1.4405*log2(float64(tree.Size()+2)))
	}
}
