package avl

import (
	"cmp"
	"fmt"
)

// Builds a balanced tree from keys, which must be sorted in strictly ascending order. Returns ErrInvalidInput (before allocating anything) if they are not.
//
// Runs in O(n): no comparisons between keys are needed beyond the validation pass, and no rotations happen.
func NewTreeFromSorted[K cmp.Ordered](keys []K) (*Tree[K], error) {
	return NewTreeFromSortedWithCounter(keys, nil)
}

// Same as NewTreeFromSorted, but charges the build to ctr, and attaches ctr to the returned tree.
func NewTreeFromSortedWithCounter[K cmp.Ordered](keys []K, ctr *Counter) (*Tree[K], error) {
	if err := checkSorted(keys); err != nil {
		return nil, err
	}
	return buildTree(keys, ctr), nil
}

// Same as NewTreeFromSorted, but skips validation. The caller is responsible for passing strictly ascending keys; otherwise the resulting tree will not be a valid search tree.
func NewTreeFromSortedUnchecked[K cmp.Ordered](keys []K) *Tree[K] {
	return buildTree(keys, nil)
}

func buildTree[K cmp.Ordered](keys []K, ctr *Counter) *Tree[K] {
	buildKeys.Observe(float64(len(keys)))
	t := &Tree[K]{ctr: ctr}
	if len(keys) == 0 {
		return t
	}
	t.Root = buildRange(keys, 0, len(keys)-1, ctr)
	t.size = len(keys)
	return t
}

// Recursively builds the sub-tree over keys[lo..hi] (inclusive), using the lower median as root. Sibling sub-trees differ in size by at most one, so the result is balanced without any rotation.
//
// lo must be <= hi
func buildRange[K cmp.Ordered](keys []K, lo, hi int, ctr *Counter) *Node[K] {
	mid := lo + (hi-lo)/2
	n := newNode(keys[mid])

	ctr.add(1)
	if lo < mid {
		n.Left = buildRange(keys, lo, mid-1, ctr)
	}
	ctr.add(1)
	if mid < hi {
		n.Right = buildRange(keys, mid+1, hi, ctr)
	}

	n.updateHeight()
	return n
}

func checkSorted[K cmp.Ordered](keys []K) error {
	for i := 1; i < len(keys); i++ {
		switch c := cmp.Compare(keys[i-1], keys[i]); {
		case c == 0:
			return fmt.Errorf("%w: duplicate key %v at index %d", ErrInvalidInput, keys[i], i)
		case c > 0:
			return fmt.Errorf("%w: key %v at index %d sorts before previous key %v", ErrInvalidInput, keys[i], i, keys[i-1])
		}
	}
	return nil
}
