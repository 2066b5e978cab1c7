package avl

import (
	"cmp"
	"fmt"
)

// Checks the full tree structure: search order of keys, cached heights, balance of every node, and the node count. Returns an error wrapping ErrInvalidTree on the first problem found.
func (t *Tree[K]) Verify() error {
	count, err := verifyNode(t.Root, nil, nil)
	if err != nil {
		return err
	}
	if count != t.size {
		return fmt.Errorf("%w: tree size is %d, but %d nodes are reachable", ErrInvalidTree, t.size, count)
	}
	return nil
}

// lower and upper are exclusive bounds inherited from ancestors; nil means unbounded
func verifyNode[K cmp.Ordered](n *Node[K], lower, upper *K) (int, error) {
	if n == nil {
		return 0, nil
	}
	if lower != nil && cmp.Compare(n.Key, *lower) <= 0 {
		return 0, fmt.Errorf("%w: key %v out of order (must be greater than %v)", ErrInvalidTree, n.Key, *lower)
	}
	if upper != nil && cmp.Compare(n.Key, *upper) >= 0 {
		return 0, fmt.Errorf("%w: key %v out of order (must be less than %v)", ErrInvalidTree, n.Key, *upper)
	}

	leftCount, err := verifyNode(n.Left, lower, &n.Key)
	if err != nil {
		return 0, err
	}
	rightCount, err := verifyNode(n.Right, &n.Key, upper)
	if err != nil {
		return 0, err
	}

	if want := 1 + max(height(n.Left), height(n.Right)); n.Height != want {
		return 0, fmt.Errorf("%w: node %v has incorrect height %d (expected %d)", ErrInvalidTree, n.Key, n.Height, want)
	}
	if bal := balanceFactor(n); bal < -1 || bal > 1 {
		return 0, fmt.Errorf("%w: node %v is unbalanced (balance %d)", ErrInvalidTree, n.Key, bal)
	}
	return leftCount + rightCount + 1, nil
}
