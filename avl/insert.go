package avl

import (
	"cmp"
)

// Inserts a key into the sub-tree rooted at n, and returns the new root of the sub-tree (which may differ from n after a rotation), and whether a node was added.
//
// Duplicate keys are a no-op. At most one single or double rotation happens per insert: once the lowest unbalanced ancestor is fixed, its height is back to what it was before the insert.
//
// n: Node at top of sub-tree to operate on. may be nil
// key: key being inserted
// ctr: optional comparison counter
func nodeInsert[K cmp.Ordered](n *Node[K], key K, ctr *Counter) (*Node[K], bool) {
	ctr.add(1)
	if n == nil {
		return newNode(key), true
	}

	var added bool
	switch c := cmp.Compare(key, n.Key); {
	case c < 0:
		n.Left, added = nodeInsert(n.Left, key, ctr)
	case c > 0:
		n.Right, added = nodeInsert(n.Right, key, ctr)
	default:
		// already in tree
		return n, false
	}

	n.updateHeight()
	bal := balanceFactor(n)
	ctr.add(1)

	// the new key is in the heavy child; which side of that child it went to decides single vs. double rotation
	switch {
	case bal < -1 && cmp.Less(key, n.Left.Key):
		return rotateRight(n), added
	case bal < -1 && cmp.Less(n.Left.Key, key):
		n.Left = rotateLeft(n.Left)
		return rotateRight(n), added
	case bal > 1 && cmp.Less(n.Right.Key, key):
		return rotateLeft(n), added
	case bal > 1 && cmp.Less(key, n.Right.Key):
		n.Right = rotateRight(n.Right)
		return rotateLeft(n), added
	}
	return n, added
}
