package avl

import (
	"cmp"
)

// Returns all keys in the tree, in ascending order. The returned slice is newly allocated.
func (t *Tree[K]) Flatten() []K {
	return t.flatten(t.ctr)
}

func (t *Tree[K]) flatten(ctr *Counter) []K {
	// size is only a capacity hint; the output length is whatever is reachable from Root
	out := make([]K, 0, t.size)
	if t.Root == nil {
		return out
	}
	return flattenInto(t.Root, out, ctr)
}

// In-order traversal of the sub-tree at n, appending keys to out. Returns the extended slice.
//
// n must not be nil.
func flattenInto[K cmp.Ordered](n *Node[K], out []K, ctr *Counter) []K {
	ctr.add(1)
	if n.Left != nil {
		out = flattenInto(n.Left, out, ctr)
	}
	out = append(out, n.Key)
	ctr.add(1)
	if n.Right != nil {
		out = flattenInto(n.Right, out, ctr)
	}
	return out
}
