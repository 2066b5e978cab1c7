package avl

import (
	"cmp"
)

// Represents a single node in an AVL tree. The root node of a sub-tree effectively is the sub-tree itself.
//
// Children are owned exclusively by their parent: there are no parent pointers, and a node is never shared between two trees.
type Node[K cmp.Ordered] struct {
	Key K
	// cached height of the sub-tree rooted at this node. leaf nodes have height 1
	Height int
	Left   *Node[K]
	Right  *Node[K]
}

func newNode[K cmp.Ordered](key K) *Node[K] {
	return &Node[K]{Key: key, Height: 1}
}

// Returns the cached height of a sub-tree, or 0 if the node is nil.
func Height[K cmp.Ordered](n *Node[K]) int {
	return height(n)
}

func height[K cmp.Ordered](n *Node[K]) int {
	if n == nil {
		return 0
	}
	return n.Height
}

func balanceFactor[K cmp.Ordered](n *Node[K]) int {
	if n == nil {
		return 0
	}
	return height(n.Right) - height(n.Left)
}

// Balance factor of the node: height of the right child minus height of the left child. Safe to call on a nil node.
func (n *Node[K]) Balance() int {
	return balanceFactor(n)
}

// IsLeaf returns true if the node has no children.
func (n *Node[K]) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

func (n *Node[K]) updateHeight() {
	n.Height = 1 + max(height(n.Left), height(n.Right))
}

// promotes the right child of n to be the root of this sub-tree. n.Right must not be nil
func rotateLeft[K cmp.Ordered](n *Node[K]) *Node[K] {
	parent := n.Right
	n.Right = parent.Left
	parent.Left = n

	// order matters: n is now below parent
	n.updateHeight()
	parent.updateHeight()
	return parent
}

// promotes the left child of n to be the root of this sub-tree. n.Left must not be nil
func rotateRight[K cmp.Ordered](n *Node[K]) *Node[K] {
	parent := n.Left
	n.Left = parent.Right
	parent.Right = n

	n.updateHeight()
	parent.updateHeight()
	return parent
}
