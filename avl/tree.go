package avl

import (
	"cmp"
	"errors"
)

// Tree is an AVL tree of unique keys. The zero value is an empty tree, ready to use.
//
// Root is exported for inspection (Verify, DebugPrintTree, walking nodes). Callers must not re-assign it or re-link nodes: the cached Size() would go stale, and Verify will report ErrInvalidTree.
type Tree[K cmp.Ordered] struct {
	Root *Node[K]

	size int
	ctr  *Counter
}

var ErrEmptyTree = errors.New("AVL tree is empty")

var ErrInvalidInput = errors.New("keys are not sorted and unique")

var ErrInvalidTree = errors.New("invalid AVL tree structure")

func NewEmptyTree[K cmp.Ordered]() *Tree[K] {
	return &Tree[K]{}
}

// Creates a tree with a single node.
func NewTree[K cmp.Ordered](key K) *Tree[K] {
	return &Tree[K]{
		Root: newNode(key),
		size: 1,
	}
}

// Attaches a comparison counter to the tree, which subsequent operations on the tree will charge. Pass nil to detach. Returns the tree, for chaining.
func (t *Tree[K]) WithCounter(ctr *Counter) *Tree[K] {
	t.ctr = ctr
	return t
}

func (t *Tree[K]) Counter() *Counter {
	return t.ctr
}

// Number of keys in the tree.
func (t *Tree[K]) Size() int {
	return t.size
}

// Height of the root node; zero for an empty tree.
func (t *Tree[K]) Height() int {
	return height(t.Root)
}

func (t *Tree[K]) IsEmpty() bool {
	return t.Root == nil
}

// Adds a key to the tree, rebalancing as needed. Returns false (and leaves the tree unchanged) if the key was already present.
func (t *Tree[K]) Insert(key K) bool {
	return t.insert(key, t.ctr)
}

func (t *Tree[K]) insert(key K, ctr *Counter) bool {
	var added bool
	t.Root, added = nodeInsert(t.Root, key, ctr)
	if added {
		t.size++
		insertAdded.Inc()
	} else {
		insertDuplicate.Inc()
	}
	return added
}

// Smallest key in the tree. Returns ErrEmptyTree if there are no keys.
func (t *Tree[K]) Min() (K, error) {
	if t.Root == nil {
		var zero K
		return zero, ErrEmptyTree
	}
	return t.minKey(t.ctr), nil
}

// Largest key in the tree. Returns ErrEmptyTree if there are no keys.
func (t *Tree[K]) Max() (K, error) {
	if t.Root == nil {
		var zero K
		return zero, ErrEmptyTree
	}
	return t.maxKey(t.ctr), nil
}

// walks the left spine. root must not be nil
func (t *Tree[K]) minKey(ctr *Counter) K {
	n := t.Root
	for n.Left != nil {
		ctr.add(1)
		n = n.Left
	}
	return n.Key
}

// walks the right spine. root must not be nil
func (t *Tree[K]) maxKey(ctr *Counter) K {
	n := t.Root
	for n.Right != nil {
		ctr.add(1)
		n = n.Right
	}
	return n.Key
}

// drops all nodes; used when a tree has been consumed by a merge
func (t *Tree[K]) clear() {
	t.Root = nil
	t.size = 0
}
