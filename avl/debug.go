package avl

import (
	"cmp"
	"fmt"
	"io"

	"github.com/xlab/treeprint"
)

// Writes an indented rendering of the tree shape to w, one node per line, with each node's height and balance.
func DebugPrintTree[K cmp.Ordered](w io.Writer, t *Tree[K]) error {
	var tree treeprint.Tree
	if t.Root == nil {
		tree = treeprint.NewWithRoot("(empty)")
	} else {
		tree = treeprint.NewWithRoot(nodeLabel("root", t.Root))
		addChildren(tree, t.Root)
	}
	_, err := io.WriteString(w, tree.String())
	return err
}

func addChildren[K cmp.Ordered](branch treeprint.Tree, n *Node[K]) {
	for _, c := range []struct {
		side  string
		child *Node[K]
	}{{"L", n.Left}, {"R", n.Right}} {
		if c.child == nil {
			continue
		}
		if c.child.IsLeaf() {
			branch.AddNode(nodeLabel(c.side, c.child))
			continue
		}
		addChildren(branch.AddBranch(nodeLabel(c.side, c.child)), c.child)
	}
}

func nodeLabel[K cmp.Ordered](side string, n *Node[K]) string {
	return fmt.Sprintf("%s: %v (h=%d b=%d)", side, n.Key, n.Height, n.Balance())
}
