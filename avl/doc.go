/*
Implementation of a height-balanced (AVL) binary search tree over ordered keys, with linear-time bulk construction, linear-time flattening, and merging of two trees.

## Terminology

node: a single key, with optional left and right children and a cached height. a node with no children has height 1; an absent child has height 0

balance: height of the right child minus height of the left child. every node in a valid tree has a balance of -1, 0, or 1

tree: a root node plus a count of reachable nodes. keys are unique; inserting an existing key is a no-op

## Merging

Two trees are merged with one of two strategies, decided from the boundary keys of each tree:

- disjoint: one tree's entire key range sorts below the other's. both trees are flattened, concatenated in order, and re-built from scratch, in O(m+n)
- reinsert: the ranges overlap (or touch). the smaller tree is flattened and each key is inserted into the larger tree, in O(m log(m+n)). shared keys are dropped as duplicate inserts

Merge consumes both inputs. The returned tree may be one of the two arguments; the other argument is left empty.

## Hacking

Nothing in this package is safe for concurrent use. Callers must serialize access to a tree (and to any attached Counter).
*/
package avl
