// Package twothree implements an in-memory 2-3 tree: a B-tree of order 3
// where every node holds 1 or 2 keys and all leaves share the same depth.
package twothree

import "github.com/sairarat/2-3-Binary-Tree/internal/invariants"

/*
Tree only keeps a pointer to the root node and the number of stored keys.
The root is never nil: an empty tree is a leaf root holding no keys.
A Tree is not safe for concurrent use; callers must serialize every operation.
*/
type Tree struct {
	root *node
	size int
}

func New() *Tree {
	return &Tree{root: &node{}}
}

// Search reports whether key is stored in the tree.
func (t *Tree) Search(key int) bool {
	for next := t.root; ; {
		pos, found := next.search(key)
		if found {
			return true
		}
		if next.isLeaf() {
			return false
		}
		next = next.children[pos]
	}
}

// Len returns the number of keys in the tree.
func (t *Tree) Len() int {
	return t.size
}

// Height returns the number of levels, counting the root. An empty tree has height 1.
func (t *Tree) Height() int {
	h := 1
	for n := t.root; !n.isLeaf(); n = n.children[0] {
		h++
	}
	return h
}

// Keys returns every key in ascending order.
func (t *Tree) Keys() []int {
	keys := make([]int, 0, t.size)
	var walk func(n *node)
	walk = func(n *node) {
		for i := 0; i < n.numKeys; i++ {
			if !n.isLeaf() {
				walk(n.children[i])
			}
			keys = append(keys, n.keys[i])
		}
		if !n.isLeaf() {
			walk(n.children[n.numChildren-1])
		}
	}
	walk(t.root)
	return keys
}

// Clear drops every key, leaving an empty tree.
func (t *Tree) Clear() {
	t.root = &node{}
	t.size = 0
}

func (t *Tree) String() string {
	return t.Snapshot().String()
}

// checkInvariants panics on a broken tree in builds tagged "invariants".
func (t *Tree) checkInvariants() {
	if !invariants.Enabled {
		return
	}
	if err := t.Verify(); err != nil {
		panic(err)
	}
}
