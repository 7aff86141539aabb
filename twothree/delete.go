package twothree

import "github.com/sirupsen/logrus"

/*
delete removes key from the subtree rooted at n. The key must be present in it.
A key found in an internal node is overwritten by its in-order predecessor, which is then
removed from the left subtree instead, so keys only ever leave the tree from a leaf.
Every frame repairs the child it descended into if that child was left with no keys.
*/
func (n *node) delete(key int) {
	pos, found := n.search(key)

	if n.isLeaf() {
		if found {
			n.removeKeyAt(pos)
		}
		return
	}

	if found {
		pred := n.children[pos].max()
		n.keys[pos] = pred
		key = pred
	}

	n.children[pos].delete(key)

	if n.children[pos].numKeys < minKeys {
		n.fixUnderflow(pos)
	}
}

/*
fixUnderflow repairs the empty child at pos.
It borrows a key through the parent separator from a sibling holding 2 keys (left one first).
When both siblings are at minimum it merges the child with a sibling instead, pulling the
separator down; n loses a key and may underflow itself, which its own caller repairs.
*/
func (n *node) fixUnderflow(pos int) {
	child := n.children[pos]
	log := Log.WithFields(logrus.Fields{"index": pos, "parentKeys": n.numKeys})

	switch {
	case pos > 0 && n.children[pos-1].numKeys > minKeys:
		left := n.children[pos-1]
		child.insertKeyAt(0, n.keys[pos-1])
		n.keys[pos-1] = left.removeKeyAt(left.numKeys - 1)
		if !left.isLeaf() {
			child.insertChildAt(0, left.removeChildAt(left.numChildren-1))
		}
		log.WithField("op", "rotateRight").Debug("borrowed from left sibling")

	case pos < n.numChildren-1 && n.children[pos+1].numKeys > minKeys:
		right := n.children[pos+1]
		child.insertKeyAt(child.numKeys, n.keys[pos])
		n.keys[pos] = right.removeKeyAt(0)
		if !right.isLeaf() {
			child.insertChildAt(child.numChildren, right.removeChildAt(0))
		}
		log.WithField("op", "rotateLeft").Debug("borrowed from right sibling")

	case pos > 0:
		// The left sibling absorbs the separator and the child.
		left := n.children[pos-1]
		left.insertKeyAt(left.numKeys, n.removeKeyAt(pos-1))
		left.absorb(child)
		n.removeChildAt(pos)
		log.WithField("op", "mergeLeft").Debug("merged into left sibling")

	default:
		// The child absorbs the separator and its right sibling.
		right := n.children[pos+1]
		child.insertKeyAt(child.numKeys, n.removeKeyAt(pos))
		child.absorb(right)
		n.removeChildAt(pos + 1)
		log.WithField("op", "mergeRight").Debug("merged right sibling")
	}
}

// Delete removes key from the tree and reports whether it was present.
// Deleting an absent key is a no-op.
func (t *Tree) Delete(key int) bool {
	if !t.Search(key) {
		return false
	}

	t.root.delete(key)

	// A merge emptied the root, so its only child becomes the new root.
	if t.root.numKeys == 0 && !t.root.isLeaf() {
		t.root = t.root.children[0]
		Log.WithField("op", "collapseRoot").Debug("tree shrank a level")
	}

	t.size--
	t.checkInvariants()
	return true
}
