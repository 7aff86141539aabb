package twothree

import (
	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
)

// ErrDuplicateKey is returned by Insert when the key is already stored.
var ErrDuplicateKey = errors.New("duplicate key")

/*
The algo starts traversing the tree from its root, recursively calling insert() until it reaches
the leaf the key belongs in. The leaf takes the key even if it is already full, and every frame
splits the child it descended into on the way back up if that child now holds 3 keys.
A 2-key node can't be split preemptively: halves of [a b] would leave one side empty.
The recursion frame already holds the parent, so no parent pointers are needed.
*/
func (n *node) insert(key int) error {
	pos, found := n.search(key)

	if found {
		return errors.Wrapf(ErrDuplicateKey, "insert %d", key)
	}

	if n.isLeaf() {
		n.insertKeyAt(pos, key)
		return nil
	}

	if err := n.children[pos].insert(key); err != nil {
		return err
	}

	// The child overflowed, promote its median into this node.
	if n.children[pos].numKeys > maxKeys {
		n.splitChild(pos)
	}
	return nil
}

// splitChild splits the overflowing child at pos and links the median and the new node into n.
func (n *node) splitChild(pos int) {
	midKey, newNode := n.children[pos].split()
	n.insertKeyAt(pos, midKey)
	n.insertChildAt(pos+1, newNode)

	Log.WithFields(logrus.Fields{
		"op": "split", "index": pos, "median": midKey,
	}).Debug("split child")
}

/*
Create a new root node.
The existing root then becomes the new root's left child.
The new node created after splitting the existing root becomes new root's right child.
*/
func (t *Tree) splitRoot() {
	newRoot := &node{}
	newRoot.insertChildAt(0, t.root)
	newRoot.splitChild(0)
	t.root = newRoot

	Log.WithFields(logrus.Fields{
		"op": "splitRoot", "root": newRoot.keys[0],
	}).Debug("tree grew a level")
}

// Insert adds key to the tree. Inserting a key that is already present
// returns an error wrapping ErrDuplicateKey and leaves the tree unchanged.
func (t *Tree) Insert(key int) error {
	if err := t.root.insert(key); err != nil {
		return err
	}

	// The root overflowed, so grow the tree by one level.
	if t.root.numKeys > maxKeys {
		t.splitRoot()
	}

	t.size++
	t.checkInvariants()
	return nil
}
