package twothree

import "github.com/cockroachdb/errors"

// bounds is the open interval of keys a subtree may hold. A nil end is unbounded.
type bounds struct {
	lo, hi *int
}

func (b bounds) contains(key int) bool {
	return (b.lo == nil || key > *b.lo) && (b.hi == nil || key < *b.hi)
}

type verifier struct {
	leafDepth int // -1 until the first leaf is reached
	count     int
}

/*
Verify walks the whole tree and checks its structural invariants:
every leaf at the same depth, k keys and k+1 children per internal node,
1 or 2 keys per node (the root may be an empty leaf), and every key strictly
inside the interval its separators allow. It returns an assertion failure
describing the first violation found.
*/
func (t *Tree) Verify() error {
	v := &verifier{leafDepth: -1}
	if t.root.numKeys == 0 {
		if !t.root.isLeaf() {
			return errors.AssertionFailedf("internal root has no keys")
		}
	}
	if err := v.walk(t.root, 0, bounds{}, true); err != nil {
		return err
	}
	if v.count != t.size {
		return errors.AssertionFailedf("tree reports %d keys, found %d", t.size, v.count)
	}
	return nil
}

func (v *verifier) walk(n *node, depth int, b bounds, isRoot bool) error {
	if n.numKeys > maxKeys || (n.numKeys < minKeys && !isRoot) {
		return errors.AssertionFailedf("node at depth %d holds %d keys", depth, n.numKeys)
	}
	for i := 0; i < n.numKeys; i++ {
		if i > 0 && n.keys[i-1] >= n.keys[i] {
			return errors.AssertionFailedf("keys %d and %d out of order at depth %d",
				n.keys[i-1], n.keys[i], depth)
		}
		if !b.contains(n.keys[i]) {
			return errors.AssertionFailedf("key %d at depth %d escapes its separators", n.keys[i], depth)
		}
	}
	for i := n.numChildren; i < len(n.children); i++ {
		if n.children[i] != nil {
			return errors.AssertionFailedf("stale child pointer at depth %d", depth)
		}
	}
	v.count += n.numKeys

	if n.isLeaf() {
		if v.leafDepth == -1 {
			v.leafDepth = depth
		} else if v.leafDepth != depth {
			return errors.AssertionFailedf("leaf at depth %d, expected %d", depth, v.leafDepth)
		}
		return nil
	}

	if n.numChildren != n.numKeys+1 {
		return errors.AssertionFailedf("node at depth %d has %d keys and %d children",
			depth, n.numKeys, n.numChildren)
	}
	for i := 0; i < n.numChildren; i++ {
		cb := b
		if i > 0 {
			cb.lo = &n.keys[i-1]
		}
		if i < n.numKeys {
			cb.hi = &n.keys[i]
		}
		if err := v.walk(n.children[i], depth+1, cb, false); err != nil {
			return err
		}
	}
	return nil
}
