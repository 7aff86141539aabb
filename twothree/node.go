package twothree

const (
	order       = 3               // max child pointers an internal node can have
	maxChildren = order           // 3
	maxKeys     = maxChildren - 1 // 2
	minKeys     = 1
)

type node struct {
	// fixed-size arrays with one spare slot each: a node may hold maxKeys+1 keys
	// (and maxChildren+1 children) between receiving a key and being split.
	keys        [maxKeys + 1]int
	children    [maxChildren + 1]*node
	numKeys     int
	numChildren int
}

func (n *node) isLeaf() bool {
	return n.numChildren == 0
}

/*
If key is found in node n, return its index i.
Else, return the index j of the child pointer the key would be found under.
Nodes hold at most 3 keys, so a left-to-right scan beats a binary search here.
*/
func (n *node) search(key int) (int, bool) {
	i := 0
	for i < n.numKeys && key > n.keys[i] {
		i++
	}
	if i < n.numKeys && n.keys[i] == key {
		return i, true
	}
	return i, false
}

// helper method to insert a key at an arbitrary position of a node
func (n *node) insertKeyAt(pos int, key int) {
	if pos < n.numKeys {
		copy(n.keys[pos+1:n.numKeys+1], n.keys[pos:n.numKeys])
	}
	n.keys[pos] = key
	n.numKeys++
}

// helper method to insert child pointer at an arbitrary position of a node
func (n *node) insertChildAt(pos int, child *node) {
	if pos < n.numChildren {
		copy(n.children[pos+1:n.numChildren+1], n.children[pos:n.numChildren])
	}
	n.children[pos] = child
	n.numChildren++
}

func (n *node) removeKeyAt(pos int) int {
	key := n.keys[pos]
	copy(n.keys[pos:], n.keys[pos+1:n.numKeys])
	n.numKeys--
	n.keys[n.numKeys] = 0
	return key
}

func (n *node) removeChildAt(pos int) *node {
	child := n.children[pos]
	copy(n.children[pos:], n.children[pos+1:n.numChildren])
	n.numChildren--
	n.children[n.numChildren] = nil
	return child
}

// absorb appends all keys and children of other onto n.
func (n *node) absorb(other *node) {
	for i := 0; i < other.numKeys; i++ {
		n.insertKeyAt(n.numKeys, other.keys[i])
	}
	for i := 0; i < other.numChildren; i++ {
		n.insertChildAt(n.numChildren, other.children[i])
	}
}

/*
split is called on an overflowing node holding [a b c] (and, if internal, 4 children).
It returns the median b and a newly created node holding c and the two rightmost children,
so the caller can link them to the parent. n keeps a and the two leftmost children.
*/
func (n *node) split() (int, *node) {
	mid := minKeys
	midKey := n.keys[mid]

	newNode := &node{}
	newNode.insertKeyAt(0, n.keys[mid+1])

	if !n.isLeaf() {
		newNode.insertChildAt(0, n.children[mid+1])
		newNode.insertChildAt(1, n.children[mid+2])
		n.children[mid+1], n.children[mid+2] = nil, nil
		n.numChildren = mid + 1
	}

	n.keys[mid], n.keys[mid+1] = 0, 0
	n.numKeys = mid

	return midKey, newNode
}

// max returns the rightmost key of the rightmost leaf in the subtree rooted at n.
func (n *node) max() int {
	for !n.isLeaf() {
		n = n.children[n.numChildren-1]
	}
	return n.keys[n.numKeys-1]
}
