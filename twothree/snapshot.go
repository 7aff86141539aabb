package twothree

import (
	"strconv"
	"strings"
)

// NodeView is a detached copy of one node and its subtree. Changing a
// NodeView never affects the tree it was taken from.
type NodeView struct {
	Keys     []int
	Leaf     bool
	Children []*NodeView
}

// Snapshot returns a deep copy of the tree structure for renderers.
func (t *Tree) Snapshot() *NodeView {
	return t.root.view()
}

func (n *node) view() *NodeView {
	v := &NodeView{
		Keys: append([]int(nil), n.keys[:n.numKeys]...),
		Leaf: n.isLeaf(),
	}
	for i := 0; i < n.numChildren; i++ {
		v.Children = append(v.Children, n.children[i].view())
	}
	return v
}

// Label formats the node's keys as a box, e.g. "[10 20]".
func (v *NodeView) Label() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, k := range v.Keys {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(k))
	}
	sb.WriteByte(']')
	return sb.String()
}

// String renders the subtree on one line: "[20]([10] [25 30])".
func (v *NodeView) String() string {
	var sb strings.Builder
	v.writeTo(&sb)
	return sb.String()
}

func (v *NodeView) writeTo(sb *strings.Builder) {
	sb.WriteString(v.Label())
	if v.Leaf {
		return
	}
	sb.WriteByte('(')
	for i, c := range v.Children {
		if i > 0 {
			sb.WriteByte(' ')
		}
		c.writeTo(sb)
	}
	sb.WriteByte(')')
}
