package twothree

import (
	"strings"

	"github.com/fatih/color"
)

/*
Visualizer draws a vertical text rendering of a tree, root at the top:

	[20]
	├── [10]
	└── [25 30]

It only reads the tree through Snapshot.
*/
type Visualizer struct {
	Tree     *Tree
	internal *color.Color
	leaf     *color.Color
}

func NewVisualizer(t *Tree, colored bool) *Visualizer {
	v := &Visualizer{
		Tree:     t,
		internal: color.New(color.FgCyan, color.Bold),
		leaf:     color.New(color.FgGreen),
	}
	if colored {
		v.internal.EnableColor()
		v.leaf.EnableColor()
	} else {
		v.internal.DisableColor()
		v.leaf.DisableColor()
	}
	return v
}

func (v *Visualizer) Visualize() string {
	return v.Render(v.Tree.Snapshot())
}

// Render draws any snapshot, not only the one of v.Tree.
func (v *Visualizer) Render(root *NodeView) string {
	if root.Leaf && len(root.Keys) == 0 {
		return "Tree is empty"
	}
	var sb strings.Builder
	v.render(&sb, root, "", "")
	return strings.TrimSuffix(sb.String(), "\n")
}

func (v *Visualizer) render(sb *strings.Builder, n *NodeView, connector, prefix string) {
	sb.WriteString(connector)
	if n.Leaf {
		sb.WriteString(v.leaf.Sprint(n.Label()))
	} else {
		sb.WriteString(v.internal.Sprint(n.Label()))
	}
	sb.WriteByte('\n')

	for i, c := range n.Children {
		if i == len(n.Children)-1 {
			v.render(sb, c, prefix+"└── ", prefix+"    ")
		} else {
			v.render(sb, c, prefix+"├── ", prefix+"│   ")
		}
	}
}
