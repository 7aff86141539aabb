package twothree

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVisualizeEmpty(t *testing.T) {
	v := NewVisualizer(New(), false)
	require.Equal(t, "Tree is empty", v.Visualize())
}

func TestVisualizeTwoLevels(t *testing.T) {
	tree := New()
	insertAll(t, tree, 10, 20, 30, 25)

	v := NewVisualizer(tree, false)

	require.Equal(t, strings.Join([]string{
		"[20]",
		"├── [10]",
		"└── [25 30]",
	}, "\n"), v.Visualize())
}

func TestVisualizeThreeLevels(t *testing.T) {
	tree := New()
	insertAll(t, tree, 1, 2, 3, 4, 5, 6, 7)

	v := NewVisualizer(tree, false)

	require.Equal(t, strings.Join([]string{
		"[4]",
		"├── [2]",
		"│   ├── [1]",
		"│   └── [3]",
		"└── [6]",
		"    ├── [5]",
		"    └── [7]",
	}, "\n"), v.Visualize())
}

func TestVisualizeTracksTree(t *testing.T) {
	tree := New()
	v := NewVisualizer(tree, false)

	insertAll(t, tree, 5)
	require.Equal(t, "[5]", v.Visualize())

	require.True(t, tree.Delete(5))
	require.Equal(t, "Tree is empty", v.Visualize())
}

func TestVisualizeColored(t *testing.T) {
	tree := New()
	insertAll(t, tree, 10, 20, 30)

	out := NewVisualizer(tree, true).Visualize()

	require.Contains(t, out, "\x1b[")
	require.Contains(t, out, "[20]")
	require.Contains(t, out, "[30]")
}
