package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sairarat/2-3-Binary-Tree/twothree"
)

// run feeds script to a fresh CLI and returns the tree and everything it printed.
func run(t *testing.T, tree *twothree.Tree, script ...string) string {
	t.Helper()
	var out bytes.Buffer
	scanner := bufio.NewScanner(strings.NewReader(strings.Join(script, "\n") + "\n"))
	NewCli(scanner, &out, tree, false).Start()
	return out.String()
}

func TestCliInsertSearchDelete(t *testing.T) {
	tree := twothree.New()

	out := run(t, tree,
		"insert 10",
		"INSERT 20",
		"insert 30",
		"search 20",
		"search 99",
		"delete 20",
		"print",
	)

	assert.Contains(t, out, "Inserted 30\n[20]\n├── [10]\n└── [30]\n")
	assert.Contains(t, out, "Value 20 found: true")
	assert.Contains(t, out, "Value 99 found: false")
	assert.Contains(t, out, "Deleted 20\n[10 30]\n")
	assert.Equal(t, "[10 30]", tree.String())
}

func TestCliErrors(t *testing.T) {
	tree := twothree.New()

	out := run(t, tree,
		"insert 10",
		"insert 10",
		"insert abc",
		"insert",
		"delete 42",
		"frobnicate",
	)

	assert.Contains(t, out, "Value 10 is already in the tree.")
	assert.Contains(t, out, "Invalid value. Please enter a valid integer.")
	assert.Contains(t, out, "Usage: INSERT <value>")
	assert.Contains(t, out, "Key not found.")
	assert.Contains(t, out, `Unknown command "frobnicate"`)
	assert.Equal(t, 1, tree.Len())
}

func TestCliKeysStatsVerifyClear(t *testing.T) {
	tree := twothree.New()

	out := run(t, tree,
		"insert 3",
		"insert 1",
		"insert 2",
		"keys",
		"stats",
		"verify",
		"clear",
		"print",
	)

	assert.Contains(t, out, "[1 2 3]\n")
	assert.Contains(t, out, "keys: 3, height: 2")
	assert.Contains(t, out, "Tree is valid.")
	assert.Contains(t, out, "Tree cleared.\n> Tree is empty")
	assert.Equal(t, 0, tree.Len())
}

func TestCliExitStopsReading(t *testing.T) {
	tree := twothree.New()

	out := run(t, tree,
		"insert 1",
		"exit",
		"insert 2",
	)

	require.Contains(t, out, "Exiting program...")
	require.True(t, tree.Search(1))
	require.False(t, tree.Search(2))
}

func TestCliBlankLinesIgnored(t *testing.T) {
	tree := twothree.New()

	out := run(t, tree, "", "   ", "insert 7")

	require.NotContains(t, out, "Unknown command")
	require.True(t, tree.Search(7))
}
