package cli

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sairarat/2-3-Binary-Tree/twothree"
)

func TestSeed(t *testing.T) {
	tree := twothree.New()

	n, err := Seed(tree, 50, 1000)

	require.NoError(t, err)
	require.Equal(t, 50, n)
	require.Equal(t, 50, tree.Len())
	require.NoError(t, tree.Verify())
	for _, k := range tree.Keys() {
		require.True(t, k >= 1 && k <= 1000, "key %d out of range", k)
	}
}

func TestSeedSmallRange(t *testing.T) {
	tree := twothree.New()

	n, err := Seed(tree, 50, 10)

	require.NoError(t, err)
	require.Equal(t, 10, n)
	require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, tree.Keys())
}

func TestSeedSkipsExistingValues(t *testing.T) {
	tree := twothree.New()
	for k := 1; k <= 5; k++ {
		require.NoError(t, tree.Insert(k))
	}

	n, err := Seed(tree, 10, 10)

	require.NoError(t, err)
	require.Equal(t, 5, n)
	require.Equal(t, 10, tree.Len())
}

func TestSeedNothing(t *testing.T) {
	tree := twothree.New()

	n, err := Seed(tree, 0, 100)
	require.NoError(t, err)
	require.Zero(t, n)

	_, err = Seed(tree, 5, 0)
	require.Error(t, err)
}
