package sorting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlgorithms_Order(t *testing.T) {
	assert.Equal(t, []string{
		"selection", "recursive-selection", "insertion", "merge", "bubble", "quick",
	}, Names())

	for _, a := range Algorithms() {
		assert.NotEmpty(t, a.Label)
		assert.NotNil(t, a.Sort)
	}
}

func TestLookup(t *testing.T) {
	a, err := Lookup("  Quick ")
	require.NoError(t, err)
	assert.Equal(t, NameQuick, a.Name)
	assert.Equal(t, "Quicksort", a.Label)

	_, err = Lookup("bogo")
	require.ErrorIs(t, err, ErrUnknownAlgorithm)
	assert.Contains(t, err.Error(), "bogo")
	assert.Contains(t, err.Error(), "selection")
}

func TestSelect(t *testing.T) {
	t.Run("empty selects all", func(t *testing.T) {
		algs, err := Select(nil)
		require.NoError(t, err)
		assert.Len(t, algs, 6)
	})

	t.Run("keeps benchmark order and dedupes", func(t *testing.T) {
		algs, err := Select([]string{"quick", "selection", "QUICK"})
		require.NoError(t, err)
		require.Len(t, algs, 2)
		assert.Equal(t, NameSelection, algs[0].Name)
		assert.Equal(t, NameQuick, algs[1].Name)
	})

	t.Run("unknown name", func(t *testing.T) {
		_, err := Select([]string{"merge", "shell"})
		require.ErrorIs(t, err, ErrUnknownAlgorithm)
	})
}
