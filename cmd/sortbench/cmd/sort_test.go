package cmd

import (
	"testing"

	"github.com/MeKo-Tech/sortbench/internal/sorting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortCommand(t *testing.T) {
	isolate(t)
	out, stderr, err := executeCommand(t, "sort", "5", "3", "9", "1")
	require.NoError(t, err)
	assert.Equal(t, "[1 3 5 9]\n", out)
	assert.Contains(t, stderr, `"label":"Quicksort"`)
}

func TestSortCommand_EachAlgorithm(t *testing.T) {
	for _, name := range sorting.Names() {
		t.Run(name, func(t *testing.T) {
			isolate(t)
			out, _, err := executeCommand(t, "sort", "--algorithm", name, "--", "2", "5", "1", "2", "3", "5", "-4")
			require.NoError(t, err)
			assert.Equal(t, "[-4 1 2 2 3 5 5]\n", out)
		})
	}
}

func TestSortCommand_NoArgs(t *testing.T) {
	isolate(t)
	out, _, err := executeCommand(t, "sort")
	require.NoError(t, err)
	assert.Equal(t, "[]\n", out)
}

func TestSortCommand_Errors(t *testing.T) {
	isolate(t)

	_, _, err := executeCommand(t, "sort", "--algorithm", "bogo", "1")
	require.ErrorIs(t, err, sorting.ErrUnknownAlgorithm)

	_, _, err = executeCommand(t, "sort", "1", "two")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid integer "two"`)
}
