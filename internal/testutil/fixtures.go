package testutil

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// SortCase is a named sorting input with its expected output.
type SortCase struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Input       []int  `json:"input"`
	Expected    []int  `json:"expected"`
}

// SortCasesFile is the fixture file holding the shared sorting cases.
const SortCasesFile = "sort_cases.json"

// LoadSortCases reads the shared sorting cases from the fixtures directory.
func LoadSortCases(t *testing.T) []SortCase {
	t.Helper()
	return LoadSortCasesFrom(t, filepath.Join(GetFixturesDir(t), SortCasesFile))
}

// LoadSortCasesFrom reads sorting cases from path.
func LoadSortCasesFrom(t *testing.T, path string) []SortCase {
	t.Helper()

	data, err := os.ReadFile(path) //nolint:gosec // G304: Reading test fixture files with controlled paths
	require.NoError(t, err, "Failed to read fixture file: %s", path)

	var cases []SortCase
	require.NoError(t, json.Unmarshal(data, &cases), "Failed to parse fixture file: %s", path)
	require.NotEmpty(t, cases, "Fixture file has no cases: %s", path)

	for _, c := range cases {
		require.Len(t, c.Expected, len(c.Input), "case %s: expected and input lengths differ", c.Name)
	}
	return cases
}

// SaveSortCases writes cases to path as indented JSON.
func SaveSortCases(t *testing.T, path string, cases []SortCase) {
	t.Helper()
	require.NoError(t, WriteSortCases(path, cases), "Failed to write fixture file: %s", path)
}

// WriteSortCases writes cases to path as indented JSON, creating the
// directory if needed.
func WriteSortCases(path string, cases []SortCase) error {
	data, err := json.MarshalIndent(cases, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal fixture: %w", err)
	}
	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to create fixture directory: %w", err)
	}
	return os.WriteFile(path, append(data, '\n'), 0o600)
}

// Clone returns a copy of the case input so sorts can run in place.
func (c SortCase) Clone() []int {
	out := make([]int, len(c.Input))
	copy(out, c.Input)
	return out
}
