package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/MeKo-Tech/sortbench/internal/benchmark"
	"github.com/MeKo-Tech/sortbench/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleResults() []benchmark.Result {
	return []benchmark.Result{
		{
			Name: "selection", Label: "Selection sort", Size: 12000, Iterations: 2,
			Duration: 40 * time.Millisecond, Min: 19 * time.Millisecond, Max: 21 * time.Millisecond,
			MemoryBefore: common.MemoryStats{TotalAlloc: 0},
			MemoryAfter:  common.MemoryStats{TotalAlloc: 4096},
		},
		{
			Name: "quick", Label: "Quicksort", Size: 12000, Iterations: 2,
			Duration: 4 * time.Millisecond, Min: 2 * time.Millisecond, Max: 2 * time.Millisecond,
		},
		{
			Name: "merge", Label: "Merge sort", Size: 12000,
			Error: errors.New("merge failed: boom"),
		},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"", FormatText},
		{"text", FormatText},
		{"JSON", FormatJSON},
		{" csv ", FormatCSV},
		{"yaml", FormatYAML},
		{"yml", FormatYAML},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseFormat("xml")
	require.ErrorIs(t, err, ErrUnknownFormat)
}

func TestRecords(t *testing.T) {
	recs := Records(sampleResults())
	require.Len(t, recs, 3)

	assert.Equal(t, "selection", recs[0].Algorithm)
	assert.Equal(t, int64(20*time.Millisecond), recs[0].MeanNs)
	assert.Equal(t, uint64(4096), recs[0].AllocBytes)
	assert.Empty(t, recs[0].Error)
	assert.Equal(t, "merge failed: boom", recs[2].Error)
}

func TestWrite_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleResults(), FormatJSON))

	var doc struct {
		Results []Record `json:"results"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	require.Len(t, doc.Results, 3)
	assert.Equal(t, "quick", doc.Results[1].Algorithm)
	assert.Equal(t, int64(2*time.Millisecond), doc.Results[1].MeanNs)
}

func TestWrite_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleResults(), FormatYAML))

	var doc struct {
		Results []Record `yaml:"results"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	require.Len(t, doc.Results, 3)
	assert.Equal(t, "Selection sort", doc.Results[0].Label)
	assert.Equal(t, 12000, doc.Results[0].Size)
	assert.Contains(t, buf.String(), "mean_ns:")
}

func TestWrite_CSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleResults(), FormatCSV))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, "algorithm", rows[0][0])
	assert.Equal(t, []string{"selection", "Selection sort", "12000", "2", "40.0000", "20.0000", "19.0000", "21.0000", "4", ""}, rows[1])
	assert.Equal(t, "merge failed: boom", rows[3][9])
}

func TestWrite_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleResults(), FormatText))
	out := buf.String()

	assert.Contains(t, out, "Input size: 12,000 elements")
	assert.Contains(t, out, "ALGORITHM")
	assert.Contains(t, out, "Selection sort")
	assert.Contains(t, out, "10.00x")
	assert.Contains(t, out, "1.00x")
	assert.Contains(t, out, "ERROR: merge failed: boom")
}

func TestWrite_TextGroupsBySize(t *testing.T) {
	results := []benchmark.Result{
		{Name: "quick", Label: "Quicksort", Size: 10, Iterations: 1, Duration: time.Microsecond},
		{Name: "quick", Label: "Quicksort", Size: 100, Iterations: 1, Duration: 10 * time.Microsecond},
	}
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, results, FormatText))
	assert.Equal(t, 2, strings.Count(buf.String(), "Input size:"))
}

func TestWrite_UnknownFormat(t *testing.T) {
	err := Write(&bytes.Buffer{}, nil, Format("xml"))
	require.ErrorIs(t, err, ErrUnknownFormat)
}

func TestWrite_Empty(t *testing.T) {
	for _, f := range Formats() {
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, nil, f), f)
	}
}
