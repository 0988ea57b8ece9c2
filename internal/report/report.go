// Package report renders benchmark results as text, JSON, CSV, YAML or a
// PNG bar chart.
package report

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/MeKo-Tech/sortbench/internal/benchmark"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

// Format is an output format name.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat is returned for unsupported format names.
var ErrUnknownFormat = errors.New("unknown output format")

// Formats lists the supported formats.
func Formats() []Format {
	return []Format{FormatText, FormatJSON, FormatCSV, FormatYAML}
}

// ParseFormat resolves a format name; the empty string means text.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatText, nil
	case FormatText, FormatJSON, FormatCSV, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Record is the serialized form of one benchmark result.
type Record struct {
	Algorithm  string `json:"algorithm" yaml:"algorithm"`
	Label      string `json:"label" yaml:"label"`
	Size       int    `json:"size" yaml:"size"`
	Iterations int    `json:"iterations" yaml:"iterations"`
	TotalNs    int64  `json:"total_ns" yaml:"total_ns"`
	MeanNs     int64  `json:"mean_ns" yaml:"mean_ns"`
	MinNs      int64  `json:"min_ns" yaml:"min_ns"`
	MaxNs      int64  `json:"max_ns" yaml:"max_ns"`
	AllocBytes uint64 `json:"alloc_bytes" yaml:"alloc_bytes"`
	Error      string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Records converts results to their serialized form.
func Records(results []benchmark.Result) []Record {
	out := make([]Record, len(results))
	for i, r := range results {
		out[i] = Record{
			Algorithm:  r.Name,
			Label:      r.Label,
			Size:       r.Size,
			Iterations: r.Iterations,
			TotalNs:    r.Duration.Nanoseconds(),
			MeanNs:     r.Mean().Nanoseconds(),
			MinNs:      r.Min.Nanoseconds(),
			MaxNs:      r.Max.Nanoseconds(),
			AllocBytes: r.Allocated(),
		}
		if r.Error != nil {
			out[i].Error = r.Error.Error()
		}
	}
	return out
}

// Write renders results to w in the given format.
func Write(w io.Writer, results []benchmark.Result, format Format) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, results)
	case FormatCSV:
		return writeCSV(w, results)
	case FormatYAML:
		return writeYAML(w, results)
	case FormatText, "":
		return writeText(w, results)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func writeJSON(w io.Writer, results []benchmark.Result) error {
	doc := struct {
		Results []Record `json:"results"`
	}{Results: Records(results)}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

func writeYAML(w io.Writer, results []benchmark.Result) error {
	doc := struct {
		Results []Record `yaml:"results"`
	}{Results: Records(results)}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}

func writeCSV(w io.Writer, results []benchmark.Result) error {
	writer := csv.NewWriter(w)
	header := []string{
		"algorithm", "label", "size", "iterations", "total_ms", "mean_ms", "min_ms", "max_ms", "alloc_kb", "error",
	}
	if err := writer.Write(header); err != nil {
		return err
	}
	for _, rec := range Records(results) {
		row := []string{
			rec.Algorithm,
			rec.Label,
			strconv.Itoa(rec.Size),
			strconv.Itoa(rec.Iterations),
			formatMs(rec.TotalNs),
			formatMs(rec.MeanNs),
			formatMs(rec.MinNs),
			formatMs(rec.MaxNs),
			strconv.FormatUint(rec.AllocBytes/1024, 10),
			rec.Error,
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func formatMs(ns int64) string {
	return strconv.FormatFloat(float64(ns)/1e6, 'f', 4, 64)
}

// writeText prints an aligned table, grouped by input size, with each
// algorithm's mean relative to the fastest one of its group.
func writeText(w io.Writer, results []benchmark.Result) error {
	p := message.NewPrinter(language.English)

	for gi, group := range groupBySize(results) {
		if gi > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := p.Fprintf(w, "Input size: %d elements\n", group[0].Size); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%-26s %10s %14s %14s %10s %12s\n",
			"ALGORITHM", "ITERATIONS", "MEAN", "TOTAL", "RELATIVE", "ALLOC"); err != nil {
			return err
		}

		fastest := fastestMean(group)
		for _, r := range group {
			var line string
			if r.Error != nil {
				line = fmt.Sprintf("%-26s ERROR: %v\n", r.Label, r.Error)
			} else {
				line = p.Sprintf("%-26s %10d %14s %14s %9.2fx %9d KB\n",
					r.Label, r.Iterations, r.Mean().String(), r.Duration.String(),
					relative(r, fastest), r.Allocated()/1024)
			}
			if _, err := io.WriteString(w, line); err != nil {
				return err
			}
		}
	}
	return nil
}

func groupBySize(results []benchmark.Result) [][]benchmark.Result {
	var groups [][]benchmark.Result
	index := map[int]int{}
	for _, r := range results {
		i, ok := index[r.Size]
		if !ok {
			i = len(groups)
			index[r.Size] = i
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], r)
	}
	return groups
}

func fastestMean(results []benchmark.Result) benchmark.Result {
	var best benchmark.Result
	found := false
	for _, r := range results {
		if r.Error != nil || r.Iterations == 0 {
			continue
		}
		if !found || r.Mean() < best.Mean() {
			best = r
			found = true
		}
	}
	return best
}

func relative(r, fastest benchmark.Result) float64 {
	if fastest.Mean() <= 0 {
		return 1
	}
	return float64(r.Mean()) / float64(fastest.Mean())
}
