package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"github.com/MeKo-Tech/sortbench/internal/generate"
	"github.com/MeKo-Tech/sortbench/internal/testutil"
)

// generatedCasesFile is written next to the hand-written sort cases.
const generatedCasesFile = "generated_cases.json"

func main() {
	// Set up structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	var (
		size    = flag.Int("size", 32, "Elements per generated case")
		seed    = flag.Uint64("seed", 1, "Random seed")
		output  = flag.String("output", "", "Output file (default testdata/fixtures/"+generatedCasesFile+")")
		verbose = flag.Bool("v", false, "Verbose output")
		help    = flag.Bool("h", false, "Show help")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [OPTIONS]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Generate sorting fixtures, one case per input pattern.\n\n")
		fmt.Fprintf(os.Stderr, "OPTIONS:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nEXAMPLES:\n")
		fmt.Fprintf(os.Stderr, "  %s                  # Regenerate the default fixture file\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -size 100 -seed 7  # Larger cases with another seed\n", os.Args[0])
	}

	flag.Parse()

	if *help {
		flag.Usage()
		return
	}

	path := *output
	if path == "" {
		root, err := testutil.GetProjectRoot()
		if err != nil {
			slog.Error("Failed to find project root", "error", err)
			os.Exit(1)
		}
		path = filepath.Join(root, "testdata", "fixtures", generatedCasesFile)
	}

	cases, err := generateCases(*size, *seed)
	if err != nil {
		slog.Error("Failed to generate cases", "error", err)
		os.Exit(1)
	}

	if *verbose {
		for _, c := range cases {
			slog.Info("Generated case", "name", c.Name, "size", len(c.Input))
		}
	}

	if err := testutil.WriteSortCases(path, cases); err != nil {
		slog.Error("Failed to write fixtures", "path", path, "error", err)
		os.Exit(1)
	}

	slog.Info("Test data generation completed", "path", path, "cases", len(cases))
}

// generateCases builds one case per input pattern from the same seed.
func generateCases(size int, seed uint64) ([]testutil.SortCase, error) {
	var cases []testutil.SortCase
	for _, pattern := range generate.Patterns() {
		cfg := generate.DefaultConfig()
		cfg.Size = size
		cfg.Seed = seed
		cfg.Pattern = pattern

		input, err := generate.Ints(cfg)
		if err != nil {
			return nil, fmt.Errorf("pattern %s: %w", pattern, err)
		}
		expected := slices.Clone(input)
		slices.Sort(expected)

		cases = append(cases, testutil.SortCase{
			Name:        "generated-" + string(pattern),
			Description: fmt.Sprintf("%d values, pattern %s, seed %d", size, pattern, seed),
			Input:       input,
			Expected:    expected,
		})
	}
	return cases, nil
}
