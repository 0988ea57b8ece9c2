package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/MeKo-Tech/sortbench/internal/benchmark"
	"github.com/MeKo-Tech/sortbench/internal/generate"
	"github.com/MeKo-Tech/sortbench/internal/report"
	"github.com/MeKo-Tech/sortbench/internal/sorting"
)

func main() {
	var (
		sizes      = flag.String("sizes", "100,1000,5000", "Comma-separated input sizes")
		iterations = flag.Int("iterations", 3, "Number of iterations per benchmark")
		pattern    = flag.String("pattern", "random", "Input pattern (random, sorted, reversed, equal, few-unique)")
		seed       = flag.Uint64("seed", 1, "Random seed (0 = time based)")
		algorithms = flag.String("algorithms", "", "Comma-separated algorithms (default all)")
		outputFile = flag.String("output", "", "CSV output file for results (optional)")
		chartFile  = flag.String("chart", "", "PNG chart output file (optional)")
		verbose    = flag.Bool("verbose", false, "Verbose output")
	)
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	sizeList, err := parseSizes(*sizes)
	if err != nil {
		log.Fatalf("Invalid -sizes: %v", err)
	}
	algs, err := sorting.Select(splitList(*algorithms))
	if err != nil {
		log.Fatalf("Invalid -algorithms: %v", err)
	}
	p, err := generate.ParsePattern(*pattern)
	if err != nil {
		log.Fatalf("Invalid -pattern: %v", err)
	}

	fmt.Println("sortbench size sweep")
	fmt.Println("====================")
	fmt.Printf("Running %d algorithm(s) on sizes %v with %d iterations each...\n\n", len(algs), sizeList, *iterations)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	gen := generate.DefaultConfig()
	gen.Pattern = p
	gen.Seed = *seed

	opts := benchmark.DefaultOptions()
	opts.Iterations = *iterations
	suite := benchmark.NewSuite(algs, opts).WithLogger(logger)

	results, err := suite.Sweep(ctx, gen, sizeList)
	if err != nil {
		stop()
		log.Fatalf("Benchmark failed: %v", err)
	}

	if err := report.Write(os.Stdout, results, report.FormatText); err != nil {
		log.Printf("Failed to print results: %v", err)
	}

	if *outputFile != "" {
		if err := saveResultsToFile(*outputFile, results); err != nil {
			log.Printf("Failed to save results to file: %v", err)
		} else {
			fmt.Printf("Results saved to: %s\n", *outputFile)
		}
	}

	if *chartFile != "" {
		if err := report.WriteChart(*chartFile, results); err != nil {
			log.Printf("Failed to save chart: %v", err)
		} else {
			fmt.Printf("Chart saved to: %s\n", *chartFile)
		}
	}
}

// parseSizes parses a comma-separated list of non-negative sizes.
func parseSizes(s string) ([]int, error) {
	fields := splitList(s)
	if len(fields) == 0 {
		return nil, fmt.Errorf("no sizes given")
	}
	sizes := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("invalid size %q: %w", f, err)
		}
		if n < 0 {
			return nil, fmt.Errorf("invalid size %d: must not be negative", n)
		}
		sizes = append(sizes, n)
	}
	return sizes, nil
}

func splitList(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

func saveResultsToFile(filename string, results []benchmark.Result) error {
	file, err := os.Create(filename) //nolint:gosec // G304: user-chosen output path
	if err != nil {
		return err
	}
	if err := report.Write(file, results, report.FormatCSV); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}
