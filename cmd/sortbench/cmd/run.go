package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/MeKo-Tech/sortbench/internal/benchmark"
	"github.com/MeKo-Tech/sortbench/internal/common"
	"github.com/MeKo-Tech/sortbench/internal/generate"
	"github.com/MeKo-Tech/sortbench/internal/metrics"
	"github.com/MeKo-Tech/sortbench/internal/report"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

// errAlgorithmsFailed is returned when at least one algorithm failed or
// produced unsorted output.
var errAlgorithmsFailed = errors.New("benchmark finished with failures")

func newRunCommand(a *app) *cobra.Command {
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Benchmark the sorting algorithms on a generated input",
		Long: `Generate an integer array and time every selected algorithm on its own copy.

Examples:
  sortbench run
  sortbench run --size 5000 --pattern reversed --iterations 3
  sortbench run --algorithms merge,quick --format csv --output results.csv
  sortbench run --parallel --workers 4 --metrics-file sortbench.prom`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runBenchmark(cmd)
		},
	}

	addRunFlags(runCmd)
	a.bindFlags(runCmd, map[string]string{
		"bench.size":          "size",
		"bench.min":           "min",
		"bench.max":           "max",
		"bench.seed":          "seed",
		"bench.pattern":       "pattern",
		"bench.iterations":    "iterations",
		"bench.algorithms":    "algorithms",
		"bench.parallel":      "parallel",
		"bench.workers":       "workers",
		"bench.verify":        "verify",
		"output.format":       "format",
		"output.file":         "output",
		"output.chart":        "chart",
		"output.print_result": "print-result",
		"metrics.file":        "metrics-file",
	})

	return runCmd
}

func addRunFlags(cmd *cobra.Command) {
	defaults := generate.DefaultConfig()
	opts := benchmark.DefaultOptions()

	cmd.Flags().Int("size", defaults.Size, "number of elements to sort")
	cmd.Flags().Int("min", defaults.Min, "smallest generated value")
	cmd.Flags().Int("max", defaults.Max, "largest generated value (inclusive)")
	cmd.Flags().Uint64("seed", 0, "random seed (0 = time based)")
	cmd.Flags().String("pattern", string(defaults.Pattern), "input pattern (random, sorted, reversed, equal, few-unique)")
	cmd.Flags().Int("iterations", opts.Iterations, "runs per algorithm")
	cmd.Flags().StringSlice("algorithms", nil, "comma-separated algorithms to run (default all)")
	cmd.Flags().Bool("parallel", false, "run algorithms concurrently")
	cmd.Flags().Int("workers", 0, "parallel workers (0 = GOMAXPROCS)")
	cmd.Flags().Bool("verify", opts.Verify, "check every output against the sorted input")
	cmd.Flags().StringP("format", "f", string(report.FormatText), "output format (text, json, csv, yaml)")
	cmd.Flags().StringP("output", "o", "", "output file (default: stdout)")
	cmd.Flags().String("chart", "", "write a bar chart of mean durations to this PNG file")
	cmd.Flags().String("metrics-file", "", "write Prometheus metrics in text format to this file")
	cmd.Flags().Bool("print-result", false, "print each algorithm's sorted output")
}

func (a *app) runBenchmark(cmd *cobra.Command) error {
	cfg := a.cfg

	algorithms, err := cfg.SelectedAlgorithms()
	if err != nil {
		return err
	}
	format, err := cfg.OutputFormat()
	if err != nil {
		return err
	}

	gen := cfg.GenerateConfig()
	input, err := generate.Ints(gen)
	if err != nil {
		return fmt.Errorf("failed to generate input: %w", err)
	}
	a.logger.Info("input generated", "size", len(input), "pattern", gen.Pattern, "seed", gen.Seed)

	suite := benchmark.NewSuite(algorithms, cfg.BenchmarkOptions()).
		WithLogger(a.logger).
		WithSink(common.NewLogSink(a.logger, slog.LevelDebug))

	var registry *prometheus.Registry
	if cfg.MetricsEnabled() {
		registry = prometheus.NewRegistry()
		suite.WithMetrics(metrics.NewSink(registry))
	}

	results, err := suite.Run(cmd.Context(), input)
	if err != nil {
		return fmt.Errorf("benchmark interrupted: %w", err)
	}

	if err := writeReport(cmd.OutOrStdout(), cfg.Output.File, results, format); err != nil {
		return err
	}
	if cfg.Output.File != "" {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Results written to %s\n", cfg.Output.File)
	}

	if cfg.Output.PrintResult {
		for _, r := range results {
			if r.Error == nil {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: %v\n", r.Label, r.Output)
			}
		}
	}

	if cfg.Output.Chart != "" {
		if err := report.WriteChart(cfg.Output.Chart, results); err != nil {
			return err
		}
		a.logger.Info("chart written", "path", cfg.Output.Chart)
	}

	if registry != nil && cfg.Metrics.File != "" {
		if err := metrics.WriteTextfile(cfg.Metrics.File, registry); err != nil {
			return err
		}
		a.logger.Info("metrics written", "path", cfg.Metrics.File)
	}

	failed := 0
	for _, r := range results {
		if r.Error != nil {
			failed++
			a.logger.Error("algorithm failed", "algorithm", r.Name, "error", r.Error)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d algorithms", errAlgorithmsFailed, failed, len(results))
	}
	return nil
}

// writeReport writes to path, or to stdout when path is empty.
func writeReport(stdout io.Writer, path string, results []benchmark.Result, format report.Format) error {
	if path == "" {
		return report.Write(stdout, results, format)
	}

	f, err := os.Create(path) //nolint:gosec // G304: Creating report file with user-controlled path
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := report.Write(f, results, format); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write report: %w", err)
	}
	return f.Close()
}
