package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/MeKo-Tech/sortbench/internal/benchmark"
	"github.com/MeKo-Tech/sortbench/internal/generate"
	"github.com/MeKo-Tech/sortbench/internal/report"
	"github.com/MeKo-Tech/sortbench/internal/sorting"
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	gen := generate.DefaultConfig()
	opts := benchmark.DefaultOptions()
	return Config{
		LogLevel: "info",
		Verbose:  false,
		Bench: BenchConfig{
			Size:       gen.Size,
			Min:        gen.Min,
			Max:        gen.Max,
			Seed:       0,
			Pattern:    string(gen.Pattern),
			Iterations: opts.Iterations,
			Algorithms: []string{},
			Parallel:   opts.Parallel,
			Workers:    opts.Workers,
			Verify:     opts.Verify,
		},
		Output: OutputConfig{
			Format: string(report.FormatText),
		},
	}
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	validLogLevels := []string{"debug", "info", "warn", "error"}
	if !slices.Contains(validLogLevels, c.LogLevel) {
		return fmt.Errorf("invalid log level: %s (must be one of: %s)", c.LogLevel, strings.Join(validLogLevels, ", "))
	}

	if err := c.GenerateConfig().Validate(); err != nil {
		return fmt.Errorf("invalid bench input: %w", err)
	}
	if c.Bench.Iterations <= 0 {
		return fmt.Errorf("invalid iterations: %d (must be positive)", c.Bench.Iterations)
	}
	if c.Bench.Workers < 0 {
		return fmt.Errorf("invalid workers: %d (must not be negative)", c.Bench.Workers)
	}
	if _, err := sorting.Select(c.Bench.Algorithms); err != nil {
		return fmt.Errorf("invalid algorithms: %w", err)
	}

	if _, err := report.ParseFormat(c.Output.Format); err != nil {
		return fmt.Errorf("invalid output format: %w", err)
	}

	return nil
}

// GenerateConfig converts the bench settings to an input generator config.
// An unknown pattern is passed through unchanged for Validate to report.
func (c *Config) GenerateConfig() generate.Config {
	pattern, err := generate.ParsePattern(c.Bench.Pattern)
	if err != nil {
		pattern = generate.Pattern(c.Bench.Pattern)
	}
	return generate.Config{
		Size:    c.Bench.Size,
		Min:     c.Bench.Min,
		Max:     c.Bench.Max,
		Seed:    c.Bench.Seed,
		Pattern: pattern,
	}
}

// BenchmarkOptions converts the bench settings to suite options.
func (c *Config) BenchmarkOptions() benchmark.Options {
	return benchmark.Options{
		Iterations: c.Bench.Iterations,
		Parallel:   c.Bench.Parallel,
		Workers:    c.Bench.Workers,
		Verify:     c.Bench.Verify,
	}
}

// SelectedAlgorithms resolves the configured algorithm names.
func (c *Config) SelectedAlgorithms() ([]sorting.Algorithm, error) {
	return sorting.Select(c.Bench.Algorithms)
}

// OutputFormat resolves the configured output format.
func (c *Config) OutputFormat() (report.Format, error) {
	return report.ParseFormat(c.Output.Format)
}

// MetricsEnabled reports whether metrics are collected. Setting a metrics
// file enables them.
func (c *Config) MetricsEnabled() bool {
	return c.Metrics.Enabled || c.Metrics.File != ""
}
