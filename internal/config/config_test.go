package config

import (
	"strings"
	"testing"

	"github.com/MeKo-Tech/sortbench/internal/generate"
	"github.com/MeKo-Tech/sortbench/internal/report"
)

const (
	infoLevel  = "info"
	debugLevel = "debug"
)

// TestDefaultConfig verifies that DefaultConfig returns expected values.
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.LogLevel != infoLevel {
		t.Errorf("Expected log_level '%s', got %s", infoLevel, cfg.LogLevel)
	}
	if cfg.Verbose {
		t.Error("Expected verbose to be false")
	}

	// Bench defaults
	if cfg.Bench.Size != 100 {
		t.Errorf("Expected bench size 100, got %d", cfg.Bench.Size)
	}
	if cfg.Bench.Min != 0 || cfg.Bench.Max != 1000 {
		t.Errorf("Expected bench range [0, 1000], got [%d, %d]", cfg.Bench.Min, cfg.Bench.Max)
	}
	if cfg.Bench.Pattern != "random" {
		t.Errorf("Expected bench pattern 'random', got %s", cfg.Bench.Pattern)
	}
	if cfg.Bench.Iterations != 1 {
		t.Errorf("Expected bench iterations 1, got %d", cfg.Bench.Iterations)
	}
	if len(cfg.Bench.Algorithms) != 0 {
		t.Errorf("Expected no algorithm filter, got %v", cfg.Bench.Algorithms)
	}
	if cfg.Bench.Parallel {
		t.Error("Expected parallel to be false")
	}
	if !cfg.Bench.Verify {
		t.Error("Expected verify to be true")
	}

	// Output defaults
	if cfg.Output.Format != "text" {
		t.Errorf("Expected output format 'text', got %s", cfg.Output.Format)
	}
	if cfg.Output.PrintResult {
		t.Error("Expected print_result to be false")
	}

	// Metrics defaults
	if cfg.Metrics.Enabled {
		t.Error("Expected metrics to be disabled")
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig() should be valid, got: %v", err)
	}
}

// TestValidate tests validation of individual settings.
func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{"default", func(*Config) {}, ""},
		{"debug log level", func(c *Config) { c.LogLevel = debugLevel }, ""},
		{"invalid log level", func(c *Config) { c.LogLevel = "trace" }, "invalid log level"},
		{"negative size", func(c *Config) { c.Bench.Size = -1 }, "invalid bench input"},
		{"inverted range", func(c *Config) { c.Bench.Min, c.Bench.Max = 10, 5 }, "invalid bench input"},
		{"empty range", func(c *Config) { c.Bench.Min, c.Bench.Max = 7, 7 }, ""},
		{"unknown pattern", func(c *Config) { c.Bench.Pattern = "zigzag" }, "invalid bench input: unknown pattern"},
		{"empty pattern", func(c *Config) { c.Bench.Pattern = "" }, ""},
		{"zero iterations", func(c *Config) { c.Bench.Iterations = 0 }, "invalid iterations"},
		{"negative workers", func(c *Config) { c.Bench.Workers = -2 }, "invalid workers"},
		{"known algorithms", func(c *Config) { c.Bench.Algorithms = []string{"quick", "Merge"} }, ""},
		{"unknown algorithm", func(c *Config) { c.Bench.Algorithms = []string{"bogo"} }, "invalid algorithms"},
		{"yaml format", func(c *Config) { c.Output.Format = "yaml" }, ""},
		{"invalid format", func(c *Config) { c.Output.Format = "xml" }, "invalid output format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error %q does not contain %q", err, tt.wantErr)
			}
		})
	}
}

// TestGenerateConfig tests conversion to the input generator config.
func TestGenerateConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Bench.Size = 42
	cfg.Bench.Min = -5
	cfg.Bench.Max = 5
	cfg.Bench.Seed = 7
	cfg.Bench.Pattern = "Reversed"

	gen := cfg.GenerateConfig()
	if gen.Size != 42 || gen.Min != -5 || gen.Max != 5 || gen.Seed != 7 {
		t.Errorf("Unexpected generator config: %+v", gen)
	}
	if gen.Pattern != generate.PatternReversed {
		t.Errorf("Expected pattern %s, got %s", generate.PatternReversed, gen.Pattern)
	}
}

// TestBenchmarkOptions tests conversion to suite options.
func TestBenchmarkOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Bench.Iterations = 3
	cfg.Bench.Parallel = true
	cfg.Bench.Workers = 2
	cfg.Bench.Verify = false

	opts := cfg.BenchmarkOptions()
	if opts.Iterations != 3 || !opts.Parallel || opts.Workers != 2 || opts.Verify {
		t.Errorf("Unexpected options: %+v", opts)
	}
}

// TestSelectedAlgorithms tests resolving the algorithm filter.
func TestSelectedAlgorithms(t *testing.T) {
	cfg := DefaultConfig()
	all, err := cfg.SelectedAlgorithms()
	if err != nil {
		t.Fatalf("SelectedAlgorithms() error: %v", err)
	}
	if len(all) != 6 {
		t.Errorf("Expected all 6 algorithms, got %d", len(all))
	}

	cfg.Bench.Algorithms = []string{"quick", "selection"}
	some, err := cfg.SelectedAlgorithms()
	if err != nil {
		t.Fatalf("SelectedAlgorithms() error: %v", err)
	}
	if len(some) != 2 || some[0].Name != "selection" || some[1].Name != "quick" {
		t.Errorf("Expected [selection quick] in benchmark order, got %v", some)
	}
}

// TestOutputFormat tests resolving the output format.
func TestOutputFormat(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Output.Format = "JSON"
	f, err := cfg.OutputFormat()
	if err != nil {
		t.Fatalf("OutputFormat() error: %v", err)
	}
	if f != report.FormatJSON {
		t.Errorf("Expected %s, got %s", report.FormatJSON, f)
	}
}

// TestMetricsEnabled tests that a metrics file implies collection.
func TestMetricsEnabled(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.MetricsEnabled() {
		t.Error("Expected metrics disabled by default")
	}
	cfg.Metrics.File = "sortbench.prom"
	if !cfg.MetricsEnabled() {
		t.Error("Expected a metrics file to enable metrics")
	}
}
