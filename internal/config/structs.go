package config

// Config represents the complete configuration for sortbench.
// It is loaded from configuration files, environment variables and
// command-line flags, in increasing order of precedence.
type Config struct {
	// Global settings
	LogLevel string `mapstructure:"log_level" yaml:"log_level" json:"log_level"`
	Verbose  bool   `mapstructure:"verbose" yaml:"verbose" json:"verbose"`

	// Benchmark input and run settings
	Bench BenchConfig `mapstructure:"bench" yaml:"bench" json:"bench"`

	// Output configuration
	Output OutputConfig `mapstructure:"output" yaml:"output" json:"output"`

	// Prometheus metrics
	Metrics MetricsConfig `mapstructure:"metrics" yaml:"metrics" json:"metrics"`
}

// BenchConfig describes the generated input and how the algorithms run on it.
type BenchConfig struct {
	Size       int      `mapstructure:"size" yaml:"size" json:"size"`
	Min        int      `mapstructure:"min" yaml:"min" json:"min"`
	Max        int      `mapstructure:"max" yaml:"max" json:"max"`
	Seed       uint64   `mapstructure:"seed" yaml:"seed" json:"seed"`
	Pattern    string   `mapstructure:"pattern" yaml:"pattern" json:"pattern"`
	Iterations int      `mapstructure:"iterations" yaml:"iterations" json:"iterations"`
	Algorithms []string `mapstructure:"algorithms" yaml:"algorithms" json:"algorithms"`
	Parallel   bool     `mapstructure:"parallel" yaml:"parallel" json:"parallel"`
	Workers    int      `mapstructure:"workers" yaml:"workers" json:"workers"`
	Verify     bool     `mapstructure:"verify" yaml:"verify" json:"verify"`
}

// OutputConfig contains output formatting settings.
type OutputConfig struct {
	Format      string `mapstructure:"format" yaml:"format" json:"format"`
	File        string `mapstructure:"file" yaml:"file" json:"file"`
	PrintResult bool   `mapstructure:"print_result" yaml:"print_result" json:"print_result"`
	Chart       string `mapstructure:"chart" yaml:"chart" json:"chart"`
}

// MetricsConfig controls Prometheus metric collection.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled" yaml:"enabled" json:"enabled"`
	File    string `mapstructure:"file" yaml:"file" json:"file"`
}
