// Package version holds build metadata injected with -ldflags.
package version

import (
	"fmt"
	"runtime"
)

// Build-time variables set by ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Info returns version information
func Info() (string, string, string) {
	return Version, GitCommit, BuildDate
}

// String formats the build metadata for --version output.
func String() string {
	return fmt.Sprintf("sortbench %s (commit %s, built %s, %s)", Version, GitCommit, BuildDate, runtime.Version())
}
