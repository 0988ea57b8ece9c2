// Package support holds the godog step definitions for the sortbench CLI.
package support

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/MeKo-Tech/sortbench/cmd/sortbench/cmd"
)

// TestContext holds the state for integration tests.
type TestContext struct {
	// Command execution state
	LastCommand   string
	LastOutput    string
	LastStderr    string
	LastError     error
	LastExitCode  int
	LastStartTime time.Time
	LastDuration  time.Duration
	LastFile      string

	// Test environment
	TempDir string
	EnvVars map[string]string
}

// NewTestContext creates a new test context with its own temp directory.
func NewTestContext() (*TestContext, error) {
	tempDir, err := os.MkdirTemp("", "sortbench-test-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp directory: %w", err)
	}

	return &TestContext{
		TempDir: tempDir,
		EnvVars: map[string]string{},
	}, nil
}

// Cleanup removes the scenario's temp directory.
func (testCtx *TestContext) Cleanup() error {
	if err := os.RemoveAll(testCtx.TempDir); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove temp directory %s: %w", testCtx.TempDir, err)
	}
	return nil
}

// AddEnvVar adds an environment variable for command execution.
func (testCtx *TestContext) AddEnvVar(name, value string) {
	testCtx.EnvVars[name] = value
}

// substituteCommandVariables expands {tmp} to the scenario temp directory.
func (testCtx *TestContext) substituteCommandVariables(command string) string {
	return strings.ReplaceAll(command, "{tmp}", testCtx.TempDir)
}

// Run executes a sortbench command line in process. The command runs in the
// scenario temp directory with HOME pointing there, so no user config file
// is picked up.
func (testCtx *TestContext) Run(command string) error {
	command = testCtx.substituteCommandVariables(command)
	testCtx.LastCommand = command

	parts := strings.Fields(command)
	if len(parts) == 0 {
		return errors.New("empty command")
	}
	if parts[0] == "sortbench" {
		parts = parts[1:]
	}

	restore, err := testCtx.enterEnvironment()
	if err != nil {
		return err
	}
	defer restore()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	root := cmd.NewRootCommand()
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(parts)

	testCtx.LastStartTime = time.Now()
	err = root.ExecuteContext(ctx)
	testCtx.LastDuration = time.Since(testCtx.LastStartTime)

	testCtx.LastOutput = stdout.String()
	testCtx.LastStderr = stderr.String()
	testCtx.LastError = err
	testCtx.LastExitCode = 0
	if err != nil {
		testCtx.LastExitCode = 1
	}
	return nil
}

// enterEnvironment switches to the temp directory and applies the scenario
// environment. The returned function undoes both.
func (testCtx *TestContext) enterEnvironment() (func(), error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	if err := os.Chdir(testCtx.TempDir); err != nil {
		return nil, fmt.Errorf("failed to enter temp directory: %w", err)
	}

	vars := map[string]string{
		"HOME":            testCtx.TempDir,
		"XDG_CONFIG_HOME": testCtx.TempDir,
	}
	for k, v := range testCtx.EnvVars {
		vars[k] = v
	}

	previous := make(map[string]*string, len(vars))
	for k, v := range vars {
		if old, ok := os.LookupEnv(k); ok {
			previous[k] = &old
		} else {
			previous[k] = nil
		}
		_ = os.Setenv(k, v)
	}

	return func() {
		for k, old := range previous {
			if old == nil {
				_ = os.Unsetenv(k)
			} else {
				_ = os.Setenv(k, *old)
			}
		}
		_ = os.Chdir(wd)
	}, nil
}
