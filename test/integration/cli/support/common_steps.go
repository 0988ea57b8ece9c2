package support

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MeKo-Tech/sortbench/internal/testutil"
	"github.com/cucumber/godog"
)

// iRunCommand executes a command and stores the result.
func (testCtx *TestContext) iRunCommand(command string) error {
	return testCtx.Run(command)
}

// theCommandShouldSucceed verifies the last command returned no error.
func (testCtx *TestContext) theCommandShouldSucceed() error {
	if testCtx.LastError != nil {
		return fmt.Errorf("command %q failed: %w\nstdout:\n%s\nstderr:\n%s",
			testCtx.LastCommand, testCtx.LastError, testCtx.LastOutput, testCtx.LastStderr)
	}
	return nil
}

// theCommandShouldFail verifies the last command returned an error.
func (testCtx *TestContext) theCommandShouldFail() error {
	if testCtx.LastError == nil {
		return fmt.Errorf("command %q succeeded, expected failure\nstdout:\n%s", testCtx.LastCommand, testCtx.LastOutput)
	}
	return nil
}

// theOutputShouldContain checks stdout for a substring.
func (testCtx *TestContext) theOutputShouldContain(expected string) error {
	if !strings.Contains(testCtx.LastOutput, expected) {
		return fmt.Errorf("output does not contain %q\noutput:\n%s", expected, testCtx.LastOutput)
	}
	return nil
}

// theOutputShouldNotContain checks stdout does not contain a substring.
func (testCtx *TestContext) theOutputShouldNotContain(unexpected string) error {
	if strings.Contains(testCtx.LastOutput, unexpected) {
		return fmt.Errorf("output unexpectedly contains %q\noutput:\n%s", unexpected, testCtx.LastOutput)
	}
	return nil
}

// theOutputShouldBe compares stdout, ignoring surrounding whitespace.
func (testCtx *TestContext) theOutputShouldBe(expected string) error {
	if got := strings.TrimSpace(testCtx.LastOutput); got != expected {
		return fmt.Errorf("expected output %q, got %q", expected, got)
	}
	return nil
}

// theLogShouldContain checks stderr, where the JSON logs go.
func (testCtx *TestContext) theLogShouldContain(expected string) error {
	if !strings.Contains(testCtx.LastStderr, expected) {
		return fmt.Errorf("log does not contain %q\nlog:\n%s", expected, testCtx.LastStderr)
	}
	return nil
}

// theErrorShouldMention checks the returned error message.
func (testCtx *TestContext) theErrorShouldMention(expected string) error {
	if testCtx.LastError == nil {
		return errors.New("expected an error but command succeeded")
	}
	if !strings.Contains(strings.ToLower(testCtx.LastError.Error()), strings.ToLower(expected)) {
		return fmt.Errorf("error %q does not mention %q", testCtx.LastError, expected)
	}
	return nil
}

// theOutputShouldHaveLines counts non-empty stdout lines.
func (testCtx *TestContext) theOutputShouldHaveLines(n int) error {
	if got := len(outputLines(testCtx.LastOutput)); got != n {
		return fmt.Errorf("expected %d lines, got %d\noutput:\n%s", n, got, testCtx.LastOutput)
	}
	return nil
}

// theLastOutputLineShouldBe compares the final stdout line.
func (testCtx *TestContext) theLastOutputLineShouldBe(expected string) error {
	lines := outputLines(testCtx.LastOutput)
	if len(lines) == 0 {
		return errors.New("no output")
	}
	if got := lines[len(lines)-1]; got != expected {
		return fmt.Errorf("expected last line %q, got %q", expected, got)
	}
	return nil
}

// aConfigFileWith writes a file into the scenario temp directory.
func (testCtx *TestContext) aConfigFileWith(name string, content *godog.DocString) error {
	path := filepath.Join(testCtx.TempDir, name)
	if err := testutil.EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content.Content), 0o600)
}

// theEnvironmentVariableIsSetTo sets an env var for the following commands.
func (testCtx *TestContext) theEnvironmentVariableIsSetTo(name, value string) error {
	testCtx.AddEnvVar(name, value)
	return nil
}

// theFileShouldExist checks a file relative to the temp directory.
func (testCtx *TestContext) theFileShouldExist(name string) error {
	path := filepath.Join(testCtx.TempDir, name)
	if !testutil.FileExists(path) {
		return fmt.Errorf("file %s does not exist", path)
	}
	testCtx.LastFile = path
	return nil
}

// theFileShouldContain checks the content of the file last checked for existence.
func (testCtx *TestContext) theFileShouldContain(expected string) error {
	if testCtx.LastFile == "" {
		return errors.New("no file selected")
	}
	data, err := os.ReadFile(testCtx.LastFile)
	if err != nil {
		return err
	}
	if !strings.Contains(string(data), expected) {
		return fmt.Errorf("file %s does not contain %q", testCtx.LastFile, expected)
	}
	return nil
}

func outputLines(s string) []string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// RegisterCommonSteps registers command and file steps.
func (testCtx *TestContext) RegisterCommonSteps(sc *godog.ScenarioContext) {
	// Setup
	sc.Step(`^a config file "([^"]*)" with:$`, testCtx.aConfigFileWith)
	sc.Step(`^the environment variable "([^"]*)" is set to "([^"]*)"$`, testCtx.theEnvironmentVariableIsSetTo)

	// Execution
	sc.Step(`^I run "([^"]*)"$`, testCtx.iRunCommand)
	sc.Step(`^the command should succeed$`, testCtx.theCommandShouldSucceed)
	sc.Step(`^the command should fail$`, testCtx.theCommandShouldFail)

	// Output
	sc.Step(`^the output should contain "([^"]*)"$`, testCtx.theOutputShouldContain)
	sc.Step(`^the output should not contain "([^"]*)"$`, testCtx.theOutputShouldNotContain)
	sc.Step(`^the output should be "([^"]*)"$`, testCtx.theOutputShouldBe)
	sc.Step(`^the output should have (\d+) lines$`, testCtx.theOutputShouldHaveLines)
	sc.Step(`^the last output line should be "([^"]*)"$`, testCtx.theLastOutputLineShouldBe)
	sc.Step(`^the log should contain "([^"]*)"$`, testCtx.theLogShouldContain)
	sc.Step(`^the error should mention "([^"]*)"$`, testCtx.theErrorShouldMention)

	// Files
	sc.Step(`^the file "([^"]*)" should exist$`, testCtx.theFileShouldExist)
	sc.Step(`^the file should contain "([^"]*)"$`, testCtx.theFileShouldContain)
}
