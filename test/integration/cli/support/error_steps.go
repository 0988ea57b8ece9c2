package support

import (
	"fmt"

	"github.com/cucumber/godog"
)

// theExitCodeShouldBe verifies the exit code main would use.
func (testCtx *TestContext) theExitCodeShouldBe(code int) error {
	if testCtx.LastExitCode != code {
		return fmt.Errorf("expected exit code %d, got %d (error: %v)", code, testCtx.LastExitCode, testCtx.LastError)
	}
	return nil
}

// theErrorShouldMentionInvalidConfiguration verifies a validation failure.
func (testCtx *TestContext) theErrorShouldMentionInvalidConfiguration() error {
	return testCtx.theErrorShouldMention("configuration validation failed")
}

// theErrorShouldMentionUnknownAlgorithm verifies an unknown algorithm error.
func (testCtx *TestContext) theErrorShouldMentionUnknownAlgorithm() error {
	return testCtx.theErrorShouldMention("unknown algorithm")
}

// RegisterErrorSteps registers error handling steps.
func (testCtx *TestContext) RegisterErrorSteps(sc *godog.ScenarioContext) {
	sc.Step(`^the exit code should be (\d+)$`, testCtx.theExitCodeShouldBe)
	sc.Step(`^the error should mention invalid configuration$`, testCtx.theErrorShouldMentionInvalidConfiguration)
	sc.Step(`^the error should mention an unknown algorithm$`, testCtx.theErrorShouldMentionUnknownAlgorithm)
}
