package support

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/MeKo-Tech/sortbench/internal/report"
	"github.com/cucumber/godog"
	"gopkg.in/yaml.v3"
)

func (testCtx *TestContext) jsonRecords() ([]report.Record, error) {
	var doc struct {
		Results []report.Record `json:"results"`
	}
	if err := json.Unmarshal([]byte(testCtx.LastOutput), &doc); err != nil {
		return nil, fmt.Errorf("output is not a JSON report: %w\noutput:\n%s", err, testCtx.LastOutput)
	}
	return doc.Results, nil
}

// theJSONReportShouldListResults checks the number of JSON records.
func (testCtx *TestContext) theJSONReportShouldListResults(n int) error {
	records, err := testCtx.jsonRecords()
	if err != nil {
		return err
	}
	if len(records) != n {
		return fmt.Errorf("expected %d results, got %d", n, len(records))
	}
	return nil
}

// everyResultShouldHaveSize checks the input size of every JSON record.
func (testCtx *TestContext) everyResultShouldHaveSize(size int) error {
	records, err := testCtx.jsonRecords()
	if err != nil {
		return err
	}
	for _, r := range records {
		if r.Size != size {
			return fmt.Errorf("%s: expected size %d, got %d", r.Algorithm, size, r.Size)
		}
	}
	return nil
}

// noResultShouldHaveAnError checks that every algorithm succeeded.
func (testCtx *TestContext) noResultShouldHaveAnError() error {
	records, err := testCtx.jsonRecords()
	if err != nil {
		return err
	}
	for _, r := range records {
		if r.Error != "" {
			return fmt.Errorf("%s failed: %s", r.Algorithm, r.Error)
		}
	}
	return nil
}

// theResultsShouldBeInOrder checks the algorithm order of the JSON records.
func (testCtx *TestContext) theResultsShouldBeInOrder(order string) error {
	records, err := testCtx.jsonRecords()
	if err != nil {
		return err
	}
	got := make([]string, len(records))
	for i, r := range records {
		got[i] = r.Algorithm
	}
	want := strings.Split(order, ",")
	if !slices.Equal(got, want) {
		return fmt.Errorf("expected order %v, got %v", want, got)
	}
	return nil
}

// theOutputShouldBeValidCSVWithRows parses stdout as CSV.
func (testCtx *TestContext) theOutputShouldBeValidCSVWithRows(n int) error {
	rows, err := csv.NewReader(strings.NewReader(testCtx.LastOutput)).ReadAll()
	if err != nil {
		return fmt.Errorf("output is not valid CSV: %w", err)
	}
	if len(rows) != n+1 {
		return fmt.Errorf("expected %d data rows, got %d", n, len(rows)-1)
	}
	return nil
}

// theOutputShouldBeValidYAML parses stdout as a YAML report.
func (testCtx *TestContext) theOutputShouldBeValidYAML() error {
	var doc struct {
		Results []report.Record `yaml:"results"`
	}
	if err := yaml.Unmarshal([]byte(testCtx.LastOutput), &doc); err != nil {
		return fmt.Errorf("output is not valid YAML: %w", err)
	}
	if len(doc.Results) == 0 {
		return fmt.Errorf("YAML report has no results")
	}
	return nil
}

// lineShouldBeSortedIntegers checks that a stdout line is a sorted int list
// of the given length.
func (testCtx *TestContext) lineShouldBeSortedIntegers(index, n int) error {
	lines := outputLines(testCtx.LastOutput)
	if index < 1 || index > len(lines) {
		return fmt.Errorf("output has %d lines, no line %d", len(lines), index)
	}
	line := strings.TrimSuffix(strings.TrimPrefix(lines[index-1], "["), "]")

	var values []int
	for _, f := range strings.Fields(line) {
		v, err := strconv.Atoi(f)
		if err != nil {
			return fmt.Errorf("line %d: %w", index, err)
		}
		values = append(values, v)
	}
	if len(values) != n {
		return fmt.Errorf("line %d: expected %d integers, got %d", index, n, len(values))
	}
	if !slices.IsSorted(values) {
		return fmt.Errorf("line %d is not sorted: %v", index, values)
	}
	return nil
}

// RegisterReportSteps registers report format steps.
func (testCtx *TestContext) RegisterReportSteps(sc *godog.ScenarioContext) {
	sc.Step(`^the JSON report should list (\d+) results?$`, testCtx.theJSONReportShouldListResults)
	sc.Step(`^every result should have size (\d+)$`, testCtx.everyResultShouldHaveSize)
	sc.Step(`^no result should have an error$`, testCtx.noResultShouldHaveAnError)
	sc.Step(`^the results should be in order "([^"]*)"$`, testCtx.theResultsShouldBeInOrder)
	sc.Step(`^the output should be valid CSV with (\d+) rows?$`, testCtx.theOutputShouldBeValidCSVWithRows)
	sc.Step(`^the output should be valid YAML$`, testCtx.theOutputShouldBeValidYAML)
	sc.Step(`^output line (\d+) should be (\d+) sorted integers$`, testCtx.lineShouldBeSortedIntegers)
}
