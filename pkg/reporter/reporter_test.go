package reporter_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yuin/goldmark"

	"github.com/yaklabco/gohtmlint/pkg/config"
	"github.com/yaklabco/gohtmlint/pkg/lint"
	"github.com/yaklabco/gohtmlint/pkg/reporter"
	"github.com/yaklabco/gohtmlint/pkg/runner"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    reporter.Format
		wantErr bool
	}{
		{"md", reporter.FormatMarkdown, false},
		{"markdown", reporter.FormatMarkdown, false},
		{"", reporter.FormatMarkdown, false},
		{"json", reporter.FormatJSON, false},
		{"text", reporter.FormatText, false},
		{"xml", "", true},
		{"MD", "", true},
	}

	for _, tt := range tests {
		t.Run("input_"+tt.input, func(t *testing.T) {
			format, err := reporter.ParseFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "valid formats")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, format)
		})
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	_, err := reporter.New(reporter.Options{Format: reporter.Format("sarif")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}

// sampleResult builds a two-file result with mixed severities.
func sampleResult() *runner.Result {
	result := &runner.Result{
		Stats: runner.Stats{
			FilesDiscovered:    2,
			FilesProcessed:     2,
			FilesWithFindings:  1,
			FindingsTotal:      3,
			FindingsBySeverity: map[string]int{"error": 2, "warning": 1},
		},
	}

	result.Files = append(result.Files, runner.FileOutcome{
		Path: "/work/index.html",
		Result: &lint.FileResult{
			Findings: []lint.Finding{
				{
					RuleID: "UA001", RuleName: "missing-lang", Severity: config.SeverityError,
					Message: "missing lang attribute on <html> element",
					Line:    1, Column: 1, Path: "html", FilePath: "/work/index.html",
					Suggestion: `Add a language, e.g. <html lang="en">`,
				},
				{
					RuleID: "UA007", RuleName: "missing-alt", Severity: config.SeverityError,
					Message: "img element is missing an alt attribute",
					Line:    8, Column: 3, Path: "html > body > img", FilePath: "/work/index.html",
				},
				{
					RuleID: "UA009", RuleName: "heading-skip", Severity: config.SeverityWarning,
					Message: "heading level jumps from h1 to h3",
					Line:    12, Column: 3, Path: "html > body > h3", FilePath: "/work/index.html",
				},
			},
		},
	})
	result.Files = append(result.Files, runner.FileOutcome{
		Path:   "/work/clean.html",
		Result: &lint.FileResult{},
	})

	return result
}

func TestMarkdownReporter(t *testing.T) {
	var buf bytes.Buffer

	rep, err := reporter.New(reporter.Options{
		Writer:      &buf,
		Format:      reporter.FormatMarkdown,
		ShowSummary: true,
		WorkingDir:  "/work",
	})
	require.NoError(t, err)

	count, err := rep.Report(context.Background(), sampleResult())
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	out := buf.String()

	assert.Contains(t, out, "# Usability Audit Report")
	assert.Contains(t, out, "## Errors")
	assert.Contains(t, out, "## Warnings")
	assert.NotContains(t, out, "## Info")
	assert.Contains(t, out, "- **missing-lang**: missing lang attribute on <html> element (1:1)")
	assert.Contains(t, out, "- **heading-skip**: heading level jumps from h1 to h3 (12:3)")
	assert.Contains(t, out, "  - Suggestion: Add a language")
	assert.Contains(t, out, "`index.html`")
	assert.Contains(t, out, "## Summary")
	assert.Contains(t, out, "3 (2 errors, 1 warnings, 0 info)")

	// Errors section precedes warnings.
	assert.Less(t, strings.Index(out, "## Errors"), strings.Index(out, "## Warnings"))
}

// The Markdown report must itself be valid Markdown.
func TestMarkdownReporterOutputConverts(t *testing.T) {
	var buf bytes.Buffer

	rep, err := reporter.New(reporter.Options{Writer: &buf, Format: reporter.FormatMarkdown, ShowSummary: true})
	require.NoError(t, err)

	_, err = rep.Report(context.Background(), sampleResult())
	require.NoError(t, err)

	var html bytes.Buffer
	require.NoError(t, goldmark.New().Convert(buf.Bytes(), &html))
	assert.Contains(t, html.String(), "<h1>Usability Audit Report</h1>")
	assert.Contains(t, html.String(), "<h2>Errors</h2>")
}

func TestMarkdownReporterNoIssues(t *testing.T) {
	var buf bytes.Buffer

	rep, err := reporter.New(reporter.Options{Writer: &buf, Format: reporter.FormatMarkdown})
	require.NoError(t, err)

	result := &runner.Result{
		Files: []runner.FileOutcome{{Path: "a.html", Result: &lint.FileResult{}}},
		Stats: runner.Stats{FilesProcessed: 1, FindingsBySeverity: map[string]int{}},
	}

	count, err := rep.Report(context.Background(), result)
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Contains(t, buf.String(), "No issues found.")
}

func TestJSONReporter(t *testing.T) {
	var buf bytes.Buffer

	rep, err := reporter.New(reporter.Options{
		Writer:     &buf,
		Format:     reporter.FormatJSON,
		WorkingDir: "/work",
	})
	require.NoError(t, err)

	count, err := rep.Report(context.Background(), sampleResult())
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	var output reporter.JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &output))

	assert.Equal(t, "1.0.0", output.Version)
	require.Len(t, output.Files, 2)
	assert.Equal(t, "index.html", output.Files[0].Path)
	require.Len(t, output.Files[0].Findings, 3)

	first := output.Files[0].Findings[0]
	assert.Equal(t, "UA001", first.Rule)
	assert.Equal(t, "missing-lang", first.RuleName)
	assert.Equal(t, "error", first.Severity)
	assert.Equal(t, 1, first.Line)
	assert.Equal(t, 1, first.Column)
	assert.Equal(t, "html", first.Path)

	assert.Empty(t, output.Files[1].Findings)
	assert.Equal(t, 3, output.Summary.TotalFindings)
	assert.Equal(t, 2, output.Summary.FilesChecked)
	assert.Equal(t, 1, output.Summary.FilesWithFindings)
	assert.Equal(t, 2, output.Summary.BySeverity["error"])
}

func TestJSONReporterFileError(t *testing.T) {
	var buf bytes.Buffer

	rep, err := reporter.New(reporter.Options{Writer: &buf, Format: reporter.FormatJSON})
	require.NoError(t, err)

	result := &runner.Result{
		Files: []runner.FileOutcome{
			{Path: "gone.html", Error: errors.New("permission denied")},
		},
		Stats: runner.Stats{FilesErrored: 1, FindingsBySeverity: map[string]int{}},
	}

	_, err = rep.Report(context.Background(), result)
	require.NoError(t, err)

	var output reporter.JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &output))
	require.Len(t, output.Files, 1)
	assert.Equal(t, "permission denied", output.Files[0].Error)
	assert.Equal(t, 1, output.Summary.FilesErrored)
}

func TestTextReporter(t *testing.T) {
	var buf bytes.Buffer

	rep, err := reporter.New(reporter.Options{
		Writer:      &buf,
		Format:      reporter.FormatText,
		Color:       "never",
		ShowSummary: true,
		WorkingDir:  "/work",
	})
	require.NoError(t, err)

	count, err := rep.Report(context.Background(), sampleResult())
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	out := buf.String()
	assert.Contains(t, out, "index.html (3 findings)")
	assert.Contains(t, out, "index.html:1:1")
	assert.Contains(t, out, "missing lang attribute")
	assert.Contains(t, out, "(missing-lang)")
	assert.Contains(t, out, "at html > body > img")
	assert.Contains(t, out, "3 findings (2 errors, 1 warnings), in 1 file")
}

func TestTextReporterRuleFormat(t *testing.T) {
	var buf bytes.Buffer

	rep, err := reporter.New(reporter.Options{
		Writer:     &buf,
		Format:     reporter.FormatText,
		Color:      "never",
		RuleFormat: config.RuleFormatCombined,
	})
	require.NoError(t, err)

	_, err = rep.Report(context.Background(), sampleResult())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "(UA001/missing-lang)")
}

func TestReporterEmptyResult(t *testing.T) {
	for _, format := range []reporter.Format{reporter.FormatMarkdown, reporter.FormatJSON, reporter.FormatText} {
		var buf bytes.Buffer

		rep, err := reporter.New(reporter.Options{Writer: &buf, Format: format})
		require.NoError(t, err)

		count, err := rep.Report(context.Background(), &runner.Result{})
		require.NoError(t, err)
		assert.Zero(t, count)
	}
}
