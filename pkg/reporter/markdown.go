package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/gohtmlint/pkg/config"
	"github.com/yaklabco/gohtmlint/pkg/lint"
	"github.com/yaklabco/gohtmlint/pkg/runner"
)

// severityOrder fixes the section order of the Markdown report.
//
//nolint:gochecknoglobals // Read-only lookup table.
var severityOrder = []config.Severity{
	config.SeverityError,
	config.SeverityWarning,
	config.SeverityInfo,
}

// severityHeadings maps severities to their report section titles.
//
//nolint:gochecknoglobals // Read-only lookup table.
var severityHeadings = map[config.Severity]string{
	config.SeverityError:   "Errors",
	config.SeverityWarning: "Warnings",
	config.SeverityInfo:    "Info",
}

// MarkdownReporter renders findings as a Markdown document with one
// section per severity. This is the default output format.
type MarkdownReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewMarkdownReporter creates a new Markdown reporter.
func NewMarkdownReporter(opts Options) *MarkdownReporter {
	return &MarkdownReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *MarkdownReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	fmt.Fprintln(r.bw, "# Usability Audit Report")
	fmt.Fprintln(r.bw)

	if result == nil || len(result.Files) == 0 {
		fmt.Fprintln(r.bw, "No files were audited.")
		return 0, nil
	}

	r.reportReadErrors(result)

	var total int
	for _, severity := range severityOrder {
		total += r.reportSeveritySection(result, severity)
	}

	if total == 0 {
		fmt.Fprintln(r.bw, "No issues found.")
		fmt.Fprintln(r.bw)
	}

	if r.opts.ShowSummary {
		r.reportSummary(result.Stats, total)
	}

	return total, nil
}

// reportReadErrors lists files that could not be read.
func (r *MarkdownReporter) reportReadErrors(result *runner.Result) {
	var headed bool
	for _, file := range result.Files {
		if file.Error == nil {
			continue
		}
		if !headed {
			fmt.Fprintln(r.bw, "## Unreadable files")
			fmt.Fprintln(r.bw)
			headed = true
		}
		fmt.Fprintf(r.bw, "- `%s`: %v\n", displayPath(file.Path, r.opts.WorkingDir), file.Error)
	}
	if headed {
		fmt.Fprintln(r.bw)
	}
}

// reportSeveritySection writes one severity section. Findings keep the
// aggregator's order; the multi-file report interleaves nothing, it
// walks files in their deterministic order.
func (r *MarkdownReporter) reportSeveritySection(result *runner.Result, severity config.Severity) int {
	type located struct {
		path    string
		finding lint.Finding
	}

	var entries []located
	for _, file := range result.Files {
		if file.Result == nil {
			continue
		}
		for _, finding := range file.Result.Findings {
			if finding.Severity == severity {
				entries = append(entries, located{
					path:    displayPath(file.Path, r.opts.WorkingDir),
					finding: finding,
				})
			}
		}
	}

	if len(entries) == 0 {
		return 0
	}

	fmt.Fprintf(r.bw, "## %s\n\n", severityHeadings[severity])

	multiFile := len(result.Files) > 1
	for _, entry := range entries {
		identifier := config.FormatRuleID(r.opts.RuleFormat, entry.finding.RuleID, entry.finding.RuleName)

		fmt.Fprintf(r.bw, "- **%s**: %s (%d:%d)", identifier, entry.finding.Message,
			entry.finding.Line, entry.finding.Column)
		if multiFile {
			fmt.Fprintf(r.bw, " in `%s`", entry.path)
		}
		fmt.Fprintln(r.bw)

		if entry.finding.Suggestion != "" {
			fmt.Fprintf(r.bw, "  - Suggestion: %s\n", entry.finding.Suggestion)
		}
	}
	fmt.Fprintln(r.bw)

	return len(entries)
}

// reportSummary writes an aggregate statistics section.
func (r *MarkdownReporter) reportSummary(stats runner.Stats, total int) {
	fmt.Fprintln(r.bw, "## Summary")
	fmt.Fprintln(r.bw)
	fmt.Fprintf(r.bw, "- Files checked: %d\n", stats.FilesProcessed)
	fmt.Fprintf(r.bw, "- Findings: %d (%d errors, %d warnings, %d info)\n",
		total,
		stats.FindingsBySeverity["error"],
		stats.FindingsBySeverity["warning"],
		stats.FindingsBySeverity["info"],
	)
	if stats.FilesErrored > 0 {
		fmt.Fprintf(r.bw, "- Unreadable files: %d\n", stats.FilesErrored)
	}
}
