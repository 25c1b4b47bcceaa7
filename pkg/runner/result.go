package runner

import "github.com/yaklabco/gohtmlint/pkg/lint"

// FileOutcome pairs a processed file with its audit result.
type FileOutcome struct {
	// Path is the file path that was processed.
	Path string

	// Result contains the audit result for this file.
	// May be nil if the file encountered an error during processing.
	Result *lint.FileResult

	// Error is set if the file could not be read or processed.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of files found during discovery.
	FilesDiscovered int

	// FilesProcessed is the number of files successfully processed.
	FilesProcessed int

	// FilesErrored is the number of files that could not be read.
	FilesErrored int

	// FilesWithFindings is the number of files with at least one finding.
	FilesWithFindings int

	// FindingsTotal is the total number of findings across all files.
	FindingsTotal int

	// FindingsBySeverity maps severity levels to counts.
	FindingsBySeverity map[string]int

	// RuleFailures is the number of rule executions that faulted and were
	// surfaced as internal-rule-error findings.
	RuleFailures int
}

// Result is the overall runner result.
type Result struct {
	// Files contains the outcome for each processed file.
	// Files are ordered deterministically (by path).
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats

	// Errors contains any non-file-specific errors encountered.
	Errors []error
}

// HasFailures reports whether any error-severity findings occurred.
func (r *Result) HasFailures() bool {
	if r == nil {
		return false
	}
	return r.Stats.FindingsBySeverity["error"] > 0
}

// HasIssues reports whether any findings were produced.
func (r *Result) HasIssues() bool {
	if r == nil {
		return false
	}
	return r.Stats.FindingsTotal > 0
}

// HasReadErrors reports whether any file could not be read.
func (r *Result) HasReadErrors() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesErrored > 0
}

// newStats creates a new Stats with initialized maps.
func newStats() Stats {
	return Stats{
		FindingsBySeverity: make(map[string]int),
	}
}

// accumulate updates the result with a file outcome.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}

	if outcome.Result == nil {
		return
	}

	r.Stats.FilesProcessed++
	r.Stats.RuleFailures += len(outcome.Result.RuleErrors)

	count := len(outcome.Result.Findings)
	r.Stats.FindingsTotal += count
	if count > 0 {
		r.Stats.FilesWithFindings++
	}

	for _, finding := range outcome.Result.Findings {
		severity := string(finding.Severity)
		if severity == "" {
			severity = "warning"
		}
		r.Stats.FindingsBySeverity[severity]++
	}
}
