// Package lint provides the rule engine, findings, and registry for gohtmlint.
package lint

import (
	"github.com/yaklabco/gohtmlint/pkg/config"
	"github.com/yaklabco/gohtmlint/pkg/htmldoc"
)

// Finding represents a single audit issue found in a document.
type Finding struct {
	// RuleID is the identifier of the rule that produced this finding.
	RuleID string

	// RuleName is the human-readable name of the rule (e.g., "missing-alt").
	RuleName string

	// Message is the human-readable description of the issue.
	Message string

	// Severity indicates the importance of the finding.
	Severity config.Severity

	// FilePath is the path to the file containing the issue.
	FilePath string

	// Line is the 1-based line number of the offending markup.
	// Zero when the finding applies to the document as a whole.
	Line int

	// Column is the 1-based column number of the offending markup.
	Column int

	// Path is the element breadcrumb from root to the offending node,
	// e.g. "html > body > img". Empty for document-level findings.
	Path string

	// Suggestion is an optional remediation hint.
	Suggestion string
}

// FindingBuilder helps construct Finding values.
type FindingBuilder struct {
	finding Finding
}

// NewFinding starts building a finding anchored at the given node.
func NewFinding(ruleID string, node *htmldoc.Node, message string) *FindingBuilder {
	var filePath string
	var pos htmldoc.Position
	var path string

	if node != nil {
		pos = node.Position()
		path = htmldoc.Breadcrumb(node)
		if node.File != nil {
			filePath = node.File.Path
		}
	}

	return &FindingBuilder{
		finding: Finding{
			RuleID:   ruleID,
			Message:  message,
			FilePath: filePath,
			Line:     pos.Line,
			Column:   pos.Column,
			Path:     path,
		},
	}
}

// NewFindingAt starts building a finding at an explicit position, for
// document-level issues with no single offending element.
func NewFindingAt(ruleID, filePath string, pos htmldoc.Position, message string) *FindingBuilder {
	return &FindingBuilder{
		finding: Finding{
			RuleID:   ruleID,
			Message:  message,
			FilePath: filePath,
			Line:     pos.Line,
			Column:   pos.Column,
		},
	}
}

// WithSeverity sets the severity.
func (b *FindingBuilder) WithSeverity(s config.Severity) *FindingBuilder {
	b.finding.Severity = s
	return b
}

// WithSuggestion sets a human-readable remediation hint.
func (b *FindingBuilder) WithSuggestion(s string) *FindingBuilder {
	b.finding.Suggestion = s
	return b
}

// WithPath sets the element breadcrumb.
func (b *FindingBuilder) WithPath(p string) *FindingBuilder {
	b.finding.Path = p
	return b
}

// Build returns the constructed Finding.
func (b *FindingBuilder) Build() Finding {
	return b.finding
}
