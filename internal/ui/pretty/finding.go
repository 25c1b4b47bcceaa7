package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/gohtmlint/pkg/config"
	"github.com/yaklabco/gohtmlint/pkg/lint"
)

// FormatFinding formats a single finding for terminal output.
// Uses name format by default.
func (s *Styles) FormatFinding(finding *lint.Finding, showContext bool, sourceLine string) string {
	return s.FormatFindingWithFormat(finding, showContext, sourceLine, config.RuleFormatName)
}

// FormatFindingWithFormat formats a finding with configurable rule identifier format.
func (s *Styles) FormatFindingWithFormat(finding *lint.Finding, showContext bool, sourceLine string, ruleFormat config.RuleFormat) string {
	var builder strings.Builder

	// Location: path:line:col
	location := fmt.Sprintf("%s:%d:%d",
		s.FilePath.Render(finding.FilePath),
		finding.Line,
		finding.Column,
	)

	severity := s.FormatSeverity(finding.Severity)

	ruleIdentifier := config.FormatRuleID(ruleFormat, finding.RuleID, finding.RuleName)
	ruleDisplay := s.RuleID.Render("(" + ruleIdentifier + ")")

	// Main line: location  severity  message  (rule-id)
	builder.WriteString(fmt.Sprintf("  %s  %s  %s  %s\n",
		location,
		severity,
		s.Message.Render(finding.Message),
		ruleDisplay,
	))

	// Element breadcrumb
	if finding.Path != "" {
		builder.WriteString("    " + s.Breadcrumb.Render("at "+finding.Path) + "\n")
	}

	// Source context
	if showContext && sourceLine != "" {
		builder.WriteString(s.FormatSourceContext(sourceLine, finding.Column))
	}

	// Suggestion
	if finding.Suggestion != "" {
		builder.WriteString("    " + s.Dim.Render("Suggestion:") + " " +
			s.Suggestion.Render(finding.Suggestion) + "\n")
	}

	return builder.String()
}

// FormatSeverity returns a styled severity string.
func (s *Styles) FormatSeverity(sev config.Severity) string {
	switch sev {
	case config.SeverityError:
		return s.Error.Render("error")
	case config.SeverityWarning:
		return s.Warning.Render("warning")
	case config.SeverityInfo:
		return s.Info.Render("info")
	default:
		return string(sev)
	}
}

// FormatSourceContext formats the source line with a caret marker.
func (s *Styles) FormatSourceContext(line string, column int) string {
	var builder strings.Builder

	// Indent to align with finding output
	const indent = "        "

	builder.WriteString(indent + s.SourceLine.Render(line) + "\n")

	if column > 0 {
		padding := indent + strings.Repeat(" ", column-1)
		builder.WriteString(padding + s.Caret.Render("^") + "\n")
	}

	return builder.String()
}

// FormatFileHeader formats a file header for grouped output.
func (s *Styles) FormatFileHeader(path string, findingCount int) string {
	header := s.FilePath.Render(path)
	if findingCount > 0 {
		header += s.Dim.Render(fmt.Sprintf(" (%d findings)", findingCount))
	}
	return header
}
