package configloader

import (
	"fmt"
	"strings"

	"github.com/yaklabco/gohtmlint/pkg/config"
)

// ValidationError describes a single invalid configuration value.
type ValidationError struct {
	Field    string
	Value    string
	Message  string
	FilePath string
	Line     int
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string
	if e.FilePath != "" {
		if e.Line > 0 {
			parts = append(parts, fmt.Sprintf("%s:%d", e.FilePath, e.Line))
		} else {
			parts = append(parts, e.FilePath)
		}
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	parts = append(parts, e.Message)
	return strings.Join(parts, ": ")
}

// ValidationWarning describes a suspicious but non-fatal configuration value.
type ValidationWarning struct {
	Field   string
	Message string
}

// ValidationResult collects validation errors and warnings for a config.
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationWarning
}

// Valid reports whether the configuration passed validation.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// HasWarnings reports whether any warnings were recorded.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// AllMessages returns every error and warning message, errors first.
func (r *ValidationResult) AllMessages() []string {
	messages := make([]string, 0, len(r.Errors)+len(r.Warnings))
	for i := range r.Errors {
		messages = append(messages, r.Errors[i].Error())
	}
	for _, w := range r.Warnings {
		messages = append(messages, w.Message)
	}
	return messages
}

func (r *ValidationResult) addError(field, value, message string) {
	r.Errors = append(r.Errors, ValidationError{Field: field, Value: value, Message: message})
}

//nolint:gochecknoglobals // Read-only lookup tables.
var (
	knownSeverities = map[string]bool{
		string(config.SeverityError):   true,
		string(config.SeverityWarning): true,
		string(config.SeverityInfo):    true,
	}

	knownFormats = map[config.OutputFormat]bool{
		config.FormatMarkdown: true,
		config.FormatJSON:     true,
		config.FormatText:     true,
	}

	knownRuleFormats = map[config.RuleFormat]bool{
		config.RuleFormatName:     true,
		config.RuleFormatID:       true,
		config.RuleFormatCombined: true,
	}
)

// Validate checks a merged configuration for invalid values.
func Validate(cfg *config.Config) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	if cfg.SeverityDefault != "" && !knownSeverities[cfg.SeverityDefault] {
		result.addError("severity_default", cfg.SeverityDefault,
			fmt.Sprintf("unknown severity %q (expected error, warning, or info)", cfg.SeverityDefault))
	}

	for key, rc := range cfg.Rules {
		if rc.Severity == nil || *rc.Severity == "" {
			continue
		}
		if !knownSeverities[*rc.Severity] {
			result.addError("rules."+key+".severity", *rc.Severity,
				fmt.Sprintf("unknown severity %q (expected error, warning, or info)", *rc.Severity))
		}
	}

	if cfg.Format != "" && !knownFormats[cfg.Format] {
		result.addError("format", string(cfg.Format),
			fmt.Sprintf("unknown format %q (expected md, json, or text)", cfg.Format))
	}

	if cfg.RuleFormat != "" && !knownRuleFormats[cfg.RuleFormat] {
		result.addError("rule_format", string(cfg.RuleFormat),
			fmt.Sprintf("unknown rule format %q (expected name, id, or combined)", cfg.RuleFormat))
	}

	if cfg.Jobs < 0 {
		result.addError("jobs", fmt.Sprintf("%d", cfg.Jobs), "jobs must be zero or positive")
	}

	return result
}
