package cli

import (
	"errors"

	"github.com/yaklabco/gohtmlint/pkg/runner"
)

// Exit codes for gohtmlint.
const (
	// ExitSuccess indicates successful execution with no issues.
	ExitSuccess = 0

	// ExitAuditErrors indicates the audit completed but found errors.
	ExitAuditErrors = 1

	// ExitAuditWarnings indicates the audit found warnings in strict mode.
	ExitAuditWarnings = 2

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// Sentinel errors used to carry exit status out of command handlers.
var (
	// ErrAuditIssuesFound is returned when error-severity findings exist.
	ErrAuditIssuesFound = errors.New("audit issues found")

	// ErrAuditWarningsFound is returned when warnings exist in strict mode.
	ErrAuditWarningsFound = errors.New("audit warnings found")

	// ErrUnreadableFiles is returned when one or more files could not be read.
	ErrUnreadableFiles = errors.New("unreadable files")

	// ErrInvalidUsage is returned for invalid flag values.
	ErrInvalidUsage = errors.New("invalid usage")

	// ErrConfig is returned for configuration loading failures.
	ErrConfig = errors.New("configuration error")
)

// ExitCodeFromResult determines the exit code based on result and strict mode.
// Unreadable files take precedence over findings so CI surfaces the I/O
// problem rather than a partial report.
func ExitCodeFromResult(result *runner.Result, strict bool) int {
	if result == nil {
		return ExitSuccess
	}

	if result.HasReadErrors() {
		return ExitIOError
	}

	if result.Stats.FindingsBySeverity["error"] > 0 {
		return ExitAuditErrors
	}

	if strict && result.Stats.FindingsBySeverity["warning"] > 0 {
		return ExitAuditWarnings
	}

	return ExitSuccess
}

// ExitCodeForError maps a command error to a process exit code.
func ExitCodeForError(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrAuditIssuesFound):
		return ExitAuditErrors
	case errors.Is(err, ErrAuditWarningsFound):
		return ExitAuditWarnings
	case errors.Is(err, ErrUnreadableFiles):
		return ExitIOError
	case errors.Is(err, ErrInvalidUsage):
		return ExitInvalidUsage
	case errors.Is(err, ErrConfig):
		return ExitConfigError
	default:
		return ExitInternalError
	}
}
