package lint

import "github.com/yaklabco/gohtmlint/pkg/config"

// Rule defines the interface that all audit rules must implement.
type Rule interface {
	// ID returns the unique identifier for this rule (e.g., "UA007").
	ID() string

	// Name returns the human-readable name of the rule (e.g., "missing-alt").
	Name() string

	// Description returns a detailed description of what the rule checks.
	Description() string

	// DefaultEnabled returns whether the rule is enabled by default.
	DefaultEnabled() bool

	// DefaultSeverity returns the default severity for this rule.
	DefaultSeverity() config.Severity

	// Tags returns categorization tags for this rule (e.g., ["forms", "accessibility"]).
	Tags() []string

	// Apply executes the rule against the given context and returns findings.
	//
	// Rules must:
	//   - Be pure functions of the document model and its indices.
	//   - Not depend on other rules or on execution order.
	//   - Return error only for internal failures, not findings.
	Apply(ctx *RuleContext) ([]Finding, error)
}
