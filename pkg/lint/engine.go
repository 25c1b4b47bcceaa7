package lint

import (
	"context"
	"fmt"

	"github.com/yaklabco/gohtmlint/pkg/config"
	"github.com/yaklabco/gohtmlint/pkg/htmldoc"
)

// InternalErrorRuleID identifies findings synthesized when a rule
// implementation fails. A rule fault never aborts the run; it becomes a
// single finding naming the failing rule and the remaining rules still
// execute.
const (
	InternalErrorRuleID   = "UA000"
	InternalErrorRuleName = "internal-rule-error"
)

// FileResult contains the results of auditing a single file.
type FileResult struct {
	// Snapshot is the parsed document.
	Snapshot *htmldoc.FileSnapshot

	// Findings contains all issues found, in deterministic order:
	// severity first, then source position, then rule identifier.
	Findings []Finding

	// RuleErrors contains any errors from rule execution, keyed by rule ID.
	RuleErrors map[string]error
}

// HasIssues returns true if any findings were produced.
func (fr *FileResult) HasIssues() bool {
	return len(fr.Findings) > 0
}

// ErrorCount returns the number of error-severity findings.
func (fr *FileResult) ErrorCount() int {
	count := 0
	for _, f := range fr.Findings {
		if f.Severity == config.SeverityError {
			count++
		}
	}
	return count
}

// Engine coordinates parsing and rule execution for an audit.
type Engine struct {
	// Registry holds all available rules.
	Registry *Registry
}

// NewEngine creates a new Engine with the given registry.
func NewEngine(registry *Registry) *Engine {
	return &Engine{Registry: registry}
}

// AuditFile parses and audits a single document. Parsing is tolerant and
// never fails; the only errors returned are cancellation.
func (e *Engine) AuditFile(
	ctx context.Context,
	path string,
	content []byte,
	cfg *config.Config,
) (*FileResult, error) {
	snapshot := htmldoc.Parse(path, content)

	resolved := ResolveRules(e.Registry, cfg)

	result := &FileResult{
		Snapshot:   snapshot,
		Findings:   nil,
		RuleErrors: make(map[string]error),
	}

	for _, rr := range resolved {
		select {
		case <-ctx.Done():
			return result, fmt.Errorf("audit cancelled: %w", ctx.Err())
		default:
		}

		ruleCtx := NewRuleContext(ctx, snapshot, cfg, rr.Config)
		ruleCtx.Registry = e.Registry

		findings, err := applyRule(rr.Rule, ruleCtx)
		if err != nil {
			result.RuleErrors[rr.Rule.ID()] = err
			result.Findings = append(result.Findings, internalErrorFinding(rr.Rule, path, err))
			continue
		}

		for i := range findings {
			// Apply resolved severity.
			findings[i].Severity = rr.Severity

			if findings[i].FilePath == "" {
				findings[i].FilePath = path
			}
			if findings[i].RuleName == "" {
				findings[i].RuleName = rr.Rule.Name()
			}
		}

		result.Findings = append(result.Findings, findings...)
	}

	SortFindings(result.Findings)

	return result, nil
}

// applyRule executes a rule, converting panics into errors so a faulty
// rule cannot take down the whole run.
func applyRule(rule Rule, ctx *RuleContext) (findings []Finding, err error) {
	defer func() {
		if r := recover(); r != nil {
			findings = nil
			err = fmt.Errorf("rule panicked: %v", r)
		}
	}()

	return rule.Apply(ctx)
}

func internalErrorFinding(rule Rule, path string, err error) Finding {
	return Finding{
		RuleID:   InternalErrorRuleID,
		RuleName: InternalErrorRuleName,
		Message:  fmt.Sprintf("rule %s failed: %v", rule.Name(), err),
		Severity: config.SeverityError,
		FilePath: path,
	}
}
