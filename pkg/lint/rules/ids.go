package rules

import (
	"fmt"

	"github.com/yaklabco/gohtmlint/pkg/config"
	"github.com/yaklabco/gohtmlint/pkg/lint"
)

// DuplicateIDRule checks that id attribute values are unique.
type DuplicateIDRule struct {
	lint.BaseRule
}

// NewDuplicateIDRule creates a new duplicate-id rule.
func NewDuplicateIDRule() *DuplicateIDRule {
	return &DuplicateIDRule{
		BaseRule: lint.NewBaseRule(
			"UA008",
			"duplicate-id",
			"id attribute values must be unique within the document",
			[]string{"semantics"},
			true,
			config.SeverityError,
		),
	}
}

// Apply flags the second and subsequent occurrences of every id value
// used more than once. N elements sharing an id produce N-1 findings.
// Comparison is exact-string and case-sensitive.
func (r *DuplicateIDRule) Apply(ctx *lint.RuleContext) ([]lint.Finding, error) {
	var findings []lint.Finding

	for id, nodes := range ctx.Index().ByID {
		if len(nodes) < 2 {
			continue
		}
		for _, node := range nodes[1:] {
			finding := lint.NewFinding(r.ID(), node,
				fmt.Sprintf("duplicate id %q detected", id)).
				WithSuggestion("IDs must be unique; rename one of the elements or remove the duplicate id").
				Build()
			findings = append(findings, finding)
		}
	}

	// Map iteration order is random; restore document order.
	lint.SortFindings(findings)

	return findings, nil
}
