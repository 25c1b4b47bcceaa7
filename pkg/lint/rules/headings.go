package rules

import (
	"fmt"

	"github.com/yaklabco/gohtmlint/pkg/config"
	"github.com/yaklabco/gohtmlint/pkg/lint"
)

// HeadingSkipRule checks that heading levels never jump by more than one.
type HeadingSkipRule struct {
	lint.BaseRule
}

// NewHeadingSkipRule creates a new heading-skip rule.
func NewHeadingSkipRule() *HeadingSkipRule {
	return &HeadingSkipRule{
		BaseRule: lint.NewBaseRule(
			"UA009",
			"heading-skip",
			"Heading levels should only increase by one level at a time",
			[]string{"headings", "structure"},
			true,
			config.SeverityWarning,
		),
	}
}

// Apply walks headings in document order, tracking the deepest level seen
// so far. A heading more than one level below that watermark is flagged;
// level decreases never are.
func (r *HeadingSkipRule) Apply(ctx *lint.RuleContext) ([]lint.Finding, error) {
	var findings []lint.Finding
	highest := 0

	for _, heading := range lint.Headings(ctx.Root) {
		if ctx.Cancelled() {
			return findings, ctx.Ctx.Err()
		}

		level := lint.HeadingLevel(heading)

		// The first heading can be any level.
		if highest > 0 && level > highest+1 {
			finding := lint.NewFinding(r.ID(), heading,
				fmt.Sprintf("heading level jumps from h%d to h%d", highest, level)).
				WithSuggestion(fmt.Sprintf("Use h%d instead; skipped levels confuse outline navigation", highest+1)).
				Build()
			findings = append(findings, finding)
		}

		if level > highest {
			highest = level
		}
	}

	return findings, nil
}

// MissingH1Rule checks that the document has at least one h1.
// Opt-in: enable via configuration.
type MissingH1Rule struct {
	lint.BaseRule
}

// NewMissingH1Rule creates a new missing-h1 rule.
func NewMissingH1Rule() *MissingH1Rule {
	return &MissingH1Rule{
		BaseRule: lint.NewBaseRule(
			"UA010",
			"missing-h1",
			"The document should have an h1 describing the page",
			[]string{"headings", "structure"},
			false,
			config.SeverityWarning,
		),
	}
}

// Apply flags documents with no h1 element.
func (r *MissingH1Rule) Apply(ctx *lint.RuleContext) ([]lint.Finding, error) {
	if len(ctx.Index().Elements("h1")) > 0 {
		return nil, nil
	}

	finding := lint.NewFindingAt(r.ID(), ctx.File.Path, docStart,
		"no <h1> found").
		WithSuggestion("Add a single <h1> that describes the page for a clear hierarchy").
		Build()
	return []lint.Finding{finding}, nil
}

// MultipleH1Rule checks that the document has at most one h1.
// Opt-in: enable via configuration.
type MultipleH1Rule struct {
	lint.BaseRule
}

// NewMultipleH1Rule creates a new multiple-h1 rule.
func NewMultipleH1Rule() *MultipleH1Rule {
	return &MultipleH1Rule{
		BaseRule: lint.NewBaseRule(
			"UA011",
			"multiple-h1",
			"Multiple h1 elements in the same document",
			[]string{"headings", "structure"},
			false,
			config.SeverityInfo,
		),
	}
}

// Apply flags every h1 after the first.
func (r *MultipleH1Rule) Apply(ctx *lint.RuleContext) ([]lint.Finding, error) {
	h1s := ctx.Index().Elements("h1")
	if len(h1s) < 2 {
		return nil, nil
	}

	var findings []lint.Finding
	for i := 1; i < len(h1s); i++ {
		finding := lint.NewFinding(r.ID(), h1s[i],
			fmt.Sprintf("multiple <h1> elements found (this is h1 #%d)", i+1)).
			WithSuggestion("Often best to keep one primary <h1>; use h2 or lower for subsequent headings").
			Build()
		findings = append(findings, finding)
	}
	return findings, nil
}
