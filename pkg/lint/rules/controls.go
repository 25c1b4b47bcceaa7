package rules

import (
	"fmt"
	"strings"

	"github.com/yaklabco/gohtmlint/pkg/config"
	"github.com/yaklabco/gohtmlint/pkg/htmldoc"
	"github.com/yaklabco/gohtmlint/pkg/lint"
)

// EmptyControlRule checks that links and buttons have an accessible name.
type EmptyControlRule struct {
	lint.BaseRule
}

// NewEmptyControlRule creates a new empty-control rule.
func NewEmptyControlRule() *EmptyControlRule {
	return &EmptyControlRule{
		BaseRule: lint.NewBaseRule(
			"UA006",
			"empty-control",
			"Links and buttons must have a discernible accessible name",
			[]string{"interaction", "accessibility"},
			true,
			config.SeverityError,
		),
	}
}

// Apply flags every a element with an href, and every button, whose
// computed accessible name (descendant text, else aria-label, else
// title) is empty. Whitespace-only text does not count as a name.
func (r *EmptyControlRule) Apply(ctx *lint.RuleContext) ([]lint.Finding, error) {
	var findings []lint.Finding
	idx := ctx.Index()

	for _, anchor := range idx.Elements("a") {
		if ctx.Cancelled() {
			return findings, ctx.Ctx.Err()
		}
		if !anchor.HasAttr("href") || lint.AccessibleName(anchor) != "" {
			continue
		}
		findings = append(findings, r.emptyFinding(anchor, "link"))
	}

	for _, button := range idx.Elements("button") {
		if lint.AccessibleName(button) != "" {
			continue
		}
		findings = append(findings, r.emptyFinding(button, "button"))
	}

	lint.SortFindings(findings)

	return findings, nil
}

func (r *EmptyControlRule) emptyFinding(node *htmldoc.Node, kind string) lint.Finding {
	return lint.NewFinding(r.ID(), node,
		fmt.Sprintf("%s has no discernible text (empty %s)", kind, kind)).
		WithSuggestion(fmt.Sprintf("Add visible %s text or an aria-label; icon-only controls require aria-label", kind)).
		Build()
}

// AnchorNoHrefRule checks for anchors used as actions instead of links.
// Opt-in: enable via configuration.
type AnchorNoHrefRule struct {
	lint.BaseRule
}

// NewAnchorNoHrefRule creates a new anchor-no-href rule.
func NewAnchorNoHrefRule() *AnchorNoHrefRule {
	return &AnchorNoHrefRule{
		BaseRule: lint.NewBaseRule(
			"UA012",
			"anchor-no-href",
			"Anchors without an href are not keyboard reachable",
			[]string{"interaction"},
			false,
			config.SeverityWarning,
		),
	}
}

// Apply flags a elements whose href is absent or blank.
func (r *AnchorNoHrefRule) Apply(ctx *lint.RuleContext) ([]lint.Finding, error) {
	var findings []lint.Finding

	for _, anchor := range ctx.Index().Elements("a") {
		if strings.TrimSpace(anchor.AttrValue("href")) != "" {
			continue
		}

		finding := lint.NewFinding(r.ID(), anchor,
			"anchor <a> without href found").
			WithSuggestion("Use <button> for actions, or add a valid href for navigation links").
			Build()
		findings = append(findings, finding)
	}

	return findings, nil
}

// SkipLinkRule checks for a "skip to content" link for keyboard users.
// Opt-in: enable via configuration.
type SkipLinkRule struct {
	lint.BaseRule
}

// NewSkipLinkRule creates a new missing-skip-link rule.
func NewSkipLinkRule() *SkipLinkRule {
	return &SkipLinkRule{
		BaseRule: lint.NewBaseRule(
			"UA013",
			"missing-skip-link",
			"Content-heavy pages should offer a skip-to-content link",
			[]string{"interaction", "accessibility"},
			false,
			config.SeverityInfo,
		),
	}
}

// Apply flags documents with no fragment link whose name mentions "skip".
func (r *SkipLinkRule) Apply(ctx *lint.RuleContext) ([]lint.Finding, error) {
	for _, anchor := range ctx.Index().Elements("a") {
		if !strings.HasPrefix(anchor.AttrValue("href"), "#") {
			continue
		}
		if strings.Contains(strings.ToLower(lint.AccessibleName(anchor)), "skip") {
			return nil, nil
		}
	}

	finding := lint.NewFindingAt(r.ID(), ctx.File.Path, docStart,
		"no obvious skip-to-content link detected").
		WithSuggestion("Consider a visually-hidden skip link for keyboard users").
		Build()
	return []lint.Finding{finding}, nil
}
