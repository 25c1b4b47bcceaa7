package rules

import (
	"strings"

	"github.com/yaklabco/gohtmlint/pkg/config"
	"github.com/yaklabco/gohtmlint/pkg/lint"
)

// MissingAltRule checks that every img carries an alt attribute.
type MissingAltRule struct {
	lint.BaseRule
}

// NewMissingAltRule creates a new missing-alt rule.
func NewMissingAltRule() *MissingAltRule {
	return &MissingAltRule{
		BaseRule: lint.NewBaseRule(
			"UA007",
			"missing-alt",
			"Images must have an alt attribute; alt=\"\" marks a decorative image",
			[]string{"images", "accessibility"},
			true,
			config.SeverityError,
		),
	}
}

// Apply flags img elements with no alt attribute at all. An empty
// alt="" signals decorative intent and is never flagged here.
func (r *MissingAltRule) Apply(ctx *lint.RuleContext) ([]lint.Finding, error) {
	var findings []lint.Finding

	for _, img := range ctx.Index().Elements("img") {
		if ctx.Cancelled() {
			return findings, ctx.Ctx.Err()
		}
		if img.HasAttr("alt") {
			continue
		}

		finding := lint.NewFinding(r.ID(), img,
			"<img> is missing an alt attribute").
			WithSuggestion(`Add alt text; use alt="" for decorative images, meaningful text for informative ones`).
			Build()
		findings = append(findings, finding)
	}

	return findings, nil
}

// DecorativeAltRule hints at images declared decorative via empty alt.
// Opt-in: enable via configuration.
type DecorativeAltRule struct {
	lint.BaseRule
}

// NewDecorativeAltRule creates a new decorative-alt rule.
func NewDecorativeAltRule() *DecorativeAltRule {
	return &DecorativeAltRule{
		BaseRule: lint.NewBaseRule(
			"UA016",
			"decorative-alt",
			"Images with empty alt are treated as decorative; confirm that is intended",
			[]string{"images", "accessibility"},
			false,
			config.SeverityInfo,
		),
	}
}

// Apply flags img elements with a present but empty alt attribute.
func (r *DecorativeAltRule) Apply(ctx *lint.RuleContext) ([]lint.Finding, error) {
	var findings []lint.Finding

	for _, img := range ctx.Index().Elements("img") {
		alt, ok := img.Attr("alt")
		if !ok || strings.TrimSpace(alt) != "" {
			continue
		}

		finding := lint.NewFinding(r.ID(), img,
			`<img> has empty alt=""; ensure this image is purely decorative`).
			WithSuggestion("If the image conveys meaning, provide descriptive alt text").
			Build()
		findings = append(findings, finding)
	}

	return findings, nil
}
