package rules

import (
	"fmt"
	"strings"

	"github.com/yaklabco/gohtmlint/pkg/config"
	"github.com/yaklabco/gohtmlint/pkg/htmldoc"
	"github.com/yaklabco/gohtmlint/pkg/lint"
)

// Input types that are not user-labellable and so are exempt from the
// label requirement.
var nonLabelableInputTypes = map[string]bool{
	"hidden": true,
	"submit": true,
	"reset":  true,
	"button": true,
	"image":  true,
}

// MissingLabelRule checks that form controls have an associated label.
type MissingLabelRule struct {
	lint.BaseRule
}

// NewMissingLabelRule creates a new missing-label rule.
func NewMissingLabelRule() *MissingLabelRule {
	return &MissingLabelRule{
		BaseRule: lint.NewBaseRule(
			"UA005",
			"missing-label",
			"Form controls must have a programmatically associated label",
			[]string{"forms", "accessibility"},
			true,
			config.SeverityError,
		),
	}
}

// Apply flags input, select, and textarea elements with no label
// association. A control counts as labelled when any of these hold:
// a non-blank aria-label, an aria-labelledby token that resolves to an
// element id in the same document, an id referenced by some label's
// for attribute, or a label ancestor (implicit association).
func (r *MissingLabelRule) Apply(ctx *lint.RuleContext) ([]lint.Finding, error) {
	idx := ctx.Index()
	labelFor := labelForSet(idx)

	var findings []lint.Finding
	for _, tag := range []string{"input", "select", "textarea"} {
		if ctx.Cancelled() {
			return findings, ctx.Ctx.Err()
		}
		for _, control := range idx.Elements(tag) {
			if tag == "input" && nonLabelableInputTypes[strings.ToLower(control.AttrValue("type"))] {
				continue
			}
			if isLabelled(control, idx, labelFor) {
				continue
			}

			finding := lint.NewFinding(r.ID(), control,
				fmt.Sprintf("form control <%s> has no associated label", tag)).
				WithSuggestion("Associate a <label for=...>, wrap the control in a <label>, or add aria-label").
				Build()
			findings = append(findings, finding)
		}
	}

	lint.SortFindings(findings)

	return findings, nil
}

// labelForSet collects the for attribute targets of every label element.
func labelForSet(idx *htmldoc.Index) map[string]bool {
	targets := make(map[string]bool)
	for _, label := range idx.Elements("label") {
		if id := label.AttrValue("for"); id != "" {
			targets[id] = true
		}
	}
	return targets
}

func isLabelled(control *htmldoc.Node, idx *htmldoc.Index, labelFor map[string]bool) bool {
	if lint.CollapseWhitespace(control.AttrValue("aria-label")) != "" {
		return true
	}
	for _, token := range strings.Fields(control.AttrValue("aria-labelledby")) {
		if idx.HasID(token) {
			return true
		}
	}
	if id := control.AttrValue("id"); id != "" && labelFor[id] {
		return true
	}
	return lint.InsideLabel(control)
}

// ButtonTypeRule checks that buttons inside forms declare an explicit
// type. Opt-in: enable via configuration.
type ButtonTypeRule struct {
	lint.BaseRule
}

// NewButtonTypeRule creates a new button-missing-type rule.
func NewButtonTypeRule() *ButtonTypeRule {
	return &ButtonTypeRule{
		BaseRule: lint.NewBaseRule(
			"UA014",
			"button-missing-type",
			"Buttons in forms default to submit, which is rarely intended",
			[]string{"forms"},
			false,
			config.SeverityInfo,
		),
	}
}

// Apply flags button elements with a form ancestor and no type attribute.
func (r *ButtonTypeRule) Apply(ctx *lint.RuleContext) ([]lint.Finding, error) {
	var findings []lint.Finding

	for _, button := range ctx.Index().Elements("button") {
		if button.HasAttr("type") || !button.HasAncestor("form") {
			continue
		}

		finding := lint.NewFinding(r.ID(), button,
			"button inside form has no explicit type").
			WithSuggestion(`Add type="button" or type="submit" to make the behaviour explicit`).
			Build()
		findings = append(findings, finding)
	}

	return findings, nil
}

// PlaceholderNoLabelRule checks for controls that rely on a placeholder
// as their only label. Opt-in: enable via configuration.
type PlaceholderNoLabelRule struct {
	lint.BaseRule
}

// NewPlaceholderNoLabelRule creates a new placeholder-no-label rule.
func NewPlaceholderNoLabelRule() *PlaceholderNoLabelRule {
	return &PlaceholderNoLabelRule{
		BaseRule: lint.NewBaseRule(
			"UA015",
			"placeholder-no-label",
			"Placeholders disappear on input and are not a label substitute",
			[]string{"forms", "accessibility"},
			false,
			config.SeverityWarning,
		),
	}
}

// Apply flags input and textarea elements that carry a placeholder but
// have no label element association, explicit or implicit. aria
// attributes are deliberately ignored here: a visible label is still
// missing even when a screen-reader name exists.
func (r *PlaceholderNoLabelRule) Apply(ctx *lint.RuleContext) ([]lint.Finding, error) {
	idx := ctx.Index()
	labelFor := labelForSet(idx)

	var findings []lint.Finding
	for _, tag := range []string{"input", "textarea"} {
		for _, control := range idx.Elements(tag) {
			if strings.TrimSpace(control.AttrValue("placeholder")) == "" {
				continue
			}
			if id := control.AttrValue("id"); id != "" && labelFor[id] {
				continue
			}
			if lint.InsideLabel(control) {
				continue
			}

			finding := lint.NewFinding(r.ID(), control,
				fmt.Sprintf("<%s> uses a placeholder without a visible label", tag)).
				WithSuggestion("Pair the control with a visible <label>; keep the placeholder as a hint only").
				Build()
			findings = append(findings, finding)
		}
	}

	lint.SortFindings(findings)

	return findings, nil
}
