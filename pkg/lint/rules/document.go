package rules

import (
	"strings"

	"github.com/yaklabco/gohtmlint/pkg/config"
	"github.com/yaklabco/gohtmlint/pkg/htmldoc"
	"github.com/yaklabco/gohtmlint/pkg/lint"
)

// docStart anchors document-level findings that have no single
// offending element.
//
//nolint:gochecknoglobals // Read-only value.
var docStart = htmldoc.Position{Line: 1, Column: 1}

// MissingLangRule checks that the root html element declares a language.
type MissingLangRule struct {
	lint.BaseRule
}

// NewMissingLangRule creates a new missing-lang rule.
func NewMissingLangRule() *MissingLangRule {
	return &MissingLangRule{
		BaseRule: lint.NewBaseRule(
			"UA001",
			"missing-lang",
			"The html root element should declare a non-empty lang attribute",
			[]string{"document", "accessibility"},
			true,
			config.SeverityError,
		),
	}
}

// Apply flags a missing html root or a missing/empty lang attribute.
func (r *MissingLangRule) Apply(ctx *lint.RuleContext) ([]lint.Finding, error) {
	htmls := ctx.Index().Elements("html")
	if len(htmls) == 0 {
		finding := lint.NewFindingAt(r.ID(), ctx.File.Path, docStart,
			"document has no <html> root element").
			WithSuggestion(`Add a proper <!doctype html> and <html lang="..."> root`).
			Build()
		return []lint.Finding{finding}, nil
	}

	root := htmls[0]
	if strings.TrimSpace(root.AttrValue("lang")) != "" {
		return nil, nil
	}

	finding := lint.NewFinding(r.ID(), root,
		"missing lang attribute on <html> element").
		WithSuggestion(`Add a language, e.g. <html lang="en">, to improve screen reader behavior`).
		Build()
	return []lint.Finding{finding}, nil
}

// MissingTitleRule checks for a title element with text content.
type MissingTitleRule struct {
	lint.BaseRule
}

// NewMissingTitleRule creates a new missing-title rule.
func NewMissingTitleRule() *MissingTitleRule {
	return &MissingTitleRule{
		BaseRule: lint.NewBaseRule(
			"UA002",
			"missing-title",
			"The document should have a title element with non-empty text",
			[]string{"document", "content"},
			true,
			config.SeverityError,
		),
	}
}

// Apply flags documents with no title or only empty titles.
func (r *MissingTitleRule) Apply(ctx *lint.RuleContext) ([]lint.Finding, error) {
	titles := ctx.Index().Elements("title")
	for _, title := range titles {
		if lint.CollapseWhitespace(title.TextContent()) != "" {
			return nil, nil
		}
	}

	builder := lint.NewFindingAt(r.ID(), ctx.File.Path, docStart,
		"missing or empty <title> element")
	if len(titles) > 0 {
		builder = lint.NewFinding(r.ID(), titles[0],
			"missing or empty <title> element")
	}

	finding := builder.
		WithSuggestion("Add a descriptive page title; it helps tabs and assistive tech").
		Build()
	return []lint.Finding{finding}, nil
}

// MissingViewportRule checks for a viewport meta element.
type MissingViewportRule struct {
	lint.BaseRule
}

// NewMissingViewportRule creates a new missing-viewport rule.
func NewMissingViewportRule() *MissingViewportRule {
	return &MissingViewportRule{
		BaseRule: lint.NewBaseRule(
			"UA003",
			"missing-viewport",
			"The document should have a meta viewport element for mobile rendering",
			[]string{"document", "responsive"},
			true,
			config.SeverityWarning,
		),
	}
}

// Apply flags documents without a meta name="viewport" carrying content.
func (r *MissingViewportRule) Apply(ctx *lint.RuleContext) ([]lint.Finding, error) {
	for _, meta := range ctx.Index().Elements("meta") {
		if !strings.EqualFold(strings.TrimSpace(meta.AttrValue("name")), "viewport") {
			continue
		}
		if lint.CollapseWhitespace(meta.AttrValue("content")) != "" {
			return nil, nil
		}
	}

	finding := lint.NewFindingAt(r.ID(), ctx.File.Path, docStart,
		`missing <meta name="viewport"> element`).
		WithSuggestion(`Add: <meta name="viewport" content="width=device-width, initial-scale=1">`).
		Build()
	return []lint.Finding{finding}, nil
}

// MissingMainRule checks for a main landmark element.
type MissingMainRule struct {
	lint.BaseRule
}

// NewMissingMainRule creates a new missing-main rule.
func NewMissingMainRule() *MissingMainRule {
	return &MissingMainRule{
		BaseRule: lint.NewBaseRule(
			"UA004",
			"missing-main",
			"The document should have a main landmark for page wayfinding",
			[]string{"document", "semantics"},
			true,
			config.SeverityWarning,
		),
	}
}

// Apply flags documents with no main element anywhere.
func (r *MissingMainRule) Apply(ctx *lint.RuleContext) ([]lint.Finding, error) {
	if len(ctx.Index().Elements("main")) > 0 {
		return nil, nil
	}

	finding := lint.NewFindingAt(r.ID(), ctx.File.Path, docStart,
		"no <main> landmark found").
		WithSuggestion("Wrap primary page content in <main> to improve navigation for assistive tech").
		Build()
	return []lint.Finding{finding}, nil
}
