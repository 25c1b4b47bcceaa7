package lint

import (
	"strings"

	"github.com/yaklabco/gohtmlint/pkg/htmldoc"
)

// headingTags in level order; index+1 is the heading level.
//
//nolint:gochecknoglobals // Read-only lookup table.
var headingTags = []string{"h1", "h2", "h3", "h4", "h5", "h6"}

// Headings returns all h1..h6 elements in document order.
func Headings(root *htmldoc.Node) []*htmldoc.Node {
	return htmldoc.FindAll(root, func(n *htmldoc.Node) bool {
		return HeadingLevel(n) > 0
	})
}

// HeadingLevel returns the level for an h1..h6 element, or 0 otherwise.
func HeadingLevel(n *htmldoc.Node) int {
	if n == nil || n.Kind != htmldoc.NodeElement {
		return 0
	}
	for i, tag := range headingTags {
		if n.Tag == tag {
			return i + 1
		}
	}
	return 0
}

// CollapseWhitespace trims s and folds internal whitespace runs into
// single spaces. Whitespace-only input collapses to "".
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// AccessibleName computes the short text by which an interactive element
// is identified to assistive technology: the element's collapsed text
// content (including descendant text), else its aria-label, else its
// title attribute. Returns "" when all three are empty.
func AccessibleName(n *htmldoc.Node) string {
	if name := CollapseWhitespace(n.TextContent()); name != "" {
		return name
	}
	if label := CollapseWhitespace(n.AttrValue("aria-label")); label != "" {
		return label
	}
	return CollapseWhitespace(n.AttrValue("title"))
}

// InsideLabel reports whether n is a descendant of a label element.
func InsideLabel(n *htmldoc.Node) bool {
	return n.HasAncestor("label")
}
