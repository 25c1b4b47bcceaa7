package htmldoc

import "strings"

// Breadcrumb returns the chain of tag names from the document root down
// to n, e.g. "html > body > img". Text nodes report their parent
// element's breadcrumb. Returns "" for the document root itself.
func Breadcrumb(n *Node) string {
	if n == nil {
		return ""
	}
	if n.Kind == NodeText {
		n = n.Parent
	}

	var tags []string
	for ; n != nil && n.Kind == NodeElement; n = n.Parent {
		tags = append(tags, n.Tag)
	}

	// Reverse into root-first order.
	for i, j := 0, len(tags)-1; i < j; i, j = i+1, j-1 {
		tags[i], tags[j] = tags[j], tags[i]
	}

	return strings.Join(tags, " > ")
}
