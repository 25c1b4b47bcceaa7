package htmldoc

import "strings"

// Index holds derived, read-only lookup structures built once after
// parsing. These are caches over the tree, not sources of truth:
// rebuilding from the same tree always reproduces the same result.
type Index struct {
	// ByID maps an exact id attribute value to the elements carrying
	// it, in document order. More than one entry means a duplicate.
	ByID map[string][]*Node

	// ByTag maps a lowercase tag name to its elements in document order.
	ByTag map[string][]*Node
}

// BuildIndex derives the id and tag indices from the tree.
func BuildIndex(root *Node) *Index {
	idx := &Index{
		ByID:  make(map[string][]*Node),
		ByTag: make(map[string][]*Node),
	}

	//nolint:errcheck // Walk only returns nil errors in this usage
	Walk(root, func(n *Node) error {
		if n.Kind != NodeElement {
			return nil
		}

		idx.ByTag[n.Tag] = append(idx.ByTag[n.Tag], n)

		if id, ok := n.Attr("id"); ok && strings.TrimSpace(id) != "" {
			idx.ByID[id] = append(idx.ByID[id], n)
		}
		return nil
	})

	return idx
}

// Elements returns the elements with the given tag, in document order.
func (idx *Index) Elements(tag string) []*Node {
	return idx.ByTag[tag]
}

// HasID reports whether any element carries the exact id value.
func (idx *Index) HasID(id string) bool {
	return len(idx.ByID[id]) > 0
}
