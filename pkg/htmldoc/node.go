package htmldoc

import "strings"

// NodeKind classifies the type of a document node.
type NodeKind uint8

// Node kinds. The document root is synthetic and never corresponds to
// markup; elements and text nodes carry source offsets.
const (
	NodeDocument NodeKind = iota
	NodeElement
	NodeText
)

// Attr is a single element attribute. Names are normalized lowercase;
// values keep their original case (id/for comparisons are case-sensitive).
type Attr struct {
	Name  string
	Value string
}

// Node represents a single node in the document tree.
// Nodes form a tree with parent/child/sibling relationships. The parent
// pointer is a non-owning back-reference used for ancestor queries;
// ownership flows from parent to child through the child list.
type Node struct {
	// Kind identifies what type of node this is.
	Kind NodeKind

	// Tag is the lowercase tag name. Empty for text and document nodes.
	Tag string

	// Attrs holds the element attributes in source order. Names are
	// unique: a repeated attribute overwrites the earlier occurrence.
	Attrs []Attr

	// Data is the decoded character content for text nodes.
	Data string

	// Tree structure pointers.
	Parent     *Node
	FirstChild *Node
	LastChild  *Node
	Prev       *Node
	Next       *Node

	// StartOffset and EndOffset delimit the node's originating bytes.
	// For elements this covers the start tag only.
	StartOffset int
	EndOffset   int

	// File is a back-reference to the containing FileSnapshot.
	File *FileSnapshot
}

// IsElement returns true if this is an element node.
func (n *Node) IsElement() bool {
	return n.Kind == NodeElement
}

// IsText returns true if this is a text node.
func (n *Node) IsText() bool {
	return n.Kind == NodeText
}

// Attr returns the value of the named attribute and whether it is present.
// The lookup name must be lowercase; attribute names are normalized
// during parsing.
func (n *Node) Attr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// AttrValue returns the value of the named attribute, or "" if absent.
func (n *Node) AttrValue(name string) string {
	v, _ := n.Attr(name)
	return v
}

// HasAttr returns true if the named attribute is present, even with an
// empty value.
func (n *Node) HasAttr(name string) bool {
	_, ok := n.Attr(name)
	return ok
}

// setAttr adds or replaces an attribute. Later occurrences win, which
// matches the parser's duplicate-attribute policy.
func (n *Node) setAttr(name, value string) {
	for i := range n.Attrs {
		if n.Attrs[i].Name == name {
			n.Attrs[i].Value = value
			return
		}
	}
	n.Attrs = append(n.Attrs, Attr{Name: name, Value: value})
}

// HasChildren returns true if this node has any children.
func (n *Node) HasChildren() bool {
	return n.FirstChild != nil
}

// Children returns a slice of all direct children.
func (n *Node) Children() []*Node {
	var children []*Node
	for child := n.FirstChild; child != nil; child = child.Next {
		children = append(children, child)
	}
	return children
}

// HasAncestor reports whether any ancestor element has the given tag.
func (n *Node) HasAncestor(tag string) bool {
	for p := n.Parent; p != nil; p = p.Parent {
		if p.Kind == NodeElement && p.Tag == tag {
			return true
		}
	}
	return false
}

// TextContent returns the concatenated text of this node and all its
// descendants, in document order.
func (n *Node) TextContent() string {
	var sb strings.Builder
	n.appendText(&sb)
	return sb.String()
}

func (n *Node) appendText(sb *strings.Builder) {
	if n.Kind == NodeText {
		sb.WriteString(n.Data)
		return
	}
	for child := n.FirstChild; child != nil; child = child.Next {
		child.appendText(sb)
	}
}
