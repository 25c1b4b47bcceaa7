package htmldoc

// NewDocument creates a new document root node.
func NewDocument() *Node {
	return &Node{Kind: NodeDocument}
}

// NewElement creates an element node with the given lowercase tag.
func NewElement(tag string) *Node {
	return &Node{Kind: NodeElement, Tag: tag}
}

// NewText creates a text node with decoded character data.
func NewText(data string) *Node {
	return &Node{Kind: NodeText, Data: data}
}

// AppendChild appends a child node to a parent.
// It maintains the parent/child/sibling relationships correctly.
func AppendChild(parent, child *Node) {
	if parent == nil || child == nil {
		return
	}

	child.Parent = parent
	child.Prev = parent.LastChild
	child.Next = nil

	if parent.LastChild != nil {
		parent.LastChild.Next = child
	} else {
		parent.FirstChild = child
	}

	parent.LastChild = child
}
