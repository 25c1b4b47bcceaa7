package htmldoc

// Position represents a 1-based line and column in a file.
type Position struct {
	Line   int
	Column int
}

// IsValid returns true if this position has valid (positive) values.
func (p Position) IsValid() bool {
	return p.Line > 0 && p.Column > 0
}

// Position returns the 1-based line/column where this node begins.
// Returns an invalid position for nodes without an associated file,
// such as the synthetic document root.
func (n *Node) Position() Position {
	if n == nil || n.File == nil {
		return Position{}
	}
	line, col := n.File.LineAt(n.StartOffset)
	return Position{Line: line, Column: col}
}
