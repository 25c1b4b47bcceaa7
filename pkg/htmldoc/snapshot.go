// Package htmldoc provides the core HTML document model for gohtmlint.
// It defines an immutable view of an HTML file including:
// - FileSnapshot: the complete file representation
// - Node tree: elements and text with source offsets
// - Line index: byte offset to line/column mapping
//
// The parser in this package is deliberately tolerant: malformed markup
// never produces an error, only a best-effort tree. The auditor's job is
// to find UI defects, not to validate syntax.
package htmldoc

// FileSnapshot is an immutable view of an HTML file at a specific time.
// It holds the raw content, line metadata, and the parsed node tree.
type FileSnapshot struct {
	// Path is the file path (may be empty for in-memory content).
	Path string

	// Content is the full file bytes.
	Content []byte

	// Lines contains metadata for each line in the file.
	Lines []LineInfo

	// Root is the synthetic document root node.
	Root *Node
}

// LineInfo holds metadata for a single line in a file.
type LineInfo struct {
	// StartOffset is the byte index of the line start.
	StartOffset int

	// NewlineStart is the byte index where newline characters begin.
	// For lines without a trailing newline (e.g., last line), this equals EndOffset.
	NewlineStart int

	// EndOffset is the byte index just after the newline (or end of file).
	EndOffset int
}

// NewFileSnapshot creates a new FileSnapshot from content.
// It builds the line index but does not parse (use Parse for that).
func NewFileSnapshot(path string, content []byte) *FileSnapshot {
	return &FileSnapshot{
		Path:    path,
		Content: content,
		Lines:   BuildLines(content),
		Root:    nil,
	}
}
