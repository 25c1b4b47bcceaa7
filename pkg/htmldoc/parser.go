package htmldoc

// Parse builds a document tree from raw markup. It never fails: unclosed
// elements are closed implicitly, stray end tags are discarded, and
// arbitrary junk degrades to text. The returned snapshot always has a
// non-nil Root.
func Parse(path string, content []byte) *FileSnapshot {
	snapshot := NewFileSnapshot(path, content)

	root := NewDocument()
	root.File = snapshot

	// Explicit open-element stack; index 0 is always the root.
	stack := []*Node{root}

	for _, tok := range Tokenize(content) {
		top := stack[len(stack)-1]

		switch tok.Kind {
		case TokenText:
			if tok.Data == "" {
				continue
			}
			text := NewText(tok.Data)
			text.StartOffset = tok.StartOffset
			text.EndOffset = tok.EndOffset
			text.File = snapshot
			AppendChild(top, text)

		case TokenStartTag:
			el := NewElement(tok.Tag)
			el.Attrs = tok.Attrs
			el.StartOffset = tok.StartOffset
			el.EndOffset = tok.EndOffset
			el.File = snapshot
			AppendChild(top, el)

			if !tok.SelfClosing && !IsVoidElement(tok.Tag) {
				stack = append(stack, el)
			}

		case TokenEndTag:
			stack = popToMatch(stack, tok.Tag)

		case TokenComment, TokenDoctype:
			// Not represented as nodes.
		}
	}

	// Remaining open elements are closed implicitly at end of input.
	snapshot.Root = root
	return snapshot
}

// popToMatch finds the nearest open element with the given tag and pops
// it along with everything above it (implicit auto-close). End tags with
// no matching open element are discarded.
func popToMatch(stack []*Node, tag string) []*Node {
	for i := len(stack) - 1; i > 0; i-- {
		if stack[i].Tag == tag {
			return stack[:i]
		}
	}
	return stack
}
