package htmldoc

import "bytes"

// Tokenize splits raw markup into a token sequence. It never fails:
// unrecognizable byte sequences degrade to text tokens and truncated
// constructs are consumed to end of input.
func Tokenize(content []byte) []Token {
	t := &tokenizer{src: content}
	t.run()
	return t.tokens
}

type tokenizer struct {
	src    []byte
	pos    int
	tokens []Token

	// rawTag is set after an open script/style tag; content up to the
	// matching end tag is treated as opaque character data.
	rawTag string
}

func (t *tokenizer) run() {
	for t.pos < len(t.src) {
		if t.rawTag != "" {
			t.scanRawText()
			continue
		}

		lt := bytes.IndexByte(t.src[t.pos:], '<')
		if lt < 0 {
			t.emitText(t.pos, len(t.src))
			t.pos = len(t.src)
			return
		}
		lt += t.pos

		if lt > t.pos {
			t.emitText(t.pos, lt)
			t.pos = lt
		}

		t.scanMarkup()
	}
}

// scanMarkup consumes one construct starting at '<'.
func (t *tokenizer) scanMarkup() {
	rest := t.src[t.pos:]

	switch {
	case bytes.HasPrefix(rest, []byte("<!--")):
		t.scanComment()
	case bytes.HasPrefix(rest, []byte("<!")):
		t.scanDeclaration()
	case bytes.HasPrefix(rest, []byte("</")):
		t.scanEndTag()
	case len(rest) > 1 && isTagNameStart(rest[1]):
		t.scanStartTag()
	default:
		// Stray '<' with no tag following: plain text.
		t.emitText(t.pos, t.pos+1)
		t.pos++
	}
}

func (t *tokenizer) scanComment() {
	start := t.pos
	end := bytes.Index(t.src[t.pos+4:], []byte("-->"))
	if end < 0 {
		t.pos = len(t.src)
	} else {
		t.pos += 4 + end + 3
	}
	t.tokens = append(t.tokens, Token{
		Kind:        TokenComment,
		StartOffset: start,
		EndOffset:   t.pos,
	})
}

func (t *tokenizer) scanDeclaration() {
	start := t.pos
	gt := bytes.IndexByte(t.src[t.pos:], '>')
	if gt < 0 {
		t.pos = len(t.src)
	} else {
		t.pos += gt + 1
	}
	t.tokens = append(t.tokens, Token{
		Kind:        TokenDoctype,
		StartOffset: start,
		EndOffset:   t.pos,
	})
}

func (t *tokenizer) scanEndTag() {
	start := t.pos
	t.pos += 2 // consume "</"

	if t.pos >= len(t.src) || !isTagNameStart(t.src[t.pos]) {
		// "</>" or stray "</" with junk: consume to '>' and discard.
		t.consumeToGT()
		return
	}

	tag := t.readTagName()
	t.consumeToGT()

	t.tokens = append(t.tokens, Token{
		Kind:        TokenEndTag,
		Tag:         tag,
		StartOffset: start,
		EndOffset:   t.pos,
	})
}

func (t *tokenizer) scanStartTag() {
	start := t.pos
	t.pos++ // consume '<'
	tag := t.readTagName()

	var attrs []Attr
	selfClosing := false

	for t.pos < len(t.src) {
		t.skipSpace()
		if t.pos >= len(t.src) {
			break
		}

		c := t.src[t.pos]
		if c == '>' {
			t.pos++
			break
		}
		if c == '/' {
			if t.pos+1 < len(t.src) && t.src[t.pos+1] == '>' {
				selfClosing = true
				t.pos += 2
				break
			}
			t.pos++
			continue
		}

		name, value, ok := t.readAttribute()
		if !ok {
			t.pos++
			continue
		}
		attrs = appendAttr(attrs, name, value)
	}

	t.tokens = append(t.tokens, Token{
		Kind:        TokenStartTag,
		Tag:         tag,
		Attrs:       attrs,
		SelfClosing: selfClosing,
		StartOffset: start,
		EndOffset:   t.pos,
	})

	if rawTextElements[tag] && !selfClosing {
		t.rawTag = tag
	}
}

// scanRawText consumes opaque content up to the matching end tag of the
// pending raw-text element. Script and style content is never entity
// decoded and never contains child elements.
func (t *tokenizer) scanRawText() {
	closer := append([]byte("</"), t.rawTag...)
	lower := bytes.ToLower(t.src[t.pos:])

	end := bytes.Index(lower, closer)
	if end < 0 {
		end = len(t.src) - t.pos
	}

	if end > 0 {
		t.tokens = append(t.tokens, Token{
			Kind:        TokenText,
			Data:        string(t.src[t.pos : t.pos+end]),
			StartOffset: t.pos,
			EndOffset:   t.pos + end,
		})
	}

	t.pos += end
	t.rawTag = ""
}

// readAttribute parses one attribute at the current position.
func (t *tokenizer) readAttribute() (string, string, bool) {
	name := t.readAttrName()
	if name == "" {
		return "", "", false
	}

	t.skipSpace()
	if t.pos >= len(t.src) || t.src[t.pos] != '=' {
		// Boolean attribute: present with an empty value.
		return name, "", true
	}
	t.pos++ // consume '='
	t.skipSpace()

	return name, t.readAttrValue(), true
}

func (t *tokenizer) readAttrValue() string {
	if t.pos >= len(t.src) {
		return ""
	}

	quote := t.src[t.pos]
	if quote == '"' || quote == '\'' {
		t.pos++
		start := t.pos
		end := bytes.IndexByte(t.src[t.pos:], quote)
		if end < 0 {
			t.pos = len(t.src)
			return DecodeEntities(string(t.src[start:]))
		}
		t.pos += end + 1
		return DecodeEntities(string(t.src[start : start+end]))
	}

	// Unquoted value: runs to whitespace or tag end.
	start := t.pos
	for t.pos < len(t.src) {
		c := t.src[t.pos]
		if isSpace(c) || c == '>' || c == '/' {
			break
		}
		t.pos++
	}
	return DecodeEntities(string(t.src[start:t.pos]))
}

func (t *tokenizer) readTagName() string {
	start := t.pos
	for t.pos < len(t.src) && isTagNameByte(t.src[t.pos]) {
		t.pos++
	}
	return string(toLowerASCII(t.src[start:t.pos]))
}

func (t *tokenizer) readAttrName() string {
	start := t.pos
	for t.pos < len(t.src) {
		c := t.src[t.pos]
		if isSpace(c) || c == '=' || c == '>' || c == '/' {
			break
		}
		t.pos++
	}
	return string(toLowerASCII(t.src[start:t.pos]))
}

func (t *tokenizer) consumeToGT() {
	gt := bytes.IndexByte(t.src[t.pos:], '>')
	if gt < 0 {
		t.pos = len(t.src)
		return
	}
	t.pos += gt + 1
}

func (t *tokenizer) skipSpace() {
	for t.pos < len(t.src) && isSpace(t.src[t.pos]) {
		t.pos++
	}
}

func (t *tokenizer) emitText(start, end int) {
	if start >= end {
		return
	}
	t.tokens = append(t.tokens, Token{
		Kind:        TokenText,
		Data:        DecodeEntities(string(t.src[start:end])),
		StartOffset: start,
		EndOffset:   end,
	})
}

// appendAttr adds an attribute, replacing any earlier occurrence of the
// same name. Last occurrence wins.
func appendAttr(attrs []Attr, name, value string) []Attr {
	for i := range attrs {
		if attrs[i].Name == name {
			attrs[i].Value = value
			return attrs
		}
	}
	return append(attrs, Attr{Name: name, Value: value})
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

func isTagNameStart(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isTagNameByte(c byte) bool {
	return isTagNameStart(c) || (c >= '0' && c <= '9') || c == '-' || c == ':'
}

func toLowerASCII(b []byte) []byte {
	out := make([]byte, len(b))
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		out[i] = c
	}
	return out
}
