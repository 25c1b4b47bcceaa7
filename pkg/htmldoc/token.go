package htmldoc

// TokenKind classifies a markup token.
type TokenKind uint8

// Token kinds produced by the tokenizer. Comments and doctypes are
// recognized so the parser can skip them; they never become nodes.
const (
	TokenText TokenKind = iota
	TokenStartTag
	TokenEndTag
	TokenComment
	TokenDoctype
)

// Token is a single lexical unit of the input markup.
type Token struct {
	// Kind identifies the token type.
	Kind TokenKind

	// Tag is the lowercase tag name for start and end tags.
	Tag string

	// Attrs holds parsed attributes for start tags, names lowercased,
	// duplicates collapsed with the last occurrence winning.
	Attrs []Attr

	// SelfClosing is true for tags written with a trailing slash.
	SelfClosing bool

	// Data is the decoded text for text tokens.
	Data string

	// StartOffset and EndOffset delimit the token's source bytes.
	StartOffset int
	EndOffset   int
}

// voidElements can never have children or a matching end tag.
//
//nolint:gochecknoglobals // Read-only lookup table.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true,
	"embed": true, "hr": true, "img": true, "input": true,
	"link": true, "meta": true, "param": true, "source": true,
	"track": true, "wbr": true,
}

// IsVoidElement reports whether tag is a void element such as img or br.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

// rawTextElements hold character data until their literal end tag.
//
//nolint:gochecknoglobals // Read-only lookup table.
var rawTextElements = map[string]bool{
	"script": true, "style": true,
}
