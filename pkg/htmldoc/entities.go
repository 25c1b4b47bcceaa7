package htmldoc

import (
	"strconv"
	"strings"
)

// namedEntities covers the common named entities seen in hand-written
// HTML. Unknown entities pass through verbatim rather than erroring,
// consistent with the parser's tolerance policy.
//
//nolint:gochecknoglobals // Read-only lookup table.
var namedEntities = map[string]string{
	"amp":    "&",
	"lt":     "<",
	"gt":     ">",
	"quot":   `"`,
	"apos":   "'",
	"nbsp":   " ",
	"copy":   "©",
	"reg":    "®",
	"trade":  "™",
	"hellip": "…",
	"mdash":  "—",
	"ndash":  "–",
	"lsquo":  "‘",
	"rsquo":  "’",
	"ldquo":  "“",
	"rdquo":  "”",
	"times":  "×",
	"divide": "÷",
}

// DecodeEntities replaces common named and numeric character references
// in s with their character values. Malformed references are left as-is.
func DecodeEntities(s string) string {
	amp := strings.IndexByte(s, '&')
	if amp < 0 {
		return s
	}

	var sb strings.Builder
	sb.Grow(len(s))
	sb.WriteString(s[:amp])

	for i := amp; i < len(s); {
		if s[i] != '&' {
			sb.WriteByte(s[i])
			i++
			continue
		}

		repl, consumed := decodeEntity(s[i:])
		if consumed == 0 {
			sb.WriteByte('&')
			i++
			continue
		}
		sb.WriteString(repl)
		i += consumed
	}

	return sb.String()
}

// decodeEntity decodes one reference at the start of s (which begins
// with '&'). Returns the replacement and the number of bytes consumed,
// or ("", 0) if no valid reference starts here.
func decodeEntity(s string) (string, int) {
	semi := strings.IndexByte(s, ';')
	if semi < 2 || semi > 32 {
		return "", 0
	}
	body := s[1:semi]

	if body[0] == '#' {
		return decodeNumericEntity(body[1:], semi+1)
	}

	if repl, ok := namedEntities[body]; ok {
		return repl, semi + 1
	}
	return "", 0
}

func decodeNumericEntity(digits string, consumed int) (string, int) {
	if digits == "" {
		return "", 0
	}

	base := 10
	if digits[0] == 'x' || digits[0] == 'X' {
		base = 16
		digits = digits[1:]
	}

	code, err := strconv.ParseUint(digits, base, 32)
	if err != nil || code == 0 || code > 0x10FFFF {
		return "", 0
	}
	return string(rune(code)), consumed
}
