package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMissingLabelRule(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantFinds int
	}{
		{
			name:      "explicit label via for",
			input:     `<body><label for="email">Email</label><input id="email" type="text"></body>`,
			wantFinds: 0,
		},
		{
			name:      "implicit label ancestor",
			input:     `<body><label>Email <input type="text"></label></body>`,
			wantFinds: 0,
		},
		{
			name:      "aria-label",
			input:     `<body><input type="search" aria-label="Search site"></body>`,
			wantFinds: 0,
		},
		{
			name:      "aria-labelledby resolving to an id",
			input:     `<body><span id="hint">Name</span><input type="text" aria-labelledby="hint"></body>`,
			wantFinds: 0,
		},
		{
			name:      "aria-labelledby with one resolving token of several",
			input:     `<body><span id="b">Name</span><input type="text" aria-labelledby="a b"></body>`,
			wantFinds: 0,
		},
		{
			name:      "aria-labelledby pointing nowhere",
			input:     `<body><input type="text" aria-labelledby="ghost"></body>`,
			wantFinds: 1,
		},
		{
			name:      "bare input",
			input:     `<body><input type="text"></body>`,
			wantFinds: 1,
		},
		{
			name:      "blank aria-label does not count",
			input:     `<body><input type="text" aria-label="  "></body>`,
			wantFinds: 1,
		},
		{
			name:      "hidden input exempt",
			input:     `<body><input type="hidden" name="csrf"></body>`,
			wantFinds: 0,
		},
		{
			name:      "submit and button inputs exempt",
			input:     `<body><input type="submit" value="Go"><input type="button" value="Run"></body>`,
			wantFinds: 0,
		},
		{
			name:      "input with no type defaults to text and needs a label",
			input:     `<body><input name="q"></body>`,
			wantFinds: 1,
		},
		{
			name:      "select without label",
			input:     `<body><select><option>a</option></select></body>`,
			wantFinds: 1,
		},
		{
			name:      "textarea without label",
			input:     `<body><textarea></textarea></body>`,
			wantFinds: 1,
		},
		{
			name:      "textarea with explicit label",
			input:     `<body><label for="msg">Message</label><textarea id="msg"></textarea></body>`,
			wantFinds: 0,
		},
		{
			name:      "label for mismatched id does not help",
			input:     `<body><label for="other">Email</label><input id="email" type="text"></body>`,
			wantFinds: 1,
		},
		{
			name:      "mixed controls count individually",
			input:     `<body><input type="text"><select></select><label>Ok <textarea></textarea></label></body>`,
			wantFinds: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings := applyRuleTo(t, NewMissingLabelRule(), tt.input)
			assert.Len(t, findings, tt.wantFinds)
		})
	}
}

func TestMissingLabelRuleDocumentOrder(t *testing.T) {
	input := "<body>\n<select></select>\n<input type=\"text\">\n</body>"
	findings := applyRuleTo(t, NewMissingLabelRule(), input)
	if assert.Len(t, findings, 2) {
		assert.Equal(t, 2, findings[0].Line)
		assert.Contains(t, findings[0].Message, "<select>")
		assert.Equal(t, 3, findings[1].Line)
		assert.Contains(t, findings[1].Message, "<input>")
	}
}

func TestButtonTypeRule(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantFinds int
	}{
		{
			name:      "typed button in form",
			input:     `<body><form><button type="submit">Send</button></form></body>`,
			wantFinds: 0,
		},
		{
			name:      "untyped button in form",
			input:     `<body><form><button>Send</button></form></body>`,
			wantFinds: 1,
		},
		{
			name:      "untyped button outside form",
			input:     `<body><button>Toggle</button></body>`,
			wantFinds: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings := applyRuleTo(t, NewButtonTypeRule(), tt.input)
			assert.Len(t, findings, tt.wantFinds)
		})
	}
}

func TestPlaceholderNoLabelRule(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantFinds int
	}{
		{
			name:      "placeholder with explicit label",
			input:     `<body><label for="q">Search</label><input id="q" placeholder="keywords"></body>`,
			wantFinds: 0,
		},
		{
			name:      "placeholder with implicit label",
			input:     `<body><label>Search <input placeholder="keywords"></label></body>`,
			wantFinds: 0,
		},
		{
			name:      "placeholder only",
			input:     `<body><input placeholder="Your email"></body>`,
			wantFinds: 1,
		},
		{
			name:      "aria-label alone is not a visible label",
			input:     `<body><input placeholder="Your email" aria-label="Email"></body>`,
			wantFinds: 1,
		},
		{
			name:      "no placeholder no finding",
			input:     `<body><input type="text"></body>`,
			wantFinds: 0,
		},
		{
			name:      "textarea placeholder only",
			input:     `<body><textarea placeholder="Tell us more"></textarea></body>`,
			wantFinds: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings := applyRuleTo(t, NewPlaceholderNoLabelRule(), tt.input)
			assert.Len(t, findings, tt.wantFinds)
		})
	}
}
