package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gohtmlint/pkg/htmldoc"
)

func parseBody(t *testing.T, body string) *htmldoc.Node {
	t.Helper()
	snapshot := htmldoc.Parse("test.html", []byte(body))
	return snapshot.Root
}

func TestHeadings(t *testing.T) {
	root := parseBody(t, `<body><h1>a</h1><p>x</p><h3>c</h3><div><h2>b</h2></div></body>`)

	headings := Headings(root)
	require.Len(t, headings, 3)
	assert.Equal(t, "h1", headings[0].Tag)
	assert.Equal(t, "h3", headings[1].Tag)
	assert.Equal(t, "h2", headings[2].Tag)
}

func TestHeadingLevel(t *testing.T) {
	root := parseBody(t, `<body><h4>x</h4><p>y</p></body>`)
	h4 := htmldoc.FindByTag(root, "h4")[0]
	p := htmldoc.FindByTag(root, "p")[0]

	assert.Equal(t, 4, HeadingLevel(h4))
	assert.Equal(t, 0, HeadingLevel(p))
	assert.Equal(t, 0, HeadingLevel(nil))
}

func TestCollapseWhitespace(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"hello", "hello"},
		{"  hello  world  ", "hello world"},
		{"a\n\tb", "a b"},
		{"   ", ""},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CollapseWhitespace(tt.input))
	}
}

func TestAccessibleName(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "text content wins",
			body: `<body><a href="/x" aria-label="ignored">Visible  text</a></body>`,
			want: "Visible text",
		},
		{
			name: "nested text",
			body: `<body><a href="/x"><span>go</span> now</a></body>`,
			want: "go now",
		},
		{
			name: "aria-label fallback",
			body: `<body><a href="/x" aria-label="Cart"><i></i></a></body>`,
			want: "Cart",
		},
		{
			name: "title fallback",
			body: `<body><a href="/x" title="Help"></a></body>`,
			want: "Help",
		},
		{
			name: "nothing",
			body: `<body><a href="/x"></a></body>`,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := parseBody(t, tt.body)
			anchor := htmldoc.FindByTag(root, "a")[0]
			assert.Equal(t, tt.want, AccessibleName(anchor))
		})
	}
}

func TestInsideLabel(t *testing.T) {
	root := parseBody(t, `<body><label><span><input type="text"></span></label><input id="free" type="text"></body>`)

	inputs := htmldoc.FindByTag(root, "input")
	require.Len(t, inputs, 2)
	assert.True(t, InsideLabel(inputs[0]))
	assert.False(t, InsideLabel(inputs[1]))
}
