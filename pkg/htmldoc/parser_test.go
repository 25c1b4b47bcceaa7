package htmldoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSimpleDocument(t *testing.T) {
	snapshot := Parse("test.html", []byte(`<html><body><p>hi</p></body></html>`))

	require.NotNil(t, snapshot.Root)
	require.Equal(t, NodeDocument, snapshot.Root.Kind)

	html := snapshot.Root.FirstChild
	require.NotNil(t, html)
	assert.Equal(t, "html", html.Tag)

	body := html.FirstChild
	require.NotNil(t, body)
	assert.Equal(t, "body", body.Tag)

	p := body.FirstChild
	require.NotNil(t, p)
	assert.Equal(t, "p", p.Tag)
	assert.Equal(t, "hi", p.TextContent())
}

func TestParseParentLinks(t *testing.T) {
	snapshot := Parse("test.html", []byte(`<div><span>a</span><span>b</span></div>`))

	div := snapshot.Root.FirstChild
	require.NotNil(t, div)

	//nolint:errcheck // Walk only returns nil errors in this usage
	Walk(snapshot.Root, func(n *Node) error {
		for child := n.FirstChild; child != nil; child = child.Next {
			assert.Same(t, n, child.Parent)
		}
		return nil
	})

	spans := FindByTag(snapshot.Root, "span")
	require.Len(t, spans, 2)
	assert.Same(t, spans[0].Next, spans[1])
	assert.Same(t, spans[1].Prev, spans[0])
}

func TestParseUnclosedElementAtEOF(t *testing.T) {
	snapshot := Parse("test.html", []byte(`<html><body><div>dangling`))

	divs := FindByTag(snapshot.Root, "div")
	require.Len(t, divs, 1)
	assert.Equal(t, "dangling", divs[0].TextContent())
	assert.True(t, divs[0].HasAncestor("body"))
}

func TestParseAutoClose(t *testing.T) {
	// </ul> implicitly closes the still-open <li>.
	snapshot := Parse("test.html", []byte(`<ul><li>one<li>two</ul><p>after</p>`))

	lis := FindByTag(snapshot.Root, "li")
	require.Len(t, lis, 2)
	assert.True(t, lis[0].HasAncestor("ul"))

	// The second li is nested in the first since li does not auto-close
	// li in this tolerant model, but both stay inside the ul.
	assert.True(t, lis[1].HasAncestor("ul"))

	ps := FindByTag(snapshot.Root, "p")
	require.Len(t, ps, 1)
	assert.False(t, ps[0].HasAncestor("ul"))
}

func TestParseStrayEndTagDiscarded(t *testing.T) {
	snapshot := Parse("test.html", []byte(`<div>a</span>b</div>`))

	divs := FindByTag(snapshot.Root, "div")
	require.Len(t, divs, 1)
	assert.Equal(t, "ab", divs[0].TextContent())
}

func TestParseVoidElements(t *testing.T) {
	snapshot := Parse("test.html", []byte(`<p>one<br>two<img src="x.png">three</p>`))

	ps := FindByTag(snapshot.Root, "p")
	require.Len(t, ps, 1)
	// br and img never take children; the text stays in the paragraph.
	assert.Equal(t, "onetwothree", ps[0].TextContent())

	imgs := FindByTag(snapshot.Root, "img")
	require.Len(t, imgs, 1)
	assert.False(t, imgs[0].HasChildren())
	assert.Same(t, ps[0], imgs[0].Parent)
}

func TestParseCommentsSkipped(t *testing.T) {
	snapshot := Parse("test.html", []byte(`<div><!-- hidden --><span>x</span></div>`))

	div := snapshot.Root.FirstChild
	require.NotNil(t, div)
	require.NotNil(t, div.FirstChild)
	assert.Equal(t, "span", div.FirstChild.Tag)
}

func TestParseMissingRootTolerated(t *testing.T) {
	snapshot := Parse("test.html", []byte(`<p>no html element</p>`))

	require.NotNil(t, snapshot.Root)
	assert.Empty(t, FindByTag(snapshot.Root, "html"))
	assert.Len(t, FindByTag(snapshot.Root, "p"), 1)
}

func TestParseDuplicateRootTolerated(t *testing.T) {
	snapshot := Parse("test.html", []byte(`<html></html><html lang="en"></html>`))

	htmls := FindByTag(snapshot.Root, "html")
	assert.Len(t, htmls, 2)
}

func TestParsePositions(t *testing.T) {
	input := "<html>\n  <img src=\"x.png\">\n</html>\n"
	snapshot := Parse("test.html", []byte(input))

	imgs := FindByTag(snapshot.Root, "img")
	require.Len(t, imgs, 1)

	pos := imgs[0].Position()
	assert.Equal(t, 2, pos.Line)
	assert.Equal(t, 3, pos.Column)
}

func TestParseEmptyInput(t *testing.T) {
	snapshot := Parse("test.html", nil)

	require.NotNil(t, snapshot.Root)
	assert.False(t, snapshot.Root.HasChildren())
}

func TestParseDeterministic(t *testing.T) {
	input := []byte(`<html><body><div id="a"><p>x</p></div></body></html>`)

	first := Parse("test.html", input)
	second := Parse("test.html", input)

	var firstTags, secondTags []string
	//nolint:errcheck // Walk only returns nil errors in this usage
	Walk(first.Root, func(n *Node) error {
		firstTags = append(firstTags, n.Tag)
		return nil
	})
	//nolint:errcheck // Walk only returns nil errors in this usage
	Walk(second.Root, func(n *Node) error {
		secondTags = append(secondTags, n.Tag)
		return nil
	})

	assert.Equal(t, firstTags, secondTags)
}

func TestBreadcrumb(t *testing.T) {
	snapshot := Parse("test.html", []byte(`<html><body><main><img src="x"></main></body></html>`))

	imgs := FindByTag(snapshot.Root, "img")
	require.Len(t, imgs, 1)
	assert.Equal(t, "html > body > main > img", Breadcrumb(imgs[0]))

	assert.Equal(t, "", Breadcrumb(snapshot.Root))
	assert.Equal(t, "", Breadcrumb(nil))
}

func TestBuildIndex(t *testing.T) {
	snapshot := Parse("test.html", []byte(
		`<html><body><div id="a"></div><span id="a"></span><div id="b"></div></body></html>`))

	idx := BuildIndex(snapshot.Root)

	require.Len(t, idx.ByID["a"], 2)
	assert.Equal(t, "div", idx.ByID["a"][0].Tag)
	assert.Equal(t, "span", idx.ByID["a"][1].Tag)
	assert.True(t, idx.HasID("b"))
	assert.False(t, idx.HasID("c"))

	assert.Len(t, idx.Elements("div"), 2)
	assert.Len(t, idx.Elements("span"), 1)
}

func TestIndexRebuildReproducible(t *testing.T) {
	snapshot := Parse("test.html", []byte(`<div id="x"><p id="y"></p></div>`))

	first := BuildIndex(snapshot.Root)
	second := BuildIndex(snapshot.Root)

	assert.Equal(t, len(first.ByID), len(second.ByID))
	for id, nodes := range first.ByID {
		require.Len(t, second.ByID[id], len(nodes))
		for i := range nodes {
			assert.Same(t, nodes[i], second.ByID[id][i])
		}
	}
}
