package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_Parse(t *testing.T) {
	html, err := NewParser().Parse([]byte("# Title\n\nSome *text* with a [link](https://example.com).\n"))
	require.NoError(t, err)

	out := string(html)
	assert.Contains(t, out, `<h1 id="title">Title</h1>`)
	assert.Contains(t, out, "<em>text</em>")
	assert.Contains(t, out, `<a href="https://example.com">link</a>`)
}

func TestParser_ParseHighlightsCode(t *testing.T) {
	html, err := NewParser().Parse([]byte("```go\nfunc main() {}\n```\n"))
	require.NoError(t, err)
	assert.Contains(t, string(html), "<pre")
	assert.Contains(t, string(html), "main")
}

func TestParser_CodeBlocksGetCopyButton(t *testing.T) {
	html, err := NewParser().Parse([]byte("```go\nfunc main() {}\n```\n"))
	require.NoError(t, err)
	out := string(html)
	assert.Contains(t, out, `<div class="code-block">`+CopyButton+`<pre`)
	assert.Contains(t, out, "</pre></div>")

	html, err = NewParser().Parse([]byte("```nosuchlang\n<x>\n```\n"))
	require.NoError(t, err)
	out = string(html)
	assert.Contains(t, out, `<div class="code-block">`+CopyButton+`<pre><code class="language-nosuchlang">&lt;x&gt;`)
	assert.Contains(t, out, "</code></pre></div>")

	html, err = NewParser().Parse([]byte("    indented\n"))
	require.NoError(t, err)
	assert.NotContains(t, string(html), CopyButton, "only fenced blocks get a button")
}

func TestParser_ParseWithFrontmatter(t *testing.T) {
	html, meta, err := NewParser().ParseWithFrontmatter([]byte("---\ntitle: About\n---\nHello\n"))
	require.NoError(t, err)

	assert.Equal(t, "About", meta["title"])
	assert.NotContains(t, string(html), "title: About")
	assert.Contains(t, string(html), "<p>Hello</p>")
}

func TestParser_ExtractFrontmatterWithoutBlock(t *testing.T) {
	meta, err := NewParser().ExtractFrontmatter([]byte("no metadata here"))
	require.NoError(t, err)
	assert.Empty(t, meta)
}
