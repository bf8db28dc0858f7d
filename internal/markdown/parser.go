package markdown

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	emoji "github.com/yuin/goldmark-emoji"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
	"go.abhg.dev/goldmark/frontmatter"
)

// CodeStyle is the chroma style used for fenced code blocks.
const CodeStyle = "dracula"

// CopyButton is placed before every fenced code block. assets/js/copy-code.js
// copies the text of the block's <code> element on click.
const CopyButton = `<button type="button" class="copy-code" data-copy-code aria-label="Copy code">Copy</button>`

type Parser struct {
	md goldmark.Markdown
}

func NewParser() *Parser {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Footnote,
			extension.Typographer,
			emoji.Emoji,
			highlighting.NewHighlighting(
				highlighting.WithStyle(CodeStyle),
				highlighting.WithWrapperRenderer(codeBlockWrapper),
			),
			&frontmatter.Extender{},
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			goldmarkhtml.WithUnsafe(),
			goldmarkhtml.WithXHTML(),
		),
	)

	return &Parser{
		md: md,
	}
}

// codeBlockWrapper surrounds each fenced block with a container holding the
// copy button. Blocks chroma did not highlight need their own pre and code.
func codeBlockWrapper(w util.BufWriter, c highlighting.CodeBlockContext, entering bool) {
	if entering {
		_, _ = w.WriteString(`<div class="code-block">`)
		_, _ = w.WriteString(CopyButton)
		if c.Highlighted() {
			return
		}
		_, _ = w.WriteString("<pre><code")
		if lang, ok := c.Language(); ok {
			_, _ = w.WriteString(` class="language-`)
			_, _ = w.Write(util.EscapeHTML(lang))
			_ = w.WriteByte('"')
		}
		_ = w.WriteByte('>')
		return
	}

	if !c.Highlighted() {
		_, _ = w.WriteString("</code></pre>")
	}
	_, _ = w.WriteString("</div>\n")
}

// Parse converts Markdown to HTML. A leading front-matter block, if any, is
// dropped from the output.
func (p *Parser) Parse(source []byte) ([]byte, error) {
	var buf bytes.Buffer
	err := p.md.Convert(source, &buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ParseWithFrontmatter converts a whole document and returns its metadata.
// Unlike post loading, a page with undecodable metadata is an error.
func (p *Parser) ParseWithFrontmatter(source []byte) (content []byte, meta map[string]any, err error) {
	context := parser.NewContext()
	var buf bytes.Buffer

	err = p.md.Convert(source, &buf, parser.WithContext(context))
	if err != nil {
		return nil, nil, err
	}

	meta, err = decodeFrontmatter(context)
	if err != nil {
		return nil, nil, err
	}

	return buf.Bytes(), meta, nil
}

// ExtractFrontmatter reads the metadata block without rendering.
func (p *Parser) ExtractFrontmatter(source []byte) (map[string]any, error) {
	context := parser.NewContext()
	p.md.Parser().Parse(text.NewReader(source), parser.WithContext(context))
	return decodeFrontmatter(context)
}

func decodeFrontmatter(context parser.Context) (map[string]any, error) {
	data := frontmatter.Get(context)
	if data == nil {
		return make(map[string]any), nil
	}

	var meta map[string]any
	err := data.Decode(&meta)
	if err != nil {
		return nil, fmt.Errorf("decode front-matter: %w", err)
	}
	if meta == nil {
		meta = make(map[string]any)
	}
	return meta, nil
}
