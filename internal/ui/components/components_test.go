package components

import (
	"bytes"
	"context"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/templui/folio/internal/config"
	"github.com/templui/folio/internal/ctxkeys"
	"github.com/templui/folio/internal/model"
)

func render(t *testing.T, ctx context.Context, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(ctx, &buf))
	return buf.String()
}

func withChildren(ctx context.Context, html string) context.Context {
	return templ.WithChildren(ctx, templ.Raw(html))
}

func TestClass(t *testing.T) {
	assert.Equal(t, "ml-8", Class("ml-4", "ml-8"))
	assert.Equal(t, "p-3", Class("px-2 py-1", "p-3"))
}

func TestContainer_MergesClasses(t *testing.T) {
	out := render(t, withChildren(context.Background(), "<p>x</p>"), Container("pl-6"))
	assert.Contains(t, out, "pl-6")
	assert.NotContains(t, out, "pl-2")
	assert.Contains(t, out, `"><p>x</p></div>`)
}

func TestButtonLink(t *testing.T) {
	out := render(t, withChildren(context.Background(), "Blog"), ButtonLink("/posts", "ml-4"))
	assert.Contains(t, out, `<a href="/posts" class="`)
	assert.Contains(t, out, "ml-4")
	assert.Contains(t, out, ">Blog</a>")
}

func TestLink_UnsafeURL(t *testing.T) {
	out := render(t, withChildren(context.Background(), "x"), Link("javascript:alert(1)", ""))
	assert.NotContains(t, out, "javascript:")
}

func TestDateFormatter(t *testing.T) {
	out := render(t, context.Background(), DateFormatter("2024-01-05"))
	assert.Equal(t, `<time datetime="2024-01-05">January 5, 2024</time>`, out)

	out = render(t, context.Background(), DateFormatter("<someday>"))
	assert.Equal(t, "&lt;someday&gt;", out)
}

func TestTags(t *testing.T) {
	out := render(t, context.Background(), Tags([]string{"go", "web dev"}))
	assert.Contains(t, out, `href="/posts/tag/go"`)
	assert.Contains(t, out, `href="/posts/tag/web%20dev"`)
	assert.Contains(t, out, "</a> <a")

	assert.Empty(t, render(t, context.Background(), Tags(nil)))
}

func TestPostInfo(t *testing.T) {
	post := (&model.Post{}).WithDate("2024-01-05").WithReadingTime("3 min read").WithTags([]string{"go"})
	out := render(t, context.Background(), PostInfo(post))
	assert.Contains(t, out, "January 5, 2024</time></span> • <span>3 min read</span> • <span><a")
}

func TestPostHeader(t *testing.T) {
	out := render(t, withChildren(context.Background(), "info"), PostHeader("Fish & chips"))
	assert.Contains(t, out, "Fish &amp; chips</h1>")
	assert.Contains(t, out, `<div class="mb-10 text-lg text-slate-400">info</div>`)
}

func TestBlogIndexEntry(t *testing.T) {
	local := (&model.Post{}).WithSlug("hello").WithTitle("Hello").WithDate("2024-01-01").
		WithReadingTime("2 min read").WithExcerpt("An intro").WithTags([]string{"go"})
	out := render(t, context.Background(), BlogIndexEntry(local))
	assert.Contains(t, out, `href="/posts/hello"`)
	assert.NotContains(t, out, `target="_blank"`)
	assert.Contains(t, out, "January 1, 2024")
	assert.Contains(t, out, "2 min read")
	assert.Contains(t, out, "An intro")

	external := (&model.Post{}).WithURL("https://other.example/post").WithTitle("Elsewhere").WithDate("2022-04-29")
	out = render(t, context.Background(), BlogIndexEntry(external))
	assert.Contains(t, out, `href="https://other.example/post"`)
	assert.Contains(t, out, `target="_blank"`)
	assert.Contains(t, out, `Elsewhere <span aria-hidden="true">↗</span>`)
}

func TestIntro(t *testing.T) {
	out := render(t, context.Background(), Intro())
	assert.Contains(t, out, `src="/profile_pic_website.png"`)
	assert.Contains(t, out, `Hey, I am <span data-glitch="Artem" class="glitch">Artem</span>`)
}

func TestLayout(t *testing.T) {
	ctx := ctxkeys.WithConfig(context.Background(), &config.Config{AppURL: "https://example.com"})
	ctx = ctxkeys.WithURLPath(ctx, "/posts")

	out := render(t, withChildren(ctx, "body"), Layout(PageMeta{Title: "Tech blog"}))
	assert.Contains(t, out, "<!doctype html>")
	assert.Contains(t, out, "<title>Tech blog</title>")
	assert.Contains(t, out, `<meta name="description" content="Personal website and tech blog.">`)
	assert.Contains(t, out, `<link rel="canonical" href="https://example.com/posts">`)
	assert.Contains(t, out, `href="https://example.com/rss.xml"`)
	assert.Contains(t, out, `<link rel="stylesheet" href="/assets/css/output.css">`)
	assert.Contains(t, out, `<script src="/assets/js/copy-code.js" defer></script>`)
	assert.Contains(t, out, `<main class="flex grow items-stretch flex-col">body</main>`)
	assert.Contains(t, out, `<a class="text-lg text-slate-100 underline" href="/posts">Blog</a>`)
	assert.Contains(t, out, `<a class="text-lg text-slate-100" href="/">Home</a>`)
	assert.Contains(t, out, "View source")
	assert.Contains(t, out, `href="mailto:mr@artem.rocks"`)
}

func TestLayout_WithoutConfig(t *testing.T) {
	out := render(t, context.Background(), Layout(PageMeta{Title: "x", Image: "/og.png"}))
	assert.NotContains(t, out, "canonical")
	assert.Contains(t, out, `href="/rss.xml"`)
	assert.Contains(t, out, `<meta property="og:image" content="/og.png">`)
}
