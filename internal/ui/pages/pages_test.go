package pages

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/templui/folio/internal/model"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	return buf.String()
}

func TestHome(t *testing.T) {
	out := render(t, Home(&model.Page{Title: "About", HTMLContent: "<p>Born in Russia</p>"}))
	assert.Contains(t, out, "Artem Avetisyan - Web developer")
	assert.Contains(t, out, "Hey, I am")
	assert.Contains(t, out, "<p>Born in Russia</p>")

	out = render(t, Home(nil))
	assert.Contains(t, out, "Hey, I am")
	assert.NotContains(t, out, "About")
}

func TestBlogIndex(t *testing.T) {
	posts := []*model.Post{
		(&model.Post{}).WithSlug("newer").WithTitle("Newer").WithDate("2024-02-01"),
		(&model.Post{}).WithURL("https://other.example/older").WithTitle("Older").WithDate("2023-02-01"),
	}

	out := render(t, BlogIndex(posts, ""))
	assert.Contains(t, out, "Tech blog")
	assert.Less(t, strings.Index(out, "Newer"), strings.Index(out, "Older"))
	assert.NotContains(t, out, "All posts")

	out = render(t, BlogIndex(posts[:1], "go"))
	assert.Contains(t, out, "Posts tagged go")
	assert.Contains(t, out, "All posts")
}

func TestPost(t *testing.T) {
	post := (&model.Post{}).WithSlug("hello").WithTitle("Hello & welcome").WithDate("2024-01-01").
		WithReadingTime("1 min read").WithTags([]string{"go"})
	out := render(t, Post(&model.RenderedPost{Post: post, HTML: "<p>Body</p>"}))

	assert.Contains(t, out, "<title>Hello &amp; welcome</title>")
	assert.Contains(t, out, "January 1, 2024")
	assert.Contains(t, out, "1 min read")
	assert.Contains(t, out, "<p>Body</p>")
}

func TestNotFound(t *testing.T) {
	out := render(t, NotFound())
	assert.Contains(t, out, "404: This page could not be found")
}
