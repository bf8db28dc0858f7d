package service

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/templui/folio/internal/content"
	"github.com/templui/folio/internal/model"
)

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

var testExternal = []content.ExternalPost{{
	Title:       "Elsewhere",
	Excerpt:     "Published on another blog",
	Date:        "2022-04-29",
	ReadingTime: "6 min read",
	URL:         "https://other.example/post",
	Tags:        []string{"Node"},
}}

func newTestBlog(t *testing.T) *BlogService {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "hello.mdx"), "---\ntitle: Hello\ndate: \"2024-01-01\"\ntags: [go, node]\n---\n# Hi\n\nSome `code`.\n")
	writeFile(t, filepath.Join(dir, "draft.md"), "---\ntitle: Second\ndate: \"2023-03-01\"\n---\nText\n")

	catalog := content.NewCatalog(content.NewStaticSource(testExternal), content.NewFileSource(dir))
	return NewBlogService(catalog)
}

func TestBlogService_Post(t *testing.T) {
	blog := newTestBlog(t)

	rendered, err := blog.Post("hello")
	require.NoError(t, err)
	assert.Equal(t, "Hello", rendered.Post.Title)
	assert.Equal(t, "1 min read", rendered.Post.ReadingTime)
	assert.Contains(t, rendered.HTML, `<h1 id="hi">Hi</h1>`)
	assert.Contains(t, rendered.HTML, "<code>code</code>")

	_, err = blog.Post("missing")
	require.Error(t, err)
	assert.True(t, content.IsNotFound(err))
}

func TestBlogService_PostsByTag(t *testing.T) {
	blog := newTestBlog(t)

	posts, err := blog.PostsByTag("node")
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "Hello", posts[0].Title)
	assert.Equal(t, "Elsewhere", posts[1].Title)

	posts, err = blog.PostsByTag("nothing")
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestTags(t *testing.T) {
	blog := newTestBlog(t)
	posts, err := blog.Posts(model.ListingFields)
	require.NoError(t, err)

	assert.Equal(t, []string{"go", "node"}, Tags(posts), "tags differing only in case are merged")
}

func TestSitemapService(t *testing.T) {
	s := NewSitemapService(newTestBlog(t), "https://example.com/")
	s.now = func() time.Time { return time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC) }

	out, err := s.GenerateSitemap()
	require.NoError(t, err)

	xml := string(out)
	assert.True(t, strings.HasPrefix(xml, "<?xml"))
	assert.Contains(t, xml, "<loc>https://example.com/</loc>")
	assert.Contains(t, xml, "<loc>https://example.com/posts</loc>")
	assert.Contains(t, xml, "<loc>https://example.com/posts/hello</loc>")
	assert.Contains(t, xml, "<lastmod>2024-01-01</lastmod>")
	assert.Contains(t, xml, "<loc>https://example.com/posts/tag/go</loc>")
	assert.NotContains(t, xml, "other.example")
	assert.NotContains(t, xml, "/posts/tag/Node", "tags of external posts have no local page in the sitemap")
}

func TestPageService(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "about.md"), "---\ntitle: About\n---\nI build things.\n")
	writeFile(t, filepath.Join(dir, "contact-me.md"), "Write to me.\n")
	pages := NewPageService(dir)

	page, err := pages.Page("about")
	require.NoError(t, err)
	assert.Equal(t, "About", page.Title)
	assert.Contains(t, page.HTMLContent, "<p>I build things.</p>")

	page, err = pages.Page("contact-me")
	require.NoError(t, err)
	assert.Equal(t, "Contact Me", page.Title)

	_, err = pages.Page("missing")
	assert.ErrorIs(t, err, ErrPageNotFound)

	_, err = pages.Page("../about")
	assert.ErrorIs(t, err, ErrPageNotFound)
}
