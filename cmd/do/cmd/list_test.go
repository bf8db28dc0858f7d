package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/templui/folio/internal/model"
)

func testPosts() []*model.Post {
	return []*model.Post{
		(&model.Post{}).WithSlug("static-site").WithTitle("Rebuilding this site in Go").WithDate("2024-06-12").WithTags([]string{"go", "web"}),
		(&model.Post{}).WithURL("https://other.example/turbo").WithTitle("Turbo and fast system tests").WithDate("2020-01-10").WithTags([]string{"rails"}),
	}
}

func TestFilterPosts(t *testing.T) {
	posts := testPosts()

	assert.Equal(t, posts, filterPosts(posts, ""))

	filtered := filterPosts(posts, "turbo")
	require.Len(t, filtered, 1)
	assert.Equal(t, "Turbo and fast system tests", filtered[0].Title)

	filtered = filterPosts(posts, "rails")
	require.Len(t, filtered, 1)
	assert.True(t, filtered[0].IsExternal())

	assert.Empty(t, filterPosts(posts, "zzzz"))
}

func TestWriteSummary(t *testing.T) {
	var buf bytes.Buffer
	writeSummary(&buf, testPosts())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "TITLE")
	assert.Contains(t, lines[1], "2024-06-12")
	assert.Contains(t, lines[1], "local")
	assert.Contains(t, lines[2], "external")
}

func TestWriteFieldTable(t *testing.T) {
	var buf bytes.Buffer
	fields, unknown := model.ParseFields("slug", "tags")
	require.Empty(t, unknown)

	writeFieldTable(&buf, testPosts(), fields)

	out := buf.String()
	assert.Contains(t, out, "static-site\tgo,web")
	assert.Contains(t, out, "-\trails", "external posts have no slug")
}

func TestRenderTerminal(t *testing.T) {
	post := (&model.Post{}).WithSlug("hello").WithTitle("Hello").WithDate("2024-01-01").
		WithReadingTime("1 min read").WithContent("Some **bold** text.")

	out, err := renderTerminal(post)
	require.NoError(t, err)
	assert.Contains(t, out, "Hello")
	assert.Contains(t, out, "bold")
	assert.Contains(t, out, "1 min read")
}
