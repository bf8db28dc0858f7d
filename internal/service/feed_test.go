package service

import (
	"encoding/json"
	"encoding/xml"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/templui/folio/internal/model"
	"github.com/templui/folio/internal/storage"
)

type rssDoc struct {
	Channel struct {
		Title     string `xml:"title"`
		Generator string `xml:"generator"`
		Copyright string `xml:"copyright"`
		Items     []struct {
			Title       string `xml:"title"`
			Link        string `xml:"link"`
			Guid        string `xml:"guid"`
			Description string `xml:"description"`
			PubDate     string `xml:"pubDate"`
		} `xml:"item"`
	} `xml:"channel"`
}

type atomDoc struct {
	ID   string `xml:"id"`
	Icon string `xml:"icon"`
	Logo string `xml:"logo"`
	Link struct {
		Href string `xml:"href,attr"`
		Rel  string `xml:"rel,attr"`
	} `xml:"link"`
	Entries []struct {
		ID   string `xml:"id"`
		Link struct {
			Href string `xml:"href,attr"`
		} `xml:"link"`
	} `xml:"entry"`
}

type jsonDoc struct {
	FeedURL string `json:"feed_url"`
	Favicon string `json:"favicon"`
	Items   []struct {
		ID    string `json:"id"`
		URL   string `json:"url"`
		Title string `json:"title"`
	} `json:"items"`
}

func newTestFeedService(t *testing.T) (*FeedService, string) {
	t.Helper()
	dir := t.TempDir()
	s := NewFeedService(storage.NewLocalStorage(dir))
	s.now = func() time.Time { return time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC) }
	return s, dir
}

func TestFeedService_LocalPostURL(t *testing.T) {
	s, _ := newTestFeedService(t)
	post := (&model.Post{}).WithSlug("hello").WithTitle("Hello").WithExcerpt("hi").WithDate("2024-01-01")

	docs, err := s.Render("https://example.com", []*model.Post{post})
	require.NoError(t, err)

	var rss rssDoc
	require.NoError(t, xml.Unmarshal(docs.RSS, &rss))
	require.Len(t, rss.Channel.Items, 1)
	item := rss.Channel.Items[0]
	assert.Equal(t, "https://example.com/posts/hello", item.Link)
	assert.Equal(t, "https://example.com/posts/hello", item.Guid)
	assert.Equal(t, "Hello", item.Title)
	assert.Equal(t, "hi", item.Description)
	assert.Contains(t, item.PubDate, "01 Jan 2024")
	assert.Equal(t, feedGenerator, rss.Channel.Generator)
	assert.Equal(t, "All rights reserved 2024, Artem Avetisyan", rss.Channel.Copyright)

	var atom atomDoc
	require.NoError(t, xml.Unmarshal(docs.Atom, &atom))
	require.Len(t, atom.Entries, 1)
	assert.Equal(t, "https://example.com/posts/hello", atom.Entries[0].ID)
	assert.Equal(t, "https://example.com/posts/hello", atom.Entries[0].Link.Href)

	var jf jsonDoc
	require.NoError(t, json.Unmarshal(docs.JSON, &jf))
	require.Len(t, jf.Items, 1)
	assert.Equal(t, "https://example.com/posts/hello", jf.Items[0].ID)
	assert.Equal(t, "https://example.com/posts/hello", jf.Items[0].URL)
	assert.Equal(t, "https://example.com/rss.json", jf.FeedURL)
}

func TestFeedService_ExternalPostURLVerbatim(t *testing.T) {
	s, _ := newTestFeedService(t)
	post := (&model.Post{}).WithURL("https://other.example/post").WithTitle("Elsewhere").WithDate("2022-04-29")

	docs, err := s.Render("https://example.com/", []*model.Post{post})
	require.NoError(t, err)

	var rss rssDoc
	require.NoError(t, xml.Unmarshal(docs.RSS, &rss))
	require.Len(t, rss.Channel.Items, 1)
	assert.Equal(t, "https://other.example/post", rss.Channel.Items[0].Link)
	assert.Equal(t, "https://other.example/post", rss.Channel.Items[0].Guid)

	var jf jsonDoc
	require.NoError(t, json.Unmarshal(docs.JSON, &jf))
	assert.Equal(t, "https://other.example/post", jf.Items[0].ID)
}

func TestFeedService_KeepsCatalogOrder(t *testing.T) {
	s, _ := newTestFeedService(t)
	posts := []*model.Post{
		(&model.Post{}).WithSlug("newer").WithTitle("Newer").WithDate("2024-02-01"),
		(&model.Post{}).WithSlug("older").WithTitle("Older").WithDate("2023-02-01"),
	}

	docs, err := s.Render("https://example.com", posts)
	require.NoError(t, err)

	var jf jsonDoc
	require.NoError(t, json.Unmarshal(docs.JSON, &jf))
	require.Len(t, jf.Items, 2)
	assert.Equal(t, "Newer", jf.Items[0].Title)
	assert.Equal(t, "Older", jf.Items[1].Title)
}

func TestFeedService_UnparseableDate(t *testing.T) {
	s, _ := newTestFeedService(t)
	post := (&model.Post{}).WithSlug("bad").WithTitle("Bad").WithDate("sometime soon")

	_, err := s.Render("https://example.com", []*model.Post{post})
	assert.Error(t, err)
}

func TestFeedService_GenerateWritesThreeFiles(t *testing.T) {
	s, dir := newTestFeedService(t)
	post := (&model.Post{}).WithSlug("hello").WithTitle("Hello").WithDate("2024-01-01")

	for i := 0; i < 2; i++ {
		require.NoError(t, s.Generate("https://example.com", []*model.Post{post}))
	}

	for _, name := range []string{RSSFile, JSONFile, AtomFile} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err, name)
		assert.Contains(t, string(data), "https://example.com/posts/hello", name)
	}
}

func TestFeedService_SelfLinksAndIcons(t *testing.T) {
	s, _ := newTestFeedService(t)
	post := (&model.Post{}).WithSlug("hello").WithTitle("Hello").WithDate("2024-01-01")

	docs, err := s.Render("https://example.com/", []*model.Post{post})
	require.NoError(t, err)

	rss := string(docs.RSS)
	assert.Contains(t, rss, `xmlns:atom="http://www.w3.org/2005/Atom"`)
	assert.Contains(t, rss, `<atom:link href="https://example.com/rss.xml" rel="self" type="application/rss+xml"></atom:link>`)
	assert.Contains(t, rss, "<url>https://example.com/profile_pic_website.png</url>")
	var parsed rssDoc
	require.NoError(t, xml.Unmarshal(docs.RSS, &parsed))
	assert.Len(t, parsed.Channel.Items, 1)

	var atom atomDoc
	require.NoError(t, xml.Unmarshal(docs.Atom, &atom))
	assert.Equal(t, "https://example.com", atom.ID)
	assert.Equal(t, "https://example.com/atom.xml", atom.Link.Href)
	assert.Equal(t, "self", atom.Link.Rel)
	assert.Equal(t, "https://example.com/favicon/favicon.svg", atom.Icon)
	assert.Equal(t, "https://example.com/profile_pic_website.png", atom.Logo)

	var jf jsonDoc
	require.NoError(t, json.Unmarshal(docs.JSON, &jf))
	assert.Equal(t, "https://example.com/rss.json", jf.FeedURL)
	assert.Equal(t, "https://example.com/favicon/favicon.svg", jf.Favicon)
}
