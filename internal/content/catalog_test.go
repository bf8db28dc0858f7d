package content

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/templui/folio/internal/model"
)

func titles(posts []*model.Post) []string {
	out := make([]string, 0, len(posts))
	for _, p := range posts {
		out = append(out, p.Title)
	}
	return out
}

func TestCatalog_ExternalNewerPostComesFirst(t *testing.T) {
	dir := t.TempDir()
	writePost(t, dir, "local.md", "---\ntitle: Local\ndate: \"2024-01-01\"\n---\nbody\n")

	external := NewStaticSource([]ExternalPost{{
		Title: "External",
		Date:  "2024-06-01",
		URL:   "https://other.example/post",
	}})

	posts, err := NewCatalog(external, NewFileSource(dir)).Posts(model.ListingFields)
	require.NoError(t, err)

	require.Len(t, posts, 2)
	assert.Equal(t, "External", posts[0].Title)
	assert.Equal(t, "Local", posts[1].Title)
}

func TestCatalog_SlugXorURL(t *testing.T) {
	dir := t.TempDir()
	writePost(t, dir, "one.md", "---\ntitle: One\ndate: \"2021-01-01\"\nurl: https://ignored.example\n---\n")

	posts, err := NewCatalog(NewStaticSource(ExternalPosts), NewFileSource(dir)).Posts(model.ListingFields)
	require.NoError(t, err)

	for _, p := range posts {
		hasSlug := p.Slug != ""
		hasURL := p.URL != ""
		assert.True(t, hasSlug != hasURL, "post %q must have exactly one of slug or url", p.Title)
		assert.NotNil(t, p.Tags, "post %q has nil tags", p.Title)
	}
}

func TestCatalog_EmptyStoreYieldsExternalPostsSorted(t *testing.T) {
	list := []ExternalPost{
		{Title: "old", Date: "2019-01-01", URL: "https://a.example"},
		{Title: "new", Date: "2023-01-01", URL: "https://b.example"},
		{Title: "mid", Date: "2021-01-01", URL: "https://c.example"},
	}

	posts, err := NewCatalog(NewStaticSource(list), NewFileSource(t.TempDir())).Posts(model.NewFields(model.FieldTitle))
	require.NoError(t, err)

	if diff := cmp.Diff([]string{"new", "mid", "old"}, titles(posts)); diff != "" {
		t.Errorf("catalog order mismatch (-want +got):\n%s", diff)
	}
	for _, p := range posts {
		assert.True(t, p.Has(model.FieldURL), "external posts ignore projection")
		assert.True(t, p.Has(model.FieldReadingTime))
	}
}

func TestCatalog_DatesCompareAsStrings(t *testing.T) {
	// A non-padded month sorts after "2024-10-01" lexicographically.
	list := []ExternalPost{
		{Title: "october", Date: "2024-10-01", URL: "https://a.example"},
		{Title: "september", Date: "2024-9-01", URL: "https://b.example"},
	}

	posts, err := NewCatalog(NewStaticSource(list)).Posts(0)
	require.NoError(t, err)
	assert.Equal(t, []string{"september", "october"}, titles(posts))
}

func TestCatalog_TiesKeepSourceOrder(t *testing.T) {
	dir := t.TempDir()
	writePost(t, dir, "local.md", "---\ntitle: Local\ndate: \"2022-04-29\"\n---\n")

	list := []ExternalPost{
		{Title: "first", Date: "2022-04-29", URL: "https://a.example"},
		{Title: "second", Date: "2022-04-29", URL: "https://b.example"},
	}

	posts, err := NewCatalog(NewStaticSource(list), NewFileSource(dir)).Posts(model.ListingFields)
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second", "Local"}, titles(posts))
}

func TestCatalog_LoadFailureAbortsBuild(t *testing.T) {
	dir := t.TempDir()
	writePost(t, dir, "good.md", "---\ntitle: Good\n---\n")
	writePost(t, dir, "bad.md", "---\ntitle: [oops\n---\n")

	posts, err := NewCatalog(NewFileSource(dir)).Posts(model.ListingFields)
	require.Error(t, err)
	assert.Nil(t, posts)
}

func TestCatalog_Post(t *testing.T) {
	dir := t.TempDir()
	writePost(t, dir, "hello.md", "---\ntitle: Hello\n---\nhi\n")
	catalog := NewCatalog(NewStaticSource(ExternalPosts), NewFileSource(dir))

	post, err := catalog.Post("hello", model.NewFields(model.FieldTitle))
	require.NoError(t, err)
	assert.Equal(t, "Hello", post.Title)

	_, err = catalog.Post("missing", model.AllFields)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestStaticSource_Validate(t *testing.T) {
	assert.NoError(t, NewStaticSource(ExternalPosts).Validate())

	bad := NewStaticSource([]ExternalPost{{Title: "x", Date: "29/04/2022", URL: "https://a.example"}})
	assert.Error(t, bad.Validate())

	noURL := NewStaticSource([]ExternalPost{{Title: "x", Date: "2022-04-29"}})
	assert.Error(t, noURL.Validate())
}
