package site

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/templui/folio/internal/app"
	"github.com/templui/folio/internal/config"
	"github.com/templui/folio/internal/storage"
)

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func newTestApp(t *testing.T) *app.App {
	t.Helper()
	contentDir := t.TempDir()
	writeFile(t, filepath.Join(contentDir, "posts", "hello.mdx"), "---\ntitle: Hello\nexcerpt: First\ndate: \"2024-01-01\"\ntags: [go]\n---\n# Hi\n")
	writeFile(t, filepath.Join(contentDir, "posts", "second.md"), "---\ntitle: Second\ndate: \"2023-05-01\"\ntags: [Go]\n---\nMore text\n")
	writeFile(t, filepath.Join(contentDir, "pages", "about.md"), "---\ntitle: About\n---\nI build things.\n")
	writeFile(t, filepath.Join(contentDir, "static", "favicon", "favicon.svg"), "<svg></svg>")

	a, err := app.New(&config.Config{
		AppEnv:           "production",
		AppURL:           "https://example.com",
		ContentPath:      contentDir,
		PublicPath:       filepath.Join(t.TempDir(), "public"),
		BuildConcurrency: 3,
	})
	require.NoError(t, err)
	return a
}

func listFiles(t *testing.T, s *storage.LocalStorage) []string {
	t.Helper()
	var files []string
	require.NoError(t, s.Walk(func(rel string) error {
		files = append(files, rel)
		return nil
	}))
	sort.Strings(files)
	return files
}

func TestBuilder_Build(t *testing.T) {
	a := newTestApp(t)
	writeFile(t, filepath.Join(a.Cfg.PublicPath, "stale.html"), "old")

	result, err := NewBuilder(a).Build(context.Background())
	require.NoError(t, err)

	files := listFiles(t, a.PublicStorage)
	for _, want := range []string{
		"index.html",
		"posts/index.html",
		"posts/hello/index.html",
		"posts/second/index.html",
		"posts/tag/go/index.html",
		"posts/tag/node/index.html",
		"404.html",
		"sitemap.xml",
		"robots.txt",
		"rss.xml",
		"rss.json",
		"atom.xml",
		"assets/css/output.css",
		"assets/js/copy-code.js",
		"favicon/favicon.svg",
	} {
		assert.Contains(t, files, want)
	}
	assert.NotContains(t, files, "stale.html")
	assert.NotContains(t, files, "posts/tag/Go/index.html", "one page per tag regardless of case")
	assert.Equal(t, len(files), result.Files)
	assert.Equal(t, 9, result.Posts, "two local posts plus the external archive")

	post, err := os.ReadFile(filepath.Join(a.Cfg.PublicPath, "posts", "hello", "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(post), `<h1 id="hi">Hi</h1>`)
	assert.Contains(t, string(post), `<link rel="canonical" href="https://example.com/posts/hello">`)

	tagged, err := os.ReadFile(filepath.Join(a.Cfg.PublicPath, "posts", "tag", "go", "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(tagged), "Hello")
	assert.Contains(t, string(tagged), "Second")

	home, err := os.ReadFile(filepath.Join(a.Cfg.PublicPath, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(home), "I build things.")
}

func TestBuilder_MalformedPostAborts(t *testing.T) {
	a := newTestApp(t)
	writeFile(t, filepath.Join(a.Cfg.PostsPath(), "broken.md"), "---\ntitle: [unclosed\n---\n")

	_, err := NewBuilder(a).Build(context.Background())
	require.Error(t, err)
}

func TestPublish(t *testing.T) {
	a := newTestApp(t)
	_, err := NewBuilder(a).Build(context.Background())
	require.NoError(t, err)

	dst := storage.NewLocalStorage(t.TempDir())
	count, err := Publish(a.PublicStorage, dst)
	require.NoError(t, err)

	files := listFiles(t, dst)
	assert.Equal(t, listFiles(t, a.PublicStorage), files)
	assert.Equal(t, len(files), count)
}

func TestWatcher_RebuildsAndStops(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	dir := t.TempDir()
	rebuilt := make(chan struct{}, 10)
	w, err := NewWatcher([]string{dir}, 50*time.Millisecond, func(ctx context.Context) error {
		rebuilt <- struct{}{}
		return nil
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	for i := 0; i < 3; i++ {
		writeFile(t, filepath.Join(dir, "post.md"), "edit")
	}

	select {
	case <-rebuilt:
	case <-time.After(5 * time.Second):
		t.Fatal("no rebuild after change")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestWatcher_MissingDir(t *testing.T) {
	_, err := NewWatcher([]string{filepath.Join(t.TempDir(), "nope")}, time.Millisecond, func(context.Context) error { return nil })
	assert.Error(t, err)
}
