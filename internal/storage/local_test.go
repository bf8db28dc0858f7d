package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_SaveOverwrites(t *testing.T) {
	root := t.TempDir()
	s := NewLocalStorage(root)

	require.NoError(t, s.Save("posts/hello/index.html", strings.NewReader("first")))
	require.NoError(t, s.Save("posts/hello/index.html", strings.NewReader("second")))

	data, err := os.ReadFile(filepath.Join(root, "posts", "hello", "index.html"))
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}

func TestLocalStorage_RejectsEscapingPaths(t *testing.T) {
	s := NewLocalStorage(t.TempDir())

	assert.Error(t, s.Save("../outside.txt", strings.NewReader("x")))
	assert.Error(t, s.Save("", strings.NewReader("x")))
}

func TestLocalStorage_WalkAndDelete(t *testing.T) {
	s := NewLocalStorage(t.TempDir())
	require.NoError(t, s.Save("a.txt", strings.NewReader("a")))
	require.NoError(t, s.Save("dir/b.txt", strings.NewReader("b")))

	var seen []string
	require.NoError(t, s.Walk(func(rel string) error {
		seen = append(seen, rel)
		return nil
	}))
	assert.ElementsMatch(t, []string{"a.txt", "dir/b.txt"}, seen)

	require.NoError(t, s.Delete("a.txt"))
	require.NoError(t, s.Delete("a.txt"))
	_, err := os.Stat(filepath.Join(s.Root(), "a.txt"))
	assert.True(t, os.IsNotExist(err))
}

func TestLocalStorage_URL(t *testing.T) {
	assert.Equal(t, "/rss.xml", NewLocalStorage("public").URL("rss.xml"))
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "application/rss+xml; charset=utf-8", ContentType("rss.xml"))
	assert.Equal(t, "application/atom+xml; charset=utf-8", ContentType("atom.xml"))
	assert.Equal(t, "application/feed+json; charset=utf-8", ContentType("rss.json"))
	assert.Contains(t, ContentType("posts/hello/index.html"), "text/html")
}
