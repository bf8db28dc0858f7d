package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string, mod time.Time) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	require.NoError(t, os.Chtimes(path, mod, mod))
}

func TestIsUpToDate(t *testing.T) {
	dir := t.TempDir()
	old := time.Now().Add(-time.Hour)
	out := filepath.Join(dir, "out")
	in := filepath.Join(dir, "in")

	assert.False(t, isUpToDate(out, nil), "missing output")

	touch(t, in, old)
	touch(t, out, old.Add(time.Minute))
	assert.True(t, isUpToDate(out, []string{in, filepath.Join(dir, "gone")}))

	touch(t, in, time.Now())
	assert.False(t, isUpToDate(out, []string{in}))
}

func TestStaleTemplates(t *testing.T) {
	dir := t.TempDir()
	old := time.Now().Add(-time.Hour)

	touch(t, filepath.Join(dir, "ui", "fresh.templ"), old)
	touch(t, filepath.Join(dir, "ui", "fresh_templ.go"), time.Now())
	touch(t, filepath.Join(dir, "ui", "edited_templ.go"), old)
	touch(t, filepath.Join(dir, "ui", "edited.templ"), time.Now())
	touch(t, filepath.Join(dir, "ui", "new.templ"), old)
	touch(t, filepath.Join(dir, "_examples", "x.templ"), old)
	touch(t, filepath.Join(dir, "tmp", "y.templ"), old)

	stale := staleTemplates(dir)
	assert.ElementsMatch(t, []string{
		filepath.Join(dir, "ui", "edited.templ"),
		filepath.Join(dir, "ui", "new.templ"),
	}, stale)
}

func TestTailwindInputs(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()
	touch(t, filepath.Join(dir, cssInput), now)
	touch(t, filepath.Join(dir, "internal", "ui", "components", "layout.templ"), now)
	touch(t, filepath.Join(dir, "internal", "ui", "components", "helpers.go"), now)
	touch(t, filepath.Join(dir, "internal", "ui", "README.md"), now)
	touch(t, filepath.Join(dir, "internal", "markdown", "parser.go"), now)
	touch(t, filepath.Join(dir, "assets", "js", "copy-code.js"), now)

	inputs := tailwindInputs(dir)
	assert.ElementsMatch(t, []string{
		filepath.Join(dir, cssInput),
		filepath.Join(dir, "internal", "ui", "components", "layout.templ"),
		filepath.Join(dir, "internal", "ui", "components", "helpers.go"),
		filepath.Join(dir, "internal", "markdown", "parser.go"),
		filepath.Join(dir, "assets", "js", "copy-code.js"),
	}, inputs)
}
