package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitWriter(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	t.Run("production logs json at info", func(t *testing.T) {
		var buf bytes.Buffer
		flush := InitWriter(&buf, false, "")
		defer flush()

		slog.Debug("hidden")
		slog.Info("feed written", "path", "rss.xml")

		var line map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		assert.Equal(t, "feed written", line["msg"])
		assert.Equal(t, "rss.xml", line["path"])
	})

	t.Run("development logs text at debug", func(t *testing.T) {
		var buf bytes.Buffer
		flush := InitWriter(&buf, true, "")
		defer flush()

		slog.Debug("loaded posts", "count", 3)
		assert.Contains(t, buf.String(), "loaded posts")
		assert.Contains(t, buf.String(), "count=3")
	})
}
