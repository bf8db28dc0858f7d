package site

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reruns a build when files below its directories change. Bursts of
// events within the debounce window trigger a single rebuild.
type Watcher struct {
	watcher  *fsnotify.Watcher
	debounce time.Duration
	rebuild  func(ctx context.Context) error
}

// NewWatcher watches every directory below each of dirs. Directories created
// later are picked up as they appear.
func NewWatcher(dirs []string, debounce time.Duration, rebuild func(ctx context.Context) error) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	w := &Watcher{
		watcher:  watcher,
		debounce: debounce,
		rebuild:  rebuild,
	}
	for _, dir := range dirs {
		err := w.addTree(dir)
		if err != nil {
			watcher.Close()
			return nil, err
		}
	}

	return w, nil
}

func (w *Watcher) addTree(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
		if !d.IsDir() {
			return nil
		}
		slog.Debug("watching directory", "dir", path)
		return w.watcher.Add(path)
	})
}

// Run blocks until ctx is cancelled and closes the underlying watcher before
// returning. Rebuild errors are logged, not returned, so one bad save does
// not end the session.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()
	pending := false

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !relevant(event) {
				continue
			}
			slog.Debug("content changed", "file", event.Name, "op", event.Op.String())
			if event.Has(fsnotify.Create) {
				// New directories need their own watch; errors mean it was a file.
				_ = w.addTree(event.Name)
			}
			pending = true
			timer.Reset(w.debounce)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("watch error", "error", err)

		case <-timer.C:
			if !pending {
				continue
			}
			pending = false
			err := w.rebuild(ctx)
			if err != nil {
				slog.Error("rebuild failed", "error", err)
			}
		}
	}
}

// relevant drops chmod-only events and editor swap files.
func relevant(event fsnotify.Event) bool {
	if event.Op == fsnotify.Chmod {
		return false
	}
	base := filepath.Base(event.Name)
	return !strings.HasPrefix(base, ".") && !strings.HasSuffix(base, "~")
}
