package site

import (
	"fmt"
	"log/slog"

	"github.com/templui/folio/internal/storage"
)

// Publish uploads every file of the exported site to dst, keeping relative
// paths. It returns the number of files uploaded.
func Publish(src *storage.LocalStorage, dst storage.Storage) (int, error) {
	count := 0
	err := src.Walk(func(rel string) error {
		f, err := src.Open(rel)
		if err != nil {
			return err
		}
		defer f.Close()

		err = dst.Save(rel, f)
		if err != nil {
			return fmt.Errorf("upload %s: %w", rel, err)
		}
		count++
		slog.Debug("uploaded", "file", rel, "url", dst.URL(rel))
		return nil
	})
	if err != nil {
		return count, err
	}

	slog.Info("site published", "files", count)
	return count, nil
}
