package storage

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// LocalStorage writes files below a root directory, typically the public
// directory of a static export.
type LocalStorage struct {
	root string
}

func NewLocalStorage(root string) *LocalStorage {
	return &LocalStorage{root: root}
}

func (s *LocalStorage) Root() string {
	return s.root
}

// Save writes file to path, creating parent directories as needed.
func (s *LocalStorage) Save(path string, file io.Reader) error {
	full, err := s.resolve(path)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}

	f, err := os.Create(full)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	_, err = io.Copy(f, file)
	closeErr := f.Close()
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if closeErr != nil {
		return fmt.Errorf("failed to close %s: %w", path, closeErr)
	}
	return nil
}

// Delete removes path. Missing files are not an error.
func (s *LocalStorage) Delete(path string) error {
	full, err := s.resolve(path)
	if err != nil {
		return err
	}
	err = os.Remove(full)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete %s: %w", path, err)
	}
	return nil
}

// URL returns the site-relative URL of path.
func (s *LocalStorage) URL(path string) string {
	return "/" + strings.TrimPrefix(filepath.ToSlash(path), "/")
}

// Reset removes and recreates the root directory.
func (s *LocalStorage) Reset() error {
	if err := os.RemoveAll(s.root); err != nil {
		return fmt.Errorf("failed to remove %s: %w", s.root, err)
	}
	return os.MkdirAll(s.root, 0o755)
}

// Walk calls fn for every regular file below the root with its path
// relative to the root.
func (s *LocalStorage) Walk(fn func(rel string) error) error {
	return filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(s.root, path)
		if err != nil {
			return err
		}
		return fn(filepath.ToSlash(rel))
	})
}

// Open opens a stored file for reading.
func (s *LocalStorage) Open(path string) (*os.File, error) {
	full, err := s.resolve(path)
	if err != nil {
		return nil, err
	}
	return os.Open(full)
}

func (s *LocalStorage) resolve(path string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(strings.TrimPrefix(path, "/")))
	if clean == "." || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("invalid storage path %q", path)
	}
	return filepath.Join(s.root, clean), nil
}
