package storage

import "io"

// Storage defines the interface for writing site artifacts
type Storage interface {
	// Save stores a file at the given path, replacing any previous version
	Save(path string, file io.Reader) error

	// Delete removes a file at the given path
	Delete(path string) error

	// URL returns the address the file is served from
	URL(path string) string
}
