package store

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileBackend persists each collection as a flat JSON document under a data
// directory, matching the site's original data/ layout (products.json,
// news.json, offers.json, messages.json).
type FileBackend struct {
	dir string
}

// NewFileBackend creates a file backend rooted at dir, creating the
// directory if needed
func NewFileBackend(dir string) (*FileBackend, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &FileBackend{dir: dir}, nil
}

// Dir returns the backing data directory
func (b *FileBackend) Dir() string { return b.dir }

func (b *FileBackend) path(collection string) string {
	return filepath.Join(b.dir, collection+".json")
}

// Load reads the collection document from disk
func (b *FileBackend) Load(collection string) ([]byte, bool, error) {
	data, err := os.ReadFile(b.path(collection))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read %s: %w", collection, err)
	}
	return data, true, nil
}

// Save writes the collection document to disk via a temp file and rename so
// no reader ever observes a partial write
func (b *FileBackend) Save(collection string, data []byte) error {
	tmp := b.path(collection) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", collection, err)
	}
	if err := os.Rename(tmp, b.path(collection)); err != nil {
		return fmt.Errorf("failed to replace %s: %w", collection, err)
	}
	return nil
}
