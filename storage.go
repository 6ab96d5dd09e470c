package dashboard

import (
	"fmt"
	"os"
	"path/filepath"
)

// Backend is the key-value blob the store persists into. Values are opaque
// JSON-encoded arrays; every write is a full-collection overwrite.
type Backend interface {
	// Get returns the value for key, or ok=false if the key was never written.
	Get(key string) (data []byte, ok bool, err error)
	// Put replaces the value for key wholesale.
	Put(key string, data []byte) error
	// Delete removes the key. Deleting a missing key is not an error.
	Delete(key string) error
}

// DirBackend persists each key as a JSON file under a data directory.
type DirBackend struct {
	dir string
}

// NewDirBackend returns a backend rooted at dir. The directory is created
// lazily on first write.
func NewDirBackend(dir string) *DirBackend {
	return &DirBackend{dir: dir}
}

func (b *DirBackend) path(key string) string {
	return filepath.Join(b.dir, key+".json")
}

func (b *DirBackend) Get(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(b.path(key))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("could not read %q: %w", b.path(key), err)
	}
	return data, true, nil
}

func (b *DirBackend) Put(key string, data []byte) error {
	if err := os.MkdirAll(b.dir, 0755); err != nil {
		return fmt.Errorf("could not create data directory %q: %w", b.dir, err)
	}
	if err := os.WriteFile(b.path(key), data, 0644); err != nil {
		return fmt.Errorf("could not write %q: %w", b.path(key), err)
	}
	return nil
}

func (b *DirBackend) Delete(key string) error {
	err := os.Remove(b.path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("could not delete %q: %w", b.path(key), err)
	}
	return nil
}

// MemBackend is an in-memory backend for tests and dry runs.
type MemBackend struct {
	values map[string][]byte
}

// NewMemBackend returns an empty in-memory backend.
func NewMemBackend() *MemBackend {
	return &MemBackend{values: make(map[string][]byte)}
}

func (b *MemBackend) Get(key string) ([]byte, bool, error) {
	data, ok := b.values[key]
	return data, ok, nil
}

func (b *MemBackend) Put(key string, data []byte) error {
	b.values[key] = append([]byte(nil), data...)
	return nil
}

func (b *MemBackend) Delete(key string) error {
	delete(b.values, key)
	return nil
}
