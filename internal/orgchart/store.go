package orgchart

import (
	"fmt"
	"os"
	"path/filepath"
)

// Store persists rendered chart documents keyed by filename. Charts are
// never updated in place; invalidation is deleting the entry externally.
type Store interface {
	// Get returns the stored bytes and whether the key exists.
	Get(name string) ([]byte, bool, error)
	// Put stores the document under the key, replacing any previous value.
	Put(name string, data []byte) error
	// List returns the set of keys currently stored.
	List() (map[string]bool, error)
}

// FSStore is the filesystem-backed chart store: one HTML file per chart
// under a fixed directory. Growth is unbounded; pruning is a manual,
// external operation.
type FSStore struct {
	dir string
}

// NewFSStore creates the output directory if needed and returns a store over it.
func NewFSStore(dir string) (*FSStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create chart directory %s: %w", dir, err)
	}
	return &FSStore{dir: dir}, nil
}

// Get reads a stored chart; a missing file is a miss, not an error.
func (s *FSStore) Get(name string) ([]byte, bool, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read chart %s: %w", name, err)
	}
	return data, true, nil
}

// Put writes a chart document. Concurrent writers race benignly: the build
// is deterministic for given inputs, so the last writer wins with the same
// bytes.
func (s *FSStore) Put(name string, data []byte) error {
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return fmt.Errorf("failed to write chart %s: %w", name, err)
	}
	return nil
}

// List snapshots the stored chart filenames.
func (s *FSStore) List() (map[string]bool, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list chart directory: %w", err)
	}
	names := make(map[string]bool, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			names[entry.Name()] = true
		}
	}
	return names, nil
}
