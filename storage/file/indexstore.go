// Package file provides a JSON file backed storage.IndexStore.
//
// The index lives in a single human-readable JSON file so it can be
// inspected and diffed outside the indexer. Writes go through a
// temporary file in the same directory followed by an atomic rename,
// so a crash mid-write never leaves a truncated index behind.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/chalkline/docdex/core"
	"github.com/chalkline/docdex/storage"
)

// IndexStore implements storage.IndexStore on a single JSON file.
type IndexStore struct {
	path string
	mu   sync.Mutex
}

var _ storage.IndexStore = (*IndexStore)(nil)

// NewIndexStore creates an IndexStore backed by the file at path.
// The file does not need to exist yet.
func NewIndexStore(path string) (storage.IndexStore, error) {
	if path == "" {
		return nil, fmt.Errorf("index path cannot be empty")
	}
	return &IndexStore{path: path}, nil
}

// Load reads the whole index from disk. A missing file yields an empty
// map so a first run starts from a clean index.
func (s *IndexStore) Load(ctx context.Context) (map[string]*core.IndexEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[string]*core.IndexEntry), nil
		}
		return nil, fmt.Errorf("failed to read index file: %w", err)
	}

	entries := make(map[string]*core.IndexEntry)
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: %w", storage.ErrSerializationFailed, err)
	}
	return entries, nil
}

// Replace atomically swaps the index file for the given entries.
func (s *IndexStore) Replace(ctx context.Context, entries map[string]*core.IndexEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %w", storage.ErrSerializationFailed, err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create index directory: %w", err)
	}

	// Write to a temp file in the same directory; rename is atomic
	// only within one filesystem.
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temporary index file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write index file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close index file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace index file: %w", err)
	}
	return nil
}
