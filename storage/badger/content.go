package badger

import (
	"context"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/chalkline/docdex/core"
	"github.com/chalkline/docdex/storage"
)

// ContentStore implements storage.ContentStore for BadgerDB.
type ContentStore struct {
	backend *Backend
}

var _ storage.ContentStore = (*ContentStore)(nil)

// NewContentStore creates a new ContentStore.
func NewContentStore(backend *Backend) (storage.ContentStore, error) {
	if backend == nil {
		return nil, storage.ErrStorageClosed
	}
	return &ContentStore{backend: backend}, nil
}

// Put stores the content cache for a document.
func (s *ContentStore) Put(ctx context.Context, cache *core.ContentCache) error {
	if cache.Filename == "" {
		return core.ErrEmptyFilename
	}
	if cache.CachedAt.IsZero() {
		cache.CachedAt = time.Now().UTC()
	}

	value, err := storage.MarshalContentCache(cache)
	if err != nil {
		return err
	}

	return s.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Set(makeContentKey(cache.Filename), value); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// Get retrieves the content cache for a document.
func (s *ContentStore) Get(ctx context.Context, filename string) (*core.ContentCache, error) {
	var cache *core.ContentCache

	err := s.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeContentKey(filename))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return storage.ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			var unmarshalErr error
			cache, unmarshalErr = storage.UnmarshalContentCache(val)
			return unmarshalErr
		})
	}, false)
	if err != nil {
		return nil, err
	}

	return cache, nil
}

// Close is a no-op; the shared backend owns the database handle.
func (s *ContentStore) Close() error {
	return nil
}
