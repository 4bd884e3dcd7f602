package badger

import (
	"context"

	"github.com/dgraph-io/badger/v4"

	"github.com/chalkline/docdex/core"
	"github.com/chalkline/docdex/storage"
)

// AnnotationStore implements storage.AnnotationStore for BadgerDB.
type AnnotationStore struct {
	backend *Backend
}

var _ storage.AnnotationStore = (*AnnotationStore)(nil)

// NewAnnotationStore creates a new AnnotationStore.
func NewAnnotationStore(backend *Backend) (storage.AnnotationStore, error) {
	if backend == nil {
		return nil, storage.ErrStorageClosed
	}
	return &AnnotationStore{backend: backend}, nil
}

// Put stores the annotation for a document.
func (s *AnnotationStore) Put(ctx context.Context, annotation *core.Annotation) error {
	if err := core.ValidateAnnotation(annotation); err != nil {
		return err
	}

	value, err := storage.MarshalAnnotation(annotation)
	if err != nil {
		return err
	}

	return s.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Set(makeAnnotationKey(annotation.Filename), value); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// Get retrieves the annotation for a document.
func (s *AnnotationStore) Get(ctx context.Context, filename string) (*core.Annotation, error) {
	var annotation *core.Annotation

	err := s.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeAnnotationKey(filename))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return storage.ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			var unmarshalErr error
			annotation, unmarshalErr = storage.UnmarshalAnnotation(val)
			return unmarshalErr
		})
	}, false)
	if err != nil {
		return nil, err
	}

	return annotation, nil
}

// Close is a no-op; the shared backend owns the database handle.
func (s *AnnotationStore) Close() error {
	return nil
}
