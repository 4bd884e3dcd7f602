package badger

import "github.com/chalkline/docdex/storage"

// NewMemoryStores creates in-memory content and annotation stores for testing.
// Returns contentStore, annotationStore, backend, and error.
// Caller must close the backend when done.
func NewMemoryStores() (storage.ContentStore, storage.AnnotationStore, *Backend, error) {
	backend, err := OpenBackend("", true)
	if err != nil {
		return nil, nil, nil, err
	}

	contentStore, err := NewContentStore(backend)
	if err != nil {
		backend.Close()
		return nil, nil, nil, err
	}

	annotationStore, err := NewAnnotationStore(backend)
	if err != nil {
		contentStore.Close()
		backend.Close()
		return nil, nil, nil, err
	}

	return contentStore, annotationStore, backend, nil
}
