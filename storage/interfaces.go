package storage

import (
	"context"

	"github.com/chalkline/docdex/core"
)

// IndexStore persists the document index, keyed by filename.
type IndexStore interface {
	// Load reads the whole index. A missing index is not an error; it
	// yields an empty map.
	Load(ctx context.Context) (map[string]*core.IndexEntry, error)

	// Replace atomically swaps the stored index for the given entries.
	// Readers never observe a partially written index.
	Replace(ctx context.Context, entries map[string]*core.IndexEntry) error
}

// ContentStore caches extracted page content per document.
type ContentStore interface {
	// Put stores the content cache for a document, overwriting any
	// previous cache for the same filename.
	Put(ctx context.Context, cache *core.ContentCache) error

	// Get retrieves the content cache for a document.
	// Returns ErrNotFound if no cache exists for the filename.
	Get(ctx context.Context, filename string) (*core.ContentCache, error)

	// Close closes the store and releases resources.
	Close() error
}

// AnnotationStore persists generated document annotations.
type AnnotationStore interface {
	// Put stores the annotation for a document, overwriting any
	// previous annotation for the same filename.
	Put(ctx context.Context, annotation *core.Annotation) error

	// Get retrieves the annotation for a document.
	// Returns ErrNotFound if no annotation exists for the filename.
	Get(ctx context.Context, filename string) (*core.Annotation, error)

	// Close closes the store and releases resources.
	Close() error
}
