// Package storage provides the storage abstraction layer for docdex.
//
// This package defines store interfaces that decouple storage
// implementation from the indexing and retrieval logic, so different
// backends can be used interchangeably.
//
// # Constructor Return Type Pattern
//
// Public constructors in backend packages follow a "return interface"
// pattern to enforce abstraction:
//
//	store, err := badger.NewContentStore(backend)  // returns storage.ContentStore
//
// Internal constructors may return concrete types since they are only
// used within the implementation package.
//
// # Architecture
//
//   - IndexStore: the document index, loaded whole and replaced whole
//   - ContentStore: cached extracted page content per document
//   - AnnotationStore: generated summaries, keywords and relations
//
// # Thread Safety
//
// All store implementations must be thread-safe and support concurrent
// access from multiple goroutines.
//
// # Context Support
//
// All store methods accept context.Context for cancellation and timeout
// support. Pass context.Background() for operations without specific
// timeout requirements.
package storage
