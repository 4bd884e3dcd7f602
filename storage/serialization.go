package storage

import (
	"encoding/json"
	"fmt"

	"github.com/chalkline/docdex/core"
)

// MarshalContentCache serializes a ContentCache to bytes.
func MarshalContentCache(cache *core.ContentCache) ([]byte, error) {
	data, err := json.Marshal(cache)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return data, nil
}

// UnmarshalContentCache deserializes a ContentCache from bytes.
func UnmarshalContentCache(data []byte) (*core.ContentCache, error) {
	var cache core.ContentCache
	if err := json.Unmarshal(data, &cache); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return &cache, nil
}

// MarshalAnnotation serializes an Annotation to bytes.
func MarshalAnnotation(annotation *core.Annotation) ([]byte, error) {
	data, err := json.Marshal(annotation)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return data, nil
}

// UnmarshalAnnotation deserializes an Annotation from bytes.
func UnmarshalAnnotation(data []byte) (*core.Annotation, error) {
	var annotation core.Annotation
	if err := json.Unmarshal(data, &annotation); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return &annotation, nil
}
