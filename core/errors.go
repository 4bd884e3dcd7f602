package core

import "errors"

// Domain validation errors
var (
	// ErrInvalidIndexEntry indicates an IndexEntry failed validation.
	ErrInvalidIndexEntry = errors.New("invalid index entry")

	// ErrInvalidPage indicates a Page failed validation.
	ErrInvalidPage = errors.New("invalid page")

	// ErrInvalidAnnotation indicates an Annotation failed validation.
	ErrInvalidAnnotation = errors.New("invalid annotation")

	// ErrEmptyFilename indicates the Filename field is empty.
	ErrEmptyFilename = errors.New("filename cannot be empty")

	// ErrEmptyContent indicates the Content field is empty.
	ErrEmptyContent = errors.New("content cannot be empty")

	// ErrInvalidPageNumber indicates a page number below 1.
	ErrInvalidPageNumber = errors.New("page number must be 1 or greater")
)
