package core

import (
	"fmt"
	"strings"
)

// ValidatePage validates a Page according to domain rules.
//
// Validation rules:
//   - Number must be 1 or greater (page numbers are 1-indexed)
//   - Content must not be blank after trimming (empty pages are dropped
//     before persistence, never stored)
//
// NOT validated:
//   - Summary (may be empty when no summarizer produced output)
//   - WordCount (derived from Content by the pipeline)
func ValidatePage(page *Page) error {
	if page == nil {
		return fmt.Errorf("%w: page is nil", ErrInvalidPage)
	}

	if page.Number < 1 {
		return fmt.Errorf("%w: %w", ErrInvalidPage, ErrInvalidPageNumber)
	}

	if strings.TrimSpace(page.Content) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidPage, ErrEmptyContent)
	}

	return nil
}

// ValidateIndexEntry validates an IndexEntry according to domain rules.
//
// Validation rules:
//   - Filename must not be empty
//   - ContentHash must not be empty (UnknownHash is valid; it marks an
//     unreadable file and forces reprocessing)
//   - TotalPages and TotalWords must not be negative
func ValidateIndexEntry(entry *IndexEntry) error {
	if entry == nil {
		return fmt.Errorf("%w: entry is nil", ErrInvalidIndexEntry)
	}

	if entry.Filename == "" {
		return fmt.Errorf("%w: %w", ErrInvalidIndexEntry, ErrEmptyFilename)
	}

	if entry.ContentHash == "" {
		return fmt.Errorf("%w: content hash cannot be empty", ErrInvalidIndexEntry)
	}

	if entry.TotalPages < 0 || entry.TotalWords < 0 {
		return fmt.Errorf("%w: negative page or word count", ErrInvalidIndexEntry)
	}

	return nil
}

// ValidateAnnotation validates an Annotation according to domain rules.
//
// Validation rules:
//   - Filename must not be empty
//   - Every page summary must carry a valid 1-indexed page number
func ValidateAnnotation(annotation *Annotation) error {
	if annotation == nil {
		return fmt.Errorf("%w: annotation is nil", ErrInvalidAnnotation)
	}

	if annotation.Filename == "" {
		return fmt.Errorf("%w: %w", ErrInvalidAnnotation, ErrEmptyFilename)
	}

	for _, summary := range annotation.Summaries {
		if summary.PageNumber < 1 {
			return fmt.Errorf("%w: %w", ErrInvalidAnnotation, ErrInvalidPageNumber)
		}
	}

	return nil
}
