package index

import "errors"

var (
	// ErrNoSummarizer indicates the strategy list was exhausted without
	// any summarizer producing output.
	ErrNoSummarizer = errors.New("no summarizer produced a summary")

	// ErrEmptyDocument indicates extraction yielded no non-blank pages.
	ErrEmptyDocument = errors.New("document has no content")
)
