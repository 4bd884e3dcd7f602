package extract

import "errors"

var (
	// ErrUnreadableDocument indicates the raw bytes could not be parsed as
	// the expected document format.
	ErrUnreadableDocument = errors.New("unreadable document")

	// ErrNoPages indicates the document parsed but contained no pages.
	ErrNoPages = errors.New("document contains no pages")
)
