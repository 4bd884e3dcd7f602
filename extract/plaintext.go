package extract

import (
	"strings"

	"github.com/chalkline/docdex/core"
)

// Plaintext extracts page text from plain text documents. Form feed
// characters act as page separators; a document without any yields a
// single page.
type Plaintext struct{}

var _ Extractor = (*Plaintext)(nil)

// Extract splits the text on form feeds into 1-indexed pages.
func (e *Plaintext) Extract(data []byte) ([]core.PageText, error) {
	text := string(data)
	if strings.TrimSpace(text) == "" {
		return nil, ErrNoPages
	}

	parts := strings.Split(text, "\f")
	pages := make([]core.PageText, len(parts))
	for i, part := range parts {
		pages[i] = core.PageText{Number: i + 1, Text: part}
	}
	return pages, nil
}
