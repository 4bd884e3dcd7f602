package extract

import (
	"bytes"
	"fmt"
	"log/slog"

	"github.com/ledongthuc/pdf"

	"github.com/chalkline/docdex/core"
)

// PDF extracts per-page text from PDF documents.
type PDF struct{}

var _ Extractor = (*PDF)(nil)

// Extract parses the PDF and returns one PageText per page. Pages whose
// text layer cannot be decoded are returned empty rather than failing the
// whole document.
func (e *PDF) Extract(data []byte) ([]core.PageText, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableDocument, err)
	}

	total := reader.NumPage()
	if total < 1 {
		return nil, ErrNoPages
	}

	pages := make([]core.PageText, 0, total)
	for i := 1; i <= total; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, core.PageText{Number: i})
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			slog.Warn("failed to extract page text", "page", i, "err", err)
			pages = append(pages, core.PageText{Number: i})
			continue
		}

		pages = append(pages, core.PageText{Number: i, Text: text})
	}

	return pages, nil
}
