// Package highlight locates answer spans inside rendered documents and
// marks them.
//
// The Highlighter itself only finds character regions in a document's
// text layer; drawing is delegated to a Document implementation. Span
// matching degrades through an ordered strategy list, from exact
// substring search down to windowed partial matching, and a span that
// cannot be located anywhere is silently omitted rather than failing
// the whole document.
package highlight

import (
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strings"
)

const (
	// windowed matching parameters for long spans
	windowWords     = 8
	windowStep      = 5
	minWindowChars  = 21
	minWindowedSpan = 6 // spans with fewer words never window
)

var (
	whitespacePattern = regexp.MustCompile(`\s+`)
	pageMarkerPattern = regexp.MustCompile(`--- Page \d+ ---`)
)

// Region is a located span: character offsets [Start, End) within the
// text layer of a 1-indexed page.
type Region struct {
	Page  int
	Start int
	End   int
}

// Document is a markable rendition of one document. Mark calls stack;
// marking the same region twice draws it twice.
type Document interface {
	// PageCount returns the number of pages.
	PageCount() int

	// PageText returns the text layer of a 1-indexed page. The layer
	// must be stable across calls so Region offsets stay valid.
	PageText(page int) (string, error)

	// Mark draws a highlight over the region.
	Mark(region Region) error

	// Bytes renders the document with all marks applied.
	Bytes() ([]byte, error)
}

// Provider opens raw document bytes as a markable Document.
type Provider interface {
	Open(data []byte) (Document, error)
}

// Highlighter marks text spans in documents.
type Highlighter struct {
	provider Provider
	logger   *slog.Logger
}

// Option configures a Highlighter.
type Option func(*Highlighter) error

// WithLogger sets the logger used for highlighting diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(h *Highlighter) error {
		if logger == nil {
			return fmt.Errorf("logger cannot be nil")
		}
		h.logger = logger
		return nil
	}
}

// New creates a Highlighter that opens documents through provider.
func New(provider Provider, opts ...Option) (*Highlighter, error) {
	if provider == nil {
		return nil, fmt.Errorf("document provider cannot be nil")
	}

	h := &Highlighter{
		provider: provider,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(h); err != nil {
			return nil, fmt.Errorf("failed to apply highlighter option: %w", err)
		}
	}
	return h, nil
}

// Apply marks every occurrence of the given spans in the document and
// returns the marked rendition. Spans that cannot be located are
// omitted; if nothing can be located, or the document cannot be opened
// or rendered, the input bytes come back unchanged.
func (h *Highlighter) Apply(data []byte, spans []string) []byte {
	cleaned := normalizeSpans(spans)
	if len(cleaned) == 0 {
		return data
	}

	doc, err := h.provider.Open(data)
	if err != nil {
		h.logger.Warn("cannot open document for highlighting", "error", err)
		return data
	}

	marked := 0
	for page := 1; page <= doc.PageCount(); page++ {
		text, err := doc.PageText(page)
		if err != nil {
			h.logger.Warn("cannot read page text", "page", page, "error", err)
			continue
		}

		for _, span := range cleaned {
			for _, region := range findSpan(text, span) {
				region.Page = page
				if err := doc.Mark(region); err != nil {
					h.logger.Warn("failed to mark region",
						"page", page,
						"error", err)
					continue
				}
				marked++
			}
		}
	}

	if marked == 0 {
		h.logger.Debug("no spans located, returning document unchanged")
		return data
	}

	out, err := doc.Bytes()
	if err != nil {
		h.logger.Warn("failed to render highlighted document", "error", err)
		return data
	}

	h.logger.Debug("highlighted document", "marks", marked, "spans", len(cleaned))
	return out
}

// normalizeSpans collapses whitespace, drops blanks and orders spans
// longest first so short spans never pre-empt the longer spans that
// contain them.
func normalizeSpans(spans []string) []string {
	cleaned := make([]string, 0, len(spans))
	for _, span := range spans {
		s := whitespacePattern.ReplaceAllString(strings.TrimSpace(span), " ")
		if s != "" {
			cleaned = append(cleaned, s)
		}
	}
	sort.SliceStable(cleaned, func(i, j int) bool {
		return len(cleaned[i]) > len(cleaned[j])
	})
	return cleaned
}

// findSpan locates a span in one page's text layer, degrading from
// exact search to marker-stripped search to windowed partial matches.
// Returned regions have Start/End set; Page is filled by the caller.
func findSpan(text, span string) []Region {
	if regions := indexAll(text, span); len(regions) > 0 {
		return regions
	}

	stripped := strings.TrimSpace(pageMarkerPattern.ReplaceAllString(span, ""))
	if stripped != "" && stripped != span {
		if regions := indexAll(text, stripped); len(regions) > 0 {
			return regions
		}
	}

	words := strings.Fields(span)
	if len(words) < minWindowedSpan {
		return nil
	}

	var regions []Region
	for i := 0; i < len(words); i += windowStep {
		end := i + windowWords
		if end > len(words) {
			end = len(words)
		}
		window := strings.Join(words[i:end], " ")
		if len(window) < minWindowChars {
			continue
		}
		regions = append(regions, indexAll(text, window)...)
	}
	return regions
}

// indexAll finds every non-overlapping occurrence of needle in text.
func indexAll(text, needle string) []Region {
	var regions []Region
	offset := 0
	for {
		i := strings.Index(text[offset:], needle)
		if i < 0 {
			return regions
		}
		start := offset + i
		regions = append(regions, Region{Start: start, End: start + len(needle)})
		offset = start + len(needle)
	}
}
