// Package retrieve finds the documents most relevant to a query.
//
// Matching is lexical: each query word counts occurrences in a
// document's full content and, with double weight, in its document
// summary. The top ranked documents come back with their cached pages
// attached so callers can run finer-grained extraction over them.
package retrieve

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/chalkline/docdex/core"
	"github.com/chalkline/docdex/storage"
)

const (
	defaultMaxDocs = 3

	// summaryWeight favors documents whose summary mentions a query
	// word over documents that merely contain it somewhere.
	summaryWeight = 2
)

// Searcher ranks indexed documents against free-text queries.
type Searcher struct {
	index   storage.IndexStore
	content storage.ContentStore
	logger  *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets the logger used for search diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			return fmt.Errorf("logger cannot be nil")
		}
		s.logger = logger
		return nil
	}
}

// NewSearcher creates a Searcher over the given stores.
func NewSearcher(index storage.IndexStore, content storage.ContentStore, opts ...Option) (*Searcher, error) {
	if index == nil {
		return nil, fmt.Errorf("index store cannot be nil")
	}
	if content == nil {
		return nil, fmt.Errorf("content store cannot be nil")
	}

	s := &Searcher{
		index:   index,
		content: content,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, fmt.Errorf("failed to apply searcher option: %w", err)
		}
	}
	return s, nil
}

// Query returns up to maxDocs documents ranked by lexical relevance to
// the query. Documents scoring zero are excluded. A maxDocs of 0 or
// less applies the default of 3.
func (s *Searcher) Query(ctx context.Context, query string, maxDocs int) ([]*core.DocumentMatch, error) {
	if maxDocs <= 0 {
		maxDocs = defaultMaxDocs
	}

	words := strings.Fields(strings.ToLower(query))
	if len(words) == 0 {
		return nil, nil
	}

	entries, err := s.index.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load index: %w", err)
	}

	var matches []*core.DocumentMatch
	for _, entry := range entries {
		cache, err := s.content.Get(ctx, entry.Filename)
		if err != nil {
			s.logger.Warn("skipping document with missing content cache",
				"filename", entry.Filename,
				"error", err)
			continue
		}

		contentLower := strings.ToLower(cache.FullContent)
		summaryLower := strings.ToLower(entry.DocumentSummary)

		score := 0
		for _, word := range words {
			score += strings.Count(contentLower, word)
			score += summaryWeight * strings.Count(summaryLower, word)
		}
		if score == 0 {
			continue
		}

		matches = append(matches, &core.DocumentMatch{
			Entry:       entry,
			Score:       score,
			Pages:       cache.Pages,
			FullContent: cache.FullContent,
		})
	}

	slices.SortFunc(matches, func(a, b *core.DocumentMatch) int {
		if a.Score != b.Score {
			return b.Score - a.Score
		}
		return strings.Compare(a.Entry.Filename, b.Entry.Filename)
	})

	if len(matches) > maxDocs {
		matches = matches[:maxDocs]
	}

	s.logger.Debug("query ranked documents",
		"query", query,
		"matches", len(matches))
	return matches, nil
}
