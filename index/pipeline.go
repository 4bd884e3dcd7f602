package index

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/chalkline/docdex/ai"
	"github.com/chalkline/docdex/ai/rulebased"
	"github.com/chalkline/docdex/annotate"
	"github.com/chalkline/docdex/core"
	"github.com/chalkline/docdex/extract"
	"github.com/chalkline/docdex/storage"
)

const (
	defaultPoolSize       = 4
	defaultPageSummaryLen = 400
	defaultDocSummaryLen  = 1000
)

// Stats reports the outcome of one indexing run.
type Stats struct {
	Processed int
	Skipped   int
	Failed    int
}

// Pipeline walks a documents directory and brings the index, content
// cache and annotations up to date with it.
type Pipeline struct {
	index       storage.IndexStore
	content     storage.ContentStore
	annotations storage.AnnotationStore
	registry    *extract.Registry
	annotator   *annotate.Annotator

	// summarizers is an ordered strategy list. The pipeline stops at
	// the first success; the last entry is always the rule-based
	// summarizer, which cannot fail.
	summarizers []ai.Summarizer

	poolSize       int
	pageSummaryLen int
	docSummaryLen  int
	logger         *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the number of page workers (default 4).
func WithPoolSize(n int) Option {
	return func(p *Pipeline) error {
		if n < 1 {
			return fmt.Errorf("pool size must be at least 1, got %d", n)
		}
		p.poolSize = n
		return nil
	}
}

// WithLogger sets the logger used for pipeline diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			return fmt.Errorf("logger cannot be nil")
		}
		p.logger = logger
		return nil
	}
}

// WithSummarizer prepends a summarizer to the strategy list, ahead of
// the terminal rule-based fallback.
func WithSummarizer(s ai.Summarizer) Option {
	return func(p *Pipeline) error {
		if s == nil {
			return fmt.Errorf("summarizer cannot be nil")
		}
		p.summarizers = append([]ai.Summarizer{s}, p.summarizers...)
		return nil
	}
}

// WithSummaryLengths overrides the per-page and per-document summary
// bounds (defaults 400 and 1000 characters).
func WithSummaryLengths(page, doc int) Option {
	return func(p *Pipeline) error {
		if page < 1 || doc < 1 {
			return fmt.Errorf("summary lengths must be positive")
		}
		p.pageSummaryLen = page
		p.docSummaryLen = doc
		return nil
	}
}

// New creates a Pipeline over the given stores.
func New(
	index storage.IndexStore,
	content storage.ContentStore,
	annotations storage.AnnotationStore,
	registry *extract.Registry,
	annotator *annotate.Annotator,
	opts ...Option,
) (*Pipeline, error) {
	if index == nil {
		return nil, fmt.Errorf("index store cannot be nil")
	}
	if content == nil {
		return nil, fmt.Errorf("content store cannot be nil")
	}
	if annotations == nil {
		return nil, fmt.Errorf("annotation store cannot be nil")
	}
	if registry == nil {
		return nil, fmt.Errorf("extractor registry cannot be nil")
	}
	if annotator == nil {
		return nil, fmt.Errorf("annotator cannot be nil")
	}

	p := &Pipeline{
		index:          index,
		content:        content,
		annotations:    annotations,
		registry:       registry,
		annotator:      annotator,
		summarizers:    []ai.Summarizer{rulebased.New()},
		poolSize:       defaultPoolSize,
		pageSummaryLen: defaultPageSummaryLen,
		docSummaryLen:  defaultDocSummaryLen,
		logger:         slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, fmt.Errorf("failed to apply pipeline option: %w", err)
		}
	}
	return p, nil
}

// Run indexes every supported document under dir. Unchanged documents
// are carried forward untouched; changed or new ones are reprocessed.
// The index file is replaced atomically once all documents are done.
func (p *Pipeline) Run(ctx context.Context, dir string) (*Stats, error) {
	existing, err := p.index.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load index: %w", err)
	}

	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read documents directory: %w", err)
	}

	pool, err := ants.NewPool(p.poolSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create worker pool: %w", err)
	}
	defer pool.Release()

	stats := &Stats{}
	updated := make(map[string]*core.IndexEntry)

	for _, dirEntry := range dirEntries {
		if dirEntry.IsDir() {
			continue
		}
		filename := dirEntry.Name()
		if _, ok := p.registry.ForFile(filename); !ok {
			continue
		}

		path := filepath.Join(dir, filename)
		hash := core.HashFile(path)

		if prev, ok := existing[filename]; ok && !prev.Stale(hash) {
			p.logger.Debug("document unchanged", "filename", filename)
			updated[filename] = prev
			stats.Skipped++
			continue
		}

		entry, err := p.processDocument(ctx, pool, filename, path, hash)
		if err != nil {
			if isPersistenceError(err) {
				return stats, err
			}
			p.logger.Warn("skipping document",
				"filename", filename,
				"error", err)
			stats.Failed++
			continue
		}

		updated[filename] = entry
		stats.Processed++
		p.logger.Info("indexed document",
			"filename", filename,
			"pages", entry.TotalPages,
			"words", entry.TotalWords)
	}

	if err := p.index.Replace(ctx, updated); err != nil {
		return stats, fmt.Errorf("failed to persist index: %w", err)
	}
	return stats, nil
}

// persistenceError marks store failures, which abort the run instead of
// skipping the document.
type persistenceError struct {
	err error
}

func (e *persistenceError) Error() string { return e.err.Error() }
func (e *persistenceError) Unwrap() error { return e.err }

func isPersistenceError(err error) bool {
	var pe *persistenceError
	return errors.As(err, &pe)
}

// processDocument extracts, summarizes, annotates and persists one
// document, returning its fresh index entry.
func (p *Pipeline) processDocument(ctx context.Context, pool *ants.Pool, filename, path, hash string) (*core.IndexEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filename, err)
	}

	extractor, ok := p.registry.ForFile(filename)
	if !ok {
		return nil, fmt.Errorf("%w: no extractor for %s", extract.ErrUnreadableDocument, filename)
	}

	pageTexts, err := extractor.Extract(data)
	if err != nil {
		return nil, fmt.Errorf("failed to extract %s: %w", filename, err)
	}

	pages := p.summarizePages(ctx, pool, filename, pageTexts)
	if len(pages) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyDocument, filename)
	}

	summaries := make([]string, len(pages))
	contents := make([]string, len(pages))
	totalWords := 0
	for i, page := range pages {
		summaries[i] = page.Summary
		contents[i] = page.Content
		totalWords += page.WordCount
	}

	docSummary := strings.Join(summaries, " ")
	if runes := []rune(docSummary); len(runes) > p.docSummaryLen {
		docSummary = string(runes[:p.docSummaryLen]) + "..."
	}

	cache := &core.ContentCache{
		Filename:    filename,
		Pages:       pages,
		FullContent: strings.Join(contents, " "),
		CachedAt:    time.Now().UTC(),
	}
	if err := p.content.Put(ctx, cache); err != nil {
		return nil, &persistenceError{fmt.Errorf("failed to cache content for %s: %w", filename, err)}
	}

	annotation, err := p.annotator.Annotate(filename, pages)
	if err != nil {
		return nil, fmt.Errorf("failed to annotate %s: %w", filename, err)
	}
	if err := p.annotations.Put(ctx, annotation); err != nil {
		return nil, &persistenceError{fmt.Errorf("failed to store annotation for %s: %w", filename, err)}
	}

	return &core.IndexEntry{
		Filename:        filename,
		FilePath:        path,
		ContentHash:     hash,
		TotalPages:      len(pages),
		TotalWords:      totalWords,
		DocumentSummary: docSummary,
		LastUpdated:     time.Now().UTC(),
		ContentKey:      filename,
	}, nil
}

// summarizePages fans page texts out through the worker pool, one task
// per page, and fans results back in ordered by page number. Blank
// pages are dropped.
func (p *Pipeline) summarizePages(ctx context.Context, pool *ants.Pool, filename string, pageTexts []core.PageText) []core.Page {
	results := make([]core.Page, len(pageTexts))
	var wg sync.WaitGroup

	for i, pt := range pageTexts {
		content := strings.TrimSpace(pt.Text)
		if content == "" {
			continue
		}

		wg.Add(1)
		task := func() {
			defer wg.Done()
			summary, err := p.summarize(ctx, content, p.pageSummaryLen)
			if err != nil {
				p.logger.Error("summarizing page failed",
					"filename", filename,
					"page", pt.Number,
					"error", err)
			}
			results[i] = core.Page{
				Number:    pt.Number,
				Content:   content,
				Summary:   summary,
				WordCount: len(strings.Fields(content)),
			}
		}
		if err := pool.Submit(task); err != nil {
			// Pool rejected the task (released or overloaded beyond
			// blocking limits); run it inline rather than lose the page.
			p.logger.Warn("worker pool rejected page task, running inline",
				"filename", filename,
				"page", pt.Number,
				"error", err)
			task()
		}
	}
	wg.Wait()

	pages := make([]core.Page, 0, len(results))
	for _, page := range results {
		if page.Number == 0 {
			continue
		}
		pages = append(pages, page)
	}
	slices.SortFunc(pages, func(a, b core.Page) int {
		return a.Number - b.Number
	})
	return pages
}

// summarize walks the strategy list and returns the first successful
// summary. The terminal rule-based strategy never fails, so
// ErrNoSummarizer can only happen with a custom strategy list.
func (p *Pipeline) summarize(ctx context.Context, text string, maxLen int) (string, error) {
	for _, s := range p.summarizers {
		summary, err := s.Summarize(ctx, text, maxLen)
		if err != nil {
			p.logger.Debug("summarizer strategy failed, trying next",
				"error", err)
			continue
		}
		return summary, nil
	}
	return "", ErrNoSummarizer
}
