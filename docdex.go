package docdex

import (
	"log/slog"

	"github.com/chalkline/docdex/ai"
	"github.com/chalkline/docdex/ai/openai"
	"github.com/chalkline/docdex/annotate"
	"github.com/chalkline/docdex/extract"
	"github.com/chalkline/docdex/highlight"
	"github.com/chalkline/docdex/index"
	"github.com/chalkline/docdex/retrieve"
	"github.com/chalkline/docdex/storage"
	badgerstore "github.com/chalkline/docdex/storage/badger"
	filestore "github.com/chalkline/docdex/storage/file"
)

// Corpus bundles the stores and capabilities of one document corpus:
// the index file, the badger-backed content and annotation stores, and
// an optional AI provider used for summarization and sentence
// extraction.
type Corpus struct {
	backend     *badgerstore.Backend
	indexStore  storage.IndexStore
	content     storage.ContentStore
	annotations storage.AnnotationStore
	provider    ai.Provider
	logger      *slog.Logger
}

// CorpusOption configures a Corpus.
type CorpusOption func(*corpusOptions)

type corpusOptions struct {
	aiConfig *ai.Config
}

// WithAIConfig enables network-backed summarization and sentence
// extraction. Without it, indexing uses only the rule-based summarizer.
func WithAIConfig(config *ai.Config) CorpusOption {
	return func(o *corpusOptions) {
		o.aiConfig = config
	}
}

// Open opens a corpus: the index file at indexPath and the content
// database at cachePath (created when missing).
func Open(indexPath, cachePath string, opts ...CorpusOption) (*Corpus, error) {
	options := &corpusOptions{}
	for _, opt := range opts {
		opt(options)
	}

	indexStore, err := filestore.NewIndexStore(indexPath)
	if err != nil {
		return nil, err
	}

	backend, err := badgerstore.OpenBackend(cachePath, false)
	if err != nil {
		return nil, err
	}

	content, err := badgerstore.NewContentStore(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	annotations, err := badgerstore.NewAnnotationStore(backend)
	if err != nil {
		content.Close()
		backend.Close()
		return nil, err
	}

	var provider ai.Provider
	if options.aiConfig != nil {
		provider, err = openai.NewProvider(options.aiConfig)
		if err != nil {
			annotations.Close()
			content.Close()
			backend.Close()
			return nil, err
		}
	}

	return &Corpus{
		backend:     backend,
		indexStore:  indexStore,
		content:     content,
		annotations: annotations,
		provider:    provider,
		logger:      slog.Default(),
	}, nil
}

// Close releases the corpus resources.
func (c *Corpus) Close() error {
	if c.provider != nil {
		if err := c.provider.Close(); err != nil {
			c.logger.Error("error closing AI provider", "err", err)
		}
	}

	if err := c.annotations.Close(); err != nil {
		c.logger.Error("error closing annotation store", "err", err)
		return err
	}
	if err := c.content.Close(); err != nil {
		c.logger.Error("error closing content store", "err", err)
		return err
	}

	if err := c.backend.Close(); err != nil {
		c.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

// IndexStore returns the corpus index store.
func (c *Corpus) IndexStore() storage.IndexStore {
	return c.indexStore
}

// ContentStore returns the corpus content store.
func (c *Corpus) ContentStore() storage.ContentStore {
	return c.content
}

// AnnotationStore returns the corpus annotation store.
func (c *Corpus) AnnotationStore() storage.AnnotationStore {
	return c.annotations
}

// SentenceExtractor returns the AI sentence extraction capability, or
// nil when the corpus was opened without AI.
func (c *Corpus) SentenceExtractor() ai.SentenceExtractor {
	if c.provider == nil {
		return nil
	}
	return c.provider.SentenceExtractor()
}

// NewPipeline creates an indexing pipeline over the corpus. When the
// corpus has an AI provider its summarizer runs ahead of the rule-based
// fallback.
func (c *Corpus) NewPipeline(opts ...index.Option) (*index.Pipeline, error) {
	annotator, err := annotate.New()
	if err != nil {
		return nil, err
	}

	if c.provider != nil {
		opts = append([]index.Option{index.WithSummarizer(c.provider.Summarizer())}, opts...)
	}
	return index.New(c.indexStore, c.content, c.annotations, extract.NewRegistry(), annotator, opts...)
}

// NewSearcher creates a document searcher over the corpus.
func (c *Corpus) NewSearcher(opts ...retrieve.Option) (*retrieve.Searcher, error) {
	return retrieve.NewSearcher(c.indexStore, c.content, opts...)
}

// NewHighlighter creates a highlighter for plain text renditions.
func (c *Corpus) NewHighlighter(opts ...highlight.Option) (*highlight.Highlighter, error) {
	return highlight.New(&highlight.TextProvider{}, opts...)
}
