package annotate

import (
	"fmt"
	"log/slog"

	"github.com/chalkline/docdex/core"
)

// Annotator builds page annotations out of indexed page content.
type Annotator struct {
	logger *slog.Logger
}

// Option configures an Annotator.
type Option func(*Annotator) error

// WithLogger sets the logger used for annotation diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Annotator) error {
		if logger == nil {
			return fmt.Errorf("logger cannot be nil")
		}
		a.logger = logger
		return nil
	}
}

// New creates an Annotator.
func New(opts ...Option) (*Annotator, error) {
	a := &Annotator{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(a); err != nil {
			return nil, fmt.Errorf("failed to apply annotator option: %w", err)
		}
	}
	return a, nil
}

// Annotate produces the annotation for a document from its summarized
// pages. Keywords and relations come from the page content, not the
// summary, so terms dropped during summarization stay searchable.
func (a *Annotator) Annotate(filename string, pages []core.Page) (*core.Annotation, error) {
	if filename == "" {
		return nil, core.ErrEmptyFilename
	}

	summaries := make([]core.PageSummary, 0, len(pages))
	for _, page := range pages {
		summaries = append(summaries, core.PageSummary{
			PageNumber: page.Number,
			Summary:    page.Summary,
			Keywords:   a.Keywords(page.Content),
			Relations:  a.Relations(page.Content),
		})
	}

	a.logger.Debug("annotated document",
		"filename", filename,
		"pages", len(summaries))

	return &core.Annotation{
		Filename:  filename,
		Summaries: summaries,
	}, nil
}
