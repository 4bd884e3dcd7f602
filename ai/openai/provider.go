package openai

import (
	"log/slog"

	docai "github.com/chalkline/docdex/ai"
)

// Provider implements ai.Provider using OpenAI-compatible services. It
// manages summarizer and sentence extractor instances sharing one
// configuration.
type Provider struct {
	config    *docai.Config
	summarize *Summarizer
	sentences *SentenceExtractor
	logger    *slog.Logger
}

var _ docai.Provider = (*Provider)(nil)

// NewProvider creates a new AI provider with OpenAI-compatible services.
// The config is validated and normalized before use.
//
// Returns ai.Provider interface (not *Provider) to enforce abstraction and
// prevent coupling to OpenAI-specific implementation details.
func NewProvider(config *docai.Config) (docai.Provider, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	summarize, err := newSummarizer(config)
	if err != nil {
		return nil, err
	}

	sentences, err := newSentenceExtractor(config)
	if err != nil {
		return nil, err
	}

	return &Provider{
		config:    config,
		summarize: summarize,
		sentences: sentences,
		logger:    slog.Default().With("component", "openai-provider"),
	}, nil
}

// Summarizer returns the text summarization service.
func (p *Provider) Summarizer() docai.Summarizer {
	return p.summarize
}

// SentenceExtractor returns the relevant-sentence extraction service.
func (p *Provider) SentenceExtractor() docai.SentenceExtractor {
	return p.sentences
}

// Close releases resources held by the provider.
// Currently a no-op as the underlying clients don't require explicit cleanup.
func (p *Provider) Close() error {
	p.logger.Debug("closing OpenAI provider")
	return nil
}
