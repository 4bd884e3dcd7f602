package ai

import "context"

// Summarizer condenses text to at most maxLen characters.
// Implementations must be thread-safe for concurrent use.
//
// Required invariant: when len(text) <= maxLen the input is returned
// unchanged. Network-backed implementations return an error on failure,
// timeout, empty result, or when the model's output overshoots the bound by
// a wide margin; callers iterate an ordered strategy list and stop at the
// first success, with the rule-based summarizer as the terminal strategy.
type Summarizer interface {
	// Summarize returns a summary of text no longer than maxLen characters.
	Summarize(ctx context.Context, text string, maxLen int) (string, error)
}

// SentenceExtractor selects the sentences most relevant to a query from
// chunked document text. It backs the fine-grained extraction step that
// runs downstream of lexical retrieval.
// Implementations must be thread-safe for concurrent use.
type SentenceExtractor interface {
	// RelevantSentences returns up to topK sentences copied verbatim from
	// the chunks, most relevant to the query first.
	// Returns an empty slice if nothing relevant is found.
	RelevantSentences(ctx context.Context, query string, chunks []string, topK int) ([]string, error)
}

// Provider aggregates AI capabilities for convenient initialization and
// lifecycle management. Which implementation backs the provider is decided
// explicitly at construction, never by environment sniffing inside library
// code.
type Provider interface {
	// Summarizer returns the text summarization capability.
	Summarizer() Summarizer

	// SentenceExtractor returns the relevant-sentence extraction capability.
	SentenceExtractor() SentenceExtractor

	// Close releases resources held by the provider and its services.
	Close() error
}
