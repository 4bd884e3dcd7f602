package mock

import "github.com/chalkline/docdex/ai"

// MockProvider is a test double for ai.Provider.
// It aggregates mock summarizer and sentence extractor instances.
type MockProvider struct {
	summarizer *MockSummarizer
	sentences  *MockSentenceExtractor
}

// NewMockProvider creates a new mock provider with default mock services.
//
// Returns ai.Provider interface for consistency with production
// constructors. Use GetMockSummarizer()/GetMockSentenceExtractor() to
// access concrete types for test assertions.
func NewMockProvider() ai.Provider {
	return &MockProvider{
		summarizer: NewMockSummarizer(),
		sentences:  NewMockSentenceExtractor(),
	}
}

// Summarizer returns the mock summarizer.
func (p *MockProvider) Summarizer() ai.Summarizer {
	return p.summarizer
}

// SentenceExtractor returns the mock sentence extractor.
func (p *MockProvider) SentenceExtractor() ai.SentenceExtractor {
	return p.sentences
}

// Close is a no-op for mock provider.
func (p *MockProvider) Close() error {
	return nil
}

// GetMockSummarizer returns the underlying mock summarizer for test
// assertions.
func (p *MockProvider) GetMockSummarizer() *MockSummarizer {
	return p.summarizer
}

// GetMockSentenceExtractor returns the underlying mock sentence extractor
// for test assertions.
func (p *MockProvider) GetMockSentenceExtractor() *MockSentenceExtractor {
	return p.sentences
}
