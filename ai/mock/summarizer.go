package mock

import (
	"context"
	"sync"

	"github.com/chalkline/docdex/ai"
)

// MockSummarizer is a test double for ai.Summarizer.
// It allows custom behavior injection via function fields.
type MockSummarizer struct {
	// SummarizeFunc is called by Summarize if set.
	// If nil, uses a default prefix truncation.
	SummarizeFunc func(ctx context.Context, text string, maxLen int) (string, error)

	mu        sync.Mutex
	callCount int
}

var _ ai.Summarizer = (*MockSummarizer)(nil)

// NewMockSummarizer creates a mock summarizer with default behavior.
// Note: Returns concrete type to allow test assertions.
func NewMockSummarizer() *MockSummarizer {
	return &MockSummarizer{}
}

// Summarize returns a deterministic mock summary.
// Default behavior: identity within the bound, otherwise a plain prefix.
func (m *MockSummarizer) Summarize(ctx context.Context, text string, maxLen int) (string, error) {
	m.mu.Lock()
	m.callCount++
	m.mu.Unlock()

	if m.SummarizeFunc != nil {
		return m.SummarizeFunc(ctx, text, maxLen)
	}

	runes := []rune(text)
	if len(runes) <= maxLen {
		return text, nil
	}
	return string(runes[:maxLen]), nil
}

// CallCount returns the number of times Summarize was called.
func (m *MockSummarizer) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}
