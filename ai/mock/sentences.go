package mock

import (
	"context"
	"strings"
	"sync"

	"github.com/chalkline/docdex/ai"
)

// MockSentenceExtractor is a test double for ai.SentenceExtractor.
// It allows custom behavior injection via function fields.
type MockSentenceExtractor struct {
	// RelevantSentencesFunc is called by RelevantSentences if set.
	// If nil, uses a default that returns the first sentence of each chunk.
	RelevantSentencesFunc func(ctx context.Context, query string, chunks []string, topK int) ([]string, error)

	mu        sync.Mutex
	callCount int
}

var _ ai.SentenceExtractor = (*MockSentenceExtractor)(nil)

// NewMockSentenceExtractor creates a mock sentence extractor with default
// behavior.
func NewMockSentenceExtractor() *MockSentenceExtractor {
	return &MockSentenceExtractor{}
}

// RelevantSentences returns mock sentences.
// Default behavior: the first sentence of each chunk, up to topK.
func (m *MockSentenceExtractor) RelevantSentences(ctx context.Context, query string, chunks []string, topK int) ([]string, error) {
	m.mu.Lock()
	m.callCount++
	m.mu.Unlock()

	if m.RelevantSentencesFunc != nil {
		return m.RelevantSentencesFunc(ctx, query, chunks, topK)
	}

	if topK <= 0 {
		topK = 5
	}
	var sentences []string
	for _, chunk := range chunks {
		if len(sentences) >= topK {
			break
		}
		first, _, _ := strings.Cut(chunk, ".")
		if first = strings.TrimSpace(first); first != "" {
			sentences = append(sentences, first+".")
		}
	}
	return sentences, nil
}

// CallCount returns the number of times RelevantSentences was called.
func (m *MockSentenceExtractor) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}
