package openai

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	docai "github.com/chalkline/docdex/ai"
)

// overshootSlack is how far past maxLen a model summary may run before it
// is rejected and the caller falls through to the next strategy.
const overshootSlack = 50

// Summarizer implements ai.Summarizer using OpenAI-compatible chat APIs.
type Summarizer struct {
	client        llms.Model
	maxInputChars int
	logger        *slog.Logger
}

var _ docai.Summarizer = (*Summarizer)(nil)

// newSummarizer is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newSummarizer(config *docai.Config) (*Summarizer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := openai.New(
		openai.WithBaseURL(config.Host),
		openai.WithToken(config.Token),
		openai.WithModel(config.Model),
	)
	if err != nil {
		return nil, err
	}

	return &Summarizer{
		client:        client,
		maxInputChars: config.MaxInputChars,
		logger:        slog.Default().With("component", "openai-summarizer"),
	}, nil
}

// NewSummarizer creates a network-backed summarizer using the provided
// configuration.
//
// Returns ai.Summarizer interface to enforce abstraction.
func NewSummarizer(config *docai.Config) (docai.Summarizer, error) {
	return newSummarizer(config)
}

// Summarize sends a bounded prefix of text to the model and returns its
// summary. Text already within maxLen is returned unchanged without a
// network call. Any failure, empty reply, or wide overshoot of the bound is
// reported as an error so the caller can try the next strategy.
func (s *Summarizer) Summarize(ctx context.Context, text string, maxLen int) (string, error) {
	if len([]rune(text)) <= maxLen {
		return text, nil
	}

	prefix := text
	if runes := []rune(text); len(runes) > s.maxInputChars {
		prefix = string(runes[:s.maxInputChars])
	}

	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(buildSummaryPrompt(maxLen)),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(prefix),
			},
		},
	}

	response, err := s.client.GenerateContent(ctx, content, llms.WithTemperature(0.0))
	if err != nil {
		s.logger.Warn("summary generation failed", "err", err)
		return "", err
	}

	if len(response.Choices) < 1 {
		return "", ErrEmptyResult
	}

	summary := strings.TrimSpace(response.Choices[0].Content)
	if summary == "" {
		return "", ErrEmptyResult
	}

	if got := len([]rune(summary)); got > maxLen+overshootSlack {
		s.logger.Warn("model summary rejected", "len", got, "maxLen", maxLen)
		return "", fmt.Errorf("%w: %d > %d", ErrSummaryOvershoot, got, maxLen+overshootSlack)
	}

	return summary, nil
}
