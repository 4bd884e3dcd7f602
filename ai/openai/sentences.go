package openai

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	docai "github.com/chalkline/docdex/ai"
)

// SentenceExtractor implements ai.SentenceExtractor using OpenAI-compatible
// chat APIs. The model is asked to copy relevant sentences verbatim so the
// results can later be located and highlighted in the source document.
type SentenceExtractor struct {
	client llms.Model
	logger *slog.Logger
}

var _ docai.SentenceExtractor = (*SentenceExtractor)(nil)

// newSentenceExtractor is an internal constructor that returns the concrete
// type. Used by Provider to manage the instance.
func newSentenceExtractor(config *docai.Config) (*SentenceExtractor, error) {
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

	return &SentenceExtractor{
		client: client,
		logger: slog.Default().With("component", "openai-sentences"),
	}, nil
}

// NewSentenceExtractor creates a relevant-sentence extractor using the
// provided configuration.
//
// Returns ai.SentenceExtractor interface to enforce abstraction.
func NewSentenceExtractor(config *docai.Config) (docai.SentenceExtractor, error) {
	return newSentenceExtractor(config)
}

// RelevantSentences asks the model for up to topK sentences from the
// chunks that best match the query, parsed from its numbered-list reply.
func (e *SentenceExtractor) RelevantSentences(ctx context.Context, query string, chunks []string, topK int) ([]string, error) {
	if len(chunks) == 0 {
		return nil, ErrNoChunks
	}
	if topK <= 0 {
		topK = 5
	}

	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(buildSentencePrompt(query, chunks, topK)),
			},
		},
	}

	response, err := e.client.GenerateContent(ctx, content, llms.WithTemperature(0.0))
	if err != nil {
		e.logger.Warn("sentence extraction failed", "err", err)
		return nil, err
	}

	if len(response.Choices) < 1 {
		return nil, ErrEmptyResult
	}

	return parseNumberedList(response.Choices[0].Content), nil
}

// parseNumberedList extracts the entries of a "1. ..." style list from the
// model's reply, tolerating prose around the list.
func parseNumberedList(reply string) []string {
	var sentences []string
	for _, line := range strings.Split(reply, "\n") {
		trimmed := strings.TrimSpace(line)
		if !startsWithListNumber(trimmed) {
			continue
		}
		_, rest, found := strings.Cut(trimmed, ".")
		if !found {
			continue
		}
		if sentence := strings.TrimSpace(rest); sentence != "" {
			sentences = append(sentences, sentence)
		}
	}
	return sentences
}

// startsWithListNumber reports whether the line begins with "N." for a
// small positive N.
func startsWithListNumber(line string) bool {
	for n := 1; n <= 10; n++ {
		if strings.HasPrefix(line, strconv.Itoa(n)+".") {
			return true
		}
	}
	return false
}
