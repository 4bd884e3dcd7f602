package openai

import "errors"

var (
	// ErrEmptyResult is returned when the model produced no usable output.
	ErrEmptyResult = errors.New("model returned empty result")

	// ErrSummaryOvershoot is returned when the model's summary exceeds the
	// requested bound by a wide margin. Callers fall through to the next
	// summarization strategy.
	ErrSummaryOvershoot = errors.New("summary overshoots requested bound")

	// ErrNoChunks is returned when RelevantSentences is called without text.
	ErrNoChunks = errors.New("text chunks cannot be empty")
)
