package rulebased

import (
	"context"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize_IdentityWithinBound(t *testing.T) {
	s := New()
	text := "Short text that fits."

	summary, err := s.Summarize(context.Background(), text, 100)

	require.NoError(t, err)
	assert.Equal(t, text, summary, "text within the bound must be returned unchanged")
}

func TestSummarize_Deterministic(t *testing.T) {
	s := New()
	text := strings.Repeat("The annual report showed strong results. Some filler sentence here. ", 10)

	first, err := s.Summarize(context.Background(), text, 120)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := s.Summarize(context.Background(), text, 120)
		require.NoError(t, err)
		assert.Equal(t, first, again, "identical input must always yield identical output")
	}
}

func TestSummarize_RespectsBound(t *testing.T) {
	s := New()
	text := strings.Repeat("Revenue increased by 12 percent which is a significant result for the whole company this year. ", 20)

	for _, maxLen := range []int{50, 120, 400} {
		summary, err := s.Summarize(context.Background(), text, maxLen)
		require.NoError(t, err)
		assert.LessOrEqual(t, utf8.RuneCountInString(summary), maxLen, "maxLen=%d", maxLen)
	}
}

func TestSummarize_PrefersImportantSentences(t *testing.T) {
	s := New()
	filler := strings.Repeat("nothing much here at all. ", 12)
	text := filler + "The key finding is a significant 42 percent improvement in the primary result metric overall." + " " + filler

	summary, err := s.Summarize(context.Background(), text, 120)

	require.NoError(t, err)
	assert.Contains(t, summary, "key finding",
		"the high-scoring sentence should win the length budget")
}

func TestSummarize_ScoreOrderNotDocumentOrder(t *testing.T) {
	s := New()
	// The second sentence scores far higher than the first; it must lead
	// the summary even though it appears later in the document.
	text := "plain words only here nothing. " +
		"Key Result: revenue grew 99 percent which is the most significant important finding. " +
		strings.Repeat("more plain filler words again. ", 10)

	summary, err := s.Summarize(context.Background(), text, 90)

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(summary, "Key Result"),
		"output order follows score order, got %q", summary)
}

func TestSummarize_OversizedLeadingSentenceTruncated(t *testing.T) {
	s := New()
	long := "The significant key result conclusion finding is that " + strings.Repeat("metrics ", 40) + "improved."
	text := long + " tiny tail. " + strings.Repeat("even more filler beyond the bound here. ", 5)

	summary, err := s.Summarize(context.Background(), text, 60)

	require.NoError(t, err)
	assert.LessOrEqual(t, utf8.RuneCountInString(summary), 60)
	assert.True(t, strings.HasSuffix(summary, "..."))
}

func TestSummarize_NoSentenceTerminators(t *testing.T) {
	s := New()
	text := strings.Repeat("words without any terminator ", 20)

	summary, err := s.Summarize(context.Background(), text, 40)

	require.NoError(t, err)
	assert.LessOrEqual(t, utf8.RuneCountInString(summary), 40)
	assert.True(t, strings.HasSuffix(summary, "..."), "prefix truncation carries an ellipsis")
}

func TestTruncateEllipsis(t *testing.T) {
	assert.Equal(t, "ab...", truncateEllipsis("abcdefgh", 5))
	assert.Equal(t, "abc", truncateEllipsis("abc", 5))
	assert.Equal(t, "...", truncateEllipsis("abcdefgh", 3))
}
