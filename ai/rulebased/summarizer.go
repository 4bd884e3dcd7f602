package rulebased

import (
	"context"
	"sort"
	"strings"
	"unicode"

	docai "github.com/chalkline/docdex/ai"
)

var _ docai.Summarizer = (*Summarizer)(nil)

// importanceVocabulary lists terms whose presence marks a sentence as
// likely informative. Each occurrence adds to the sentence score.
var importanceVocabulary = []string{
	"important", "key", "main", "primary", "significant", "conclusion",
	"result", "summary", "objective", "goal", "purpose", "method",
	"approach", "finding", "recommendation",
}

// Summarizer is the deterministic, offline summarization strategy. It
// scores sentence candidates by lexical importance signals and greedily
// fills the length budget in score order.
//
// Output sentence order follows score order, not original document order.
// That is intended behavior: the summary ranks by importance rather than
// preserving readability of the source flow.
type Summarizer struct{}

// New creates a rule-based summarizer.
func New() *Summarizer {
	return &Summarizer{}
}

// Summarize condenses text to at most maxLen characters. Identical
// (text, maxLen) inputs always produce identical output, and text already
// within the bound is returned unchanged. The error is always nil; the
// rule-based strategy cannot fail.
func (s *Summarizer) Summarize(_ context.Context, text string, maxLen int) (string, error) {
	if runeLen(text) <= maxLen {
		return text, nil
	}

	sentences := splitSentences(text)
	if len(sentences) <= 1 {
		return truncateEllipsis(text, maxLen), nil
	}

	type scored struct {
		sentence string
		score    float64
		position int
	}

	candidates := make([]scored, len(sentences))
	for i, sentence := range sentences {
		var score float64
		lower := strings.ToLower(sentence)

		if strings.ContainsFunc(sentence, unicode.IsDigit) {
			score += 2
		}
		for _, term := range importanceVocabulary {
			score += 3 * float64(strings.Count(lower, term))
		}
		if i == 0 || i == len(sentences)-1 {
			score++
		}
		words := strings.Fields(sentence)
		for _, word := range words {
			runes := []rune(word)
			if len(runes) > 1 && unicode.IsUpper(runes[0]) {
				score += 0.5
			}
		}
		if len(words) > 10 {
			score++
		}

		candidates[i] = scored{sentence: sentence, score: score, position: i}
	}

	// Score descending; original position breaks ties.
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return candidates[i].position < candidates[j].position
	})

	var parts []string
	currentLen := 0
	for _, cand := range candidates {
		l := runeLen(cand.sentence)
		switch {
		case currentLen+l+3 <= maxLen:
			parts = append(parts, cand.sentence)
			currentLen += l + 1
		case currentLen == 0:
			// The single highest-scoring sentence alone exceeds the bound.
			return truncateEllipsis(cand.sentence, maxLen), nil
		}
	}

	if len(parts) == 0 {
		return truncateEllipsis(text, maxLen), nil
	}

	// Text was longer than the bound, so something was necessarily omitted.
	return strings.Join(parts, " ") + "...", nil
}

// splitSentences breaks text into trimmed sentence candidates on the
// terminators . ! ?
func splitSentences(text string) []string {
	marked := strings.NewReplacer(".", ".\n", "!", "!\n", "?", "?\n").Replace(text)
	var sentences []string
	for _, line := range strings.Split(marked, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			sentences = append(sentences, trimmed)
		}
	}
	return sentences
}

// truncateEllipsis returns a prefix of text ending in "..." whose total
// length does not exceed maxLen characters.
func truncateEllipsis(text string, maxLen int) string {
	runes := []rune(text)
	if maxLen <= 3 {
		return "..."[:max(maxLen, 0)]
	}
	if len(runes) <= maxLen {
		return text
	}
	return string(runes[:maxLen-3]) + "..."
}

func runeLen(s string) int {
	return len([]rune(s))
}
