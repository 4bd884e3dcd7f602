package openai

import (
	"fmt"
	"strings"
)

// buildSummaryPrompt returns the system prompt for the summarization call.
func buildSummaryPrompt(maxLen int) string {
	return fmt.Sprintf(
		"You summarize document pages. Create a concise summary of the user's text "+
			"in approximately %d characters or less. Focus on the most important "+
			"information, key findings, main points, and essential details. Preserve "+
			"important numbers, dates, names, and technical terms. Reply with the "+
			"summary only.", maxLen)
}

// buildSentencePrompt returns the user prompt asking the model to copy the
// most relevant sentences verbatim as a numbered list.
func buildSentencePrompt(query string, chunks []string, topK int) string {
	var b strings.Builder
	fmt.Fprintf(&b,
		"You are an expert at finding relevant text in documents. "+
			"The user is searching for: '%s'. "+
			"Find and extract up to %d of the most relevant sentences from the text below. "+
			"CRITICAL: You must copy the sentences EXACTLY as they appear in the text - "+
			"do not paraphrase, summarize, or modify them in any way. "+
			"Return only the exact sentences as they are written, numbered 1., 2., etc.\n\n"+
			"Text:\n---\n", query, topK)
	b.WriteString(strings.Join(chunks, "\n\n"))
	b.WriteString("\n---")
	return b.String()
}
