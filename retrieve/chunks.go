package retrieve

import "strings"

// DefaultChunkSize is the word count per chunk handed to the AI
// sentence extractor.
const DefaultChunkSize = 2000

// ChunkWords splits text into chunks of at most size words, preserving
// word order. A size of 0 or less applies DefaultChunkSize.
func ChunkWords(text string, size int) []string {
	if size <= 0 {
		size = DefaultChunkSize
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	chunks := make([]string, 0, (len(words)+size-1)/size)
	for start := 0; start < len(words); start += size {
		end := start + size
		if end > len(words) {
			end = len(words)
		}
		chunks = append(chunks, strings.Join(words[start:end], " "))
	}
	return chunks
}
