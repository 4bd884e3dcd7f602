package core

import "time"

// Page is a single extracted page of a document, enriched with a bounded
// summary during indexing. Pages are immutable once cached until the parent
// document is reprocessed.
type Page struct {
	Number    int    `json:"page_number"`
	Content   string `json:"content"`
	Summary   string `json:"summary"`
	WordCount int    `json:"word_count"`
}

// IndexEntry is the compact per-document metadata record kept in the index
// table. The full page text never enters the index; it lives in the content
// cache referenced by ContentKey.
type IndexEntry struct {
	Filename        string    `json:"filename"`
	FilePath        string    `json:"file_path"`
	ContentHash     string    `json:"content_hash"`
	TotalPages      int       `json:"total_pages"`
	TotalWords      int       `json:"total_words"`
	DocumentSummary string    `json:"document_summary"`
	LastUpdated     time.Time `json:"last_updated"`
	ContentKey      string    `json:"content_key"`
}

// Stale reports whether the entry must be reprocessed given a freshly
// computed content digest. The sentinel UnknownHash never matches a stored
// digest, so unreadable files always come back stale.
func (e *IndexEntry) Stale(freshHash string) bool {
	if e == nil {
		return true
	}
	return e.ContentHash != freshHash || freshHash == UnknownHash
}

// ContentCache holds the extracted pages and concatenated text of one
// document. It is 1:1 with an IndexEntry by filename and is replaced
// wholesale on reprocessing; there are no partial page updates.
type ContentCache struct {
	Filename    string    `json:"filename"`
	Pages       []Page    `json:"pages"`
	FullContent string    `json:"full_content"`
	CachedAt    time.Time `json:"cached_at"`
}

// PageSummary carries the derived per-page signals used for downstream
// query matching: the bounded summary plus keyword and relation lists.
type PageSummary struct {
	PageNumber int      `json:"page_number"`
	Summary    string   `json:"summary"`
	Keywords   []string `json:"keywords"`
	Relations  []string `json:"relations"`
}

// Annotation is the per-document collection of page summaries. It is
// persisted under AnnotationID(Filename) so reruns overwrite rather than
// duplicate.
type Annotation struct {
	Filename  string        `json:"filename"`
	Summaries []PageSummary `json:"summaries"`
}

// PageText is one unit of extractor output: raw text tagged with its
// 1-indexed page number.
type PageText struct {
	Number int
	Text   string
}

// DocumentMatch is a ranked retrieval result with the cached pages and full
// content attached for downstream fine-grained extraction.
type DocumentMatch struct {
	Entry       *IndexEntry
	Score       int
	Pages       []Page
	FullContent string
}
