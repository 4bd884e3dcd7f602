// Package index orchestrates document indexing.
//
// The Pipeline walks a documents directory, detects changed files by
// content digest, extracts page text, summarizes and annotates pages
// through a bounded worker pool, and persists the results: page content
// and annotations in the content stores, document metadata in the index
// file which is replaced atomically at the end of the run.
//
// Documents are processed sequentially; the pages of one document fan
// out in parallel. A failing document is skipped and logged, never
// leaving a partial record behind.
package index
