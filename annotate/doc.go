// Package annotate derives searchable annotations from summarized pages.
//
// An annotation carries, per page, the summary produced during indexing
// plus keywords and relation phrases extracted directly from the page
// text. Extraction is rule based and deterministic, so re-annotating an
// unchanged document always produces the same result.
package annotate
