package extract

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/chalkline/docdex/core"
)

// Extractor yields the ordered page texts of a raw document.
// Implementations must be thread-safe for concurrent use.
type Extractor interface {
	// Extract parses raw document bytes into 1-indexed page texts, in page
	// order. Blank pages may be included; the pipeline drops them.
	Extract(data []byte) ([]core.PageText, error)
}

// Registry maps file extensions to extractors. It doubles as the fixed
// extension allow-list used when enumerating a documents directory.
type Registry struct {
	byExt map[string]Extractor
}

// NewRegistry creates a registry with the default extractors for the
// supported document types: .pdf, .txt and .docx.
func NewRegistry() *Registry {
	return &Registry{
		byExt: map[string]Extractor{
			".pdf":  &PDF{},
			".txt":  &Plaintext{},
			".docx": &DOCX{},
		},
	}
}

// Register adds or replaces the extractor for an extension. The extension
// must include the leading dot.
func (r *Registry) Register(ext string, extractor Extractor) {
	r.byExt[strings.ToLower(ext)] = extractor
}

// ForFile returns the extractor for the file's extension, or false when the
// extension is not in the allow-list.
func (r *Registry) ForFile(filename string) (Extractor, bool) {
	extractor, ok := r.byExt[strings.ToLower(filepath.Ext(filename))]
	return extractor, ok
}

// Extensions returns the allow-listed extensions in sorted order.
func (r *Registry) Extensions() []string {
	exts := make([]string, 0, len(r.byExt))
	for ext := range r.byExt {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}
