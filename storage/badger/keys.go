package badger

import (
	"fmt"

	"github.com/chalkline/docdex/core"
)

// Key prefixes for different data types
const (
	contentPrefix    = "content"
	annotationPrefix = "annotation"
)

// makeContentKey generates a key for a document's content cache.
func makeContentKey(filename string) []byte {
	return []byte(fmt.Sprintf("%s:%s", contentPrefix, filename))
}

// makeAnnotationKey generates a key for a document's annotation.
// The filename is hashed so keys stay fixed-width and rerunning the
// indexer for the same document always lands on the same key.
func makeAnnotationKey(filename string) []byte {
	return []byte(fmt.Sprintf("%s:%s", annotationPrefix, core.AnnotationID(filename)))
}
