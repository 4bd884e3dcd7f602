package core

import (
	"encoding/hex"
	"io"
	"os"

	"github.com/go-crypt/x/blake2b"
)

// UnknownHash is the sentinel digest returned for files that cannot be
// read. It never matches a stored digest, which forces a reprocessing
// attempt that then fails cleanly at extraction.
const UnknownHash = "unknown"

// hashChunkSize bounds memory while digesting large files.
const hashChunkSize = 4096

// HashFile computes a BLAKE2b-256 digest over the file's bytes, streamed in
// fixed-size chunks. Returns UnknownHash if the file cannot be read.
func HashFile(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return UnknownHash
	}
	defer f.Close()

	h, _ := blake2b.New(32, nil)
	buf := make([]byte, hashChunkSize)
	for {
		n, err := f.Read(buf)
		if n > 0 {
			h.Write(buf[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return UnknownHash
		}
	}
	return hex.EncodeToString(h.Sum(nil))
}

// AnnotationID derives the stable identifier under which a document's
// annotation artifact is persisted. Identical filenames always produce the
// same ID, so reruns overwrite rather than duplicate.
func AnnotationID(filename string) string {
	h, _ := blake2b.New(32, nil)
	h.Write([]byte(filename))
	return hex.EncodeToString(h.Sum(nil))
}
