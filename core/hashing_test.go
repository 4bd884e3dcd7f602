package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.txt")
	require.NoError(t, os.WriteFile(path, []byte("the quick brown fox"), 0o644))

	first := HashFile(path)
	second := HashFile(path)

	assert.NotEqual(t, UnknownHash, first)
	assert.Equal(t, first, second, "identical bytes must produce identical digests")
}

func TestHashFile_SingleByteChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.txt")
	require.NoError(t, os.WriteFile(path, []byte("the quick brown fox"), 0o644))
	before := HashFile(path)

	require.NoError(t, os.WriteFile(path, []byte("the quick brown fix"), 0o644))
	after := HashFile(path)

	assert.NotEqual(t, before, after, "any single-byte change must yield a different digest")
}

func TestHashFile_LargerThanChunk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "big.txt")
	data := make([]byte, hashChunkSize*3+17)
	for i := range data {
		data[i] = byte(i % 251)
	}
	require.NoError(t, os.WriteFile(path, data, 0o644))

	digest := HashFile(path)
	assert.NotEqual(t, UnknownHash, digest)
	assert.Equal(t, digest, HashFile(path))
}

func TestHashFile_Unreadable(t *testing.T) {
	digest := HashFile(filepath.Join(t.TempDir(), "missing.pdf"))
	assert.Equal(t, UnknownHash, digest)
}

func TestIndexEntry_Stale(t *testing.T) {
	entry := &IndexEntry{Filename: "doc.pdf", ContentHash: "abc"}

	assert.False(t, entry.Stale("abc"))
	assert.True(t, entry.Stale("def"))
	assert.True(t, (*IndexEntry)(nil).Stale("abc"), "missing entry is always stale")
	assert.True(t, (&IndexEntry{ContentHash: UnknownHash}).Stale(UnknownHash),
		"sentinel digest never matches cache")
}

func TestAnnotationID(t *testing.T) {
	id1 := AnnotationID("report.pdf")
	id2 := AnnotationID("report.pdf")
	other := AnnotationID("notes.txt")

	assert.Equal(t, id1, id2, "same filename must produce the same ID")
	assert.NotEqual(t, id1, other)
	assert.Len(t, id1, 64)
}
