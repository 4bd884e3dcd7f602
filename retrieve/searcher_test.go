package retrieve

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chalkline/docdex/core"
	"github.com/chalkline/docdex/storage"
	badgerstore "github.com/chalkline/docdex/storage/badger"
	filestore "github.com/chalkline/docdex/storage/file"
)

type searchFixture struct {
	searcher *Searcher
	index    storage.IndexStore
	content  storage.ContentStore
}

func setupSearcher(t *testing.T) *searchFixture {
	t.Helper()

	indexStore, err := filestore.NewIndexStore(filepath.Join(t.TempDir(), "index.json"))
	require.NoError(t, err)

	contentStore, _, backend, err := badgerstore.NewMemoryStores()
	require.NoError(t, err)
	t.Cleanup(func() { backend.Close() })

	searcher, err := NewSearcher(indexStore, contentStore)
	require.NoError(t, err)

	return &searchFixture{searcher: searcher, index: indexStore, content: contentStore}
}

// addDoc indexes a document with the given content and summary.
func (f *searchFixture) addDoc(t *testing.T, entries map[string]*core.IndexEntry, filename, content, summary string) {
	t.Helper()
	ctx := context.Background()

	entries[filename] = &core.IndexEntry{
		Filename:        filename,
		FilePath:        "/docs/" + filename,
		ContentHash:     "hash-" + filename,
		TotalPages:      1,
		TotalWords:      len(strings.Fields(content)),
		DocumentSummary: summary,
		LastUpdated:     time.Now().UTC(),
		ContentKey:      filename,
	}
	require.NoError(t, f.content.Put(ctx, &core.ContentCache{
		Filename:    filename,
		Pages:       []core.Page{{Number: 1, Content: content, Summary: summary, WordCount: len(strings.Fields(content))}},
		FullContent: content,
	}))
}

func (f *searchFixture) commit(t *testing.T, entries map[string]*core.IndexEntry) {
	t.Helper()
	require.NoError(t, f.index.Replace(context.Background(), entries))
}

func TestQuery_ExcludesZeroScoreDocuments(t *testing.T) {
	f := setupSearcher(t)
	entries := make(map[string]*core.IndexEntry)
	f.addDoc(t, entries, "turbines.txt", "wind turbines generate power", "about turbines")
	f.addDoc(t, entries, "recipes.txt", "flour butter sugar", "baking recipes")
	f.commit(t, entries)

	matches, err := f.searcher.Query(context.Background(), "turbines", 10)

	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "turbines.txt", matches[0].Entry.Filename)
}

func TestQuery_SummaryMatchesWeighDouble(t *testing.T) {
	f := setupSearcher(t)
	entries := make(map[string]*core.IndexEntry)
	// one content hit vs one summary hit
	f.addDoc(t, entries, "content-hit.txt", "solar panels on roofs", "unrelated words")
	f.addDoc(t, entries, "summary-hit.txt", "unrelated text entirely", "solar installation guide")
	f.commit(t, entries)

	matches, err := f.searcher.Query(context.Background(), "solar", 10)

	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, "summary-hit.txt", matches[0].Entry.Filename)
	assert.Equal(t, 2, matches[0].Score)
	assert.Equal(t, 1, matches[1].Score)
}

func TestQuery_ScoreAccumulatesOccurrences(t *testing.T) {
	f := setupSearcher(t)
	entries := make(map[string]*core.IndexEntry)
	f.addDoc(t, entries, "dense.txt", "cache cache cache", "no hits here")
	f.addDoc(t, entries, "sparse.txt", "cache once only", "no hits here")
	f.commit(t, entries)

	matches, err := f.searcher.Query(context.Background(), "cache", 10)

	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, "dense.txt", matches[0].Entry.Filename)
	assert.Greater(t, matches[0].Score, matches[1].Score)
}

func TestQuery_TopKDefault(t *testing.T) {
	f := setupSearcher(t)
	entries := make(map[string]*core.IndexEntry)
	for _, name := range []string{"a.txt", "b.txt", "c.txt", "d.txt", "e.txt"} {
		f.addDoc(t, entries, name, "shared keyword appears", "")
	}
	f.commit(t, entries)

	matches, err := f.searcher.Query(context.Background(), "keyword", 0)

	require.NoError(t, err)
	assert.Len(t, matches, 3, "default limit is 3")
}

func TestQuery_CaseInsensitive(t *testing.T) {
	f := setupSearcher(t)
	entries := make(map[string]*core.IndexEntry)
	f.addDoc(t, entries, "caps.txt", "The Quarterly REPORT shows growth", "Quarterly REPORT")
	f.commit(t, entries)

	matches, err := f.searcher.Query(context.Background(), "quarterly report", 10)

	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Greater(t, matches[0].Score, 0)
}

func TestQuery_EmptyQuery(t *testing.T) {
	f := setupSearcher(t)
	f.commit(t, make(map[string]*core.IndexEntry))

	matches, err := f.searcher.Query(context.Background(), "   ", 10)

	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestQuery_AttachesPagesAndContent(t *testing.T) {
	f := setupSearcher(t)
	entries := make(map[string]*core.IndexEntry)
	f.addDoc(t, entries, "doc.txt", "alpha beta gamma", "summary text")
	f.commit(t, entries)

	matches, err := f.searcher.Query(context.Background(), "alpha", 10)

	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "alpha beta gamma", matches[0].FullContent)
	require.Len(t, matches[0].Pages, 1)
	assert.Equal(t, 1, matches[0].Pages[0].Number)
}

func TestQuery_TieBrokenByFilename(t *testing.T) {
	f := setupSearcher(t)
	entries := make(map[string]*core.IndexEntry)
	f.addDoc(t, entries, "zeta.txt", "token here", "")
	f.addDoc(t, entries, "alpha.txt", "token here", "")
	f.commit(t, entries)

	matches, err := f.searcher.Query(context.Background(), "token", 10)

	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, "alpha.txt", matches[0].Entry.Filename)
}

func TestChunkWords_Bounds(t *testing.T) {
	words := make([]string, 4500)
	for i := range words {
		words[i] = "w"
	}
	text := strings.Join(words, " ")

	chunks := ChunkWords(text, 2000)

	require.Len(t, chunks, 3)
	assert.Len(t, strings.Fields(chunks[0]), 2000)
	assert.Len(t, strings.Fields(chunks[1]), 2000)
	assert.Len(t, strings.Fields(chunks[2]), 500)
}

func TestChunkWords_Empty(t *testing.T) {
	assert.Nil(t, ChunkWords("   ", 100))
}

func TestChunkWords_DefaultSize(t *testing.T) {
	chunks := ChunkWords("one two three", 0)

	require.Len(t, chunks, 1)
	assert.Equal(t, "one two three", chunks[0])
}
