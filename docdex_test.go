package docdex

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestCorpus(t *testing.T) *Corpus {
	t.Helper()
	tmpDir := t.TempDir()
	corpus, err := Open(
		filepath.Join(tmpDir, "index.json"),
		filepath.Join(tmpDir, "cache"),
	)
	require.NoError(t, err)
	t.Cleanup(func() { corpus.Close() })
	return corpus
}

func TestOpen(t *testing.T) {
	t.Run("create new corpus", func(t *testing.T) {
		corpus := openTestCorpus(t)

		assert.NotNil(t, corpus.IndexStore())
		assert.NotNil(t, corpus.ContentStore())
		assert.NotNil(t, corpus.AnnotationStore())
		assert.Nil(t, corpus.SentenceExtractor(), "no AI configured")
	})

	t.Run("error with invalid cache path", func(t *testing.T) {
		tmpFile := filepath.Join(t.TempDir(), "not_a_dir")
		require.NoError(t, os.WriteFile(tmpFile, []byte("x"), 0644))

		corpus, err := Open(filepath.Join(t.TempDir(), "index.json"), tmpFile)
		assert.Error(t, err)
		assert.Nil(t, corpus)
	})

	t.Run("error with empty index path", func(t *testing.T) {
		corpus, err := Open("", t.TempDir())
		assert.Error(t, err)
		assert.Nil(t, corpus)
	})
}

func TestCorpus_Close(t *testing.T) {
	tmpDir := t.TempDir()
	corpus, err := Open(
		filepath.Join(tmpDir, "index.json"),
		filepath.Join(tmpDir, "cache"),
	)
	require.NoError(t, err)

	assert.NoError(t, corpus.Close())
}

func TestCorpus_FactoryMethods(t *testing.T) {
	corpus := openTestCorpus(t)

	t.Run("can create pipeline", func(t *testing.T) {
		pipeline, err := corpus.NewPipeline()
		require.NoError(t, err)
		assert.NotNil(t, pipeline)
	})

	t.Run("can create searcher", func(t *testing.T) {
		searcher, err := corpus.NewSearcher()
		require.NoError(t, err)
		assert.NotNil(t, searcher)
	})

	t.Run("can create highlighter", func(t *testing.T) {
		highlighter, err := corpus.NewHighlighter()
		require.NoError(t, err)
		assert.NotNil(t, highlighter)
	})
}

func TestCorpus_IndexThenSearch(t *testing.T) {
	corpus := openTestCorpus(t)
	ctx := context.Background()

	docsDir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(docsDir, "energy.txt"),
		[]byte("Wind turbines generate renewable power across coastal regions."),
		0644))
	require.NoError(t, os.WriteFile(
		filepath.Join(docsDir, "baking.txt"),
		[]byte("Combine flour butter and sugar for shortbread."),
		0644))

	pipeline, err := corpus.NewPipeline()
	require.NoError(t, err)

	stats, err := pipeline.Run(ctx, docsDir)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Processed)

	searcher, err := corpus.NewSearcher()
	require.NoError(t, err)

	matches, err := searcher.Query(ctx, "turbines renewable", 3)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "energy.txt", matches[0].Entry.Filename)

	highlighter, err := corpus.NewHighlighter()
	require.NoError(t, err)

	out := highlighter.Apply([]byte(matches[0].FullContent), []string{"renewable power"})
	assert.Contains(t, string(out), "[[renewable power]]")
}
