package corpus

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/poiesic/cedizen/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSource is an in-memory Source for tests.
type stubSource struct {
	collection *Collection
	err        error
	reads      atomic.Int32
}

func (s *stubSource) ReadAll(ctx context.Context) (*Collection, error) {
	s.reads.Add(1)
	if s.err != nil {
		return nil, s.err
	}
	return s.collection, nil
}

func testArticles() []core.Article {
	return []core.Article{
		{
			ID:      "art-21",
			Article: "21",
			Title:   "Freedom of Assembly",
			Content: "All persons shall have the right to assemble freely and to take part in processions and demonstrations.",
			Tags:    []string{"protest"},
		},
		{
			ID:      "art-42",
			Article: "42",
			Title:   "Right to Vote",
			Content: "Every citizen of eighteen years of age or above has the right to vote.",
			Tags:    []string{"vote", "election"},
		},
	}
}

func TestNewStore(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		store, err := NewStore(&stubSource{collection: &Collection{}})
		require.NoError(t, err)
		assert.NotNil(t, store)
	})

	t.Run("nil source", func(t *testing.T) {
		_, err := NewStore(nil)
		assert.Equal(t, ErrSourceRequired, err)
	})
}

func TestStore_Load(t *testing.T) {
	t.Run("loads once", func(t *testing.T) {
		source := &stubSource{collection: &Collection{Articles: testArticles()}}
		store, err := NewStore(source)
		require.NoError(t, err)

		ctx := context.Background()
		store.Load(ctx)
		store.Load(ctx)
		store.Load(ctx)

		assert.Equal(t, int32(1), source.reads.Load())
		assert.Len(t, store.Articles(), 2)
	})

	t.Run("concurrent callers share one load", func(t *testing.T) {
		source := &stubSource{collection: &Collection{Articles: testArticles()}}
		store, err := NewStore(source)
		require.NoError(t, err)

		var wg sync.WaitGroup
		for i := 0; i < 16; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				store.Load(context.Background())
			}()
		}
		wg.Wait()

		assert.Equal(t, int32(1), source.reads.Load())
		assert.Len(t, store.Articles(), 2)
	})

	t.Run("failed load leaves store empty", func(t *testing.T) {
		source := &stubSource{err: errors.New("source unavailable")}
		store, err := NewStore(source)
		require.NoError(t, err)

		store.Load(context.Background())
		assert.Empty(t, store.Articles())
		assert.Empty(t, store.Cases())

		// The failure is memoized; no retry on the next call.
		store.Load(context.Background())
		assert.Equal(t, int32(1), source.reads.Load())
	})

	t.Run("invalid articles are dropped", func(t *testing.T) {
		articles := append(testArticles(), core.Article{ID: "bad", Article: "9"})
		source := &stubSource{collection: &Collection{Articles: articles}}
		store, err := NewStore(source)
		require.NoError(t, err)

		store.Load(context.Background())
		assert.Len(t, store.Articles(), 2)
	})

	t.Run("empty before load", func(t *testing.T) {
		store, err := NewStore(&stubSource{collection: &Collection{Articles: testArticles()}})
		require.NoError(t, err)
		assert.Empty(t, store.Articles())
	})
}

func TestStore_SearchCases(t *testing.T) {
	cases := []core.JudicialCase{
		{
			ID:      "case-1",
			Title:   "Republic v. Mensah",
			Year:    "1998",
			Court:   "Supreme Court",
			Parties: "Republic v. Kwame Mensah",
			Summary: "Unlawful arrest during a street procession.",
			Tags:    []string{"arrest", "protest"},
			Status:  "Closed",
		},
		{
			ID:      "case-2",
			Title:   "Adjei v. Electoral Commission",
			Year:    "2012",
			Court:   "Supreme Court",
			Parties: "Yaw Adjei v. Electoral Commission",
			Summary: "Dispute over voter register entries.",
			Tags:    []string{"election"},
			Status:  "Ongoing",
		},
	}

	store, err := NewStore(&stubSource{collection: &Collection{Cases: cases}})
	require.NoError(t, err)
	store.Load(context.Background())

	t.Run("matches title", func(t *testing.T) {
		got := store.SearchCases("mensah")
		require.Len(t, got, 1)
		assert.Equal(t, "case-1", got[0].ID)
	})

	t.Run("matches tag substring", func(t *testing.T) {
		got := store.SearchCases("elect")
		require.Len(t, got, 1)
		assert.Equal(t, "case-2", got[0].ID)
	})

	t.Run("matches year", func(t *testing.T) {
		got := store.SearchCases("1998")
		require.Len(t, got, 1)
		assert.Equal(t, "case-1", got[0].ID)
	})

	t.Run("matches status", func(t *testing.T) {
		got := store.SearchCases("ongoing")
		require.Len(t, got, 1)
		assert.Equal(t, "case-2", got[0].ID)
	})

	t.Run("empty query", func(t *testing.T) {
		assert.Empty(t, store.SearchCases(""))
		assert.Empty(t, store.SearchCases("   "))
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, store.SearchCases("xyzzy123"))
	})
}

func TestFileSource(t *testing.T) {
	dir := t.TempDir()

	writeFile := func(name, contents string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
		return path
	}

	t.Run("reads both collections", func(t *testing.T) {
		articlesPath := writeFile("constitution.json",
			`[{"id":"art-1","article":"1","title":"Supremacy","content":"The Constitution is the supreme law.","tags":[]}]`)
		casesPath := writeFile("cases.json",
			`[{"id":"case-1","title":"Test","year":"2001","court":"High Court","parties":"A v. B","summary":"s","law_interpretation":"l","outcome":"o","justification":"j","tags":[],"status":"Closed"}]`)

		source := NewFileSource(articlesPath, casesPath)
		collection, err := source.ReadAll(context.Background())
		require.NoError(t, err)
		assert.Len(t, collection.Articles, 1)
		assert.Len(t, collection.Cases, 1)
	})

	t.Run("missing cases file is not an error", func(t *testing.T) {
		articlesPath := writeFile("only_articles.json", `[]`)
		source := NewFileSource(articlesPath, filepath.Join(dir, "nope.json"))
		collection, err := source.ReadAll(context.Background())
		require.NoError(t, err)
		assert.Empty(t, collection.Cases)
	})

	t.Run("missing articles file is an error", func(t *testing.T) {
		source := NewFileSource(filepath.Join(dir, "missing.json"), "")
		_, err := source.ReadAll(context.Background())
		assert.Error(t, err)
	})

	t.Run("malformed articles file is an error", func(t *testing.T) {
		path := writeFile("broken.json", `{"not":"an array"`)
		source := NewFileSource(path, "")
		_, err := source.ReadAll(context.Background())
		assert.Error(t, err)
	})
}
