// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package search

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/poiesic/cedizen/core"
	"github.com/poiesic/cedizen/corpus"
)

// Engine provides hybrid full-text and keyword search over the
// constitutional corpus. Initialization is lazy and memoized: the first
// search triggers corpus loading and index construction, and every later
// search reuses that state. A failed load leaves the engine empty, in
// which case searches return no results rather than errors.
type Engine struct {
	store      *corpus.Store
	index      Index
	weights    Weights
	maxResults int
	logger     *slog.Logger

	initOnce sync.Once
	articles []core.Article
}

// Option configures an Engine.
type Option func(*Engine) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) error {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
		return nil
	}
}

// WithIndex replaces the default inverted index implementation.
func WithIndex(index Index) Option {
	return func(e *Engine) error {
		if index != nil {
			e.index = index
		}
		return nil
	}
}

// WithWeights overrides the default relevance weights.
func WithWeights(weights Weights) Option {
	return func(e *Engine) error {
		e.weights = weights
		return nil
	}
}

// WithMaxResults overrides the result cap. Values below one are ignored.
func WithMaxResults(n int) Option {
	return func(e *Engine) error {
		if n > 0 {
			e.maxResults = n
		}
		return nil
	}
}

// NewEngine creates a search engine over the given corpus store.
func NewEngine(store *corpus.Store, opts ...Option) (*Engine, error) {
	if store == nil {
		return nil, ErrStoreRequired
	}

	e := &Engine{
		store:      store,
		index:      NewInvertedIndex(),
		weights:    DefaultWeights(),
		maxResults: 5,
		logger:     slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}

	return e, nil
}

// Init loads the corpus and builds the index. Calling it is optional;
// search operations initialize on first use. Concurrent callers share a
// single initialization.
func (e *Engine) Init(ctx context.Context) {
	e.initOnce.Do(func() {
		e.store.Load(ctx)
		e.articles = e.store.Articles()

		docs := make([]string, len(e.articles))
		for i := range e.articles {
			docs[i] = indexText(&e.articles[i])
		}
		e.index.Build(docs)

		e.logger.Debug("search engine initialized", "articles", len(e.articles))
	})
}

// indexText builds the search string one article contributes to the index.
// Tags appear three times in total so tag words dominate index ranking.
func indexText(article *core.Article) string {
	tags := strings.Join(article.Tags, " ")
	return strings.Join([]string{
		article.Title,
		article.Article,
		article.Content,
		article.Simplified,
		tags,
		tags,
		tags,
	}, " ")
}

// SearchConstitution returns up to five articles relevant to the query,
// most relevant first. It never fails: an empty corpus, an unmatched query
// or a blank query all yield an empty slice.
func (e *Engine) SearchConstitution(ctx context.Context, query string) []core.Article {
	return e.SearchConstitutionWithMonitor(ctx, query, nil)
}

// SearchConstitutionWithMonitor is SearchConstitution with observation
// hooks. The monitor receives callbacks at each stage of the search.
func (e *Engine) SearchConstitutionWithMonitor(ctx context.Context, query string, monitor SearchMonitor) []core.Article {
	// Use noop monitor if none provided
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	e.Init(ctx)
	monitor.Start(query)

	if len(e.articles) == 0 {
		monitor.Finish(nil)
		return []core.Article{}
	}

	lowerQuery := strings.ToLower(query)

	// 1. Broad-recall index lookup
	var indexHits []core.Article
	for _, pos := range e.index.Query(lowerQuery, e.maxResults) {
		if pos >= 0 && pos < len(e.articles) {
			indexHits = append(indexHits, e.articles[pos])
		}
	}
	monitor.AfterIndexLookup(indexHits)

	// 2. Keyword scoring with stemming and synonym expansion
	keywords := expandKeywords(queryKeywords(lowerQuery))
	monitor.AfterKeywordExpansion(keywords)

	results := indexHits
	if len(keywords) > 0 {
		scored := scoreArticles(e.articles, keywords, e.weights)

		scoredHits := make([]core.Article, len(scored))
		for i, s := range scored {
			scoredHits[i] = s.article
		}
		monitor.AfterScoring(scoredHits)

		// 3. Fuse both passes: index hits first, then scored hits,
		// deduplicated by article ID with first occurrence winning.
		results = fuse(indexHits, scoredHits, e.maxResults)
	} else if len(results) > e.maxResults {
		results = results[:e.maxResults]
	}

	if results == nil {
		results = []core.Article{}
	}
	monitor.Finish(results)

	e.logger.Debug("constitution search completed",
		"query", query, "keywords", len(keywords), "results", len(results))

	return results
}

// fuse concatenates both result lists, drops duplicate article IDs keeping
// the earliest occurrence, and truncates to limit.
func fuse(first, second []core.Article, limit int) []core.Article {
	fused := make([]core.Article, 0, limit)
	seen := make(map[string]struct{}, len(first)+len(second))

	for _, list := range [][]core.Article{first, second} {
		for _, article := range list {
			if _, dup := seen[article.ID]; dup {
				continue
			}
			seen[article.ID] = struct{}{}
			fused = append(fused, article)
			if len(fused) == limit {
				return fused
			}
		}
	}
	return fused
}

// GetAllArticles returns every article in corpus order. The slice is a
// copy; callers may mutate it freely.
func (e *Engine) GetAllArticles(ctx context.Context) []core.Article {
	e.Init(ctx)

	articles := make([]core.Article, len(e.articles))
	copy(articles, e.articles)
	return articles
}
