package corpus

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/poiesic/cedizen/core"
)

// Store holds the in-memory document collections. It is constructed once,
// loaded lazily, and read-only afterwards: there is no update or delete path.
type Store struct {
	source   Source
	logger   *slog.Logger
	once     sync.Once
	articles []core.Article
	cases    []core.JudicialCase
}

// Option configures a Store.
type Option func(*Store) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// NewStore creates a new document store over the given source. No data is
// read until the first Load call.
func NewStore(source Source, opts ...Option) (*Store, error) {
	if source == nil {
		return nil, ErrSourceRequired
	}

	s := &Store{
		source: source,
		logger: slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Load reads the document collections from the source exactly once.
// Subsequent calls are no-ops. Concurrent callers block until the single
// in-flight load completes. A failed load leaves the store empty and logs
// the failure; it is never surfaced as an error, so callers must treat an
// empty store as "no documents" rather than a fatal condition.
func (s *Store) Load(ctx context.Context) {
	s.once.Do(func() {
		collection, err := s.source.ReadAll(ctx)
		if err != nil {
			s.logger.Error("corpus load failed", "err", err)
			return
		}

		// Drop entries that violate the article invariants rather than
		// failing the whole load.
		articles := make([]core.Article, 0, len(collection.Articles))
		for i := range collection.Articles {
			if err := core.ValidateArticle(&collection.Articles[i]); err != nil {
				s.logger.Warn("skipping invalid article", "index", i, "err", err)
				continue
			}
			articles = append(articles, collection.Articles[i])
		}

		s.articles = articles
		s.cases = collection.Cases
		s.logger.Info("corpus loaded", "articles", len(s.articles), "cases", len(s.cases))
	})
}

// Articles returns the full article collection, empty if the store has not
// been loaded or the load failed. Callers must not mutate the returned slice.
func (s *Store) Articles() []core.Article {
	return s.articles
}

// Cases returns the judicial case collection. Same caveats as Articles.
func (s *Store) Cases() []core.JudicialCase {
	return s.cases
}

// SearchCases filters the case collection by a case-insensitive substring
// match over title, summary, parties, tags, year and status. An empty or
// whitespace-only query returns no results.
func (s *Store) SearchCases(query string) []core.JudicialCase {
	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" {
		return nil
	}

	var matches []core.JudicialCase
	for _, c := range s.cases {
		if caseMatches(&c, term) {
			matches = append(matches, c)
		}
	}
	return matches
}

func caseMatches(c *core.JudicialCase, term string) bool {
	if strings.Contains(strings.ToLower(c.Title), term) ||
		strings.Contains(strings.ToLower(c.Summary), term) ||
		strings.Contains(strings.ToLower(c.Parties), term) ||
		strings.Contains(c.Year, term) ||
		strings.Contains(strings.ToLower(c.Status), term) {
		return true
	}
	for _, tag := range c.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}
