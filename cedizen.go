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

// Package cedizen wires the civic education components into one app:
// the constitutional corpus and search engine, the badger-backed voting
// feed and shelves, and the pocket lawyer assistant.
package cedizen

import (
	"context"
	"io"
	"log/slog"

	"github.com/poiesic/cedizen/ai"
	"github.com/poiesic/cedizen/ai/openai"
	"github.com/poiesic/cedizen/civic"
	"github.com/poiesic/cedizen/core"
	"github.com/poiesic/cedizen/corpus"
	"github.com/poiesic/cedizen/lawyer"
	"github.com/poiesic/cedizen/recount"
	"github.com/poiesic/cedizen/search"
	"github.com/poiesic/cedizen/storage"
	"github.com/poiesic/cedizen/storage/badger"
)

// Default corpus file locations, relative to the working directory.
const (
	DefaultArticlesPath = "data/constitution.json"
	DefaultCasesPath    = "data/cases.json"
)

// App is the assembled civic education application.
type App struct {
	backend   *badger.Backend
	voteRepo  storage.VoteRepository
	chatRepo  storage.ChatRepository
	shelfRepo storage.ShelfRepository
	store     *corpus.Store
	engine    *search.Engine
	provider  ai.AIProvider
	feed      *civic.Feed
	logger    *slog.Logger
}

// AppOption configures an App.
type AppOption func(*appOptions)

type appOptions struct {
	aiConfig     *ai.Config
	provider     ai.AIProvider
	source       corpus.Source
	articlesPath string
	casesPath    string
	inMemory     bool
	searchOpts   []search.Option
	feedOpts     []civic.Option
}

// WithAIConfig sets the configuration for the language model services.
func WithAIConfig(config *ai.Config) AppOption {
	return func(o *appOptions) {
		o.aiConfig = config
	}
}

// WithAIProvider supplies a pre-built AI provider instead of constructing
// one from config. Useful for tests.
func WithAIProvider(provider ai.AIProvider) AppOption {
	return func(o *appOptions) {
		o.provider = provider
	}
}

// WithCorpusSource supplies a custom document source instead of the
// default JSON files.
func WithCorpusSource(source corpus.Source) AppOption {
	return func(o *appOptions) {
		o.source = source
	}
}

// WithCorpusPaths overrides the JSON file locations.
func WithCorpusPaths(articlesPath, casesPath string) AppOption {
	return func(o *appOptions) {
		o.articlesPath = articlesPath
		o.casesPath = casesPath
	}
}

// WithInMemoryStorage keeps the feed database in memory. Useful for tests
// and demos.
func WithInMemoryStorage() AppOption {
	return func(o *appOptions) {
		o.inMemory = true
	}
}

// WithSearchOptions passes options through to the search engine.
func WithSearchOptions(opts ...search.Option) AppOption {
	return func(o *appOptions) {
		o.searchOpts = append(o.searchOpts, opts...)
	}
}

// WithFeedOptions passes options through to the civic feed.
func WithFeedOptions(opts ...civic.Option) AppOption {
	return func(o *appOptions) {
		o.feedOpts = append(o.feedOpts, opts...)
	}
}

// Open assembles the application over a badger database at dataDir.
func Open(dataDir string, opts ...AppOption) (*App, error) {
	options := &appOptions{
		aiConfig:     ai.DefaultConfig(),
		articlesPath: DefaultArticlesPath,
		casesPath:    DefaultCasesPath,
	}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(dataDir, options.inMemory)
	if err != nil {
		return nil, err
	}

	voteRepo, err := badger.NewVoteRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	chatRepo, err := badger.NewChatRepository(backend)
	if err != nil {
		voteRepo.Close()
		backend.Close()
		return nil, err
	}

	shelfRepo, err := badger.NewShelfRepository(backend)
	if err != nil {
		chatRepo.Close()
		voteRepo.Close()
		backend.Close()
		return nil, err
	}

	closeStorage := func() {
		shelfRepo.Close()
		chatRepo.Close()
		voteRepo.Close()
		backend.Close()
	}

	source := options.source
	if source == nil {
		source = corpus.NewFileSource(options.articlesPath, options.casesPath)
	}

	store, err := corpus.NewStore(source)
	if err != nil {
		closeStorage()
		return nil, err
	}

	engine, err := search.NewEngine(store, options.searchOpts...)
	if err != nil {
		closeStorage()
		return nil, err
	}

	provider := options.provider
	if provider == nil {
		provider, err = openai.NewProvider(options.aiConfig)
		if err != nil {
			closeStorage()
			return nil, err
		}
	}

	feed, err := civic.NewFeed(voteRepo, engine, options.feedOpts...)
	if err != nil {
		provider.Close()
		closeStorage()
		return nil, err
	}

	return &App{
		backend:   backend,
		voteRepo:  voteRepo,
		chatRepo:  chatRepo,
		shelfRepo: shelfRepo,
		store:     store,
		engine:    engine,
		provider:  provider,
		feed:      feed,
		logger:    slog.Default(),
	}, nil
}

// Close releases the feed's worker pool, the AI provider and the storage
// backend.
func (a *App) Close() error {
	a.feed.Release()

	if err := a.provider.Close(); err != nil {
		a.logger.Error("error closing AI provider", "err", err)
	}

	if err := a.shelfRepo.Close(); err != nil {
		a.logger.Error("error closing shelf repository", "err", err)
		return err
	}
	if err := a.chatRepo.Close(); err != nil {
		a.logger.Error("error closing chat repository", "err", err)
		return err
	}
	if err := a.voteRepo.Close(); err != nil {
		a.logger.Error("error closing vote repository", "err", err)
		return err
	}

	if err := a.backend.Close(); err != nil {
		a.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

// SearchConstitution searches the constitution for the query.
func (a *App) SearchConstitution(ctx context.Context, query string) []core.Article {
	return a.engine.SearchConstitution(ctx, query)
}

// GetAllArticles returns the full constitution in document order.
func (a *App) GetAllArticles(ctx context.Context) []core.Article {
	return a.engine.GetAllArticles(ctx)
}

// Cases returns the judicial case collection.
func (a *App) Cases(ctx context.Context) []core.JudicialCase {
	a.store.Load(ctx)
	return a.store.Cases()
}

// SearchCases filters the judicial cases by a substring query.
func (a *App) SearchCases(ctx context.Context, query string) []core.JudicialCase {
	a.store.Load(ctx)
	return a.store.SearchCases(query)
}

// Feed returns the civic voting feed.
func (a *App) Feed() *civic.Feed {
	return a.feed
}

// Shelf returns the per-device bookmark and history store.
func (a *App) Shelf() storage.ShelfRepository {
	return a.shelfRepo
}

// VoteRepository returns the underlying vote store.
func (a *App) VoteRepository() storage.VoteRepository {
	return a.voteRepo
}

// ChatRepository returns the underlying transcript store.
func (a *App) ChatRepository() storage.ChatRepository {
	return a.chatRepo
}

// NewAssistant creates a pocket lawyer assistant over the app's engine,
// AI provider and transcript store.
func (a *App) NewAssistant(opts ...lawyer.Option) (*lawyer.Assistant, error) {
	return lawyer.NewAssistant(a.engine, a.provider, a.chatRepo, opts...)
}

// NewRecounter creates a tally recounter over the app's vote store.
func (a *App) NewRecounter(config *recount.Config, progress io.Writer) *recount.Recounter {
	return recount.NewRecounter(a.voteRepo, config, progress)
}
