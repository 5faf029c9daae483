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

package civic

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"runtime"
	"sort"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/cedizen/core"
	"github.com/poiesic/cedizen/search"
	"github.com/poiesic/cedizen/storage"
)

// defaultFeedLimit bounds how many votes a feed read returns.
const defaultFeedLimit = 100

// Feed orchestrates the public voting feed. Votes are persisted
// synchronously; tally cache maintenance runs on a worker pool and its
// errors are logged, never surfaced to the voter.
type Feed struct {
	votes     storage.VoteRepository
	engine    *search.Engine
	tallyPool *ants.Pool
	feedLimit int
	logger    *slog.Logger
}

// FeedEntry pairs a vote with its cached reaction tally.
type FeedEntry struct {
	Vote  *core.VoteRecord
	Tally *core.ReactionTally
}

// TrendingArticle pairs an article with its vote count.
type TrendingArticle struct {
	Article core.Article
	Votes   int
}

// Option configures a Feed.
type Option func(*Feed) error

// WithPoolSize sets the worker pool size for tally maintenance.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(f *Feed) error {
		if size < 1 {
			size = 1
		}

		if f.tallyPool != nil {
			f.tallyPool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		f.tallyPool = pool
		return nil
	}
}

// WithFeedLimit overrides how many votes a feed read returns.
// Values below one are ignored.
func WithFeedLimit(limit int) Option {
	return func(f *Feed) error {
		if limit > 0 {
			f.feedLimit = limit
		}
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(f *Feed) error {
		if logger == nil {
			logger = slog.Default()
		}
		f.logger = logger
		return nil
	}
}

// NewFeed creates a new civic feed.
func NewFeed(votes storage.VoteRepository, engine *search.Engine, opts ...Option) (*Feed, error) {
	if votes == nil {
		return nil, ErrVoteRepositoryRequired
	}
	if engine == nil {
		return nil, ErrEngineRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	f := &Feed{
		votes:     votes,
		engine:    engine,
		tallyPool: pool,
		feedLimit: defaultFeedLimit,
		logger:    slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(f); err != nil {
			f.Release()
			return nil, err
		}
	}

	return f, nil
}

// Release releases the worker pool.
// The feed should not be used after calling Release.
func (f *Feed) Release() {
	if f.tallyPool != nil {
		f.tallyPool.Release()
	}
}

// CastVote adds a vote to the public feed under a generated anonymous
// alias. The tally cache for the new vote is seeded asynchronously.
func (f *Feed) CastVote(ctx context.Context, articleID string, voteType core.VoteType, comment string) (*core.VoteRecord, error) {
	vote := &core.VoteRecord{
		ArticleId: articleID,
		Type:      voteType,
		Comment:   comment,
		UserAlias: fmt.Sprintf("Citizen #%d", 1000+rand.IntN(9000)),
		Timestamp: time.Now().UTC(),
	}
	if err := core.ValidateVoteRecord(vote); err != nil {
		return nil, err
	}

	added, err := f.votes.AddVotes(ctx, vote)
	if err != nil {
		return nil, err
	}
	vote = added[0]

	// Seed the tally cache off the request path
	voteID := vote.Id
	if err := f.tallyPool.Submit(func() {
		tally, err := f.votes.GetTally(context.Background(), voteID)
		if err != nil {
			f.logger.Error("error reading tally for new vote", "voteID", voteID, "err", err)
			return
		}
		if !tally.UpdatedAt.IsZero() {
			// A reaction beat us to it
			return
		}
		if err := f.votes.PutTally(context.Background(), tally); err != nil {
			f.logger.Error("error seeding tally for new vote", "voteID", voteID, "err", err)
		}
	}); err != nil {
		f.logger.Warn("tally pool rejected task", "voteID", voteID, "err", err)
	}

	return vote, nil
}

// Recent returns the newest feed entries with their reaction tallies,
// newest first, bounded by the feed limit.
func (f *Feed) Recent(ctx context.Context) ([]*FeedEntry, error) {
	votes, err := f.votes.GetRecentVotes(ctx, f.feedLimit)
	if err != nil {
		return nil, err
	}

	entries := make([]*FeedEntry, 0, len(votes))
	for _, vote := range votes {
		tally, err := f.votes.GetTally(ctx, vote.Id)
		if err != nil {
			return nil, err
		}
		entries = append(entries, &FeedEntry{Vote: vote, Tally: tally})
	}
	return entries, nil
}

// ToggleReaction applies a device's reaction to a vote. Reacting with the
// type already held removes the reaction; any other type replaces it.
// Returns the updated tally.
func (f *Feed) ToggleReaction(ctx context.Context, voteID core.ID, deviceID string, reaction core.ReactionType) (*core.ReactionTally, error) {
	if deviceID == "" {
		return nil, ErrEmptyDeviceID
	}
	if err := core.ValidateReactionType(reaction); err != nil {
		return nil, err
	}

	// The vote must exist before anyone reacts to it
	if _, err := f.votes.GetVote(ctx, voteID); err != nil {
		return nil, err
	}

	existing, err := f.votes.GetReaction(ctx, voteID, deviceID)
	if err != nil && err != storage.ErrNotFound {
		return nil, err
	}

	if existing != nil && existing.Type == reaction {
		if err := f.votes.DeleteReaction(ctx, voteID, deviceID); err != nil {
			return nil, err
		}
	} else {
		_, err := f.votes.PutReaction(ctx, &core.Reaction{
			VoteId:   voteID,
			DeviceId: deviceID,
			Type:     reaction,
		})
		if err != nil {
			return nil, err
		}
	}

	return f.votes.GetTally(ctx, voteID)
}

// Stats aggregates the stay/go votes cast on an article. Articles without
// votes return zeroed stats.
func (f *Feed) Stats(ctx context.Context, articleID string) (*core.VoteStats, error) {
	votes, err := f.votes.GetVotesByArticle(ctx, articleID)
	if err != nil {
		return nil, err
	}

	stats := &core.VoteStats{Total: len(votes)}
	if stats.Total == 0 {
		return stats, nil
	}

	for _, vote := range votes {
		switch vote.Type {
		case core.VoteTypeStay:
			stats.Stay++
		case core.VoteTypeGo:
			stats.Go++
		}
	}
	stats.StayPercent = roundPercent(stats.Stay, stats.Total)
	stats.GoPercent = roundPercent(stats.Go, stats.Total)
	return stats, nil
}

// Trending returns the most-voted articles, resolved through the search
// engine's corpus, up to limit. Ties break by article ID so output is
// stable.
func (f *Feed) Trending(ctx context.Context, limit int) ([]*TrendingArticle, error) {
	counts, err := f.votes.CountVotesByArticle(ctx)
	if err != nil {
		return nil, err
	}
	if len(counts) == 0 || limit <= 0 {
		return nil, nil
	}

	byID := make(map[string]core.Article)
	for _, article := range f.engine.GetAllArticles(ctx) {
		byID[article.ID] = article
	}

	trending := make([]*TrendingArticle, 0, len(counts))
	for articleID, votes := range counts {
		article, ok := byID[articleID]
		if !ok {
			// Votes can outlive corpus revisions
			f.logger.Debug("vote on unknown article", "articleID", articleID)
			continue
		}
		trending = append(trending, &TrendingArticle{Article: article, Votes: votes})
	}

	sort.Slice(trending, func(i, j int) bool {
		if trending[i].Votes != trending[j].Votes {
			return trending[i].Votes > trending[j].Votes
		}
		return trending[i].Article.ID < trending[j].Article.ID
	})

	if len(trending) > limit {
		trending = trending[:limit]
	}
	return trending, nil
}

func roundPercent(part, total int) int {
	return int(math.Round(float64(part) / float64(total) * 100))
}
