package civic

import (
	"context"
	"regexp"
	"testing"

	"github.com/poiesic/cedizen/core"
	"github.com/poiesic/cedizen/corpus"
	"github.com/poiesic/cedizen/search"
	"github.com/poiesic/cedizen/storage"
	storagebadger "github.com/poiesic/cedizen/storage/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// staticSource serves a fixed corpus for feed tests.
type staticSource struct {
	articles []core.Article
}

func (s *staticSource) ReadAll(ctx context.Context) (*corpus.Collection, error) {
	return &corpus.Collection{Articles: s.articles}, nil
}

func setupFeed(t *testing.T) (*Feed, storage.VoteRepository) {
	t.Helper()

	voteRepo, chatRepo, shelfRepo, backend, err := storagebadger.NewMemoryRepositories()
	require.NoError(t, err)
	t.Cleanup(func() {
		shelfRepo.Close()
		chatRepo.Close()
		voteRepo.Close()
		backend.Close()
	})

	store, err := corpus.NewStore(&staticSource{articles: []core.Article{
		{ID: "art-21", Article: "21", Title: "Freedom of Assembly", Content: "Processions and demonstrations.", Tags: []string{"protest"}},
		{ID: "art-42", Article: "42", Title: "Right to Vote", Content: "Every citizen may vote.", Tags: []string{"vote"}},
	}})
	require.NoError(t, err)

	engine, err := search.NewEngine(store)
	require.NoError(t, err)

	feed, err := NewFeed(voteRepo, engine)
	require.NoError(t, err)
	t.Cleanup(feed.Release)

	return feed, voteRepo
}

func TestNewFeed(t *testing.T) {
	t.Run("nil vote repository", func(t *testing.T) {
		_, err := NewFeed(nil, &search.Engine{})
		assert.Equal(t, ErrVoteRepositoryRequired, err)
	})

	t.Run("nil engine", func(t *testing.T) {
		voteRepo, _, _, backend, err := storagebadger.NewMemoryRepositories()
		require.NoError(t, err)
		defer backend.Close()
		defer voteRepo.Close()

		_, err = NewFeed(voteRepo, nil)
		assert.Equal(t, ErrEngineRequired, err)
	})
}

func TestFeed_CastVote(t *testing.T) {
	feed, _ := setupFeed(t)
	ctx := context.Background()

	t.Run("persists with generated alias", func(t *testing.T) {
		vote, err := feed.CastVote(ctx, "art-21", core.VoteTypeStay, "keep it")
		require.NoError(t, err)
		assert.NotZero(t, vote.Id)
		assert.Regexp(t, regexp.MustCompile(`^Citizen #\d{4}$`), vote.UserAlias)
		assert.Equal(t, "keep it", vote.Comment)
	})

	t.Run("empty article rejected", func(t *testing.T) {
		_, err := feed.CastVote(ctx, "", core.VoteTypeStay, "")
		assert.ErrorIs(t, err, core.ErrInvalidVote)
	})

	t.Run("invalid vote type rejected", func(t *testing.T) {
		_, err := feed.CastVote(ctx, "art-21", core.VoteType(9), "")
		assert.ErrorIs(t, err, core.ErrInvalidVote)
	})
}

func TestFeed_Recent(t *testing.T) {
	feed, _ := setupFeed(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := feed.CastVote(ctx, "art-21", core.VoteTypeStay, "")
		require.NoError(t, err)
	}

	entries, err := feed.Recent(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	for _, entry := range entries {
		require.NotNil(t, entry.Vote)
		require.NotNil(t, entry.Tally)
		assert.Equal(t, entry.Vote.Id, entry.Tally.VoteId)
	}
}

func TestFeed_ToggleReaction(t *testing.T) {
	feed, _ := setupFeed(t)
	ctx := context.Background()

	vote, err := feed.CastVote(ctx, "art-21", core.VoteTypeStay, "")
	require.NoError(t, err)

	t.Run("first reaction counts", func(t *testing.T) {
		tally, err := feed.ToggleReaction(ctx, vote.Id, "device-1", core.ReactionTypeLike)
		require.NoError(t, err)
		assert.Equal(t, 1, tally.Like)
	})

	t.Run("switching replaces", func(t *testing.T) {
		tally, err := feed.ToggleReaction(ctx, vote.Id, "device-1", core.ReactionTypeMaybe)
		require.NoError(t, err)
		assert.Equal(t, 0, tally.Like)
		assert.Equal(t, 1, tally.Maybe)
	})

	t.Run("repeating removes", func(t *testing.T) {
		tally, err := feed.ToggleReaction(ctx, vote.Id, "device-1", core.ReactionTypeMaybe)
		require.NoError(t, err)
		assert.Equal(t, 0, tally.Maybe)
	})

	t.Run("devices count independently", func(t *testing.T) {
		_, err := feed.ToggleReaction(ctx, vote.Id, "device-1", core.ReactionTypeLike)
		require.NoError(t, err)
		tally, err := feed.ToggleReaction(ctx, vote.Id, "device-2", core.ReactionTypeLike)
		require.NoError(t, err)
		assert.Equal(t, 2, tally.Like)
	})

	t.Run("unknown vote rejected", func(t *testing.T) {
		_, err := feed.ToggleReaction(ctx, core.ID(999999), "device-1", core.ReactionTypeLike)
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("empty device rejected", func(t *testing.T) {
		_, err := feed.ToggleReaction(ctx, vote.Id, "", core.ReactionTypeLike)
		assert.Equal(t, ErrEmptyDeviceID, err)
	})
}

func TestFeed_Stats(t *testing.T) {
	feed, _ := setupFeed(t)
	ctx := context.Background()

	t.Run("no votes", func(t *testing.T) {
		stats, err := feed.Stats(ctx, "art-21")
		require.NoError(t, err)
		assert.Equal(t, 0, stats.Total)
		assert.Equal(t, 0, stats.StayPercent)
	})

	t.Run("counts and percents", func(t *testing.T) {
		for i := 0; i < 2; i++ {
			_, err := feed.CastVote(ctx, "art-21", core.VoteTypeStay, "")
			require.NoError(t, err)
		}
		_, err := feed.CastVote(ctx, "art-21", core.VoteTypeGo, "")
		require.NoError(t, err)

		stats, err := feed.Stats(ctx, "art-21")
		require.NoError(t, err)
		assert.Equal(t, 3, stats.Total)
		assert.Equal(t, 2, stats.Stay)
		assert.Equal(t, 1, stats.Go)
		assert.Equal(t, 67, stats.StayPercent)
		assert.Equal(t, 33, stats.GoPercent)
	})
}

func TestFeed_Trending(t *testing.T) {
	feed, _ := setupFeed(t)
	ctx := context.Background()

	t.Run("empty without votes", func(t *testing.T) {
		trending, err := feed.Trending(ctx, 5)
		require.NoError(t, err)
		assert.Empty(t, trending)
	})

	t.Run("most voted first", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			_, err := feed.CastVote(ctx, "art-42", core.VoteTypeGo, "")
			require.NoError(t, err)
		}
		_, err := feed.CastVote(ctx, "art-21", core.VoteTypeStay, "")
		require.NoError(t, err)

		trending, err := feed.Trending(ctx, 5)
		require.NoError(t, err)
		require.Len(t, trending, 2)
		assert.Equal(t, "art-42", trending[0].Article.ID)
		assert.Equal(t, 3, trending[0].Votes)
		assert.Equal(t, "Right to Vote", trending[0].Article.Title)
	})

	t.Run("votes on unknown articles are skipped", func(t *testing.T) {
		_, err := feed.CastVote(ctx, "art-gone", core.VoteTypeStay, "")
		require.NoError(t, err)

		trending, err := feed.Trending(ctx, 5)
		require.NoError(t, err)
		assert.Len(t, trending, 2)
	})

	t.Run("limit respected", func(t *testing.T) {
		trending, err := feed.Trending(ctx, 1)
		require.NoError(t, err)
		assert.Len(t, trending, 1)
	})
}
