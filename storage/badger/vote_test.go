package badger

import (
	"context"
	"testing"
	"time"

	"github.com/poiesic/cedizen/core"
	"github.com/poiesic/cedizen/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupVoteRepo(t *testing.T) storage.VoteRepository {
	t.Helper()

	voteRepo, chatRepo, shelfRepo, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	t.Cleanup(func() {
		shelfRepo.Close()
		chatRepo.Close()
		voteRepo.Close()
		backend.Close()
	})
	return voteRepo
}

func newVote(articleID string, voteType core.VoteType) *core.VoteRecord {
	return &core.VoteRecord{
		ArticleId: articleID,
		Type:      voteType,
		Comment:   "test comment",
		UserAlias: "Citizen #1234",
		Timestamp: time.Now().UTC(),
	}
}

func TestVoteRepository_AddVotes(t *testing.T) {
	repo := setupVoteRepo(t)
	ctx := context.Background()

	t.Run("assigns IDs and timestamps", func(t *testing.T) {
		votes, err := repo.AddVotes(ctx, newVote("art-21", core.VoteTypeStay))
		require.NoError(t, err)
		require.Len(t, votes, 1)
		assert.NotZero(t, votes[0].Id)
		assert.False(t, votes[0].InsertedAt.IsZero())
		assert.Equal(t, votes[0].InsertedAt, votes[0].UpdatedAt)
	})

	t.Run("IDs are unique", func(t *testing.T) {
		first, err := repo.AddVotes(ctx, newVote("art-21", core.VoteTypeStay))
		require.NoError(t, err)
		second, err := repo.AddVotes(ctx, newVote("art-42", core.VoteTypeGo))
		require.NoError(t, err)
		assert.NotEqual(t, first[0].Id, second[0].Id)
	})
}

func TestVoteRepository_GetVote(t *testing.T) {
	repo := setupVoteRepo(t)
	ctx := context.Background()

	votes, err := repo.AddVotes(ctx, newVote("art-21", core.VoteTypeStay))
	require.NoError(t, err)

	t.Run("found", func(t *testing.T) {
		got, err := repo.GetVote(ctx, votes[0].Id)
		require.NoError(t, err)
		assert.Equal(t, "art-21", got.ArticleId)
		assert.Equal(t, core.VoteTypeStay, got.Type)
		assert.Equal(t, "Citizen #1234", got.UserAlias)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := repo.GetVote(ctx, core.ID(999999))
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestVoteRepository_GetRecentVotes(t *testing.T) {
	repo := setupVoteRepo(t)
	ctx := context.Background()

	base := time.Now().UTC().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		vote := newVote("art-21", core.VoteTypeStay)
		vote.Timestamp = base.Add(time.Duration(i) * time.Minute)
		_, err := repo.AddVotes(ctx, vote)
		require.NoError(t, err)
	}

	t.Run("newest first", func(t *testing.T) {
		votes, err := repo.GetRecentVotes(ctx, 3)
		require.NoError(t, err)
		require.Len(t, votes, 3)
		assert.True(t, votes[0].Timestamp.After(votes[1].Timestamp))
		assert.True(t, votes[1].Timestamp.After(votes[2].Timestamp))
	})

	t.Run("limit beyond size returns all", func(t *testing.T) {
		votes, err := repo.GetRecentVotes(ctx, 100)
		require.NoError(t, err)
		assert.Len(t, votes, 5)
	})
}

func TestVoteRepository_GetVotesByArticle(t *testing.T) {
	repo := setupVoteRepo(t)
	ctx := context.Background()

	_, err := repo.AddVotes(ctx,
		newVote("art-21", core.VoteTypeStay),
		newVote("art-21", core.VoteTypeGo),
		newVote("art-42", core.VoteTypeStay))
	require.NoError(t, err)

	votes, err := repo.GetVotesByArticle(ctx, "art-21")
	require.NoError(t, err)
	assert.Len(t, votes, 2)

	votes, err = repo.GetVotesByArticle(ctx, "art-42")
	require.NoError(t, err)
	assert.Len(t, votes, 1)

	votes, err = repo.GetVotesByArticle(ctx, "art-99")
	require.NoError(t, err)
	assert.Empty(t, votes)
}

func TestVoteRepository_GetVotesByDateRange(t *testing.T) {
	repo := setupVoteRepo(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 4; i++ {
		vote := newVote("art-21", core.VoteTypeStay)
		vote.Timestamp = base.Add(time.Duration(i) * time.Hour)
		_, err := repo.AddVotes(ctx, vote)
		require.NoError(t, err)
	}

	// End is exclusive: only the votes at base and base+1h fall in range.
	votes, err := repo.GetVotesByDateRange(ctx, base, base.Add(2*time.Hour))
	require.NoError(t, err)
	assert.Len(t, votes, 2)
}

func TestVoteRepository_CountVotesByArticle(t *testing.T) {
	repo := setupVoteRepo(t)
	ctx := context.Background()

	_, err := repo.AddVotes(ctx,
		newVote("art-21", core.VoteTypeStay),
		newVote("art-21", core.VoteTypeGo),
		newVote("art-21", core.VoteTypeStay),
		newVote("art-42", core.VoteTypeGo))
	require.NoError(t, err)

	counts, err := repo.CountVotesByArticle(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, counts["art-21"])
	assert.Equal(t, 1, counts["art-42"])
}

func TestVoteRepository_DeleteVotes(t *testing.T) {
	repo := setupVoteRepo(t)
	ctx := context.Background()

	votes, err := repo.AddVotes(ctx, newVote("art-21", core.VoteTypeStay))
	require.NoError(t, err)
	voteID := votes[0].Id

	_, err = repo.PutReaction(ctx, &core.Reaction{
		VoteId: voteID, DeviceId: "device-1", Type: core.ReactionTypeLike,
	})
	require.NoError(t, err)

	require.NoError(t, repo.DeleteVotes(ctx, voteID))

	_, err = repo.GetVote(ctx, voteID)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	reactions, err := repo.GetReactionsByVote(ctx, voteID)
	require.NoError(t, err)
	assert.Empty(t, reactions)

	t.Run("missing vote", func(t *testing.T) {
		err := repo.DeleteVotes(ctx, core.ID(999999))
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestVoteRepository_Reactions(t *testing.T) {
	repo := setupVoteRepo(t)
	ctx := context.Background()

	votes, err := repo.AddVotes(ctx, newVote("art-21", core.VoteTypeStay))
	require.NoError(t, err)
	voteID := votes[0].Id

	t.Run("put assigns derived ID", func(t *testing.T) {
		reaction, err := repo.PutReaction(ctx, &core.Reaction{
			VoteId: voteID, DeviceId: "device-1", Type: core.ReactionTypeLike,
		})
		require.NoError(t, err)
		assert.Equal(t, core.ReactionID(voteID, "device-1"), reaction.Id)
	})

	t.Run("one reaction per device", func(t *testing.T) {
		_, err := repo.PutReaction(ctx, &core.Reaction{
			VoteId: voteID, DeviceId: "device-1", Type: core.ReactionTypeDislike,
		})
		require.NoError(t, err)

		reactions, err := repo.GetReactionsByVote(ctx, voteID)
		require.NoError(t, err)
		require.Len(t, reactions, 1)
		assert.Equal(t, core.ReactionTypeDislike, reactions[0].Type)
	})

	t.Run("tally tracks replacements", func(t *testing.T) {
		tally, err := repo.GetTally(ctx, voteID)
		require.NoError(t, err)
		assert.Equal(t, 0, tally.Like)
		assert.Equal(t, 1, tally.Dislike)
	})

	t.Run("second device adds up", func(t *testing.T) {
		_, err := repo.PutReaction(ctx, &core.Reaction{
			VoteId: voteID, DeviceId: "device-2", Type: core.ReactionTypeDislike,
		})
		require.NoError(t, err)

		tally, err := repo.GetTally(ctx, voteID)
		require.NoError(t, err)
		assert.Equal(t, 2, tally.Dislike)
	})

	t.Run("delete adjusts tally", func(t *testing.T) {
		require.NoError(t, repo.DeleteReaction(ctx, voteID, "device-2"))

		tally, err := repo.GetTally(ctx, voteID)
		require.NoError(t, err)
		assert.Equal(t, 1, tally.Dislike)

		_, err = repo.GetReaction(ctx, voteID, "device-2")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("delete absent reaction is a no-op", func(t *testing.T) {
		assert.NoError(t, repo.DeleteReaction(ctx, voteID, "device-99"))
	})

	t.Run("tally for vote without reactions is zero", func(t *testing.T) {
		tally, err := repo.GetTally(ctx, core.ID(424242))
		require.NoError(t, err)
		assert.Equal(t, 0, tally.Like+tally.Dislike+tally.Maybe)
	})
}

func TestVoteRepository_PutTally(t *testing.T) {
	repo := setupVoteRepo(t)
	ctx := context.Background()

	tally := &core.ReactionTally{VoteId: core.ID(7), Like: 3, Dislike: 1, Maybe: 2}
	require.NoError(t, repo.PutTally(ctx, tally))

	got, err := repo.GetTally(ctx, core.ID(7))
	require.NoError(t, err)
	assert.Equal(t, 3, got.Like)
	assert.Equal(t, 1, got.Dislike)
	assert.Equal(t, 2, got.Maybe)
}
