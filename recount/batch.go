package recount

import (
	"context"
	"fmt"
	"time"

	"github.com/poiesic/cedizen/core"
	"github.com/poiesic/cedizen/storage"
)

// BatchProcessor rebuilds cached tallies for batches of votes.
type BatchProcessor struct {
	repo           storage.VoteRepository
	maxRetries     int
	retryBaseDelay time.Duration
}

// NewBatchProcessor creates a new batch processor.
// maxRetries: maximum number of retry attempts per vote
// retryBaseDelay: base delay for exponential backoff
func NewBatchProcessor(repo storage.VoteRepository, maxRetries int, retryBaseDelay time.Duration) *BatchProcessor {
	return &BatchProcessor{
		repo:           repo,
		maxRetries:     maxRetries,
		retryBaseDelay: retryBaseDelay,
	}
}

// Process recomputes the tally for each vote in the batch from its raw
// reactions and replaces the cached copy.
func (bp *BatchProcessor) Process(ctx context.Context, votes []*core.VoteRecord) error {
	if len(votes) == 0 {
		return nil
	}

	for _, vote := range votes {
		err := retryRebuild(ctx, vote.Id, bp.maxRetries, bp.retryBaseDelay, bp.recountVote)
		if err != nil {
			return fmt.Errorf("failed to recount vote %d after %d attempts: %w", vote.Id, bp.maxRetries, err)
		}
	}

	return nil
}

// recountVote rebuilds one vote's tally from its reactions.
func (bp *BatchProcessor) recountVote(ctx context.Context, voteID core.ID) error {
	reactions, err := bp.repo.GetReactionsByVote(ctx, voteID)
	if err != nil {
		return fmt.Errorf("failed to read reactions: %w", err)
	}

	tally := &core.ReactionTally{VoteId: voteID}
	for _, reaction := range reactions {
		tally.Add(reaction.Type, 1)
	}

	if err := bp.repo.PutTally(ctx, tally); err != nil {
		return fmt.Errorf("failed to write tally: %w", err)
	}
	return nil
}
