package storage

import (
	"context"
	"time"

	"github.com/poiesic/cedizen/core"
)

// Repository provides common storage operations shared across all repositories.
// Implementations must be thread-safe and support concurrent access.
type Repository interface {
	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}

// VoteRepository provides operations for the public voting feed, including
// per-vote reactions and their cached tallies.
type VoteRepository interface {
	Repository
	// AddVotes adds one or more votes to the feed.
	// Generates sequential IDs and sets InsertedAt/UpdatedAt timestamps.
	// Returns the votes with IDs and timestamps populated.
	AddVotes(ctx context.Context, votes ...*core.VoteRecord) ([]*core.VoteRecord, error)

	// GetVote retrieves a single vote by ID.
	// Returns ErrNotFound if the vote doesn't exist.
	GetVote(ctx context.Context, id core.ID) (*core.VoteRecord, error)

	// GetRecentVotes retrieves the N most recent votes, newest first.
	GetRecentVotes(ctx context.Context, limit int) ([]*core.VoteRecord, error)

	// GetVotesByArticle retrieves every vote cast on an article.
	GetVotesByArticle(ctx context.Context, articleID string) ([]*core.VoteRecord, error)

	// GetVotesByDateRange retrieves votes with start <= Timestamp < end,
	// ordered by timestamp ascending.
	GetVotesByDateRange(ctx context.Context, start, end time.Time) ([]*core.VoteRecord, error)

	// CountVotesByArticle returns the number of votes per article ID.
	CountVotesByArticle(ctx context.Context) (map[string]int, error)

	// DeleteVotes removes votes by their IDs, along with their reactions
	// and cached tallies.
	// Returns ErrNotFound if any vote doesn't exist.
	DeleteVotes(ctx context.Context, ids ...core.ID) error

	// PutReaction inserts or replaces a device's reaction to a vote and
	// adjusts the cached tally in the same transaction. The reaction ID
	// is derived from (VoteId, DeviceId).
	PutReaction(ctx context.Context, reaction *core.Reaction) (*core.Reaction, error)

	// DeleteReaction removes a device's reaction to a vote and adjusts
	// the cached tally. Deleting an absent reaction is a no-op.
	DeleteReaction(ctx context.Context, voteID core.ID, deviceID string) error

	// GetReaction retrieves a device's reaction to a vote.
	// Returns ErrNotFound if no reaction exists.
	GetReaction(ctx context.Context, voteID core.ID, deviceID string) (*core.Reaction, error)

	// GetReactionsByVote retrieves every reaction to a vote.
	GetReactionsByVote(ctx context.Context, voteID core.ID) ([]*core.Reaction, error)

	// GetTally retrieves the cached reaction tally for a vote. Votes
	// without reactions return a zero tally, not an error.
	GetTally(ctx context.Context, voteID core.ID) (*core.ReactionTally, error)

	// PutTally replaces the cached reaction tally for a vote.
	PutTally(ctx context.Context, tally *core.ReactionTally) error
}

// ChatRepository provides operations for assistant conversation transcripts.
type ChatRepository interface {
	Repository
	// AddMessages appends messages to a device's transcript.
	// Generates sequential IDs and sets InsertedAt/UpdatedAt timestamps.
	AddMessages(ctx context.Context, messages ...*core.ChatMessage) ([]*core.ChatMessage, error)

	// GetMessages retrieves a device's transcript, oldest first.
	GetMessages(ctx context.Context, deviceID string) ([]*core.ChatMessage, error)

	// GetRecentMessages retrieves the N most recent messages of a
	// device's transcript, newest first.
	GetRecentMessages(ctx context.Context, deviceID string, limit int) ([]*core.ChatMessage, error)

	// DeleteMessages removes a device's entire transcript.
	DeleteMessages(ctx context.Context, deviceID string) error
}

// ShelfRepository provides operations for per-device bookmarks and read
// history.
type ShelfRepository interface {
	Repository
	// ToggleSaved adds the article to the device's saved list, or removes
	// it if already present. Returns the updated saved list.
	ToggleSaved(ctx context.Context, deviceID, articleID string) ([]string, error)

	// SavedArticles retrieves the device's saved article IDs, oldest first.
	SavedArticles(ctx context.Context, deviceID string) ([]string, error)

	// AddToHistory records that the device read an article. The article
	// moves to the front of the history, which is bounded to the
	// core.HistoryLimit most recent entries.
	AddToHistory(ctx context.Context, deviceID, articleID string) error

	// History retrieves the device's read history, newest first.
	History(ctx context.Context, deviceID string) ([]string, error)
}
