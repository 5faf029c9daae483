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

package badger

import (
	"context"
	"slices"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/cedizen/core"
	"github.com/poiesic/cedizen/storage"
)

// VoteRepository implements storage.VoteRepository for BadgerDB.
type VoteRepository struct {
	backend *Backend
	idSeq   *badger.Sequence
}

var _ storage.VoteRepository = (*VoteRepository)(nil)

// NewVoteRepository creates a new VoteRepository.
func NewVoteRepository(backend *Backend) (*VoteRepository, error) {
	idSeq, err := backend.GetSequence(voteIDSeq)
	if err != nil {
		return nil, err
	}

	return &VoteRepository{
		backend: backend,
		idSeq:   idSeq,
	}, nil
}

// Close releases the ID sequence.
func (r *VoteRepository) Close() error {
	return r.idSeq.Release()
}

// WithTransaction delegates to the backend.
func (r *VoteRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AddVotes adds one or more votes to the feed.
func (r *VoteRepository) AddVotes(ctx context.Context, votes ...*core.VoteRecord) ([]*core.VoteRecord, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, vote := range votes {
			// Always generate new ID from sequence
			nextID, err := r.idSeq.Next()
			if err != nil {
				return err
			}
			// BadgerDB sequences can return 0 on first call, so we skip it
			if nextID == 0 {
				nextID, err = r.idSeq.Next()
				if err != nil {
					return err
				}
			}
			vote.Id = core.ID(nextID)

			vote.InsertedAt = time.Now().UTC()
			vote.UpdatedAt = vote.InsertedAt
			if vote.Timestamp.IsZero() {
				vote.Timestamp = vote.InsertedAt
			}

			// Store primary record
			key := makeVoteKey(vote.Id)
			value := storage.MarshalVoteRecord(vote)
			if err := tx.Set(key, value); err != nil {
				return err
			}

			// Update date index
			dateKey := makeVoteDateKey(vote.Timestamp, vote.Id)
			if err := tx.Set(dateKey, storage.MarshalID(vote.Id)); err != nil {
				return err
			}

			// Update article index
			articleKey := makeVoteArticleKey(vote.ArticleId, vote.Id)
			if err := tx.Set(articleKey, storage.MarshalID(vote.Id)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return votes, err
}

// GetVote retrieves a single vote by ID.
func (r *VoteRepository) GetVote(ctx context.Context, id core.ID) (*core.VoteRecord, error) {
	var result *core.VoteRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		result, err = readVote(tx, makeVoteKey(id))
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// GetRecentVotes retrieves the N most recent votes, newest first.
func (r *VoteRepository) GetRecentVotes(ctx context.Context, limit int) ([]*core.VoteRecord, error) {
	var results []*core.VoteRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		// Use reverse iterator to get most recent votes first
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true

		iter := tx.NewIterator(opts)
		defer iter.Close()

		startKey := makePartialVoteDateKey(time.Date(9999, 12, 31, 23, 59, 59, 999999999, time.UTC))
		prefix := []byte(voteDatePrefix + ":")

		count := 0
		for iter.Seek(startKey); iter.Valid() && count < limit; iter.Next() {
			key := iter.Item().Key()
			if len(key) < len(prefix) || slices.Compare(key[:len(prefix)], prefix) != 0 {
				break
			}

			var voteID core.ID
			if err := iter.Item().Value(func(val []byte) error {
				var err error
				voteID, err = storage.UnmarshalID(val)
				return err
			}); err != nil {
				return err
			}

			vote, err := readVote(tx, makeVoteKey(voteID))
			if err != nil {
				return err
			}
			if vote != nil {
				results = append(results, vote)
				count++
			}
		}
		return nil
	}, false)

	return results, err
}

// GetVotesByArticle retrieves every vote cast on an article.
func (r *VoteRepository) GetVotesByArticle(ctx context.Context, articleID string) ([]*core.VoteRecord, error) {
	var results []*core.VoteRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		startKey := makePartialVoteArticleKey(articleID)
		iter := tx.NewIterator(badger.DefaultIteratorOptions)
		defer iter.Close()

		for iter.Seek(startKey); iter.Valid(); iter.Next() {
			key := iter.Item().Key()
			if len(key) < len(startKey) || slices.Compare(key[:len(startKey)], startKey) != 0 {
				break
			}

			var voteID core.ID
			if err := iter.Item().Value(func(val []byte) error {
				var err error
				voteID, err = storage.UnmarshalID(val)
				return err
			}); err != nil {
				return err
			}

			vote, err := readVote(tx, makeVoteKey(voteID))
			if err != nil {
				return err
			}
			if vote != nil {
				results = append(results, vote)
			}
		}
		return nil
	}, false)

	return results, err
}

// GetVotesByDateRange retrieves votes within a time range.
func (r *VoteRepository) GetVotesByDateRange(ctx context.Context, start, end time.Time) ([]*core.VoteRecord, error) {
	if start.Equal(end) {
		end = start.Add(1 * time.Microsecond)
	}

	var results []*core.VoteRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		startKey := makePartialVoteDateKey(start)
		endKey := makePartialVoteDateKey(end)
		iter := tx.NewIterator(badger.DefaultIteratorOptions)
		defer iter.Close()

		for iter.Seek(startKey); iter.Valid(); iter.Next() {
			key := iter.Item().Key()
			if slices.Compare(key, endKey) > 0 {
				break
			}

			var voteID core.ID
			if err := iter.Item().Value(func(val []byte) error {
				var err error
				voteID, err = storage.UnmarshalID(val)
				return err
			}); err != nil {
				return err
			}

			vote, err := readVote(tx, makeVoteKey(voteID))
			if err != nil {
				return err
			}
			if vote != nil {
				results = append(results, vote)
			}
		}
		return nil
	}, false)

	return results, err
}

// CountVotesByArticle returns the number of votes per article ID.
func (r *VoteRepository) CountVotesByArticle(ctx context.Context) (map[string]int, error) {
	counts := make(map[string]int)
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		prefix := []byte(voteArticlePrefix + ":")
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		opts.PrefetchValues = false

		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			key := iter.Item().Key()
			// Key format: prefix:articleID:voteID where the vote ID is
			// the trailing 8 bytes after a separator.
			rest := key[len(prefix):]
			if len(rest) < 9 {
				continue
			}
			counts[string(rest[:len(rest)-9])]++
		}
		return nil
	}, false)

	return counts, err
}

// DeleteVotes removes votes by their IDs, with their indexes, reactions and
// cached tallies.
func (r *VoteRepository) DeleteVotes(ctx context.Context, ids ...core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeVoteKey(id)

			vote, err := readVote(tx, key)
			if err != nil {
				return err
			}
			if vote == nil {
				return storage.ErrNotFound
			}

			if err := tx.Delete(makeVoteDateKey(vote.Timestamp, vote.Id)); err != nil {
				return err
			}
			if err := tx.Delete(makeVoteArticleKey(vote.ArticleId, vote.Id)); err != nil {
				return err
			}

			// Delete reactions clustered under this vote
			reactions, err := readReactionsByVote(tx, id)
			if err != nil {
				return err
			}
			for _, reaction := range reactions {
				if err := tx.Delete(makeReactionKey(id, reaction.Id)); err != nil {
					return err
				}
			}
			if err := tx.Delete(makeTallyKey(id)); err != nil {
				return err
			}

			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// PutReaction inserts or replaces a device's reaction to a vote and adjusts
// the cached tally in the same transaction.
func (r *VoteRepository) PutReaction(ctx context.Context, reaction *core.Reaction) (*core.Reaction, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		reaction.Id = core.ReactionID(reaction.VoteId, reaction.DeviceId)
		key := makeReactionKey(reaction.VoteId, reaction.Id)

		old, err := readReaction(tx, key)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		if old != nil {
			reaction.InsertedAt = old.InsertedAt
		} else {
			reaction.InsertedAt = now
		}
		reaction.UpdatedAt = now

		if err := tx.Set(key, storage.MarshalReaction(reaction)); err != nil {
			return err
		}

		// Adjust the cached tally
		tally, err := readTally(tx, reaction.VoteId)
		if err != nil {
			return err
		}
		if old != nil {
			tally.Add(old.Type, -1)
		}
		tally.Add(reaction.Type, 1)
		tally.UpdatedAt = now

		if err := tx.Set(makeTallyKey(reaction.VoteId), storage.MarshalReactionTally(tally)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)

	return reaction, err
}

// DeleteReaction removes a device's reaction to a vote and adjusts the
// cached tally. Deleting an absent reaction is a no-op.
func (r *VoteRepository) DeleteReaction(ctx context.Context, voteID core.ID, deviceID string) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		reactionID := core.ReactionID(voteID, deviceID)
		key := makeReactionKey(voteID, reactionID)

		old, err := readReaction(tx, key)
		if err != nil {
			return err
		}
		if old == nil {
			return nil
		}

		if err := tx.Delete(key); err != nil {
			return err
		}

		tally, err := readTally(tx, voteID)
		if err != nil {
			return err
		}
		tally.Add(old.Type, -1)
		tally.UpdatedAt = time.Now().UTC()

		if err := tx.Set(makeTallyKey(voteID), storage.MarshalReactionTally(tally)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// GetReaction retrieves a device's reaction to a vote.
func (r *VoteRepository) GetReaction(ctx context.Context, voteID core.ID, deviceID string) (*core.Reaction, error) {
	var result *core.Reaction
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		reactionID := core.ReactionID(voteID, deviceID)
		var err error
		result, err = readReaction(tx, makeReactionKey(voteID, reactionID))
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// GetReactionsByVote retrieves every reaction to a vote.
func (r *VoteRepository) GetReactionsByVote(ctx context.Context, voteID core.ID) ([]*core.Reaction, error) {
	var results []*core.Reaction
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		results, err = readReactionsByVote(tx, voteID)
		return err
	}, false)
	return results, err
}

// GetTally retrieves the cached reaction tally for a vote.
func (r *VoteRepository) GetTally(ctx context.Context, voteID core.ID) (*core.ReactionTally, error) {
	var result *core.ReactionTally
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		result, err = readTally(tx, voteID)
		return err
	}, false)
	return result, err
}

// PutTally replaces the cached reaction tally for a vote.
func (r *VoteRepository) PutTally(ctx context.Context, tally *core.ReactionTally) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		tally.UpdatedAt = time.Now().UTC()
		if err := tx.Set(makeTallyKey(tally.VoteId), storage.MarshalReactionTally(tally)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// Helper methods

// readVote reads a vote record from the transaction.
func readVote(tx *badger.Txn, key []byte) (*core.VoteRecord, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var vote *core.VoteRecord
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		vote, unmarshalErr = storage.UnmarshalVoteRecord(val)
		return unmarshalErr
	})
	return vote, err
}

// readReaction reads a reaction from the transaction.
func readReaction(tx *badger.Txn, key []byte) (*core.Reaction, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var reaction *core.Reaction
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		reaction, unmarshalErr = storage.UnmarshalReaction(val)
		return unmarshalErr
	})
	return reaction, err
}

// readReactionsByVote scans the reactions clustered under a vote.
func readReactionsByVote(tx *badger.Txn, voteID core.ID) ([]*core.Reaction, error) {
	var results []*core.Reaction

	startKey := makePartialReactionKey(voteID)
	iter := tx.NewIterator(badger.DefaultIteratorOptions)
	defer iter.Close()

	for iter.Seek(startKey); iter.Valid(); iter.Next() {
		key := iter.Item().Key()
		if len(key) < len(startKey) || slices.Compare(key[:len(startKey)], startKey) != 0 {
			break
		}

		var reaction *core.Reaction
		if err := iter.Item().Value(func(val []byte) error {
			var err error
			reaction, err = storage.UnmarshalReaction(val)
			return err
		}); err != nil {
			return nil, err
		}
		if reaction != nil {
			results = append(results, reaction)
		}
	}
	return results, nil
}

// readTally reads a vote's cached tally; absent tallies come back zeroed.
func readTally(tx *badger.Txn, voteID core.ID) (*core.ReactionTally, error) {
	item, err := tx.Get(makeTallyKey(voteID))
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return &core.ReactionTally{VoteId: voteID}, nil
		}
		return nil, err
	}

	var tally *core.ReactionTally
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		tally, unmarshalErr = storage.UnmarshalReactionTally(val)
		return unmarshalErr
	})
	return tally, err
}
