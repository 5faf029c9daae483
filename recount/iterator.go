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

package recount

import (
	"context"
	"time"

	"github.com/poiesic/cedizen/core"
	"github.com/poiesic/cedizen/storage"
)

const (
	// DefaultBatchSize is the default number of votes to fetch in each batch
	DefaultBatchSize = 100
)

// VoteIterator iterates over all votes in the feed in batches.
type VoteIterator struct {
	repo      storage.VoteRepository
	batchSize int
}

// NewVoteIterator creates a new vote iterator.
// batchSize: number of votes to fetch in each batch (must be > 0)
func NewVoteIterator(repo storage.VoteRepository, batchSize int) *VoteIterator {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	return &VoteIterator{
		repo:      repo,
		batchSize: batchSize,
	}
}

// ForEach iterates over all votes, calling fn for each batch.
// Iteration stops on first error from fn or when all votes are processed.
// Context cancellation is checked between batches.
func (it *VoteIterator) ForEach(ctx context.Context, fn func([]*core.VoteRecord) error) error {
	// Use a very wide date range to get all votes
	startTime := time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)
	endTime := time.Date(2100, 12, 31, 23, 59, 59, 0, time.UTC)

	// Check context before starting
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	// Fetch all votes using the date range query
	votes, err := it.repo.GetVotesByDateRange(ctx, startTime, endTime)
	if err != nil {
		return err
	}

	if len(votes) == 0 {
		// No votes to process
		return nil
	}

	// Process votes in batches of batchSize
	for i := 0; i < len(votes); i += it.batchSize {
		end := i + it.batchSize
		if end > len(votes) {
			end = len(votes)
		}

		batch := votes[i:end]

		// Call user function with batch
		if err := fn(batch); err != nil {
			return err
		}

		// Check context after each batch
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
	}

	return nil
}
