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
	"fmt"
	"io"
	"time"

	"github.com/poiesic/cedizen/core"
	"github.com/poiesic/cedizen/storage"
)

// Config holds configuration for the recount operation.
type Config struct {
	// BatchSize is the number of votes to process in each batch
	BatchSize int

	// ReportInterval is how often to report progress (number of votes)
	ReportInterval int

	// MaxRetries is the maximum number of retry attempts for failed operations
	MaxRetries int

	// RetryDelay is the base delay for exponential backoff
	RetryDelay time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		BatchSize:      100,
		ReportInterval: 100,
		MaxRetries:     3,
		RetryDelay:     1 * time.Second,
	}
}

// Recounter orchestrates rebuilding every cached tally in the vote feed.
type Recounter struct {
	repo      storage.VoteRepository
	config    *Config
	progress  io.Writer
	processor *BatchProcessor
	iterator  *VoteIterator
}

// NewRecounter creates a new recounter.
// progress: where to write progress output (typically os.Stderr)
func NewRecounter(repo storage.VoteRepository, config *Config, progress io.Writer) *Recounter {
	if config == nil {
		config = DefaultConfig()
	}

	processor := NewBatchProcessor(repo, config.MaxRetries, config.RetryDelay)
	iterator := NewVoteIterator(repo, config.BatchSize)

	return &Recounter{
		repo:      repo,
		config:    config,
		progress:  progress,
		processor: processor,
		iterator:  iterator,
	}
}

// Run executes the recount operation.
// Every vote's cached tally is rebuilt from its raw reactions.
// Progress is reported to the configured writer.
func (r *Recounter) Run(ctx context.Context) error {
	// First, count total votes
	startTime := time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)
	endTime := time.Date(2100, 12, 31, 23, 59, 59, 0, time.UTC)

	allVotes, err := r.repo.GetVotesByDateRange(ctx, startTime, endTime)
	if err != nil {
		return fmt.Errorf("failed to query votes: %w", err)
	}

	totalVotes := len(allVotes)
	if totalVotes == 0 {
		fmt.Fprintf(r.progress, "No votes found in database (0 votes)\n")
		return nil
	}

	fmt.Fprintf(r.progress, "Starting recount of %d votes (batch size: %d)\n",
		totalVotes, r.config.BatchSize)

	// Initialize progress tracker
	tracker := NewRecountProgress(r.progress, totalVotes, r.config.ReportInterval)
	tracker.Start()

	// Process all votes in batches
	err = r.iterator.ForEach(ctx, func(votes []*core.VoteRecord) error {
		// Process this batch
		if err := r.processor.Process(ctx, votes); err != nil {
			return fmt.Errorf("failed to process batch: %w", err)
		}

		tracker.BatchDone(len(votes))
		return nil
	})

	if err != nil {
		return err
	}

	// Finish progress tracking
	tracker.Finish()

	elapsed := tracker.Elapsed()
	fmt.Fprintf(r.progress, "Recount complete. Processed %d votes in %v (%.1f votes/sec)\n",
		totalVotes, elapsed.Round(time.Second), float64(totalVotes)/elapsed.Seconds())

	return nil
}
