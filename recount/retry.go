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
	"log/slog"
	"time"

	"github.com/poiesic/cedizen/core"
)

// rebuildAttempt is a single try at rebuilding one vote's cached tally.
type rebuildAttempt func(ctx context.Context, voteID core.ID) error

// retryRebuild runs attempt for voteID up to maxAttempts times. The delay
// between tries starts at baseDelay and doubles after each failure.
// Returns the last attempt's error when every try fails, or the context
// error if the context ends first.
func retryRebuild(ctx context.Context, voteID core.ID, maxAttempts int, baseDelay time.Duration, attempt rebuildAttempt) error {
	if maxAttempts <= 0 {
		return ErrInvalidMaxAttempts
	}

	delay := baseDelay
	for try := 1; ; try++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := attempt(ctx, voteID)
		if err == nil {
			if try > 1 {
				slog.Debug("tally rebuild succeeded after retry", "voteID", voteID, "attempt", try)
			}
			return nil
		}
		if try == maxAttempts {
			return err
		}

		slog.Debug("tally rebuild failed, will retry",
			"voteID", voteID, "attempt", try, "maxAttempts", maxAttempts, "error", err)

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
		delay *= 2
	}
}
