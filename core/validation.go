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

package core

import (
	"fmt"
	"time"
)

// ValidateArticle validates an Article according to domain rules.
//
// Validation rules:
//   - ID, Article, Title and Content must not be empty
//
// NOT validated:
//   - Simplified (optional paraphrase)
//   - Tags (may be empty)
func ValidateArticle(article *Article) error {
	if article == nil {
		return fmt.Errorf("%w: article is nil", ErrInvalidArticle)
	}

	if article.ID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidArticle, ErrEmptyArticleID)
	}

	if article.Article == "" || article.Title == "" || article.Content == "" {
		return fmt.Errorf("%w: %w", ErrInvalidArticle, ErrEmptyContent)
	}

	return nil
}

// ValidateVoteRecord validates a VoteRecord according to domain rules.
//
// Validation rules:
//   - ArticleId must not be empty
//   - Type must be valid (stay or go)
//   - Timestamp must not be in the future
//
// NOT validated (populated by the feed):
//   - UserAlias (assigned on cast)
//   - ID (0 is valid from database sequences)
//   - Comment (may be empty)
func ValidateVoteRecord(vote *VoteRecord) error {
	if vote == nil {
		return fmt.Errorf("%w: vote is nil", ErrInvalidVote)
	}

	if vote.ArticleId == "" {
		return fmt.Errorf("%w: %w", ErrInvalidVote, ErrEmptyArticleID)
	}

	if err := ValidateVoteType(vote.Type); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidVote, err)
	}

	if !IsValidTimestamp(vote.Timestamp) {
		return fmt.Errorf("%w: %w", ErrInvalidVote, ErrInvalidTimestamp)
	}

	return nil
}

// ValidateReaction validates a Reaction according to domain rules.
//
// Validation rules:
//   - VoteId must be set
//   - DeviceId must not be empty
//   - Type must be valid (like, dislike or maybe)
func ValidateReaction(reaction *Reaction) error {
	if reaction == nil {
		return fmt.Errorf("%w: reaction is nil", ErrInvalidReaction)
	}

	if reaction.VoteId == 0 {
		return fmt.Errorf("%w: vote id is required", ErrInvalidReaction)
	}

	if reaction.DeviceId == "" {
		return fmt.Errorf("%w: %w", ErrInvalidReaction, ErrEmptyDeviceID)
	}

	if err := ValidateReactionType(reaction.Type); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidReaction, err)
	}

	return nil
}

// ValidateChatMessage validates a ChatMessage according to domain rules.
//
// Validation rules:
//   - Contents must not be empty
//   - DeviceId must not be empty
//   - Speaker must be valid (user or assistant)
//   - Timestamp must not be in the future
func ValidateChatMessage(message *ChatMessage) error {
	if message == nil {
		return fmt.Errorf("%w: message is nil", ErrInvalidChatMessage)
	}

	if message.Contents == "" {
		return fmt.Errorf("%w: %w", ErrInvalidChatMessage, ErrEmptyContent)
	}

	if message.DeviceId == "" {
		return fmt.Errorf("%w: %w", ErrInvalidChatMessage, ErrEmptyDeviceID)
	}

	if err := ValidateSpeaker(message.Speaker); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidChatMessage, err)
	}

	if !IsValidTimestamp(message.Timestamp) {
		return fmt.Errorf("%w: %w", ErrInvalidChatMessage, ErrInvalidTimestamp)
	}

	return nil
}

// ValidateVoteType validates that a VoteType has a valid value.
func ValidateVoteType(vote VoteType) error {
	if vote != VoteTypeStay && vote != VoteTypeGo {
		return fmt.Errorf("%w: value %d", ErrInvalidVoteType, vote)
	}
	return nil
}

// ValidateReactionType validates that a ReactionType has a valid value.
func ValidateReactionType(reaction ReactionType) error {
	if reaction != ReactionTypeLike && reaction != ReactionTypeDislike && reaction != ReactionTypeMaybe {
		return fmt.Errorf("%w: value %d", ErrInvalidReactionType, reaction)
	}
	return nil
}

// ValidateSpeaker validates that a Speaker has a valid value.
func ValidateSpeaker(speaker Speaker) error {
	if speaker != SpeakerUser && speaker != SpeakerAssistant {
		return fmt.Errorf("%w: value %d", ErrInvalidSpeaker, speaker)
	}
	return nil
}

// IsValidTimestamp checks if a timestamp is valid (not in the future).
func IsValidTimestamp(ts time.Time) bool {
	return !ts.After(time.Now())
}
