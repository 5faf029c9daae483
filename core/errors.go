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

import "errors"

// Domain validation errors
var (
	// ErrInvalidArticle indicates an Article failed validation.
	ErrInvalidArticle = errors.New("invalid article")

	// ErrInvalidVote indicates a VoteRecord failed validation.
	ErrInvalidVote = errors.New("invalid vote")

	// ErrInvalidReaction indicates a Reaction failed validation.
	ErrInvalidReaction = errors.New("invalid reaction")

	// ErrInvalidChatMessage indicates a ChatMessage failed validation.
	ErrInvalidChatMessage = errors.New("invalid chat message")

	// ErrInvalidTimestamp indicates a timestamp is in the future.
	ErrInvalidTimestamp = errors.New("timestamp cannot be in the future")

	// ErrEmptyArticleID indicates the article ID field is empty.
	ErrEmptyArticleID = errors.New("article id cannot be empty")

	// ErrEmptyContent indicates a required text field is empty.
	ErrEmptyContent = errors.New("content cannot be empty")

	// ErrInvalidVoteType indicates an invalid VoteType value.
	ErrInvalidVoteType = errors.New("invalid vote type")

	// ErrInvalidReactionType indicates an invalid ReactionType value.
	ErrInvalidReactionType = errors.New("invalid reaction type")

	// ErrEmptyDeviceID indicates the DeviceId field is empty.
	ErrEmptyDeviceID = errors.New("device id cannot be empty")

	// ErrInvalidSpeaker indicates an invalid Speaker value.
	ErrInvalidSpeaker = errors.New("invalid speaker")
)
