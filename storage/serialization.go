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

package storage

import (
	"github.com/poiesic/cedizen/core"
)

// MarshalID serializes an ID to bytes.
func MarshalID(id core.ID) []byte {
	buf := make([]byte, core.IDMUS.Size(id))
	core.IDMUS.Marshal(id, buf)
	return buf
}

// UnmarshalID deserializes an ID from bytes.
func UnmarshalID(data []byte) (core.ID, error) {
	var id core.ID
	id, _, err := core.IDMUS.Unmarshal(data)
	return id, err
}

// MarshalVoteRecord serializes a VoteRecord to bytes.
func MarshalVoteRecord(vote *core.VoteRecord) []byte {
	buf := make([]byte, core.VoteRecordMUS.Size(*vote))
	core.VoteRecordMUS.Marshal(*vote, buf)
	return buf
}

// UnmarshalVoteRecord deserializes a VoteRecord from bytes.
func UnmarshalVoteRecord(data []byte) (*core.VoteRecord, error) {
	vote, _, err := core.VoteRecordMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &vote, nil
}

// MarshalReaction serializes a Reaction to bytes.
func MarshalReaction(reaction *core.Reaction) []byte {
	buf := make([]byte, core.ReactionMUS.Size(*reaction))
	core.ReactionMUS.Marshal(*reaction, buf)
	return buf
}

// UnmarshalReaction deserializes a Reaction from bytes.
func UnmarshalReaction(data []byte) (*core.Reaction, error) {
	reaction, _, err := core.ReactionMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &reaction, nil
}

// MarshalReactionTally serializes a ReactionTally to bytes.
func MarshalReactionTally(tally *core.ReactionTally) []byte {
	buf := make([]byte, core.ReactionTallyMUS.Size(*tally))
	core.ReactionTallyMUS.Marshal(*tally, buf)
	return buf
}

// UnmarshalReactionTally deserializes a ReactionTally from bytes.
func UnmarshalReactionTally(data []byte) (*core.ReactionTally, error) {
	tally, _, err := core.ReactionTallyMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &tally, nil
}

// MarshalChatMessage serializes a ChatMessage to bytes.
func MarshalChatMessage(message *core.ChatMessage) []byte {
	buf := make([]byte, core.ChatMessageMUS.Size(*message))
	core.ChatMessageMUS.Marshal(*message, buf)
	return buf
}

// UnmarshalChatMessage deserializes a ChatMessage from bytes.
func UnmarshalChatMessage(data []byte) (*core.ChatMessage, error) {
	message, _, err := core.ChatMessageMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &message, nil
}

// MarshalShelf serializes a Shelf to bytes.
func MarshalShelf(shelf *core.Shelf) []byte {
	buf := make([]byte, core.ShelfMUS.Size(*shelf))
	core.ShelfMUS.Marshal(*shelf, buf)
	return buf
}

// UnmarshalShelf deserializes a Shelf from bytes.
func UnmarshalShelf(data []byte) (*core.Shelf, error) {
	shelf, _, err := core.ShelfMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &shelf, nil
}
