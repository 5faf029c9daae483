package core

//go:generate go run ../cmd/musgen

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for stored domain entities.
// It is generated using content-based hashing or database sequences.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Article is a constitutional article as shipped with the application.
// Articles are read-only reference data: the collection is loaded once and
// never mutated. The ID comes from the data file and is unique across the
// collection.
type Article struct {
	ID         string   `json:"id"`
	Article    string   `json:"article"` // human-facing label, not necessarily numeric
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	Simplified string   `json:"simplified,omitempty"` // plain-language paraphrase
	Tags       []string `json:"tags"`
}

// JudicialCase is a summarized court case interpreting the constitution.
type JudicialCase struct {
	ID                string   `json:"id"`
	Title             string   `json:"title"`
	Year              string   `json:"year"`
	Court             string   `json:"court"`
	Parties           string   `json:"parties"`
	Summary           string   `json:"summary"`
	LawInterpretation string   `json:"law_interpretation"`
	Outcome           string   `json:"outcome"`
	Justification     string   `json:"justification"`
	DefenseStrategy   string   `json:"defense_strategy,omitempty"`
	CitizenTakeaway   string   `json:"citizen_takeaway,omitempty"`
	NuanceNote        string   `json:"nuance_note,omitempty"`
	Tags              []string `json:"tags"`
	Status            string   `json:"status"` // "Closed" or "Ongoing"
	Trending          bool     `json:"trending,omitempty"`
}

// VoteType identifies the position taken in a public vote on an article.
type VoteType int

const (
	// VoteTypeStay votes to keep the article as it stands.
	VoteTypeStay VoteType = iota + 1
	// VoteTypeGo votes to amend or remove the article.
	VoteTypeGo
)

// VoteRecord is a single entry in the public voting feed.
type VoteRecord struct {
	Id         ID
	ArticleId  string // ID of the article voted on
	Type       VoteType
	Comment    string
	UserAlias  string    // e.g. "Citizen #8291"
	Timestamp  time.Time // When the vote was cast
	InsertedAt time.Time // When the record was inserted into the database
	UpdatedAt  time.Time // When the record was last updated
}

// ReactionType identifies a reaction to a vote in the public feed.
type ReactionType int

const (
	// ReactionTypeLike agrees with the vote.
	ReactionTypeLike ReactionType = iota + 1
	// ReactionTypeDislike disagrees with the vote.
	ReactionTypeDislike
	// ReactionTypeMaybe is undecided.
	ReactionTypeMaybe
)

// Reaction is one device's reaction to a vote. A device holds at most one
// reaction per vote; the ID is derived from (VoteId, DeviceId) so toggling
// is an upsert.
type Reaction struct {
	Id         ID
	VoteId     ID
	DeviceId   string
	Type       ReactionType
	InsertedAt time.Time
	UpdatedAt  time.Time
}

// ReactionID generates the content-based ID for a (vote, device) reaction.
func ReactionID(voteID ID, deviceID string) ID {
	return IDFromContent(fmt.Sprintf("(%d,%s)", voteID, deviceID))
}

// ReactionTally holds cached per-vote reaction counts. It is maintained
// incrementally on each toggle and can be rebuilt from raw reactions by the
// recount package.
type ReactionTally struct {
	VoteId    ID
	Like      int
	Dislike   int
	Maybe     int
	UpdatedAt time.Time
}

// Count returns the tally for a single reaction type.
func (t *ReactionTally) Count(reaction ReactionType) int {
	switch reaction {
	case ReactionTypeLike:
		return t.Like
	case ReactionTypeDislike:
		return t.Dislike
	case ReactionTypeMaybe:
		return t.Maybe
	}
	return 0
}

// Add adjusts the tally for a reaction type by delta, clamping at zero.
func (t *ReactionTally) Add(reaction ReactionType, delta int) {
	switch reaction {
	case ReactionTypeLike:
		t.Like = max(0, t.Like+delta)
	case ReactionTypeDislike:
		t.Dislike = max(0, t.Dislike+delta)
	case ReactionTypeMaybe:
		t.Maybe = max(0, t.Maybe+delta)
	}
}

// Shelf holds one device's saved articles and read history. Saved keeps
// insertion order; History is most-recent-first and bounded.
type Shelf struct {
	DeviceId  string
	Saved     []string // article IDs, oldest first
	History   []string // article IDs, newest first
	UpdatedAt time.Time
}

// HistoryLimit bounds how many recently read articles a shelf remembers.
const HistoryLimit = 5

// VoteStats aggregates the stay/go votes for a single article.
type VoteStats struct {
	Stay        int
	Go          int
	Total       int
	StayPercent int
	GoPercent   int
}

// Speaker identifies the source of an assistant chat message.
type Speaker int

const (
	// SpeakerUser represents the human asking questions.
	SpeakerUser Speaker = iota + 1
	// SpeakerAssistant represents the pocket-lawyer assistant.
	SpeakerAssistant
)

// ChatMessage is a single turn in an assistant conversation, keyed to the
// anonymous device that produced it.
type ChatMessage struct {
	Id         ID
	DeviceId   string
	Speaker    Speaker
	Contents   string
	Timestamp  time.Time
	InsertedAt time.Time
	UpdatedAt  time.Time
}
