package badger

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/poiesic/cedizen/core"
)

// Key prefixes for different data types
const (
	voteRecordPrefix      = "votrec"
	voteDatePrefix        = "votrecd"
	voteArticlePrefix     = "votreca"
	voteIDSeq             = "votrecseq"
	reactionRecordPrefix  = "rearec"
	reactionTallyPrefix   = "reatal"
	chatMessagePrefix     = "chamsg"
	chatMessageDevPrefix  = "chamsgdev"
	chatMessageIDSeq      = "chamsgseq"
	shelfRecordPrefix     = "shlrec"
)

// makeVoteKey generates a key for a vote record by ID.
func makeVoteKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", voteRecordPrefix, id))
}

// makeVoteDateKey generates a composite key for the vote date index.
// Format: prefix:timestamp:id
func makeVoteDateKey(timestamp time.Time, id core.ID) []byte {
	prefix := []byte(voteDatePrefix + ":")
	buf := make([]byte, len(prefix)+16)
	offset := copy(buf, prefix)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(timestamp.UnixMicro()))
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}

// makePartialVoteDateKey generates a partial key for date range queries.
// Format: prefix:timestamp
func makePartialVoteDateKey(timestamp time.Time) []byte {
	prefix := []byte(voteDatePrefix + ":")
	buf := make([]byte, len(prefix)+8)
	offset := copy(buf, prefix)
	binary.BigEndian.PutUint64(buf[offset:], uint64(timestamp.UnixMicro()))
	return buf
}

// makeVoteArticleKey generates a composite key for the article index.
// Format: prefix:articleID:voteID
func makeVoteArticleKey(articleID string, voteID core.ID) []byte {
	prefix := []byte(fmt.Sprintf("%s:%s:", voteArticlePrefix, articleID))
	buf := make([]byte, len(prefix)+8)
	offset := copy(buf, prefix)
	binary.BigEndian.PutUint64(buf[offset:], uint64(voteID))
	return buf
}

// makePartialVoteArticleKey generates a partial key for article queries.
func makePartialVoteArticleKey(articleID string) []byte {
	return []byte(fmt.Sprintf("%s:%s:", voteArticlePrefix, articleID))
}

// makeReactionKey generates a composite key for a reaction.
// Format: prefix:voteID:reactionID, so reactions cluster per vote.
func makeReactionKey(voteID, reactionID core.ID) []byte {
	prefix := []byte(reactionRecordPrefix + ":")
	buf := make([]byte, len(prefix)+16)
	offset := copy(buf, prefix)
	binary.BigEndian.PutUint64(buf[offset:], uint64(voteID))
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], uint64(reactionID))
	return buf
}

// makePartialReactionKey generates a partial key for per-vote reaction scans.
func makePartialReactionKey(voteID core.ID) []byte {
	prefix := []byte(reactionRecordPrefix + ":")
	buf := make([]byte, len(prefix)+8)
	offset := copy(buf, prefix)
	binary.BigEndian.PutUint64(buf[offset:], uint64(voteID))
	return buf
}

// makeTallyKey generates a key for a vote's cached reaction tally.
func makeTallyKey(voteID core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", reactionTallyPrefix, voteID))
}

// makeChatMessageKey generates a key for a chat message by ID.
func makeChatMessageKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", chatMessagePrefix, id))
}

// makeChatDeviceKey generates a composite key for the device index.
// Format: prefix:deviceID:timestamp:id
func makeChatDeviceKey(deviceID string, timestamp time.Time, id core.ID) []byte {
	prefix := []byte(fmt.Sprintf("%s:%s:", chatMessageDevPrefix, deviceID))
	buf := make([]byte, len(prefix)+16)
	offset := copy(buf, prefix)
	binary.BigEndian.PutUint64(buf[offset:], uint64(timestamp.UnixMicro()))
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}

// makePartialChatDeviceKey generates a partial key for per-device scans.
func makePartialChatDeviceKey(deviceID string) []byte {
	return []byte(fmt.Sprintf("%s:%s:", chatMessageDevPrefix, deviceID))
}

// makeShelfKey generates a key for a device's shelf.
func makeShelfKey(deviceID string) []byte {
	return []byte(fmt.Sprintf("%s:%s", shelfRecordPrefix, deviceID))
}
