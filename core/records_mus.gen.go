// Code generated by musgen-go. DO NOT EDIT.

package core

import (
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

var (
	sliceEmoarWC1Δtq5b1Wl6VN8BgΞΞ = ord.NewSliceSer[string](ord.String)
)

var IDMUS = iDMUS{}

type iDMUS struct{}

func (s iDMUS) Marshal(v ID, bs []byte) (n int) {
	return varint.Uint64.Marshal(uint64(v), bs)
}

func (s iDMUS) Unmarshal(bs []byte) (v ID, n int, err error) {
	tmp, n, err := varint.Uint64.Unmarshal(bs)
	if err != nil {
		return
	}
	v = ID(tmp)
	return
}

func (s iDMUS) Size(v ID) (size int) {
	return varint.Uint64.Size(uint64(v))
}

func (s iDMUS) Skip(bs []byte) (n int, err error) {
	return varint.Uint64.Skip(bs)
}

var VoteTypeMUS = voteTypeMUS{}

type voteTypeMUS struct{}

func (s voteTypeMUS) Marshal(v VoteType, bs []byte) (n int) {
	return varint.Int.Marshal(int(v), bs)
}

func (s voteTypeMUS) Unmarshal(bs []byte) (v VoteType, n int, err error) {
	tmp, n, err := varint.Int.Unmarshal(bs)
	if err != nil {
		return
	}
	v = VoteType(tmp)
	return
}

func (s voteTypeMUS) Size(v VoteType) (size int) {
	return varint.Int.Size(int(v))
}

func (s voteTypeMUS) Skip(bs []byte) (n int, err error) {
	return varint.Int.Skip(bs)
}

var ReactionTypeMUS = reactionTypeMUS{}

type reactionTypeMUS struct{}

func (s reactionTypeMUS) Marshal(v ReactionType, bs []byte) (n int) {
	return varint.Int.Marshal(int(v), bs)
}

func (s reactionTypeMUS) Unmarshal(bs []byte) (v ReactionType, n int, err error) {
	tmp, n, err := varint.Int.Unmarshal(bs)
	if err != nil {
		return
	}
	v = ReactionType(tmp)
	return
}

func (s reactionTypeMUS) Size(v ReactionType) (size int) {
	return varint.Int.Size(int(v))
}

func (s reactionTypeMUS) Skip(bs []byte) (n int, err error) {
	return varint.Int.Skip(bs)
}

var SpeakerMUS = speakerMUS{}

type speakerMUS struct{}

func (s speakerMUS) Marshal(v Speaker, bs []byte) (n int) {
	return varint.Int.Marshal(int(v), bs)
}

func (s speakerMUS) Unmarshal(bs []byte) (v Speaker, n int, err error) {
	tmp, n, err := varint.Int.Unmarshal(bs)
	if err != nil {
		return
	}
	v = Speaker(tmp)
	return
}

func (s speakerMUS) Size(v Speaker) (size int) {
	return varint.Int.Size(int(v))
}

func (s speakerMUS) Skip(bs []byte) (n int, err error) {
	return varint.Int.Skip(bs)
}

var VoteRecordMUS = voteRecordMUS{}

type voteRecordMUS struct{}

func (s voteRecordMUS) Marshal(v VoteRecord, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += ord.String.Marshal(v.ArticleId, bs[n:])
	n += VoteTypeMUS.Marshal(v.Type, bs[n:])
	n += ord.String.Marshal(v.Comment, bs[n:])
	n += ord.String.Marshal(v.UserAlias, bs[n:])
	n += raw.TimeUnixMicro.Marshal(v.Timestamp, bs[n:])
	n += raw.TimeUnixMicro.Marshal(v.InsertedAt, bs[n:])
	return n + raw.TimeUnixMicro.Marshal(v.UpdatedAt, bs[n:])
}

func (s voteRecordMUS) Unmarshal(bs []byte) (v VoteRecord, n int, err error) {
	v.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.ArticleId, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Type, n1, err = VoteTypeMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Comment, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.UserAlias, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Timestamp, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.InsertedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.UpdatedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	return
}

func (s voteRecordMUS) Size(v VoteRecord) (size int) {
	size = IDMUS.Size(v.Id)
	size += ord.String.Size(v.ArticleId)
	size += VoteTypeMUS.Size(v.Type)
	size += ord.String.Size(v.Comment)
	size += ord.String.Size(v.UserAlias)
	size += raw.TimeUnixMicro.Size(v.Timestamp)
	size += raw.TimeUnixMicro.Size(v.InsertedAt)
	return size + raw.TimeUnixMicro.Size(v.UpdatedAt)
}

func (s voteRecordMUS) Skip(bs []byte) (n int, err error) {
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = VoteTypeMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	return
}

var ReactionMUS = reactionMUS{}

type reactionMUS struct{}

func (s reactionMUS) Marshal(v Reaction, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += IDMUS.Marshal(v.VoteId, bs[n:])
	n += ord.String.Marshal(v.DeviceId, bs[n:])
	n += ReactionTypeMUS.Marshal(v.Type, bs[n:])
	n += raw.TimeUnixMicro.Marshal(v.InsertedAt, bs[n:])
	return n + raw.TimeUnixMicro.Marshal(v.UpdatedAt, bs[n:])
}

func (s reactionMUS) Unmarshal(bs []byte) (v Reaction, n int, err error) {
	v.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.VoteId, n1, err = IDMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.DeviceId, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Type, n1, err = ReactionTypeMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.InsertedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.UpdatedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	return
}

func (s reactionMUS) Size(v Reaction) (size int) {
	size = IDMUS.Size(v.Id)
	size += IDMUS.Size(v.VoteId)
	size += ord.String.Size(v.DeviceId)
	size += ReactionTypeMUS.Size(v.Type)
	size += raw.TimeUnixMicro.Size(v.InsertedAt)
	return size + raw.TimeUnixMicro.Size(v.UpdatedAt)
}

func (s reactionMUS) Skip(bs []byte) (n int, err error) {
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = IDMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ReactionTypeMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	return
}

var ReactionTallyMUS = reactionTallyMUS{}

type reactionTallyMUS struct{}

func (s reactionTallyMUS) Marshal(v ReactionTally, bs []byte) (n int) {
	n = IDMUS.Marshal(v.VoteId, bs)
	n += varint.Int.Marshal(v.Like, bs[n:])
	n += varint.Int.Marshal(v.Dislike, bs[n:])
	n += varint.Int.Marshal(v.Maybe, bs[n:])
	return n + raw.TimeUnixMicro.Marshal(v.UpdatedAt, bs[n:])
}

func (s reactionTallyMUS) Unmarshal(bs []byte) (v ReactionTally, n int, err error) {
	v.VoteId, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Like, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Dislike, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Maybe, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.UpdatedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	return
}

func (s reactionTallyMUS) Size(v ReactionTally) (size int) {
	size = IDMUS.Size(v.VoteId)
	size += varint.Int.Size(v.Like)
	size += varint.Int.Size(v.Dislike)
	size += varint.Int.Size(v.Maybe)
	return size + raw.TimeUnixMicro.Size(v.UpdatedAt)
}

func (s reactionTallyMUS) Skip(bs []byte) (n int, err error) {
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = varint.Int.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Int.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Int.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	return
}

var ChatMessageMUS = chatMessageMUS{}

type chatMessageMUS struct{}

func (s chatMessageMUS) Marshal(v ChatMessage, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += ord.String.Marshal(v.DeviceId, bs[n:])
	n += SpeakerMUS.Marshal(v.Speaker, bs[n:])
	n += ord.String.Marshal(v.Contents, bs[n:])
	n += raw.TimeUnixMicro.Marshal(v.Timestamp, bs[n:])
	n += raw.TimeUnixMicro.Marshal(v.InsertedAt, bs[n:])
	return n + raw.TimeUnixMicro.Marshal(v.UpdatedAt, bs[n:])
}

func (s chatMessageMUS) Unmarshal(bs []byte) (v ChatMessage, n int, err error) {
	v.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.DeviceId, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Speaker, n1, err = SpeakerMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Contents, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Timestamp, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.InsertedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.UpdatedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	return
}

func (s chatMessageMUS) Size(v ChatMessage) (size int) {
	size = IDMUS.Size(v.Id)
	size += ord.String.Size(v.DeviceId)
	size += SpeakerMUS.Size(v.Speaker)
	size += ord.String.Size(v.Contents)
	size += raw.TimeUnixMicro.Size(v.Timestamp)
	size += raw.TimeUnixMicro.Size(v.InsertedAt)
	return size + raw.TimeUnixMicro.Size(v.UpdatedAt)
}

func (s chatMessageMUS) Skip(bs []byte) (n int, err error) {
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = SpeakerMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	return
}

var ShelfMUS = shelfMUS{}

type shelfMUS struct{}

func (s shelfMUS) Marshal(v Shelf, bs []byte) (n int) {
	n = ord.String.Marshal(v.DeviceId, bs)
	n += sliceEmoarWC1Δtq5b1Wl6VN8BgΞΞ.Marshal(v.Saved, bs[n:])
	n += sliceEmoarWC1Δtq5b1Wl6VN8BgΞΞ.Marshal(v.History, bs[n:])
	return n + raw.TimeUnixMicro.Marshal(v.UpdatedAt, bs[n:])
}

func (s shelfMUS) Unmarshal(bs []byte) (v Shelf, n int, err error) {
	v.DeviceId, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Saved, n1, err = sliceEmoarWC1Δtq5b1Wl6VN8BgΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.History, n1, err = sliceEmoarWC1Δtq5b1Wl6VN8BgΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.UpdatedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	return
}

func (s shelfMUS) Size(v Shelf) (size int) {
	size = ord.String.Size(v.DeviceId)
	size += sliceEmoarWC1Δtq5b1Wl6VN8BgΞΞ.Size(v.Saved)
	size += sliceEmoarWC1Δtq5b1Wl6VN8BgΞΞ.Size(v.History)
	return size + raw.TimeUnixMicro.Size(v.UpdatedAt)
}

func (s shelfMUS) Skip(bs []byte) (n int, err error) {
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = sliceEmoarWC1Δtq5b1Wl6VN8BgΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = sliceEmoarWC1Δtq5b1Wl6VN8BgΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	return
}
