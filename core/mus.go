package core

import (
	"time"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
)

// MUS serializers for the records persisted in the session store.
// Hand-written: the persisted model is three small structs, so generated
// code would be more machinery than payload. Field order is part of the
// on-disk format; append new fields at the end only.

// SourceMUS serializes Source values.
var SourceMUS = sourceMUS{}

type sourceMUS struct{}

func (s sourceMUS) Marshal(v Source, bs []byte) (n int) {
	n = ord.String.Marshal(v.ID, bs)
	n += ord.String.Marshal(v.Title, bs[n:])
	n += ord.Bool.Marshal(v.Local, bs[n:])
	n += ord.String.Marshal(v.AudioPath, bs[n:])
	return
}

func (s sourceMUS) Unmarshal(bs []byte) (v Source, n int, err error) {
	var n1 int
	if v.ID, n, err = ord.String.Unmarshal(bs); err != nil {
		return
	}
	if v.Title, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	if v.Local, n1, err = ord.Bool.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	if v.AudioPath, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	return
}

func (s sourceMUS) Size(v Source) (size int) {
	size = ord.String.Size(v.ID)
	size += ord.String.Size(v.Title)
	size += ord.Bool.Size(v.Local)
	size += ord.String.Size(v.AudioPath)
	return
}

// ChatMessageMUS serializes ChatMessage values. Timestamps are stored as
// Unix microseconds.
var ChatMessageMUS = chatMessageMUS{}

type chatMessageMUS struct{}

func (s chatMessageMUS) Marshal(v ChatMessage, bs []byte) (n int) {
	n = varint.Uint64.Marshal(v.Seq, bs)
	n += varint.Int64.Marshal(int64(v.Speaker), bs[n:])
	n += ord.String.Marshal(v.Contents, bs[n:])
	n += varint.Int64.Marshal(v.Timestamp.UnixMicro(), bs[n:])
	n += varint.Int64.Marshal(v.InsertedAt.UnixMicro(), bs[n:])
	return
}

func (s chatMessageMUS) Unmarshal(bs []byte) (v ChatMessage, n int, err error) {
	var (
		n1 int
		i  int64
	)
	if v.Seq, n, err = varint.Uint64.Unmarshal(bs); err != nil {
		return
	}
	if i, n1, err = varint.Int64.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	v.Speaker = Speaker(i)
	if v.Contents, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	if i, n1, err = varint.Int64.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	v.Timestamp = time.UnixMicro(i).UTC()
	if i, n1, err = varint.Int64.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	v.InsertedAt = time.UnixMicro(i).UTC()
	return
}

func (s chatMessageMUS) Size(v ChatMessage) (size int) {
	size = varint.Uint64.Size(v.Seq)
	size += varint.Int64.Size(int64(v.Speaker))
	size += ord.String.Size(v.Contents)
	size += varint.Int64.Size(v.Timestamp.UnixMicro())
	size += varint.Int64.Size(v.InsertedAt.UnixMicro())
	return
}

// SessionMUS serializes Session values.
var SessionMUS = sessionMUS{}

type sessionMUS struct{}

func (s sessionMUS) Marshal(v Session, bs []byte) (n int) {
	n = ord.String.Marshal(v.ID, bs)
	n += SourceMUS.Marshal(v.Source, bs[n:])
	n += varint.Int64.Marshal(v.UpdatedAt.UnixMicro(), bs[n:])
	return
}

func (s sessionMUS) Unmarshal(bs []byte) (v Session, n int, err error) {
	var (
		n1 int
		i  int64
	)
	if v.ID, n, err = ord.String.Unmarshal(bs); err != nil {
		return
	}
	if v.Source, n1, err = SourceMUS.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	if i, n1, err = varint.Int64.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	v.UpdatedAt = time.UnixMicro(i).UTC()
	return
}

func (s sessionMUS) Size(v Session) (size int) {
	size = ord.String.Size(v.ID)
	size += SourceMUS.Size(v.Source)
	size += varint.Int64.Size(v.UpdatedAt.UnixMicro())
	return
}
