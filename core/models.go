package core

import (
	"encoding/hex"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// IDFromContent generates a deterministic source ID from raw content using
// BLAKE2b hashing. Identical uploads produce identical IDs, so re-ingesting
// the same file resolves to the same source.
func IDFromContent(data []byte) string {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// Source is the canonical identity of one ingestible media item.
// It is immutable once resolved.
type Source struct {
	// ID is the video identifier for remote sources, or a content-derived
	// identifier for uploaded files.
	ID    string
	Title string
	// Local marks sources backed by an on-disk audio file rather than a
	// remote video.
	Local bool
	// AudioPath is the location of the media file for local sources.
	// Empty for remote sources.
	AudioPath string
}

// TranscriptOrigin identifies how transcript text was obtained.
type TranscriptOrigin int

const (
	// OriginNone means every acquisition strategy failed.
	OriginNone TranscriptOrigin = iota
	// OriginAPI means the text came from the remote captioning service.
	OriginAPI
	// OriginTranscribed means the text came from local speech-to-text.
	OriginTranscribed
)

func (o TranscriptOrigin) String() string {
	switch o {
	case OriginAPI:
		return "api"
	case OriginTranscribed:
		return "transcribed"
	default:
		return "none"
	}
}

// Transcript is the result of the acquisition chain. OriginNone is a
// terminal failure for the source, not an empty success.
type Transcript struct {
	Text   string
	Origin TranscriptOrigin
}

// Failed reports whether the acquisition chain was exhausted without
// producing text.
func (t Transcript) Failed() bool {
	return t.Origin == OriginNone
}

// ContentType classifies records in the content store. Chunks and summaries
// share one index, so every query must filter on type.
type ContentType string

const (
	// ContentTypeChunk is a bounded retrieval unit of transcript text.
	ContentTypeChunk ContentType = "chunk"
	// ContentTypeSummary is the single consolidated summary of a source.
	ContentTypeSummary ContentType = "summary"
)

// ContentRecord is one persisted entry of the content store.
// Records are created only at the end of a successful ingestion and are
// never mutated or deleted afterwards.
type ContentRecord struct {
	// RecordID is a freshly generated UUID, unique per record.
	RecordID string
	Content  string
	SourceID string
	Title    string
	Type     ContentType
}

// Speaker identifies the author of a chat message.
type Speaker int

const (
	// SpeakerHuman represents the human user.
	SpeakerHuman Speaker = iota + 1
	// SpeakerAI represents the assistant.
	SpeakerAI
)

// ChatMessage is a single message in a conversation session.
type ChatMessage struct {
	Seq        uint64
	Speaker    Speaker
	Contents   string
	Timestamp  time.Time // When the message was sent
	InsertedAt time.Time // When the message was persisted
}

// Session holds per-conversation state: the source currently under
// discussion. History is stored separately, keyed by the session ID.
type Session struct {
	ID        string
	Source    Source
	UpdatedAt time.Time
}

// HasSource reports whether a source has been resolved for this session.
func (s *Session) HasSource() bool {
	return s.Source.ID != ""
}
