package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shradaya/chat-with-youtube-video/core"
)

func TestSessionRoundTrip(t *testing.T) {
	session := &core.Session{
		ID: "session-1",
		Source: core.Source{
			ID:    "abc123",
			Title: "Demo Video",
		},
		UpdatedAt: time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC),
	}

	data := MarshalSession(session)
	got, err := UnmarshalSession(data)
	require.NoError(t, err)
	assert.Equal(t, session, got)
}

func TestSessionRoundTrip_LocalSource(t *testing.T) {
	session := &core.Session{
		ID: "session-2",
		Source: core.Source{
			ID:        "deadbeef01234567",
			Title:     "upload.mp3",
			Local:     true,
			AudioPath: "/uploads/upload.mp3",
		},
		UpdatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	data := MarshalSession(session)
	got, err := UnmarshalSession(data)
	require.NoError(t, err)
	assert.Equal(t, session, got)
}

func TestChatMessageRoundTrip(t *testing.T) {
	message := &core.ChatMessage{
		Seq:        42,
		Speaker:    core.SpeakerHuman,
		Contents:   "what is this video about?",
		Timestamp:  time.Date(2025, 6, 1, 12, 31, 0, 0, time.UTC),
		InsertedAt: time.Date(2025, 6, 1, 12, 31, 1, 0, time.UTC),
	}

	data := MarshalChatMessage(message)
	got, err := UnmarshalChatMessage(data)
	require.NoError(t, err)
	assert.Equal(t, message, got)
}

func TestUnmarshalSession_Truncated(t *testing.T) {
	session := &core.Session{ID: "session-1", UpdatedAt: time.Now().UTC()}
	data := MarshalSession(session)

	_, err := UnmarshalSession(data[:len(data)/2])
	assert.Error(t, err)
}

func TestUnmarshalChatMessage_Truncated(t *testing.T) {
	message := &core.ChatMessage{
		Seq:      1,
		Speaker:  core.SpeakerAI,
		Contents: "a reasonably long answer body",
	}
	data := MarshalChatMessage(message)

	_, err := UnmarshalChatMessage(data[:3])
	assert.Error(t, err)
}
