package core

import (
	"testing"
	"time"
)

func TestIDFromContent(t *testing.T) {
	tests := []struct {
		name    string
		content []byte
	}{
		{
			name:    "same content produces same ID",
			content: []byte("test content"),
		},
		{
			name:    "empty input",
			content: nil,
		},
		{
			name:    "binary content",
			content: []byte{0x00, 0xff, 0x10, 0x20, 0x30},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id1 := IDFromContent(tt.content)
			id2 := IDFromContent(tt.content)

			if id1 != id2 {
				t.Errorf("IDFromContent() produced different IDs for same content: %s vs %s", id1, id2)
			}
			if len(id1) != 16 {
				t.Errorf("IDFromContent() = %q, want 16 hex chars", id1)
			}
		})
	}
}

func TestIDFromContent_Different(t *testing.T) {
	id1 := IDFromContent([]byte("content1"))
	id2 := IDFromContent([]byte("content2"))

	if id1 == id2 {
		t.Errorf("IDFromContent() produced same ID for different content")
	}
}

func TestTranscriptOrigin_String(t *testing.T) {
	tests := []struct {
		origin TranscriptOrigin
		want   string
	}{
		{OriginNone, "none"},
		{OriginAPI, "api"},
		{OriginTranscribed, "transcribed"},
		{TranscriptOrigin(99), "none"},
	}

	for _, tt := range tests {
		if got := tt.origin.String(); got != tt.want {
			t.Errorf("TranscriptOrigin(%d).String() = %q, want %q", tt.origin, got, tt.want)
		}
	}
}

func TestSession_HasSource(t *testing.T) {
	empty := Session{ID: "conv-1", UpdatedAt: time.Now()}
	if empty.HasSource() {
		t.Error("HasSource() = true for session without source")
	}

	resolved := Session{
		ID:     "conv-1",
		Source: Source{ID: "abc123", Title: "Demo"},
	}
	if !resolved.HasSource() {
		t.Error("HasSource() = false for session with source")
	}
}
