package core

import (
	"errors"
	"testing"
	"time"
)

func TestValidateSource(t *testing.T) {
	tests := []struct {
		name    string
		source  *Source
		wantErr error
	}{
		{
			name:    "valid remote source",
			source:  &Source{ID: "abc123", Title: "Demo"},
			wantErr: nil,
		},
		{
			name: "valid local source",
			source: &Source{
				ID:        "d41d8cd98f00b204",
				Title:     "talk.mp3",
				Local:     true,
				AudioPath: "/tmp/uploads/talk.mp3",
			},
			wantErr: nil,
		},
		{
			name:    "nil source",
			source:  nil,
			wantErr: ErrInvalidSource,
		},
		{
			name:    "missing id",
			source:  &Source{Title: "Demo"},
			wantErr: ErrMissingSourceID,
		},
		{
			name:    "local source without audio path",
			source:  &Source{ID: "abc123", Title: "talk.mp3", Local: true},
			wantErr: ErrInvalidSource,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSource(tt.source)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateSource() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateSource() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateContentRecord(t *testing.T) {
	tests := []struct {
		name    string
		record  *ContentRecord
		wantErr error
	}{
		{
			name: "valid chunk",
			record: &ContentRecord{
				Content:  "Sentence one. Sentence two.",
				SourceID: "abc123",
				Title:    "Demo",
				Type:     ContentTypeChunk,
			},
			wantErr: nil,
		},
		{
			name: "valid summary without record id",
			record: &ContentRecord{
				Content:  "Summary.",
				SourceID: "abc123",
				Type:     ContentTypeSummary,
			},
			wantErr: nil,
		},
		{
			name:    "nil record",
			record:  nil,
			wantErr: ErrInvalidContentRecord,
		},
		{
			name: "empty content",
			record: &ContentRecord{
				SourceID: "abc123",
				Type:     ContentTypeChunk,
			},
			wantErr: ErrEmptyContent,
		},
		{
			name: "missing source id",
			record: &ContentRecord{
				Content: "text",
				Type:    ContentTypeChunk,
			},
			wantErr: ErrMissingSourceID,
		},
		{
			name: "unknown type",
			record: &ContentRecord{
				Content:  "text",
				SourceID: "abc123",
				Type:     ContentType("note"),
			},
			wantErr: ErrInvalidContentType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateContentRecord(tt.record)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateContentRecord() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateContentRecord() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateSpeaker(t *testing.T) {
	if err := ValidateSpeaker(SpeakerHuman); err != nil {
		t.Errorf("ValidateSpeaker(SpeakerHuman) = %v", err)
	}
	if err := ValidateSpeaker(SpeakerAI); err != nil {
		t.Errorf("ValidateSpeaker(SpeakerAI) = %v", err)
	}
	if err := ValidateSpeaker(Speaker(0)); !errors.Is(err, ErrInvalidSpeaker) {
		t.Errorf("ValidateSpeaker(0) = %v, want ErrInvalidSpeaker", err)
	}
}

func TestIsValidTimestamp(t *testing.T) {
	if !IsValidTimestamp(time.Now().Add(-time.Hour)) {
		t.Error("IsValidTimestamp() = false for past timestamp")
	}
	if IsValidTimestamp(time.Now().Add(time.Hour)) {
		t.Error("IsValidTimestamp() = true for future timestamp")
	}
}
