// Copyright 2025 Shradaya
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

import (
	"fmt"
	"time"
)

// ValidateSource validates a resolved Source according to domain rules.
//
// Validation rules:
//   - ID must not be empty
//   - local sources must carry an audio path
//
// NOT validated:
//   - Title (the resolver substitutes a default when extraction fails)
func ValidateSource(src *Source) error {
	if src == nil {
		return fmt.Errorf("%w: source is nil", ErrInvalidSource)
	}

	if src.ID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidSource, ErrMissingSourceID)
	}

	if src.Local && src.AudioPath == "" {
		return fmt.Errorf("%w: local source without audio path", ErrInvalidSource)
	}

	return nil
}

// ValidateContentRecord validates a ContentRecord according to domain rules.
//
// Validation rules:
//   - Content must not be empty
//   - SourceID must not be empty
//   - Type must be chunk or summary
//
// NOT validated:
//   - RecordID (assigned by the store at insert time)
func ValidateContentRecord(record *ContentRecord) error {
	if record == nil {
		return fmt.Errorf("%w: record is nil", ErrInvalidContentRecord)
	}

	if record.Content == "" {
		return fmt.Errorf("%w: %w", ErrInvalidContentRecord, ErrEmptyContent)
	}

	if record.SourceID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidContentRecord, ErrMissingSourceID)
	}

	if err := ValidateContentType(record.Type); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidContentRecord, err)
	}

	return nil
}

// ValidateContentType validates that a ContentType has a known value.
func ValidateContentType(t ContentType) error {
	if t != ContentTypeChunk && t != ContentTypeSummary {
		return fmt.Errorf("%w: value %q", ErrInvalidContentType, string(t))
	}
	return nil
}

// ValidateSpeaker validates that a Speaker has a valid value.
func ValidateSpeaker(speaker Speaker) error {
	if speaker != SpeakerHuman && speaker != SpeakerAI {
		return fmt.Errorf("%w: value %d", ErrInvalidSpeaker, speaker)
	}
	return nil
}

// IsValidTimestamp checks if a timestamp is valid (not in the future).
func IsValidTimestamp(ts time.Time) bool {
	return !ts.After(time.Now())
}
