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

import "errors"

// Domain errors
var (
	// ErrInvalidSource indicates a source reference that cannot be resolved:
	// an unsupported host, or a URL with no extractable video identifier.
	ErrInvalidSource = errors.New("invalid source reference")

	// ErrExtractionFailed indicates that every transcript acquisition
	// strategy was exhausted for a source.
	ErrExtractionFailed = errors.New("transcript extraction failed")

	// ErrEmptyInput indicates that text processing was invoked on empty or
	// whitespace-only input.
	ErrEmptyInput = errors.New("empty input text")

	// ErrInvalidContentRecord indicates a ContentRecord failed validation.
	ErrInvalidContentRecord = errors.New("invalid content record")

	// ErrInvalidContentType indicates an unknown ContentType value.
	ErrInvalidContentType = errors.New("invalid content type")

	// ErrEmptyContent indicates the Contents field is empty.
	ErrEmptyContent = errors.New("content cannot be empty")

	// ErrMissingSourceID indicates a record or query without a source ID.
	ErrMissingSourceID = errors.New("source id required")

	// ErrInvalidSpeaker indicates an invalid Speaker value.
	ErrInvalidSpeaker = errors.New("invalid speaker")

	// ErrInvalidTimestamp indicates a timestamp in the future.
	ErrInvalidTimestamp = errors.New("timestamp cannot be in the future")
)
