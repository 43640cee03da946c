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


// Package whisper transcribes local audio files by shelling out to the
// whisper CLI with a fixed base-tier model.
package whisper

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/Shradaya/chat-with-youtube-video/transcript"
)

// DefaultModel is the base-tier model. Larger tiers improve accuracy at a
// steep latency cost, which the fallback chain cannot afford.
const DefaultModel = "base"

// Transcriber runs local speech-to-text through the whisper CLI.
type Transcriber struct {
	binary string
	model  string
	logger *slog.Logger
}

// Option configures a Transcriber.
type Option func(*Transcriber)

// WithBinary sets the whisper binary path. Defaults to "whisper" on PATH.
func WithBinary(binary string) Option {
	return func(t *Transcriber) {
		t.binary = binary
	}
}

// WithModel sets the model tier. Defaults to DefaultModel.
func WithModel(model string) Option {
	return func(t *Transcriber) {
		t.model = model
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Transcriber) {
		t.logger = logger
	}
}

// NewTranscriber creates a transcriber with the given options.
func NewTranscriber(opts ...Option) *Transcriber {
	t := &Transcriber{
		binary: "whisper",
		model:  DefaultModel,
		logger: slog.Default().With("component", "whisper"),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Transcribe runs the model over the audio file and returns the recognized
// text. The CLI writes a sibling .txt file next to the audio; that file is
// read back and removed.
func (t *Transcriber) Transcribe(ctx context.Context, audioPath string) (string, error) {
	if audioPath == "" {
		return "", fmt.Errorf("audio path cannot be empty")
	}
	if _, err := os.Stat(audioPath); err != nil {
		return "", fmt.Errorf("audio file not accessible: %w", err)
	}

	outputDir := filepath.Dir(audioPath)
	cmd := exec.CommandContext(ctx, t.binary,
		audioPath,
		"--model", t.model,
		"--output_format", "txt",
		"--output_dir", outputDir)

	t.logger.Info("transcribing audio", "path", audioPath, "model", t.model)
	if output, err := cmd.CombinedOutput(); err != nil {
		t.logger.Error("transcription failed",
			"path", audioPath,
			"error", err,
			"output", string(output))
		return "", fmt.Errorf("running %s: %w", t.binary, err)
	}

	textPath := transcriptPath(audioPath)
	data, err := os.ReadFile(textPath)
	if err != nil {
		return "", fmt.Errorf("reading transcription output: %w", err)
	}
	defer os.Remove(textPath)

	text := strings.TrimSpace(string(data))
	t.logger.Info("transcription complete", "path", audioPath, "chars", len(text))
	return text, nil
}

// transcriptPath maps an audio file path to the .txt file the CLI writes.
func transcriptPath(audioPath string) string {
	base := strings.TrimSuffix(filepath.Base(audioPath), filepath.Ext(audioPath))
	return filepath.Join(filepath.Dir(audioPath), base+".txt")
}

var _ transcript.SpeechToText = (*Transcriber)(nil)
