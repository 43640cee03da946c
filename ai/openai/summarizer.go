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


package openai

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/Shradaya/chat-with-youtube-video/ai"
	"github.com/Shradaya/chat-with-youtube-video/core"
	"github.com/panjf2000/ants/v2"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// Summarizer implements ai.Summarizer with a two-stage map-reduce over an
// OpenAI-compatible chat API. The map stage condenses each segment
// independently on a worker pool; the reduce stage distills the partial
// summaries into one.
type Summarizer struct {
	client llms.Model
	pool   *ants.Pool
	logger *slog.Logger
}

// newSummarizer is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newSummarizer(config *ai.Config) (*Summarizer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := openai.New(
		openai.WithBaseURL(config.Host),
		openai.WithToken(config.Token),
		openai.WithModel(config.ChatModel),
	)
	if err != nil {
		return nil, err
	}

	pool, err := ants.NewPool(config.SummaryWorkers)
	if err != nil {
		return nil, err
	}

	return &Summarizer{
		client: client,
		pool:   pool,
		logger: slog.Default().With("component", "openai-summarizer"),
	}, nil
}

// NewSummarizer creates a new summarizer using the provided configuration.
//
// Returns ai.Summarizer interface to enforce abstraction.
func NewSummarizer(config *ai.Config) (ai.Summarizer, error) {
	return newSummarizer(config)
}

// Summarize produces one consolidated summary covering all segments.
func (s *Summarizer) Summarize(ctx context.Context, segments []string) (string, error) {
	if len(segments) == 0 {
		return "", core.ErrEmptyInput
	}

	s.logger.Debug("summarizing segments", "count", len(segments))

	partials, err := s.mapSegments(ctx, segments)
	if err != nil {
		return "", err
	}

	if len(partials) == 1 {
		return partials[0], nil
	}

	return s.reduce(ctx, partials)
}

// mapSegments condenses each segment concurrently, preserving order.
func (s *Summarizer) mapSegments(ctx context.Context, segments []string) ([]string, error) {
	partials := make([]string, len(segments))
	errs := make([]error, len(segments))

	var wg sync.WaitGroup
	for i, segment := range segments {
		wg.Add(1)
		submitErr := s.pool.Submit(func() {
			defer wg.Done()
			if ctx.Err() != nil {
				errs[i] = ctx.Err()
				return
			}
			partials[i], errs[i] = s.summarizeOne(ctx, segment)
		})
		if submitErr != nil {
			wg.Done()
			errs[i] = submitErr
		}
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			s.logger.Error("segment summary failed", "segment", i, "err", err)
			return nil, fmt.Errorf("summarizing segment %d: %w", i, err)
		}
	}
	return partials, nil
}

// summarizeOne runs the map prompt on a single segment.
func (s *Summarizer) summarizeOne(ctx context.Context, segment string) (string, error) {
	prompt, err := mapPrompt.Format(map[string]any{"segment": segment})
	if err != nil {
		return "", err
	}
	return s.generate(ctx, prompt)
}

// reduce distills the partial summaries into the final summary.
func (s *Summarizer) reduce(ctx context.Context, partials []string) (string, error) {
	prompt, err := reducePrompt.Format(map[string]any{
		"summaries": strings.Join(partials, "\n"),
	})
	if err != nil {
		return "", err
	}
	return s.generate(ctx, prompt)
}

func (s *Summarizer) generate(ctx context.Context, prompt string) (string, error) {
	content := []llms.MessageContent{
		{
			Role:  llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{llms.TextPart(prompt)},
		},
	}

	response, err := s.client.GenerateContent(ctx, content, llms.WithTemperature(0.0))
	if err != nil {
		return "", err
	}
	if len(response.Choices) < 1 {
		return "", fmt.Errorf("no choices returned from model")
	}
	return strings.TrimSpace(response.Choices[0].Content), nil
}

// Release shuts the worker pool down. The summarizer should not be used
// after calling Release.
func (s *Summarizer) Release() {
	s.pool.Release()
}
