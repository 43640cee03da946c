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


package ingestion

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Shradaya/chat-with-youtube-video/ai"
	"github.com/Shradaya/chat-with-youtube-video/chunk"
	"github.com/Shradaya/chat-with-youtube-video/core"
	"github.com/Shradaya/chat-with-youtube-video/store"
)

// Chunk sizes for the two splits of one ingestion: coarse units feed the
// summarizer, fine units feed the retrieval index.
const (
	FineChunkSize   = 500
	CoarseChunkSize = 5000
)

// TranscriptAcquirer obtains transcript text for a source. Satisfied by
// *transcript.Acquirer.
type TranscriptAcquirer interface {
	Acquire(ctx context.Context, src core.Source) (core.Transcript, error)
}

// ContentStore persists and queries content records. Satisfied by
// *store.ContentStore.
type ContentStore interface {
	Insert(ctx context.Context, units []string, src core.Source, tagLastAsSummary bool) error
	Query(ctx context.Context, text string, filter store.Filter, limit int) ([]store.Result, error)
}

// Pipeline orchestrates one ingestion: resolve an existing summary, or
// acquire, chunk, summarize and persist. Stages run sequentially; nothing
// is written until the final insert, so a failed stage never leaves partial
// state behind.
type Pipeline struct {
	acquirer   TranscriptAcquirer
	summarizer ai.Summarizer
	contents   ContentStore
	fine       *chunk.Splitter
	coarse     *chunk.Splitter
	logger     *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets a custom logger for the pipeline.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// NewPipeline creates an ingestion pipeline over the given collaborators.
func NewPipeline(acquirer TranscriptAcquirer, summarizer ai.Summarizer, contents ContentStore, opts ...Option) (*Pipeline, error) {
	if acquirer == nil {
		return nil, fmt.Errorf("transcript acquirer cannot be nil")
	}
	if summarizer == nil {
		return nil, fmt.Errorf("summarizer cannot be nil")
	}
	if contents == nil {
		return nil, fmt.Errorf("content store cannot be nil")
	}

	p := &Pipeline{
		acquirer:   acquirer,
		summarizer: summarizer,
		contents:   contents,
		fine:       chunk.NewSplitter(chunk.SentenceSeparator, FineChunkSize),
		coarse:     chunk.NewSplitter(chunk.SentenceSeparator, CoarseChunkSize),
		logger:     slog.Default().With("component", "ingestion_pipeline"),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Ingest processes one source and returns its summary. When a summary
// already exists for the source identity (matched by id or, best effort, by
// title) it is returned directly without re-acquisition or re-embedding.
// Extraction failure surfaces as core.ErrExtractionFailed with no writes.
func (p *Pipeline) Ingest(ctx context.Context, src core.Source) (string, error) {
	if err := core.ValidateSource(&src); err != nil {
		return "", err
	}

	if summary, ok, err := p.existingSummary(ctx, src); err != nil {
		return "", err
	} else if ok {
		p.logger.Info("summary cache hit", "source_id", src.ID)
		return summary, nil
	}

	result, err := p.acquirer.Acquire(ctx, src)
	if err != nil {
		return "", fmt.Errorf("acquiring transcript: %w", err)
	}
	if result.Failed() {
		return "", fmt.Errorf("%w: no transcript for source %s", core.ErrExtractionFailed, src.ID)
	}

	fineUnits, err := p.fine.Split(result.Text)
	if err != nil {
		return "", fmt.Errorf("chunking transcript: %w", err)
	}
	coarseUnits, err := p.coarse.Split(result.Text)
	if err != nil {
		return "", fmt.Errorf("chunking transcript: %w", err)
	}

	summary, err := p.summarizer.Summarize(ctx, coarseUnits)
	if err != nil {
		return "", fmt.Errorf("summarizing transcript: %w", err)
	}

	units := append(fineUnits, summary)
	if err := p.contents.Insert(ctx, units, src, true); err != nil {
		return "", fmt.Errorf("persisting content: %w", err)
	}

	p.logger.Info("source ingested",
		"source_id", src.ID,
		"origin", result.Origin.String(),
		"chunks", len(fineUnits))
	return summary, nil
}

// existingSummary looks up a previously persisted summary for the source.
func (p *Pipeline) existingSummary(ctx context.Context, src core.Source) (string, bool, error) {
	results, err := p.contents.Query(ctx, src.Title, store.Filter{
		Type:     core.ContentTypeSummary,
		SourceID: src.ID,
		Title:    src.Title,
	}, 1)
	if err != nil {
		return "", false, fmt.Errorf("checking for existing summary: %w", err)
	}
	if len(results) == 0 {
		return "", false, nil
	}
	return results[0].Content, true, nil
}
