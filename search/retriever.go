package search

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Shradaya/chat-with-youtube-video/core"
	"github.com/Shradaya/chat-with-youtube-video/store"
)

// DefaultLimit is how many supporting passages one question pulls in.
const DefaultLimit = 5

// ContentQuerier is the slice of the content store the retriever needs.
// Satisfied by *store.ContentStore.
type ContentQuerier interface {
	Query(ctx context.Context, text string, filter store.Filter, limit int) ([]store.Result, error)
}

// Retriever assembles the grounding context for a question about an
// ingested source.
type Retriever struct {
	contents ContentQuerier
	limit    int
	logger   *slog.Logger
}

// Option configures a Retriever.
type Option func(*Retriever)

// WithLimit overrides the number of passages retrieved per question.
func WithLimit(limit int) Option {
	return func(r *Retriever) {
		r.limit = limit
	}
}

// WithLogger sets a custom logger for the retriever.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Retriever) {
		r.logger = logger
	}
}

// NewRetriever creates a retriever over the content store.
func NewRetriever(contents ContentQuerier, opts ...Option) (*Retriever, error) {
	if contents == nil {
		return nil, fmt.Errorf("content querier cannot be nil")
	}

	r := &Retriever{
		contents: contents,
		limit:    DefaultLimit,
		logger:   slog.Default().With("component", "retriever"),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.limit <= 0 {
		return nil, fmt.Errorf("limit must be positive, got %d", r.limit)
	}
	return r, nil
}

// Context returns the chunk passages most similar to the question, scoped
// to the source and joined with single spaces in store order. An empty
// string means nothing has been ingested for the source yet; callers must
// treat that as "nothing known", not as an error.
func (r *Retriever) Context(ctx context.Context, question string, src core.Source) (string, error) {
	if err := core.ValidateSource(&src); err != nil {
		return "", err
	}

	results, err := r.contents.Query(ctx, question, store.Filter{
		Type:     core.ContentTypeChunk,
		SourceID: src.ID,
		Title:    src.Title,
	}, r.limit)
	if err != nil {
		return "", fmt.Errorf("querying content: %w", err)
	}

	passages := make([]string, 0, len(results))
	for _, result := range results {
		passages = append(passages, result.Content)
	}

	r.logger.Debug("context assembled",
		"source_id", src.ID,
		"passages", len(passages))
	return strings.Join(passages, " "), nil
}
