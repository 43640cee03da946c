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


package store

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/hupe1980/vecgo"
	"github.com/hupe1980/vecgo/metadata"

	"github.com/Shradaya/chat-with-youtube-video/ai"
	"github.com/Shradaya/chat-with-youtube-video/core"
)

// Metadata keys attached to every stored record.
const (
	metaKeyRecordID = "record_id"
	metaKeyID       = "id"
	metaKeyTitle    = "title"
	metaKeyType     = "type"
)

// Filter scopes a similarity query. Type is mandatory: chunks and summaries
// share one index, so an unscoped query would conflate them. SourceID and
// Title are alternate keys combined with OR semantics; at least one must be
// set.
type Filter struct {
	Type     core.ContentType
	SourceID string
	Title    string
}

// Result is one similarity match.
type Result struct {
	RecordID string
	Content  string
	Type     core.ContentType
	Distance float32
}

// ContentStore is a persistent similarity index over transcript chunks and
// summaries, backed by an embedded HNSW index snapshot on disk. The index
// dimension is fixed by the first inserted embedding; the store is created
// lazily so it adapts to whatever embedder it is paired with.
type ContentStore struct {
	mu       sync.Mutex
	db       *vecgo.Vecgo[string]
	embedder ai.Embedder
	path     string
	logger   *slog.Logger
}

// Option configures a ContentStore.
type Option func(*ContentStore)

// WithLogger sets a custom logger for the store.
func WithLogger(logger *slog.Logger) Option {
	return func(s *ContentStore) {
		s.logger = logger
	}
}

// NewContentStore opens the collection's snapshot under dir, creating the
// directory if needed. A missing snapshot is not an error: the index is
// built on first insert.
func NewContentStore(dir, collection string, embedder ai.Embedder, opts ...Option) (*ContentStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("store directory cannot be empty")
	}
	if collection == "" {
		return nil, fmt.Errorf("collection name cannot be empty")
	}
	if embedder == nil {
		return nil, fmt.Errorf("embedder cannot be nil")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating store directory: %w", err)
	}

	s := &ContentStore{
		embedder: embedder,
		path:     filepath.Join(dir, collection+".vecgo"),
		logger:   slog.Default().With("component", "content_store"),
	}
	for _, opt := range opts {
		opt(s)
	}

	if _, err := os.Stat(s.path); err == nil {
		db, err := vecgo.NewFromFile[string](s.path)
		if err != nil {
			return nil, fmt.Errorf("loading snapshot %s: %w", s.path, err)
		}
		s.db = db
		s.logger.Info("snapshot loaded", "path", s.path)
	}

	return s, nil
}

// Insert embeds and persists units as content records sharing the source
// identity. All units become chunks except, when tagLastAsSummary is set,
// the final unit, which becomes the source's summary. The whole batch is
// embedded before anything is written and the snapshot is saved only after
// every record is in; a failed batch rolls the live index back to the last
// saved snapshot, so nothing of it stays partially visible.
func (s *ContentStore) Insert(ctx context.Context, units []string, src core.Source, tagLastAsSummary bool) error {
	if len(units) == 0 {
		return core.ErrEmptyInput
	}
	if err := core.ValidateSource(&src); err != nil {
		return err
	}

	embeddings, err := s.embedder.EmbedTexts(ctx, units)
	if err != nil {
		return fmt.Errorf("embedding batch: %w", err)
	}
	if len(embeddings) != len(units) {
		return fmt.Errorf("embedder returned %d vectors for %d units", len(embeddings), len(units))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureIndex(len(embeddings[0])); err != nil {
		return err
	}

	items := make([]vecgo.VectorWithData[string], len(units))
	for i, unit := range units {
		contentType := core.ContentTypeChunk
		if tagLastAsSummary && i == len(units)-1 {
			contentType = core.ContentTypeSummary
		}
		items[i] = vecgo.VectorWithData[string]{
			Vector: embeddings[i],
			Data:   unit,
			Metadata: metadata.Metadata{
				metaKeyRecordID: metadata.String(uuid.NewString()),
				metaKeyID:       metadata.String(src.ID),
				metaKeyTitle:    metadata.String(src.Title),
				metaKeyType:     metadata.String(string(contentType)),
			},
		}
	}

	result := s.db.BatchInsert(ctx, items)
	for i, insertErr := range result.Errors {
		if insertErr != nil {
			s.rollback()
			return fmt.Errorf("inserting unit %d: %w", i, insertErr)
		}
	}

	if err := s.db.SaveToFile(s.path); err != nil {
		s.rollback()
		return fmt.Errorf("saving snapshot: %w", err)
	}

	s.logger.Info("batch inserted",
		"source_id", src.ID,
		"units", len(units),
		"summary_tagged", tagLastAsSummary)
	return nil
}

// Query runs a nearest-neighbor search scoped by the filter. The filter's
// alternate keys (source id, title) are OR-combined: the underlying filter
// sets only AND, so one search runs per key and the hits are merged by
// record id keeping the best distance. Results come back ordered by
// increasing distance; no match is an empty slice, not an error.
func (s *ContentStore) Query(ctx context.Context, text string, filter Filter, limit int) ([]Result, error) {
	if err := core.ValidateContentType(filter.Type); err != nil {
		return nil, err
	}
	if filter.SourceID == "" && filter.Title == "" {
		return nil, fmt.Errorf("%w: filter needs a source id or a title", core.ErrMissingSourceID)
	}
	if limit <= 0 {
		limit = 5
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Nothing ingested yet.
	if s.db == nil {
		return nil, nil
	}

	embedding, err := s.embedder.EmbedText(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("embedding query: %w", err)
	}

	best := make(map[string]Result)
	for _, fs := range s.filterSets(filter) {
		hits, err := s.db.Search(embedding).
			KNN(limit).
			WithMetadata(fs).
			Execute(ctx)
		if err != nil {
			return nil, fmt.Errorf("searching index: %w", err)
		}

		for _, hit := range hits {
			recordID, _ := hit.Metadata[metaKeyRecordID].AsString()
			recordType, _ := hit.Metadata[metaKeyType].AsString()
			if prev, ok := best[recordID]; ok && prev.Distance <= hit.Distance {
				continue
			}
			best[recordID] = Result{
				RecordID: recordID,
				Content:  hit.Data,
				Type:     core.ContentType(recordType),
				Distance: hit.Distance,
			}
		}
	}

	results := make([]Result, 0, len(best))
	for _, r := range best {
		results = append(results, r)
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].Distance < results[j].Distance
	})
	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// Close releases the underlying index.
func (s *ContentStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// ensureIndex builds the HNSW index on first use. Callers must hold mu.
func (s *ContentStore) ensureIndex(dimension int) error {
	if s.db != nil {
		return nil
	}
	if dimension == 0 {
		return fmt.Errorf("embedder produced zero-dimension vectors")
	}

	db, err := vecgo.HNSW[string](dimension).
		Cosine().
		Build()
	if err != nil {
		return fmt.Errorf("building index: %w", err)
	}
	s.db = db
	s.logger.Info("index created", "dimension", dimension)
	return nil
}

// rollback discards the live index and reloads the last saved snapshot so a
// failed batch leaves no records behind in-process. Callers must hold mu.
func (s *ContentStore) rollback() {
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			s.logger.Warn("closing index during rollback", "err", err)
		}
		s.db = nil
	}

	if _, err := os.Stat(s.path); err != nil {
		return
	}
	db, err := vecgo.NewFromFile[string](s.path)
	if err != nil {
		s.logger.Error("reloading snapshot after failed batch", "path", s.path, "err", err)
		return
	}
	s.db = db
}

// filterSets expands the filter into one AND-only filter set per alternate
// key.
func (s *ContentStore) filterSets(filter Filter) []*metadata.FilterSet {
	typeFilter := metadata.Filter{
		Key:      metaKeyType,
		Operator: metadata.OpEqual,
		Value:    metadata.String(string(filter.Type)),
	}

	var sets []*metadata.FilterSet
	if filter.SourceID != "" {
		sets = append(sets, metadata.NewFilterSet(
			typeFilter,
			metadata.Filter{Key: metaKeyID, Operator: metadata.OpEqual, Value: metadata.String(filter.SourceID)},
		))
	}
	if filter.Title != "" {
		sets = append(sets, metadata.NewFilterSet(
			typeFilter,
			metadata.Filter{Key: metaKeyTitle, Operator: metadata.OpEqual, Value: metadata.String(filter.Title)},
		))
	}
	return sets
}
