package ingestion

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shradaya/chat-with-youtube-video/ai/mock"
	"github.com/Shradaya/chat-with-youtube-video/core"
	"github.com/Shradaya/chat-with-youtube-video/store"
)

type stubAcquirer struct {
	transcript core.Transcript
	err        error
	calls      int
}

func (s *stubAcquirer) Acquire(ctx context.Context, src core.Source) (core.Transcript, error) {
	s.calls++
	return s.transcript, s.err
}

func newPipeline(t *testing.T, acquirer *stubAcquirer, summarizer *mock.MockSummarizer) (*Pipeline, *store.ContentStore) {
	t.Helper()

	contents, err := store.NewContentStore(t.TempDir(), "content", mock.NewMockEmbedder())
	require.NoError(t, err)
	t.Cleanup(func() { contents.Close() })

	pipeline, err := NewPipeline(acquirer, summarizer, contents)
	require.NoError(t, err)
	return pipeline, contents
}

func TestIngest_EndToEnd(t *testing.T) {
	acquirer := &stubAcquirer{transcript: core.Transcript{
		Text:   "Sentence one. Sentence two. Sentence three.",
		Origin: core.OriginAPI,
	}}
	summarizer := mock.NewMockSummarizer()
	summarizer.SummarizeFunc = func(ctx context.Context, segments []string) (string, error) {
		return "Summary.", nil
	}

	pipeline, contents := newPipeline(t, acquirer, summarizer)
	ctx := context.Background()
	src := core.Source{ID: "abc123", Title: "Demo"}

	summary, err := pipeline.Ingest(ctx, src)
	require.NoError(t, err)
	assert.Equal(t, "Summary.", summary)

	// The transcript fits one fine chunk, so exactly two records exist:
	// the chunk text and the summary.
	chunks, err := contents.Query(ctx, "two", store.Filter{Type: core.ContentTypeChunk, SourceID: "abc123"}, 10)
	require.NoError(t, err)
	require.Len(t, chunks, 1)
	assert.Equal(t, "Sentence one. Sentence two. Sentence three.", chunks[0].Content)

	summaries, err := contents.Query(ctx, "Demo", store.Filter{Type: core.ContentTypeSummary, SourceID: "abc123"}, 10)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, "Summary.", summaries[0].Content)
}

func TestIngest_SecondRunIsCacheHit(t *testing.T) {
	acquirer := &stubAcquirer{transcript: core.Transcript{
		Text:   "Sentence one. Sentence two. Sentence three.",
		Origin: core.OriginAPI,
	}}
	summarizer := mock.NewMockSummarizer()
	summarizer.SummarizeFunc = func(ctx context.Context, segments []string) (string, error) {
		return "Summary.", nil
	}

	pipeline, _ := newPipeline(t, acquirer, summarizer)
	ctx := context.Background()
	src := core.Source{ID: "abc123", Title: "Demo"}

	_, err := pipeline.Ingest(ctx, src)
	require.NoError(t, err)
	assert.Equal(t, 1, acquirer.calls)
	assert.Equal(t, 1, summarizer.CallCount())

	summary, err := pipeline.Ingest(ctx, src)
	require.NoError(t, err)
	assert.Equal(t, "Summary.", summary)

	// The second run must not re-acquire or re-summarize.
	assert.Equal(t, 1, acquirer.calls)
	assert.Equal(t, 1, summarizer.CallCount())
}

func TestIngest_ExtractionFailure(t *testing.T) {
	acquirer := &stubAcquirer{transcript: core.Transcript{Origin: core.OriginNone}}
	summarizer := mock.NewMockSummarizer()

	pipeline, contents := newPipeline(t, acquirer, summarizer)
	ctx := context.Background()
	src := core.Source{ID: "abc123", Title: "Demo"}

	_, err := pipeline.Ingest(ctx, src)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrExtractionFailed)
	assert.Equal(t, 0, summarizer.CallCount())

	// Nothing may be written on extraction failure.
	results, err := contents.Query(ctx, "anything", store.Filter{Type: core.ContentTypeChunk, SourceID: "abc123"}, 10)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestIngest_SummarizerFailureWritesNothing(t *testing.T) {
	acquirer := &stubAcquirer{transcript: core.Transcript{
		Text:   "Some transcript text.",
		Origin: core.OriginAPI,
	}}
	summarizer := mock.NewMockSummarizer()
	summarizer.SummarizeFunc = func(ctx context.Context, segments []string) (string, error) {
		return "", errors.New("model unavailable")
	}

	pipeline, contents := newPipeline(t, acquirer, summarizer)
	ctx := context.Background()
	src := core.Source{ID: "abc123", Title: "Demo"}

	_, err := pipeline.Ingest(ctx, src)
	require.Error(t, err)

	results, err := contents.Query(ctx, "anything", store.Filter{Type: core.ContentTypeChunk, SourceID: "abc123"}, 10)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestIngest_InvalidSource(t *testing.T) {
	pipeline, _ := newPipeline(t, &stubAcquirer{}, mock.NewMockSummarizer())

	_, err := pipeline.Ingest(context.Background(), core.Source{})
	assert.ErrorIs(t, err, core.ErrInvalidSource)
}

func TestNewPipeline_Validation(t *testing.T) {
	contents, err := store.NewContentStore(t.TempDir(), "content", mock.NewMockEmbedder())
	require.NoError(t, err)
	defer contents.Close()

	_, err = NewPipeline(nil, mock.NewMockSummarizer(), contents)
	assert.Error(t, err)

	_, err = NewPipeline(&stubAcquirer{}, nil, contents)
	assert.Error(t, err)

	_, err = NewPipeline(&stubAcquirer{}, mock.NewMockSummarizer(), nil)
	assert.Error(t, err)
}
