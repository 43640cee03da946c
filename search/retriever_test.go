package search

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shradaya/chat-with-youtube-video/core"
	"github.com/Shradaya/chat-with-youtube-video/store"
)

type stubQuerier struct {
	results []store.Result
	err     error

	gotText   string
	gotFilter store.Filter
	gotLimit  int
}

func (s *stubQuerier) Query(ctx context.Context, text string, filter store.Filter, limit int) ([]store.Result, error) {
	s.gotText = text
	s.gotFilter = filter
	s.gotLimit = limit
	return s.results, s.err
}

func TestContext_JoinsPassagesInOrder(t *testing.T) {
	querier := &stubQuerier{results: []store.Result{
		{Content: "first passage", Type: core.ContentTypeChunk},
		{Content: "second passage", Type: core.ContentTypeChunk},
	}}

	retriever, err := NewRetriever(querier)
	require.NoError(t, err)

	src := core.Source{ID: "abc123", Title: "Demo"}
	text, err := retriever.Context(context.Background(), "what happened?", src)
	require.NoError(t, err)

	assert.Equal(t, "first passage second passage", text)
	assert.Equal(t, "what happened?", querier.gotText)
	assert.Equal(t, core.ContentTypeChunk, querier.gotFilter.Type)
	assert.Equal(t, "abc123", querier.gotFilter.SourceID)
	assert.Equal(t, "Demo", querier.gotFilter.Title)
	assert.Equal(t, DefaultLimit, querier.gotLimit)
}

func TestContext_EmptyWhenNothingIngested(t *testing.T) {
	retriever, err := NewRetriever(&stubQuerier{})
	require.NoError(t, err)

	text, err := retriever.Context(context.Background(), "anything", core.Source{ID: "abc123", Title: "Demo"})
	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestContext_PropagatesStoreError(t *testing.T) {
	querier := &stubQuerier{err: errors.New("index corrupted")}
	retriever, err := NewRetriever(querier)
	require.NoError(t, err)

	_, err = retriever.Context(context.Background(), "anything", core.Source{ID: "abc123", Title: "Demo"})
	assert.Error(t, err)
}

func TestContext_InvalidSource(t *testing.T) {
	retriever, err := NewRetriever(&stubQuerier{})
	require.NoError(t, err)

	_, err = retriever.Context(context.Background(), "anything", core.Source{})
	assert.ErrorIs(t, err, core.ErrInvalidSource)
}

func TestNewRetriever_Validation(t *testing.T) {
	_, err := NewRetriever(nil)
	assert.Error(t, err)

	_, err = NewRetriever(&stubQuerier{}, WithLimit(0))
	assert.Error(t, err)
}
