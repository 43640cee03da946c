package youtube

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shradaya/chat-with-youtube-video/transcript"
)

const sampleTimedText = `<?xml version="1.0" encoding="utf-8"?>
<transcript>
  <text start="0.0" dur="2.5">Hello everyone</text>
  <text start="2.5" dur="3.0">welcome to the show &amp;amp; more</text>
</transcript>`

func TestCaptions_ParsesSegments(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "en", r.URL.Query().Get("lang"))
		assert.Equal(t, "vid123", r.URL.Query().Get("v"))
		w.Write([]byte(sampleTimedText))
	}))
	defer server.Close()

	client := NewCaptionClient(WithCaptionBaseURL(server.URL))

	captions, err := client.Captions(context.Background(), "vid123")
	require.NoError(t, err)
	require.Len(t, captions, 2)

	assert.Equal(t, "Hello everyone", captions[0].Text)
	assert.Equal(t, 0.0, captions[0].Start)
	assert.Equal(t, 2.5, captions[0].Duration)

	// Double-escaped entities are fully unescaped.
	assert.Equal(t, "welcome to the show & more", captions[1].Text)
}

func TestCaptions_EmptyBodyMeansDisabled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewCaptionClient(WithCaptionBaseURL(server.URL))

	_, err := client.Captions(context.Background(), "vid123")
	assert.ErrorIs(t, err, transcript.ErrCaptionsDisabled)
}

func TestCaptions_EmptyDocumentMeansDisabled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<?xml version="1.0"?><transcript></transcript>`))
	}))
	defer server.Close()

	client := NewCaptionClient(WithCaptionBaseURL(server.URL))

	_, err := client.Captions(context.Background(), "vid123")
	assert.ErrorIs(t, err, transcript.ErrCaptionsDisabled)
}

func TestCaptions_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewCaptionClient(WithCaptionBaseURL(server.URL))

	_, err := client.Captions(context.Background(), "vid123")
	require.Error(t, err)
	assert.NotErrorIs(t, err, transcript.ErrCaptionsDisabled)
}

func TestCaptions_CustomLanguage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "de", r.URL.Query().Get("lang"))
		w.Write([]byte(sampleTimedText))
	}))
	defer server.Close()

	client := NewCaptionClient(WithCaptionBaseURL(server.URL), WithLanguage("de"))

	_, err := client.Captions(context.Background(), "vid123")
	require.NoError(t, err)
}
