package badger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shradaya/chat-with-youtube-video/core"
	"github.com/Shradaya/chat-with-youtube-video/storage"
)

func newTestRepo(t *testing.T) storage.SessionRepository {
	t.Helper()
	repo, err := NewMemorySessionRepository()
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestSaveAndGetSession(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	session := &core.Session{
		ID: "session-1",
		Source: core.Source{
			ID:    "abc123",
			Title: "Demo Video",
		},
	}
	require.NoError(t, repo.SaveSession(ctx, session))
	assert.False(t, session.UpdatedAt.IsZero())

	got, err := repo.GetSession(ctx, "session-1")
	require.NoError(t, err)
	assert.Equal(t, session.ID, got.ID)
	assert.Equal(t, session.Source, got.Source)
}

func TestGetSession_NotFound(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.GetSession(context.Background(), "nope")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestSaveSession_ReplacesExisting(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	session := &core.Session{ID: "session-1"}
	require.NoError(t, repo.SaveSession(ctx, session))

	session.Source = core.Source{ID: "xyz789", Title: "Second Video"}
	require.NoError(t, repo.SaveSession(ctx, session))

	got, err := repo.GetSession(ctx, "session-1")
	require.NoError(t, err)
	assert.Equal(t, "xyz789", got.Source.ID)
	assert.True(t, got.HasSource())
}

func TestAppendAndGetMessages(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	messages := []*core.ChatMessage{
		{Speaker: core.SpeakerHuman, Contents: "what is this about?"},
		{Speaker: core.SpeakerAI, Contents: "it explains goroutines"},
	}
	saved, err := repo.AppendMessages(ctx, "session-1", messages...)
	require.NoError(t, err)
	require.Len(t, saved, 2)

	assert.NotZero(t, saved[0].Seq)
	assert.Greater(t, saved[1].Seq, saved[0].Seq)
	assert.False(t, saved[0].InsertedAt.IsZero())
	assert.False(t, saved[0].Timestamp.IsZero())

	got, err := repo.GetMessages(ctx, "session-1", 0)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "what is this about?", got[0].Contents)
	assert.Equal(t, "it explains goroutines", got[1].Contents)
	assert.Equal(t, core.SpeakerHuman, got[0].Speaker)
	assert.Equal(t, core.SpeakerAI, got[1].Speaker)
}

func TestGetMessages_Limit(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := repo.AppendMessages(ctx, "session-1", &core.ChatMessage{
			Speaker:  core.SpeakerHuman,
			Contents: string(rune('a' + i)),
		})
		require.NoError(t, err)
	}

	got, err := repo.GetMessages(ctx, "session-1", 2)
	require.NoError(t, err)
	require.Len(t, got, 2)

	// Most recent two, still in ascending order.
	assert.Equal(t, "d", got[0].Contents)
	assert.Equal(t, "e", got[1].Contents)
}

func TestGetMessages_SessionIsolation(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.AppendMessages(ctx, "session-1", &core.ChatMessage{Speaker: core.SpeakerHuman, Contents: "one"})
	require.NoError(t, err)
	_, err = repo.AppendMessages(ctx, "session-2", &core.ChatMessage{Speaker: core.SpeakerHuman, Contents: "two"})
	require.NoError(t, err)

	got, err := repo.GetMessages(ctx, "session-1", 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "one", got[0].Contents)
}

func TestGetMessages_EmptySession(t *testing.T) {
	repo := newTestRepo(t)

	got, err := repo.GetMessages(context.Background(), "empty", 0)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRepository_Closed(t *testing.T) {
	repo, err := NewMemorySessionRepository()
	require.NoError(t, err)
	require.NoError(t, repo.Close())

	_, err = repo.GetSession(context.Background(), "session-1")
	assert.ErrorIs(t, err, storage.ErrStorageClosed)

	err = repo.SaveSession(context.Background(), &core.Session{ID: "session-1"})
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
}
