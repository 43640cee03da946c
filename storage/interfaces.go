package storage

import (
	"context"

	"github.com/Shradaya/chat-with-youtube-video/core"
)

// SessionRepository persists chat sessions and their message history.
// Implementations must be thread-safe and support concurrent access.
type SessionRepository interface {
	// SaveSession creates or replaces a session. The UpdatedAt timestamp
	// is set automatically.
	SaveSession(ctx context.Context, session *core.Session) error

	// GetSession retrieves a session by id.
	// Returns ErrNotFound if the session doesn't exist.
	GetSession(ctx context.Context, id string) (*core.Session, error)

	// AppendMessages appends messages to a session's history.
	// Assigns sequence numbers from the session's message sequence and
	// sets InsertedAt timestamps.
	// Returns the messages with sequence numbers and timestamps populated.
	AppendMessages(ctx context.Context, sessionID string, messages ...*core.ChatMessage) ([]*core.ChatMessage, error)

	// GetMessages retrieves a session's messages ordered by sequence
	// number ascending. A limit of 0 returns the full history; otherwise
	// the most recent limit messages come back, still in ascending order.
	GetMessages(ctx context.Context, sessionID string, limit int) ([]*core.ChatMessage, error)

	// Close closes the repository and releases resources.
	Close() error
}
