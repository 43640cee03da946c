package badger

import (
	"context"
	"errors"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/Shradaya/chat-with-youtube-video/core"
	"github.com/Shradaya/chat-with-youtube-video/storage"
)

// SessionRepository implements storage.SessionRepository for BadgerDB.
type SessionRepository struct {
	backend *Backend
	seq     *badger.Sequence
}

var _ storage.SessionRepository = (*SessionRepository)(nil)

// NewSessionRepository opens a session repository at the given path.
func NewSessionRepository(path string) (storage.SessionRepository, error) {
	backend, err := OpenBackend(path, false)
	if err != nil {
		return nil, err
	}
	return newSessionRepository(backend)
}

// newSessionRepository creates a repository over an existing backend.
func newSessionRepository(backend *Backend) (*SessionRepository, error) {
	seq, err := backend.GetSequence(sessionMsgSeqName)
	if err != nil {
		return nil, err
	}

	return &SessionRepository{
		backend: backend,
		seq:     seq,
	}, nil
}

// Close releases the message sequence and the underlying database.
func (r *SessionRepository) Close() error {
	err := r.seq.Release()
	if closeErr := r.backend.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	return err
}

// SaveSession creates or replaces a session.
func (r *SessionRepository) SaveSession(ctx context.Context, session *core.Session) error {
	if r.backend.IsClosed() {
		return storage.ErrStorageClosed
	}

	session.UpdatedAt = time.Now().UTC()

	return r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeSessionKey(session.ID)
		if err := tx.Set(key, storage.MarshalSession(session)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// GetSession retrieves a session by id.
func (r *SessionRepository) GetSession(ctx context.Context, id string) (*core.Session, error) {
	if r.backend.IsClosed() {
		return nil, storage.ErrStorageClosed
	}

	var session *core.Session
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeSessionKey(id))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return storage.ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			session, err = storage.UnmarshalSession(val)
			return err
		})
	}, false)
	if err != nil {
		return nil, err
	}
	return session, nil
}

// AppendMessages appends messages to a session's history.
func (r *SessionRepository) AppendMessages(ctx context.Context, sessionID string, messages ...*core.ChatMessage) ([]*core.ChatMessage, error) {
	if r.backend.IsClosed() {
		return nil, storage.ErrStorageClosed
	}

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, message := range messages {
			next, err := r.seq.Next()
			if err != nil {
				return err
			}
			// BadgerDB sequences can return 0 on first call, so we skip it
			if next == 0 {
				next, err = r.seq.Next()
				if err != nil {
					return err
				}
			}
			message.Seq = next

			message.InsertedAt = time.Now().UTC()
			if message.Timestamp.IsZero() {
				message.Timestamp = message.InsertedAt
			}

			key := makeMessageKey(sessionID, message.Seq)
			if err := tx.Set(key, storage.MarshalChatMessage(message)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
	if err != nil {
		return nil, err
	}
	return messages, nil
}

// GetMessages retrieves a session's messages ordered by sequence number.
func (r *SessionRepository) GetMessages(ctx context.Context, sessionID string, limit int) ([]*core.ChatMessage, error) {
	if r.backend.IsClosed() {
		return nil, storage.ErrStorageClosed
	}

	var messages []*core.ChatMessage
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = makeMessagePrefix(sessionID)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var message *core.ChatMessage
			err := iter.Item().Value(func(val []byte) error {
				var err error
				message, err = storage.UnmarshalChatMessage(val)
				return err
			})
			if err != nil {
				return err
			}
			messages = append(messages, message)
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	if limit > 0 && len(messages) > limit {
		messages = messages[len(messages)-limit:]
	}
	return messages, nil
}
