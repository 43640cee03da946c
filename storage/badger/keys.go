package badger

import (
	"encoding/binary"
	"fmt"
)

// Key prefixes for different data types
const (
	sessionPrefix     = "sess"
	sessionMsgPrefix  = "sessmsg"
	sessionMsgSeqName = "sessmsgseq"
)

// makeSessionKey generates a key for a session by id.
func makeSessionKey(id string) []byte {
	return []byte(fmt.Sprintf("%s:%s", sessionPrefix, id))
}

// makeMessageKey generates a composite key for a session message.
// Format: prefix:sessionID:seq
func makeMessageKey(sessionID string, seq uint64) []byte {
	prefix := makeMessagePrefix(sessionID)
	buf := make([]byte, len(prefix)+8)
	offset := copy(buf, prefix)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], seq)
	return buf
}

// makeMessagePrefix generates the iteration prefix for a session's
// messages.
func makeMessagePrefix(sessionID string) []byte {
	return []byte(fmt.Sprintf("%s:%s:", sessionMsgPrefix, sessionID))
}
