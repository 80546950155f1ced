package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/rdocs/cratedoc"
)

// DefaultSessionTTL is how long a stored session stays retrievable.
const DefaultSessionTTL = 7 * 24 * time.Hour

// Compile-time interface verification.
var _ cratedoc.SessionStore = (*SessionService)(nil)

// SessionService implements cratedoc.SessionStore using SQLite.
// Documents are stored as JSON so sessions survive process restarts.
type SessionService struct {
	db  *DB
	ttl time.Duration
	now func() time.Time
}

// SessionOption configures a SessionService.
type SessionOption func(*SessionService)

// WithSessionTTL overrides the session time-to-live.
func WithSessionTTL(ttl time.Duration) SessionOption {
	return func(s *SessionService) { s.ttl = ttl }
}

// WithSessionClock overrides the time source. Used in tests.
func WithSessionClock(now func() time.Time) SessionOption {
	return func(s *SessionService) { s.now = now }
}

// NewSessionService creates a new SessionService.
func NewSessionService(db *DB, opts ...SessionOption) *SessionService {
	s := &SessionService{
		db:  db,
		ttl: DefaultSessionTTL,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// hashContent computes xxHash of content and returns hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	b[0] = byte(h >> 56)
	b[1] = byte(h >> 48)
	b[2] = byte(h >> 40)
	b[3] = byte(h >> 32)
	b[4] = byte(h >> 24)
	b[5] = byte(h >> 16)
	b[6] = byte(h >> 8)
	b[7] = byte(h)
	return hex.EncodeToString(b)
}

// Put records the entry for the key, overwriting any previous entry.
// Expired sessions are purged opportunistically on each write.
func (s *SessionService) Put(ctx context.Context, key cratedoc.SessionKey, entry cratedoc.SessionEntry) error {
	payload, err := json.Marshal(entry.Document)
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}

	storedAt := s.now().UTC()
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO sessions (chat_id, message_id, kind, document, document_hash, stored_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (chat_id, message_id) DO UPDATE SET
			kind = excluded.kind,
			document = excluded.document,
			document_hash = excluded.document_hash,
			stored_at = excluded.stored_at
	`, key.ChatID, key.MessageID, string(entry.Kind), string(payload), hashContent(string(payload)),
		storedAt.Format(time.RFC3339))
	if err != nil {
		return err
	}

	cutoff := storedAt.Add(-s.ttl).Format(time.RFC3339)
	_, err = s.db.ExecContext(ctx, `DELETE FROM sessions WHERE stored_at < ?`, cutoff)
	return err
}

// Get retrieves the entry for the key. Returns ENOTFOUND for unknown or
// expired keys.
func (s *SessionService) Get(ctx context.Context, key cratedoc.SessionKey) (cratedoc.SessionEntry, error) {
	var kind, payload, storedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT kind, document, stored_at
		FROM sessions
		WHERE chat_id = ? AND message_id = ?
	`, key.ChatID, key.MessageID).Scan(&kind, &payload, &storedAt)

	if err == sql.ErrNoRows {
		return cratedoc.SessionEntry{}, cratedoc.Errorf(cratedoc.ENOTFOUND, "no session for message %d in chat %d", key.MessageID, key.ChatID)
	}
	if err != nil {
		return cratedoc.SessionEntry{}, err
	}

	at, err := time.Parse(time.RFC3339, storedAt)
	if err != nil {
		return cratedoc.SessionEntry{}, fmt.Errorf("failed to parse stored_at: %w", err)
	}
	if s.now().UTC().Sub(at) > s.ttl {
		return cratedoc.SessionEntry{}, cratedoc.Errorf(cratedoc.ENOTFOUND, "session for message %d in chat %d has expired", key.MessageID, key.ChatID)
	}

	var doc cratedoc.Document
	if err := json.Unmarshal([]byte(payload), &doc); err != nil {
		return cratedoc.SessionEntry{}, fmt.Errorf("failed to decode document: %w", err)
	}

	return cratedoc.SessionEntry{
		Document: &doc,
		Kind:     cratedoc.NavigationKind(kind),
	}, nil
}
