// Package mem provides an in-memory session store.
// Entries expire after a TTL and the store evicts the least recently
// used entry once a capacity limit is reached, so an unattended bot
// process does not grow without bound.
package mem

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/rdocs/cratedoc"
)

const (
	// DefaultTTL is how long a stored entry stays retrievable.
	DefaultTTL = 24 * time.Hour

	// DefaultCapacity is the maximum number of entries held at once.
	DefaultCapacity = 4096
)

var _ cratedoc.SessionStore = (*SessionStore)(nil)

// SessionStore is an in-memory implementation of cratedoc.SessionStore.
// Safe for concurrent use.
type SessionStore struct {
	mu      sync.Mutex
	entries map[cratedoc.SessionKey]*list.Element
	order   *list.List // front = most recently used

	ttl      time.Duration
	capacity int
	now      func() time.Time
}

type storedEntry struct {
	key      cratedoc.SessionKey
	entry    cratedoc.SessionEntry
	storedAt time.Time
}

// Option configures a SessionStore.
type Option func(*SessionStore)

// WithTTL overrides the entry time-to-live.
func WithTTL(ttl time.Duration) Option {
	return func(s *SessionStore) { s.ttl = ttl }
}

// WithCapacity overrides the maximum entry count.
func WithCapacity(n int) Option {
	return func(s *SessionStore) { s.capacity = n }
}

// WithClock overrides the time source. Used in tests.
func WithClock(now func() time.Time) Option {
	return func(s *SessionStore) { s.now = now }
}

// NewSessionStore returns an empty store.
func NewSessionStore(opts ...Option) *SessionStore {
	s := &SessionStore{
		entries:  make(map[cratedoc.SessionKey]*list.Element),
		order:    list.New(),
		ttl:      DefaultTTL,
		capacity: DefaultCapacity,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Put records the entry for the key, overwriting any previous entry.
func (s *SessionStore) Put(ctx context.Context, key cratedoc.SessionKey, entry cratedoc.SessionEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if elem, ok := s.entries[key]; ok {
		stored := elem.Value.(*storedEntry)
		stored.entry = entry
		stored.storedAt = s.now()
		s.order.MoveToFront(elem)
		return nil
	}

	s.entries[key] = s.order.PushFront(&storedEntry{
		key:      key,
		entry:    entry,
		storedAt: s.now(),
	})

	for len(s.entries) > s.capacity {
		oldest := s.order.Back()
		if oldest == nil {
			break
		}
		s.remove(oldest)
	}
	return nil
}

// Get retrieves the entry for the key. Returns ENOTFOUND for unknown or
// expired keys.
func (s *SessionStore) Get(ctx context.Context, key cratedoc.SessionKey) (cratedoc.SessionEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	elem, ok := s.entries[key]
	if !ok {
		return cratedoc.SessionEntry{}, cratedoc.Errorf(cratedoc.ENOTFOUND, "no session for message %d in chat %d", key.MessageID, key.ChatID)
	}

	stored := elem.Value.(*storedEntry)
	if s.now().Sub(stored.storedAt) > s.ttl {
		s.remove(elem)
		return cratedoc.SessionEntry{}, cratedoc.Errorf(cratedoc.ENOTFOUND, "session for message %d in chat %d has expired", key.MessageID, key.ChatID)
	}

	s.order.MoveToFront(elem)
	return stored.entry, nil
}

// Len reports the number of live entries. Expired entries that have not
// been touched since expiry still count.
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func (s *SessionStore) remove(elem *list.Element) {
	stored := s.order.Remove(elem).(*storedEntry)
	delete(s.entries, stored.key)
}
