package mock

import (
	"context"

	"github.com/rdocs/cratedoc"
)

var _ cratedoc.SessionStore = (*SessionStore)(nil)

// SessionStore is a mock implementation of cratedoc.SessionStore.
type SessionStore struct {
	PutFn func(ctx context.Context, key cratedoc.SessionKey, entry cratedoc.SessionEntry) error
	GetFn func(ctx context.Context, key cratedoc.SessionKey) (cratedoc.SessionEntry, error)
}

func (s *SessionStore) Put(ctx context.Context, key cratedoc.SessionKey, entry cratedoc.SessionEntry) error {
	return s.PutFn(ctx, key, entry)
}

func (s *SessionStore) Get(ctx context.Context, key cratedoc.SessionKey) (cratedoc.SessionEntry, error) {
	return s.GetFn(ctx, key)
}
