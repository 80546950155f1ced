package cratedoc

import "context"

// NavigationKind tags what interactive flow a stored message belongs to.
// An open tag set: other flows can share the store without colliding.
type NavigationKind string

// NavigationDocs marks a message as documentation navigation.
const NavigationDocs NavigationKind = "docs"

// SessionKey identifies one rendered message in one conversation.
type SessionKey struct {
	ChatID    int64
	MessageID int
}

// SessionEntry is the state recalled on a follow-up interaction: the
// document last shown at the keyed message, and the flow it belongs to.
type SessionEntry struct {
	Document *Document
	Kind     NavigationKind
}

// SessionStore maps rendered messages to their session entries so a
// later follow-up can re-enter the document without re-fetching.
// Implementations must be safe for concurrent use; keys are independent,
// no cross-key coordination is required.
type SessionStore interface {
	// Put records the entry for the key. A colliding key is silently
	// overwritten.
	Put(ctx context.Context, key SessionKey, entry SessionEntry) error

	// Get retrieves the entry for the key.
	// Returns ENOTFOUND for unknown keys.
	Get(ctx context.Context, key SessionKey) (SessionEntry, error)
}
