package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/rdocs/cratedoc"
	"github.com/rdocs/cratedoc/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDocument() *cratedoc.Document {
	return &cratedoc.Document{
		Kind:       cratedoc.KindTrait,
		Path:       "serde::Deserialize",
		Definition: "<pre><code class=\"language-rust\">pub trait Deserialize&lt;'de&gt;: Sized</code></pre>",
		Description: "<p>A data structure that can be deserialized.</p>",
		Sections: []cratedoc.Section{
			{Heading: "Lifetime", Body: cratedoc.Prose("<p>The 'de lifetime ties borrows to the input.</p>")},
		},
		Listings: []cratedoc.Listing{
			{
				Key:     cratedoc.ListRequiredMethods,
				Heading: "Required Methods",
				Items: []cratedoc.ItemSummary{
					{Name: "fn deserialize<D>(deserializer: D)"},
				},
			},
		},
	}
}

func TestSessionService_PutGet(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s := sqlite.NewSessionService(mustOpenDB(t))
	key := cratedoc.SessionKey{ChatID: 42, MessageID: 7}
	entry := cratedoc.SessionEntry{Document: testDocument(), Kind: cratedoc.NavigationDocs}

	require.NoError(t, s.Put(ctx, key, entry))

	got, err := s.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, cratedoc.NavigationDocs, got.Kind)
	assert.Equal(t, entry.Document, got.Document)
}

func TestSessionService_Overwrite(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s := sqlite.NewSessionService(mustOpenDB(t))
	key := cratedoc.SessionKey{ChatID: 1, MessageID: 1}

	first := cratedoc.SessionEntry{Document: &cratedoc.Document{Path: "serde"}, Kind: cratedoc.NavigationDocs}
	second := cratedoc.SessionEntry{Document: &cratedoc.Document{Path: "tokio"}, Kind: cratedoc.NavigationDocs}

	require.NoError(t, s.Put(ctx, key, first))
	require.NoError(t, s.Put(ctx, key, second))

	got, err := s.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "tokio", got.Document.Path)
}

func TestSessionService_UnknownKey(t *testing.T) {
	t.Parallel()

	s := sqlite.NewSessionService(mustOpenDB(t))

	_, err := s.Get(context.Background(), cratedoc.SessionKey{ChatID: 9, MessageID: 9})
	require.Error(t, err)
	assert.Equal(t, cratedoc.ENOTFOUND, cratedoc.ErrorCode(err))
}

func TestSessionService_Expiry(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s := sqlite.NewSessionService(mustOpenDB(t),
		sqlite.WithSessionTTL(time.Hour),
		sqlite.WithSessionClock(func() time.Time { return now }),
	)

	key := cratedoc.SessionKey{ChatID: 5, MessageID: 5}
	require.NoError(t, s.Put(ctx, key, cratedoc.SessionEntry{Document: testDocument(), Kind: cratedoc.NavigationDocs}))

	now = now.Add(2 * time.Hour)
	_, err := s.Get(ctx, key)
	require.Error(t, err)
	assert.Equal(t, cratedoc.ENOTFOUND, cratedoc.ErrorCode(err))
}

func TestSessionService_PurgesExpiredOnPut(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	db := mustOpenDB(t)
	s := sqlite.NewSessionService(db,
		sqlite.WithSessionTTL(time.Hour),
		sqlite.WithSessionClock(func() time.Time { return now }),
	)

	old := cratedoc.SessionKey{ChatID: 1, MessageID: 1}
	require.NoError(t, s.Put(ctx, old, cratedoc.SessionEntry{Document: testDocument(), Kind: cratedoc.NavigationDocs}))

	now = now.Add(2 * time.Hour)
	fresh := cratedoc.SessionKey{ChatID: 1, MessageID: 2}
	require.NoError(t, s.Put(ctx, fresh, cratedoc.SessionEntry{Document: testDocument(), Kind: cratedoc.NavigationDocs}))

	var count int
	err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM sessions").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
