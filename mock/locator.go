// Package mock provides mock implementations of cratedoc interfaces for testing.
package mock

import (
	"context"

	"github.com/rdocs/cratedoc"
)

var _ cratedoc.Locator = (*Locator)(nil)

// Locator is a mock implementation of cratedoc.Locator.
type Locator struct {
	LocateFn func(ctx context.Context, crate string) (cratedoc.Origin, error)
}

func (l *Locator) Locate(ctx context.Context, crate string) (cratedoc.Origin, error) {
	return l.LocateFn(ctx, crate)
}
