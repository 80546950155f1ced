package mock

import (
	"context"

	"github.com/rdocs/cratedoc"
)

var _ cratedoc.Resolver = (*Resolver)(nil)

// Resolver is a mock implementation of cratedoc.Resolver.
type Resolver struct {
	ResolveFn func(ctx context.Context, path string) (*cratedoc.Document, error)
}

func (r *Resolver) Resolve(ctx context.Context, path string) (*cratedoc.Document, error) {
	return r.ResolveFn(ctx, path)
}
