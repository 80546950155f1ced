package mock

import (
	"context"

	"github.com/rdocs/cratedoc"
)

var _ cratedoc.PageFetcher = (*PageFetcher)(nil)

// PageFetcher is a mock implementation of cratedoc.PageFetcher.
type PageFetcher struct {
	FetchFn func(ctx context.Context, url string) (string, bool, error)
}

func (f *PageFetcher) Fetch(ctx context.Context, url string) (string, bool, error) {
	return f.FetchFn(ctx, url)
}
