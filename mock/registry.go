package mock

import (
	"context"

	"github.com/rdocs/cratedoc"
)

var _ cratedoc.RegistryService = (*RegistryService)(nil)

// RegistryService is a mock implementation of cratedoc.RegistryService.
type RegistryService struct {
	CrateInfoFn func(ctx context.Context, name string) (*cratedoc.CrateInfo, error)
}

func (r *RegistryService) CrateInfo(ctx context.Context, name string) (*cratedoc.CrateInfo, error) {
	return r.CrateInfoFn(ctx, name)
}
