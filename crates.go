package cratedoc

import (
	"context"
	"time"
)

// CrateInfo is the registry metadata for one published crate.
type CrateInfo struct {
	Name           string
	NewestVersion  string
	Description    string
	CrateSize      int
	Downloads      int
	RecentDownloads int
	CreatedAt      time.Time
	UpdatedAt      time.Time
	Homepage       string
	Documentation  string
	Repository     string
	License        string
	Keywords       []string
	Categories     []string
	Owners         []CrateOwner
	Dependencies   int
	DevDependencies int
}

// CrateOwner is one registry user owning a crate.
type CrateOwner struct {
	Name string
	URL  string
}

// RegistryService looks up crate metadata from the package registry.
type RegistryService interface {
	// CrateInfo fetches registry metadata for the named crate.
	// Returns ENOTFOUND if the registry does not know the crate.
	CrateInfo(ctx context.Context, name string) (*CrateInfo, error)
}
