package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rdocs/cratedoc"
	"golang.org/x/sync/errgroup"
)

// DefaultRegistryURL is the crates.io API root.
const DefaultRegistryURL = "https://crates.io/api/v1"

// Ensure Registry implements cratedoc.RegistryService at compile time.
var _ cratedoc.RegistryService = (*Registry)(nil)

// Registry is a crates.io API client.
type Registry struct {
	client    *http.Client
	baseURL   string
	userAgent string
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithRegistryURL overrides the API root. Used in tests.
func WithRegistryURL(url string) RegistryOption {
	return func(r *Registry) {
		r.baseURL = strings.TrimSuffix(url, "/")
	}
}

// NewRegistry creates a new Registry client.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		baseURL:   DefaultRegistryURL,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.client = &http.Client{Timeout: DefaultFetchTimeout}
	return r
}

// Wire types for the crates.io API.

type crateResponse struct {
	Crate      crateSummary    `json:"crate"`
	Versions   []crateVersion  `json:"versions"`
	Keywords   []crateKeyword  `json:"keywords"`
	Categories []crateCategory `json:"categories"`
}

type crateSummary struct {
	Name            string    `json:"name"`
	UpdatedAt       time.Time `json:"updated_at"`
	CreatedAt       time.Time `json:"created_at"`
	Downloads       int       `json:"downloads"`
	RecentDownloads int       `json:"recent_downloads"`
	NewestVersion   string    `json:"newest_version"`
	Description     string    `json:"description"`
	Homepage        string    `json:"homepage"`
	Documentation   string    `json:"documentation"`
	Repository      string    `json:"repository"`
}

type crateVersion struct {
	Version   string `json:"num"`
	CrateSize int    `json:"crate_size"`
	License   string `json:"license"`
}

type crateOwnerResponse struct {
	Users []crateUser `json:"users"`
}

type crateUser struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type crateDependencies struct {
	Dependencies []crateDependency `json:"dependencies"`
}

type crateDependency struct {
	Kind string `json:"kind"`
}

// CrateInfo fetches registry metadata for the named crate. The summary
// and owner endpoints are queried concurrently; the dependency counts
// need the newest version and follow after.
func (r *Registry) CrateInfo(ctx context.Context, name string) (*cratedoc.CrateInfo, error) {
	var summary crateResponse
	var owners crateOwnerResponse

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return r.getJSON(gctx, fmt.Sprintf("%s/crates/%s", r.baseURL, name), name, &summary)
	})
	g.Go(func() error {
		return r.getJSON(gctx, fmt.Sprintf("%s/crates/%s/owner_user", r.baseURL, name), name, &owners)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var newest *crateVersion
	for i := range summary.Versions {
		if summary.Versions[i].Version == summary.Crate.NewestVersion {
			newest = &summary.Versions[i]
			break
		}
	}
	if newest == nil {
		return nil, cratedoc.Errorf(cratedoc.ENOTFOUND, "crate %q has no published version", name)
	}

	var deps crateDependencies
	depsURL := fmt.Sprintf("%s/crates/%s/%s/dependencies", r.baseURL, name, summary.Crate.NewestVersion)
	if err := r.getJSON(ctx, depsURL, name, &deps); err != nil {
		return nil, err
	}
	devCount := 0
	for _, d := range deps.Dependencies {
		if d.Kind == "dev" {
			devCount++
		}
	}

	info := &cratedoc.CrateInfo{
		Name:            summary.Crate.Name,
		NewestVersion:   summary.Crate.NewestVersion,
		Description:     summary.Crate.Description,
		CrateSize:       newest.CrateSize,
		Downloads:       summary.Crate.Downloads,
		RecentDownloads: summary.Crate.RecentDownloads,
		CreatedAt:       summary.Crate.CreatedAt,
		UpdatedAt:       summary.Crate.UpdatedAt,
		Homepage:        summary.Crate.Homepage,
		Documentation:   summary.Crate.Documentation,
		Repository:      summary.Crate.Repository,
		License:         newest.License,
		Owners:          make([]cratedoc.CrateOwner, 0, len(owners.Users)),
		Dependencies:    len(deps.Dependencies) - devCount,
		DevDependencies: devCount,
	}
	for _, u := range owners.Users {
		info.Owners = append(info.Owners, cratedoc.CrateOwner{Name: u.Name, URL: u.URL})
	}
	for _, k := range summary.Keywords {
		info.Keywords = append(info.Keywords, k.Keyword)
	}
	for _, c := range summary.Categories {
		info.Categories = append(info.Categories, c.Category)
	}

	return info, nil
}

type crateKeyword struct {
	Keyword string `json:"keyword"`
}

type crateCategory struct {
	Category string `json:"category"`
}

// getJSON issues a GET and decodes the JSON response. A 4xx status maps
// to ENOTFOUND; other non-2xx statuses map to EUNAVAILABLE.
func (r *Registry) getJSON(ctx context.Context, url, crate string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return cratedoc.Errorf(cratedoc.EINVALID, "invalid registry URL %q: %v", url, err)
	}
	req.Header.Set("User-Agent", r.userAgent)

	resp, err := r.client.Do(req)
	if err != nil {
		return cratedoc.Errorf(cratedoc.EUNAVAILABLE, "registry request %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 && resp.StatusCode < 500 {
		return cratedoc.Errorf(cratedoc.ENOTFOUND, "crate %q not found", crate)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return cratedoc.Errorf(cratedoc.EUNAVAILABLE, "registry returned %d for %s", resp.StatusCode, url)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return cratedoc.Errorf(cratedoc.EINTERNAL, "decode registry response: %v", err)
	}
	return nil
}
