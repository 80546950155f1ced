package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/rdocs/cratedoc"
)

// DefaultRedirectorURL is the documentation-hosting service queried for
// non-standard-library crates.
const DefaultRedirectorURL = "https://docs.rs"

// stdOrigin is the statically templated documentation root for
// standard-library crates; no network round trip is needed for these.
const stdOrigin = "https://doc.rust-lang.org/stable/"

// stdCrates is the fixed allow-list of standard-library crate names.
var stdCrates = map[string]struct{}{
	"alloc":      {},
	"core":       {},
	"proc_macro": {},
	"std":        {},
	"test":       {},
}

// Ensure Locator implements cratedoc.Locator at compile time.
var _ cratedoc.Locator = (*Locator)(nil)

// Locator resolves a crate name to its documentation origin. Standard
// library crates resolve statically; everything else goes through the
// redirector with redirect-following disabled, so the latest-version
// origin can be read off the Location header.
type Locator struct {
	client     *http.Client
	redirector string
	userAgent  string
	timeout    time.Duration
}

// LocatorOption configures a Locator.
type LocatorOption func(*Locator)

// WithRedirectorURL overrides the redirector base URL. Used in tests.
func WithRedirectorURL(url string) LocatorOption {
	return func(l *Locator) {
		l.redirector = strings.TrimSuffix(url, "/")
	}
}

// WithLocatorTimeout sets the timeout for the redirector request.
func WithLocatorTimeout(d time.Duration) LocatorOption {
	return func(l *Locator) {
		l.timeout = d
	}
}

// NewLocator creates a new Locator.
func NewLocator(opts ...LocatorOption) *Locator {
	l := &Locator{
		redirector: DefaultRedirectorURL,
		userAgent:  DefaultUserAgent,
		timeout:    DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(l)
	}
	l.client = &http.Client{
		Timeout: l.timeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	return l
}

// Locate returns the documentation origin for the crate.
// Returns ENOTFOUND if the redirector does not know the crate.
func (l *Locator) Locate(ctx context.Context, crate string) (cratedoc.Origin, error) {
	if _, ok := stdCrates[crate]; ok {
		return cratedoc.Origin{BaseURL: stdOrigin + crate + "/"}, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.redirector+"/"+crate, nil)
	if err != nil {
		return cratedoc.Origin{}, cratedoc.Errorf(cratedoc.EINVALID, "invalid crate name %q: %v", crate, err)
	}
	req.Header.Set("User-Agent", l.userAgent)

	resp, err := l.client.Do(req)
	if err != nil {
		return cratedoc.Origin{}, cratedoc.Errorf(cratedoc.EUNAVAILABLE, "locate %s: %v", crate, err)
	}
	defer resp.Body.Close()

	// The redirector answers a known crate with a redirect to its
	// latest-version documentation root. Anything else means the crate
	// has no published documentation.
	if resp.StatusCode != http.StatusFound {
		return cratedoc.Origin{}, cratedoc.Errorf(cratedoc.ENOTFOUND, "crate %q not found", crate)
	}

	location := resp.Header.Get("Location")
	if location == "" {
		return cratedoc.Origin{}, cratedoc.Errorf(cratedoc.ENOTFOUND, "crate %q not found", crate)
	}
	if ref, err := resp.Request.URL.Parse(location); err == nil {
		location = ref.String()
	}
	if !strings.HasSuffix(location, "/") {
		location += "/"
	}

	return cratedoc.Origin{BaseURL: location}, nil
}
