// Package http provides HTTP-based implementations of the cratedoc
// network collaborators: the documentation origin locator, the
// speculative page fetcher, and the crates.io registry client.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/rdocs/cratedoc"
	"golang.org/x/time/rate"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultUserAgent identifies cratedoc to the documentation host.
const DefaultUserAgent = "cratedoc/0.1"

// Ensure Fetcher implements cratedoc.PageFetcher at compile time.
var _ cratedoc.PageFetcher = (*Fetcher)(nil)

// Fetcher retrieves documentation pages over HTTP. Requests are rate
// limited so a six-way speculative fan-out does not hammer the host.
type Fetcher struct {
	client    *http.Client
	limiter   *rate.Limiter
	timeout   time.Duration
	userAgent string
}

// FetcherOption configures a Fetcher.
type FetcherOption func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) FetcherOption {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithRateLimit caps requests per second to the documentation host.
// A burst of at least the candidate fan-out width (6) keeps one
// resolution from serializing on the limiter.
func WithRateLimit(rps float64, burst int) FetcherOption {
	return func(f *Fetcher) {
		f.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) FetcherOption {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new page Fetcher.
func NewFetcher(opts ...FetcherOption) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}
	f.client = &http.Client{Timeout: f.timeout}
	return f
}

// Fetch retrieves the page at url. A non-2xx status means the
// speculative candidate does not exist at this origin and is reported
// as found=false; only transport-level failures return an error.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, bool, error) {
	if f.limiter != nil {
		if err := f.limiter.Wait(ctx); err != nil {
			return "", false, cratedoc.Errorf(cratedoc.EUNAVAILABLE, "rate limit wait: %v", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", false, cratedoc.Errorf(cratedoc.EINVALID, "invalid page URL %q: %v", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", false, cratedoc.Errorf(cratedoc.EUNAVAILABLE, "fetch %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", false, nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", false, cratedoc.Errorf(cratedoc.EUNAVAILABLE, "read %s: %v", url, err)
	}

	return string(body), true, nil
}
