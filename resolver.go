package cratedoc

import "context"

// Origin is the base URL of a crate's generated documentation.
// Immutable, constructed once per resolution. BaseURL always ends
// with a slash.
type Origin struct {
	BaseURL string
}

// Locator determines the documentation origin for a crate name.
type Locator interface {
	// Locate returns the crate's documentation origin.
	// Returns ENOTFOUND if the crate has no published documentation.
	Locate(ctx context.Context, crate string) (Origin, error)
}

// PageFetcher retrieves a documentation page for a speculative candidate.
type PageFetcher interface {
	// Fetch issues the candidate's page request. A non-success HTTP
	// status means the candidate does not exist at this origin and is
	// reported as found=false, not as an error; only transport-level
	// failures produce an error.
	Fetch(ctx context.Context, url string) (html string, found bool, err error)
}

// Extractor turns a fetched page into a structured document for one
// candidate kind.
type Extractor interface {
	// Extract parses the page. Returns found=false when a kind-defining
	// element the extraction depends on is missing (e.g. the method
	// anchor on a shared struct page): the second disambiguation layer
	// beyond HTTP status.
	Extract(html string, candidate Candidate) (doc *Document, found bool, err error)
}

// Resolver disambiguates a symbol path into a single document.
type Resolver interface {
	// Resolve runs every syntactically plausible candidate for the path
	// and returns the winning document. Returns ENOTFOUND when the crate
	// is unknown or every candidate comes up absent; transport failures
	// propagate as errors.
	Resolve(ctx context.Context, path string) (*Document, error)
}
