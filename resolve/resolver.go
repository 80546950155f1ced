// Package resolve provides symbol path resolution orchestration.
// It coordinates origin location, speculative candidate fetching, and
// extraction to turn a symbol path into a structured document.
package resolve

import (
	"context"

	"github.com/rdocs/cratedoc"
	"golang.org/x/sync/errgroup"
)

// Resolver resolves symbol paths by trying every plausible page shape
// concurrently and keeping the first candidate that yields a document.
type Resolver struct {
	Locator   cratedoc.Locator
	Fetcher   cratedoc.PageFetcher
	Extractor cratedoc.Extractor
}

// candidateResult holds the outcome of probing a single candidate.
type candidateResult struct {
	priority int
	doc      *cratedoc.Document
	err      error
}

// Resolve parses the symbol path, locates the documentation origin for
// its crate, and probes all candidate page shapes concurrently. The
// first candidate to produce a document wins and outstanding probes are
// canceled; ties between shapes that land simultaneously go to the more
// specific shape. A transport failure observed before any candidate
// succeeds aborts the whole resolution.
func (r *Resolver) Resolve(ctx context.Context, path string) (*cratedoc.Document, error) {
	segments, err := cratedoc.ParsePath(path)
	if err != nil {
		return nil, err
	}

	origin, err := r.Locator.Locate(ctx, segments[0])
	if err != nil {
		return nil, err
	}

	candidates := cratedoc.Candidates(segments)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	resultCh := make(chan candidateResult, len(candidates))

	g, gctx := errgroup.WithContext(ctx)
	for i, candidate := range candidates {
		i, candidate := i, candidate
		g.Go(func() error {
			resultCh <- r.probe(gctx, i, candidate, origin)
			return nil
		})
	}

	var winner *cratedoc.Document
	winnerPriority := len(candidates)
	var transportErr error

	for received := 0; received < len(candidates); received++ {
		result := <-resultCh
		switch {
		case result.err != nil:
			// Errors caused by canceling the losers are expected and
			// carry no signal once an outcome has been decided.
			if winner == nil && transportErr == nil {
				transportErr = result.err
				cancel()
			}
		case result.doc != nil:
			if transportErr != nil {
				continue
			}
			if winner == nil || result.priority < winnerPriority {
				winner = result.doc
				winnerPriority = result.priority
			}
			cancel()
		}
	}
	_ = g.Wait()

	if transportErr != nil {
		return nil, transportErr
	}
	if winner == nil {
		return nil, cratedoc.Errorf(cratedoc.ENOTFOUND, "no documentation found for %q", path)
	}
	return winner, nil
}

// probe fetches and extracts a single candidate page shape. A missing
// page or a page that does not contain the candidate is reported as an
// absent result rather than an error.
func (r *Resolver) probe(ctx context.Context, priority int, candidate cratedoc.Candidate, origin cratedoc.Origin) candidateResult {
	result := candidateResult{priority: priority}

	html, found, err := r.Fetcher.Fetch(ctx, candidate.PageURL(origin))
	if err != nil {
		result.err = err
		return result
	}
	if !found {
		return result
	}

	doc, ok, err := r.Extractor.Extract(html, candidate)
	if err != nil {
		result.err = err
		return result
	}
	if !ok {
		return result
	}

	result.doc = doc
	return result
}

var _ cratedoc.Resolver = (*Resolver)(nil)
