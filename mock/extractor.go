package mock

import (
	"github.com/rdocs/cratedoc"
)

var _ cratedoc.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of cratedoc.Extractor.
type Extractor struct {
	ExtractFn func(html string, candidate cratedoc.Candidate) (*cratedoc.Document, bool, error)
}

func (e *Extractor) Extract(html string, candidate cratedoc.Candidate) (*cratedoc.Document, bool, error) {
	return e.ExtractFn(html, candidate)
}
