package mock

import (
	"github.com/rdocs/cratedoc"
)

var _ cratedoc.Converter = (*Converter)(nil)

// Converter is a mock implementation of cratedoc.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
