package mock

import "github.com/fwojciec/serp"

var _ serp.Converter = (*Converter)(nil)

// Converter is a mock implementation of serp.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
