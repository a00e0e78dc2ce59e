package mock

import "github.com/fwojciec/serp"

var _ serp.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of serp.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*serp.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*serp.ExtractResult, error) {
	return e.ExtractFn(html)
}
