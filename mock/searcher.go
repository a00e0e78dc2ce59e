package mock

import (
	"context"

	"github.com/fwojciec/serp"
)

var (
	_ serp.Searcher     = (*Searcher)(nil)
	_ serp.Suggester    = (*Suggester)(nil)
	_ serp.PageDetector = (*PageDetector)(nil)
	_ serp.Opener       = (*Opener)(nil)
)

// Searcher is a mock implementation of serp.Searcher.
type Searcher struct {
	SearchFn func(ctx context.Context, q *serp.Query) (*serp.ResultPage, error)
}

func (s *Searcher) Search(ctx context.Context, q *serp.Query) (*serp.ResultPage, error) {
	return s.SearchFn(ctx, q)
}

// Suggester is a mock implementation of serp.Suggester.
type Suggester struct {
	SuggestFn func(ctx context.Context, prefix string) ([]string, error)
}

func (s *Suggester) Suggest(ctx context.Context, prefix string) ([]string, error) {
	return s.SuggestFn(ctx, prefix)
}

// PageDetector is a mock implementation of serp.PageDetector.
type PageDetector struct {
	DetectFn func(html string) serp.PageKind
}

func (d *PageDetector) Detect(html string) serp.PageKind {
	return d.DetectFn(html)
}

// Opener is a mock implementation of serp.Opener.
type Opener struct {
	OpenFn func(url string) error
}

func (o *Opener) Open(url string) error {
	return o.OpenFn(url)
}
