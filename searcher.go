package serp

import "context"

// Searcher runs a query against the search engine.
type Searcher interface {
	// Search fetches and parses one page of results.
	// A non-nil page may be returned together with an error when the body
	// was only partially parsed.
	Search(ctx context.Context, q *Query) (*ResultPage, error)
}

// Suggester returns query completions for a prefix.
type Suggester interface {
	// Suggest returns completions in engine order.
	// Returns EINVALID if the prefix is empty.
	Suggest(ctx context.Context, prefix string) ([]string, error)
}

// PageKind classifies a response that produced no results.
type PageKind string

// PageKind constants.
const (
	PageUnknown PageKind = ""
	PageBlocked PageKind = "blocked"
	PageConsent PageKind = "consent"
	PageNoMatch PageKind = "no_match"
)

// PageDetector explains why a response yielded no results.
type PageDetector interface {
	// Detect inspects a raw HTML body and reports its kind.
	// Returns PageUnknown if nothing recognizable is found.
	Detect(html string) PageKind
}

// Opener opens a URL in an external program, usually a web browser.
type Opener interface {
	Open(url string) error
}
