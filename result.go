package serp

import (
	"io"
	"net/url"
	"strings"
	"time"
)

// Result represents one organic search hit.
type Result struct {
	// Index is the 1-based position among the results extracted from the
	// same response. Ads and malformed entries don't consume an index.
	Index   int    `json:"index"`
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
}

// Domain returns the host of the result URL without a leading "www.".
// Falls back to the raw URL when it can't be parsed.
func (r *Result) Domain() string {
	u, err := url.Parse(r.URL)
	if err != nil || u.Host == "" {
		return r.URL
	}
	return strings.TrimPrefix(u.Host, "www.")
}

// ParseResult holds the outcome of a single parse pass over a response body.
type ParseResult struct {
	Results []*Result `json:"results"`

	// Skipped counts result-shaped records discarded by the ad heuristic.
	Skipped int `json:"skipped"`
}

// Parser extracts search results from a response body.
type Parser interface {
	// Parse consumes the body in one pass and returns the extracted results.
	// If the body contains a malformed character reference inside a result
	// title or snippet, Parse returns the results completed so far together
	// with an EMALFORMED error.
	Parse(r io.Reader) (*ParseResult, error)
}

// ResultPage is one page of results for a query.
type ResultPage struct {
	Query      Query     `json:"query"`
	URL        string    `json:"url"`
	Results    []*Result `json:"results"`
	Skipped    int       `json:"skipped"`
	SearchedAt time.Time `json:"searchedAt"`
}

// Find returns the result with the given index, or nil if the page has none.
func (p *ResultPage) Find(index int) *Result {
	if p == nil {
		return nil
	}
	for _, r := range p.Results {
		if r.Index == index {
			return r
		}
	}
	return nil
}
