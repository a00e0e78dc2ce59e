// Package readability extracts articles with the Readability algorithm. It
// serves as the fallback extractor for pages trafilatura can't handle.
package readability

import (
	"net/url"
	"strings"

	"github.com/fwojciec/serp"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements serp.Extractor at compile time.
var _ serp.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct {
	pageURL *url.URL
}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// NewExtractorForURL creates an Extractor that resolves relative links
// against the page URL.
func NewExtractorForURL(pageURL string) (*Extractor, error) {
	u, err := url.Parse(pageURL)
	if err != nil {
		return nil, serp.Errorf(serp.EINVALID, "invalid URL %q: %v", pageURL, err)
	}
	return &Extractor{pageURL: u}, nil
}

// Extract processes raw HTML and returns the main content.
// Returns ENOTFOUND when the page has no readable article.
func (e *Extractor) Extract(rawHTML string) (*serp.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, serp.Errorf(serp.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), e.pageURL)
	if err != nil {
		return nil, serp.Errorf(serp.ENOTFOUND, "no readable content: %v", err)
	}
	if strings.TrimSpace(article.TextContent) == "" {
		return nil, serp.Errorf(serp.ENOTFOUND, "no readable content")
	}

	return &serp.ExtractResult{
		Title:       strings.TrimSpace(article.Title),
		ContentHTML: article.Content,
	}, nil
}
