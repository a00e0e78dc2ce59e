// Package trafilatura extracts the readable part of article pages linked
// from search results.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/serp"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements serp.Extractor at compile time.
var _ serp.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
// When trafilatura finds no content, the optional fallback extractor is
// tried before giving up.
type Extractor struct {
	fallback serp.Extractor
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithFallback sets an extractor used when trafilatura fails or returns
// no content.
func WithFallback(fallback serp.Extractor) Option {
	return func(e *Extractor) {
		e.fallback = fallback
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract processes raw HTML and returns the main content.
// Returns EINVALID for empty input.
func (e *Extractor) Extract(rawHTML string) (*serp.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, serp.Errorf(serp.EINVALID, "empty HTML input")
	}

	result, err := e.extract(rawHTML)
	if e.fallback != nil && (err != nil || result.ContentHTML == "") {
		fb, fbErr := e.fallback.Extract(rawHTML)
		if fbErr == nil && fb.ContentHTML != "" {
			if fb.Title == "" && result != nil {
				fb.Title = result.Title
			}
			return fb, nil
		}
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (e *Extractor) extract(rawHTML string) (*serp.ExtractResult, error) {
	opts := trafilatura.Options{
		EnableFallback:  true,
		ExcludeComments: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(result.Metadata.Title)

	// With nothing to extract, trafilatura still builds a body from the
	// page title, so emptiness is decided by the extracted text.
	var contentHTML string
	if hasContent(result.ContentText, title) && result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	return &serp.ExtractResult{
		Title:       title,
		ContentHTML: contentHTML,
	}, nil
}

func hasContent(text, title string) bool {
	text = strings.Join(strings.Fields(text), " ")
	return text != "" && text != strings.Join(strings.Fields(title), " ")
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
