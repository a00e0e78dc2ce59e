package html

import (
	"fmt"
	"io"

	"github.com/fwojciec/serp"
)

// Ensure Parser implements serp.Parser at compile time.
var _ serp.Parser = (*Parser)(nil)

// Parser extracts organic results from Google result pages.
// A Parser holds only configuration and may be used concurrently; every
// call to Parse runs a fresh state machine.
type Parser struct {
	news bool
}

// Option configures a Parser.
type Option func(*Parser)

// WithNews enables news extraction, which fuses standalone dashes in
// snippets ("Reuters - 2 hours ago") into commas.
func WithNews(news bool) Option {
	return func(p *Parser) {
		p.news = news
	}
}

// NewParser creates a new Parser.
func NewParser(opts ...Option) *Parser {
	p := &Parser{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse reads the whole body in a single pass and returns the results in
// document order. On a malformed character reference the pass stops and
// the results completed so far are returned with the EMALFORMED error.
func (p *Parser) Parse(r io.Reader) (*serp.ParseResult, error) {
	x := newExtractor(p.news)
	if err := Tokenize(r, x.handle); err != nil {
		if serp.ErrorCode(err) == serp.EMALFORMED {
			return x.result(), err
		}
		return x.result(), fmt.Errorf("tokenizing result page: %w", err)
	}
	return x.result(), nil
}
