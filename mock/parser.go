package mock

import (
	"io"

	"github.com/fwojciec/serp"
)

var _ serp.Parser = (*Parser)(nil)

// Parser is a mock implementation of serp.Parser.
type Parser struct {
	ParseFn func(r io.Reader) (*serp.ParseResult, error)
}

func (p *Parser) Parse(r io.Reader) (*serp.ParseResult, error) {
	return p.ParseFn(r)
}
