// Package bloom remembers result URLs shown during a session using a
// Bloom filter.
package bloom

import (
	"net/url"
	"strings"
	"sync"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/fwojciec/serp"
)

// Defaults for NewFilter, sized for a long interactive session.
const (
	DefaultCapacity = 10000
	DefaultFPRate   = 0.001
)

var _ serp.SeenSet = (*Filter)(nil)

// Filter is a concurrency-safe set of URLs backed by a Bloom filter.
// URLs are normalized first, so http://Example.com/a/ and
// https://example.com/a#top count as the same result.
type Filter struct {
	mu sync.Mutex
	f  *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected URLs
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// TestAndAdd reports whether the URL might have been added before and adds it.
// False positives are possible; false negatives are not.
func (f *Filter) TestAndAdd(rawURL string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.f.TestAndAddString(Normalize(rawURL))
}

// Test reports whether the URL might have been added, without adding it.
func (f *Filter) Test(rawURL string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.f.TestString(Normalize(rawURL))
}

// EstimatedCount returns the approximate number of URLs in the filter.
func (f *Filter) EstimatedCount() uint {
	f.mu.Lock()
	defer f.mu.Unlock()
	return uint(f.f.ApproximatedSize())
}

// Normalize reduces a URL to the form used for duplicate detection: scheme
// dropped, host lowercased without "www.", fragment and trailing slash
// removed. Unparseable URLs are returned as is.
func Normalize(rawURL string) string {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || u.Host == "" {
		return rawURL
	}
	host := strings.TrimPrefix(strings.ToLower(u.Host), "www.")
	path := strings.TrimSuffix(u.EscapedPath(), "/")

	s := host + path
	if u.RawQuery != "" {
		s += "?" + u.RawQuery
	}
	return s
}
