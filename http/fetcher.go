package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/fwojciec/serp"
)

// Ensure Fetcher implements serp.Fetcher at compile time.
var _ serp.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content of pages linked from search results.
// It does not execute JavaScript.
type Fetcher struct {
	opts *options
}

// NewFetcher creates a new HTTP-based Fetcher. WithBaseURL has no effect.
func NewFetcher(opts ...Option) *Fetcher {
	return &Fetcher{opts: newOptions(opts)}
}

// Fetch retrieves the HTML content from the given URL.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", serp.Errorf(serp.EINVALID, "invalid URL %q", url)
	}
	req.Header.Set("User-Agent", f.opts.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")
	req.Header.Set("Accept-Encoding", "gzip")

	resp, err := f.opts.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", serp.Errorf(serp.ENOTFOUND, "page not found: %s", url)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := readBody(resp)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
