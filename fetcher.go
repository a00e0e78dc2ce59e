package serp

import "context"

// Fetcher retrieves HTML from URLs, such as articles linked from results.
type Fetcher interface {
	// Fetch requests the URL and returns the response body as HTML.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}
