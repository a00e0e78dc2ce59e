package serp

import "context"

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}

// SeenSet remembers result URLs across pages of a session.
type SeenSet interface {
	// TestAndAdd reports whether the URL was seen before and records it.
	// False positives are possible; false negatives are not.
	TestAndAdd(url string) bool
}
