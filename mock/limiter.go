package mock

import (
	"context"

	"github.com/fwojciec/serp"
)

var (
	_ serp.DomainLimiter = (*DomainLimiter)(nil)
	_ serp.SeenSet       = (*SeenSet)(nil)
)

// DomainLimiter is a mock implementation of serp.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}

// SeenSet is a mock implementation of serp.SeenSet.
type SeenSet struct {
	TestAndAddFn func(url string) bool
}

func (s *SeenSet) TestAndAdd(url string) bool {
	return s.TestAndAddFn(url)
}
