// Package search drives an interactive search session: paging through
// results, fetching several pages at once and recording what was seen.
package search

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/serp"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of pages FetchPages requests at once.
const DefaultConcurrency = 2

// Session pages through the results of one query at a time.
// A Session is not safe for concurrent use.
type Session struct {
	Searcher serp.Searcher

	// Optional collaborators. A nil Limiter doesn't limit, a nil History
	// records nothing and a nil Seen disables cross-page deduplication.
	Limiter serp.DomainLimiter
	History serp.HistoryService
	Seen    serp.SeenSet
	Logger  *slog.Logger

	RetryDelays []time.Duration
	Concurrency int

	// Query is the query of the current page. Search, Next, Prev and
	// First update it only when a page is fetched.
	Query serp.Query

	page *serp.ResultPage
}

// Page returns the most recently fetched page, or nil.
func (s *Session) Page() *serp.ResultPage {
	return s.page
}

// Search starts over with a new query and fetches its first page.
// The session keeps its current query if the search fails.
func (s *Session) Search(ctx context.Context, q serp.Query) (*serp.ResultPage, error) {
	q.Normalize()
	if err := q.Validate(); err != nil {
		return nil, err
	}
	return s.fetch(ctx, q)
}

// Fetch runs the current query.
//
// A page with a malformed character reference is returned with the
// results parsed before it, together with the EMALFORMED error.
func (s *Session) Fetch(ctx context.Context) (*serp.ResultPage, error) {
	return s.fetch(ctx, s.Query)
}

// Next fetches the following page.
func (s *Session) Next(ctx context.Context) (*serp.ResultPage, error) {
	return s.fetch(ctx, s.Query.Next())
}

// Prev fetches the preceding page.
// Returns EINVALID if the session is already on the first page.
func (s *Session) Prev(ctx context.Context) (*serp.ResultPage, error) {
	if s.Query.Start == 0 {
		return nil, serp.Errorf(serp.EINVALID, "already at the first page")
	}
	return s.fetch(ctx, s.Query.Prev())
}

// First fetches the first page of the current query.
func (s *Session) First(ctx context.Context) (*serp.ResultPage, error) {
	q := s.Query
	q.Start = 0
	return s.fetch(ctx, q)
}

// fetch runs q and makes it the current query once a page, possibly
// partial, comes back. On failure the session stays where it was.
func (s *Session) fetch(ctx context.Context, q serp.Query) (*serp.ResultPage, error) {
	q.Normalize()
	page, err := s.fetchPage(ctx, q)
	if page == nil {
		return nil, err
	}

	s.dedupe(page)
	s.Query = q
	s.page = page
	return page, err
}

// FetchPages fetches n consecutive pages starting at the current query,
// up to Concurrency at a time, and returns them in page order. The session
// ends up on the last page. The first failing page cancels the rest.
func (s *Session) FetchPages(ctx context.Context, n int) ([]*serp.ResultPage, error) {
	if n < 1 {
		return nil, serp.Errorf(serp.EINVALID, "page count must be at least 1")
	}
	s.Query.Normalize()
	if err := s.Query.Validate(); err != nil {
		return nil, err
	}

	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	queries := make([]serp.Query, n)
	queries[0] = s.Query
	for i := 1; i < n; i++ {
		queries[i] = queries[i-1].Next()
	}

	pages := make([]*serp.ResultPage, n)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, q := range queries {
		g.Go(func() error {
			page, err := s.fetchPage(gctx, q)
			if serp.ErrorCode(err) == serp.EMALFORMED && page != nil {
				// Keep the partial page; the others are still usable.
				err = nil
			}
			pages[i] = page
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Deduplicate in page order so the outcome doesn't depend on timing.
	for _, page := range pages {
		s.dedupe(page)
	}
	s.Query = queries[n-1]
	s.page = pages[n-1]
	return pages, nil
}

// fetchPage rate limits, searches with retry and records the page in
// history. It does not touch session state and is safe to call from
// several goroutines.
func (s *Session) fetchPage(ctx context.Context, q serp.Query) (*serp.ResultPage, error) {
	if s.Limiter != nil {
		if err := s.Limiter.Wait(ctx, Host(&q)); err != nil {
			return nil, err
		}
	}

	delays := s.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	page, err := SearchWithRetry(ctx, &q, s.Searcher.Search, s.Logger, delays)
	if err != nil {
		if page != nil {
			s.logger().Warn("partial result page",
				"terms", q.Terms,
				"start", q.Start,
				"results", len(page.Results),
				"err", err,
			)
		}
		return page, err
	}

	s.record(ctx, page)
	return page, nil
}

// record saves the page in history. Failures are logged and otherwise
// ignored; history never fails a search.
func (s *Session) record(ctx context.Context, page *serp.ResultPage) {
	if s.History == nil {
		return
	}
	if err := s.History.CreateSearch(ctx, serp.NewSearch(page)); err != nil {
		s.logger().Warn("recording search history",
			"terms", page.Query.Terms,
			"err", err,
		)
	}
}

// dedupe drops results whose URL was already shown in this session.
// Remaining results keep their original index.
func (s *Session) dedupe(page *serp.ResultPage) {
	if s.Seen == nil {
		return
	}
	kept := page.Results[:0:0]
	for _, r := range page.Results {
		if !s.Seen.TestAndAdd(r.URL) {
			kept = append(kept, r)
		}
	}
	page.Results = kept
}

func (s *Session) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return s.Logger
}

// Host returns the search host a query is sent to.
func Host(q *serp.Query) string {
	tld := q.TLD
	if tld == "" {
		tld = serp.DefaultTLD
	}
	return "www.google." + tld
}
