package main_test

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/fwojciec/serp"
	main "github.com/fwojciec/serp/cmd/serp"
	"github.com/fwojciec/serp/mock"
)

// noDelays disables retry backoff.
var noDelays = []time.Duration{0, 0, 0}

// pageFor returns a result page for the query with two results numbered
// after its start offset.
func pageFor(q *serp.Query) *serp.ResultPage {
	first := q.Start + 1
	return &serp.ResultPage{
		Query: *q,
		URL:   "https://www.google.com/search?q=" + q.Terms + fmt.Sprintf("&start=%d", q.Start),
		Results: []*serp.Result{
			{Index: 1, Title: fmt.Sprintf("%s result %d", q.Terms, first), URL: fmt.Sprintf("https://example.com/%s/%d", q.Terms, first), Snippet: "First snippet"},
			{Index: 2, Title: fmt.Sprintf("%s result %d", q.Terms, first+1), URL: fmt.Sprintf("https://example.com/%s/%d", q.Terms, first+1), Snippet: "Second snippet"},
		},
	}
}

// recordingSearcher returns pageFor pages and records every query.
type recordingSearcher struct {
	mu      sync.Mutex
	queries []serp.Query
}

func (s *recordingSearcher) Search(_ context.Context, q *serp.Query) (*serp.ResultPage, error) {
	s.mu.Lock()
	s.queries = append(s.queries, *q)
	s.mu.Unlock()
	return pageFor(q), nil
}

func (s *recordingSearcher) Queries() []serp.Query {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]serp.Query(nil), s.queries...)
}

// testDeps returns dependencies writing to buffers.
func testDeps(searcher serp.Searcher, stdin string) (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	return &main.Dependencies{
		Ctx:         context.Background(),
		Stdin:       strings.NewReader(stdin),
		Stdout:      stdout,
		Stderr:      stderr,
		Searcher:    searcher,
		RetryDelays: noDelays,
		Width:       80,
	}, stdout, stderr
}

// openRecorder returns an Opener that records opened URLs.
func openRecorder() (*mock.Opener, *[]string) {
	var opened []string
	return &mock.Opener{
		OpenFn: func(url string) error {
			opened = append(opened, url)
			return nil
		},
	}, &opened
}
