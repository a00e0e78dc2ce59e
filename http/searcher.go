package http

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/fwojciec/serp"
)

// Ensure Searcher implements serp.Searcher at compile time.
var _ serp.Searcher = (*Searcher)(nil)

// Searcher queries Google's basic HTML result page and parses it.
type Searcher struct {
	opts      *options
	newParser func(news bool) serp.Parser
	detector  serp.PageDetector
}

// NewSearcher creates a Searcher. newParser is called once per request
// with the query's news flag. detector explains empty result pages and may
// be nil.
func NewSearcher(newParser func(news bool) serp.Parser, detector serp.PageDetector, opts ...Option) *Searcher {
	return &Searcher{
		opts:      newOptions(opts),
		newParser: newParser,
		detector:  detector,
	}
}

// URL returns the request URL for the query.
func (s *Searcher) URL(q *serp.Query) string {
	base := s.opts.baseURL
	if base == "" {
		base = "https://www.google." + q.TLD
	}

	v := url.Values{}
	v.Set("ie", "UTF-8")
	v.Set("oe", "UTF-8")
	v.Set("gbv", "1")
	v.Set("num", strconv.Itoa(q.Num))
	if q.Start > 0 {
		v.Set("start", strconv.Itoa(q.Start))
	}
	if q.Lang != "" {
		v.Set("hl", q.Lang)
	}
	if q.News {
		v.Set("tbm", "nws")
	}
	if q.Exact {
		v.Set("nfpr", "1")
	}
	if q.Duration != "" {
		v.Set("tbs", "qdr:"+q.Duration)
	}
	v.Set("q", q.Keywords())

	return base + "/search?" + v.Encode()
}

// Search fetches one page of results for q.
//
// Returns EBLOCKED when Google rate limits the client or serves a captcha
// or consent page instead of results. A malformed page returns the results
// parsed so far with an EMALFORMED error.
func (s *Searcher) Search(ctx context.Context, q *serp.Query) (*serp.ResultPage, error) {
	query := *q
	query.Normalize()
	if err := query.Validate(); err != nil {
		return nil, err
	}

	reqURL := s.URL(&query)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", s.opts.userAgent)
	req.Header.Set("Accept", "text/html")
	req.Header.Set("Accept-Encoding", "gzip")
	if query.Lang != "" {
		req.Header.Set("Accept-Language", query.Lang)
	}

	resp, err := s.opts.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("searching %q: %w", query.Terms, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusTooManyRequests, http.StatusServiceUnavailable:
		return nil, serp.Errorf(serp.EBLOCKED, "HTTP %d for %s: too many requests, try again later", resp.StatusCode, reqURL)
	default:
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, reqURL)
	}

	body, err := readBody(resp)
	if err != nil {
		return nil, err
	}

	page := &serp.ResultPage{
		Query:      query,
		URL:        reqURL,
		SearchedAt: time.Now(),
	}

	result, err := s.newParser(query.News).Parse(bytes.NewReader(body))
	if result != nil {
		page.Results = result.Results
		page.Skipped = result.Skipped
	}
	if err != nil {
		return page, err
	}

	if len(page.Results) == 0 && s.detector != nil {
		switch s.detector.Detect(string(body)) {
		case serp.PageBlocked:
			return nil, serp.Errorf(serp.EBLOCKED, "Google flagged unusual traffic and asked for a captcha")
		case serp.PageConsent:
			return nil, serp.Errorf(serp.EBLOCKED, "Google asked for cookie consent instead of serving results")
		}
	}

	return page, nil
}
