package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/serp"
)

// Ensure LoggingSearcher implements serp.Searcher.
var _ serp.Searcher = (*LoggingSearcher)(nil)

// LoggingSearcher wraps a Searcher with debug logging.
type LoggingSearcher struct {
	next   serp.Searcher
	logger *slog.Logger
}

// NewLoggingSearcher creates a new LoggingSearcher.
func NewLoggingSearcher(next serp.Searcher, logger *slog.Logger) *LoggingSearcher {
	return &LoggingSearcher{next: next, logger: logger}
}

// Search delegates to the wrapped searcher and logs the request.
func (s *LoggingSearcher) Search(ctx context.Context, q *serp.Query) (page *serp.ResultPage, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"terms", q.Terms,
			"start", q.Start,
			"duration", time.Since(begin),
		}
		if page != nil {
			attrs = append(attrs,
				"url", page.URL,
				"results", len(page.Results),
				"skipped", page.Skipped,
			)
		}
		if err != nil {
			attrs = append(attrs, "err", err)
		}
		s.logger.Info("search", attrs...)
	}(time.Now())
	return s.next.Search(ctx, q)
}

// Ensure LoggingSuggester implements serp.Suggester.
var _ serp.Suggester = (*LoggingSuggester)(nil)

// LoggingSuggester wraps a Suggester with debug logging.
type LoggingSuggester struct {
	next   serp.Suggester
	logger *slog.Logger
}

// NewLoggingSuggester creates a new LoggingSuggester.
func NewLoggingSuggester(next serp.Suggester, logger *slog.Logger) *LoggingSuggester {
	return &LoggingSuggester{next: next, logger: logger}
}

// Suggest delegates to the wrapped suggester and logs the request.
func (s *LoggingSuggester) Suggest(ctx context.Context, prefix string) (suggestions []string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("suggest",
			"prefix", prefix,
			"count", len(suggestions),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Suggest(ctx, prefix)
}
