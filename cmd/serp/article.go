package main

import (
	"context"
	"fmt"
	"time"

	"github.com/fwojciec/serp"
)

// ArticleReader turns a result URL into a Markdown article.
type ArticleReader struct {
	Fetcher serp.Fetcher

	// Extractors and converters are created per page so relative links
	// resolve against the page URL.
	NewExtractor func(pageURL string) serp.Extractor
	NewConverter func(pageURL string) serp.Converter

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// Read fetches the page, extracts its main content and converts it to
// Markdown.
func (r *ArticleReader) Read(ctx context.Context, pageURL string) (*serp.Article, error) {
	html, err := r.Fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", pageURL, err)
	}

	extracted, err := r.NewExtractor(pageURL).Extract(html)
	if err != nil {
		return nil, fmt.Errorf("extracting %s: %w", pageURL, err)
	}
	if extracted.ContentHTML == "" {
		return nil, serp.Errorf(serp.ENOTFOUND, "no readable content at %s", pageURL)
	}

	content, err := r.NewConverter(pageURL).Convert(extracted.ContentHTML)
	if err != nil {
		return nil, fmt.Errorf("converting %s: %w", pageURL, err)
	}

	now := time.Now
	if r.Now != nil {
		now = r.Now
	}
	return &serp.Article{
		URL:       pageURL,
		Title:     extracted.Title,
		Content:   content,
		FetchedAt: now(),
	}, nil
}
