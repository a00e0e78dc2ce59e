package http

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/serp"
	"golang.org/x/net/html/charset"
)

// Ensure SuggestService implements serp.Suggester.
var _ serp.Suggester = (*SuggestService)(nil)

// DefaultSuggestURL is the host queried for completions.
const DefaultSuggestURL = "https://www.google.com"

// SuggestService fetches query completions from Google's toolbar
// completion endpoint.
type SuggestService struct {
	opts *options
}

// NewSuggestService creates a new SuggestService.
func NewSuggestService(opts ...Option) *SuggestService {
	return &SuggestService{opts: newOptions(opts)}
}

// Suggest returns completions for prefix in the order Google ranks them.
// Returns an empty slice (not nil) when there are none.
func (s *SuggestService) Suggest(ctx context.Context, prefix string) ([]string, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return nil, serp.Errorf(serp.EINVALID, "suggestion prefix required")
	}

	base := s.opts.baseURL
	if base == "" {
		base = DefaultSuggestURL
	}
	v := url.Values{}
	v.Set("output", "toolbar")
	v.Set("ie", "utf-8")
	v.Set("oe", "utf-8")
	v.Set("q", prefix)
	targetURL := base + "/complete/search?" + v.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", s.opts.userAgent)
	req.Header.Set("Accept-Encoding", "gzip")

	resp, err := s.opts.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, targetURL)
	}

	body, err := readBody(resp)
	if err != nil {
		return nil, err
	}

	return parseSuggestions(body)
}

// parseSuggestions extracts toplevel/CompleteSuggestion/suggestion@data.
func parseSuggestions(body []byte) ([]string, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.CharsetReader = charset.NewReaderLabel
	if _, err := doc.ReadFrom(bytes.NewReader(body)); err != nil {
		return nil, fmt.Errorf("parsing suggestion XML: %w", err)
	}

	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("empty suggestion XML")
	}

	suggestions := []string{}
	for _, cs := range root.SelectElements("CompleteSuggestion") {
		el := cs.SelectElement("suggestion")
		if el == nil {
			continue
		}
		if data := strings.TrimSpace(el.SelectAttrValue("data", "")); data != "" {
			suggestions = append(suggestions, data)
		}
	}
	return suggestions, nil
}
