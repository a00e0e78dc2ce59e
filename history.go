package serp

import (
	"context"
	"time"
)

// Search represents one recorded search in the history. It keeps every
// query option that changes the results.
type Search struct {
	ID string `json:"id"`

	// Key groups repeated runs of the same query. Set by the HistoryService.
	Key string `json:"key"`

	Terms     string    `json:"terms"`
	Start     int       `json:"start"`
	Num       int       `json:"num"`
	News      bool      `json:"news"`
	TLD       string    `json:"tld"`
	Lang      string    `json:"lang,omitempty"`
	Exact     bool      `json:"exact,omitempty"`
	Duration  string    `json:"duration,omitempty"`
	Skipped   int       `json:"skipped"`
	Results   []*Result `json:"results"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewSearch builds a history entry from a fetched page.
func NewSearch(page *ResultPage) *Search {
	return &Search{
		Terms:    page.Query.Keywords(),
		Start:    page.Query.Start,
		Num:      page.Query.Num,
		News:     page.Query.News,
		TLD:      page.Query.TLD,
		Lang:     page.Query.Lang,
		Exact:    page.Query.Exact,
		Duration: page.Query.Duration,
		Skipped:  page.Skipped,
		Results:  page.Results,
	}
}

// Validate returns an error if the search contains invalid fields.
func (s *Search) Validate() error {
	if s.Terms == "" {
		return Errorf(EINVALID, "search terms required")
	}
	if s.Start < 0 {
		return Errorf(EINVALID, "search start must not be negative")
	}
	return nil
}

// HistoryService represents a service for managing recorded searches.
type HistoryService interface {
	// CreateSearch records a search together with its results.
	CreateSearch(ctx context.Context, search *Search) error

	// FindSearchByID retrieves a search and its results by ID.
	// Returns ENOTFOUND if the search does not exist.
	FindSearchByID(ctx context.Context, id string) (*Search, error)

	// FindSearches retrieves searches matching the filter, newest first.
	// Results are not loaded.
	FindSearches(ctx context.Context, filter SearchFilter) ([]*Search, error)

	// DeleteSearch permanently removes a search and its results.
	// Returns ENOTFOUND if the search does not exist.
	DeleteSearch(ctx context.Context, id string) error

	// ClearHistory removes all searches.
	ClearHistory(ctx context.Context) error
}

// SearchFilter represents a filter for FindSearches.
type SearchFilter struct {
	ID    *string `json:"id"`
	Key   *string `json:"key"`
	Terms *string `json:"terms"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
