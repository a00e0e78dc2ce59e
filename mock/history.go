package mock

import (
	"context"

	"github.com/fwojciec/serp"
)

var _ serp.HistoryService = (*HistoryService)(nil)

// HistoryService is a mock implementation of serp.HistoryService.
type HistoryService struct {
	CreateSearchFn   func(ctx context.Context, search *serp.Search) error
	FindSearchByIDFn func(ctx context.Context, id string) (*serp.Search, error)
	FindSearchesFn   func(ctx context.Context, filter serp.SearchFilter) ([]*serp.Search, error)
	DeleteSearchFn   func(ctx context.Context, id string) error
	ClearHistoryFn   func(ctx context.Context) error
}

func (s *HistoryService) CreateSearch(ctx context.Context, search *serp.Search) error {
	return s.CreateSearchFn(ctx, search)
}

func (s *HistoryService) FindSearchByID(ctx context.Context, id string) (*serp.Search, error) {
	return s.FindSearchByIDFn(ctx, id)
}

func (s *HistoryService) FindSearches(ctx context.Context, filter serp.SearchFilter) ([]*serp.Search, error) {
	return s.FindSearchesFn(ctx, filter)
}

func (s *HistoryService) DeleteSearch(ctx context.Context, id string) error {
	return s.DeleteSearchFn(ctx, id)
}

func (s *HistoryService) ClearHistory(ctx context.Context) error {
	return s.ClearHistoryFn(ctx)
}
