package mock

import (
	"context"

	"github.com/fwojciec/dealscope"
)

var _ dealscope.SavedSearchService = (*SavedSearchService)(nil)

// SavedSearchService is a mock implementation of dealscope.SavedSearchService.
type SavedSearchService struct {
	CreateSavedSearchFn func(ctx context.Context, search *dealscope.SavedSearch) error
	FindSavedSearchesFn func(ctx context.Context) ([]*dealscope.SavedSearch, error)
	DeleteSavedSearchFn func(ctx context.Context, id string) error
}

func (s *SavedSearchService) CreateSavedSearch(ctx context.Context, search *dealscope.SavedSearch) error {
	return s.CreateSavedSearchFn(ctx, search)
}

func (s *SavedSearchService) FindSavedSearches(ctx context.Context) ([]*dealscope.SavedSearch, error) {
	return s.FindSavedSearchesFn(ctx)
}

func (s *SavedSearchService) DeleteSavedSearch(ctx context.Context, id string) error {
	return s.DeleteSavedSearchFn(ctx, id)
}
