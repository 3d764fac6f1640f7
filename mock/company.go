// Package mock provides function-field mock implementations of the
// dealscope service interfaces for testing.
package mock

import (
	"context"

	"github.com/fwojciec/dealscope"
)

var _ dealscope.CompanyService = (*CompanyService)(nil)

// CompanyService is a mock implementation of dealscope.CompanyService.
type CompanyService struct {
	FindCompanyByIDFn func(ctx context.Context, id string) (*dealscope.Company, error)
	FindCompaniesFn   func(ctx context.Context, filter dealscope.CompanyFilter) ([]*dealscope.Company, error)
	FacetsFn          func(ctx context.Context) (*dealscope.CompanyFacets, error)
}

func (s *CompanyService) FindCompanyByID(ctx context.Context, id string) (*dealscope.Company, error) {
	return s.FindCompanyByIDFn(ctx, id)
}

func (s *CompanyService) FindCompanies(ctx context.Context, filter dealscope.CompanyFilter) ([]*dealscope.Company, error) {
	return s.FindCompaniesFn(ctx, filter)
}

func (s *CompanyService) Facets(ctx context.Context) (*dealscope.CompanyFacets, error) {
	return s.FacetsFn(ctx)
}
