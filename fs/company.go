// Package fs provides a file-backed, read-only company directory.
// The seed dataset is a static JSON file loaded once at startup; a default
// dataset is embedded in the binary.
package fs

import (
	"context"
	_ "embed"
	"encoding/json"
	"os"

	"github.com/fwojciec/dealscope"
)

//go:embed companies.json
var defaultSeed []byte

// Ensure CompanyService implements dealscope.CompanyService at compile time.
var _ dealscope.CompanyService = (*CompanyService)(nil)

// CompanyService serves companies from a JSON seed file. The dataset is
// immutable after load, so the service is safe for concurrent use.
type CompanyService struct {
	companies []*dealscope.Company
	byID      map[string]*dealscope.Company
	facets    *dealscope.CompanyFacets
}

// NewCompanyService loads the seed dataset from path. An empty path loads
// the embedded default dataset.
func NewCompanyService(path string) (*CompanyService, error) {
	data := defaultSeed
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, dealscope.Errorf(dealscope.EINVALID, "failed to read seed file %q: %v", path, err)
		}
	}
	return newCompanyService(data)
}

func newCompanyService(data []byte) (*CompanyService, error) {
	var companies []*dealscope.Company
	if err := json.Unmarshal(data, &companies); err != nil {
		return nil, dealscope.Errorf(dealscope.EINVALID, "failed to parse seed data: %v", err)
	}

	byID := make(map[string]*dealscope.Company, len(companies))
	for _, c := range companies {
		if c.ID == "" {
			return nil, dealscope.Errorf(dealscope.EINVALID, "seed company %q has no id", c.Name)
		}
		if _, ok := byID[c.ID]; ok {
			return nil, dealscope.Errorf(dealscope.EINVALID, "duplicate seed company id %q", c.ID)
		}
		byID[c.ID] = c
	}

	return &CompanyService{
		companies: companies,
		byID:      byID,
		facets:    dealscope.ComputeFacets(companies),
	}, nil
}

// FindCompanyByID retrieves a company by ID.
func (s *CompanyService) FindCompanyByID(_ context.Context, id string) (*dealscope.Company, error) {
	c, ok := s.byID[id]
	if !ok {
		return nil, dealscope.Errorf(dealscope.ENOTFOUND, "company not found")
	}
	return c, nil
}

// FindCompanies retrieves companies matching the filter in seed order.
func (s *CompanyService) FindCompanies(_ context.Context, filter dealscope.CompanyFilter) ([]*dealscope.Company, error) {
	return dealscope.FilterCompanies(s.companies, filter), nil
}

// Facets returns the distinct categorical values in the directory.
func (s *CompanyService) Facets(_ context.Context) (*dealscope.CompanyFacets, error) {
	return s.facets, nil
}
