package dealscope

import (
	"context"
	"sort"
	"strings"
)

// FilterAll is the sentinel value for categorical filter predicates.
// A predicate set to FilterAll (or left empty) matches every company.
const FilterAll = "All"

// Company represents a single entry in the company directory. Companies are
// immutable seed data: loaded once at startup, never mutated or deleted.
type Company struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Industry    string `json:"industry"`
	Stage       string `json:"stage"`
	Location    string `json:"location"`
	URL         string `json:"url"`
}

// CompanyFilter represents the predicate tuple for directory filtering.
// All predicates are ANDed.
type CompanyFilter struct {
	// Keyword matches case-insensitively against name or description.
	// Empty matches all companies.
	Keyword string `json:"keyword"`

	// Stage, Industry, and Location require an exact match unless set to
	// FilterAll or left empty.
	Stage    string `json:"stage"`
	Industry string `json:"industry"`
	Location string `json:"location"`
}

// Matches reports whether the company satisfies every predicate.
func (f CompanyFilter) Matches(c *Company) bool {
	if f.Keyword != "" {
		kw := strings.ToLower(f.Keyword)
		if !strings.Contains(strings.ToLower(c.Name), kw) &&
			!strings.Contains(strings.ToLower(c.Description), kw) {
			return false
		}
	}
	if !matchesFacet(f.Stage, c.Stage) {
		return false
	}
	if !matchesFacet(f.Industry, c.Industry) {
		return false
	}
	if !matchesFacet(f.Location, c.Location) {
		return false
	}
	return true
}

func matchesFacet(want, have string) bool {
	return want == "" || want == FilterAll || want == have
}

// FilterCompanies returns the subsequence of companies matching the filter,
// preserving the original relative order. It is a pure function: the input
// slice is never modified.
func FilterCompanies(companies []*Company, filter CompanyFilter) []*Company {
	matched := make([]*Company, 0, len(companies))
	for _, c := range companies {
		if filter.Matches(c) {
			matched = append(matched, c)
		}
	}
	return matched
}

// CompanyFacets holds the distinct categorical values present in the
// directory, used to populate filter choices. Stages and industries keep
// first-appearance order; locations are sorted.
type CompanyFacets struct {
	Stages     []string `json:"stages"`
	Industries []string `json:"industries"`
	Locations  []string `json:"locations"`
}

// ComputeFacets derives the facets from a company collection.
func ComputeFacets(companies []*Company) *CompanyFacets {
	facets := &CompanyFacets{}
	seenStage := make(map[string]bool)
	seenIndustry := make(map[string]bool)
	seenLocation := make(map[string]bool)

	for _, c := range companies {
		if c.Stage != "" && !seenStage[c.Stage] {
			seenStage[c.Stage] = true
			facets.Stages = append(facets.Stages, c.Stage)
		}
		if c.Industry != "" && !seenIndustry[c.Industry] {
			seenIndustry[c.Industry] = true
			facets.Industries = append(facets.Industries, c.Industry)
		}
		if c.Location != "" && !seenLocation[c.Location] {
			seenLocation[c.Location] = true
			facets.Locations = append(facets.Locations, c.Location)
		}
	}
	sort.Strings(facets.Locations)
	return facets
}

// CompanyService represents read-only access to the company directory.
type CompanyService interface {
	// FindCompanyByID retrieves a company by ID.
	// Returns ENOTFOUND if the company does not exist.
	FindCompanyByID(ctx context.Context, id string) (*Company, error)

	// FindCompanies retrieves companies matching the filter, preserving
	// the directory's original order.
	FindCompanies(ctx context.Context, filter CompanyFilter) ([]*Company, error)

	// Facets returns the distinct categorical values in the directory.
	Facets(ctx context.Context) (*CompanyFacets, error)
}
