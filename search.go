package dealscope

import (
	"context"
	"fmt"
	"time"
)

// SavedSearch captures a filter predicate tuple so it can be re-run later.
// Saved searches are immutable once created, except for deletion. Duplicate
// saved searches are permitted.
type SavedSearch struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Filters   CompanyFilter `json:"filters"`
	CreatedAt time.Time     `json:"createdAt"`
}

// SavedSearchName synthesizes a display name from the active filter values.
// The location segment is only included when a location predicate is set.
func SavedSearchName(f CompanyFilter) string {
	keyword := f.Keyword
	if keyword == "" {
		keyword = FilterAll
	}
	stage := f.Stage
	if stage == "" {
		stage = FilterAll
	}
	industry := f.Industry
	if industry == "" {
		industry = FilterAll
	}
	name := fmt.Sprintf("Search: %s | %s | %s", keyword, stage, industry)
	if f.Location != "" && f.Location != FilterAll {
		name += fmt.Sprintf(" | Loc: %s", f.Location)
	}
	return name
}

// SavedSearchService represents a service for managing saved searches.
type SavedSearchService interface {
	// CreateSavedSearch creates a new saved search. The ID and creation
	// time are assigned by the service; if Name is empty it is
	// synthesized from the filter values.
	CreateSavedSearch(ctx context.Context, search *SavedSearch) error

	// FindSavedSearches retrieves all saved searches in creation order.
	FindSavedSearches(ctx context.Context) ([]*SavedSearch, error)

	// DeleteSavedSearch removes a saved search.
	// Returns ENOTFOUND if the saved search does not exist.
	DeleteSavedSearch(ctx context.Context, id string) error
}
