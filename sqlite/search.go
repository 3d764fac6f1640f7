package sqlite

import (
	"context"
	"encoding/json"
	"time"

	"github.com/fwojciec/dealscope"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ dealscope.SavedSearchService = (*SavedSearchService)(nil)

// SavedSearchService implements dealscope.SavedSearchService using SQLite.
type SavedSearchService struct {
	db *DB
}

// NewSavedSearchService creates a new SavedSearchService.
func NewSavedSearchService(db *DB) *SavedSearchService {
	return &SavedSearchService{db: db}
}

// CreateSavedSearch creates a new saved search. Duplicate searches are
// permitted; no uniqueness constraint applies.
func (s *SavedSearchService) CreateSavedSearch(ctx context.Context, search *dealscope.SavedSearch) error {
	search.ID = uuid.New().String()
	search.CreatedAt = time.Now().UTC()
	if search.Name == "" {
		search.Name = dealscope.SavedSearchName(search.Filters)
	}

	filters, err := json.Marshal(search.Filters)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO saved_searches (id, name, filters, created_at)
		VALUES (?, ?, ?, ?)
	`, search.ID, search.Name, string(filters), search.CreatedAt.Format(time.RFC3339))

	return err
}

// FindSavedSearches retrieves all saved searches in creation order.
// A saved search whose stored filter blob is corrupt is returned with
// empty filters rather than surfacing an error.
func (s *SavedSearchService) FindSavedSearches(ctx context.Context) ([]*dealscope.SavedSearch, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, filters, created_at
		FROM saved_searches
		ORDER BY created_at, id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var searches []*dealscope.SavedSearch
	for rows.Next() {
		var search dealscope.SavedSearch
		var filters, createdAt string

		if err := rows.Scan(&search.ID, &search.Name, &filters, &createdAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(filters), &search.Filters); err != nil {
			search.Filters = dealscope.CompanyFilter{}
		}
		if search.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
			return nil, err
		}
		searches = append(searches, &search)
	}

	return searches, rows.Err()
}

// DeleteSavedSearch removes a saved search.
func (s *SavedSearchService) DeleteSavedSearch(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM saved_searches WHERE id = ?`, id)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return dealscope.Errorf(dealscope.ENOTFOUND, "saved search not found")
	}
	return nil
}
