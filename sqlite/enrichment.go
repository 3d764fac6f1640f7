package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/fwojciec/dealscope"
)

// Compile-time interface verification.
var _ dealscope.EnrichmentCacheService = (*EnrichmentCacheService)(nil)

// EnrichmentCacheService implements dealscope.EnrichmentCacheService using
// SQLite. Entries live until overwritten or deleted; there is no expiry.
type EnrichmentCacheService struct {
	db *DB
}

// NewEnrichmentCacheService creates a new EnrichmentCacheService.
func NewEnrichmentCacheService(db *DB) *EnrichmentCacheService {
	return &EnrichmentCacheService{db: db}
}

// CachedEnrichment retrieves the cached enrichment for a company.
// A corrupt payload is treated as a cache miss.
func (s *EnrichmentCacheService) CachedEnrichment(ctx context.Context, companyID string) (*dealscope.Enrichment, error) {
	var payload string

	err := s.db.QueryRowContext(ctx, `
		SELECT payload
		FROM enrichments
		WHERE company_id = ?
	`, companyID).Scan(&payload)

	if err == sql.ErrNoRows {
		return nil, dealscope.Errorf(dealscope.ENOTFOUND, "enrichment not cached")
	}
	if err != nil {
		return nil, err
	}

	var enrichment dealscope.Enrichment
	if err := json.Unmarshal([]byte(payload), &enrichment); err != nil {
		return nil, dealscope.Errorf(dealscope.ENOTFOUND, "enrichment not cached")
	}

	return &enrichment, nil
}

// SaveEnrichment stores an enrichment, overwriting (not merging) any
// previous entry for the company.
func (s *EnrichmentCacheService) SaveEnrichment(ctx context.Context, companyID string, enrichment *dealscope.Enrichment, contentHash string) error {
	if companyID == "" {
		return dealscope.Errorf(dealscope.EINVALID, "company ID required")
	}

	payload, err := json.Marshal(enrichment)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO enrichments (company_id, payload, content_hash, enriched_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (company_id) DO UPDATE SET
			payload = excluded.payload,
			content_hash = excluded.content_hash,
			enriched_at = excluded.enriched_at
	`, companyID, string(payload), contentHash, time.Now().UTC().Format(time.RFC3339))

	return err
}

// DeleteEnrichment removes a cached enrichment, if present.
func (s *EnrichmentCacheService) DeleteEnrichment(ctx context.Context, companyID string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM enrichments WHERE company_id = ?`, companyID)
	return err
}
