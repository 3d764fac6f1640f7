package dealscope

import (
	"context"
	"time"
)

// Source records where and when an enrichment's underlying page was fetched.
type Source struct {
	URL       string    `json:"url"`
	Timestamp time.Time `json:"timestamp"`
}

// Enrichment is the structured summary extracted from a company website by
// the language model. A new enrichment overwrites any previous one for the
// same company; there is no expiry.
type Enrichment struct {
	Summary    string   `json:"summary"`
	WhatTheyDo []string `json:"whatTheyDo"`
	Keywords   []string `json:"keywords"`
	Signals    []string `json:"signals"`
	Sources    []Source `json:"sources,omitempty"`
}

// Validate returns an error if the enrichment is missing the fields the
// rest of the system depends on. Model output that parses as JSON but lacks
// these fields is rejected rather than passed downstream.
func (e *Enrichment) Validate() error {
	if e.Summary == "" {
		return Errorf(EUNPROCESSABLE, "enrichment missing summary")
	}
	if len(e.WhatTheyDo) == 0 {
		return Errorf(EUNPROCESSABLE, "enrichment missing whatTheyDo entries")
	}
	return nil
}

// Analyzer turns extracted website text into a structured enrichment.
// Implementations prompt a hosted language model and parse its response.
type Analyzer interface {
	// Analyze summarizes the given website text.
	// Returns EUNAVAILABLE if the model call fails and EUNPROCESSABLE if
	// the model's output cannot be parsed or fails validation.
	Analyze(ctx context.Context, text string) (*Enrichment, error)
}

// EnrichmentService orchestrates the enrichment pipeline:
// fetch, extract, analyze, stamp provenance, cache.
type EnrichmentService interface {
	// EnrichCompany enriches the company's website and caches the result
	// keyed by company ID, overwriting any previous entry. Concurrent
	// calls for the same company coalesce into a single upstream request.
	// No cache entry is written on failure.
	EnrichCompany(ctx context.Context, companyID string) (*Enrichment, error)

	// EnrichURL runs the pipeline against an arbitrary URL without
	// touching the cache.
	EnrichURL(ctx context.Context, url string) (*Enrichment, error)
}

// EnrichmentCacheService stores enrichment results keyed by company ID.
type EnrichmentCacheService interface {
	// CachedEnrichment retrieves the cached enrichment for a company.
	// Returns ENOTFOUND on a cache miss. A corrupt cache entry is
	// treated as a miss, never surfaced as an error.
	CachedEnrichment(ctx context.Context, companyID string) (*Enrichment, error)

	// SaveEnrichment stores an enrichment, overwriting any previous
	// entry for the company. The content hash identifies the extracted
	// text the enrichment was derived from.
	SaveEnrichment(ctx context.Context, companyID string, enrichment *Enrichment, contentHash string) error

	// DeleteEnrichment removes a cached enrichment, if present.
	DeleteEnrichment(ctx context.Context, companyID string) error
}
