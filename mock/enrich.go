package mock

import (
	"context"

	"github.com/fwojciec/dealscope"
)

var _ dealscope.Analyzer = (*Analyzer)(nil)

// Analyzer is a mock implementation of dealscope.Analyzer.
type Analyzer struct {
	AnalyzeFn func(ctx context.Context, text string) (*dealscope.Enrichment, error)
}

func (a *Analyzer) Analyze(ctx context.Context, text string) (*dealscope.Enrichment, error) {
	return a.AnalyzeFn(ctx, text)
}

var _ dealscope.EnrichmentService = (*EnrichmentService)(nil)

// EnrichmentService is a mock implementation of dealscope.EnrichmentService.
type EnrichmentService struct {
	EnrichCompanyFn func(ctx context.Context, companyID string) (*dealscope.Enrichment, error)
	EnrichURLFn     func(ctx context.Context, url string) (*dealscope.Enrichment, error)
}

func (s *EnrichmentService) EnrichCompany(ctx context.Context, companyID string) (*dealscope.Enrichment, error) {
	return s.EnrichCompanyFn(ctx, companyID)
}

func (s *EnrichmentService) EnrichURL(ctx context.Context, url string) (*dealscope.Enrichment, error) {
	return s.EnrichURLFn(ctx, url)
}

var _ dealscope.EnrichmentCacheService = (*EnrichmentCacheService)(nil)

// EnrichmentCacheService is a mock implementation of dealscope.EnrichmentCacheService.
type EnrichmentCacheService struct {
	CachedEnrichmentFn func(ctx context.Context, companyID string) (*dealscope.Enrichment, error)
	SaveEnrichmentFn   func(ctx context.Context, companyID string, enrichment *dealscope.Enrichment, contentHash string) error
	DeleteEnrichmentFn func(ctx context.Context, companyID string) error
}

func (s *EnrichmentCacheService) CachedEnrichment(ctx context.Context, companyID string) (*dealscope.Enrichment, error) {
	return s.CachedEnrichmentFn(ctx, companyID)
}

func (s *EnrichmentCacheService) SaveEnrichment(ctx context.Context, companyID string, enrichment *dealscope.Enrichment, contentHash string) error {
	return s.SaveEnrichmentFn(ctx, companyID, enrichment, contentHash)
}

func (s *EnrichmentCacheService) DeleteEnrichment(ctx context.Context, companyID string) error {
	return s.DeleteEnrichmentFn(ctx, companyID)
}
