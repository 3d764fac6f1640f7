package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/dealscope"
)

// Ensure LoggingEnrichmentService implements dealscope.EnrichmentService.
var _ dealscope.EnrichmentService = (*LoggingEnrichmentService)(nil)

// LoggingEnrichmentService wraps an EnrichmentService with logging.
type LoggingEnrichmentService struct {
	next   dealscope.EnrichmentService
	logger *slog.Logger
}

// NewLoggingEnrichmentService creates a new LoggingEnrichmentService.
func NewLoggingEnrichmentService(next dealscope.EnrichmentService, logger *slog.Logger) *LoggingEnrichmentService {
	return &LoggingEnrichmentService{next: next, logger: logger}
}

// EnrichCompany delegates to the wrapped service and logs the operation.
func (s *LoggingEnrichmentService) EnrichCompany(ctx context.Context, companyID string) (enrichment *dealscope.Enrichment, err error) {
	defer func(begin time.Time) {
		s.logger.Info("enrich company",
			"company_id", companyID,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.EnrichCompany(ctx, companyID)
}

// EnrichURL delegates to the wrapped service and logs the operation.
func (s *LoggingEnrichmentService) EnrichURL(ctx context.Context, url string) (enrichment *dealscope.Enrichment, err error) {
	defer func(begin time.Time) {
		s.logger.Info("enrich url",
			"url", url,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.EnrichURL(ctx, url)
}
