// Package enrich orchestrates the enrichment pipeline: fetch a company
// website, extract its text content, summarize it with a language model,
// and cache the result.
package enrich

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/dealscope"
	"golang.org/x/sync/singleflight"
)

// enrichTimeout bounds a coalesced enrichment run once it is detached
// from the initiating request's context.
const enrichTimeout = 60 * time.Second

var _ dealscope.EnrichmentService = (*Service)(nil)

// Service implements dealscope.EnrichmentService. All fields except
// Limiter and Now are required.
type Service struct {
	Companies dealscope.CompanyService
	Fetcher   dealscope.Fetcher
	Extractor dealscope.Extractor
	Analyzer  dealscope.Analyzer
	Cache     dealscope.EnrichmentCacheService

	// Limiter, when set, throttles fetches per website domain.
	Limiter dealscope.DomainLimiter

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time

	group singleflight.Group
}

// EnrichCompany runs the pipeline against the company's website and caches
// the result. Concurrent calls for the same company coalesce into a single
// upstream request; every caller receives the same result. Nothing is
// cached on failure.
func (s *Service) EnrichCompany(ctx context.Context, companyID string) (*dealscope.Enrichment, error) {
	company, err := s.Companies.FindCompanyByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if company.URL == "" {
		return nil, dealscope.Errorf(dealscope.EINVALID, "company has no website URL")
	}

	v, err, _ := s.group.Do(companyID, func() (any, error) {
		// Coalesced callers share this work, so it must not die with
		// the request that happened to start it. Detach from the
		// initiator's cancellation and bound the work on its own.
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), enrichTimeout)
		defer cancel()

		enrichment, contentHash, err := s.enrich(ctx, company.URL)
		if err != nil {
			return nil, err
		}
		if err := s.Cache.SaveEnrichment(ctx, companyID, enrichment, contentHash); err != nil {
			return nil, fmt.Errorf("failed to cache enrichment: %w", err)
		}
		return enrichment, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*dealscope.Enrichment), nil
}

// EnrichURL runs the pipeline against an arbitrary URL. The cache is not
// consulted and the result is not stored.
func (s *Service) EnrichURL(ctx context.Context, rawURL string) (*dealscope.Enrichment, error) {
	if rawURL == "" {
		return nil, dealscope.Errorf(dealscope.EINVALID, "URL is required")
	}

	enrichment, _, err := s.enrich(ctx, rawURL)
	return enrichment, err
}

// enrich fetches, extracts, and analyzes a single page, stamping the
// result with provenance. The returned hash identifies the extracted text
// the enrichment was derived from.
func (s *Service) enrich(ctx context.Context, rawURL string) (*dealscope.Enrichment, string, error) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return nil, "", dealscope.Errorf(dealscope.EINVALID, "invalid URL: %s", rawURL)
	}

	if s.Limiter != nil {
		if err := s.Limiter.Wait(ctx, u.Host); err != nil {
			return nil, "", err
		}
	}

	html, err := s.Fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return nil, "", err
	}

	text, err := s.Extractor.Extract(html)
	if err != nil {
		return nil, "", err
	}
	if text == "" {
		return nil, "", dealscope.Errorf(dealscope.EUNPROCESSABLE, "no text content extracted from %s", rawURL)
	}

	enrichment, err := s.Analyzer.Analyze(ctx, text)
	if err != nil {
		return nil, "", err
	}

	enrichment.Sources = []dealscope.Source{{URL: rawURL, Timestamp: s.now().UTC()}}
	contentHash := fmt.Sprintf("%016x", xxhash.Sum64String(text))

	return enrichment, contentHash, nil
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
