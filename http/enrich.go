package http

import (
	"net/http"

	"github.com/fwojciec/dealscope"
)

// handleEnrichURL runs the enrichment pipeline against an arbitrary URL
// without writing to the cache.
// POST /api/enrich {"url": "..."}
func (s *Server) handleEnrichURL(w http.ResponseWriter, r *http.Request) {
	var body struct {
		URL string `json:"url"`
	}
	if err := decodeJSON(r, &body); err != nil {
		s.Error(w, r, err)
		return
	}
	if body.URL == "" {
		s.Error(w, r, dealscope.Errorf(dealscope.EINVALID, "url is required"))
		return
	}

	enrichment, err := s.EnrichmentService.EnrichURL(r.Context(), body.URL)
	if err != nil {
		s.Error(w, r, err)
		return
	}

	s.writeJSON(w, r, http.StatusOK, enrichment)
}

// handleCompanyEnrich enriches a directory company and caches the result.
// POST /api/companies/{id}/enrich
func (s *Server) handleCompanyEnrich(w http.ResponseWriter, r *http.Request) {
	enrichment, err := s.EnrichmentService.EnrichCompany(r.Context(), r.PathValue("id"))
	if err != nil {
		s.Error(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, enrichment)
}

// handleCompanyEnrichment serves the cached enrichment for a company.
// GET /api/companies/{id}/enrichment
func (s *Server) handleCompanyEnrichment(w http.ResponseWriter, r *http.Request) {
	enrichment, err := s.EnrichmentCache.CachedEnrichment(r.Context(), r.PathValue("id"))
	if err != nil {
		s.Error(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, enrichment)
}
