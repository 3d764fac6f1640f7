package http

import (
	"net/http"

	"github.com/fwojciec/dealscope"
)

// handleSavedSearchCreate saves the current filter values. The name is
// synthesized server-side from the filters.
// POST /api/searches {"keyword": "...", "stage": "...", "industry": "...", "location": "..."}
func (s *Server) handleSavedSearchCreate(w http.ResponseWriter, r *http.Request) {
	var filter dealscope.CompanyFilter
	if err := decodeJSON(r, &filter); err != nil {
		s.Error(w, r, err)
		return
	}

	search := &dealscope.SavedSearch{Filters: filter}
	if err := s.SavedSearchService.CreateSavedSearch(r.Context(), search); err != nil {
		s.Error(w, r, err)
		return
	}

	s.writeJSON(w, r, http.StatusCreated, search)
}

// handleSavedSearchIndex serves all saved searches.
// GET /api/searches
func (s *Server) handleSavedSearchIndex(w http.ResponseWriter, r *http.Request) {
	searches, err := s.SavedSearchService.FindSavedSearches(r.Context())
	if err != nil {
		s.Error(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, struct {
		Searches []*dealscope.SavedSearch `json:"searches"`
		N        int                      `json:"n"`
	}{
		Searches: searches,
		N:        len(searches),
	})
}

// handleSavedSearchDelete removes a saved search.
// DELETE /api/searches/{id}
func (s *Server) handleSavedSearchDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.SavedSearchService.DeleteSavedSearch(r.Context(), r.PathValue("id")); err != nil {
		s.Error(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
