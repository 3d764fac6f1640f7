package http

import (
	"net/http"

	"github.com/fwojciec/dealscope"
)

// handleCompanyIndex serves the filtered company directory.
// GET /api/companies?q=&stage=&industry=&location=
func (s *Server) handleCompanyIndex(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := dealscope.CompanyFilter{
		Keyword:  q.Get("q"),
		Stage:    q.Get("stage"),
		Industry: q.Get("industry"),
		Location: q.Get("location"),
	}

	companies, err := s.CompanyService.FindCompanies(r.Context(), filter)
	if err != nil {
		s.Error(w, r, err)
		return
	}

	s.writeJSON(w, r, http.StatusOK, struct {
		Companies []*dealscope.Company `json:"companies"`
		N         int                  `json:"n"`
	}{
		Companies: companies,
		N:         len(companies),
	})
}

// handleCompanyFacets serves the distinct filter values.
// GET /api/companies/facets
func (s *Server) handleCompanyFacets(w http.ResponseWriter, r *http.Request) {
	facets, err := s.CompanyService.Facets(r.Context())
	if err != nil {
		s.Error(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, facets)
}

// handleCompanyShow serves a single company.
// GET /api/companies/{id}
func (s *Server) handleCompanyShow(w http.ResponseWriter, r *http.Request) {
	company, err := s.CompanyService.FindCompanyByID(r.Context(), r.PathValue("id"))
	if err != nil {
		s.Error(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, company)
}
