package http

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/fwojciec/dealscope"
)

// handleListCreate creates a new list.
// POST /api/lists {"name": "..."}
func (s *Server) handleListCreate(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name string `json:"name"`
	}
	if err := decodeJSON(r, &body); err != nil {
		s.Error(w, r, err)
		return
	}

	list := &dealscope.List{Name: body.Name}
	if err := s.ListService.CreateList(r.Context(), list); err != nil {
		s.Error(w, r, err)
		return
	}

	s.writeJSON(w, r, http.StatusCreated, list)
}

// handleListIndex serves all lists with their membership counts.
// GET /api/lists
func (s *Server) handleListIndex(w http.ResponseWriter, r *http.Request) {
	lists, err := s.ListService.FindLists(r.Context())
	if err != nil {
		s.Error(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, struct {
		Lists []*dealscope.List `json:"lists"`
		N     int               `json:"n"`
	}{
		Lists: lists,
		N:     len(lists),
	})
}

// handleListDelete removes a list and its membership.
// DELETE /api/lists/{id}
func (s *Server) handleListDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.ListService.DeleteList(r.Context(), r.PathValue("id")); err != nil {
		s.Error(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleListAddCompany adds a company to a list. Re-adding an existing
// member is a no-op.
// PUT /api/lists/{id}/companies/{companyID}
func (s *Server) handleListAddCompany(w http.ResponseWriter, r *http.Request) {
	companyID := r.PathValue("companyID")

	// Reject ids the directory does not know about; memberships that went
	// stale after a seed change are still tolerated on the read side.
	if _, err := s.CompanyService.FindCompanyByID(r.Context(), companyID); err != nil {
		s.Error(w, r, err)
		return
	}

	if err := s.ListService.AddCompany(r.Context(), r.PathValue("id"), companyID); err != nil {
		s.Error(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleListRemoveCompany removes a company from a list.
// DELETE /api/lists/{id}/companies/{companyID}
func (s *Server) handleListRemoveCompany(w http.ResponseWriter, r *http.Request) {
	if err := s.ListService.RemoveCompany(r.Context(), r.PathValue("id"), r.PathValue("companyID")); err != nil {
		s.Error(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleListCompanies serves a list's membership resolved against the
// directory. Membership ids that no longer resolve are silently dropped.
// GET /api/lists/{id}/companies
func (s *Server) handleListCompanies(w http.ResponseWriter, r *http.Request) {
	companies, err := s.resolveListCompanies(r, r.PathValue("id"))
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

// handleListExport downloads a list's companies as CSV or JSON.
// GET /api/lists/{id}/export?format=csv|json
func (s *Server) handleListExport(w http.ResponseWriter, r *http.Request) {
	listID := r.PathValue("id")

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "json"
	}

	companies, err := s.resolveListCompanies(r, listID)
	if err != nil {
		s.Error(w, r, err)
		return
	}

	switch format {
	case "json":
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "list-"+listID+".json"))
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(companies); err != nil {
			s.Logger.Error("export encoding failed", "list", listID, "error", err)
		}

	case "csv":
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "list-"+listID+".csv"))
		cw := csv.NewWriter(w)
		_ = cw.Write([]string{"ID", "Name", "Industry", "Stage", "Location"})
		for _, c := range companies {
			_ = cw.Write([]string{c.ID, c.Name, c.Industry, c.Stage, c.Location})
		}
		cw.Flush()
		if err := cw.Error(); err != nil {
			s.Logger.Error("export encoding failed", "list", listID, "error", err)
		}

	default:
		s.Error(w, r, dealscope.Errorf(dealscope.EINVALID, "unsupported export format %q", format))
	}
}

// resolveListCompanies resolves a list's membership ids against the
// directory, preserving membership order and dropping dangling ids.
func (s *Server) resolveListCompanies(r *http.Request, listID string) ([]*dealscope.Company, error) {
	ids, err := s.ListService.CompanyIDs(r.Context(), listID)
	if err != nil {
		return nil, err
	}

	companies := make([]*dealscope.Company, 0, len(ids))
	for _, id := range ids {
		company, err := s.CompanyService.FindCompanyByID(r.Context(), id)
		if dealscope.ErrorCode(err) == dealscope.ENOTFOUND {
			continue
		} else if err != nil {
			return nil, err
		}
		companies = append(companies, company)
	}
	return companies, nil
}
