package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/fwojciec/dealscope"
	"github.com/fwojciec/dealscope/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCreate(t *testing.T) {
	t.Parallel()

	t.Run("creates a list", func(t *testing.T) {
		t.Parallel()

		s, ts := newTestServer(t)
		s.ListService = &mock.ListService{
			CreateListFn: func(_ context.Context, list *dealscope.List) error {
				require.Equal(t, "Robotics watchlist", list.Name)
				list.ID = "l-1"
				list.CreatedAt = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
				return nil
			},
		}

		resp, err := http.Post(ts.URL+"/api/lists", "application/json",
			strings.NewReader(`{"name": "Robotics watchlist"}`))
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var list dealscope.List
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
		assert.Equal(t, "l-1", list.ID)
		assert.Equal(t, "Robotics watchlist", list.Name)
	})

	t.Run("rejects an empty name", func(t *testing.T) {
		t.Parallel()

		s, ts := newTestServer(t)
		s.ListService = &mock.ListService{
			CreateListFn: func(_ context.Context, list *dealscope.List) error {
				return list.Validate()
			},
		}

		resp, err := http.Post(ts.URL+"/api/lists", "application/json", strings.NewReader(`{}`))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestListAddCompany(t *testing.T) {
	t.Parallel()

	t.Run("returns 404 for a company the directory does not know", func(t *testing.T) {
		t.Parallel()

		s, ts := newTestServer(t)
		s.CompanyService = &mock.CompanyService{
			FindCompanyByIDFn: func(_ context.Context, id string) (*dealscope.Company, error) {
				return nil, dealscope.Errorf(dealscope.ENOTFOUND, "company not found")
			},
		}
		s.ListService = &mock.ListService{
			AddCompanyFn: func(_ context.Context, _, _ string) error {
				t.Fatal("membership must not change for an unknown company")
				return nil
			},
		}

		req, err := http.NewRequest(http.MethodPut, ts.URL+"/api/lists/l-1/companies/bogus", nil)
		require.NoError(t, err)

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("adds a known company", func(t *testing.T) {
		t.Parallel()

		s, ts := newTestServer(t)
		s.CompanyService = &mock.CompanyService{
			FindCompanyByIDFn: func(_ context.Context, id string) (*dealscope.Company, error) {
				return &dealscope.Company{ID: id, Name: "Acme"}, nil
			},
		}

		var gotListID, gotCompanyID string
		s.ListService = &mock.ListService{
			AddCompanyFn: func(_ context.Context, listID, companyID string) error {
				gotListID, gotCompanyID = listID, companyID
				return nil
			},
		}

		req, err := http.NewRequest(http.MethodPut, ts.URL+"/api/lists/l-1/companies/c-001", nil)
		require.NoError(t, err)

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
		assert.Equal(t, "l-1", gotListID)
		assert.Equal(t, "c-001", gotCompanyID)
	})
}

func TestListCompanies(t *testing.T) {
	t.Parallel()

	t.Run("drops membership ids that no longer resolve", func(t *testing.T) {
		t.Parallel()

		s, ts := newTestServer(t)
		s.ListService = &mock.ListService{
			CompanyIDsFn: func(_ context.Context, listID string) ([]string, error) {
				return []string{"c-001", "c-gone", "c-002"}, nil
			},
		}
		s.CompanyService = &mock.CompanyService{
			FindCompanyByIDFn: func(_ context.Context, id string) (*dealscope.Company, error) {
				if id == "c-gone" {
					return nil, dealscope.Errorf(dealscope.ENOTFOUND, "company not found")
				}
				return &dealscope.Company{ID: id, Name: "Company " + id}, nil
			},
		}

		resp, err := http.Get(ts.URL + "/api/lists/l-1/companies")
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body struct {
			Companies []*dealscope.Company `json:"companies"`
			N         int                  `json:"n"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, 2, body.N)
		require.Len(t, body.Companies, 2)
		assert.Equal(t, "c-001", body.Companies[0].ID)
		assert.Equal(t, "c-002", body.Companies[1].ID)
	})
}

func TestListExport(t *testing.T) {
	t.Parallel()

	companies := map[string]*dealscope.Company{
		"c-001": {ID: "c-001", Name: "Acme", Industry: "Aerospace", Stage: "Seed", Location: "Berlin"},
		"c-002": {ID: "c-002", Name: "Globex", Industry: "Fintech", Stage: "Series A", Location: "London"},
	}

	setup := func(t *testing.T) string {
		s, ts := newTestServer(t)
		s.ListService = &mock.ListService{
			CompanyIDsFn: func(_ context.Context, listID string) ([]string, error) {
				return []string{"c-001", "c-002"}, nil
			},
		}
		s.CompanyService = &mock.CompanyService{
			FindCompanyByIDFn: func(_ context.Context, id string) (*dealscope.Company, error) {
				if c, ok := companies[id]; ok {
					return c, nil
				}
				return nil, dealscope.Errorf(dealscope.ENOTFOUND, "company not found")
			},
		}
		return ts.URL
	}

	t.Run("exports CSV with a header row", func(t *testing.T) {
		t.Parallel()

		url := setup(t)

		resp, err := http.Get(url + "/api/lists/l-1/export?format=csv")
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "text/csv", resp.Header.Get("Content-Type"))
		assert.Contains(t, resp.Header.Get("Content-Disposition"), "attachment")

		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
		require.Len(t, lines, 3)
		assert.Equal(t, "ID,Name,Industry,Stage,Location", lines[0])
		assert.Equal(t, "c-001,Acme,Aerospace,Seed,Berlin", lines[1])
		assert.Equal(t, "c-002,Globex,Fintech,Series A,London", lines[2])
	})

	t.Run("defaults to JSON", func(t *testing.T) {
		t.Parallel()

		url := setup(t)

		resp, err := http.Get(url + "/api/lists/l-1/export")
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

		var exported []*dealscope.Company
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&exported))
		require.Len(t, exported, 2)
		assert.Equal(t, "Acme", exported[0].Name)
	})

	t.Run("rejects an unknown format", func(t *testing.T) {
		t.Parallel()

		url := setup(t)

		resp, err := http.Get(url + "/api/lists/l-1/export?format=xml")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestListDelete(t *testing.T) {
	t.Parallel()

	t.Run("returns 204 on success", func(t *testing.T) {
		t.Parallel()

		s, ts := newTestServer(t)
		s.ListService = &mock.ListService{
			DeleteListFn: func(_ context.Context, id string) error {
				require.Equal(t, "l-1", id)
				return nil
			},
		}

		req, err := http.NewRequest(http.MethodDelete, ts.URL+"/api/lists/l-1", nil)
		require.NoError(t, err)

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	})
}
