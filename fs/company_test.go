package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/dealscope"
	"github.com/fwojciec/dealscope/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCompanyService(t *testing.T) {
	t.Parallel()

	t.Run("loads embedded default seed", func(t *testing.T) {
		t.Parallel()

		svc, err := fs.NewCompanyService("")
		require.NoError(t, err)

		companies, err := svc.FindCompanies(context.Background(), dealscope.CompanyFilter{})
		require.NoError(t, err)
		assert.NotEmpty(t, companies)
		for _, c := range companies {
			assert.NotEmpty(t, c.ID)
			assert.NotEmpty(t, c.Name)
			assert.NotEmpty(t, c.URL)
		}
	})

	t.Run("loads seed from path", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "seed.json")
		seed := `[
			{"id": "x-1", "name": "First", "description": "d", "industry": "AI", "stage": "Seed", "location": "Pune, India", "url": "https://first.example.com"},
			{"id": "x-2", "name": "Second", "description": "d", "industry": "AI", "stage": "Seed", "location": "Pune, India", "url": "https://second.example.com"}
		]`
		require.NoError(t, os.WriteFile(path, []byte(seed), 0644))

		svc, err := fs.NewCompanyService(path)
		require.NoError(t, err)

		companies, err := svc.FindCompanies(context.Background(), dealscope.CompanyFilter{})
		require.NoError(t, err)
		require.Len(t, companies, 2)
		assert.Equal(t, "x-1", companies[0].ID)
		assert.Equal(t, "x-2", companies[1].ID)
	})

	t.Run("rejects duplicate ids", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "seed.json")
		seed := `[{"id": "x-1", "name": "A"}, {"id": "x-1", "name": "B"}]`
		require.NoError(t, os.WriteFile(path, []byte(seed), 0644))

		_, err := fs.NewCompanyService(path)
		require.Error(t, err)
		assert.Equal(t, dealscope.EINVALID, dealscope.ErrorCode(err))
	})

	t.Run("rejects malformed seed", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "seed.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

		_, err := fs.NewCompanyService(path)
		require.Error(t, err)
		assert.Equal(t, dealscope.EINVALID, dealscope.ErrorCode(err))
	})

	t.Run("missing seed file errors", func(t *testing.T) {
		t.Parallel()

		_, err := fs.NewCompanyService(filepath.Join(t.TempDir(), "nope.json"))
		require.Error(t, err)
		assert.Equal(t, dealscope.EINVALID, dealscope.ErrorCode(err))
	})
}

func TestCompanyService_FindCompanyByID(t *testing.T) {
	t.Parallel()

	svc, err := fs.NewCompanyService("")
	require.NoError(t, err)

	companies, err := svc.FindCompanies(context.Background(), dealscope.CompanyFilter{})
	require.NoError(t, err)
	require.NotEmpty(t, companies)

	t.Run("finds existing company", func(t *testing.T) {
		t.Parallel()
		got, err := svc.FindCompanyByID(context.Background(), companies[0].ID)
		require.NoError(t, err)
		assert.Equal(t, companies[0], got)
	})

	t.Run("returns ENOTFOUND for unknown id", func(t *testing.T) {
		t.Parallel()
		_, err := svc.FindCompanyByID(context.Background(), "no-such-company")
		require.Error(t, err)
		assert.Equal(t, dealscope.ENOTFOUND, dealscope.ErrorCode(err))
	})
}

func TestCompanyService_Facets(t *testing.T) {
	t.Parallel()

	svc, err := fs.NewCompanyService("")
	require.NoError(t, err)

	facets, err := svc.Facets(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, facets.Stages)
	assert.NotEmpty(t, facets.Industries)
	assert.NotEmpty(t, facets.Locations)
	assert.IsIncreasing(t, facets.Locations)
}
