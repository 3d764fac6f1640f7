package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/dealscope"
	"github.com/fwojciec/dealscope/mock"
	dealslog "github.com/fwojciec/dealscope/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingEnrichmentService(t *testing.T) {
	t.Parallel()

	t.Run("logs company enrichment", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.EnrichmentService{
			EnrichCompanyFn: func(ctx context.Context, companyID string) (*dealscope.Enrichment, error) {
				return &dealscope.Enrichment{Summary: "A summary."}, nil
			},
		}

		s := dealslog.NewLoggingEnrichmentService(inner, logger)
		enrichment, err := s.EnrichCompany(context.Background(), "c-001")

		require.NoError(t, err)
		assert.Equal(t, "A summary.", enrichment.Summary)
		output := buf.String()
		assert.Contains(t, output, "enrich company")
		assert.Contains(t, output, "company_id=c-001")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs failed ad-hoc enrichment", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.EnrichmentService{
			EnrichURLFn: func(ctx context.Context, url string) (*dealscope.Enrichment, error) {
				return nil, dealscope.Errorf(dealscope.EUNAVAILABLE, "failed to fetch URL: 503 Service Unavailable")
			},
		}

		s := dealslog.NewLoggingEnrichmentService(inner, logger)
		_, err := s.EnrichURL(context.Background(), "https://acme.example.com")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "enrich url")
		assert.Contains(t, output, "url=https://acme.example.com")
		assert.Contains(t, output, "503")
	})
}
