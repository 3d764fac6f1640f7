package dealscope_test

import (
	"testing"

	"github.com/fwojciec/dealscope"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnrichment_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid enrichment passes", func(t *testing.T) {
		t.Parallel()
		e := &dealscope.Enrichment{
			Summary:    "Acme builds rockets.",
			WhatTheyDo: []string{"Builds reusable launch vehicles"},
		}
		assert.NoError(t, e.Validate())
	})

	t.Run("missing summary fails", func(t *testing.T) {
		t.Parallel()
		e := &dealscope.Enrichment{WhatTheyDo: []string{"x"}}
		err := e.Validate()
		require.Error(t, err)
		assert.Equal(t, dealscope.EUNPROCESSABLE, dealscope.ErrorCode(err))
	})

	t.Run("missing whatTheyDo fails", func(t *testing.T) {
		t.Parallel()
		e := &dealscope.Enrichment{Summary: "Acme builds rockets."}
		err := e.Validate()
		require.Error(t, err)
		assert.Equal(t, dealscope.EUNPROCESSABLE, dealscope.ErrorCode(err))
	})
}
