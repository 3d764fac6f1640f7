package gemini_test

import (
	"context"
	"testing"

	"github.com/fwojciec/dealscope"
	"github.com/fwojciec/dealscope/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validPayload = `{
  "summary": "Acme builds reusable rockets for orbital logistics.",
  "whatTheyDo": ["Designs launch vehicles", "Operates orbital cargo runs"],
  "keywords": ["aerospace", "logistics", "rockets", "orbital", "launch"],
  "signals": ["Enterprise focused", "Hiring engineers"]
}`

func TestParseEnrichment(t *testing.T) {
	t.Parallel()

	t.Run("parses strict JSON", func(t *testing.T) {
		t.Parallel()

		enrichment, err := gemini.ParseEnrichment(validPayload)
		require.NoError(t, err)
		assert.Equal(t, "Acme builds reusable rockets for orbital logistics.", enrichment.Summary)
		assert.Len(t, enrichment.WhatTheyDo, 2)
		assert.Len(t, enrichment.Keywords, 5)
		assert.Len(t, enrichment.Signals, 2)
	})

	t.Run("fenced output parses identically to unfenced", func(t *testing.T) {
		t.Parallel()

		fenced := "```json\n" + validPayload + "\n```"
		fromFenced, err := gemini.ParseEnrichment(fenced)
		require.NoError(t, err)

		fromPlain, err := gemini.ParseEnrichment(validPayload)
		require.NoError(t, err)

		assert.Equal(t, fromPlain, fromFenced)
	})

	t.Run("bare fences are stripped", func(t *testing.T) {
		t.Parallel()

		fenced := "```\n" + validPayload + "\n```"
		enrichment, err := gemini.ParseEnrichment(fenced)
		require.NoError(t, err)
		assert.Equal(t, "Acme builds reusable rockets for orbital logistics.", enrichment.Summary)
	})

	t.Run("malformed output returns EUNPROCESSABLE", func(t *testing.T) {
		t.Parallel()

		_, err := gemini.ParseEnrichment("I'm sorry, I can't summarize this page.")
		require.Error(t, err)
		assert.Equal(t, dealscope.EUNPROCESSABLE, dealscope.ErrorCode(err))
	})

	t.Run("no second repair beyond fence stripping", func(t *testing.T) {
		t.Parallel()

		_, err := gemini.ParseEnrichment("```json\n{\"summary\": \n```")
		require.Error(t, err)
		assert.Equal(t, dealscope.EUNPROCESSABLE, dealscope.ErrorCode(err))
	})
}

func TestBuildAnalysisPrompt(t *testing.T) {
	t.Parallel()

	prompt := gemini.BuildAnalysisPrompt("Acme builds rockets.")

	assert.Contains(t, prompt, "Acme builds rockets.")
	assert.Contains(t, prompt, `"summary"`)
	assert.Contains(t, prompt, `"whatTheyDo"`)
	assert.Contains(t, prompt, `"keywords"`)
	assert.Contains(t, prompt, `"signals"`)
	assert.Contains(t, prompt, "Respond ONLY with valid JSON")
}

func TestBuildAnalysisConfig(t *testing.T) {
	t.Parallel()

	config := gemini.BuildAnalysisConfig()
	assert.Equal(t, "application/json", config.ResponseMIMEType)
}

func TestAnalyzer_Analyze_ReturnsErrorWhenTextEmpty(t *testing.T) {
	t.Parallel()

	analyzer := gemini.NewAnalyzer(nil, "") // nil client ok for this test

	_, err := analyzer.Analyze(context.Background(), "")
	require.Error(t, err)
	assert.Equal(t, dealscope.EINVALID, dealscope.ErrorCode(err))
}
