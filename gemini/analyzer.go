// Package gemini provides Google Gemini implementations of
// dealscope.Analyzer and dealscope.Chatter.
package gemini

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/fwojciec/dealscope"
	"google.golang.org/genai"
)

// DefaultAnalyzerModel is the model used for enrichment extraction.
const DefaultAnalyzerModel = "gemini-2.5-flash"

// analysisPromptHeader directs the model to return only the enrichment JSON
// object. The extracted website text is appended verbatim.
const analysisPromptHeader = `You are an expert VC analyst. Read the following website text and extract these fields exactly in valid JSON format. Respond ONLY with valid JSON, nothing else. Do not use markdown backticks around the JSON.
{
  "summary": "1-2 sentences summarizing the company",
  "whatTheyDo": ["3-6 bullet points of what they do"],
  "keywords": ["5-10 keywords identifying their market/tech"],
  "signals": ["2-4 derived signals inferred from the page like 'Enterprise focused', 'Hiring engineers', etc."]
}

Website Text:
`

// Ensure Analyzer implements dealscope.Analyzer at compile time.
var _ dealscope.Analyzer = (*Analyzer)(nil)

// Analyzer implements dealscope.Analyzer using Google Gemini.
type Analyzer struct {
	client *genai.Client
	model  string
}

// NewAnalyzer creates a new Analyzer. An empty model selects
// DefaultAnalyzerModel.
func NewAnalyzer(client *genai.Client, model string) *Analyzer {
	if model == "" {
		model = DefaultAnalyzerModel
	}
	return &Analyzer{client: client, model: model}
}

// Analyze summarizes extracted website text into a structured enrichment.
func (a *Analyzer) Analyze(ctx context.Context, text string) (*dealscope.Enrichment, error) {
	if text == "" {
		return nil, dealscope.Errorf(dealscope.EINVALID, "website text required")
	}

	result, err := a.client.Models.GenerateContent(ctx, a.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: BuildAnalysisPrompt(text)}},
		}},
		BuildAnalysisConfig(),
	)
	if err != nil {
		return nil, dealscope.Errorf(dealscope.EUNAVAILABLE, "model call failed: %v", err)
	}
	if result == nil {
		return nil, dealscope.Errorf(dealscope.EINTERNAL, "gemini returned nil result")
	}

	enrichment, err := ParseEnrichment(result.Text())
	if err != nil {
		return nil, err
	}
	if err := enrichment.Validate(); err != nil {
		return nil, err
	}

	return enrichment, nil
}

// BuildAnalysisConfig returns the GenerateContentConfig for enrichment
// calls. The model is asked for a JSON mimetype response so it skips the
// conversational framing.
func BuildAnalysisConfig() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	}
}

// BuildAnalysisPrompt builds the extraction prompt with the website text
// interpolated verbatim.
func BuildAnalysisPrompt(text string) string {
	return analysisPromptHeader + text + "\n"
}

// ParseEnrichment parses the model's text output as an enrichment record.
// If strict parsing fails, common markdown code fences are stripped and
// parsing is retried once. Returns EUNPROCESSABLE if parsing still fails;
// there is no further repair attempt.
func ParseEnrichment(text string) (*dealscope.Enrichment, error) {
	var enrichment dealscope.Enrichment
	if err := json.Unmarshal([]byte(text), &enrichment); err == nil {
		return &enrichment, nil
	}

	cleaned := strings.ReplaceAll(text, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	cleaned = strings.TrimSpace(cleaned)

	if err := json.Unmarshal([]byte(cleaned), &enrichment); err != nil {
		return nil, dealscope.Errorf(dealscope.EUNPROCESSABLE, "model returned malformed JSON: %v", err)
	}
	return &enrichment, nil
}
