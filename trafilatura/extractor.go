// Package trafilatura provides an article-mode implementation of
// dealscope.Extractor built on go-trafilatura's boilerplate removal.
// Compared to the default DOM extractor it is better at isolating the main
// content of text-heavy pages, at the cost of discarding peripheral copy.
package trafilatura

import (
	"strings"

	"github.com/fwojciec/dealscope"
	"github.com/fwojciec/dealscope/goquery"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure Extractor implements dealscope.Extractor at compile time.
var _ dealscope.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content text from HTML.
type Extractor struct {
	maxLen int
}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{maxLen: dealscope.MaxTextLen}
}

// Extract returns the main content of the page as plain text, whitespace
// collapsed and truncated to dealscope.MaxTextLen runes.
func (e *Extractor) Extract(rawHTML string) (string, error) {
	if rawHTML == "" {
		return "", dealscope.Errorf(dealscope.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return "", dealscope.Errorf(dealscope.EUNPROCESSABLE, "content extraction failed: %v", err)
	}

	text := strings.Join(strings.Fields(result.ContentText), " ")

	return goquery.Truncate(text, e.maxLen), nil
}
