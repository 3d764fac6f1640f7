// Package goquery provides a DOM-based implementation of dealscope.Extractor.
// It strips non-content elements and returns the page's visible text.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/dealscope"
)

// removeSelector matches elements that never contribute visible content.
const removeSelector = "script, style, nav, footer, iframe, noscript"

// Ensure Extractor implements dealscope.Extractor at compile time.
var _ dealscope.Extractor = (*Extractor)(nil)

// Extractor extracts visible body text from HTML. Consecutive whitespace is
// collapsed to single spaces and the result is truncated to
// dealscope.MaxTextLen runes.
type Extractor struct {
	maxLen int
}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{maxLen: dealscope.MaxTextLen}
}

// Extract returns the visible text content of the page.
func (e *Extractor) Extract(rawHTML string) (string, error) {
	if rawHTML == "" {
		return "", dealscope.Errorf(dealscope.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return "", dealscope.Errorf(dealscope.EINVALID, "failed to parse HTML: %v", err)
	}

	doc.Find(removeSelector).Remove()

	text := doc.Find("body").Text()

	// Fields splits on any run of whitespace, which both collapses and trims.
	text = strings.Join(strings.Fields(text), " ")

	return Truncate(text, e.maxLen), nil
}

// Truncate cuts text to at most maxLen runes.
func Truncate(text string, maxLen int) string {
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}
	return string(runes[:maxLen])
}
