package dealscope

// MaxTextLen is the maximum length, in runes, of extracted website text.
// Longer documents lose trailing content; truncation bounds the prompt
// size with no summarization fallback.
const MaxTextLen = 15000

// Extractor extracts the visible text content from an HTML page, removing
// boilerplate. The result has consecutive whitespace collapsed to single
// spaces, is trimmed, and is truncated to MaxTextLen.
type Extractor interface {
	Extract(html string) (text string, err error)
}
