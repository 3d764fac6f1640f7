package mock

import "github.com/fwojciec/dealscope"

var _ dealscope.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of dealscope.Extractor.
type Extractor struct {
	ExtractFn func(html string) (string, error)
}

func (e *Extractor) Extract(html string) (string, error) {
	return e.ExtractFn(html)
}
