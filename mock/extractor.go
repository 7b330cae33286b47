package mock

import "github.com/fwojciec/brief"

var _ brief.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of brief.Extractor.
type Extractor struct {
	ExtractFn func(html string, opts brief.ExtractOptions) *brief.PageExtract
}

func (e *Extractor) Extract(html string, opts brief.ExtractOptions) *brief.PageExtract {
	return e.ExtractFn(html, opts)
}
