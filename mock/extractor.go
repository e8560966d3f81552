package mock

import "github.com/fwojciec/mapaddr"

var _ mapaddr.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of mapaddr.Extractor.
type Extractor struct {
	ExtractFn func(html string) mapaddr.Resolution
}

func (e *Extractor) Extract(html string) mapaddr.Resolution {
	return e.ExtractFn(html)
}
