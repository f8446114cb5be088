package mock

import "github.com/fwojciec/aidharvest"

var _ aidharvest.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of aidharvest.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*aidharvest.FindingAid, error)
}

func (e *Extractor) Extract(html string) (*aidharvest.FindingAid, error) {
	return e.ExtractFn(html)
}
