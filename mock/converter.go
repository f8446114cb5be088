package mock

import "github.com/fwojciec/aidharvest"

var _ aidharvest.Converter = (*Converter)(nil)

// Converter is a mock implementation of aidharvest.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
