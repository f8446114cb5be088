// Package goquery implements finding aid extraction using CSS selectors
// over parsed HTML.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/aidharvest"
)

// Ensure Extractor implements aidharvest.Extractor at compile time.
var _ aidharvest.Extractor = (*Extractor)(nil)

// Extractor converts finding aid HTML into the domain model.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses the document and returns the collection summary fields
// and the reconstructed series hierarchy. A heading without an id aborts
// the whole conversion with EMISSINGID: the leaf and path derivations key
// on ids, and partial artifacts are worse than a loud failure.
func (e *Extractor) Extract(html string) (*aidharvest.FindingAid, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, aidharvest.Errorf(aidharvest.EINVALID, "failed to parse HTML: %v", err)
	}

	items, err := extractItems(doc)
	if err != nil {
		return nil, err
	}

	summary, about := extractSummary(doc)

	return &aidharvest.FindingAid{
		Summary:   summary,
		AboutHTML: about,
		Items:     items,
	}, nil
}
