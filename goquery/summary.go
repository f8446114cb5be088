package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

const (
	summarySelector       = "dl.collection-summary"
	fallbackTitleSel      = "#doc-title"
	fallbackCollectionSel = "#collection-number"
)

// extractSummary pairs each label in the collection summary region with
// its first following value sibling and returns the normalized field map
// plus the region's raw HTML. When the region is absent it falls back to
// the fixed title and collection number elements; the fallback never
// fails, missing fields resolve to empty strings.
func extractSummary(doc *goquery.Document) (map[string]string, string) {
	region := doc.Find(summarySelector).First()
	if region.Length() == 0 {
		return map[string]string{
			"title":             strings.TrimSpace(doc.Find(fallbackTitleSel).First().Text()),
			"collection_number": strings.TrimSpace(doc.Find(fallbackCollectionSel).First().Text()),
		}, ""
	}

	summary := make(map[string]string)
	region.Find("dt").Each(func(_ int, dt *goquery.Selection) {
		value, ok := nextValue(dt.Nodes[0])
		if !ok {
			return // label without a value is skipped
		}
		key := normalizeKey(dt.Text())
		if key == "" {
			return
		}
		summary[key] = value
	})

	about, err := goquery.OuterHtml(region)
	if err != nil {
		about = ""
	}

	return summary, about
}

// nextValue scans forward from a label element until a dd sibling is
// found.
func nextValue(label *html.Node) (string, bool) {
	for n := label.NextSibling; n != nil; n = n.NextSibling {
		if n.Type == html.ElementNode && n.Data == "dd" {
			return strings.TrimSpace(goquery.NewDocumentFromNode(n).Text()), true
		}
	}
	return "", false
}

// normalizeKey turns a label into a mapping key: lower-cased, trimmed,
// spaces replaced with underscores.
func normalizeKey(label string) string {
	key := strings.ToLower(strings.TrimSpace(label))
	return strings.ReplaceAll(key, " ", "_")
}
