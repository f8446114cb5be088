package aidharvest

import (
	"encoding/json"
	"net/url"
	"strings"
	"time"
)

// FindingAid is one converted finding aid document: the collection
// summary fields plus the ordered top-level series. It is built once per
// source document and not mutated after construction.
type FindingAid struct {
	// ObjectID is the aggregation service identifier, derived from the
	// finding aid URL (e.g. "nla.obj-123456789").
	ObjectID string

	// SourceURL is the URL the document was fetched from.
	SourceURL string

	// Summary holds the collection summary fields keyed by normalized
	// label (lower-case, spaces replaced with underscores).
	Summary map[string]string

	// AboutHTML is the raw HTML of the collection summary region, kept
	// for the Markdown export. Empty when the region is absent.
	AboutHTML string

	// Items are the top-level series in document order.
	Items []*FindingAidNode

	HarvestedAt time.Time
}

// Title returns the collection title from the summary fields.
func (fa *FindingAid) Title() string {
	return fa.Summary["title"]
}

// CollectionNumber returns the collection number from the summary fields.
func (fa *FindingAid) CollectionNumber() string {
	return fa.Summary["collection_number"]
}

// MarshalJSON serializes the finding aid with the summary fields at the
// top level plus an "items" key holding the nested hierarchy. The items
// key always wins over a summary field of the same name.
func (fa *FindingAid) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(fa.Summary)+1)
	for k, v := range fa.Summary {
		m[k] = v
	}
	items := fa.Items
	if items == nil {
		items = []*FindingAidNode{}
	}
	m["items"] = items
	return json.Marshal(m)
}

// Extractor converts finding aid HTML into a structured FindingAid.
// Implementations set Summary, AboutHTML, and Items; ObjectID, SourceURL,
// and HarvestedAt are the caller's concern.
type Extractor interface {
	Extract(html string) (*FindingAid, error)
}

// Converter transforms HTML into Markdown.
type Converter interface {
	Convert(html string) (string, error)
}

// ObjectIDFromURL derives the aggregation service object identifier from
// a finding aid URL of the form http://<host>/<object-id>/findingaid.
func ObjectIDFromURL(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", Errorf(EINVALID, "invalid finding aid URL %q", rawURL)
	}
	path := strings.Trim(u.Path, "/")
	path = strings.TrimSuffix(path, "findingaid")
	path = strings.Trim(path, "/")
	if i := strings.LastIndex(path, "/"); i >= 0 {
		path = path[i+1:]
	}
	if path == "" {
		return "", Errorf(EINVALID, "no object id in finding aid URL %q", rawURL)
	}
	return path, nil
}
