package aidharvest

import (
	"context"
	"time"
)

// Page is a cached raw HTML response for a finding aid URL.
type Page struct {
	URL         string
	Content     string
	ContentHash string
	FetchedAt   time.Time
}

// PageCache persists fetched pages so repeated harvests of the same URLs
// skip the network.
type PageCache interface {
	// FindPage retrieves a cached page by URL.
	// Returns ENOTFOUND if the page has not been cached.
	FindPage(ctx context.Context, url string) (*Page, error)

	// SavePage stores a page, replacing any previous copy for the URL.
	SavePage(ctx context.Context, page *Page) error
}
