package mock

import (
	"context"

	"github.com/fwojciec/aidharvest"
)

var _ aidharvest.PageCache = (*PageCache)(nil)

// PageCache is a mock implementation of aidharvest.PageCache.
type PageCache struct {
	FindPageFn func(ctx context.Context, url string) (*aidharvest.Page, error)
	SavePageFn func(ctx context.Context, page *aidharvest.Page) error
}

func (c *PageCache) FindPage(ctx context.Context, url string) (*aidharvest.Page, error) {
	return c.FindPageFn(ctx, url)
}

func (c *PageCache) SavePage(ctx context.Context, page *aidharvest.Page) error {
	return c.SavePageFn(ctx, page)
}
