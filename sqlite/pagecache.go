package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/fwojciec/aidharvest"
)

// Compile-time interface verification.
var _ aidharvest.PageCache = (*PageCache)(nil)

// PageCache implements aidharvest.PageCache using SQLite. It mirrors the
// on-disk response cache of the original harvest workflow: repeated runs
// over the same URL list skip the network entirely.
type PageCache struct {
	db *DB
}

// NewPageCache creates a new PageCache.
func NewPageCache(db *DB) *PageCache {
	return &PageCache{db: db}
}

// FindPage retrieves a cached page by URL.
func (c *PageCache) FindPage(ctx context.Context, url string) (*aidharvest.Page, error) {
	var page aidharvest.Page
	var fetchedAt string

	err := c.db.QueryRowContext(ctx, `
		SELECT url, content, content_hash, fetched_at
		FROM pages
		WHERE url = ?
	`, url).Scan(&page.URL, &page.Content, &page.ContentHash, &fetchedAt)

	if err == sql.ErrNoRows {
		return nil, aidharvest.Errorf(aidharvest.ENOTFOUND, "page not cached")
	}
	if err != nil {
		return nil, err
	}

	page.FetchedAt, err = time.Parse(time.RFC3339, fetchedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse fetched_at: %w", err)
	}

	return &page, nil
}

// SavePage stores a page, replacing any previous copy for the URL.
func (c *PageCache) SavePage(ctx context.Context, page *aidharvest.Page) error {
	if page.URL == "" {
		return aidharvest.Errorf(aidharvest.EINVALID, "page URL required")
	}

	if page.FetchedAt.IsZero() {
		page.FetchedAt = time.Now().UTC()
	}
	page.ContentHash = hashContent(page.Content)

	_, err := c.db.ExecContext(ctx, `
		INSERT INTO pages (url, content, content_hash, fetched_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(url) DO UPDATE SET
			content = excluded.content,
			content_hash = excluded.content_hash,
			fetched_at = excluded.fetched_at
	`, page.URL, page.Content, page.ContentHash, page.FetchedAt.Format(time.RFC3339))

	return err
}
