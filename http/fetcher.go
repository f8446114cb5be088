// Package http provides an HTTP-based implementation of
// aidharvest.Fetcher. Finding aid pages are server-rendered static HTML,
// so plain HTTP requests are sufficient.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/aidharvest"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 30 * time.Second

// Ensure Fetcher implements aidharvest.Fetcher at compile time.
var _ aidharvest.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using HTTP requests. Failures
// are mapped to error codes so the harvest layer can decide what to
// retry: 5xx and transport-level errors are EUNAVAILABLE, 404 is
// ENOTFOUND, anything else non-200 is EINTERNAL.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (30s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML content from the given URL.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", aidharvest.Errorf(aidharvest.EINVALID, "invalid request for %s: %v", url, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		// Timeouts and connection failures are transient.
		return "", aidharvest.Errorf(aidharvest.EUNAVAILABLE, "fetch %s: %v", url, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusNotFound:
		return "", aidharvest.Errorf(aidharvest.ENOTFOUND, "HTTP 404 for %s", url)
	case resp.StatusCode >= 500:
		return "", aidharvest.Errorf(aidharvest.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	default:
		return "", aidharvest.Errorf(aidharvest.EINTERNAL, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", aidharvest.Errorf(aidharvest.EUNAVAILABLE, "read %s: %v", url, err)
	}

	return string(body), nil
}

// Close releases resources. For the HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
