package aidharvest

import "context"

// Fetcher retrieves HTML from URLs.
type Fetcher interface {
	// Fetch returns the HTML document at the URL. Transient failures
	// (5xx, network errors) carry the EUNAVAILABLE code so callers can
	// retry them.
	Fetch(ctx context.Context, url string) (string, error)

	// Close releases transport resources.
	Close() error
}

// DomainLimiter paces outgoing requests per domain.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain,
	// or the context is canceled.
	Wait(ctx context.Context, domain string) error
}

// ArtifactWriter persists the export artifacts for one finding aid.
type ArtifactWriter interface {
	WriteFindingAid(ctx context.Context, aid *FindingAid) error
}
