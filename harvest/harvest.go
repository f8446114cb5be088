// Package harvest orchestrates finding aid batch jobs. It coordinates
// fetching, hierarchy extraction, artifact export, and record
// persistence for a set of finding aid URLs.
package harvest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/fwojciec/aidharvest"
)

// Harvester runs sequential batch harvests over a set of finding aid
// URLs. Documents are processed one at a time: the remote service is
// paced by the rate limiter, not by internal scheduling, and a failing
// URL is reported and skipped rather than aborting the run.
type Harvester struct {
	Fetcher     aidharvest.Fetcher
	Extractor   aidharvest.Extractor
	Writer      aidharvest.ArtifactWriter
	Records     aidharvest.RecordService // optional
	Pages       aidharvest.PageCache     // optional
	RateLimiter aidharvest.DomainLimiter // optional
	RetryDelays []time.Duration
}

// Result holds the outcome of a harvest run.
type Result struct {
	Harvested int
	Failed    int
	Leaves    int
	Bytes     int
}

// ProgressEvent reports progress during a harvest run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting harvest progress.
type ProgressFunc func(event ProgressEvent)

// Run harvests every URL in order. Per-URL failures increment
// Result.Failed and are reported through the progress callback with the
// offending URL; only context cancellation stops the run early.
func (h *Harvester) Run(ctx context.Context, urls []string, progress ProgressFunc) (*Result, error) {
	var result Result
	total := len(urls)

	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	for i, rawURL := range urls {
		if err := ctx.Err(); err != nil {
			return &result, err
		}

		if err := h.harvestOne(ctx, rawURL, &result); err != nil {
			if ctx.Err() != nil {
				return &result, ctx.Err()
			}
			result.Failed++
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressFailed,
					Completed: i + 1,
					Total:     total,
					URL:       rawURL,
					Error:     err,
				})
			}
			continue
		}

		result.Harvested++
		if progress != nil {
			progress(ProgressEvent{
				Type:      ProgressCompleted,
				Completed: i + 1,
				Total:     total,
				URL:       rawURL,
			})
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	return &result, nil
}

// harvestOne converts a single finding aid end to end: fetch (or cache
// hit), extract, export artifacts, persist the record.
func (h *Harvester) harvestOne(ctx context.Context, rawURL string, result *Result) error {
	objectID, err := aidharvest.ObjectIDFromURL(rawURL)
	if err != nil {
		return err
	}

	html, err := h.page(ctx, rawURL)
	if err != nil {
		return err
	}

	aid, err := h.Extractor.Extract(html)
	if err != nil {
		return fmt.Errorf("convert %s: %w", rawURL, err)
	}

	aid.ObjectID = objectID
	aid.SourceURL = rawURL
	aid.HarvestedAt = time.Now().UTC()

	if h.Writer != nil {
		if err := h.Writer.WriteFindingAid(ctx, aid); err != nil {
			return err
		}
	}

	content, err := json.Marshal(aid)
	if err != nil {
		return err
	}
	leaves := len(aidharvest.CollectLeaves(aid.Items))

	if h.Records != nil {
		record := &aidharvest.Record{
			ObjectID:         objectID,
			SourceURL:        rawURL,
			Title:            aid.Title(),
			CollectionNumber: aid.CollectionNumber(),
			Content:          string(content),
			LeafCount:        leaves,
		}
		if err := h.Records.CreateRecord(ctx, record); err != nil {
			return err
		}
	}

	result.Leaves += leaves
	result.Bytes += len(content)

	return nil
}

// page returns the document HTML, consulting the page cache before the
// network. Cache write failures are not fatal: the harvest already has
// the content it needs.
func (h *Harvester) page(ctx context.Context, rawURL string) (string, error) {
	if h.Pages != nil {
		if cached, err := h.Pages.FindPage(ctx, rawURL); err == nil {
			return cached.Content, nil
		}
	}

	if h.RateLimiter != nil {
		u, err := url.Parse(rawURL)
		if err != nil {
			return "", aidharvest.Errorf(aidharvest.EINVALID, "invalid finding aid URL %q", rawURL)
		}
		if err := h.RateLimiter.Wait(ctx, u.Host); err != nil {
			return "", err
		}
	}

	delays := h.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	html, err := FetchWithRetryDelays(ctx, rawURL, h.Fetcher.Fetch, nil, delays)
	if err != nil {
		return "", err
	}

	if h.Pages != nil {
		_ = h.Pages.SavePage(ctx, &aidharvest.Page{
			URL:       rawURL,
			Content:   html,
			FetchedAt: time.Now().UTC(),
		})
	}

	return html, nil
}
