package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/aidharvest"
)

// Ensure LoggingExtractor implements aidharvest.Extractor.
var _ aidharvest.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging.
type LoggingExtractor struct {
	next   aidharvest.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next aidharvest.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) Extract(html string) (aid *aidharvest.FindingAid, err error) {
	defer func(begin time.Time) {
		items := 0
		leaves := 0
		if aid != nil {
			items = len(aid.Items)
			leaves = len(aidharvest.CollectLeaves(aid.Items))
		}
		e.logger.Info("extract",
			"items", items,
			"leaves", leaves,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(html)
}
