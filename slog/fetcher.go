// Package slog provides logging decorators around the brandsight
// interfaces using the standard structured logger.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/brandsight"
)

// Ensure LoggingFetcher implements brandsight.Fetcher.
var _ brandsight.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with debug logging.
type LoggingFetcher struct {
	next   brandsight.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next brandsight.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch logs the URL being fetched and delegates to the wrapped fetcher.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (page *brandsight.Page, err error) {
	defer func(begin time.Time) {
		var size int
		var finalURL string
		if page != nil {
			size = len(page.HTML)
			finalURL = page.FinalURL
		}
		f.logger.Info("fetch",
			"url", url,
			"finalUrl", finalURL,
			"bytes", size,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
