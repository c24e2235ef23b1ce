package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/brandsight"
)

// Ensure LoggingGateway implements brandsight.Gateway.
var _ brandsight.Gateway = (*LoggingGateway)(nil)

// LoggingGateway wraps a Gateway with debug logging.
type LoggingGateway struct {
	next   brandsight.Gateway
	logger *slog.Logger
}

// NewLoggingGateway creates a new LoggingGateway.
func NewLoggingGateway(next brandsight.Gateway, logger *slog.Logger) *LoggingGateway {
	return &LoggingGateway{next: next, logger: logger}
}

// Probe logs the probe outcome and delegates to the wrapped gateway.
func (g *LoggingGateway) Probe(ctx context.Context, url string) (err error) {
	defer func(begin time.Time) {
		g.logger.Debug("probe",
			"url", url,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return g.next.Probe(ctx, url)
}

// FetchAsset logs the fetched asset size and delegates to the wrapped
// gateway.
func (g *LoggingGateway) FetchAsset(ctx context.Context, url string) (asset *brandsight.Asset, err error) {
	defer func(begin time.Time) {
		var size int
		var contentType string
		if asset != nil {
			size = len(asset.Body)
			contentType = asset.ContentType
		}
		g.logger.Info("fetch asset",
			"url", url,
			"contentType", contentType,
			"bytes", size,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return g.next.FetchAsset(ctx, url)
}
