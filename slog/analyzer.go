package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/brandsight"
)

// Ensure LoggingAnalyzer implements brandsight.Analyzer.
var _ brandsight.Analyzer = (*LoggingAnalyzer)(nil)

// LoggingAnalyzer wraps an Analyzer with debug logging.
type LoggingAnalyzer struct {
	next   brandsight.Analyzer
	logger *slog.Logger
}

// NewLoggingAnalyzer creates a new LoggingAnalyzer.
func NewLoggingAnalyzer(next brandsight.Analyzer, logger *slog.Logger) *LoggingAnalyzer {
	return &LoggingAnalyzer{next: next, logger: logger}
}

// Analyze logs a summary of the extracted signal and delegates to the
// wrapped analyzer.
func (a *LoggingAnalyzer) Analyze(ctx context.Context, html, baseURL string) (sig *brandsight.Signal, err error) {
	defer func(begin time.Time) {
		var colors, fonts, images int
		var logo bool
		if sig != nil {
			colors = len(sig.Colors)
			fonts = len(sig.Fonts)
			images = len(sig.BrandImages)
			logo = sig.LogoURL != ""
		}
		a.logger.Info("analyze",
			"baseUrl", baseURL,
			"colors", colors,
			"fonts", fonts,
			"brandImages", images,
			"logo", logo,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return a.next.Analyze(ctx, html, baseURL)
}
