package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/brief"
)

// Ensure LoggingExtractor implements brief.Extractor.
var _ brief.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging of heading counts
// and degraded extracts. Callers decide whether a degraded extract warrants
// a warning.
type LoggingExtractor struct {
	next   brief.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next brief.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the result.
func (e *LoggingExtractor) Extract(html string, opts brief.ExtractOptions) *brief.PageExtract {
	begin := time.Now()
	page := e.next.Extract(html, opts)
	if page.Warning != "" {
		e.logger.Debug("extraction degraded",
			"bytes", len(html),
			"warning", page.Warning,
			"duration", time.Since(begin),
		)
		return page
	}
	e.logger.Debug("extraction",
		"bytes", len(html),
		"headings", page.Headings.Total(),
		"paragraphs", len(page.Paragraphs),
		"duration", time.Since(begin),
	)
	return page
}
