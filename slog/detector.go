package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/serp"
)

// Ensure LoggingDetector implements serp.PageDetector.
var _ serp.PageDetector = (*LoggingDetector)(nil)

// LoggingDetector wraps a PageDetector and logs which kind of page
// produced no results.
type LoggingDetector struct {
	next   serp.PageDetector
	logger *slog.Logger
}

// NewLoggingDetector creates a new LoggingDetector.
func NewLoggingDetector(next serp.PageDetector, logger *slog.Logger) *LoggingDetector {
	return &LoggingDetector{next: next, logger: logger}
}

// Detect delegates to the wrapped detector and logs the outcome.
func (d *LoggingDetector) Detect(html string) serp.PageKind {
	begin := time.Now()
	kind := d.next.Detect(html)
	name := string(kind)
	if kind == serp.PageUnknown {
		name = "(unknown)"
	}
	d.logger.Info("page detection",
		"kind", name,
		"bytes", len(html),
		"duration", time.Since(begin),
	)
	return kind
}
