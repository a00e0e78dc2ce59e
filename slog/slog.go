// Package slog provides logging decorators for the serp interfaces.
package slog

import (
	"io"
	"log/slog"
)

// NewLogger returns a text logger writing to w. Debug enables debug level
// output; otherwise only warnings and errors are logged.
func NewLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
