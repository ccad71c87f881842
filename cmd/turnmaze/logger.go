package main

import (
	"io"
	"log/slog"
	"strings"
)

// newLogger creates a logger writing to outW. It does not set the global
// logger.
func newLogger(level slog.Level, format string, outW io.Writer) *slog.Logger {
	handlerOpts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if strings.EqualFold(format, "json") {
		handler = slog.NewJSONHandler(outW, handlerOpts)
	} else {
		handler = slog.NewTextHandler(outW, handlerOpts)
	}
	return slog.New(handler)
}
