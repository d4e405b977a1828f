// Package slog builds a log/slog logger on top of a rotating file writer.
package slog

import (
	"fmt"
	"log/slog"

	"github.com/balinomad/go-logroll"
)

// validFormats is the list of supported output formats.
var validFormats = []string{"json", "text"}

// options holds configuration for the slog logger.
type options struct {
	level  slog.Level
	format string
}

// Option configures slog logger creation.
type Option func(*options) error

// WithLevel sets the minimum log level.
func WithLevel(level slog.Level) Option {
	return func(o *options) error {
		o.level = level
		return nil
	}
}

// WithFormat sets the output format ("json" or "text").
func WithFormat(format string) Option {
	return func(o *options) error {
		for _, f := range validFormats {
			if format == f {
				o.format = format
				return nil
			}
		}
		return fmt.Errorf("invalid format: %q, must be one of %v", format, validFormats)
	}
}

// New creates a *slog.Logger writing to the given rotating writer. The
// writer is wrapped in a lock, so the logger may be used from any goroutine.
func New(w *logroll.Writer, opts ...Option) (*slog.Logger, error) {
	locked, err := logroll.NewLocked(w)
	if err != nil {
		return nil, err
	}

	o := &options{level: slog.LevelInfo, format: "json"}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	handlerOpts := &slog.HandlerOptions{Level: o.level}
	var handler slog.Handler
	if o.format == "text" {
		handler = slog.NewTextHandler(locked, handlerOpts)
	} else {
		handler = slog.NewJSONHandler(locked, handlerOpts)
	}
	return slog.New(handler), nil
}
