// Package log15 builds a log15 logger on top of a rotating file writer.
package log15

import (
	"fmt"

	"github.com/inconshreveable/log15/v3"

	"github.com/balinomad/go-logroll"
)

// validFormats is the list of supported output formats.
var validFormats = []string{"logfmt", "json"}

// options holds configuration for the log15 logger.
type options struct {
	level  log15.Lvl
	format string
}

// Option configures log15 logger creation.
type Option func(*options) error

// WithLevel sets the maximum log level that is written.
func WithLevel(level log15.Lvl) Option {
	return func(o *options) error {
		o.level = level
		return nil
	}
}

// WithFormat sets the output format ("logfmt" or "json").
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

// New creates a log15.Logger writing to the given rotating writer. The
// writer is wrapped in a lock, so the logger may be used from any goroutine.
func New(w *logroll.Writer, opts ...Option) (log15.Logger, error) {
	locked, err := logroll.NewLocked(w)
	if err != nil {
		return nil, err
	}

	o := &options{level: log15.LvlInfo, format: "logfmt"}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	format := log15.LogfmtFormat()
	if o.format == "json" {
		format = log15.JsonFormat()
	}

	logger := log15.New()
	logger.SetHandler(log15.LvlFilterHandler(o.level, log15.StreamHandler(locked, format)))
	return logger, nil
}
