// Package logrus builds a logrus logger on top of a rotating file writer.
package logrus

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/balinomad/go-logroll"
)

// validFormats is the list of supported output formats.
var validFormats = []string{"json", "text"}

// options holds configuration for the logrus logger.
type options struct {
	level  logrus.Level
	format string
}

// Option configures logrus logger creation.
type Option func(*options) error

// WithLevel sets the minimum log level.
func WithLevel(level logrus.Level) Option {
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

// New creates a *logrus.Logger writing to the given rotating writer. The
// writer is wrapped in a lock, so the logger may be used from any goroutine.
func New(w *logroll.Writer, opts ...Option) (*logrus.Logger, error) {
	locked, err := logroll.NewLocked(w)
	if err != nil {
		return nil, err
	}

	o := &options{level: logrus.InfoLevel, format: "json"}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	logger := logrus.New()
	logger.SetOutput(locked)
	logger.SetLevel(o.level)
	if o.format == "text" {
		logger.SetFormatter(&logrus.TextFormatter{DisableColors: true})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	return logger, nil
}
