// Package zerolog builds a zerolog logger on top of a rotating file writer.
package zerolog

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/balinomad/go-logroll"
)

// options holds configuration for the zerolog logger.
type options struct {
	level zerolog.Level
}

// Option configures zerolog logger creation.
type Option func(*options) error

// WithLevel sets the minimum log level.
func WithLevel(level zerolog.Level) Option {
	return func(o *options) error {
		o.level = level
		return nil
	}
}

// New creates a zerolog.Logger writing to the given rotating writer. The
// writer is wrapped in a lock, so the logger may be used from any goroutine.
func New(w *logroll.Writer, opts ...Option) (zerolog.Logger, error) {
	locked, err := logroll.NewLocked(w)
	if err != nil {
		return zerolog.Logger{}, err
	}

	o := &options{level: zerolog.InfoLevel}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return zerolog.Logger{}, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	return zerolog.New(locked).Level(o.level).With().Timestamp().Logger(), nil
}
