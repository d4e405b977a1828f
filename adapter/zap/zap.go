// Package zap builds a zap logger on top of a rotating file writer.
package zap

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/balinomad/go-logroll"
)

// validFormats is the list of supported output formats.
var validFormats = []string{"json", "console"}

// options holds configuration for the zap logger.
type options struct {
	level  zapcore.Level
	format string
}

// Option configures zap logger creation.
type Option func(*options) error

// WithLevel sets the minimum log level.
func WithLevel(level zapcore.Level) Option {
	return func(o *options) error {
		o.level = level
		return nil
	}
}

// WithFormat sets the output format ("json" or "console").
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

// New creates a *zap.Logger writing to the given rotating writer. The writer
// is wrapped in a lock, so the logger may be used from any goroutine; its
// Sync propagates to the file.
func New(w *logroll.Writer, opts ...Option) (*zap.Logger, error) {
	locked, err := logroll.NewLocked(w)
	if err != nil {
		return nil, err
	}

	o := &options{level: zapcore.InfoLevel, format: "json"}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	var encoder zapcore.Encoder
	if o.format == "console" {
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	} else {
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(locked), zap.NewAtomicLevelAt(o.level))
	return zap.New(core), nil
}
