// Package lumberjack adapts gopkg.in/natefinch/lumberjack.v2 as a drop-in
// log sink for callers that want gzip-compressed or age-pruned archives,
// which the logroll engine itself does not provide. Rotation is size-based
// only; policies and labellers do not apply here.
package lumberjack

import (
	"fmt"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/balinomad/go-logroll"
)

// Config exposes the most common lumberjack options.
type Config struct {
	// Filename is the file to write logs to.
	Filename string
	// MaxSize is the maximum size in megabytes of the log file before it gets rotated.
	MaxSize int
	// MaxAge is the maximum number of days to retain old log files based on timestamp.
	MaxAge int
	// MaxBackups is the maximum number of old log files to retain.
	MaxBackups int
	// Compress determines if the rotated log files should be compressed using gzip.
	Compress bool
	// LocalTime names backup files in local time instead of UTC.
	LocalTime bool
}

// New creates an io.WriteCloser that logs to a file and rotates it based on
// the provided configuration using the lumberjack library. The returned
// writer is safe for concurrent use.
func New(cfg *Config) (*lumberjack.Logger, error) {
	if cfg == nil || cfg.Filename == "" {
		return nil, logroll.ErrEmptyFilename
	}
	if cfg.MaxSize < 0 {
		return nil, fmt.Errorf("%w: got %d", logroll.ErrInvalidMaxSize, cfg.MaxSize)
	}
	if cfg.MaxAge < 0 {
		return nil, fmt.Errorf("max age must be non-negative, got %d", cfg.MaxAge)
	}
	if cfg.MaxBackups < 0 {
		return nil, fmt.Errorf("max backups must be non-negative, got %d", cfg.MaxBackups)
	}

	return &lumberjack.Logger{
		Filename:   cfg.Filename,
		MaxSize:    cfg.MaxSize,
		MaxAge:     cfg.MaxAge,
		MaxBackups: cfg.MaxBackups,
		Compress:   cfg.Compress,
		LocalTime:  cfg.LocalTime,
	}, nil
}
