package logroll

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrEmptyFilename    = errors.New("filename cannot be empty")
	ErrInvalidMaxSize   = errors.New("max size must be positive")
	ErrInvalidTimeOfDay = errors.New("invalid time of day")
	ErrNilWriter        = errors.New("writer cannot be nil")
	ErrWriterClosed     = errors.New("writer is closed")
)

// timeOfDayError returns an error with ErrInvalidTimeOfDay.
func timeOfDayError(value string) error {
	return fmt.Errorf("%w: %q, must be \"H\" or \"H:MM\" in 24-hour time", ErrInvalidTimeOfDay, value)
}

// renameError returns an error describing a failed archive rename.
func renameError(oldpath, newpath string, err error) error {
	return fmt.Errorf("failed to rename %s to %s: %w", oldpath, newpath, err)
}

// openError returns an error describing a failed open of the active file.
func openError(path string, err error) error {
	return fmt.Errorf("failed to open log file %s: %w", path, err)
}
