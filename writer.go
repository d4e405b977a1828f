package logroll

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Writer appends log payloads to a single active file and rotates it
// according to its Policy, delegating archiving to its Labeller.
//
// A Writer holds at most one open file handle at a time and owns it
// exclusively. It is not safe for concurrent use: the expected caller is the
// single dispatch goroutine of a logging library. Wrap it in Locked when
// multiple goroutines write directly.
type Writer struct {
	base       string
	path       string // active file path, owned by the labeller
	maxBackups int
	policy     Policy
	labeller   Labeller
	file       *os.File
	closed     bool
}

// Config holds the configuration for a Writer.
type Config struct {
	// Filename is the base path of the log file. It can be relative to the
	// working directory or absolute.
	Filename string

	// Policy decides when the active file must be rotated.
	// Defaults to a StartupPolicy, which rotates once per process start.
	Policy Policy

	// Labeller names the active file and archives replaced ones.
	// Defaults to a CountLabeller.
	Labeller Labeller

	// MaxBackups is the maximum number of archived files to retain.
	// Zero or below keeps all archives.
	MaxBackups int
}

// NewWriter creates a Writer and opens its active file. When a file already
// exists at the configured path, the policy decides whether it is resumed;
// a refused file is archived through the labeller before a fresh file is
// created, so its content survives.
func NewWriter(cfg *Config) (*Writer, error) {
	if cfg == nil || cfg.Filename == "" {
		return nil, ErrEmptyFilename
	}

	w := &Writer{
		base:       cfg.Filename,
		maxBackups: cfg.MaxBackups,
		policy:     cfg.Policy,
		labeller:   cfg.Labeller,
	}
	if w.policy == nil {
		w.policy = NewStartupPolicy()
	}
	if w.labeller == nil {
		w.labeller = NewCountLabeller()
	}

	if err := w.init(); err != nil {
		return nil, err
	}
	return w, nil
}

// init resumes the existing active file when the policy allows it; otherwise
// any stale file is archived first and writing starts in a fresh file.
func (w *Writer) init() error {
	w.path = w.labeller.LogPath(w.base)

	if _, err := os.Stat(w.path); err == nil {
		if w.policy.ContinueExistingFile(w.path) {
			if err := w.open(); err != nil {
				return err
			}
			// Align in-memory thresholds with the reopened file. This call
			// must not trigger rotation.
			w.policy.ContinueCurrentFile(nil)
			return nil
		}

		// The stale file belongs to an earlier writing period: archive it
		// rather than overwrite it.
		path, err := w.labeller.Roll(w.path, w.maxBackups)
		if err != nil {
			return err
		}
		w.path = path
	}

	w.policy.Reset()
	return w.open()
}

// Write appends p to the active file, rotating first when the policy refuses
// it. The payload that triggers a rotation is written to the new file,
// exactly once. A failed rotation surfaces to the caller and nothing is
// appended.
func (w *Writer) Write(p []byte) (n int, err error) {
	if w.closed {
		return 0, ErrWriterClosed
	}

	if !w.policy.ContinueCurrentFile(p) {
		if err := w.rotate(); err != nil {
			return 0, err
		}
		// Charge the pending payload to the fresh thresholds. A file that
		// was just opened always accepts it.
		w.policy.ContinueCurrentFile(p)
	}

	if w.file == nil {
		// A previous rotation failed past the point of reopening.
		if err := w.open(); err != nil {
			return 0, err
		}
	}
	return w.file.Write(p)
}

// Rotate forces an immediate rollover regardless of policy state.
func (w *Writer) Rotate() error {
	if w.closed {
		return ErrWriterClosed
	}
	return w.rotate()
}

// Sync flushes the active file to stable storage. It also satisfies zap's
// WriteSyncer. Syncing a closed writer is a no-op.
func (w *Writer) Sync() error {
	if w.file == nil {
		return nil
	}
	return w.file.Sync()
}

// Path returns the path of the current active file.
func (w *Writer) Path() string { return w.path }

// Close flushes and closes the active file. It is idempotent: closing an
// already closed writer is a no-op, not an error.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	return w.closeFile()
}

// rotate closes the active file, archives it through the labeller, resets
// the policy, and opens a fresh active file. If archiving fails, the old
// file is reopened so the writer is either fully rotated or not at all;
// a handle is never left pointing at a file that was renamed away.
func (w *Writer) rotate() error {
	if err := w.closeFile(); err != nil {
		return err
	}

	path, err := w.labeller.Roll(w.path, w.maxBackups)
	if err != nil {
		if reopenErr := w.open(); reopenErr != nil {
			return errors.Join(err, reopenErr)
		}
		return err
	}

	w.path = path
	w.policy.Reset()
	return w.open()
}

// open opens the active file for appending, creating it and any missing
// parent directory as needed.
func (w *Writer) open() error {
	if err := os.MkdirAll(filepath.Dir(w.path), 0o755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(w.path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o644)
	if err != nil {
		return openError(w.path, err)
	}
	w.file = f
	return nil
}

// closeFile syncs and closes the active handle.
func (w *Writer) closeFile() error {
	if w.file == nil {
		return nil
	}
	err := w.file.Sync()
	if cerr := w.file.Close(); cerr != nil && err == nil {
		err = cerr
	}
	w.file = nil
	return err
}
