package logroll

import (
	"io"
	"sync"
)

// Locked serializes access to a Writer, providing the synchronization
// boundary the engine itself deliberately omits. It is what the adapter
// subpackages hand to logging backends, which may log from many goroutines.
type Locked struct {
	mu sync.Mutex
	w  *Writer
}

// Ensure Locked implements io.WriteCloser.
var _ io.WriteCloser = (*Locked)(nil)

// NewLocked wraps the given writer. The writer must be non-nil and must not
// be used directly afterwards.
func NewLocked(w *Writer) (*Locked, error) {
	if w == nil {
		return nil, ErrNilWriter
	}
	return &Locked{w: w}, nil
}

// Write appends p under the lock.
func (l *Locked) Write(p []byte) (n int, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}

// Rotate forces a rollover under the lock.
func (l *Locked) Rotate() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Rotate()
}

// Sync flushes the active file under the lock.
func (l *Locked) Sync() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Sync()
}

// Close closes the underlying writer under the lock.
func (l *Locked) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Close()
}
