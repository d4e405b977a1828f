package logroll

import (
	"fmt"
	"os"
)

// SizePolicy triggers a rollover once the active file reaches a configured
// size in bytes. The size is tracked incrementally; the file is stat'ed only
// once, when an existing file is probed at start-up.
type SizePolicy struct {
	maxBytes    int64
	accumulated int64

	statFn func(string) (os.FileInfo, error) // nil means os.Stat; test hook
}

var _ Policy = (*SizePolicy)(nil)

// NewSizePolicy creates a policy that rotates once the active file holds
// maxBytes bytes. A write that lands exactly on the threshold completes;
// the next write triggers the rotation.
func NewSizePolicy(maxBytes int64) (*SizePolicy, error) {
	if maxBytes <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidMaxSize, maxBytes)
	}
	return &SizePolicy{maxBytes: maxBytes}, nil
}

// ContinueExistingFile reports whether the file at path is still below the
// size threshold. It seeds the accumulated size from the real on-disk size;
// counting only bytes written by this process would fire the rollover far
// too late on a continued file.
func (p *SizePolicy) ContinueExistingFile(path string) bool {
	info, err := p.stat(path)
	if err != nil {
		return false
	}
	if info.Size() >= p.maxBytes {
		return false
	}
	p.accumulated = info.Size()
	return true
}

// ContinueCurrentFile implements the Policy interface. A nil payload is the
// post-open validation call and does not change the accumulated size.
func (p *SizePolicy) ContinueCurrentFile(payload []byte) bool {
	if payload == nil {
		return p.accumulated < p.maxBytes
	}
	p.accumulated += int64(len(payload))
	return p.accumulated <= p.maxBytes
}

// Reset implements the Policy interface.
func (p *SizePolicy) Reset() {
	p.accumulated = 0
}

func (p *SizePolicy) stat(path string) (os.FileInfo, error) {
	if p.statFn != nil {
		return p.statFn(path)
	}
	return os.Stat(path)
}
