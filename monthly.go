package logroll

import (
	"os"
	"time"
)

// MonthlyPolicy triggers a rollover at midnight on the first day of every
// calendar month.
type MonthlyPolicy struct {
	clock Clock
	next  time.Time

	statFn func(string) (os.FileInfo, error) // nil means os.Stat; test hook
}

var _ Policy = (*MonthlyPolicy)(nil)

// NewMonthlyPolicy creates a policy that rotates on the first day of each
// month.
func NewMonthlyPolicy(opts ...Option) *MonthlyPolicy {
	p := &MonthlyPolicy{clock: newOptions(opts).clock}
	p.Reset()
	return p
}

// Reset schedules the next rollover at the start of the following month.
// A moment exactly at the start of a month schedules the month after,
// matching the strict inequality the daily policy applies.
func (p *MonthlyPolicy) Reset() {
	p.next = firstOfMonth(p.clock.Now()).AddDate(0, 1, 0)
}

// ContinueCurrentFile implements the Policy interface.
func (p *MonthlyPolicy) ContinueCurrentFile([]byte) bool {
	return p.clock.Now().Before(p.next)
}

// ContinueExistingFile reports whether the file at path was last modified
// within the current calendar month.
func (p *MonthlyPolicy) ContinueExistingFile(path string) bool {
	info, err := p.stat(path)
	if err != nil {
		return false
	}
	return !info.ModTime().Before(firstOfMonth(p.clock.Now()))
}

// firstOfMonth returns midnight on the first day of t's month.
func firstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func (p *MonthlyPolicy) stat(path string) (os.FileInfo, error) {
	if p.statFn != nil {
		return p.statFn(path)
	}
	return os.Stat(path)
}
