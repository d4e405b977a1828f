package logroll

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// DailyPolicy triggers a rollover once per day at a fixed time of day,
// interpreted in the local timezone of the clock's time values.
type DailyPolicy struct {
	hour   int
	minute int
	clock  Clock
	next   time.Time // instant at which the current writing period ends

	statFn func(string) (os.FileInfo, error) // nil means os.Stat; test hook
}

var _ Policy = (*DailyPolicy)(nil)

// NewDailyPolicy creates a policy that rotates at the given time of day.
// The time is given as "H" or "H:MM" in 24-hour notation; an empty string
// means midnight.
func NewDailyPolicy(at string, opts ...Option) (*DailyPolicy, error) {
	hour, minute, err := parseTimeOfDay(at)
	if err != nil {
		return nil, err
	}
	p := &DailyPolicy{
		hour:   hour,
		minute: minute,
		clock:  newOptions(opts).clock,
	}
	p.Reset()
	return p, nil
}

// parseTimeOfDay parses "H" or "H:MM". An empty string means midnight.
func parseTimeOfDay(s string) (hour, minute int, err error) {
	if s == "" {
		return 0, 0, nil
	}
	h, m, hasMinute := strings.Cut(s, ":")
	hour, err = strconv.Atoi(h)
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, timeOfDayError(s)
	}
	if hasMinute {
		minute, err = strconv.Atoi(m)
		if err != nil || minute < 0 || minute > 59 {
			return 0, 0, timeOfDayError(s)
		}
	}
	return hour, minute, nil
}

// Reset schedules the next rollover at the first instant strictly after the
// current moment whose time of day matches the threshold. When the current
// moment is exactly on the threshold, the rollover moves to the following
// day; anything else would fire a spurious rollover immediately.
func (p *DailyPolicy) Reset() {
	now := p.clock.Now()
	next := p.threshold(now)
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	p.next = next
}

// ContinueCurrentFile implements the Policy interface.
func (p *DailyPolicy) ContinueCurrentFile([]byte) bool {
	return p.clock.Now().Before(p.next)
}

// ContinueExistingFile reports whether the file at path was last modified
// within the current writing period. A file touched exactly at the period
// boundary still belongs to the period; one touched any earlier does not.
func (p *DailyPolicy) ContinueExistingFile(path string) bool {
	info, err := p.stat(path)
	if err != nil {
		return false
	}
	return !info.ModTime().Before(p.boundary(p.clock.Now()))
}

// threshold returns the threshold instant on the calendar day of t.
func (p *DailyPolicy) threshold(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), p.hour, p.minute, 0, 0, t.Location())
}

// boundary returns the most recent threshold crossing at or before now.
func (p *DailyPolicy) boundary(now time.Time) time.Time {
	b := p.threshold(now)
	if b.After(now) {
		b = b.AddDate(0, 0, -1)
	}
	return b
}

func (p *DailyPolicy) stat(path string) (os.FileInfo, error) {
	if p.statFn != nil {
		return p.statFn(path)
	}
	return os.Stat(path)
}
