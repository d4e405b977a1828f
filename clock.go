package logroll

import "time"

// Clock supplies the current wall-clock time. The engine never calls
// time.Now directly, so time-based policies and labellers can be driven
// deterministically in tests.
type Clock interface {
	Now() time.Time
}

// systemClock is the default Clock backed by time.Now.
type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns the default wall-clock implementation.
func SystemClock() Clock { return systemClock{} }
