// Package logroll implements file rotation for append-only log files.
//
// Purpose
//
//	logroll.Writer appends rendered log payloads to a single active file and
//	rotates it when its Policy says the current writing period is over. The
//	act of archiving a replaced file and pruning old archives belongs to a
//	Labeller. Policies and labellers are small pluggable objects, so rotation
//	by size, by time of day, by calendar month, or on every start-up can be
//	combined freely with numeric or timestamped archive naming.
//
// Intended use
//   - As the file sink of a logging library. The engine receives already
//     rendered bytes; formatting, level filtering, and caller lookup belong
//     to the logger in front of it. The adapter subpackages bind the common
//     logging backends (zap, zerolog, logrus, log15, slog) to a Writer.
//   - Process restarts are first class: on start-up the policy inspects the
//     existing file's metadata and decides whether to resume it or to
//     archive it and begin fresh. No content is ever silently overwritten.
//
// Guarantees & limitations
//   - The payload that triggers a rotation is written to the new active
//     file, exactly once. Rotation failures surface to the caller and leave
//     the writer either fully rotated or not rotated at all.
//   - A Writer assumes a single writing goroutine (the usual dispatch layer
//     of a logging library). Locked provides the synchronization boundary
//     for direct concurrent use.
//   - A single writer process per file is assumed. Multi-process
//     coordination and archive compression are out of scope; the
//     adapter/lumberjack subpackage covers callers that need compressed or
//     age-pruned archives.
package logroll

// options holds optional configuration shared by policies and labellers.
type options struct {
	clock Clock
}

// Option sets optional configuration on policies and labellers.
type Option func(*options)

// WithClock substitutes the wall clock used for rollover arithmetic and
// archive naming. Mainly useful for deterministic tests. A nil clock is
// ignored.
func WithClock(c Clock) Option {
	return func(o *options) {
		if c != nil {
			o.clock = c
		}
	}
}

// newOptions applies opts over the defaults.
func newOptions(opts []Option) *options {
	o := &options{clock: systemClock{}}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o
}
