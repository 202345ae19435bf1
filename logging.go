package cncsupervisor

import (
	"time"

	"github.com/joeycumines/go-catrate"
	"github.com/joeycumines/logiface"
	"github.com/joeycumines/stumpy"
)

// Logger is the supervisor's own logging indirection, following
// eventloop/logging.go's shape (a small interface in front of whatever
// structured-logging backend is actually installed, defaulting to a no-op).
// Fields carry structured values (machine state and the flags relevant to
// the logged transition) rather than formatted strings.
type Logger interface {
	Debug(msg string, fields map[string]any)
	Info(msg string, fields map[string]any)
	Warn(msg string, fields map[string]any)
	Error(msg string, fields map[string]any)
}

type noopLogger struct{}

func (noopLogger) Debug(string, map[string]any) {}
func (noopLogger) Info(string, map[string]any)  {}
func (noopLogger) Warn(string, map[string]any)  {}
func (noopLogger) Error(string, map[string]any) {}

// NewNoopLogger returns a Logger that discards everything, the default when
// no WithLogger option is supplied.
func NewNoopLogger() Logger { return noopLogger{} }

// stumpyLogger adapts a *logiface.Logger[*stumpy.Event] (stumpy being the
// logiface "model" JSON backend) to the supervisor's Logger interface.
type stumpyLogger struct {
	l *logiface.Logger[*stumpy.Event]
}

// NewStumpyLogger builds a Logger backed by the given logiface/stumpy
// logger, typically constructed with stumpy.L.New(...) as shown in
// logiface-stumpy's own example tests.
func NewStumpyLogger(l *logiface.Logger[*stumpy.Event]) Logger {
	return stumpyLogger{l: l}
}

func (s stumpyLogger) Debug(msg string, fields map[string]any) { logWith(s.l.Debug(), msg, fields) }
func (s stumpyLogger) Info(msg string, fields map[string]any)  { logWith(s.l.Info(), msg, fields) }
func (s stumpyLogger) Warn(msg string, fields map[string]any)  { logWith(s.l.Warning(), msg, fields) }
func (s stumpyLogger) Error(msg string, fields map[string]any) { logWith(s.l.Err(), msg, fields) }

func logWith(b *logiface.Builder[*stumpy.Event], msg string, fields map[string]any) {
	for k, v := range fields {
		b = b.Any(k, v)
	}
	b.Log(msg)
}

// EventLimiter throttles log emission per category, so a flapping safety
// door cannot flood the log at realtime-tick frequency. It wraps
// go-catrate's multi-window sliding limiter; the supervisor's control flow
// is entirely unaffected by it, only what gets logged. Refused transitions
// are not logged at all.
type EventLimiter struct {
	limiter *catrate.Limiter
}

// NewEventLimiter builds an EventLimiter allowing up to burst occurrences
// of a category within window, e.g. NewEventLimiter(time.Second, 1) to log
// a given message at most once per second.
func NewEventLimiter(window time.Duration, burst int) *EventLimiter {
	return &EventLimiter{limiter: catrate.NewLimiter(map[time.Duration]int{window: burst})}
}

// Allow reports whether a log line in category should be emitted right now.
func (e *EventLimiter) Allow(category string) bool {
	if e == nil || e.limiter == nil {
		return true
	}
	_, ok := e.limiter.Allow(category)
	return ok
}

// limitedLogger wraps a Logger so that every call first consults limiter
// under the message string as the rate-limiting category.
type limitedLogger struct {
	next    Logger
	limiter *EventLimiter
}

func newLimitedLogger(next Logger, limiter *EventLimiter) Logger {
	if limiter == nil {
		return next
	}
	return limitedLogger{next: next, limiter: limiter}
}

func (l limitedLogger) Debug(msg string, fields map[string]any) {
	if l.limiter.Allow(msg) {
		l.next.Debug(msg, fields)
	}
}

func (l limitedLogger) Info(msg string, fields map[string]any) {
	if l.limiter.Allow(msg) {
		l.next.Info(msg, fields)
	}
}

func (l limitedLogger) Warn(msg string, fields map[string]any) {
	if l.limiter.Allow(msg) {
		l.next.Warn(msg, fields)
	}
}

func (l limitedLogger) Error(msg string, fields map[string]any) {
	if l.limiter.Allow(msg) {
		l.next.Error(msg, fields)
	}
}
