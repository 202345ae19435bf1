package cncsupervisor

import (
	"testing"
	"time"
)

type recordingLogger struct {
	calls []string
}

func (r *recordingLogger) Debug(msg string, _ map[string]any) { r.calls = append(r.calls, "debug:"+msg) }
func (r *recordingLogger) Info(msg string, _ map[string]any)  { r.calls = append(r.calls, "info:"+msg) }
func (r *recordingLogger) Warn(msg string, _ map[string]any)  { r.calls = append(r.calls, "warn:"+msg) }
func (r *recordingLogger) Error(msg string, _ map[string]any) { r.calls = append(r.calls, "error:"+msg) }

func TestNoopLoggerDiscardsEverything(t *testing.T) {
	l := NewNoopLogger()
	// Exercising every method purely for panics-on-nil-map safety; nothing
	// is observable, which is the point.
	l.Debug("x", nil)
	l.Info("x", nil)
	l.Warn("x", nil)
	l.Error("x", nil)
}

func TestEventLimiterAllowsWithinBurstThenThrottles(t *testing.T) {
	l := NewEventLimiter(time.Minute, 2)

	if !l.Allow("door-flap") {
		t.Fatal("1st Allow() = false, want true")
	}
	if !l.Allow("door-flap") {
		t.Fatal("2nd Allow() = false, want true")
	}
	if l.Allow("door-flap") {
		t.Fatal("3rd Allow() = true, want false (burst exhausted)")
	}
}

func TestEventLimiterCategoriesAreIndependent(t *testing.T) {
	l := NewEventLimiter(time.Minute, 1)

	if !l.Allow("a") {
		t.Fatal("Allow(a) = false, want true")
	}
	if !l.Allow("b") {
		t.Fatal("Allow(b) = false, want true (independent category)")
	}
	if l.Allow("a") {
		t.Fatal("second Allow(a) = true, want false")
	}
}

func TestEventLimiterNilIsAlwaysAllow(t *testing.T) {
	var l *EventLimiter
	for i := 0; i < 5; i++ {
		if !l.Allow("anything") {
			t.Fatal("nil *EventLimiter must always allow")
		}
	}
}

func TestLimitedLoggerThrottlesUnderlying(t *testing.T) {
	rec := &recordingLogger{}
	limiter := NewEventLimiter(time.Minute, 1)
	l := newLimitedLogger(rec, limiter)

	l.Warn("door-ajar", nil)
	l.Warn("door-ajar", nil)
	l.Warn("door-ajar", nil)

	if len(rec.calls) != 1 {
		t.Fatalf("underlying logger called %d times, want 1", len(rec.calls))
	}
}

func TestNewLimitedLoggerNoLimiterPassesThrough(t *testing.T) {
	rec := &recordingLogger{}
	l := newLimitedLogger(rec, nil)
	if l != Logger(rec) {
		t.Error("newLimitedLogger with nil limiter should return next unchanged")
	}
}
