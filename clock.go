package cncsupervisor

import "time"

// realClock is the default Clock, backed by the standard library.
type realClock struct{}

func (realClock) Now() time.Time        { return time.Now() }
func (realClock) Sleep(d time.Duration) { time.Sleep(d) }
