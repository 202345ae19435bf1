package cncsupervisor

// StepControl mirrors the handful of flags the stepper segment buffer and
// the supervisor use to coordinate a hold/resume: whether a hold is being
// executed, whether the current motion is a system (parking) motion rather
// than program motion, and whether the spindle RPM needs to be reapplied on
// resume. Per the concurrency model these are main-loop-owned; nothing here
// needs atomics.
type StepControl struct {
	ExecuteHold      bool
	ExecuteSysMotion bool
	UpdateSpindleRPM bool
}

// Reset clears all flags, as happens whenever the machine returns to Idle or
// a hold finishes reinitializing the planner.
func (c *StepControl) Reset() {
	*c = StepControl{}
}
