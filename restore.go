package cncsupervisor

import "time"

// delayTick bounds how long a single suspension-aware sleep waits before
// coming up for air to pump pending realtime events and re-check the state
// machine for an abort.
const delayTick = 100 * time.Millisecond

// restoreConditions reapplies the spindle (spin-up delay or at-speed poll,
// laser mode deferring to a resume-time RPM nudge instead) then the coolant,
// in that order, each via a suspension-aware delay. It reports aborted=true
// if a door reopened mid-restore (restartRetract, triggered through the
// event pump below, set park.RestartRetract); the caller is expected to stop
// here rather than continue toward submitting the final plunge/cycle-restart.
func (s *Supervisor) restoreConditions(snap ConditionSnapshot) (aborted bool) {
	if s.park != nil && s.park.RestartRetract {
		return true
	}

	if snap.Spindle.On {
		if s.Settings.LaserMode() {
			s.stepControl.UpdateSpindleRPM = true
		} else if s.Spindle.SetState(snap.Spindle, snap.RPM) {
			if s.HAL.SpindleAtSpeedCapable() {
				for !s.Spindle.State().AtSpeed {
					if s.delaySuspend(delayTick) {
						return true
					}
				}
			} else if s.delaySuspend(s.cfg.SafetyDoorSpindleDelay) {
				return true
			}
		}
	}

	if snap.Coolant.Mask() {
		s.Coolant.SetState(snap.Coolant)
		if s.delaySuspend(s.cfg.SafetyDoorCoolantDelay) {
			return true
		}
	}

	return false
}

// delaySuspend sleeps for d in chunks no larger than delayTick, sampling
// and dispatching realtime events between chunks so a safety-door event
// arriving mid-delay preempts through the normal dispatcher instead of
// being missed. It returns true if that preemption set park.RestartRetract,
// signalling the caller to bail out of whatever restore sequence is
// running.
func (s *Supervisor) delaySuspend(d time.Duration) bool {
	end := s.clock.Now().Add(d)
	for {
		remaining := end.Sub(s.clock.Now())
		if remaining <= 0 {
			return s.park != nil && s.park.RestartRetract
		}
		step := delayTick
		if remaining < step {
			step = remaining
		}
		s.clock.Sleep(step)
		if ev := s.events.Sample(); ev != 0 {
			s.Update(ev)
		}
		if s.park != nil && s.park.RestartRetract {
			return true
		}
	}
}
