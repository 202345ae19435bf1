package cncsupervisor

// initiateHold captures the restore condition, arranges for the currently
// executing block (if any) to decelerate, and records where execution
// should resume once the hold completes. It returns true when a cycle (not
// jog) was actually running, which the caller uses to decide whether to
// wait for a real completion or synthesize one immediately.
func (s *Supervisor) initiateHold(newState State) bool {
	if s.cfg.ParkingEnabled {
		s.park.PlanData = PlanData{
			SystemMotion:   true,
			NoFeedOverride: true,
			LineNumber:     s.cfg.ParkingMotionLineNumber,
		}
		s.park.RetractWaypoint = s.cfg.ParkingPulloutIncrement
	}

	if block, ok := s.Planner.CurrentBlock(); ok {
		s.snapshot = block.Condition
	} else {
		spindleModal, liveCoolant := s.GCode.Modal()
		s.snapshot = ConditionSnapshot{
			Spindle: spindleModal,
			Coolant: liveCoolant.Merge(s.Coolant.State()),
			RPM:     s.GCode.SpindleRPM(),
		}
	}

	if s.cfg.DisableLaserDuringHold && s.Settings.LaserMode() {
		s.Accessory.EnqueueOverride(OverrideSpindleStop)
	}

	wasCycleOrJog := s.state == StateCycle || s.state == StateJog
	if wasCycleOrJog {
		s.Planner.UpdatePlanBlockParameters()
		s.stepControl.ExecuteHold = true
		s.handler = hAwaitHold
	}

	s.logger.Debug("hold condition captured", map[string]any{
		"newState":      newState.String(),
		"wasCycleOrJog": wasCycleOrJog,
	})

	if newState == StateHold {
		s.holding = HoldPending
	} else {
		s.parking = ParkingRetracting
	}

	s.suspend = true
	if s.state == StateJog {
		s.pendingState = newState
	} else {
		s.pendingState = StateIdle
	}

	return s.state == StateCycle
}
