package cncsupervisor

// The state handlers below are stateless singleton values of the handler
// interface, installed into Supervisor.handler in place of a raw function
// pointer: idle, cycle, await-motion-cancel, await-hold,
// await-waypoint-retract, await-resume, restore, and await-resumed.
var (
	hIdle                 handler = idleHandler{}
	hCycle                handler = cycleHandler{}
	hAwaitMotionCancel    handler = awaitMotionCancelHandler{}
	hAwaitHold            handler = awaitHoldHandler{}
	hAwaitWaypointRetract handler = awaitWaypointRetractHandler{}
	hAwaitResume          handler = awaitResumeHandler{}
	hRestore              handler = restoreHandler{}
	hAwaitResumed         handler = awaitResumedHandler{}
	hNoop                 handler = noopHandler{}
)

// idleHandler reacts to CYCLE_START (begin a cycle) and FEED_HOLD (a hold
// requested with nothing running yet still has to capture/restore state).
type idleHandler struct{}

func (idleHandler) handle(s *Supervisor, ev RTEvents) bool {
	if ev.Any(EvCycleStart) {
		s.SetState(StateCycle)
	}
	if ev.Any(EvFeedHold) {
		s.SetState(StateHold)
	}
	return false
}

// cycleHandler is shared by StateCycle and StateJog: both execute a single
// planner block and react the same way to completion, cancellation and
// hold requests, distinguished only by how state_await_motion_cancel routes
// on completion.
type cycleHandler struct{}

func (cycleHandler) handle(s *Supervisor, ev RTEvents) bool {
	if ev.Any(EvCycleComplete) {
		s.SetState(StateIdle)
	}
	if ev.Any(EvMotionCancel) {
		s.Planner.UpdatePlanBlockParameters()
		s.suspend = true
		s.stepControl.ExecuteHold = true
		s.handler = hAwaitMotionCancel
	}
	if ev.Any(EvFeedHold) {
		s.SetState(StateHold)
	}
	return false
}

// awaitMotionCancelHandler waits out a jog cancel's deceleration, then
// either returns to Idle (plain motion cancel) or whatever pendingState the
// Hold Initiator recorded (a hold/door/sleep requested mid-jog).
type awaitMotionCancelHandler struct{}

func (awaitMotionCancelHandler) handle(s *Supervisor, ev RTEvents) bool {
	if ev.Any(EvCycleComplete) {
		if s.state == StateJog {
			s.stepControl.Reset()
			s.Planner.Reset()
			s.Stepper.Reset()
			s.GCode.SyncPosition()
			s.Planner.SyncPosition()
		}
		s.SetState(s.pendingState)
	}
	return false
}

// awaitHoldHandler waits out a hold's deceleration to a full stop, then
// either starts a door-parking retract (SafetyDoor/Sleep, parking enabled),
// stops the spindle/coolant outright (parking disabled, or ToolChange), or
// manages the spindle-stop override (a plain Hold).
type awaitHoldHandler struct{}

func (awaitHoldHandler) handle(s *Supervisor, ev RTEvents) bool {
	if !ev.Any(EvCycleComplete) {
		return false
	}

	s.stepControl.Reset()
	s.Planner.CycleReinitialize()

	handlerChanged := false
	kick := false

	switch s.state {
	case StateToolChange:
		s.Spindle.Stop()
		s.Coolant.SetState(CoolantState{})

	case StateSleep, StateSafetyDoor:
		s.spindleStopOvr.Clear()
		if !s.cfg.ParkingEnabled {
			s.Spindle.Stop()
			s.Coolant.SetState(CoolantState{})
			s.parking = ParkingDoorAjar
		} else {
			copy(s.park.CurrentTarget, s.Position.Current())
			s.park.noteFirstEntry(s.cfg.ParkingAxis, s.cfg.ParkingTarget)

			canRetract := s.Settings.HomingEnable() &&
				s.park.CurrentTarget[s.cfg.ParkingAxis] < s.cfg.ParkingTarget &&
				!s.Settings.LaserMode() &&
				!s.Override.ParkingDisable()

			if canRetract {
				handlerChanged = true
				s.handler = hAwaitWaypointRetract
				if s.park.CurrentTarget[s.cfg.ParkingAxis] < s.park.RetractWaypoint {
					s.park.CurrentTarget[s.cfg.ParkingAxis] = s.park.RetractWaypoint
					plan := s.park.PlanData
					plan.FeedRate = s.cfg.ParkingPulloutRate
					plan.Condition = s.snapshot
					plan.RPM = s.snapshot.RPM
					s.park.PlanData = plan
					moved := s.Motion.ParkingMotion(s.park.CurrentTarget, plan)
					s.park.Retracting = moved
					if moved {
						s.stepControl.ExecuteSysMotion = true
					} else {
						kick = true
					}
				} else {
					kick = true
				}
			} else {
				s.logger.Warn("parking infeasible, stopping in place", map[string]any{
					"homingEnable":    s.Settings.HomingEnable(),
					"laserMode":       s.Settings.LaserMode(),
					"parkingDisabled": s.Override.ParkingDisable(),
				})
				s.Spindle.Stop()
				s.Coolant.SetState(CoolantState{})
				s.parking = ParkingDoorAjar
			}
		}

	default: // StateHold
		if s.spindleStopOvr.Initiate {
			s.spindleStopOvr.Clear()
			if s.liveSpindleOn() {
				s.Spindle.Stop()
				s.spindleStopOvr.Enabled = true
			}
		}
	}

	if !handlerChanged {
		s.holding = HoldComplete
		s.handler = hAwaitResume
	}
	return kick
}

// awaitWaypointRetractHandler waits out the pull-out-increment retract
// motion, then submits the remaining retract to the full parking target.
type awaitWaypointRetractHandler struct{}

func (awaitWaypointRetractHandler) handle(s *Supervisor, ev RTEvents) bool {
	if !ev.Any(EvCycleComplete) {
		return false
	}
	if s.stepControl.ExecuteSysMotion {
		s.stepControl.ExecuteSysMotion = false
		s.Stepper.ParkingRestoreBuffer()
	}

	s.park.PlanData.Condition = ConditionSnapshot{}
	s.park.PlanData.RPM = 0
	s.Spindle.Stop()
	s.Coolant.SetState(CoolantState{})
	s.handler = hAwaitResume

	if s.park.CurrentTarget[s.cfg.ParkingAxis] < s.cfg.ParkingTarget {
		s.park.CurrentTarget[s.cfg.ParkingAxis] = s.cfg.ParkingTarget
		plan := s.park.PlanData
		plan.FeedRate = s.cfg.ParkingRate
		s.park.PlanData = plan
		if s.Motion.ParkingMotion(s.park.CurrentTarget, plan) {
			s.park.Retracting = true
			s.stepControl.ExecuteSysMotion = true
		} else {
			return true
		}
	} else {
		return true
	}
	return false
}

// awaitResumeHandler waits for CYCLE_START to resume from Hold, Sleep,
// SafetyDoor or ToolChange. For the parking-enabled door/sleep case it
// drives the retract-then-plunge sequence; otherwise it restores conditions
// directly and restarts the cycle.
type awaitResumeHandler struct{}

func (awaitResumeHandler) handle(s *Supervisor, ev RTEvents) bool {
	kick := false

	if s.cfg.ParkingEnabled && ev.Any(EvCycleComplete) {
		if s.stepControl.ExecuteSysMotion {
			s.stepControl.ExecuteSysMotion = false
			s.Stepper.ParkingRestoreBuffer()
		}
		s.parking = ParkingDoorAjar
	}

	if ev.Any(EvCycleStart) {
		if s.state == StateSafetyDoor && s.HAL.SafetyDoorAjar() {
			return kick
		}
		if s.state == StateHold && !s.spindleStopOvr.Active() {
			s.spindleStopOvr.RestoreCycle = true
		}

		handlerChanged := false
		switch s.state {
		case StateToolChange:
			// fall through to the cycle-restart below

		case StateSleep, StateSafetyDoor:
			if s.cfg.ParkingEnabled {
				s.park.RestartRetract = false
				s.parking = ParkingResuming
				if s.park.Retracting {
					handlerChanged = true
					s.handler = hRestore
					if s.park.CurrentTarget[s.cfg.ParkingAxis] <= s.cfg.ParkingTarget {
						s.park.CurrentTarget[s.cfg.ParkingAxis] = s.park.RetractWaypoint
						plan := s.park.PlanData
						plan.FeedRate = s.cfg.ParkingRate
						if s.Motion.ParkingMotion(s.park.CurrentTarget, plan) {
							s.stepControl.ExecuteSysMotion = true
						} else {
							kick = true
						}
					} else {
						kick = true
					}
				}
			} else {
				s.restoreConditions(s.snapshot)
			}

		default: // StateHold
			if s.spindleStopOvr.Restore || s.spindleStopOvr.RestoreCycle {
				if s.liveSpindleOn() {
					s.Report.Feedback(FeedbackSpindleRestore)
					if s.Settings.LaserMode() {
						s.stepControl.UpdateSpindleRPM = true
					} else {
						s.Spindle.SetState(s.snapshot.Spindle, s.snapshot.RPM)
					}
				}
				s.spindleStopOvr.Clear()
			} else if s.stepControl.UpdateSpindleRPM {
				s.Spindle.SetState(s.snapshot.Spindle, s.snapshot.RPM)
				s.stepControl.UpdateSpindleRPM = false
			}
		}

		if !handlerChanged {
			s.SetState(StateIdle)
			s.SetState(StateCycle)
		}
	}
	return kick
}

// restoreHandler runs the Condition Restorer and submits the final plunge
// motion back to the pre-hold position, or re-arms the retract if a door
// reopens mid-restore.
type restoreHandler struct{}

func (restoreHandler) handle(s *Supervisor, ev RTEvents) bool {
	if ev.Any(EvSafetyDoor) {
		s.restartRetract()
		return false
	}
	if ev.Any(EvCycleComplete) {
		if s.stepControl.ExecuteSysMotion {
			s.stepControl.ExecuteSysMotion = false
			s.Stepper.ParkingRestoreBuffer()
		}
		if s.restoreConditions(s.snapshot) {
			// A door reopened mid-restore; restartRetract already installed
			// hAwaitHold and possibly kicked it.
			return false
		}
		s.handler = hAwaitResumed
		plan := s.park.PlanData
		plan.FeedRate = s.cfg.ParkingPulloutRate
		plan.Condition = s.snapshot
		plan.RPM = s.snapshot.RPM
		if s.Motion.ParkingMotion(s.park.RestoreTarget, plan) {
			s.stepControl.ExecuteSysMotion = true
		} else {
			return true
		}
	}
	return false
}

// awaitResumedHandler waits out the final plunge motion, then restarts the
// cycle, or re-arms the retract if a door reopens before the plunge lands.
type awaitResumedHandler struct{}

func (awaitResumedHandler) handle(s *Supervisor, ev RTEvents) bool {
	if ev.Any(EvSafetyDoor) {
		s.restartRetract()
		return false
	}
	if ev.Any(EvCycleComplete) {
		if s.stepControl.ExecuteSysMotion {
			s.stepControl.ExecuteSysMotion = false
			s.Stepper.ParkingRestoreBuffer()
		}
		s.SetState(StateIdle)
		s.SetState(StateCycle)
	}
	return false
}

// noopHandler ignores every event: installed for Alarm, EStop, Homing and
// CheckMode, which exit only via an explicit external SetState call.
type noopHandler struct{}

func (noopHandler) handle(*Supervisor, RTEvents) bool { return false }

// restartRetract handles a door reopening mid-restore (shared by
// restoreHandler and awaitResumedHandler): it re-emits the door-ajar
// feedback, re-installs hAwaitHold, and either lets an in-flight system
// motion's own completion drive the retract or kicks it immediately.
func (s *Supervisor) restartRetract() {
	s.logger.Warn("restore aborted by reopened door", map[string]any{
		"state":            s.state.String(),
		"executeSysMotion": s.stepControl.ExecuteSysMotion,
	})
	s.Report.Feedback(FeedbackSafetyDoorAjar)
	s.handler = hAwaitHold
	s.park.RestartRetract = true
	s.parking = ParkingRetracting

	if s.stepControl.ExecuteSysMotion {
		s.Planner.UpdatePlanBlockParameters()
		s.stepControl.ExecuteHold = true
	} else {
		s.handler.handle(s, EvCycleComplete)
	}
}
