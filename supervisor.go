package cncsupervisor

import (
	"context"
	"runtime"
)

// Collaborators bundles every external dependency the supervisor consumes,
// following the Deps-struct-of-interfaces shape used elsewhere in the
// retrieval pack for wiring a service's dependencies in one call.
type Collaborators struct {
	Planner   Planner
	Stepper   Stepper
	Motion    Motion
	Position  Position
	Spindle   Spindle
	Coolant   Coolant
	GCode     GCodeModal
	HAL       HAL
	Settings  Settings
	Override  OverrideControl
	Report    Reporter
	Accessory AccessoryQueue
}

// handler is the per-state behavior installed into Supervisor.handler, as a
// stateless singleton value rather than a raw function pointer. handle
// returns true when the dispatcher should immediately re-invoke whatever
// handler is now installed with a synthesized EvCycleComplete, bounded to
// exactly one such kick per externally-triggered event, never chained
// further.
type handler interface {
	handle(s *Supervisor, ev RTEvents) (kick bool)
}

// Supervisor is the CNC supervisory state machine: it owns State,
// HoldingState, ParkingState, the realtime event bitmask, and the
// hold/park/resume sequencing built on top of its collaborators.
type Supervisor struct {
	cfg Config

	state   State
	holding HoldingState
	parking ParkingState
	suspend bool

	stepControl  StepControl
	snapshot     ConditionSnapshot
	park         *ParkContext
	pendingState State

	spindleStopOvr spindleStopOverride

	handler handler
	events  EventBits

	Collaborators

	logger  Logger
	clock   Clock
	ctx     context.Context
}

// spindleStopOverride mirrors sys.spindle_stop_ovr's bitfields: whether a
// stop override was requested, is currently enabled, or should be restored
// either unconditionally or only on the next cycle start.
type spindleStopOverride struct {
	Initiate     bool
	Enabled      bool
	Restore      bool
	RestoreCycle bool
}

func (o spindleStopOverride) Active() bool {
	return o.Initiate || o.Enabled || o.Restore || o.RestoreCycle
}

func (o *spindleStopOverride) Clear() {
	*o = spindleStopOverride{}
}

// New builds a Supervisor in StateIdle, wired with the given collaborators
// and options. It returns an error only for construction-time mistakes
// (missing required collaborators, invalid axis configuration); once
// built, the supervisor itself never errors.
func New(c Collaborators, opts ...Option) (*Supervisor, error) {
	if c.Planner == nil || c.Stepper == nil || c.Motion == nil || c.Position == nil ||
		c.Spindle == nil || c.Coolant == nil || c.GCode == nil || c.HAL == nil ||
		c.Settings == nil || c.Override == nil || c.Report == nil || c.Accessory == nil {
		return nil, ErrNilCollaborator
	}

	b := resolveOptions(opts)
	if b.cfg.Axes <= 0 {
		return nil, ErrInvalidAxisCount
	}
	if b.cfg.ParkingEnabled && (b.cfg.ParkingAxis < 0 || b.cfg.ParkingAxis >= b.cfg.Axes) {
		return nil, ErrInvalidParkAxis
	}

	s := &Supervisor{
		cfg:          b.cfg,
		state:        StateIdle,
		pendingState: StateIdle,
		Collaborators: c,
		logger:       newLimitedLogger(b.logger, b.limiter),
		clock:        b.clock,
		ctx:          b.ctx,
		handler:      hIdle,
	}
	if b.cfg.ParkingEnabled {
		s.park = newParkContext(b.cfg.Axes)
	}
	return s, nil
}

// State returns the current top-level state.
func (s *Supervisor) State() State { return s.state }

// HoldingState returns the current hold sub-state.
func (s *Supervisor) HoldingState() HoldingState { return s.holding }

// ParkingState returns the current door-parking sub-state.
func (s *Supervisor) ParkingState() ParkingState { return s.parking }

// Suspended reports whether the planner/stepper are suspended (a hold in
// progress, or parked with the door open).
func (s *Supervisor) Suspended() bool { return s.suspend }

// DoorReopened reports whether the current (or most recent) restore
// sequence was restarted by a door reopening mid-restore. False whenever
// parking is disabled.
func (s *Supervisor) DoorReopened() bool {
	return s.park != nil && s.park.RestartRetract
}

// Events exposes the realtime-event bitmask for producers (an ISR, a
// button debouncer, a serial command parser) to Post into.
func (s *Supervisor) Events() *EventBits { return &s.events }

// Tick samples pending realtime events and dispatches them. It is the
// normal main-loop entry point; Update is the lower-level call used when
// the caller already has an event mask in hand (e.g. re-entering from
// inside a suspension-aware delay).
func (s *Supervisor) Tick() {
	if ev := s.events.Sample(); ev != 0 {
		s.Update(ev)
	}
}

// Update is the dispatcher: a pending safety-door bit preempts into
// StateSafetyDoor (unless already there) and nothing else in the mask is
// dispatched on that call; otherwise the event mask is handed to whatever
// handler is currently installed.
func (s *Supervisor) Update(ev RTEvents) {
	if ev.Any(EvSafetyDoor) && s.state != StateSafetyDoor {
		s.SetState(StateSafetyDoor)
		return
	}
	s.dispatch(ev)
}

// dispatch invokes the installed handler, honoring at most one synthesized
// re-invocation (bounded depth 1, never chained further).
func (s *Supervisor) dispatch(ev RTEvents) {
	if s.handler.handle(s, ev) {
		s.handler.handle(s, EvCycleComplete)
	}
}

// SetState is the transition engine. It is a no-op when newState equals
// the current state; otherwise it runs the per-state entry/refusal logic
// below.
func (s *Supervisor) SetState(newState State) {
	if newState == s.state {
		return
	}

	switch newState {
	case StateIdle:
		s.suspend = false
		s.stepControl.Reset()
		s.parking = ParkingDoorClosed
		s.holding = NotHolding
		s.state = newState
		s.handler = hIdle

	case StateCycle:
		if s.state != StateIdle {
			return
		}
		block, ok := s.Planner.CurrentBlock()
		if !ok {
			return
		}
		s.state = newState
		s.Stepper.PrepBuffer()
		if block.Synchronized {
			s.waitSpindleSync()
		}
		s.Stepper.WakeUp()
		s.handler = hCycle

	case StateJog:
		s.state = newState
		s.handler = hCycle

	case StateHold:
		if s.state == StateJog || s.Override.FeedHoldDisable() {
			return
		}
		s.logger.Info("hold requested", map[string]any{"from": s.state.String()})
		if !s.initiateHold(newState) {
			s.holding = HoldComplete
			s.handler = hAwaitResume
		}
		s.state = newState

	case StateSafetyDoor, StateSleep:
		if newState == StateSafetyDoor {
			switch s.state {
			case StateAlarm, StateEStop, StateSleep, StateCheckMode:
				return
			}
			s.Report.Feedback(FeedbackSafetyDoorAjar)
		}
		s.logger.Info("door/sleep preempting cycle", map[string]any{
			"from": s.state.String(),
			"to":   newState.String(),
		})
		s.parking = ParkingRetracting
		if !s.initiateHold(newState) {
			if s.pendingState != newState {
				s.state = newState
				s.handler = hAwaitHold
				s.dispatch(EvCycleComplete)
			}
		} else {
			s.state = newState
		}

	case StateAlarm, StateEStop, StateHoming, StateCheckMode:
		s.state = newState
		s.handler = hNoop

	case StateToolChange:
		s.enterToolChange()
	}
}

// enterToolChange installs a hold exactly like the StateHold case, but
// targets StateToolChange: awaitHoldHandler and awaitResumeHandler both
// branch explicitly on StateToolChange, so the supervisor has to support
// entering it directly (an M6 tool change is not itself a posted realtime
// event).
func (s *Supervisor) enterToolChange() {
	if !s.initiateHold(StateToolChange) {
		s.holding = HoldComplete
		s.handler = hAwaitResume
	}
	s.state = StateToolChange
}

// waitSpindleSync blocks until the spindle has advanced its index counter by
// two pulses, to avoid acting on a stale index, yielding between polls
// instead of spinning. It returns early if the supervisor's context is
// cancelled.
func (s *Supervisor) waitSpindleSync() {
	s.Spindle.ResetData()
	target := s.Spindle.IndexCount() + 2
	for s.Spindle.IndexCount() != target {
		select {
		case <-s.ctx.Done():
			return
		default:
			runtime.Gosched()
		}
	}
}

func (s *Supervisor) liveSpindleOn() bool {
	modal, _ := s.GCode.Modal()
	return modal.On
}
