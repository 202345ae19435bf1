// Package simhw provides fake collaborators implementing cncsupervisor's
// consumed interfaces, for use by both the test suite and cmd/demo.
package simhw

import (
	"time"

	"github.com/lmmeng/cncsupervisor"
)

// Planner is a minimal fake planner: a queue of blocks, consumed one at a
// time as the machine runs them, plus a position vector.
type Planner struct {
	Blocks   []cncsupervisor.Block
	position []float64

	resetCount             int
	syncPositionCount      int
	updateBlockParamsCount int
	cycleReinitializeCount int
}

func NewPlanner(axes int) *Planner {
	return &Planner{position: make([]float64, axes)}
}

func (p *Planner) CurrentBlock() (cncsupervisor.Block, bool) {
	if len(p.Blocks) == 0 {
		return cncsupervisor.Block{}, false
	}
	return p.Blocks[0], true
}

// Advance discards the current block, as if it finished executing.
func (p *Planner) Advance() {
	if len(p.Blocks) > 0 {
		p.Blocks = p.Blocks[1:]
	}
}

func (p *Planner) Reset()                     { p.Blocks = nil; p.resetCount++ }
func (p *Planner) SyncPosition()              { p.syncPositionCount++ }
func (p *Planner) UpdatePlanBlockParameters() { p.updateBlockParamsCount++ }
func (p *Planner) CycleReinitialize()         { p.cycleReinitializeCount++ }

// Stepper is a minimal fake stepper segment buffer, recording calls so
// tests can assert on ordering without caring about timing.
type Stepper struct {
	Calls []string
}

func (s *Stepper) PrepBuffer()           { s.Calls = append(s.Calls, "prep") }
func (s *Stepper) WakeUp()               { s.Calls = append(s.Calls, "wake") }
func (s *Stepper) Reset()                { s.Calls = append(s.Calls, "reset") }
func (s *Stepper) ParkingRestoreBuffer() { s.Calls = append(s.Calls, "restore_buffer") }

// Motion is a minimal fake motion submitter: every call's target is
// recorded in Submitted, and the move either "succeeds" (returns true) or is
// reported as zero-length per ZeroLength.
type Motion struct {
	ZeroLength bool
	Submitted  [][]float64
}

func (m *Motion) ParkingMotion(target []float64, _ cncsupervisor.PlanData) bool {
	cp := append([]float64(nil), target...)
	m.Submitted = append(m.Submitted, cp)
	return !m.ZeroLength
}

// Position is a fake machine-position source, independently settable by
// tests (e.g. to simulate a retract that moved the machine).
type Position struct {
	Pos []float64
}

func (p *Position) Current() []float64 { return p.Pos }

// Spindle is a fake spindle driver with a settable at-speed flag.
type Spindle struct {
	modal       cncsupervisor.SpindleModal
	rpm         float64
	on          bool
	AtSpeedNow  bool
	index       uint32
	AutoAdvance bool
}

func (s *Spindle) SetState(modal cncsupervisor.SpindleModal, rpm float64) bool {
	changed := s.modal != modal || s.rpm != rpm
	s.modal, s.rpm, s.on = modal, rpm, modal.On
	return changed
}

func (s *Spindle) Stop() {
	s.on = false
	s.modal = cncsupervisor.SpindleModal{}
}

func (s *Spindle) State() cncsupervisor.SpindleRuntimeState {
	return cncsupervisor.SpindleRuntimeState{On: s.on, AtSpeed: s.AtSpeedNow}
}

func (s *Spindle) ResetData() { s.index = 0 }

func (s *Spindle) IndexCount() uint32 {
	if s.AutoAdvance {
		s.index++
	}
	return s.index
}

// Advance manually advances the fake encoder, for tests driving
// spindle-synchronized cycle starts deterministically.
func (s *Spindle) Advance() { s.index++ }

// Coolant is a fake coolant driver.
type Coolant struct {
	state cncsupervisor.CoolantState
}

func (c *Coolant) SetState(s cncsupervisor.CoolantState) { c.state = s }
func (c *Coolant) State() cncsupervisor.CoolantState     { return c.state }

// GCode is a fake live gcode-modal source, independent of whatever
// ConditionSnapshot a block or a hold captured.
type GCode struct {
	Spindle cncsupervisor.SpindleModal
	Coolant cncsupervisor.CoolantState
	RPM     float64

	syncCount int
}

func (g *GCode) Modal() (cncsupervisor.SpindleModal, cncsupervisor.CoolantState) {
	return g.Spindle, g.Coolant
}
func (g *GCode) SpindleRPM() float64 { return g.RPM }
func (g *GCode) SyncPosition()       { g.syncCount++ }

// HAL is a fake hardware-capability source.
type HAL struct {
	AtSpeedCapable bool
	DoorAjar       bool
}

func (h *HAL) SpindleAtSpeedCapable() bool { return h.AtSpeedCapable }
func (h *HAL) SafetyDoorAjar() bool        { return h.DoorAjar }

// Settings is a fake runtime-mutable settings source.
type Settings struct {
	Laser  bool
	Homing bool
}

func (s *Settings) LaserMode() bool    { return s.Laser }
func (s *Settings) HomingEnable() bool { return s.Homing }

// Override is a fake operator-override source.
type Override struct {
	FeedHoldDisabled bool
	ParkingDisabled  bool
}

func (o *Override) FeedHoldDisable() bool { return o.FeedHoldDisabled }
func (o *Override) ParkingDisable() bool  { return o.ParkingDisabled }

// Reporter records every feedback message emitted.
type Reporter struct {
	Messages []cncsupervisor.FeedbackKind
}

func (r *Reporter) Feedback(k cncsupervisor.FeedbackKind) {
	r.Messages = append(r.Messages, k)
}

// Accessory records every accessory override request.
type Accessory struct {
	Overrides []cncsupervisor.AccessoryOverrideCode
}

func (a *Accessory) EnqueueOverride(c cncsupervisor.AccessoryOverrideCode) {
	a.Overrides = append(a.Overrides, c)
}

// Clock is a fake clock that advances instantly: Sleep just moves Now
// forward by d without actually blocking, so multi-second restore delays
// run in microseconds under test.
type Clock struct {
	now time.Time
}

func NewClock() *Clock { return &Clock{now: time.Unix(0, 0)} }

func (c *Clock) Now() time.Time        { return c.now }
func (c *Clock) Sleep(d time.Duration) { c.now = c.now.Add(d) }
