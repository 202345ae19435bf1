package cncsupervisor

import "time"

// Block is the subset of a planner block the supervisor needs: the
// condition it was planned under and whether it requires the spindle to be
// synchronized (and at the requested speed) before motion starts.
type Block struct {
	Condition    ConditionSnapshot
	Synchronized bool
}

// Planner is the consumed subset of the motion planner.
type Planner interface {
	// CurrentBlock returns the block the planner is currently executing, if
	// any. ok is false when the planner buffer is empty.
	CurrentBlock() (Block, bool)
	// Reset discards all planned blocks (a jog cancel or alarm condition).
	Reset()
	// SyncPosition re-synchronizes the planner's notion of position with
	// the machine's actual position, after a motion cancel.
	SyncPosition()
	// UpdatePlanBlockParameters recomputes the currently executing block's
	// deceleration profile for an in-progress hold.
	UpdatePlanBlockParameters()
	// CycleReinitialize prepares the planner for a fresh cycle after a hold
	// completes.
	CycleReinitialize()
}

// Stepper is the consumed subset of the stepper segment buffer.
type Stepper interface {
	// PrepBuffer primes the segment buffer ahead of motion.
	PrepBuffer()
	// WakeUp re-energizes motors and starts stepping.
	WakeUp()
	// Reset clears the segment buffer and halts stepping immediately.
	Reset()
	// ParkingRestoreBuffer restores the pre-parking segment buffer contents
	// after a system (parking) motion completes.
	ParkingRestoreBuffer()
}

// Motion is the consumed subset of the motion-control layer used to submit
// the short system motions a parking sequence needs (pull-out, plunge,
// resume). It is distinct from Planner/Stepper because these motions bypass
// normal program motion planning.
type Motion interface {
	// ParkingMotion submits a motion to target under plan. It returns false
	// if the motion would have zero length (nothing to do), in which case
	// the caller is expected to synthesize a completion event.
	ParkingMotion(target []float64, plan PlanData) (moved bool)
}

// Position exposes the machine's current position, independent of whatever
// motion is or isn't in flight.
type Position interface {
	Current() []float64
}

// SpindleRuntimeState is the spindle's live (not modal) runtime state.
type SpindleRuntimeState struct {
	On      bool
	AtSpeed bool
}

// Spindle is the consumed subset of the spindle driver.
type Spindle interface {
	// SetState applies modal and reports whether it actually changed
	// anything, so callers can skip a redundant spin-up delay.
	SetState(modal SpindleModal, rpm float64) (changed bool)
	// Stop de-energizes the spindle unconditionally.
	Stop()
	// State reports the spindle's live runtime state.
	State() SpindleRuntimeState
	// ResetData resets any index/counter state ahead of a synchronized
	// cycle start. May be a no-op for spindles with no encoder.
	ResetData()
	// IndexCount returns the spindle's free-running encoder index count.
	IndexCount() uint32
}

// Coolant is the consumed subset of the coolant driver.
type Coolant interface {
	SetState(CoolantState)
	State() CoolantState
}

// GCodeModal is the consumed subset of live (not snapshotted) gcode modal
// state, as opposed to whatever was captured into a ConditionSnapshot.
type GCodeModal interface {
	Modal() (SpindleModal, CoolantState)
	SpindleRPM() float64
	SyncPosition()
}

// HAL bundles small hardware-capability queries that don't belong to any
// single driver above.
type HAL interface {
	SpindleAtSpeedCapable() bool
	SafetyDoorAjar() bool
}

// Settings is runtime-mutable configuration the supervisor must consult
// live (laser mode and homing-enable can be toggled without restarting).
type Settings interface {
	LaserMode() bool
	HomingEnable() bool
}

// OverrideControl reports the live state of operator overrides that can
// refuse a requested transition outright.
type OverrideControl interface {
	FeedHoldDisable() bool
	ParkingDisable() bool
}

// FeedbackKind enumerates the operator-facing messages the supervisor emits
// at fixed points in the hold/park/resume sequence.
type FeedbackKind int

const (
	FeedbackSafetyDoorAjar FeedbackKind = iota
	FeedbackSpindleRestore
)

// Reporter surfaces operator feedback messages.
type Reporter interface {
	Feedback(FeedbackKind)
}

// AccessoryOverrideCode enumerates accessory-state overrides the supervisor
// can request.
type AccessoryOverrideCode int

const (
	OverrideSpindleStop AccessoryOverrideCode = iota
)

// AccessoryQueue accepts accessory-state override requests (e.g. forcing
// the spindle off while holding in laser mode, where a physical spindle
// on/off relay doesn't apply).
type AccessoryQueue interface {
	EnqueueOverride(AccessoryOverrideCode)
}

// Clock abstracts time for the suspension-aware delay primitive so tests
// can run a multi-second restore sequence instantly.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}
