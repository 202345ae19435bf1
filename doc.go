// Package cncsupervisor implements the supervisory state machine that sits
// above a CNC motion controller's planner and stepper: it owns the
// machine-level state (idle, cycle, jog, hold, safety door, sleep, homing,
// alarm, e-stop, check mode), reacts to realtime events posted from
// interrupt-style producers, and drives feed-hold/parking/resume sequences.
//
// It does not generate trajectories, compute kinematics, or speak any wire
// protocol; those are the concern of the Planner, Stepper, Motion and other
// collaborators it is constructed with.
package cncsupervisor
