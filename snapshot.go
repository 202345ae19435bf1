package cncsupervisor

// SpindleModal is the modal spindle direction/on-off state captured at hold
// time and reapplied on resume.
type SpindleModal struct {
	On bool
	CW bool
}

// CoolantState is the modal mist/flood coolant state.
type CoolantState struct {
	Mist  bool
	Flood bool
}

// Mask reports whether any coolant output is active.
func (c CoolantState) Mask() bool {
	return c.Mist || c.Flood
}

// Merge ORs two coolant states together, used when a hold is requested with
// no current planner block and the restore condition has to be assembled
// from the live gcode modal state and whatever the hardware is actually
// doing (the two can differ briefly after an override).
func (c CoolantState) Merge(other CoolantState) CoolantState {
	return CoolantState{
		Mist:  c.Mist || other.Mist,
		Flood: c.Flood || other.Flood,
	}
}

// ConditionSnapshot is the spindle/coolant/RPM condition captured when a
// hold begins, and reapplied by the Condition Restorer on resume.
type ConditionSnapshot struct {
	Spindle SpindleModal
	Coolant CoolantState
	RPM     float64
}
