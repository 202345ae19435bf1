package cncsupervisor

// PlanData describes a single parking motion: the feed rate to use, the
// condition to report it under (so spindle/coolant stay at whatever the
// restore condition says while parking), and whether it is a
// non-program, non-feed-override system motion with a reserved line number.
type PlanData struct {
	FeedRate       float64
	Condition      ConditionSnapshot
	RPM            float64
	SystemMotion   bool
	NoFeedOverride bool
	LineNumber     int32
}

// ParkContext holds the door-parking sequence's working state: the current
// and restore machine positions, the pull-out waypoint along the parking
// axis, and whether a retract is in flight or was restarted by a door
// reopening mid-restore.
type ParkContext struct {
	CurrentTarget   []float64
	RestoreTarget   []float64
	RetractWaypoint float64
	Retracting      bool
	RestartRetract  bool
	PlanData        PlanData
}

func newParkContext(axes int) *ParkContext {
	return &ParkContext{
		CurrentTarget: make([]float64, axes),
		RestoreTarget: make([]float64, axes),
	}
}

// noteFirstEntry captures the restore target and accumulates the pull-out
// waypoint onto it, but only the first time a retract sequence begins for a
// given hold: a door reopening mid-restore sets RestartRetract, and on the
// resulting re-entry the restore target must not be clobbered with whatever
// position the machine happened to retract to before the reopening.
func (p *ParkContext) noteFirstEntry(axis int, parkingTarget float64) {
	if p.RestartRetract {
		return
	}
	copy(p.RestoreTarget, p.CurrentTarget)
	p.RetractWaypoint += p.RestoreTarget[axis]
	if p.RetractWaypoint > parkingTarget {
		p.RetractWaypoint = parkingTarget
	}
}
