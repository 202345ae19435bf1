package cncsupervisor

import "testing"

func TestParkContextNoteFirstEntry(t *testing.T) {
	p := newParkContext(3)
	p.CurrentTarget[2] = 10
	p.RetractWaypoint = 5 // PARKING_PULLOUT_INCREMENT

	p.noteFirstEntry(2, 100)

	if got, want := p.RestoreTarget[2], 10.0; got != want {
		t.Errorf("RestoreTarget[2] = %v, want %v", got, want)
	}
	if got, want := p.RetractWaypoint, 15.0; got != want {
		t.Errorf("RetractWaypoint = %v, want %v (5 pullout + 10 restore target)", got, want)
	}
}

func TestParkContextNoteFirstEntryClampsToParkingTarget(t *testing.T) {
	p := newParkContext(3)
	p.CurrentTarget[2] = 10
	p.RetractWaypoint = 5

	// parkingTarget below what accumulation would produce: clamp.
	p.noteFirstEntry(2, 12)

	if got, want := p.RetractWaypoint, 12.0; got != want {
		t.Errorf("RetractWaypoint = %v, want clamped %v", got, want)
	}
}

func TestParkContextNoteFirstEntrySkippedOnRestart(t *testing.T) {
	p := newParkContext(3)
	p.CurrentTarget[2] = 10
	p.RetractWaypoint = 5
	p.noteFirstEntry(2, 100)

	// Simulate a door reopening mid-restore: the machine has moved, but a
	// second retract sequence must not reclobber RestoreTarget/RetractWaypoint.
	p.RestartRetract = true
	p.CurrentTarget[2] = 42 // machine moved during the aborted restore

	before := p.RestoreTarget[2]
	beforeWaypoint := p.RetractWaypoint

	p.noteFirstEntry(2, 100)

	if p.RestoreTarget[2] != before {
		t.Errorf("RestoreTarget[2] changed on restart entry: got %v, want unchanged %v", p.RestoreTarget[2], before)
	}
	if p.RetractWaypoint != beforeWaypoint {
		t.Errorf("RetractWaypoint changed on restart entry: got %v, want unchanged %v", p.RetractWaypoint, beforeWaypoint)
	}
}
