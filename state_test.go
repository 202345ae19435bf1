package cncsupervisor

import "testing"

func TestStateString(t *testing.T) {
	cases := []struct {
		state State
		want  string
	}{
		{StateIdle, "Idle"},
		{StateCycle, "Cycle"},
		{StateJog, "Jog"},
		{StateHold, "Hold"},
		{StateSafetyDoor, "SafetyDoor"},
		{StateSleep, "Sleep"},
		{StateToolChange, "ToolChange"},
		{StateHoming, "Homing"},
		{StateAlarm, "Alarm"},
		{StateEStop, "EStop"},
		{StateCheckMode, "CheckMode"},
		{State(255), "Unknown"},
	}
	for _, c := range cases {
		t.Run(c.want, func(t *testing.T) {
			if got := c.state.String(); got != c.want {
				t.Errorf("State(%d).String() = %q, want %q", c.state, got, c.want)
			}
		})
	}
}

func TestHoldingStateString(t *testing.T) {
	cases := []struct {
		h    HoldingState
		want string
	}{
		{NotHolding, "NotHolding"},
		{HoldPending, "Pending"},
		{HoldComplete, "Complete"},
		{HoldingState(255), "Unknown"},
	}
	for _, c := range cases {
		t.Run(c.want, func(t *testing.T) {
			if got := c.h.String(); got != c.want {
				t.Errorf("HoldingState(%d).String() = %q, want %q", c.h, got, c.want)
			}
		})
	}
}

func TestParkingStateString(t *testing.T) {
	cases := []struct {
		p    ParkingState
		want string
	}{
		{ParkingDoorClosed, "DoorClosed"},
		{ParkingRetracting, "Retracting"},
		{ParkingDoorAjar, "DoorAjar"},
		{ParkingResuming, "Resuming"},
		{ParkingState(255), "Unknown"},
	}
	for _, c := range cases {
		t.Run(c.want, func(t *testing.T) {
			if got := c.p.String(); got != c.want {
				t.Errorf("ParkingState(%d).String() = %q, want %q", c.p, got, c.want)
			}
		})
	}
}
