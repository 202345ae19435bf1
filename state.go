package cncsupervisor

// State is the machine's top-level operating state.
type State uint8

const (
	StateIdle State = iota
	StateCycle
	StateJog
	StateHold
	StateSafetyDoor
	StateSleep
	StateToolChange
	StateHoming
	StateAlarm
	StateEStop
	StateCheckMode
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateCycle:
		return "Cycle"
	case StateJog:
		return "Jog"
	case StateHold:
		return "Hold"
	case StateSafetyDoor:
		return "SafetyDoor"
	case StateSleep:
		return "Sleep"
	case StateToolChange:
		return "ToolChange"
	case StateHoming:
		return "Homing"
	case StateAlarm:
		return "Alarm"
	case StateEStop:
		return "EStop"
	case StateCheckMode:
		return "CheckMode"
	default:
		return "Unknown"
	}
}

// HoldingState tracks how far a feed hold has progressed toward a full stop.
type HoldingState uint8

const (
	NotHolding HoldingState = iota
	HoldPending
	HoldComplete
)

func (h HoldingState) String() string {
	switch h {
	case NotHolding:
		return "NotHolding"
	case HoldPending:
		return "Pending"
	case HoldComplete:
		return "Complete"
	default:
		return "Unknown"
	}
}

// ParkingState tracks the door-parking sub-sequence independently of the
// top-level State, since a door can close and reopen several times over the
// course of a single hold.
type ParkingState uint8

const (
	ParkingDoorClosed ParkingState = iota
	ParkingRetracting
	ParkingDoorAjar
	ParkingResuming
)

func (p ParkingState) String() string {
	switch p {
	case ParkingDoorClosed:
		return "DoorClosed"
	case ParkingRetracting:
		return "Retracting"
	case ParkingDoorAjar:
		return "DoorAjar"
	case ParkingResuming:
		return "Resuming"
	default:
		return "Unknown"
	}
}
