package cncsupervisor

import "time"

// Config bundles the machine's compile-time knobs. Every field here is a
// plain struct field rather than a build tag, so both the parking-enabled
// and parking-disabled behaviors live in the same binary.
type Config struct {
	// Axes is the number of machine axes tracked in park/restore targets.
	Axes int

	// ParkingEnabled mirrors PARKING_ENABLE.
	ParkingEnabled bool
	// ParkingAxis mirrors PARKING_AXIS (0-indexed).
	ParkingAxis int
	// ParkingTarget mirrors PARKING_TARGET, the fully-retracted position
	// along ParkingAxis.
	ParkingTarget float64
	// ParkingPulloutIncrement mirrors PARKING_PULLOUT_INCREMENT.
	ParkingPulloutIncrement float64
	// ParkingPulloutRate mirrors PARKING_PULLOUT_RATE.
	ParkingPulloutRate float64
	// ParkingRate mirrors PARKING_RATE, the feed rate of the fast retract to
	// ParkingTarget and of the return from it to the retract waypoint.
	ParkingRate float64
	// ParkingMotionLineNumber is the reserved gcode line number system
	// (parking) motions are reported under.
	ParkingMotionLineNumber int32

	// SafetyDoorSpindleDelay mirrors SAFETY_DOOR_SPINDLE_DELAY, used only
	// when the HAL cannot report spindle-at-speed.
	SafetyDoorSpindleDelay time.Duration
	// SafetyDoorCoolantDelay mirrors SAFETY_DOOR_COOLANT_DELAY.
	SafetyDoorCoolantDelay time.Duration

	// DisableLaserDuringHold mirrors DISABLE_LASER_DURING_HOLD.
	DisableLaserDuringHold bool
}

// defaultConfig returns the zero-value-safe baseline Config, parking
// disabled, matching an otherwise unconfigured build.
func defaultConfig() Config {
	return Config{
		Axes:                    3,
		ParkingEnabled:          false,
		ParkingAxis:             2,
		ParkingTarget:           -5,
		ParkingPulloutIncrement: 5,
		ParkingPulloutRate:      1500,
		ParkingRate:             2000,
		ParkingMotionLineNumber: -3,
		SafetyDoorSpindleDelay:  4 * time.Second,
		SafetyDoorCoolantDelay:  1 * time.Second,
		DisableLaserDuringHold:  true,
	}
}
