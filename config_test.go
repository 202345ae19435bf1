package cncsupervisor

import (
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.ParkingEnabled {
		t.Error("ParkingEnabled = true, want false for default (unconfigured) build")
	}
	if cfg.Axes != 3 {
		t.Errorf("Axes = %d, want 3", cfg.Axes)
	}
	if cfg.SafetyDoorSpindleDelay != 4*time.Second {
		t.Errorf("SafetyDoorSpindleDelay = %v, want 4s", cfg.SafetyDoorSpindleDelay)
	}
	if cfg.SafetyDoorCoolantDelay != 1*time.Second {
		t.Errorf("SafetyDoorCoolantDelay = %v, want 1s", cfg.SafetyDoorCoolantDelay)
	}
	if !cfg.DisableLaserDuringHold {
		t.Error("DisableLaserDuringHold = false, want true by default")
	}
}
