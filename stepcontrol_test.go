package cncsupervisor

import "testing"

func TestStepControlReset(t *testing.T) {
	c := StepControl{ExecuteHold: true, ExecuteSysMotion: true, UpdateSpindleRPM: true}
	c.Reset()
	if c != (StepControl{}) {
		t.Errorf("Reset() left %+v, want zero value", c)
	}
}
