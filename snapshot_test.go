package cncsupervisor

import "testing"

func TestCoolantStateMask(t *testing.T) {
	cases := []struct {
		name string
		c    CoolantState
		want bool
	}{
		{"none", CoolantState{}, false},
		{"mist", CoolantState{Mist: true}, true},
		{"flood", CoolantState{Flood: true}, true},
		{"both", CoolantState{Mist: true, Flood: true}, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.c.Mask(); got != c.want {
				t.Errorf("Mask() = %v, want %v", got, c.want)
			}
		})
	}
}

func TestCoolantStateMerge(t *testing.T) {
	a := CoolantState{Mist: true}
	b := CoolantState{Flood: true}
	got := a.Merge(b)
	want := CoolantState{Mist: true, Flood: true}
	if got != want {
		t.Errorf("Merge() = %+v, want %+v", got, want)
	}
}
