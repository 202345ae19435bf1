package cncsupervisor_test

import (
	"errors"
	"testing"

	"github.com/lmmeng/cncsupervisor"
	"github.com/lmmeng/cncsupervisor/simhw"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsNilCollaborator(t *testing.T) {
	h := simhw.New(3)
	c := h.Collaborators()
	c.Spindle = nil

	_, err := cncsupervisor.New(c)
	require.ErrorIs(t, err, cncsupervisor.ErrNilCollaborator)
}

func TestNewRejectsInvalidAxisCount(t *testing.T) {
	h := simhw.New(3)
	_, err := cncsupervisor.New(h.Collaborators(), cncsupervisor.WithConfig(cncsupervisor.Config{Axes: 0}))
	require.ErrorIs(t, err, cncsupervisor.ErrInvalidAxisCount)
}

func TestNewRejectsParkingAxisOutOfRange(t *testing.T) {
	h := simhw.New(3)
	_, err := cncsupervisor.New(h.Collaborators(), cncsupervisor.WithParking(cncsupervisor.Config{
		Axes:        3,
		ParkingAxis: 5,
	}))
	require.ErrorIs(t, err, cncsupervisor.ErrInvalidParkAxis)
}

func TestNewSucceedsStartsIdle(t *testing.T) {
	h := simhw.New(3)
	sup, err := cncsupervisor.New(h.Collaborators())
	require.NoError(t, err)
	require.Equal(t, cncsupervisor.StateIdle, sup.State())
	require.Equal(t, cncsupervisor.NotHolding, sup.HoldingState())
	require.Equal(t, cncsupervisor.ParkingDoorClosed, sup.ParkingState())
	require.False(t, sup.Suspended())
	require.False(t, sup.DoorReopened(), "parking disabled: DoorReopened must always be false")
}

func TestSetStateIdempotent(t *testing.T) {
	h := simhw.New(3)
	h.Planner.Blocks = []cncsupervisor.Block{{}}
	sup, err := cncsupervisor.New(h.Collaborators())
	require.NoError(t, err)

	sup.SetState(cncsupervisor.StateJog)
	require.Equal(t, cncsupervisor.StateJog, sup.State())

	// A second identical SetState call is a documented no-op: it must not
	// re-run Jog's entry side effects.
	callsBefore := len(h.Stepper.Calls)
	sup.SetState(cncsupervisor.StateJog)
	require.Equal(t, cncsupervisor.StateJog, sup.State())
	require.Equal(t, callsBefore, len(h.Stepper.Calls))
}

func TestSafetyDoorPreemptsFromAnyNonExcludedState(t *testing.T) {
	h := simhw.New(3)
	h.Planner.Blocks = []cncsupervisor.Block{{}}
	sup, err := cncsupervisor.New(h.Collaborators())
	require.NoError(t, err)

	sup.Events().Post(cncsupervisor.EvCycleStart)
	sup.Tick()
	require.Equal(t, cncsupervisor.StateCycle, sup.State())

	sup.Events().Post(cncsupervisor.EvSafetyDoor)
	sup.Tick()
	require.Equal(t, cncsupervisor.StateSafetyDoor, sup.State())
}

func TestSafetyDoorRefusedFromAlarm(t *testing.T) {
	h := simhw.New(3)
	sup, err := cncsupervisor.New(h.Collaborators())
	require.NoError(t, err)

	sup.SetState(cncsupervisor.StateAlarm)
	require.Equal(t, cncsupervisor.StateAlarm, sup.State())

	sup.Events().Post(cncsupervisor.EvSafetyDoor)
	sup.Tick()
	require.Equal(t, cncsupervisor.StateAlarm, sup.State(), "SafetyDoor must be refused from Alarm")
}

func TestNoopHandlerIgnoresEverything(t *testing.T) {
	h := simhw.New(3)
	h.Planner.Blocks = []cncsupervisor.Block{{}}
	sup, err := cncsupervisor.New(h.Collaborators())
	require.NoError(t, err)

	sup.SetState(cncsupervisor.StateHoming)
	sup.Events().Post(cncsupervisor.EvCycleStart | cncsupervisor.EvFeedHold | cncsupervisor.EvCycleComplete | cncsupervisor.EvMotionCancel)
	sup.Tick()
	require.Equal(t, cncsupervisor.StateHoming, sup.State())
}

func TestHoldRefusedWhenFeedHoldDisabled(t *testing.T) {
	h := simhw.New(3)
	h.Planner.Blocks = []cncsupervisor.Block{{}}
	h.Override.FeedHoldDisabled = true
	sup, err := cncsupervisor.New(h.Collaborators())
	require.NoError(t, err)

	sup.Events().Post(cncsupervisor.EvCycleStart)
	sup.Tick()
	sup.Events().Post(cncsupervisor.EvFeedHold)
	sup.Tick()
	require.Equal(t, cncsupervisor.StateCycle, sup.State(), "feed hold disable override must refuse the hold")
}

func TestErrorsAreDistinctSentinels(t *testing.T) {
	require.False(t, errors.Is(cncsupervisor.ErrNilCollaborator, cncsupervisor.ErrInvalidAxisCount))
	require.False(t, errors.Is(cncsupervisor.ErrInvalidAxisCount, cncsupervisor.ErrInvalidParkAxis))
}
