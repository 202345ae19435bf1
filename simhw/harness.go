package simhw

import "github.com/lmmeng/cncsupervisor"

// Harness bundles one of every fake collaborator, exposing the concrete
// fakes for assertions alongside the cncsupervisor.Collaborators view
// constructed from them.
type Harness struct {
	Planner   *Planner
	Stepper   *Stepper
	Motion    *Motion
	Position  *Position
	Spindle   *Spindle
	Coolant   *Coolant
	GCode     *GCode
	HAL       *HAL
	Settings  *Settings
	Override  *Override
	Reporter  *Reporter
	Accessory *Accessory
	Clock     *Clock
}

// New builds a Harness with axes machine axes, all fakes in their zero
// state (door closed, homing/laser both off, no blocks queued).
func New(axes int) *Harness {
	return &Harness{
		Planner:   NewPlanner(axes),
		Stepper:   &Stepper{},
		Motion:    &Motion{},
		Position:  &Position{Pos: make([]float64, axes)},
		Spindle:   &Spindle{},
		Coolant:   &Coolant{},
		GCode:     &GCode{},
		HAL:       &HAL{},
		Settings:  &Settings{},
		Override:  &Override{},
		Reporter:  &Reporter{},
		Accessory: &Accessory{},
		Clock:     NewClock(),
	}
}

// Collaborators returns the cncsupervisor.Collaborators view over this
// harness's fakes.
func (h *Harness) Collaborators() cncsupervisor.Collaborators {
	return cncsupervisor.Collaborators{
		Planner:   h.Planner,
		Stepper:   h.Stepper,
		Motion:    h.Motion,
		Position:  h.Position,
		Spindle:   h.Spindle,
		Coolant:   h.Coolant,
		GCode:     h.GCode,
		HAL:       h.HAL,
		Settings:  h.Settings,
		Override:  h.Override,
		Report:    h.Reporter,
		Accessory: h.Accessory,
	}
}
