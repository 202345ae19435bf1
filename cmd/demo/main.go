// Command demo builds a Supervisor over simhw's fake collaborators and
// drives it through a small scripted sequence (cycle start, a feed hold,
// resume), printing the state after each step. A stumpy-backed logger is
// installed, so the supervisor's own hold log lines are printed too.
package main

import (
	"fmt"
	"os"

	"github.com/joeycumines/logiface"
	"github.com/joeycumines/stumpy"
	"github.com/lmmeng/cncsupervisor"
	"github.com/lmmeng/cncsupervisor/simhw"
)

func main() {
	h := simhw.New(3)
	h.Planner.Blocks = []cncsupervisor.Block{
		{Condition: cncsupervisor.ConditionSnapshot{Spindle: cncsupervisor.SpindleModal{On: true, CW: true}, RPM: 12000}},
	}

	logger := stumpy.L.New(
		stumpy.L.WithWriter(logiface.WriterFunc[*stumpy.Event](func(e *stumpy.Event) error {
			fmt.Fprintf(os.Stdout, "%s\n", e.Bytes())
			return nil
		})),
	)

	sup, err := cncsupervisor.New(
		h.Collaborators(),
		cncsupervisor.WithLogger(cncsupervisor.NewStumpyLogger(logger)),
		cncsupervisor.WithClock(h.Clock),
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, "build supervisor:", err)
		os.Exit(1)
	}

	report := func(label string) {
		fmt.Printf("%-24s state=%-10s holding=%-10s parking=%-10s\n",
			label, sup.State(), sup.HoldingState(), sup.ParkingState())
	}

	report("initial")

	sup.Events().Post(cncsupervisor.EvCycleStart)
	sup.Tick()
	report("after cycle start")

	sup.Events().Post(cncsupervisor.EvFeedHold)
	sup.Tick()
	report("after feed hold")

	h.Planner.Advance()
	sup.Events().Post(cncsupervisor.EvCycleComplete)
	sup.Tick()
	report("after deceleration complete")

	sup.Events().Post(cncsupervisor.EvCycleStart)
	sup.Tick()
	report("after resume")
}
