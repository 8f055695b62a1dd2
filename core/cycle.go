package core

import (
	"time"

	"github.com/sf-go/sf"
	"github.com/sf-go/sf/pal"
)

// cycleStepper is the step-and-spinwait loop shared by Executor (one
// instance per core) and SpinExecutor: run every task in order, stopping
// at the first non-success result, then spinwait out the remainder of
// the fixed-cadence cycle. Factoring this out keeps the two executors'
// scheduling behavior identical by construction rather than by two
// independently maintained copies.
type cycleStepper struct {
	clock           pal.Clock
	clockOverheadNs uint64
	cycleNs         uint64
	cycleEnd        uint64
}

// newCycleStepper starts a stepper whose first cycle begins now and ends
// one cycleTime from now.
func newCycleStepper(clock pal.Clock, clockOverheadNs uint64, cycleTime time.Duration) *cycleStepper {
	cycleNs := uint64(cycleTime / time.Nanosecond)
	return &cycleStepper{
		clock:           clock,
		clockOverheadNs: clockOverheadNs,
		cycleNs:         cycleNs,
		cycleEnd:        clock.NowNs() + cycleNs,
	}
}

// next steps every task in tasks in order, spinwaits until the current
// cycle's deadline (shortened by the calibrated clock-read overhead),
// then advances the deadline by one cycle. A task failure returns
// immediately, before the wait.
func (c *cycleStepper) next(tasks []*Task) sf.Result {
	for _, t := range tasks {
		if res := t.Step(); res != sf.SUCCESS {
			return res
		}
	}

	deadline := c.cycleEnd - c.clockOverheadNs
	for c.clock.NowNs() < deadline {
		// spinwait; a real-time cycle boundary is not worth a
		// sleep/wake round trip
	}
	c.cycleEnd += c.cycleNs
	return sf.SUCCESS
}
