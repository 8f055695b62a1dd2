package core

import (
	"github.com/sf-go/sf"
	"github.com/sf-go/sf/pal"
)

// SpinExecutor runs a single core's task schedule on the calling
// goroutine rather than spawning a pinned worker thread, sharing the same
// clock-overhead calibration and spinwait cycle timing as Executor. It
// exists for single-core targets and for tests that want deterministic,
// in-process execution without the real-time thread-scheduling machinery.
type SpinExecutor struct {
	initialized     bool
	core            CoreConfig
	clock           pal.Clock
	clockOverheadNs uint64
	life            *runLifecycle
}

// NewSpinExecutor returns an uninitialized SpinExecutor.
func NewSpinExecutor() *SpinExecutor { return &SpinExecutor{life: newRunLifecycle()} }

// Init validates core and clock and calibrates clock overhead.
func (e *SpinExecutor) Init(core CoreConfig, clock pal.Clock) sf.Result {
	if e.initialized {
		return sf.E_EXE_NULL
	}
	if clock == nil {
		return sf.E_EXE_NULL
	}
	if len(core.Tasks) == 0 {
		return sf.E_MSE_TSKS
	}
	if clock.NowNs() >= sf.NoTime-oneYearNs {
		return sf.E_EXE_OVFL
	}
	e.core = core
	e.clock = clock
	e.clockOverheadNs = calibrateClockOverheadNs(clock)
	e.initialized = true
	return sf.SUCCESS
}

// Run blocks, stepping the core's tasks at its configured cadence, until
// Stop is called from another goroutine or a task returns a non-success
// Result, which Run then returns.
func (e *SpinExecutor) Run() sf.Result {
	if !e.initialized {
		return sf.E_EXE_NULL
	}
	if !e.life.TryTransition(StateReady, StateRunning) {
		return sf.E_EXE_NULL
	}
	stepper := newCycleStepper(e.clock, e.clockOverheadNs, e.core.CycleTime)
	for e.life.Load() != StateStopping {
		if res := stepper.next(e.core.Tasks); res != sf.SUCCESS {
			return res
		}
	}
	e.life.TryTransition(StateStopping, StateStopped)
	return sf.SUCCESS
}

// Stop signals Run to return after its current cycle.
func (e *SpinExecutor) Stop() { e.life.requestStop() }
