package core

import (
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sf-go/sf"
	"github.com/sf-go/sf/pal"
	"github.com/sf-go/sf/sflog"
)

// clockCalibrationSamples is how many back-to-back NowNs calls are
// averaged to estimate the clock read's own overhead, so cycle deadlines
// can be shortened by that amount rather than always overshooting them.
const clockCalibrationSamples = 1000

// oneYearNs is the margin Executor and SpinExecutor refuse to run within of the
// monotonic clock's uint64 wraparound, since sf.NoTime squats on the
// maximum representable value.
const oneYearNs = uint64(365 * 24 * time.Hour / time.Nanosecond)

// calibrateClockOverheadNs estimates the average cost of a single Clock
// read by sampling it back to back. The result is subtracted from every
// cycle deadline so a core's spinwait accounts for the time the clock
// read itself consumes.
func calibrateClockOverheadNs(clock pal.Clock) uint64 {
	start := clock.NowNs()
	for i := 0; i < clockCalibrationSamples; i++ {
		_ = clock.NowNs()
	}
	end := clock.NowNs()
	return (end - start) / clockCalibrationSamples
}

// CoreConfig is the set of tasks run on a single logical CPU core, at a
// fixed cadence.
type CoreConfig struct {
	ID        int
	Affinity  []int
	Priority  int32
	CycleTime time.Duration
	Tasks     []*Task
}

// ExecutorConfig is the full multi-core schedule an Executor runs.
// StateMachines lists every StateMachine scheduled under this executor
// (each wrapped as a Task via StateMachineTask and placed in some core's
// Tasks); Init uses this list purely for ambient wiring, propagating the
// executor's Logger to any state machine that doesn't already have one of
// its own, so callers don't have to wire logging into every state
// machine by hand. SelfSched, when set, lets Start temporarily raise the
// calling thread's own priority while spawning core workers; see
// WithStartupPriorityBoost. Nil disables the boost.
type ExecutorConfig struct {
	Cores         []CoreConfig
	Clock         pal.Clock
	NewThread     func() pal.Thread
	SelfSched     pal.SelfSched
	StateMachines []*StateMachine
}

// ExecutorOption tunes optional Executor behavior beyond
// ExecutorConfig, following the same functional-options shape used
// elsewhere in this module for optional tuning knobs.
type ExecutorOption interface{ apply(*Executor) }

type executorOptionFunc func(*Executor)

func (f executorOptionFunc) apply(e *Executor) { f(e) }

// WithStartupPriorityBoost controls whether Start raises the calling
// thread's priority one above the highest configured core priority for
// the duration of the spawn loop, dropping it back once every core's
// thread has been spawned. This closes the window where an early-started
// core could preempt the thread still spawning its siblings. Workers
// themselves always run at their own configured CoreConfig.Priority.
// Enabled by default; has effect only when ExecutorConfig.SelfSched is
// set.
func WithStartupPriorityBoost(enabled bool) ExecutorOption {
	return executorOptionFunc(func(e *Executor) { e.startupBoost = enabled })
}

// WithLogger attaches a structured logger to the executor. It logs
// Start and the task error that stops every core, if any; Stop itself
// logs nothing. A nil logger (the default) is a silent no-op.
func WithLogger(l *sflog.Logger) ExecutorOption {
	return executorOptionFunc(func(e *Executor) { e.logger = l })
}

// Executor runs a multi-core real-time schedule: one pinned, scheduled OS
// thread per core, each looping its own tasks at its own fixed cadence.
type Executor struct {
	initialized  bool
	cfg          ExecutorConfig
	startupBoost bool
	logger       *sflog.Logger

	clockOverheadNs uint64
	life            *runLifecycle
	threads         []pal.Thread
	wg              sync.WaitGroup
	taskErr         atomic.Value // sf.Result
}

// NewExecutor returns an uninitialized Executor configured by opts.
func NewExecutor(opts ...ExecutorOption) *Executor {
	e := &Executor{startupBoost: true, life: newRunLifecycle()}
	for _, o := range opts {
		o.apply(e)
	}
	return e
}

// Init validates cfg, calibrates clock overhead, and readies the executor
// to Start. Core IDs must be unique and at least one core must be
// configured: a schedule that runs nothing is a configuration error, not
// a trivial no-op.
func (e *Executor) Init(cfg ExecutorConfig) sf.Result {
	if e.initialized {
		return sf.E_EXE_NULL
	}
	if cfg.Clock == nil || cfg.NewThread == nil {
		return sf.E_EXE_NULL
	}
	if len(cfg.Cores) == 0 {
		return sf.E_MSE_CNT
	}
	seen := make(map[int]struct{}, len(cfg.Cores))
	for _, c := range cfg.Cores {
		if _, dupe := seen[c.ID]; dupe {
			return sf.E_MSE_CORE
		}
		seen[c.ID] = struct{}{}
	}
	for _, c := range cfg.Cores {
		if len(c.Tasks) == 0 {
			return sf.E_MSE_TSKS
		}
	}

	if cfg.Clock.NowNs() >= sf.NoTime-oneYearNs {
		return sf.E_EXE_OVFL
	}

	for _, sm := range cfg.StateMachines {
		if sm.Logger == nil {
			sm.Logger = e.logger
		}
	}

	e.cfg = cfg
	e.clockOverheadNs = calibrateClockOverheadNs(cfg.Clock)
	e.initialized = true
	return sf.SUCCESS
}

// Start spawns one worker thread per configured core and returns once
// every thread has been scheduled and pinned. While the spawn loop runs,
// the calling thread itself is raised one above the highest configured
// core priority (startup boost), so a core whose worker started early
// cannot preempt the thread still spawning its siblings; the boost is
// dropped once the loop completes. Start does not block for the threads'
// lifetime; call Stop and Await to shut down.
func (e *Executor) Start() sf.Result {
	if !e.initialized {
		return sf.E_EXE_NULL
	}
	if !e.life.TryTransition(StateReady, StateRunning) {
		return sf.E_EXE_NULL
	}
	if e.logger != nil {
		e.logger.Info().Int("cores", len(e.cfg.Cores)).Log("executor starting")
	}

	if e.startupBoost && e.cfg.SelfSched != nil {
		runtime.LockOSThread()
		if res := e.cfg.SelfSched.SetSelf(pal.PolicyFifo, maxCorePriority(e.cfg.Cores)+1); res != sf.SUCCESS {
			runtime.UnlockOSThread()
			return res
		}
		defer func() {
			_ = e.cfg.SelfSched.SetSelf(pal.PolicyFair, 0)
			runtime.UnlockOSThread()
		}()
	}

	e.threads = make([]pal.Thread, len(e.cfg.Cores))
	for i, core := range e.cfg.Cores {
		core := core
		thread := e.cfg.NewThread()
		e.threads[i] = thread

		tcfg := pal.ThreadConfig{Policy: pal.PolicyFifo, Priority: core.Priority, Affinity: core.Affinity}

		e.wg.Add(1)
		if res := thread.Start(tcfg, func() {
			defer e.wg.Done()
			e.runCore(core)
		}); res != sf.SUCCESS {
			return res
		}
	}
	return sf.SUCCESS
}

func maxCorePriority(cores []CoreConfig) int32 {
	var highest int32
	for _, c := range cores {
		if c.Priority > highest {
			highest = c.Priority
		}
	}
	return highest
}

// runCore is the per-core worker loop: step every task in order, spin
// out the rest of the cycle, repeat until Stop is called.
func (e *Executor) runCore(core CoreConfig) {
	stepper := newCycleStepper(e.cfg.Clock, e.clockOverheadNs, core.CycleTime)
	for e.life.Load() != StateStopping {
		if res := stepper.next(core.Tasks); res != sf.SUCCESS {
			e.taskErr.CompareAndSwap(nil, res)
			if e.logger != nil {
				e.logger.Err().Int("core", core.ID).Err(res).Log("task step failed, stopping executor")
			}
			e.life.requestStop()
			return
		}
	}
}

// Stop signals every core's loop to exit after its current cycle.
func (e *Executor) Stop() { e.life.requestStop() }

// Await blocks until every core's worker thread has returned. If any
// core's loop exited early because a task returned a non-success Result,
// that Result is returned here, taking precedence over thread-join
// errors: a task failure is the reason every sibling core was asked to
// stop, so it is the one the caller should see.
func (e *Executor) Await() sf.Result {
	e.wg.Wait()
	e.life.TryTransition(StateStopping, StateStopped)
	joinRes := sf.SUCCESS
	for _, t := range e.threads {
		if res := t.Await(); res != sf.SUCCESS && joinRes == sf.SUCCESS {
			joinRes = res
		}
	}
	if res, ok := e.taskErr.Load().(sf.Result); ok {
		return res
	}
	return joinRes
}
