package core

import (
	"github.com/sf-go/sf"
	"github.com/sf-go/sf/obs"
	"github.com/sf-go/sf/sflog"
)

// StateConfig is one state's entry, step, and exit logic chains. Exit
// must never contain a Transition action: a state that could transition
// again on its way out would make the destination state's entry logic
// observe a partially-exited predecessor.
type StateConfig struct {
	ID    uint32
	Entry *Block
	Step  *Block
	Exit  *Block
}

// StepObserver is notified once per completed Step call. Implementations
// must not block; obs.StateResidency and obs.ExpressionStats are built to
// be cheap enough for this hot path.
type StepObserver interface {
	OnStep(prevState, curState uint32, atNs uint64)
}

// ExpressionWatch pairs a boolean guard expression with an
// obs.ExpressionStats tracker. Once per Step, the watch records how long
// (in global-time nanoseconds) the guard's most recent continuous true
// run lasted, as soon as that run ends (the guard reads false again, or
// the machine transitions out of the state that observed it).
type ExpressionWatch struct {
	Guard Expr[bool]
	Stats *obs.ExpressionStats

	trueSince uint64
	wasTrue   bool
}

// StateMachineConfig is the full configuration of a StateMachine: the
// state/state-time/global-time element handles it reads and writes
// directly, and the set of states it interprets. The machine's initial
// state is whatever StateElem currently holds at Init time, not a
// separately configured value: the state vector is the single source of
// truth for where the machine starts. ExpressionStats is optional;
// leaving it nil disables expression-dwell observation entirely.
type StateMachineConfig struct {
	StateElem       *Element[uint32]
	StateTimeElem   *Element[uint64]
	GlobalTimeElem  *Element[uint64]
	States          []StateConfig
	ExpressionStats []*ExpressionWatch
}

// StateMachine interprets a per-state entry/step/exit block chain. It
// keeps its own authoritative notion of the current state separate from
// StateElem: per the published ordering guarantee (entry -> step -> exit
// -> change current), a transition decided and exited within a Step call
// is not reflected in StateElem/StateTimeElem until the *next* Step call,
// when the new state's entry-pending branch publishes it.
type StateMachine struct {
	initialized bool
	cfg         StateMachineConfig
	states      map[uint32]StateConfig

	current        uint32
	entryPending   bool
	tStateStart    uint64
	lastGlobalTime uint64
	haveLastTime   bool

	Observer StepObserver

	// Logger receives a structured log line on every transition and on
	// every Step failure, if set. A nil Logger is a silent no-op, the
	// same zero-value default sflog documents for every core consumer.
	Logger *sflog.Logger
}

// NewStateMachine returns an uninitialized StateMachine.
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// Init validates cfg, including that StateElem's current value names a
// configured state, and prepares the machine to begin stepping from that
// state on the next Step call.
func (sm *StateMachine) Init(cfg *StateMachineConfig) sf.Result {
	if sm.initialized {
		return sf.E_SM_REINIT
	}
	if cfg == nil || cfg.StateElem == nil || cfg.StateTimeElem == nil || cfg.GlobalTimeElem == nil {
		return sf.E_SM_NULL
	}
	if len(cfg.States) == 0 {
		return sf.E_SM_EMPTY
	}

	states := make(map[uint32]StateConfig, len(cfg.States))
	for _, sc := range cfg.States {
		states[sc.ID] = sc
	}
	initial := cfg.StateElem.Read()
	if _, ok := states[initial]; !ok {
		return sf.E_SM_STATE
	}

	for _, sc := range cfg.States {
		if containsTransition(sc.Exit) {
			return sf.E_SM_TR_EXIT
		}
		for _, b := range [...]*Block{sc.Entry, sc.Step, sc.Exit} {
			for dest := range collectTransitions(b) {
				if _, ok := states[dest]; !ok {
					return sf.E_SM_TRANS
				}
			}
		}
	}

	sm.cfg = *cfg
	sm.states = states
	sm.current = initial
	sm.entryPending = true
	sm.initialized = true
	return sf.SUCCESS
}

// CurrentState returns the state ID last published to StateElem, which
// may lag the machine's internal cursor by one Step call after a
// transition: see the StateMachine type doc on its ordering guarantee.
func (sm *StateMachine) CurrentState() uint32 { return sm.cfg.StateElem.Read() }

// Step runs one cycle of the interpreter: entry (on the first step after
// entering a state) -> step -> exit (if a transition was requested) ->
// change of the internal current-state cursor. StateElem is only
// rewritten by the entry-pending branch, and StateTimeElem is measured
// from the start time that branch records, so a transition decided this
// call is not visible through them until the next Step call.
func (sm *StateMachine) Step() (res sf.Result) {
	if !sm.initialized {
		return sf.E_SM_UNINIT
	}
	defer func() {
		if res != sf.SUCCESS && sm.Logger != nil {
			sm.Logger.Err().Uint64("state", uint64(sm.current)).Log("state machine step failed")
		}
	}()

	tGlobal := sm.cfg.GlobalTimeElem.Read()
	if tGlobal == sf.NoTime {
		return sf.E_SM_TIME
	}
	if sm.haveLastTime && tGlobal <= sm.lastGlobalTime {
		return sf.E_SM_TIME
	}
	sm.lastGlobalTime = tGlobal
	sm.haveLastTime = true

	state := sm.states[sm.current]
	var dest uint32

	if sm.entryPending {
		sm.entryPending = false
		sm.cfg.StateElem.Write(state.ID)
		sm.tStateStart = tGlobal
		dest, res = state.Entry.Execute()
		if res != sf.SUCCESS {
			return res
		}
	}

	sm.cfg.StateTimeElem.Write(tGlobal - sm.tStateStart)

	if dest == sf.NoState {
		dest, res = state.Step.Execute()
		if res != sf.SUCCESS {
			return res
		}
	}

	sm.updateExpressionWatches(tGlobal, dest != sf.NoState)

	if dest != sf.NoState {
		if _, res := state.Exit.Execute(); res != sf.SUCCESS {
			return res
		}
		if _, ok := sm.states[dest]; !ok {
			return sf.E_SM_TRANS
		}
		if sm.Logger != nil {
			sm.Logger.Info().Uint64("from", uint64(state.ID)).Uint64("to", uint64(dest)).Log("state machine transition")
		}
		sm.current = dest
		sm.entryPending = true
	}

	if sm.Observer != nil {
		sm.Observer.OnStep(state.ID, sm.current, tGlobal)
	}
	return sf.SUCCESS
}

// updateExpressionWatches evaluates every configured ExpressionWatch's
// guard and, for each whose most recent continuous true run just ended
// (the guard reads false, or leavingState reports that this step
// transitions out of the current state), records that run's duration
// into its Stats tracker.
func (sm *StateMachine) updateExpressionWatches(tGlobal uint64, leavingState bool) {
	for _, w := range sm.cfg.ExpressionStats {
		v := w.Guard.Evaluate()
		switch {
		case w.wasTrue && (!v || leavingState):
			w.Stats.Observe(float64(tGlobal - w.trueSince))
			w.wasTrue = false
		case v && !w.wasTrue && !leavingState:
			w.trueSince = tGlobal
			w.wasTrue = true
		}
	}
}
