package core

import (
	"github.com/sf-go/sf"
	"github.com/sf-go/sf/sflog"
)

// TaskImpl is the behavior a concrete task supplies. StepSafe runs when
// the task's mode element reads ModeSafe and should be a reduced,
// fail-safe version of StepEnable; a task with no reduced mode can simply
// return sf.SUCCESS from StepSafe.
type TaskImpl interface {
	StepEnable() sf.Result
	StepSafe() sf.Result
}

// Task wraps a TaskImpl with the mode-gated dispatch every task in the
// runtime shares: its step is a no-op in ModeDisable, runs StepSafe in
// ModeSafe, and runs StepEnable in ModeEnable. The mode is itself a state
// vector element, so it can be driven by a state machine's actions like
// any other cell. A task may be bound with no mode element at all, in
// which case its step always runs StepEnable.
type Task struct {
	initialized bool
	mode        *Element[uint8]
	impl        TaskImpl

	// Logger receives a structured log line whenever Step returns a
	// non-success Result, if set. A nil Logger is a silent no-op.
	Logger *sflog.Logger
}

// NewTask returns an uninitialized Task.
func NewTask() *Task { return &Task{} }

// Init binds the task to its mode element and behavior.
func (t *Task) Init(mode *Element[uint8], impl TaskImpl) sf.Result {
	if t.initialized {
		return sf.E_TSK_REINIT
	}
	t.mode = mode
	t.impl = impl
	t.initialized = true
	return sf.SUCCESS
}

// Step dispatches to the task's behavior per its current mode.
func (t *Task) Step() (res sf.Result) {
	if !t.initialized {
		return sf.E_TSK_UNINIT
	}
	defer func() {
		if res != sf.SUCCESS && t.Logger != nil {
			t.Logger.Err().Err(res).Log("task step failed")
		}
	}()
	if t.mode == nil {
		return t.impl.StepEnable()
	}
	switch sf.TaskMode(t.mode.Read()) {
	case sf.ModeDisable:
		return sf.SUCCESS
	case sf.ModeSafe:
		return t.impl.StepSafe()
	case sf.ModeEnable:
		return t.impl.StepEnable()
	default:
		return sf.E_TSK_MODE
	}
}
