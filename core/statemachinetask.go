package core

import "github.com/sf-go/sf"

// StateMachineTask adapts a StateMachine to TaskImpl, so it can be
// scheduled on an executor core like any other task: a state machine is
// just a task whose step interprets its configured blocks.
type StateMachineTask struct {
	sm *StateMachine
}

// NewStateMachineTask wraps an already-initialized StateMachine.
func NewStateMachineTask(sm *StateMachine) *StateMachineTask {
	return &StateMachineTask{sm: sm}
}

// StepSafe steps the state machine exactly the same as StepEnable: a
// state machine has no reduced behavior of its own, only whatever its
// configured blocks do. A caller that wants true fail-safe behavior
// encodes it in the blocks themselves, gated on the mode element the
// wrapping Task reads.
func (t *StateMachineTask) StepSafe() sf.Result { return t.sm.Step() }

// StepEnable steps the wrapped state machine.
func (t *StateMachineTask) StepEnable() sf.Result { return t.sm.Step() }
