package core

import (
	"testing"

	"github.com/sf-go/sf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A StateMachine wrapped in a Task via StateMachineTask steps exactly
// like a direct call to StateMachine.Step, mode-gated like any other
// task.
func TestStateMachineTask_StepsWrappedMachine(t *testing.T) {
	stateElem, stateTimeElem, globalTimeElem := newTestClockElems(1)
	sm := NewStateMachine()
	require.Equal(t, sf.SUCCESS, sm.Init(&StateMachineConfig{
		StateElem:      stateElem,
		StateTimeElem:  stateTimeElem,
		GlobalTimeElem: globalTimeElem,
		States:         []StateConfig{{ID: 1}},
	}))

	var modeVal uint8 = uint8(sf.ModeEnable)
	mode := NewElement[uint8](&modeVal)
	task := NewTask()
	require.Equal(t, sf.SUCCESS, task.Init(mode, NewStateMachineTask(sm)))

	globalTimeElem.Write(0)
	require.Equal(t, sf.SUCCESS, task.Step())
	assert.Equal(t, uint32(1), stateElem.Read())

	globalTimeElem.Write(10)
	require.Equal(t, sf.SUCCESS, task.Step())
	assert.Equal(t, uint64(10), stateTimeElem.Read())

	mode.Write(uint8(sf.ModeDisable))
	globalTimeElem.Write(0)
	require.Equal(t, sf.SUCCESS, task.Step(), "disabled mode skips the step entirely, even with a stale global time")
}
