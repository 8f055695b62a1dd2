package core

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sf-go/sf"
	"github.com/sf-go/sf/sflog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingImpl struct {
	enableCalls int
	safeCalls   int
}

func (c *countingImpl) StepEnable() sf.Result { c.enableCalls++; return sf.SUCCESS }
func (c *countingImpl) StepSafe() sf.Result   { c.safeCalls++; return sf.SUCCESS }

// S5: a task's step dispatches per its mode element, no-ops when
// disabled, and rejects a mode value outside the known enum.
func TestTask_ModeGatedDispatch(t *testing.T) {
	var modeVal uint8
	mode := NewElement[uint8](&modeVal)
	impl := &countingImpl{}
	task := NewTask()
	require.Equal(t, sf.SUCCESS, task.Init(mode, impl))

	mode.Write(uint8(sf.ModeDisable))
	require.Equal(t, sf.SUCCESS, task.Step())
	assert.Equal(t, 0, impl.enableCalls)
	assert.Equal(t, 0, impl.safeCalls)

	mode.Write(uint8(sf.ModeSafe))
	require.Equal(t, sf.SUCCESS, task.Step())
	assert.Equal(t, 0, impl.enableCalls)
	assert.Equal(t, 1, impl.safeCalls)

	mode.Write(uint8(sf.ModeEnable))
	require.Equal(t, sf.SUCCESS, task.Step())
	assert.Equal(t, 1, impl.enableCalls)
	assert.Equal(t, 1, impl.safeCalls)

	mode.Write(200)
	assert.Equal(t, sf.E_TSK_MODE, task.Step())
}

// A task bound with no mode element always runs its enable-mode step.
func TestTask_NilModeAlwaysEnables(t *testing.T) {
	impl := &countingImpl{}
	task := NewTask()
	require.Equal(t, sf.SUCCESS, task.Init(nil, impl))

	require.Equal(t, sf.SUCCESS, task.Step())
	require.Equal(t, sf.SUCCESS, task.Step())
	assert.Equal(t, 2, impl.enableCalls)
	assert.Equal(t, 0, impl.safeCalls)
}

func TestTask_StepBeforeInitFails(t *testing.T) {
	task := NewTask()
	assert.Equal(t, sf.E_TSK_UNINIT, task.Step())
}

func TestTask_ReInitFails(t *testing.T) {
	var modeVal uint8
	mode := NewElement[uint8](&modeVal)
	task := NewTask()
	impl := &countingImpl{}
	require.Equal(t, sf.SUCCESS, task.Init(mode, impl))
	assert.Equal(t, sf.E_TSK_REINIT, task.Init(mode, impl))
}

type failingImpl struct{ res sf.Result }

func (f *failingImpl) StepEnable() sf.Result { return f.res }
func (f *failingImpl) StepSafe() sf.Result   { return sf.SUCCESS }

// A task with a Logger set logs a failing step through it.
func TestTask_LogsFailingStep(t *testing.T) {
	var modeVal uint8 = uint8(sf.ModeEnable)
	mode := NewElement[uint8](&modeVal)
	impl := &failingImpl{res: sf.E_TSK_MODE}
	task := NewTask()
	require.Equal(t, sf.SUCCESS, task.Init(mode, impl))

	var buf bytes.Buffer
	task.Logger = sflog.New(sflog.WithWriter(&buf))

	assert.Equal(t, sf.E_TSK_MODE, task.Step())
	assert.True(t, strings.Contains(buf.String(), "task step failed"))
}
