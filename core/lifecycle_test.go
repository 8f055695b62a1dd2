package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunLifecycle_TransitionsInOrder(t *testing.T) {
	l := newRunLifecycle()
	assert.Equal(t, StateReady, l.Load())

	assert.True(t, l.TryTransition(StateReady, StateRunning))
	assert.Equal(t, StateRunning, l.Load())

	assert.False(t, l.TryTransition(StateReady, StateRunning), "cannot transition from a state it's not in")

	l.requestStop()
	assert.Equal(t, StateStopping, l.Load())

	assert.True(t, l.TryTransition(StateStopping, StateStopped))
	assert.Equal(t, StateStopped, l.Load())
}

func TestRunLifecycle_RequestStopBeforeRunning(t *testing.T) {
	l := newRunLifecycle()
	l.requestStop()
	assert.Equal(t, StateStopping, l.Load())

	// requestStop is idempotent once stopping or stopped.
	l.requestStop()
	assert.Equal(t, StateStopping, l.Load())
}

func TestRunState_String(t *testing.T) {
	assert.Equal(t, "Ready", StateReady.String())
	assert.Equal(t, "Running", StateRunning.String())
	assert.Equal(t, "Stopping", StateStopping.String())
	assert.Equal(t, "Stopped", StateStopped.String())
}
