package core

import "sync/atomic"

// RunState is the lifecycle of an Executor or SpinExecutor's run loop.
type RunState uint64

const (
	// StateReady means Init has completed but Start/Run has not been
	// called yet.
	StateReady RunState = iota
	// StateRunning means the cycle loop is actively stepping tasks.
	StateRunning
	// StateStopping means Stop has been called but the loop has not yet
	// observed it.
	StateStopping
	// StateStopped means the loop has returned.
	StateStopped
)

func (s RunState) String() string {
	switch s {
	case StateReady:
		return "Ready"
	case StateRunning:
		return "Running"
	case StateStopping:
		return "Stopping"
	case StateStopped:
		return "Stopped"
	default:
		return "Unknown"
	}
}

// runLifecycle is a lock-free state machine with cache-line padding,
// tracking an executor's run loop across Ready -> Running -> Stopping ->
// Stopped. CAS transitions let Stop() and the loop's own exit race safely
// without a mutex on the cycle hot path.
type runLifecycle struct { // betteralign:ignore
	_ [64]byte
	v atomic.Uint64
	_ [56]byte
}

func newRunLifecycle() *runLifecycle {
	l := &runLifecycle{}
	l.v.Store(uint64(StateReady))
	return l
}

func (l *runLifecycle) Load() RunState { return RunState(l.v.Load()) }

func (l *runLifecycle) TryTransition(from, to RunState) bool {
	return l.v.CompareAndSwap(uint64(from), uint64(to))
}

// requestStop moves Ready or Running to Stopping, so Stop is safe to call
// before Start/Run's loop has actually begun spinning.
func (l *runLifecycle) requestStop() {
	for {
		cur := l.Load()
		if cur == StateStopping || cur == StateStopped {
			return
		}
		if l.TryTransition(cur, StateStopping) {
			return
		}
	}
}
