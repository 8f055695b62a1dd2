package pal

import "github.com/sf-go/sf"

// ThreadPolicy selects the OS scheduling policy a real-time worker thread
// runs under.
type ThreadPolicy uint8

const (
	// PolicyFair is the default, non-real-time scheduling policy.
	PolicyFair ThreadPolicy = iota
	// PolicyRR is round-robin real-time scheduling (SCHED_RR on Linux).
	PolicyRR
	// PolicyFifo is first-in-first-out real-time scheduling (SCHED_FIFO
	// on Linux).
	PolicyFifo
)

// ThreadConfig describes how a worker thread should be scheduled and
// pinned before it starts running its loop.
type ThreadConfig struct {
	// Policy is the OS scheduling policy to apply.
	Policy ThreadPolicy
	// Priority is the scheduling priority within Policy's range. Ignored
	// for PolicyFair.
	Priority int32
	// Affinity is the set of logical CPU core IDs the thread is pinned
	// to. Empty means no affinity is set.
	Affinity []int
}

// SelfSched adjusts the scheduling policy and priority of the calling
// thread. The executor uses it to protect its startup sequence: the
// thread spawning real-time workers briefly runs above them so an
// early-started worker cannot preempt the spawn loop partway through.
// The calling goroutine must stay locked to its OS thread for the
// change to cover the intended window.
type SelfSched interface {
	// SetSelf applies policy and priority to the calling thread.
	SetSelf(policy ThreadPolicy, priority int32) sf.Result
}

// Thread starts and manages a single pinned, scheduled worker thread.
type Thread interface {
	// Start begins running fn on a new OS thread configured per cfg, and
	// returns once the thread's scheduling and affinity have been
	// applied (not once fn returns).
	Start(cfg ThreadConfig, fn func()) sf.Result
	// Await blocks until the thread's fn returns.
	Await() sf.Result
}
