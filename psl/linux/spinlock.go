package linux

import (
	"sync/atomic"

	"github.com/sf-go/sf"
	"golang.org/x/sys/unix"
)

// Spinlock is a userspace spin-CAS lock backed by sched_yield for backoff
// under contention, used to guard Region reads/writes shared between a
// task's core and an ingress/egress path. A full futex wait/wake pair
// would avoid burning CPU under heavy contention, but this runtime's
// regions are held only for a memcpy, so a spin-yield loop stays cheaper
// than the syscall round trip a futex sleep would cost for the expected
// hold times.
type Spinlock struct {
	state atomic.Uint32
}

// NewSpinlock returns an unlocked Spinlock.
func NewSpinlock() *Spinlock { return &Spinlock{} }

// Acquire spins until the lock is held.
func (l *Spinlock) Acquire() sf.Result {
	for !l.state.CompareAndSwap(0, 1) {
		_ = unix.SchedYield()
	}
	return sf.SUCCESS
}

// Release releases a held lock. Releasing an unlocked Spinlock is a
// caller bug; it is reported as E_SLK_REL rather than corrupting the
// lock state.
func (l *Spinlock) Release() sf.Result {
	if !l.state.CompareAndSwap(1, 0) {
		return sf.E_SLK_REL
	}
	return sf.SUCCESS
}
