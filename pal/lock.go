package pal

import "github.com/sf-go/sf"

// Lock is the contract a Region uses to guard a shared memory cell against
// concurrent read/write races between a task's core and an ingress/egress
// path such as RegionRxTask. Implementations are expected to be cheap
// enough for the real-time hot path: a spin-CAS lock on Linux
// (psl/linux.Spinlock), for example, not a syscall-heavy mutex.
type Lock interface {
	// Acquire blocks until the lock is held, or returns a non-SUCCESS
	// Result if the underlying primitive fails.
	Acquire() sf.Result
	// Release releases a held lock.
	Release() sf.Result
}
