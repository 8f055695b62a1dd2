package linux

import (
	"runtime"
	"sync"
	"unsafe"

	"github.com/sf-go/sf"
	"github.com/sf-go/sf/pal"
	"golang.org/x/sys/unix"
)

// Thread runs fn on a goroutine locked to its own OS thread (via
// runtime.LockOSThread), then applies sched_setaffinity and
// sched_setscheduler to that thread before fn starts, mirroring the
// original runtime's pthread-attribute dance at thread creation.
type Thread struct {
	done chan struct{}
	once sync.Once
}

// NewThread returns a Thread ready for Start.
func NewThread() *Thread { return &Thread{done: make(chan struct{})} }

func schedPolicy(p pal.ThreadPolicy) (int, sf.Result) {
	switch p {
	case pal.PolicyFair:
		return unix.SCHED_OTHER, sf.SUCCESS
	case pal.PolicyRR:
		return unix.SCHED_RR, sf.SUCCESS
	case pal.PolicyFifo:
		return unix.SCHED_FIFO, sf.SUCCESS
	default:
		return 0, sf.E_THR_POL
	}
}

// Start spawns the worker goroutine, pins it to an OS thread, and applies
// cfg's scheduling policy/priority and CPU affinity before invoking fn.
func (t *Thread) Start(cfg pal.ThreadConfig, fn func()) sf.Result {
	policy, res := schedPolicy(cfg.Policy)
	if res != sf.SUCCESS {
		return res
	}

	ready := make(chan sf.Result, 1)
	go func() {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		defer close(t.done)

		tid := unix.Gettid()

		if len(cfg.Affinity) > 0 {
			var set unix.CPUSet
			set.Zero()
			for _, cpu := range cfg.Affinity {
				set.Set(cpu)
			}
			if err := unix.SchedSetaffinity(tid, &set); err != nil {
				ready <- sf.E_THR_AFF
				return
			}
		}

		if policy != unix.SCHED_OTHER {
			param := unix.SchedParam{Priority: int32(cfg.Priority)}
			if err := schedSetscheduler(tid, policy, &param); err != nil {
				ready <- sf.E_THR_PRI
				return
			}
		}

		ready <- sf.SUCCESS
		fn()
	}()

	return <-ready
}

// Await blocks until the thread's fn has returned.
func (t *Thread) Await() sf.Result {
	<-t.done
	return sf.SUCCESS
}

// SelfSched applies scheduling changes to the calling thread, via
// sched_setscheduler(2) with pid 0. Callers must hold
// runtime.LockOSThread across the window the change is meant to cover,
// or the Go scheduler may migrate the goroutine off the adjusted thread.
type SelfSched struct{}

// NewSelfSched returns a SelfSched.
func NewSelfSched() SelfSched { return SelfSched{} }

// SetSelf applies policy and priority to the calling thread.
func (SelfSched) SetSelf(policy pal.ThreadPolicy, priority int32) sf.Result {
	p, res := schedPolicy(policy)
	if res != sf.SUCCESS {
		return res
	}
	param := unix.SchedParam{Priority: priority}
	if err := schedSetscheduler(0, p, &param); err != nil {
		return sf.E_THR_PRI
	}
	return sf.SUCCESS
}

// schedSetscheduler wraps the sched_setscheduler(2) syscall; it is not
// exposed directly by golang.org/x/sys/unix on all architectures, so it
// is issued here via the raw syscall number.
func schedSetscheduler(pid, policy int, param *unix.SchedParam) error {
	_, _, errno := unix.Syscall(unix.SYS_SCHED_SETSCHEDULER, uintptr(pid), uintptr(policy), uintptr(unsafe.Pointer(param)))
	if errno != 0 {
		return errno
	}
	return nil
}
