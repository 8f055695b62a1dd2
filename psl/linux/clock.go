// Package linux implements the pal contracts (Clock, Thread, Lock,
// Socket, Console) against Linux, via golang.org/x/sys/unix: the same
// dependency the teacher's platform layer used for epoll/kqueue and pipe
// wakeups, repurposed here for clock_gettime, sched_setaffinity,
// sched_setscheduler, a spin-CAS lock, and UDP sockets.
package linux

import (
	"github.com/sf-go/sf"
	"golang.org/x/sys/unix"
)

// Clock reads CLOCK_MONOTONIC via clock_gettime, the only time source
// the runtime core's cycle scheduling and state-machine stepping use.
type Clock struct{}

// NewClock returns a Clock.
func NewClock() Clock { return Clock{} }

// NowNs returns the current monotonic time in nanoseconds.
func (Clock) NowNs() uint64 {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_MONOTONIC, &ts); err != nil {
		return sf.NoTime
	}
	return uint64(ts.Sec)*1_000_000_000 + uint64(ts.Nsec)
}
