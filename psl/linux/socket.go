package linux

import (
	"net"
	"time"

	"github.com/sf-go/sf"
	"github.com/sf-go/sf/pal"
	"golang.org/x/sys/unix"
)

// Socket is a UDP datagram socket backed by the raw socket(2)/bind(2)/
// sendto(2)/recvfrom(2)/select(2) syscalls.
type Socket struct {
	fd int
}

// NewSocket opens and binds a UDP socket per cfg.
func NewSocket(cfg pal.SocketConfig) (*Socket, sf.Result) {
	if cfg.Protocol != pal.UDP {
		return nil, sf.E_SOK_PROTO
	}
	fd, err := unix.Socket(unix.AF_INET, unix.SOCK_DGRAM, 0)
	if err != nil {
		return nil, sf.E_SOK_OPEN
	}
	sa := &unix.SockaddrInet4{Port: int(cfg.Port)}
	if err := unix.Bind(fd, sa); err != nil {
		_ = unix.Close(fd)
		return nil, sf.E_SOK_BIND
	}
	return &Socket{fd: fd}, sf.SUCCESS
}

// Send writes buf as a single UDP datagram to addr:port.
func (s *Socket) Send(addr string, port uint16, buf []byte) sf.Result {
	ip := net.ParseIP(addr)
	if ip == nil {
		return sf.E_SOK_SEND
	}
	v4 := ip.To4()
	if v4 == nil {
		return sf.E_SOK_SEND
	}
	sa := &unix.SockaddrInet4{Port: int(port)}
	copy(sa.Addr[:], v4)
	if err := unix.Sendto(s.fd, buf, 0, sa); err != nil {
		return sf.E_SOK_SEND
	}
	return sf.SUCCESS
}

// Recv reads one datagram into buf.
func (s *Socket) Recv(buf []byte) (int, sf.Result) {
	n, _, err := unix.Recvfrom(s.fd, buf, 0)
	if err != nil {
		return 0, sf.E_SOK_RECV
	}
	return n, sf.SUCCESS
}

// Select blocks until the socket is readable or timeout elapses.
func (s *Socket) Select(timeout time.Duration) sf.Result {
	var set unix.FdSet
	fdSetZero(&set)
	fdSetAdd(&set, s.fd)

	tv := unix.NsecToTimeval(timeout.Nanoseconds())
	n, err := unix.Select(s.fd+1, &set, nil, nil, &tv)
	if err != nil {
		return sf.E_SOK_SEL
	}
	if n == 0 {
		return sf.E_SOK_SEL_NONE
	}
	return sf.SUCCESS
}

// Close releases the socket's file descriptor.
func (s *Socket) Close() sf.Result {
	if err := unix.Close(s.fd); err != nil {
		return sf.E_SOK_CLOSE
	}
	return sf.SUCCESS
}

func fdSetZero(set *unix.FdSet) {
	for i := range set.Bits {
		set.Bits[i] = 0
	}
}

func fdSetAdd(set *unix.FdSet, fd int) {
	idx := fd / 64
	bit := uint(fd % 64)
	set.Bits[idx] |= 1 << bit
}
