package pal

import (
	"time"

	"github.com/sf-go/sf"
)

// SocketProtocol selects the transport a Socket speaks.
type SocketProtocol uint8

const (
	// UDP is an unreliable, connectionless datagram protocol.
	UDP SocketProtocol = iota
)

// SocketConfig describes how to open a Socket.
type SocketConfig struct {
	Protocol SocketProtocol
	Port     uint16
}

// Socket is a minimal datagram transport used by RegionRxTask and
// RegionTxTask to move state-vector regions across a process boundary.
type Socket interface {
	// Send writes buf to addr:port. It either sends the whole buffer or
	// fails; there is no partial-send contract.
	Send(addr string, port uint16, buf []byte) sf.Result
	// Recv reads up to len(buf) bytes into buf, returning the number of
	// bytes read.
	Recv(buf []byte) (int, sf.Result)
	// Select blocks until the socket is readable or timeout elapses. It
	// returns E_SOK_SEL_NONE if timeout elapses with nothing ready.
	Select(timeout time.Duration) sf.Result
	// Close releases the socket's underlying OS resources.
	Close() sf.Result
}
