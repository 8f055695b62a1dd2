package core

import (
	"time"

	"github.com/sf-go/sf"
	"github.com/sf-go/sf/pal"
)

// RegionRxTaskConfig configures a RegionRxTask.
type RegionRxTaskConfig struct {
	Socket  pal.Socket
	Region  *Region
	Timeout time.Duration
}

// RegionRxTask ingresses a datagram into a state-vector region once per
// cycle, selecting on the socket with a bounded timeout so a missing
// sender never stalls the executor cycle. It is a TaskImpl, meant to be
// wrapped in a Task so its ingestion is mode-gated like any other task.
type RegionRxTask struct {
	cfg RegionRxTaskConfig
	buf []byte
}

// NewRegionRxTask validates cfg and allocates the task's receive buffer.
func NewRegionRxTask(cfg RegionRxTaskConfig) (*RegionRxTask, sf.Result) {
	if cfg.Socket == nil || cfg.Region == nil {
		return nil, sf.E_RRX_NULL
	}
	return &RegionRxTask{cfg: cfg, buf: make([]byte, cfg.Region.Size())}, sf.SUCCESS
}

// StepSafe is a no-op: there is no reduced ingress behavior to fall back
// to, only full ingress or none.
func (t *RegionRxTask) StepSafe() sf.Result { return sf.SUCCESS }

// StepEnable selects on the socket for up to cfg.Timeout, and if a
// datagram became ready, reads it into the region. A select timeout with
// nothing ready is not an error: it just means no update arrived this
// cycle.
func (t *RegionRxTask) StepEnable() sf.Result {
	if res := t.cfg.Socket.Select(t.cfg.Timeout); res != sf.SUCCESS {
		if res == sf.E_SOK_SEL_NONE {
			return sf.SUCCESS
		}
		return res
	}
	n, res := t.cfg.Socket.Recv(t.buf)
	if res != sf.SUCCESS {
		return res
	}
	if res := sf.Assert(uint32(n) == t.cfg.Region.Size()); res != sf.SUCCESS {
		return res
	}
	return t.cfg.Region.Write(t.buf)
}

// RegionTxTaskConfig configures a RegionTxTask.
type RegionTxTaskConfig struct {
	Socket      pal.Socket
	Region      *Region
	DestAddr    string
	DestPort    uint16
	PayloadSize uint32
}

// RegionTxTask egresses a state-vector region as a datagram once per
// cycle.
type RegionTxTask struct {
	cfg RegionTxTaskConfig
	buf []byte
}

// NewRegionTxTask validates that cfg's declared payload size matches the
// region's actual size and allocates the task's send buffer.
func NewRegionTxTask(cfg RegionTxTaskConfig) (*RegionTxTask, sf.Result) {
	if cfg.Socket == nil || cfg.Region == nil {
		return nil, sf.E_RTX_SIZE
	}
	if cfg.PayloadSize != cfg.Region.Size() {
		return nil, sf.E_RTX_SIZE
	}
	return &RegionTxTask{cfg: cfg, buf: make([]byte, cfg.Region.Size())}, sf.SUCCESS
}

// StepSafe sends the same payload as StepEnable: egress has no reduced
// mode of its own, it is either gated off entirely (ModeDisable) or on.
func (t *RegionTxTask) StepSafe() sf.Result { return t.StepEnable() }

// StepEnable reads the region and sends it to the configured destination.
func (t *RegionTxTask) StepEnable() sf.Result {
	if res := t.cfg.Region.Read(t.buf); res != sf.SUCCESS {
		return res
	}
	return t.cfg.Socket.Send(t.cfg.DestAddr, t.cfg.DestPort, t.buf)
}
