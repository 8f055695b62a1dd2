package core

import (
	"testing"
	"time"

	"github.com/sf-go/sf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSocket struct {
	selectRes  sf.Result
	recvBuf    []byte
	recvRes    sf.Result
	sentAddr   string
	sentPort   uint16
	sentBuf    []byte
	sendRes    sf.Result
	closeCalls int
}

func (s *fakeSocket) Send(addr string, port uint16, buf []byte) sf.Result {
	s.sentAddr, s.sentPort, s.sentBuf = addr, port, append([]byte(nil), buf...)
	if s.sendRes != sf.SUCCESS {
		return s.sendRes
	}
	return sf.SUCCESS
}

func (s *fakeSocket) Recv(buf []byte) (int, sf.Result) {
	if s.recvRes != sf.SUCCESS {
		return 0, s.recvRes
	}
	n := copy(buf, s.recvBuf)
	return n, sf.SUCCESS
}

func (s *fakeSocket) Select(time.Duration) sf.Result { return s.selectRes }
func (s *fakeSocket) Close() sf.Result               { s.closeCalls++; return sf.SUCCESS }

func newTestRegion(t *testing.T, size uint32) *Region {
	t.Helper()
	backing := make([]byte, size)
	return NewRegion("test", addrOf(backing), size, nil)
}

func TestRegionRxTask_IngestsOnReadySelect(t *testing.T) {
	region := newTestRegion(t, 4)
	sock := &fakeSocket{recvBuf: []byte{1, 2, 3, 4}}
	task, res := NewRegionRxTask(RegionRxTaskConfig{Socket: sock, Region: region, Timeout: time.Millisecond})
	require.Equal(t, sf.SUCCESS, res)

	require.Equal(t, sf.SUCCESS, task.StepEnable())
	out := make([]byte, 4)
	require.Equal(t, sf.SUCCESS, region.Read(out))
	assert.Equal(t, []byte{1, 2, 3, 4}, out)
}

func TestRegionRxTask_SelectTimeoutIsNotError(t *testing.T) {
	region := newTestRegion(t, 4)
	sock := &fakeSocket{selectRes: sf.E_SOK_SEL_NONE}
	task, res := NewRegionRxTask(RegionRxTaskConfig{Socket: sock, Region: region, Timeout: time.Millisecond})
	require.Equal(t, sf.SUCCESS, res)
	assert.Equal(t, sf.SUCCESS, task.StepEnable())
}

func TestRegionRxTask_NullConfigRejected(t *testing.T) {
	_, res := NewRegionRxTask(RegionRxTaskConfig{})
	assert.Equal(t, sf.E_RRX_NULL, res)
}

func TestRegionTxTask_SendsRegionContents(t *testing.T) {
	region := newTestRegion(t, 3)
	require.Equal(t, sf.SUCCESS, region.Write([]byte{9, 8, 7}))
	sock := &fakeSocket{}
	task, res := NewRegionTxTask(RegionTxTaskConfig{Socket: sock, Region: region, DestAddr: "127.0.0.1", DestPort: 9000, PayloadSize: 3})
	require.Equal(t, sf.SUCCESS, res)

	require.Equal(t, sf.SUCCESS, task.StepEnable())
	assert.Equal(t, "127.0.0.1", sock.sentAddr)
	assert.Equal(t, uint16(9000), sock.sentPort)
	assert.Equal(t, []byte{9, 8, 7}, sock.sentBuf)
}

func TestRegionTxTask_PayloadSizeMismatchRejected(t *testing.T) {
	region := newTestRegion(t, 3)
	_, res := NewRegionTxTask(RegionTxTaskConfig{Socket: &fakeSocket{}, Region: region, PayloadSize: 4})
	assert.Equal(t, sf.E_RTX_SIZE, res)
}
