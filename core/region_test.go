package core

import (
	"testing"
	"unsafe"

	"github.com/sf-go/sf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addrOf(backing []byte) uintptr { return uintptr(unsafe.Pointer(&backing[0])) }

type fakeLock struct {
	acquireRes sf.Result
	releaseRes sf.Result
	acquired   int
	released   int
}

func (l *fakeLock) Acquire() sf.Result {
	l.acquired++
	if l.acquireRes != sf.SUCCESS {
		return l.acquireRes
	}
	return sf.SUCCESS
}

func (l *fakeLock) Release() sf.Result {
	l.released++
	if l.releaseRes != sf.SUCCESS {
		return l.releaseRes
	}
	return sf.SUCCESS
}

func TestRegion_WriteThenReadRoundTrips(t *testing.T) {
	backing := make([]byte, 4)
	r := NewRegion("test", addrOf(backing), 4, nil)

	require.Equal(t, sf.SUCCESS, r.Write([]byte{1, 2, 3, 4}))
	out := make([]byte, 4)
	require.Equal(t, sf.SUCCESS, r.Read(out))
	assert.Equal(t, []byte{1, 2, 3, 4}, out)
}

func TestRegion_SizeMismatchRejected(t *testing.T) {
	backing := make([]byte, 4)
	r := NewRegion("test", addrOf(backing), 4, nil)
	assert.Equal(t, sf.E_RGN_SIZE, r.Write([]byte{1, 2, 3}))
	assert.Equal(t, sf.E_RGN_SIZE, r.Read(make([]byte, 5)))
}

func TestRegion_WriteLockFailurePropagates(t *testing.T) {
	backing := make([]byte, 2)
	lock := &fakeLock{acquireRes: sf.E_SLK_ACQ}
	r := NewRegion("test", addrOf(backing), 2, lock)
	assert.Equal(t, sf.E_SLK_ACQ, r.Write([]byte{1, 2}))
}
