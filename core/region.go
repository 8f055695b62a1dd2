package core

import (
	"unsafe"

	"github.com/sf-go/sf"
	"github.com/sf-go/sf/pal"
)

// Region is a contiguous, named span of state-vector memory that can be
// bulk read or written as a unit, optionally guarded by a pal.Lock when it
// is shared with an out-of-band writer/reader such as a RegionRxTask. A
// Region never owns its backing memory: addr must point into memory kept
// alive by whatever allocated the state vector's backing array.
type Region struct {
	name string
	addr uintptr
	size uint32
	lock pal.Lock
}

// NewRegion constructs a Region over [addr, addr+size). lock may be nil,
// meaning the region is not contended.
func NewRegion(name string, addr uintptr, size uint32, lock pal.Lock) *Region {
	return &Region{name: name, addr: addr, size: size, lock: lock}
}

// Name returns the region's configured name.
func (r *Region) Name() string { return r.name }

// Addr returns the region's base address.
func (r *Region) Addr() uintptr { return r.addr }

// Size returns the region's size in bytes.
func (r *Region) Size() uint32 { return r.size }

func (r *Region) bytes() []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(r.addr)), r.size)
}

// Write copies buf into the region's backing memory, acquiring the guard
// lock first if one is configured. len(buf) must equal Size() exactly.
func (r *Region) Write(buf []byte) sf.Result {
	if uint32(len(buf)) != r.size {
		return sf.E_RGN_SIZE
	}
	if r.lock != nil {
		if res := r.lock.Acquire(); res != sf.SUCCESS {
			return res
		}
	}
	copy(r.bytes(), buf)
	if r.lock != nil {
		if res := r.lock.Release(); res != sf.SUCCESS {
			return res
		}
	}
	return sf.SUCCESS
}

// Read copies the region's backing memory into buf. len(buf) must equal
// Size() exactly. A lock failure on the read path is treated as a fatal
// invariant violation (sf.Assert) rather than a recoverable error: a task
// that cannot trust its own region lock has no safe degraded mode left.
func (r *Region) Read(buf []byte) sf.Result {
	if uint32(len(buf)) != r.size {
		return sf.E_RGN_SIZE
	}
	if r.lock != nil {
		if res := sf.Assert(r.lock.Acquire() == sf.SUCCESS); res != sf.SUCCESS {
			return res
		}
	}
	copy(buf, r.bytes())
	if r.lock != nil {
		if res := sf.Assert(r.lock.Release() == sf.SUCCESS); res != sf.SUCCESS {
			return res
		}
	}
	return sf.SUCCESS
}
