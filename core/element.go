package core

import (
	"unsafe"

	"github.com/sf-go/sf"
)

// IElement is the type-erased view of an Element, as stored by a
// StateVector entry and returned by GetIElement. There is no runtime
// reflection beyond this tag: a caller that wants the typed value must
// know T and call GetElement[T], which fails with sf.E_SV_TYPE if the
// tag doesn't match.
type IElement interface {
	// Type returns the element's scalar type tag.
	Type() sf.ElementType
	// Addr returns the address of the backing memory cell. Used only by
	// the state-vector layout validator; never dereferenced directly.
	Addr() uintptr
	// Size returns sizeof(T) in bytes.
	Size() uint32
}

// Element is a typed read/write view of a single memory cell of type T.
// The backing memory (*T) must outlive the Element; Element never
// allocates or frees it. Writes are non-atomic: a reader racing a writer
// without a covering Region+lock may observe a torn value, per the
// runtime's documented shared-resource policy.
type Element[T sf.Scalar] struct {
	ptr *T
}

// NewElement constructs an Element bound to the given backing cell. The
// caller retains ownership of backing and must keep it alive for as long
// as the Element (and any StateVector referencing it) is in use.
func NewElement[T sf.Scalar](backing *T) *Element[T] {
	return &Element[T]{ptr: backing}
}

// Read returns the element's current value.
func (e *Element[T]) Read() T { return *e.ptr }

// Write sets the element's value.
func (e *Element[T]) Write(v T) { *e.ptr = v }

// Type returns the ElementType tag for T.
func (e *Element[T]) Type() sf.ElementType { return sf.ElementTypeOf[T]() }

// Addr returns the address of the backing cell.
func (e *Element[T]) Addr() uintptr { return uintptr(unsafe.Pointer(e.ptr)) }

// Size returns sizeof(T).
func (e *Element[T]) Size() uint32 { return e.Type().Size() }

var _ IElement = (*Element[int8])(nil)
