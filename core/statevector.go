package core

import (
	"unsafe"

	"github.com/sf-go/sf"
	"github.com/sf-go/sf/pal"
)

// ElementConfig names and types a single state-vector cell. Elements are
// laid out in the order given, back to back, with no padding: the layout
// is entirely Go's to decide, unlike the original runtime where element
// addresses were taken from a hand-packed C struct and merely validated
// against a user-declared layout. That validation still happens here
// (see validateLayout), just against a layout this package itself
// produced.
type ElementConfig struct {
	Name string
	Type sf.ElementType
}

// RegionConfig names a span over a consecutive run of state-vector
// elements, identified by their names in declaration order, sharing one
// optional guard lock.
type RegionConfig struct {
	Name     string
	Elements []string
	Lock     pal.Lock
}

// StateVectorConfig is the element layout of a StateVector, plus an
// optional list of regions spanning it. When regions are present they
// must tile the element list exactly: concatenating the regions' spans
// in declaration order covers every element in declaration order, with
// no gaps, overlaps, or stragglers.
type StateVectorConfig struct {
	Elements []ElementConfig
	Regions  []RegionConfig
}

// StateVector owns a single contiguous backing allocation sliced into
// named, typed elements, optionally grouped into named regions. It is
// the shared memory contract every Task, StateMachine, and
// ingress/egress path reads and writes through.
type StateVector struct {
	initialized bool
	backing     []byte

	regionOrder []string
	regions     map[string]*Region

	elements     map[string]IElement
	elementOrder []string
}

// NewStateVector returns an uninitialized StateVector. Call Init before
// use.
func NewStateVector() *StateVector {
	return &StateVector{}
}

// Init builds the backing allocation and binds every configured element
// and region against it. It may be called exactly once per StateVector.
func (sv *StateVector) Init(cfg *StateVectorConfig) sf.Result {
	if sv.initialized {
		return sf.E_SV_REINIT
	}
	if cfg == nil {
		return sf.E_SV_NULL
	}
	if len(cfg.Elements) == 0 {
		return sf.E_SV_EMPTY
	}

	var total uint32
	index := make(map[string]int, len(cfg.Elements))
	for i, ec := range cfg.Elements {
		if _, dupe := index[ec.Name]; dupe {
			return sf.E_SV_ELEM_DUPE
		}
		index[ec.Name] = i
		total += ec.Type.Size()
	}

	backing := make([]byte, total)
	elements := make(map[string]IElement, len(cfg.Elements))
	elementOrder := make([]string, 0, len(cfg.Elements))
	offsets := make([]uint32, len(cfg.Elements))

	var offset uint32
	for i, ec := range cfg.Elements {
		offsets[i] = offset
		elements[ec.Name] = newElementForType(ec.Type, unsafe.Pointer(&backing[offset]))
		elementOrder = append(elementOrder, ec.Name)
		offset += ec.Type.Size()
	}

	regions := make(map[string]*Region, len(cfg.Regions))
	regionOrder := make([]string, 0, len(cfg.Regions))
	cursor := 0
	for _, rc := range cfg.Regions {
		if _, dupe := regions[rc.Name]; dupe {
			return sf.E_SV_RGN_DUPE
		}
		if len(rc.Elements) == 0 || cursor >= len(cfg.Elements) {
			return sf.E_SV_LAYOUT
		}
		start := offsets[cursor]
		var size uint32
		for _, name := range rc.Elements {
			if cursor >= len(cfg.Elements) || cfg.Elements[cursor].Name != name {
				return sf.E_SV_LAYOUT
			}
			size += cfg.Elements[cursor].Type.Size()
			cursor++
		}
		regions[rc.Name] = NewRegion(rc.Name, uintptr(unsafe.Pointer(&backing[start])), size, rc.Lock)
		regionOrder = append(regionOrder, rc.Name)
	}
	if len(cfg.Regions) > 0 && cursor != len(cfg.Elements) {
		return sf.E_SV_LAYOUT
	}

	sv.backing = backing
	sv.regions = regions
	sv.regionOrder = regionOrder
	sv.elements = elements
	sv.elementOrder = elementOrder

	if len(regionOrder) > 0 {
		if res := sv.validateLayout(); res != sf.SUCCESS {
			return res
		}
	}

	sv.initialized = true
	return sf.SUCCESS
}

// validateLayout walks every region in declared order, bumping a pointer
// through the element list and checking that each element's address is
// exactly the previous element's address plus its size, that every
// region ends exactly where its elements do, and that no element is left
// outside a region. This mirrors the original runtime's bump-pointer
// layout check; here it is a self-consistency assertion over a layout
// this package built itself, rather than a check against externally
// declared offsets.
func (sv *StateVector) validateLayout() sf.Result {
	idx := 0
	for _, regionName := range sv.regionOrder {
		region := sv.regions[regionName]
		bump := region.Addr()
		end := region.Addr() + uintptr(region.Size())
		for bump < end {
			if idx >= len(sv.elementOrder) {
				return sf.E_SV_LAYOUT
			}
			elem := sv.elements[sv.elementOrder[idx]]
			if elem.Addr() != bump {
				return sf.E_SV_LAYOUT
			}
			bump += uintptr(elem.Size())
			idx++
		}
		if bump != end {
			return sf.E_SV_LAYOUT
		}
	}
	if idx != len(sv.elementOrder) {
		return sf.E_SV_LAYOUT
	}
	return sf.SUCCESS
}

// GetRegion returns the named region. E_SV_EMPTY is returned when the
// state vector was configured with no regions at all.
func (sv *StateVector) GetRegion(name string) (*Region, sf.Result) {
	if !sv.initialized {
		return nil, sf.E_SV_UNINIT
	}
	if len(sv.regions) == 0 {
		return nil, sf.E_SV_EMPTY
	}
	r, ok := sv.regions[name]
	if !ok {
		return nil, sf.E_SV_KEY
	}
	return r, sf.SUCCESS
}

// GetIElement returns the named element's type-erased view.
func (sv *StateVector) GetIElement(name string) (IElement, sf.Result) {
	if !sv.initialized {
		return nil, sf.E_SV_UNINIT
	}
	e, ok := sv.elements[name]
	if !ok {
		return nil, sf.E_SV_KEY
	}
	return e, sf.SUCCESS
}

// GetElement returns the named element as a typed Element[T]. It fails
// with sf.E_SV_TYPE if the element was configured with a different
// scalar type.
func GetElement[T sf.Scalar](sv *StateVector, name string) (*Element[T], sf.Result) {
	ie, res := sv.GetIElement(name)
	if res != sf.SUCCESS {
		return nil, res
	}
	if ie.Type() != sf.ElementTypeOf[T]() {
		return nil, sf.E_SV_TYPE
	}
	e, ok := ie.(*Element[T])
	if !ok {
		return nil, sf.E_SV_TYPE
	}
	return e, sf.SUCCESS
}

func newElementForType(t sf.ElementType, ptr unsafe.Pointer) IElement {
	switch t {
	case sf.Int8:
		return NewElement[int8]((*int8)(ptr))
	case sf.Int16:
		return NewElement[int16]((*int16)(ptr))
	case sf.Int32:
		return NewElement[int32]((*int32)(ptr))
	case sf.Int64:
		return NewElement[int64]((*int64)(ptr))
	case sf.Uint8:
		return NewElement[uint8]((*uint8)(ptr))
	case sf.Uint16:
		return NewElement[uint16]((*uint16)(ptr))
	case sf.Uint32:
		return NewElement[uint32]((*uint32)(ptr))
	case sf.Uint64:
		return NewElement[uint64]((*uint64)(ptr))
	case sf.Float32:
		return NewElement[float32]((*float32)(ptr))
	case sf.Float64:
		return NewElement[float64]((*float64)(ptr))
	case sf.Bool:
		return NewElement[bool]((*bool)(ptr))
	default:
		panic("sf/core: unsupported element type")
	}
}
