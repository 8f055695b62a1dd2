package sf

import "fmt"

// Scalar constrains the set of primitive types an Element or Expr node may
// carry. This is the full type universe of the runtime; there is no
// provision for user-defined or composite element types.
type Scalar interface {
	~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64 | ~bool
}

// ElementType is the runtime type tag for an Element or Expr node. Values
// are stable across versions since they appear in the state-vector binary
// layout's companion metadata and in compiled configuration shapes.
type ElementType uint8

const (
	Int8 ElementType = iota
	Int16
	Int32
	Int64
	Uint8
	Uint16
	Uint32
	Uint64
	Float32
	Float64
	Bool
)

func (t ElementType) String() string {
	switch t {
	case Int8:
		return "INT8"
	case Int16:
		return "INT16"
	case Int32:
		return "INT32"
	case Int64:
		return "INT64"
	case Uint8:
		return "UINT8"
	case Uint16:
		return "UINT16"
	case Uint32:
		return "UINT32"
	case Uint64:
		return "UINT64"
	case Float32:
		return "FLOAT32"
	case Float64:
		return "FLOAT64"
	case Bool:
		return "BOOL"
	default:
		return fmt.Sprintf("ElementType(%d)", uint8(t))
	}
}

// Size returns the size in bytes of the scalar type the tag represents.
func (t ElementType) Size() uint32 {
	switch t {
	case Int8, Uint8, Bool:
		return 1
	case Int16, Uint16:
		return 2
	case Int32, Uint32, Float32:
		return 4
	case Int64, Uint64, Float64:
		return 8
	default:
		return 0
	}
}

// ElementTypeOf returns the ElementType tag for a Go Scalar type parameter.
func ElementTypeOf[T Scalar]() ElementType {
	var z T
	switch any(z).(type) {
	case int8:
		return Int8
	case int16:
		return Int16
	case int32:
		return Int32
	case int64:
		return Int64
	case uint8:
		return Uint8
	case uint16:
		return Uint16
	case uint32:
		return Uint32
	case uint64:
		return Uint64
	case float32:
		return Float32
	case float64:
		return Float64
	case bool:
		return Bool
	default:
		panic(fmt.Sprintf("sf: unsupported scalar type %T", z))
	}
}

// TaskMode is the value of a task's mode element.
type TaskMode uint8

const (
	// ModeDisable means the task's step is a no-op.
	ModeDisable TaskMode = 0
	// ModeSafe means the task runs its reduced, fail-safe step logic.
	ModeSafe TaskMode = 1
	// ModeEnable means the task runs its normal step logic.
	ModeEnable TaskMode = 2
)

func (m TaskMode) String() string {
	switch m {
	case ModeDisable:
		return "Disable"
	case ModeSafe:
		return "Safe"
	case ModeEnable:
		return "Enable"
	default:
		return fmt.Sprintf("TaskMode(%d)", uint8(m))
	}
}

// NoTime is the reserved clock value meaning "no time available yet".
const NoTime uint64 = 1<<64 - 1

// NoState is the reserved state ID meaning "no transition". It is never a
// valid StateConfig.ID.
const NoState uint32 = 0
