package core

import (
	"math"

	"github.com/sf-go/sf"
)

// Number is the subset of sf.Scalar that supports arithmetic: every
// scalar type except bool.
type Number interface {
	~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Expr is a node in an expression tree that evaluates to a T. Trees are
// built by hand (or by a layer outside this module's scope) rather than
// parsed from text; this package evaluates already-typed trees, matching
// the framework's "compiler/parser are out of scope" boundary.
type Expr[T sf.Scalar] interface {
	// Evaluate computes the node's value against the current state of
	// whatever elements it references.
	Evaluate() T
}

// Const is a fixed-value leaf.
type Const[T sf.Scalar] struct{ Value T }

func (c Const[T]) Evaluate() T { return c.Value }

// ElementRef is a leaf that reads an Element's current value.
type ElementRef[T sf.Scalar] struct{ Elem *Element[T] }

func (e ElementRef[T]) Evaluate() T { return e.Elem.Read() }

// BinOpKind enumerates supported arithmetic operators.
type BinOpKind uint8

const (
	Add BinOpKind = iota
	Sub
	Mul
	Div
	Min
	Max
)

// BinOp is a two-operand arithmetic node.
type BinOp[T Number] struct {
	Kind        BinOpKind
	Left, Right Expr[T]
}

func (b BinOp[T]) Evaluate() T {
	l, r := b.Left.Evaluate(), b.Right.Evaluate()
	switch b.Kind {
	case Add:
		return l + r
	case Sub:
		return l - r
	case Mul:
		return l * r
	case Div:
		return l / r
	case Min:
		if l < r {
			return l
		}
		return r
	case Max:
		if l > r {
			return l
		}
		return r
	default:
		return l
	}
}

// UnaryOpKind enumerates supported single-operand arithmetic operators.
type UnaryOpKind uint8

const (
	Neg UnaryOpKind = iota
	Abs
)

// UnaryOp is a one-operand arithmetic node.
type UnaryOp[T Number] struct {
	Kind    UnaryOpKind
	Operand Expr[T]
}

func (u UnaryOp[T]) Evaluate() T {
	v := u.Operand.Evaluate()
	switch u.Kind {
	case Neg:
		return -v
	case Abs:
		if v < 0 {
			return -v
		}
		return v
	default:
		return v
	}
}

// CompareKind enumerates supported relational operators.
type CompareKind uint8

const (
	Eq CompareKind = iota
	Ne
	Lt
	Le
	Gt
	Ge
)

// Compare evaluates a relational operator over two same-typed numeric
// operands, producing a bool node.
type Compare[T Number] struct {
	Kind        CompareKind
	Left, Right Expr[T]
}

func (c Compare[T]) Evaluate() bool {
	l, r := c.Left.Evaluate(), c.Right.Evaluate()
	switch c.Kind {
	case Eq:
		return l == r
	case Ne:
		return l != r
	case Lt:
		return l < r
	case Le:
		return l <= r
	case Gt:
		return l > r
	case Ge:
		return l >= r
	default:
		return false
	}
}

// And, Or, and Not are the boolean connectives. They short-circuit like
// their Go operator counterparts.
type And struct{ Left, Right Expr[bool] }

func (a And) Evaluate() bool { return a.Left.Evaluate() && a.Right.Evaluate() }

type Or struct{ Left, Right Expr[bool] }

func (o Or) Evaluate() bool { return o.Left.Evaluate() || o.Right.Evaluate() }

type Not struct{ Operand Expr[bool] }

func (n Not) Evaluate() bool { return !n.Operand.Evaluate() }

// bounds returns the inclusive representable range of ElementType t as
// float64, used as the clamp target for Cast. Int64 and Uint64 lose
// precision at these extremes in float64, which is why the comparisons
// in Cast.Evaluate are inclusive (<=, >=): a value that rounds exactly to
// the boundary must still saturate rather than wrap.
func bounds(t sf.ElementType) (lo, hi float64) {
	switch t {
	case sf.Int8:
		return -128, 127
	case sf.Int16:
		return -32768, 32767
	case sf.Int32:
		return -2147483648, 2147483647
	case sf.Int64:
		return -9223372036854775808, 9223372036854775807
	case sf.Uint8:
		return 0, 255
	case sf.Uint16:
		return 0, 65535
	case sf.Uint32:
		return 0, 4294967295
	case sf.Uint64:
		return 0, 18446744073709551615
	case sf.Float32:
		return -math.MaxFloat32, math.MaxFloat32
	default: // Float64
		return -math.MaxFloat64, math.MaxFloat64
	}
}

// Cast converts a numeric Expr[From] to To, saturating at To's
// representable range and mapping NaN to 0. This mirrors the original
// runtime's safeCast: a state-vector or expression boundary never lets an
// out-of-range or NaN value silently wrap or corrupt a typed cell.
type Cast[From Number, To Number] struct {
	Operand Expr[From]
	toType  sf.ElementType
}

// NewCast builds a Cast node targeting the scalar type toType.
func NewCast[From Number, To Number](operand Expr[From], toType sf.ElementType) Cast[From, To] {
	return Cast[From, To]{Operand: operand, toType: toType}
}

func (c Cast[From, To]) Evaluate() To {
	f := float64(c.Operand.Evaluate())
	if math.IsNaN(f) {
		return To(0)
	}
	lo, hi := bounds(c.toType)
	if f <= lo {
		return To(lo)
	}
	if f >= hi {
		// hi rounds up to 2^63 / 2^64 for Int64 / Uint64, which is out
		// of range for the integer conversion; return the exact maximum.
		switch c.toType {
		case sf.Int64:
			m := int64(math.MaxInt64)
			return To(m)
		case sf.Uint64:
			m := uint64(math.MaxUint64)
			return To(m)
		}
		return To(hi)
	}
	return To(f)
}

// CastToBool converts a numeric Expr to bool: zero (or NaN) is false,
// anything else is true.
type CastToBool[From Number] struct{ Operand Expr[From] }

func (c CastToBool[From]) Evaluate() bool {
	f := float64(c.Operand.Evaluate())
	if math.IsNaN(f) {
		return false
	}
	return f != 0
}

// CastFromBool converts a bool Expr to a numeric type: true is 1, false
// is 0.
type CastFromBool[To Number] struct{ Operand Expr[bool] }

func (c CastFromBool[To]) Evaluate() To {
	if c.Operand.Evaluate() {
		return To(1)
	}
	return To(0)
}
