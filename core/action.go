package core

import "github.com/sf-go/sf"

// Action is a side-effecting step executed by a Block: an assignment into
// the state vector, or a state transition request.
type Action interface {
	// Execute performs the action's effect and returns SUCCESS, or a
	// non-SUCCESS Result on failure. Actions are expected to be
	// allocation-free and non-blocking; they run on the executor's hot
	// path.
	Execute() sf.Result
}

// Assignment writes the value of Expr to Elem. It is the only way state
// vector elements change outside of an ingress task.
type Assignment[T sf.Scalar] struct {
	Elem *Element[T]
	Expr Expr[T]
}

func (a Assignment[T]) Execute() sf.Result {
	a.Elem.Write(a.Expr.Evaluate())
	return sf.SUCCESS
}

// Transition requests a state-machine transition to Dest when its owning
// Block fires. Dest of sf.NoState means no transition: Block still
// executes such an action, but does not return it as a destination and
// goes on to Next.
type Transition struct {
	Dest uint32
}

func (t Transition) Execute() sf.Result { return sf.SUCCESS }

// Destination reports the state ID this transition targets.
func (t Transition) Destination() uint32 { return t.Dest }
