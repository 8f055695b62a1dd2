package core

import "github.com/sf-go/sf"

// Block is one node of a state's entry/step/exit logic chain. A block is
// either a branch node (Guard plus optional If/Else children) or a leaf
// node (a single Action), never both meaningfully at once: If Guard is
// set, the branch executes and the Action field is ignored, matching the
// interpreter semantics below. Next chains blocks into a straight-line
// sequence that runs after the current node, unless a transition
// short-circuits it.
type Block struct {
	Guard  Expr[bool]
	If     *Block
	Else   *Block
	Action Action
	Next   *Block
}

// Execute interprets the block chain starting at b and returns the
// destination state ID of the first Transition action reached, or
// sf.NoState if none fired. The algorithm, per node:
//  1. If Guard is set, evaluate it and execute the matching child (If on
//     true, Else on false, if present). A non-zero result from that child
//     returns immediately, short-circuiting Next.
//  2. Otherwise, if Action is set, execute it; a Transition result
//     returns immediately.
//  3. If Next is set, execute it and return its result.
//  4. Return sf.NoState.
func (b *Block) Execute() (uint32, sf.Result) {
	if b == nil {
		return sf.NoState, sf.SUCCESS
	}

	if b.Guard != nil {
		var child *Block
		if b.Guard.Evaluate() {
			child = b.If
		} else {
			child = b.Else
		}
		if child != nil {
			dest, res := child.Execute()
			if res != sf.SUCCESS {
				return sf.NoState, res
			}
			if dest != sf.NoState {
				return dest, sf.SUCCESS
			}
		}
	} else if b.Action != nil {
		if res := b.Action.Execute(); res != sf.SUCCESS {
			return sf.NoState, res
		}
		if t, ok := b.Action.(Transition); ok && t.Dest != sf.NoState {
			return t.Dest, sf.SUCCESS
		}
	}

	if b.Next != nil {
		return b.Next.Execute()
	}
	return sf.NoState, sf.SUCCESS
}

// containsTransition reports whether b or any node reachable from it
// (through If, Else, or Next) carries a Transition action.
func containsTransition(b *Block) bool {
	if b == nil {
		return false
	}
	if t, ok := b.Action.(Transition); ok && t.Dest != sf.NoState {
		return true
	}
	return containsTransition(b.If) || containsTransition(b.Else) || containsTransition(b.Next)
}

// collectTransitions returns the set of destination state IDs reachable
// through Transition actions anywhere in b's chain.
func collectTransitions(b *Block) map[uint32]struct{} {
	out := make(map[uint32]struct{})
	var walk func(*Block)
	walk = func(b *Block) {
		if b == nil {
			return
		}
		if t, ok := b.Action.(Transition); ok {
			out[t.Dest] = struct{}{}
		}
		walk(b.If)
		walk(b.Else)
		walk(b.Next)
	}
	walk(b)
	return out
}
