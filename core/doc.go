// Package core implements the runtime's deterministic execution model:
// typed Elements backed by a flat StateVector, Expr/Action trees
// interpreted by hierarchical Blocks, StateMachine's entry/step/exit
// cycle, mode-gated Tasks, region-based ingress/egress tasks, and the
// Executor/SpinExecutor cycle schedulers that drive it all at a
// fixed cadence. Every public operation returns an sf.Result instead of
// an error value or panic.
package core
