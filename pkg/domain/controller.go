package domain

import "context"

// Handler is a real operation supplied by the builder collaborator.
// It receives the run context, the chain's controller (so it can enqueue
// further calls, extend the surface, nest, or use the replay controls), and
// the arguments recorded at call time. Returning an error stops the chain.
type Handler func(ctx context.Context, ctrl Controller, args ...any) error

// BuilderFunc populates the operation surface for one chain instance.
// It is invoked exactly once per instance (including once per nested chain)
// with an empty surface. It may register operations on the surface it is
// given, or return a replacement surface; returning nil keeps the original.
type BuilderFunc func(ctrl Controller, surface *Surface) *Surface

// NestFunc is the callback scoped to a nested chain. Fluent calls issued on
// child land on the nested chain's queue, not the parent's.
type NestFunc func(child Controller, args ...any)

// TrapFunc runs when replay reaches a trap via Down, instead of resuming
// plain execution.
type TrapFunc func()

// Controller is the per-chain, non-operation API exposed to builders,
// handlers, and nest callbacks.
//
// Call and Handle mutate the chain's queue and surface; Next drives
// execution; Nest spawns sub-chains; Record, Trap, Down and Jump form the
// replay controller and require recording mode.
type Controller interface {
	// Call records a deferred invocation of the named operation and returns
	// the controller for further fluent calls. Nothing executes at call time;
	// the path is resolved against the live surface when the action runs.
	Call(name string, args ...any) Controller

	// Handle registers (or replaces) an operation on the live surface.
	// Handlers use this to attach context-dependent follow-up operations.
	Handle(name string, h Handler)

	// Surface returns the live operation surface.
	Surface() *Surface

	// Next requests advancement past the next pending action. Requests made
	// while an action is executing are deferred until it returns, so a
	// synchronous burst of fluent calls is fully queued before any run.
	Next()

	// Nest runs fn against a brand-new chain built from the same builder,
	// schedules the nested chain after the current action returns, and
	// suspends this chain until the nested chain signals its end.
	Nest(fn NestFunc, args ...any) error

	// NestDetached is Nest without the automatic resume: the caller is
	// responsible for invoking Next on this chain once the nested work allows.
	NestDetached(fn NestFunc, args ...any) error

	// Record promotes the chain to recording mode: consumed actions are
	// retained and the replay controls become available. Recording is
	// inherited by nested chains, never by parents.
	Record()

	// Recording reports whether recording mode is active.
	Recording() bool

	// Trap registers fn to fire when Down passes the named operation from the
	// current step forward. Returns ErrNotRecording on a light chain.
	Trap(name string, fn TrapFunc) error

	// Down searches forward from the current step for the next occurrence of
	// the named operation and resumes there, unless a matching trap boundary
	// fires first. Returns ErrNotRecording on a light chain.
	Down(name string) error

	// Jump unconditionally moves the cursor to the given step and resumes.
	// Out-of-range steps behave as queue exhaustion. Returns ErrNotRecording
	// on a light chain.
	Jump(step int) error

	// Step returns the current cursor position (only meaningful when recording).
	Step() int

	// Len returns the number of records currently in the queue.
	Len() int
}
