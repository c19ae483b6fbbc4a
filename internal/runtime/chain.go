// Package runtime implements the Tendril call-queuing and replay engine.
//
// A Chain owns one action queue, one cursor, and one operation surface.
// Execution is single-threaded and cooperative: every advancement request is
// a deferred tick drained by a reentrancy-guarded drive loop, so a
// synchronous burst of fluent calls is always fully queued before any of the
// recorded actions run.
package runtime

import (
	"context"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/aretw0/tendril/pkg/domain"
)

// slot is one queue record: either an action or a trap boundary.
type slot struct {
	action *domain.Action
	trap   *trapRecord
}

// trapRecord tags a replay trap with the cursor position at registration.
// Traps cannot fire retroactively from before their registration step.
type trapRecord struct {
	path []string
	step int
	fn   domain.TrapFunc
}

// Chain is one independent, sequentially executed queue of deferred
// invocations plus its own operation surface. It implements domain.Controller.
type Chain struct {
	id      string
	builder domain.BuilderFunc
	surface *domain.Surface

	logger *slog.Logger
	hooks  domain.LifecycleHooks
	ctx    context.Context

	recording bool
	queue     []slot
	cursor    int // next record to execute (recording mode)
	consumed  int // records popped so far (light mode, for event numbering)

	ticks   []func()
	driving bool
	err     error

	began bool
	ended bool
	onEnd []func()
}

// Option configures a Chain.
type Option func(*Chain)

// WithLogger sets a structured logger for the chain. Nested chains inherit it.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Chain) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks. Nested chains inherit them.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(c *Chain) {
		c.hooks = hooks
	}
}

// WithRecording enables recording mode before the builder runs, so builders
// that inspect Recording observe the chain's real mode.
func WithRecording() Option {
	return func(c *Chain) {
		c.recording = true
	}
}

// New constructs a chain in light mode and invokes the builder once against
// its empty surface. Callers that want replay promote it with Record.
func New(builder domain.BuilderFunc, opts ...Option) *Chain {
	c := &Chain{
		id:      uuid.NewString(),
		builder: builder,
		surface: domain.NewSurface(),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		ctx:     context.Background(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if builder != nil {
		if replacement := builder(c, c.surface); replacement != nil {
			c.surface = replacement
		}
	}
	return c
}

// ID returns the chain instance identifier.
func (c *Chain) ID() string { return c.id }

// Surface returns the live operation surface.
func (c *Chain) Surface() *domain.Surface { return c.surface }

// Recording reports whether recording mode is active.
func (c *Chain) Recording() bool { return c.recording }

// Record promotes the chain to recording mode. From this point on, consumed
// actions are retained behind the cursor and the replay controls work.
func (c *Chain) Record() { c.recording = true }

// Step returns the cursor position. Only meaningful in recording mode; a
// light chain reports the number of records consumed so far.
func (c *Chain) Step() int {
	if c.recording {
		return c.cursor
	}
	return c.consumed
}

// Len returns the number of records currently held in the queue.
func (c *Chain) Len() int { return len(c.queue) }

// Err returns the first error the chain stopped on, if any.
func (c *Chain) Err() error { return c.err }

// Call records a deferred invocation and returns the chain for further
// fluent calls. The path is not validated here: the surface may legitimately
// gain the operation before the action executes.
func (c *Chain) Call(name string, args ...any) domain.Controller {
	c.queue = append(c.queue, slot{action: &domain.Action{Path: domain.SplitPath(name), Args: args}})
	c.ended = false // a drained chain re-arms when extended
	return c
}

// Handle registers an operation on the live surface.
func (c *Chain) Handle(name string, h domain.Handler) {
	c.surface.Handle(name, h)
}

// Next requests advancement past the next pending record. While an action is
// executing, the request is deferred until it returns.
func (c *Chain) Next() {
	c.tick(c.advance)
}

// Run drives the chain until its queue is exhausted, it suspends waiting on
// external resumption, or an action fails. It fires the begin signal before
// the first action and returns the first error encountered.
func (c *Chain) Run(ctx context.Context) error {
	if ctx != nil {
		c.ctx = ctx
	}
	c.begin()
	c.Next()
	return c.err
}

// tick schedules fn and, unless a drive loop is already active, drains the
// tick queue. This is the engine's whole scheduler: one deferred-work FIFO
// per chain, no goroutines, no parallelism.
func (c *Chain) tick(fn func()) {
	c.ticks = append(c.ticks, fn)
	if c.driving {
		return
	}
	c.driving = true
	defer func() { c.driving = false }()
	for c.err == nil && len(c.ticks) > 0 {
		if err := c.ctx.Err(); err != nil {
			c.fail(err)
			return
		}
		next := c.ticks[0]
		c.ticks[0] = nil
		c.ticks = c.ticks[1:]
		next()
	}
}

// advance executes exactly one pending action, skipping trap boundaries.
func (c *Chain) advance() {
	act, step, ok := c.take()
	if !ok {
		c.finish()
		return
	}
	if act == nil {
		// Trap record: plain advancement never fires traps.
		c.Next()
		return
	}

	handler, found := c.surface.Resolve(act.Path)
	if !found {
		c.fail(&domain.UnresolvedOpError{Path: act.Path})
		return
	}

	c.logger.Debug("executing action", "op", act.Name(), "step", step)
	if c.hooks.OnAction != nil {
		c.hooks.OnAction(c.ctx, &domain.ActionEvent{
			ChainID: c.id,
			Step:    step,
			Op:      act.Name(),
			Args:    act.Args,
		})
	}

	if err := handler(c.ctx, c, act.Args...); err != nil {
		c.fail(err)
	}
}

// take removes (light mode) or steps past (recording mode) the next record.
// The returned action is nil for trap records. ok is false on exhaustion.
func (c *Chain) take() (act *domain.Action, step int, ok bool) {
	if c.recording {
		if c.cursor >= len(c.queue) {
			return nil, c.cursor, false
		}
		s := c.queue[c.cursor]
		step = c.cursor
		c.cursor++
		return s.action, step, true
	}

	if len(c.queue) == 0 {
		return nil, c.consumed, false
	}
	s := c.queue[0]
	// Release the slot so consumed actions do not pin their arguments.
	c.queue[0] = slot{}
	c.queue = c.queue[1:]
	step = c.consumed
	c.consumed++
	return s.action, step, true
}

func (c *Chain) begin() {
	if c.began {
		return
	}
	c.began = true
	c.logger.Debug("chain begin", "recording", c.recording)
	if c.hooks.OnBegin != nil {
		c.hooks.OnBegin(c.ctx, &domain.ChainEvent{
			Type:      domain.EventChainBegin,
			ChainID:   c.id,
			Step:      c.Step(),
			Recording: c.recording,
		})
	}
}

// finish signals the end of one queue exhaustion. Extending the queue or
// rewinding the cursor re-arms it, so a chain that is refilled and re-drained
// ends again.
func (c *Chain) finish() {
	if c.ended {
		return
	}
	c.ended = true
	c.logger.Debug("chain end", "step", c.Step())
	if c.hooks.OnEnd != nil {
		c.hooks.OnEnd(c.ctx, &domain.ChainEvent{
			Type:      domain.EventChainEnd,
			ChainID:   c.id,
			Step:      c.Step(),
			Recording: c.recording,
		})
	}
	for _, fn := range c.onEnd {
		fn()
	}
}

// fail stops the chain on its first error and drops any deferred work.
func (c *Chain) fail(err error) {
	if c.err != nil {
		return
	}
	c.err = err
	c.ticks = nil
	c.logger.Error("chain stopped", "err", err, "step", c.Step())
}
