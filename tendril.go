package tendril

import (
	"context"
	"log/slog"

	"github.com/aretw0/tendril/internal/logging"
	"github.com/aretw0/tendril/internal/runtime"
	"github.com/aretw0/tendril/pkg/domain"
)

// Builder populates the operation surface for one chain instance.
// See domain.BuilderFunc for the contract.
type Builder = domain.BuilderFunc

// Handler is a real operation registered on a surface.
type Handler = domain.Handler

// Chain is the high-level entry point for the Tendril library.
// It wraps the internal runtime chain and exposes the fluent call surface.
type Chain struct {
	rt *runtime.Chain
}

// Option defines a functional option for configuring a chain.
type Option func(*settings)

type settings struct {
	logger *slog.Logger
	hooks  domain.LifecycleHooks
}

// WithLogger sets a custom structured logger for the chain.
// By default chains log nowhere.
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks (begin, end, action, trap).
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(s *settings) {
		s.hooks = hooks
	}
}

// New builds a chain with recording enabled: consumed actions are retained
// and the replay controls (Trap, Down, Jump) are available. The builder is
// invoked once with an empty surface.
func New(builder Builder, opts ...Option) *Chain {
	return construct(builder, true, opts)
}

// NewLight builds a non-recording chain: actions are released as they are
// consumed and the replay controls fail with domain.ErrNotRecording for the
// life of the chain. Use it when replay is not needed and queues are large.
func NewLight(builder Builder, opts ...Option) *Chain {
	return construct(builder, false, opts)
}

func construct(builder Builder, recording bool, opts []Option) *Chain {
	s := settings{logger: logging.NewNop()}
	for _, opt := range opts {
		opt(&s)
	}

	rtOpts := []runtime.Option{
		runtime.WithLogger(s.logger),
		runtime.WithLifecycleHooks(s.hooks),
	}
	if recording {
		rtOpts = append(rtOpts, runtime.WithRecording())
	}
	return &Chain{rt: runtime.New(builder, rtOpts...)}
}

// Call records a deferred invocation of the named operation and returns the
// chain for further fluent calls. Nothing executes until Run.
func (c *Chain) Call(name string, args ...any) *Chain {
	c.rt.Call(name, args...)
	return c
}

// Run drives the chain until its queue is exhausted, it is left suspended on
// a detached nested chain, or an action fails. The begin signal fires before
// the first action; the end signal fires on each queue exhaustion.
func (c *Chain) Run(ctx context.Context) error {
	return c.rt.Run(ctx)
}

// Controller exposes the per-chain controller surface (Next, Nest, replay
// controls). Handlers receive the same controller during execution.
func (c *Chain) Controller() domain.Controller {
	return c.rt
}

// Step returns the current cursor position (meaningful when recording).
func (c *Chain) Step() int { return c.rt.Step() }

// Len returns the number of records currently in the queue.
func (c *Chain) Len() int { return c.rt.Len() }
