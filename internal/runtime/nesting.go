package runtime

import "github.com/aretw0/tendril/pkg/domain"

// Nest spawns a sub-chain scoped to fn and suspends this chain until the
// sub-chain signals its end, at which point Next is invoked automatically.
func (c *Chain) Nest(fn domain.NestFunc, args ...any) error {
	return c.nest(true, fn, args...)
}

// NestDetached spawns a sub-chain without the automatic resume: this chain
// stays suspended until something else invokes its Next (typically a handler
// on the sub-chain that captured this chain's controller).
func (c *Chain) NestDetached(fn domain.NestFunc, args ...any) error {
	return c.nest(false, fn, args...)
}

func (c *Chain) nest(autoAdvance bool, fn domain.NestFunc, args ...any) error {
	if fn == nil {
		return domain.ErrNilCallback
	}

	// A brand-new instance from the same builder: disjoint queue, fresh
	// surface. Recording is inherited downward, never upward.
	opts := []Option{WithLogger(c.logger), WithLifecycleHooks(c.hooks)}
	if c.recording {
		opts = append(opts, WithRecording())
	}
	child := New(c.builder, opts...)
	if autoAdvance {
		child.onEnd = append(child.onEnd, c.Next)
	}

	// The callback runs synchronously so that every fluent call it issues is
	// queued on the child before anything executes.
	fn(child, args...)

	// The child begins on a later tick, never in the callback's call stack.
	// Its whole lifetime plays out inside this one parent tick; the parent
	// advances again only via the end signal registered above.
	c.tick(func() {
		child.ctx = c.ctx
		child.begin()
		child.Next()
		if child.err != nil {
			c.fail(child.err)
		}
	})
	return nil
}
