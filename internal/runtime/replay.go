package runtime

import "github.com/aretw0/tendril/pkg/domain"

// Replay controls. All of these require recording mode: a light chain has
// already released its consumed actions, so there is nothing to go back to.

// Trap interleaves a trap boundary into the queue, tagged with the cursor
// position at registration. Plain advancement skips it; only Down can make
// it fire, and only for searches launched at or after the registration step.
func (c *Chain) Trap(name string, fn domain.TrapFunc) error {
	if !c.recording {
		return domain.ErrNotRecording
	}
	if fn == nil {
		return domain.ErrNilCallback
	}
	c.queue = append(c.queue, slot{trap: &trapRecord{
		path: domain.SplitPath(name),
		step: c.cursor,
		fn:   fn,
	}})
	c.ended = false
	return nil
}

// Down searches forward from the cursor for the next action with the given
// name. A matching trap immediately preceding the located action, registered
// at or before the current position, fires instead: the cursor rewinds to
// the trap's registration step and its callback runs. A plain match moves
// the cursor onto the action and resumes via Next. No match drains the
// chain: the cursor advances to the end and the next advancement ends it.
func (c *Chain) Down(name string) error {
	if !c.recording {
		return domain.ErrNotRecording
	}
	want := domain.SplitPath(name)
	origin := c.cursor

	found := -1
	for i := c.cursor; i < len(c.queue); i++ {
		if act := c.queue[i].action; act != nil && domain.EqualPath(act.Path, want) {
			found = i
			break
		}
	}
	if found < 0 {
		c.cursor = len(c.queue)
		c.Next()
		return nil
	}

	if found > 0 {
		if tr := c.queue[found-1].trap; tr != nil && domain.EqualPath(tr.path, want) && tr.step <= origin {
			c.cursor = tr.step
			c.ended = false
			c.logger.Debug("trap fired", "op", name, "registered_at", tr.step, "from", origin)
			if c.hooks.OnTrap != nil {
				c.hooks.OnTrap(c.ctx, &domain.TrapEvent{
					ChainID:      c.id,
					Op:           name,
					RegisteredAt: tr.step,
					FiredAt:      origin,
				})
			}
			tr.fn()
			return nil
		}
	}

	c.cursor = found
	c.ended = false
	c.Next()
	return nil
}

// Jump unconditionally repositions the cursor and resumes via Next. There is
// no bounds validation beyond what advancement enforces: a step past the end
// behaves as queue exhaustion. Negative steps clamp to the start.
func (c *Chain) Jump(step int) error {
	if !c.recording {
		return domain.ErrNotRecording
	}
	if step < 0 {
		step = 0
	}
	c.cursor = step
	if step < len(c.queue) {
		c.ended = false
	}
	c.Next()
	return nil
}
