package flourish

// Scheduler defers work on a single-threaded event loop.
type Scheduler interface {
	// Defer runs fn at the next scheduling opportunity, never synchronously.
	Defer(fn func())

	// After runs fn once, seconds from now. The returned Timer can cancel it.
	After(seconds float64, fn func()) *Timer
}

// Timer is a pending one-shot callback created by Clock.After.
type Timer struct {
	deadline float64
	seq      uint64
	fn       func()
	stopped  bool
	fired    bool
}

// Stop cancels the timer. It returns false if the timer already fired or was
// already stopped. Stop on a nil Timer is a no-op.
func (t *Timer) Stop() bool {
	if t == nil || t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// Pending reports whether the timer will still fire.
func (t *Timer) Pending() bool {
	return t != nil && !t.stopped && !t.fired
}

// Clock is a frame-driven Scheduler. Time only moves when Update is called,
// which makes it suitable both for a game loop and for deterministic tests.
//
// Clock is not safe for concurrent use.
type Clock struct {
	now      float64
	seq      uint64
	deferred []func()
	timers   []*Timer
}

// NewClock creates a clock at time zero.
func NewClock() *Clock {
	return &Clock{}
}

// Now returns the seconds accumulated by Update.
func (c *Clock) Now() float64 {
	return c.now
}

// Defer queues fn for the next Update.
func (c *Clock) Defer(fn func()) {
	c.deferred = append(c.deferred, fn)
}

// After schedules fn to run once the clock has advanced by seconds.
// Non-positive durations fire on the next Update.
func (c *Clock) After(seconds float64, fn func()) *Timer {
	c.seq++
	t := &Timer{deadline: c.now + max(seconds, 0), seq: c.seq, fn: fn}
	c.timers = append(c.timers, t)
	return t
}

// Pending returns the number of queued deferred callbacks and live timers.
func (c *Clock) Pending() int {
	n := len(c.deferred)
	for _, t := range c.timers {
		if t.Pending() {
			n++
		}
	}
	return n
}

// Update advances the clock by dt seconds. Callbacks deferred before the
// call run first, in order; then every due timer fires in deadline order,
// ties broken by creation order. Work scheduled by these callbacks waits for
// the next Update unless it is a timer already due.
func (c *Clock) Update(dt float64) {
	c.now += dt

	batch := c.deferred
	c.deferred = nil
	for _, fn := range batch {
		fn()
	}

	for {
		t := c.nextDue()
		if t == nil {
			break
		}
		t.fired = true
		t.fn()
	}
	c.compact()
}

// nextDue returns the earliest pending timer whose deadline has passed.
func (c *Clock) nextDue() *Timer {
	var best *Timer
	for _, t := range c.timers {
		if !t.Pending() || t.deadline > c.now {
			continue
		}
		if best == nil || t.deadline < best.deadline ||
			(t.deadline == best.deadline && t.seq < best.seq) {
			best = t
		}
	}
	return best
}

// compact drops fired and stopped timers, reusing the backing array.
func (c *Clock) compact() {
	live := c.timers[:0]
	for _, t := range c.timers {
		if t.Pending() {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(c.timers); i++ {
		c.timers[i] = nil
	}
	c.timers = live
}
