package flourish

// Presence controls whether a group's views are in the live view set.
type Presence interface {
	Show()
	Hide()
	Present() bool
}

// Group manages the flourish timeline for a subtree of views. It owns the
// State its members observe, aggregates their durations, and removes the
// subtree from the live view set once a wither has finished.
type Group struct {
	Name string

	state     State
	requested bool
	members   []*Flourish
	durations Durations

	sched    Scheduler
	presence Presence
	teardown *Timer
	gen      uint64
}

// NewGroup creates a group in the given initial direction. The subtree is
// shown immediately when flourishing and hidden otherwise. A nil presence
// is allowed for groups that only drive evaluators.
func NewGroup(isFlourishing bool, sched Scheduler, presence Presence) *Group {
	g := &Group{
		state:     State{IsFlourishing: isFlourishing},
		requested: isFlourishing,
		sched:     sched,
		presence:  presence,
	}
	if presence != nil {
		if isFlourishing {
			presence.Show()
		} else {
			presence.Hide()
		}
	}
	return g
}

// State returns the group's current timeline state.
func (g *Group) State() State { return g.state }

// Durations returns the aggregated durations of the members.
func (g *Group) Durations() Durations { return g.durations }

// Members returns the registered evaluators. The returned slice MUST NOT be
// mutated by the caller.
func (g *Group) Members() []*Flourish { return g.members }

// Present reports whether the subtree is in the live view set.
func (g *Group) Present() bool {
	return g.presence != nil && g.presence.Present()
}

// Flourishing reports the most recently requested direction, which may not
// have reached the members yet.
func (g *Group) Flourishing() bool { return g.requested }

// Add mounts f on the group's timeline and includes its durations.
// Adding the same evaluator twice is a no-op.
func (g *Group) Add(f *Flourish) {
	for _, m := range g.members {
		if m == f {
			return
		}
	}
	g.members = append(g.members, f)
	f.Mount(g.state)
	g.aggregate()
}

// Remove unmounts f and drops its durations from the aggregate.
func (g *Group) Remove(f *Flourish) {
	for i, m := range g.members {
		if m == f {
			copy(g.members[i:], g.members[i+1:])
			g.members[len(g.members)-1] = nil
			g.members = g.members[:len(g.members)-1]
			f.Unmount()
			g.aggregate()
			return
		}
	}
}

// aggregate max-reduces member durations and applies any change.
func (g *Group) aggregate() {
	var d Durations
	for _, m := range g.members {
		d = d.Max(m.Durations())
	}
	if d.Flourish != g.durations.Flourish {
		g.setFlourishDuration(d.Flourish)
	}
	g.durations.Wither = d.Wither
}

// setFlourishDuration stores a new flourish aggregate and moves the playhead
// to the matching end of the timeline, so a later wither starts from the
// true end.
func (g *Group) setFlourishDuration(d float64) {
	g.durations.Flourish = d
	if g.state.IsFlourishing {
		g.state.Playhead = d
	} else {
		g.state.Playhead = 0
	}
}

// SetFlourishing requests a direction change. Requests matching the current
// direction are ignored.
//
// The playhead moves to the start of the timeline when flourishing and to
// the end of the wither when withering. The members see the new direction on
// the next scheduler tick, after the subtree has been shown. A wither hides
// the subtree once its duration has elapsed, unless another request comes
// first.
func (g *Group) SetFlourishing(flourishing bool) {
	if flourishing == g.requested {
		return
	}
	g.requested = flourishing

	g.teardown.Stop()
	g.teardown = nil

	if flourishing {
		g.state.Playhead = 0
	} else {
		g.state.Playhead = g.durations.Wither
	}

	if globalDebug {
		debugGroup(g, flourishing)
	}

	g.gen++
	gen := g.gen
	if flourishing {
		if g.presence != nil {
			g.presence.Show()
		}
		g.sched.Defer(func() { g.flip(gen, true) })
		return
	}

	g.sched.Defer(func() { g.flip(gen, false) })
	g.teardown = g.sched.After(g.state.Playhead, func() {
		if globalDebug {
			debugTeardown(g)
		}
		if g.presence != nil {
			g.presence.Hide()
		}
	})
}

// Toggle requests the opposite of the current direction.
func (g *Group) Toggle() {
	g.SetFlourishing(!g.requested)
}

// flip commits a deferred direction change unless a newer request replaced
// it, then lets every member observe the new state.
func (g *Group) flip(gen uint64, flourishing bool) {
	if gen != g.gen {
		return
	}
	g.state.IsFlourishing = flourishing
	for _, m := range g.members {
		m.Observe(g.state)
	}
}
