package flourish

// Directive tells a host to move one property to Target, starting Delay
// seconds from now and taking Duration seconds along Curve. A zero Duration
// sets the value as soon as the delay elapses.
type Directive struct {
	Target   float64
	Duration float64
	Delay    float64
	Curve    TimingCurve
}

// Interpolation returns the curve and duration the host should follow.
func (d Directive) Interpolation() Interpolation {
	return d.Curve.AsInterpolationFor(d.Duration)
}

// Host renders property values onto a view. It owns interpolation: once it
// receives directives, it animates from whatever it currently shows.
type Host interface {
	// Set applies a value immediately, cancelling any pending directives for
	// the property.
	Set(p Property, value float64)

	// Animate replaces every pending or running directive for the property
	// with ds. Each directive starts after its own delay; a later start
	// supersedes an earlier one.
	Animate(p Property, ds []Directive)
}

// Flourish applies a flourish animation to one view, driven by the State of
// its Group. It is the per-view transition state machine.
//
// The zero value is not usable; create one with New or NewAsymmetric.
type Flourish struct {
	Name string

	host   Host
	in     Animation
	out    Animation
	hasOut bool
	env    Env

	mounted   bool
	observed  bool
	values    map[Property]float64
	listeners []func(Property, []Directive)
}

// New creates an evaluator that plays in when flourishing and in reversed
// when withering.
func New(host Host, in Animation, env Env) *Flourish {
	return &Flourish{host: host, in: in, env: env}
}

// NewAsymmetric creates an evaluator that plays in when flourishing and out
// when withering.
func NewAsymmetric(host Host, in, out Animation, env Env) *Flourish {
	return &Flourish{host: host, in: in, out: out, hasOut: true, env: env}
}

// Animation returns the flourish animation.
func (f *Flourish) Animation() Animation { return f.in }

// WitherAnimation returns the asymmetric wither animation, if any.
func (f *Flourish) WitherAnimation() (Animation, bool) { return f.out, f.hasOut }

// Env returns the delays the evaluator was built with.
func (f *Flourish) Env() Env { return f.env }

// Durations reports the view's timeline lengths including its delays.
func (f *Flourish) Durations() Durations {
	wither := f.in
	if f.hasOut {
		wither = f.out
	}
	return Durations{
		Flourish: f.env.DelayFlourish + f.in.Duration(),
		Wither:   wither.Duration() + f.env.DelayWither,
	}
}

// OnDispatch registers fn to be called with every batch of directives the
// evaluator sends to its host.
func (f *Flourish) OnDispatch(fn func(Property, []Directive)) {
	f.listeners = append(f.listeners, fn)
}

// Value returns the last value dispatched for p, or its default.
func (f *Flourish) Value(p Property) float64 {
	if v, ok := f.values[p]; ok {
		return v
	}
	return p.DefaultValue()
}

// Mounted reports whether the evaluator is mounted.
func (f *Flourish) Mounted() bool { return f.mounted }

// Mount attaches the evaluator to a timeline in the given state. When the
// timeline is withered, every property the flourish animation touches is
// set to its withered value without animation.
func (f *Flourish) Mount(s State) {
	f.values = make(map[Property]float64, len(Properties))
	f.mounted = true
	f.observed = s.IsFlourishing
	if !s.IsFlourishing {
		f.prepare(s)
	}
}

// Unmount drops the transient property state.
func (f *Flourish) Unmount() {
	f.values = nil
	f.mounted = false
}

// Observe reacts to the group's state. A change of direction since the last
// observation triggers a flourish or wither; anything else is ignored.
func (f *Flourish) Observe(s State) {
	if !f.mounted || s.IsFlourishing == f.observed {
		return
	}
	f.observed = s.IsFlourishing
	if s.IsFlourishing {
		f.prepare(s)
		f.flourish(s)
	} else {
		f.wither(s)
	}
}

// prepare resets each property to the starting point of the flourish
// animation. Starting points always come from the flourish animation, even
// when an asymmetric wither animation exists. Nothing happens unless the
// playhead sits at the start of the timeline.
func (f *Flourish) prepare(s State) {
	if s.Playhead != 0 {
		return
	}
	triggers := f.in.Triggers()
	for _, p := range Properties {
		for _, t := range triggers {
			if t.Property == p {
				f.values[p] = t.Value
				f.host.Set(p, t.Value)
				break
			}
		}
	}
}

// flourish animates every property towards its default value.
func (f *Flourish) flourish(s State) {
	flourishTriggers := f.in.Triggers()
	var witherTriggers []Trigger
	if f.hasOut {
		witherTriggers = f.out.Triggers()
	}

	for _, p := range Properties {
		ins := filterTriggers(flourishTriggers, p)
		outs := filterTriggers(witherTriggers, p)

		if len(ins) == 0 && len(outs) > 0 {
			// Only the wither animation moves this property. Restore it over
			// the time left in the flourish, on the wither's curve.
			f.dispatch(p, []Directive{{
				Target:   p.DefaultValue(),
				Duration: max(f.in.Duration()-s.Playhead, 0),
				Curve:    outs[len(outs)-1].Curve,
			}})
			continue
		}
		if len(ins) == 0 {
			continue
		}

		ds := make([]Directive, 0, len(ins))
		for _, t := range ins {
			t := t.shifted(f.env.DelayFlourish)
			start, end := t.Time, t.End()
			ds = append(ds, Directive{
				Target:   p.DefaultValue(),
				Duration: clamp(end-s.Playhead, 0, t.Duration()),
				Delay:    max(start-s.Playhead, 0),
				Curve:    t.Curve,
			})
		}
		f.dispatch(p, ds)
	}
}

// wither animates every property to its withered value, playing the wither
// animation or, without one, the flourish animation backwards.
func (f *Flourish) wither(s State) {
	var triggers []Trigger
	if f.hasOut {
		triggers = f.out.Triggers()
	} else {
		triggers = reversed(f.in.Triggers())
	}

	for _, p := range Properties {
		ts := filterTriggers(triggers, p)
		if len(ts) == 0 {
			continue
		}
		ds := make([]Directive, 0, len(ts))
		for _, t := range ts {
			t := t.shifted(f.env.DelayWither)
			start, end := t.Time, t.End()
			ds = append(ds, Directive{
				Target:   t.Value,
				Duration: clamp(s.Playhead-start, 0, t.Duration()),
				Delay:    max(s.Playhead-end, 0),
				Curve:    t.Curve,
			})
		}
		f.dispatch(p, ds)
	}
}

func (f *Flourish) dispatch(p Property, ds []Directive) {
	f.values[p] = ds[len(ds)-1].Target
	if globalDebug {
		debugDirectives(f.Name, p, ds)
	}
	f.host.Animate(p, ds)
	for _, fn := range f.listeners {
		fn(p, ds)
	}
}

func reversed(ts []Trigger) []Trigger {
	for i, j := 0, len(ts)-1; i < j; i, j = i+1, j-1 {
		ts[i], ts[j] = ts[j], ts[i]
	}
	return ts
}

func clamp(v, lo, hi float64) float64 {
	return min(max(v, lo), hi)
}
