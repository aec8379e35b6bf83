package flourish

// State records the latest direction change of a Group's timeline.
//
// It is not updated with each frame. It only changes when the direction
// changes, and notes the position of the virtual playhead at that moment.
type State struct {
	// IsFlourishing is true when the group's views should move to their
	// flourished values.
	IsFlourishing bool

	// Playhead is the number of seconds elapsed in the timeline from withered
	// to flourished, as recorded when IsFlourishing last changed.
	Playhead float64
}

// Durations is the pair of timeline lengths a view reports to its group.
type Durations struct {
	Flourish float64
	Wither   float64
}

// Max returns the element-wise maximum of d and other. It is the reduction
// groups apply to the durations of their members.
func (d Durations) Max(other Durations) Durations {
	return Durations{
		Flourish: max(d.Flourish, other.Flourish),
		Wither:   max(d.Wither, other.Wither),
	}
}

// Env carries the delays accumulated down a view hierarchy. Views read it at
// construction; it is never shared mutably.
type Env struct {
	DelayFlourish float64 // seconds added before every flourish trigger
	DelayWither   float64 // seconds added before every wither trigger
}

// Delay returns the environment for descendants, with in and out seconds
// added to the inherited flourish and wither delays.
func (e Env) Delay(in, out float64) Env {
	return Env{DelayFlourish: e.DelayFlourish + in, DelayWither: e.DelayWither + out}
}
