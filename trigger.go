package flourish

// Trigger is one timed instruction: property reaches Value, starting at Time
// seconds after the start of the owning animation, following Curve.
//
// Value is the withered value: the start value when flourishing and the end
// value when withering.
type Trigger struct {
	Property Property
	Value    float64
	Time     float64
	Curve    TimingCurve
}

// Duration returns the trigger's duration in seconds.
func (t Trigger) Duration() float64 {
	return t.Curve.Duration
}

// End returns the time the trigger finishes relative to its animation.
func (t Trigger) End() float64 {
	return t.Time + t.Curve.Duration
}

// shifted returns a copy of the trigger moved later by offset seconds.
func (t Trigger) shifted(offset float64) Trigger {
	t.Time += offset
	return t
}
