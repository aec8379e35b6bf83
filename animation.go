package flourish

// Kind distinguishes the variants of an Animation.
type Kind uint8

const (
	KindPrimitive Kind = iota // one property change, one trigger
	KindDelay                 // spacer with duration and no triggers
	KindSequenced             // children played one after another
	KindParallel              // children played together
)

func (k Kind) String() string {
	switch k {
	case KindPrimitive:
		return "primitive"
	case KindDelay:
		return "delay"
	case KindSequenced:
		return "sequenced"
	case KindParallel:
		return "parallel"
	default:
		return "unknown"
	}
}

// Animation is a purely descriptive tree of property changes that can be
// read as a timeline in either direction: withered to flourished, or
// flourished to withered.
//
// A single flat struct covers every variant; Kind selects which fields are
// meaningful. Animations are values: combinators copy their children, and
// nothing mutates an Animation after construction.
type Animation struct {
	kind Kind

	// KindPrimitive
	property Property
	value    float64

	// KindPrimitive, and KindParallel when retimed
	curve   TimingCurve
	retimed bool

	// KindDelay
	delay float64

	// KindSequenced, KindParallel
	children []Animation
}

// --- Primitives ---

// Primitive animates property from the withered value to its default.
func Primitive(property Property, withered float64, curve TimingCurve) Animation {
	return Animation{kind: KindPrimitive, property: property, value: withered, curve: curve}
}

// Opacity animates to full opacity from the withered opacity.
func Opacity(withered float64, curve TimingCurve) Animation {
	return Primitive(PropertyOpacity, withered, curve)
}

// Scale animates to a scale of 1 from the withered scale.
func Scale(withered float64, curve TimingCurve) Animation {
	return Primitive(PropertyScale, withered, curve)
}

// TranslateX animates to zero horizontal translation.
func TranslateX(withered float64, curve TimingCurve) Animation {
	return Primitive(PropertyTranslateX, withered, curve)
}

// TranslateY animates to zero vertical translation.
func TranslateY(withered float64, curve TimingCurve) Animation {
	return Primitive(PropertyTranslateY, withered, curve)
}

// Rotate animates to zero rotation from the withered angle in radians.
func Rotate(withered float64, curve TimingCurve) Animation {
	return Primitive(PropertyRotate, withered, curve)
}

// Delay introduces a pause of the given seconds, for use in Sequenced.
func Delay(seconds float64) Animation {
	return Animation{kind: KindDelay, delay: seconds}
}

// --- Combinators ---

// Sequenced plays the animations one after another as a timeline.
func Sequenced(animations ...Animation) Animation {
	return Animation{kind: KindSequenced, children: cloneAnimations(animations)}
}

// Parallel layers the animations on top of each other without touching
// their timing.
func Parallel(animations ...Animation) Animation {
	return Animation{kind: KindParallel, children: cloneAnimations(animations)}
}

// ParallelTimed layers the animations and imposes curve on every child that
// can be retimed. Children that cannot are kept unchanged.
func ParallelTimed(curve TimingCurve, animations ...Animation) Animation {
	children := make([]Animation, len(animations))
	for i, a := range animations {
		children[i], _ = a.Retimed(curve)
	}
	return Animation{kind: KindParallel, children: children, curve: curve, retimed: true}
}

func cloneAnimations(animations []Animation) []Animation {
	if len(animations) == 0 {
		return nil
	}
	out := make([]Animation, len(animations))
	copy(out, animations)
	return out
}

// --- Accessors ---

// Kind returns the variant of the animation.
func (a Animation) Kind() Kind { return a.kind }

// Property returns the animated property of a primitive animation.
func (a Animation) Property() Property { return a.property }

// Value returns the withered value of a primitive animation.
func (a Animation) Value() float64 { return a.value }

// Curve returns the timing curve of a primitive animation, or the imposed
// curve of a ParallelTimed animation. The second result is false when the
// animation has no curve of its own.
func (a Animation) Curve() (TimingCurve, bool) {
	switch a.kind {
	case KindPrimitive:
		return a.curve, true
	case KindParallel:
		return a.curve, a.retimed
	default:
		return TimingCurve{}, false
	}
}

// Children returns the children of a combinator. The returned slice MUST NOT
// be mutated by the caller.
func (a Animation) Children() []Animation { return a.children }

// --- Timeline ---

// Duration returns the total duration of the animation in seconds.
func (a Animation) Duration() float64 {
	switch a.kind {
	case KindPrimitive:
		return a.curve.Duration
	case KindDelay:
		return a.delay
	case KindSequenced:
		var total float64
		for _, c := range a.children {
			total += c.Duration()
		}
		return total
	case KindParallel:
		var longest float64
		for _, c := range a.children {
			longest = max(longest, c.Duration())
		}
		return longest
	default:
		return 0
	}
}

// Triggers flattens the animation into timed property changes. Times are
// relative to the start of a. Each call builds a fresh slice; flattening
// the same tree twice gives identical results.
func (a Animation) Triggers() []Trigger {
	return a.appendTriggers(nil, 0)
}

// appendTriggers appends a's triggers shifted by offset to dst.
func (a Animation) appendTriggers(dst []Trigger, offset float64) []Trigger {
	switch a.kind {
	case KindPrimitive:
		t := Trigger{Property: a.property, Value: a.value, Curve: a.curve}
		return append(dst, t.shifted(offset))
	case KindDelay:
		return dst
	case KindSequenced:
		for _, c := range a.children {
			dst = c.appendTriggers(dst, offset)
			offset += c.Duration()
		}
		return dst
	case KindParallel:
		for _, c := range a.children {
			dst = c.appendTriggers(dst, offset)
		}
		return dst
	default:
		return dst
	}
}

// TriggersFor returns the flattened triggers of a that animate property, in
// timeline order.
func (a Animation) TriggersFor(property Property) []Trigger {
	return filterTriggers(a.Triggers(), property)
}

func filterTriggers(triggers []Trigger, property Property) []Trigger {
	var out []Trigger
	for _, t := range triggers {
		if t.Property == property {
			out = append(out, t)
		}
	}
	return out
}

// --- Retiming ---

// Retimeable reports whether the animation's timing curve can be replaced.
// Only primitives are retimeable.
func (a Animation) Retimeable() bool {
	return a.kind == KindPrimitive
}

// Retimed returns a copy of the animation following curve, and true. When
// the animation is not retimeable it is returned unchanged with false.
func (a Animation) Retimed(curve TimingCurve) (Animation, bool) {
	if !a.Retimeable() {
		return a, false
	}
	a.curve = curve
	return a, true
}
