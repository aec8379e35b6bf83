package flourish

import (
	"math"

	"github.com/tanema/gween/ease"
)

// DefaultDuration is the duration in seconds used when a curve is built
// without one.
const DefaultDuration = 0.35

// DefaultIntensity is the control-handle intensity of Ease and Standard.
const DefaultIntensity = 0.5

// TimingCurve is the duration and interpolation of an animation: a cubic
// Bézier from (0, 0) to (1, 1) with two control handles, plus a duration in
// seconds. TimingCurve is an immutable value.
type TimingCurve struct {
	C0X, C0Y float64 // leading control handle
	C1X, C1Y float64 // trailing control handle
	Duration float64
}

// Standard is the default curve for all of flourish.
var Standard = Ease(0, DefaultIntensity)

// NewTimingCurve builds a curve from explicit control handles and duration.
func NewTimingCurve(c0x, c0y, c1x, c1y, duration float64) TimingCurve {
	return TimingCurve{C0X: c0x, C0Y: c0y, C1X: c1x, C1Y: c1y, Duration: duration}
}

// Linear returns a curve with linear interpolation. A non-positive duration
// selects DefaultDuration.
func Linear(duration float64) TimingCurve {
	return NewTimingCurve(0, 0, 1, 1, orDefault(duration))
}

// Ease returns a curve eased symmetrically at both ends. Intensity moves the
// handles towards the middle: 0 is linear, 0.5 the standard ease. A
// non-positive duration selects DefaultDuration.
func Ease(duration, intensity float64) TimingCurve {
	return NewTimingCurve(intensity, 0, 1-intensity, 1, orDefault(duration))
}

func orDefault(duration float64) float64 {
	if duration <= 0 {
		return DefaultDuration
	}
	return duration
}

// WithDuration returns a copy of the curve with a different duration.
func (c TimingCurve) WithDuration(duration float64) TimingCurve {
	c.Duration = duration
	return c
}

// IsLinear reports whether the control handles describe a straight line.
func (c TimingCurve) IsLinear() bool {
	return c.C0X == c.C0Y && c.C1X == c.C1Y
}

// Interpolation is the directive handed to a host to interpolate one value:
// which curve to follow and for how long.
type Interpolation struct {
	Curve    TimingCurve
	Duration float64
}

// AsInterpolation returns an interpolation over the curve's own duration.
func (c TimingCurve) AsInterpolation() Interpolation {
	return Interpolation{Curve: c, Duration: c.Duration}
}

// AsInterpolationFor returns an interpolation over the given duration.
func (c TimingCurve) AsInterpolationFor(duration float64) Interpolation {
	return Interpolation{Curve: c, Duration: duration}
}

// Ease returns a gween easing function following the curve. The returned
// function ignores the curve's duration; gween supplies elapsed and total
// time on each call.
func (c TimingCurve) Ease() ease.TweenFunc {
	if c.IsLinear() {
		return ease.Linear
	}
	return func(t, b, ch, d float32) float32 {
		if d <= 0 {
			return b + ch
		}
		x := float64(t / d)
		return b + ch*float32(c.Progress(x))
	}
}

// Progress maps elapsed fraction x in [0, 1] to eased progress along the
// curve. Values outside [0, 1] are clamped.
func (c TimingCurve) Progress(x float64) float64 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}
	if c.IsLinear() {
		return x
	}
	return bezier(c.solveT(x), c.C0Y, c.C1Y)
}

const (
	newtonIterations = 8
	newtonEpsilon    = 1e-7
	bisectIterations = 40
)

// solveT finds the Bézier parameter whose x coordinate is x.
func (c TimingCurve) solveT(x float64) float64 {
	t := x
	for i := 0; i < newtonIterations; i++ {
		dx := bezier(t, c.C0X, c.C1X) - x
		if math.Abs(dx) < newtonEpsilon {
			return t
		}
		slope := bezierSlope(t, c.C0X, c.C1X)
		if math.Abs(slope) < 1e-6 {
			break
		}
		t -= dx / slope
	}

	lo, hi := 0.0, 1.0
	t = x
	for i := 0; i < bisectIterations; i++ {
		v := bezier(t, c.C0X, c.C1X)
		if math.Abs(v-x) < newtonEpsilon {
			return t
		}
		if v < x {
			lo = t
		} else {
			hi = t
		}
		t = (lo + hi) / 2
	}
	return t
}

// bezier evaluates one coordinate of a cubic Bézier anchored at 0 and 1.
func bezier(t, p1, p2 float64) float64 {
	u := 1 - t
	return 3*u*u*t*p1 + 3*u*t*t*p2 + t*t*t
}

func bezierSlope(t, p1, p2 float64) float64 {
	u := 1 - t
	return 3*u*u*p1 + 6*u*t*(p2-p1) + 3*t*t*(1-p2)
}
