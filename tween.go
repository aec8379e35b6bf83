package flourish

import (
	"sort"

	"github.com/tanema/gween"
)

// pendingDirective is a directive waiting out its delay.
type pendingDirective struct {
	Directive
	wait float64
}

// track holds the directives of one property: those still delayed, and the
// tween currently moving the value.
type track struct {
	pending []pendingDirective
	tween   *gween.Tween
}

func (tr *track) clear() {
	tr.pending = tr.pending[:0]
	tr.tween = nil
}

func (tr *track) idle() bool {
	return len(tr.pending) == 0 && tr.tween == nil
}

// TweenHost renders flourish directives onto a Node's Effect with gween
// tweens. Call Update(dt) each frame; Scene does this for hosts it creates.
// If the target node is disposed, the host drops all work and stays idle.
type TweenHost struct {
	node   *Node
	tracks [len(Properties)]track
}

// NewTweenHost creates a host animating node.
func NewTweenHost(node *Node) *TweenHost {
	return &TweenHost{node: node}
}

// Node returns the node the host renders onto.
func (h *TweenHost) Node() *Node { return h.node }

// Set applies v immediately and cancels pending work for p.
func (h *TweenHost) Set(p Property, v float64) {
	h.tracks[p].clear()
	h.node.SetEffect(p, v)
}

// Animate replaces the work for p with ds. Directives without delay start
// right away; the rest start as Update consumes their delay. A directive
// that starts takes over from whatever tween was running, beginning at the
// currently rendered value.
func (h *TweenHost) Animate(p Property, ds []Directive) {
	tr := &h.tracks[p]
	tr.clear()
	for _, d := range ds {
		tr.pending = append(tr.pending, pendingDirective{Directive: d, wait: d.Delay})
	}
	sort.SliceStable(tr.pending, func(i, j int) bool {
		return tr.pending[i].wait < tr.pending[j].wait
	})
	h.advance(p, 0)
}

// Update advances every property by dt seconds and writes the values to the
// node's Effect.
func (h *TweenHost) Update(dt float64) {
	if h.node.IsDisposed() {
		for i := range h.tracks {
			h.tracks[i].clear()
		}
		return
	}
	for _, p := range Properties {
		h.advance(p, dt)
	}
}

// Idle reports whether no directive is pending or running.
func (h *TweenHost) Idle() bool {
	for i := range h.tracks {
		if !h.tracks[i].idle() {
			return false
		}
	}
	return true
}

// advance moves p forward by dt. A directive whose delay elapses inside the
// frame takes over at the moment it became due: the running tween only
// advances up to that moment, and the newcomer runs for the rest of the frame.
func (h *TweenHost) advance(p Property, dt float64) {
	tr := &h.tracks[p]
	for i := range tr.pending {
		tr.pending[i].wait -= dt
	}
	remaining := dt
	started := 0
	for _, pd := range tr.pending {
		if pd.wait > 0 {
			break
		}
		overshoot := min(-pd.wait, dt)
		h.step(p, remaining-overshoot)
		h.start(p, pd.Directive)
		remaining = overshoot
		started++
	}
	if started > 0 {
		n := copy(tr.pending, tr.pending[started:])
		tr.pending = tr.pending[:n]
	}
	h.step(p, remaining)
}

// step advances the running tween of p by dt.
func (h *TweenHost) step(p Property, dt float64) {
	tr := &h.tracks[p]
	if tr.tween == nil || dt <= 0 {
		return
	}
	val, finished := tr.tween.Update(float32(dt))
	h.node.SetEffect(p, float64(val))
	if finished {
		tr.tween = nil
	}
}

// start begins d from the currently rendered value of p.
func (h *TweenHost) start(p Property, d Directive) {
	tr := &h.tracks[p]
	in := d.Interpolation()
	if in.Duration <= 0 {
		tr.tween = nil
		h.node.SetEffect(p, d.Target)
		return
	}
	from := h.node.Effect.Get(p)
	tr.tween = gween.New(float32(from), float32(d.Target), float32(in.Duration), in.Curve.Ease())
}
