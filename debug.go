package flourish

import (
	"fmt"
	"io"
	"os"
)

// globalDebug enables stderr tracing of directives, direction changes and
// teardowns, plus the disposed-node checks on tree operations.
var globalDebug bool

// debugOut receives debug lines. Tests swap it for a buffer.
var debugOut io.Writer = os.Stderr

// SetDebug enables or disables debug mode for the whole package.
func SetDebug(enabled bool) {
	globalDebug = enabled
}

// debugDirectives prints every directive sent for one property.
func debugDirectives(view string, p Property, ds []Directive) {
	for _, d := range ds {
		_, _ = fmt.Fprintf(debugOut,
			"[flourish] %s %s -> %.3f | duration: %.3fs | delay: %.3fs\n",
			nameOr(view, "view"), p, d.Target, d.Duration, d.Delay)
		if d.Duration < 0 || d.Curve.Duration < 0 {
			_, _ = fmt.Fprintf(debugOut,
				"[flourish] warning: negative duration on %s %s\n", nameOr(view, "view"), p)
		}
	}
}

// debugGroup prints a direction change request.
func debugGroup(g *Group, flourishing bool) {
	dir := "wither"
	if flourishing {
		dir = "flourish"
	}
	_, _ = fmt.Fprintf(debugOut,
		"[flourish] group %s: %s | playhead: %.3fs | durations: %.3fs/%.3fs | members: %d\n",
		nameOr(g.Name, "group"), dir, g.state.Playhead,
		g.durations.Flourish, g.durations.Wither, len(g.members))
}

// debugTeardown prints the removal of a group's subtree.
func debugTeardown(g *Group) {
	_, _ = fmt.Fprintf(debugOut, "[flourish] group %s: teardown\n", nameOr(g.Name, "group"))
}

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. Only called in debug mode.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("flourish debug: %s on disposed node %q", op, n.Name))
	}
}

func nameOr(name, fallback string) string {
	if name == "" {
		return fallback
	}
	return name
}
