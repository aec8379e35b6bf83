// Package flourish is a declarative animation-timeline engine for
// retained view trees.
//
// Authors compose primitive property animations into sequences and parallel
// layers. The engine flattens each tree into timed triggers and plays them
// forwards to "flourish" a view into place, or backwards (or through a
// separate asymmetric animation) to "wither" it away.
//
// # Composing animations
//
// Primitives animate one property from a withered value to its default:
// [Opacity], [Scale], [TranslateX], [TranslateY] and [Rotate]. [Delay] is a
// spacer. [Sequenced] plays children one after another and [Parallel] layers
// them; [ParallelTimed] also imposes one [TimingCurve] on every child that
// can be retimed.
//
//	anim := flourish.Sequenced(
//		flourish.TranslateX(-40, flourish.Standard),
//		flourish.Delay(0.1),
//		flourish.ParallelTimed(flourish.Linear(1),
//			flourish.Scale(0.8, flourish.Standard),
//			flourish.Opacity(0, flourish.Standard),
//		),
//	)
//	triggers := anim.Triggers()
//
// # Groups and evaluators
//
// A [Group] owns the [State] of a subtree's timeline. Each view in the
// subtree has a [Flourish] evaluator which, when the group changes
// direction, turns the triggers into [Directive] values for its [Host].
//
//	scene := flourish.NewScene()
//	box := flourish.NewBox("hello", 120, 24, flourish.ColorWhite)
//	g := scene.NewGroup("greeting", scene.Root(), box, false)
//	scene.Attach(g, box, anim, flourish.Env{})
//	g.SetFlourishing(true)
//	for !scene.Idle() {
//		scene.Update(1.0 / 60)
//	}
//
// [Scene] wires groups to a frame-driven [Clock] and renders directives with
// [TweenHost], which tweens node effects with [gween]. The ebitenhost
// subpackage runs a scene in an [Ebitengine] window.
//
// Views can also be described in YAML or TOML; see [LoadDocument] and
// [Scene.Build].
//
// [gween]: https://github.com/tanema/gween
// [Ebitengine]: https://ebitengine.org
package flourish
