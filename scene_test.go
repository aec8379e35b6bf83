package flourish

import "testing"

func TestNewScene(t *testing.T) {
	s := NewScene()
	if s.Root() == nil || s.Root().Name != "root" {
		t.Fatal("scene should have a root node")
	}
	if s.Clock() == nil || s.Clock().Now() != 0 {
		t.Error("scene clock should start at zero")
	}
	if !s.Idle() {
		t.Error("new scene should be idle")
	}
}

func TestSceneUpdateFunc(t *testing.T) {
	s := NewScene()
	if s.UpdateFunc() != nil {
		t.Error("UpdateFunc should start nil")
	}
	called := false
	s.SetUpdateFunc(func() error { called = true; return nil })
	_ = s.UpdateFunc()()
	if !called {
		t.Error("registered update func not returned")
	}
}

// fadeScene builds a withered group with one half-second fading box.
func fadeScene(t *testing.T) (*Scene, *Group, *Node, *Node) {
	t.Helper()
	s := NewScene()
	container := NewNode("container")
	g := s.NewGroup("fade", s.Root(), container, false)
	box := NewBox("box", 10, 10, ColorWhite)
	container.AddChild(box)
	f := s.Attach(g, box, Opacity(0, Linear(0.5)), Env{})
	if f.Name != "box" {
		t.Errorf("evaluator name = %q, want box", f.Name)
	}
	return s, g, container, box
}

func TestSceneFlourishWitherRoundTrip(t *testing.T) {
	s, g, container, box := fadeScene(t)
	if box.Effect.Opacity != 0 {
		t.Fatalf("box not prepared: opacity %v", box.Effect.Opacity)
	}
	if container.Parent != nil || s.Find("box") != nil {
		t.Fatal("withered group attached")
	}

	g.SetFlourishing(true)
	if container.Parent != s.Root() {
		t.Fatal("flourish did not attach the container")
	}
	s.Update(0.25)
	assertNear(t, "opacity", box.Effect.Opacity, 0.5)
	assertNear(t, "world alpha", box.WorldAlpha(), 0.5)
	if s.Find("box") != box {
		t.Error("Find(box) after attach")
	}
	s.Update(0.25)
	assertNear(t, "opacity", box.Effect.Opacity, 1)
	if !s.Idle() {
		t.Error("scene busy after flourish")
	}

	g.SetFlourishing(false)
	s.Update(0.25)
	assertNear(t, "opacity", box.Effect.Opacity, 0.5)
	if container.Parent == nil {
		t.Fatal("detached before the wither finished")
	}
	s.Update(0.25)
	assertNear(t, "opacity", box.Effect.Opacity, 0)
	if container.Parent != nil {
		t.Error("container still attached after the wither")
	}
	if !s.Idle() {
		t.Error("scene busy after wither")
	}
}

func TestSceneAsymmetricAttach(t *testing.T) {
	s := NewScene()
	container := NewNode("container")
	g := s.NewGroup("g", s.Root(), container, true)
	box := NewBox("box", 10, 10, ColorWhite)
	container.AddChild(box)
	s.AttachAsymmetric(g, box, Opacity(0, Linear(0.5)), Scale(0, Linear(0.2)), Env{})

	g.SetFlourishing(false)
	s.Update(0.1)
	assertNear(t, "scale", box.Effect.Scale, 0.5)
	assertNear(t, "opacity", box.Effect.Opacity, 1)
	s.Update(0.1)
	assertNear(t, "scale", box.Effect.Scale, 0)
}

func TestSceneDropsHostsOfDisposedNodes(t *testing.T) {
	s, g, _, box := fadeScene(t)
	g.SetFlourishing(true)
	s.Update(0.1)
	box.Dispose()
	s.Update(0.1)
	if len(s.hosts) != 0 {
		t.Errorf("hosts = %d, want 0", len(s.hosts))
	}
}

func TestSceneRunsOnUpdateForAttachedNodes(t *testing.T) {
	s, g, _, box := fadeScene(t)
	var total float64
	box.OnUpdate = func(dt float64) { total += dt }

	s.Update(0.1)
	if total != 0 {
		t.Error("OnUpdate ran for a detached node")
	}
	g.SetFlourishing(true)
	s.Update(0.1)
	assertNear(t, "total", total, 0.1)
}
