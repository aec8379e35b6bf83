package flourish

import "testing"

// --- Constructor defaults ---

func TestNewNodeDefaults(t *testing.T) {
	n := NewNode("test")
	if n.ID == 0 {
		t.Error("ID should be non-zero")
	}
	if n.Name != "test" {
		t.Errorf("Name = %q, want %q", n.Name, "test")
	}
	if n.ScaleX != 1 || n.ScaleY != 1 {
		t.Errorf("Scale = (%v, %v), want (1, 1)", n.ScaleX, n.ScaleY)
	}
	if n.Alpha != 1 {
		t.Errorf("Alpha = %v, want 1", n.Alpha)
	}
	if n.Color != ColorWhite {
		t.Errorf("Color = %v, want white", n.Color)
	}
	if n.Effect != IdentityEffect {
		t.Errorf("Effect = %+v, want identity", n.Effect)
	}
	if !n.Visible || !n.transformDirty {
		t.Error("new node should be visible and dirty")
	}
}

func TestNewBox(t *testing.T) {
	c := Color{0.2, 0.4, 0.6, 1}
	n := NewBox("box", 64, 32, c)
	if n.Width != 64 || n.Height != 32 || n.Color != c {
		t.Errorf("NewBox = %v x %v %v", n.Width, n.Height, n.Color)
	}
}

func TestUniqueIDs(t *testing.T) {
	a := NewNode("a")
	b := NewNode("b")
	if a.ID == b.ID {
		t.Errorf("IDs should be unique: %d == %d", a.ID, b.ID)
	}
}

// --- Effect ---

func TestEffectGetSet(t *testing.T) {
	e := IdentityEffect
	for i, p := range Properties {
		if got := e.Get(p); got != p.DefaultValue() {
			t.Errorf("identity %s = %v, want %v", p, got, p.DefaultValue())
		}
		e.Set(p, float64(i+10))
	}
	want := Effect{Opacity: 10, TranslateX: 11, TranslateY: 12, Rotate: 13, Scale: 14}
	if e != want {
		t.Errorf("Effect = %+v, want %+v", e, want)
	}
}

// --- Tree manipulation ---

func TestAddChildBasic(t *testing.T) {
	parent := NewNode("parent")
	child := NewNode("child")
	parent.AddChild(child)
	if child.Parent != parent {
		t.Error("child.Parent should be parent")
	}
	if parent.NumChildren() != 1 || parent.Children()[0] != child {
		t.Error("child not in parent's children")
	}
}

func TestAddChildReparent(t *testing.T) {
	a := NewNode("a")
	b := NewNode("b")
	child := NewNode("child")
	a.AddChild(child)
	b.AddChild(child)
	if a.NumChildren() != 0 {
		t.Errorf("old parent kept child: %d children", a.NumChildren())
	}
	if child.Parent != b {
		t.Error("child.Parent should be b")
	}
}

func TestAddChildCyclePanic(t *testing.T) {
	a := NewNode("a")
	b := NewNode("b")
	a.AddChild(b)
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for cycle")
		}
	}()
	b.AddChild(a)
}

func TestAddChildNilPanic(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for nil child")
		}
	}()
	NewNode("a").AddChild(nil)
}

func TestRemoveChildWrongParentPanic(t *testing.T) {
	a := NewNode("a")
	child := NewNode("child")
	NewNode("b").AddChild(child)
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for wrong parent")
		}
	}()
	a.RemoveChild(child)
}

func TestRemoveFromParent(t *testing.T) {
	parent := NewNode("parent")
	child := NewNode("child")
	parent.AddChild(child)
	child.RemoveFromParent()
	if child.Parent != nil || parent.NumChildren() != 0 {
		t.Error("child not detached")
	}
	child.RemoveFromParent() // no-op
}

func TestWalkSkipsInvisibleSubtrees(t *testing.T) {
	root := NewNode("root")
	a := NewNode("a")
	b := NewNode("b")
	c := NewNode("c")
	root.AddChild(a)
	root.AddChild(b)
	b.AddChild(c)
	b.Visible = false

	var names []string
	root.Walk(func(n *Node) { names = append(names, n.Name) })
	if len(names) != 2 || names[0] != "root" || names[1] != "a" {
		t.Errorf("Walk visited %v, want [root a]", names)
	}
}

// --- Disposal ---

func TestDispose(t *testing.T) {
	parent := NewNode("parent")
	child := NewNode("child")
	grandchild := NewNode("grandchild")
	parent.AddChild(child)
	child.AddChild(grandchild)

	child.Dispose()
	if !child.IsDisposed() || !grandchild.IsDisposed() {
		t.Error("subtree should be disposed")
	}
	if parent.NumChildren() != 0 {
		t.Error("disposed child still attached")
	}
	if child.ID != 0 {
		t.Error("disposed node keeps its ID")
	}
	child.Dispose() // idempotent
}

// --- Presence ---

func TestNodePresence(t *testing.T) {
	parent := NewNode("parent")
	node := NewNode("node")
	p := NodePresence(parent, node)
	if p.Present() {
		t.Fatal("detached node reported present")
	}

	p.Show()
	p.Show()
	if !p.Present() || parent.NumChildren() != 1 {
		t.Errorf("Show: present=%v children=%d", p.Present(), parent.NumChildren())
	}

	p.Hide()
	if p.Present() || node.Parent != nil {
		t.Error("Hide did not detach")
	}
	p.Hide()
}

func TestNodePresenceIgnoresDisposedNode(t *testing.T) {
	parent := NewNode("parent")
	node := NewNode("node")
	node.Dispose()
	NodePresence(parent, node).Show()
	if parent.NumChildren() != 0 {
		t.Error("disposed node attached")
	}
}

func TestDirtyPropagationOnAddChild(t *testing.T) {
	parent := NewNode("parent")
	child := NewNode("child")
	grandchild := NewNode("grandchild")
	child.AddChild(grandchild)
	child.transformDirty = false
	grandchild.transformDirty = false

	parent.AddChild(child)
	if !child.transformDirty || !grandchild.transformDirty {
		t.Error("subtree should be dirty after AddChild")
	}
}
