package flourish

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint.
var ColorWhite = Color{1, 1, 1, 1}

// Effect is the transient flourish state of a node: the property values a
// host has most recently rendered. It is applied on top of the node's own
// transform and alpha.
type Effect struct {
	Opacity    float64
	TranslateX float64
	TranslateY float64
	Rotate     float64
	Scale      float64
}

// IdentityEffect is the fully flourished effect.
var IdentityEffect = Effect{Opacity: 1, Scale: 1}

// Get returns the effect's value for p.
func (e *Effect) Get(p Property) float64 {
	return *e.field(p)
}

// Set stores v as the effect's value for p.
func (e *Effect) Set(p Property, v float64) {
	*e.field(p) = v
}

func (e *Effect) field(p Property) *float64 {
	switch p {
	case PropertyOpacity:
		return &e.Opacity
	case PropertyTranslateX:
		return &e.TranslateX
	case PropertyTranslateY:
		return &e.TranslateY
	case PropertyRotate:
		return &e.Rotate
	default:
		return &e.Scale
	}
}

// nodeIDCounter is a plain counter (no atomic, flourish is single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is a view in the retained view tree. Groups show and hide node
// subtrees; evaluators animate a node's Effect through a TweenHost.
type Node struct {
	// Identity
	ID   uint32
	Name string

	// Hierarchy
	Parent   *Node
	children []*Node

	// Layout (local)
	X, Y          float64
	Width, Height float64
	ScaleX        float64
	ScaleY        float64
	Rotation      float64
	PivotX        float64
	PivotY        float64

	// Appearance
	Alpha   float64
	Color   Color
	Visible bool

	// Effect is written by hosts and folded into the world transform.
	Effect Effect

	// Computed during updateWorldTransform
	worldTransform [6]float64
	worldAlpha     float64
	transformDirty bool

	// Metadata
	UserData any

	// OnUpdate, when set, runs once per Scene.Update with the frame delta.
	OnUpdate func(dt float64)

	disposed bool
}

// NewNode creates a node with identity transform, full alpha and no effect.
func NewNode(name string) *Node {
	return &Node{
		ID:             nextNodeID(),
		Name:           name,
		ScaleX:         1,
		ScaleY:         1,
		Alpha:          1,
		Color:          ColorWhite,
		Visible:        true,
		Effect:         IdentityEffect,
		transformDirty: true,
	}
}

// NewBox creates a node of the given size and tint, drawn as a rectangle by
// the window and terminal hosts.
func NewBox(name string, w, h float64, c Color) *Node {
	n := NewNode(name)
	n.Width = w
	n.Height = h
	n.Color = c
	return n
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("flourish: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, n) {
		panic("flourish: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	markSubtreeDirty(child)
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("flourish: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
	markSubtreeDirty(child)
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// Walk calls fn for n and every descendant in depth-first order, skipping
// subtrees whose root is not visible.
func (n *Node) Walk(fn func(*Node)) {
	if !n.Visible {
		return
	}
	fn(n)
	for _, c := range n.children {
		c.Walk(fn)
	}
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed,
// and recursively disposes all descendants.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	n.ID = 0
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.Parent = nil
	n.UserData = nil
	n.OnUpdate = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}

// markSubtreeDirty sets transformDirty on node and all its descendants.
func markSubtreeDirty(node *Node) {
	node.transformDirty = true
	for _, child := range node.children {
		markSubtreeDirty(child)
	}
}

// nodePresence shows a node by attaching it under parent and hides it by
// detaching it.
type nodePresence struct {
	parent *Node
	node   *Node
}

func (p nodePresence) Show() {
	if p.node.Parent != p.parent && !p.node.disposed {
		p.parent.AddChild(p.node)
	}
}

func (p nodePresence) Hide() {
	if p.node.Parent == p.parent {
		p.parent.RemoveChild(p.node)
	}
}

func (p nodePresence) Present() bool {
	return p.node.Parent == p.parent
}

// NodePresence returns a Presence that attaches node under parent while
// shown and detaches it while hidden.
func NodePresence(parent, node *Node) Presence {
	return nodePresence{parent: parent, node: node}
}
