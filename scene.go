package flourish

// Scene is the top-level object that owns the view tree, the clock that
// schedules group work, and the tween hosts rendering flourish effects.
type Scene struct {
	root  *Node
	clock *Clock

	hosts  []*TweenHost
	groups []*Group

	// ClearColor is the background used by windowed and terminal hosts.
	ClearColor Color

	updateFunc func() error
}

// NewScene creates a new scene with a pre-created root node.
func NewScene() *Scene {
	return &Scene{
		root:  NewNode("root"),
		clock: NewClock(),
	}
}

// Root returns the scene's root node.
func (s *Scene) Root() *Node {
	return s.root
}

// Clock returns the scheduler the scene's groups use.
func (s *Scene) Clock() *Clock {
	return s.clock
}

// Groups returns the groups created through the scene. The returned slice
// MUST NOT be mutated.
func (s *Scene) Groups() []*Group {
	return s.groups
}

// SetUpdateFunc registers a callback run at the start of every frame by the
// window host, before Update.
func (s *Scene) SetUpdateFunc(fn func() error) {
	s.updateFunc = fn
}

// UpdateFunc returns the callback registered with SetUpdateFunc, or nil.
func (s *Scene) UpdateFunc() func() error {
	return s.updateFunc
}

// NewGroup creates a group controlling node, which is attached under parent
// while the group is present.
func (s *Scene) NewGroup(name string, parent, node *Node, flourishing bool) *Group {
	g := NewGroup(flourishing, s.clock, NodePresence(parent, node))
	g.Name = name
	s.groups = append(s.groups, g)
	return g
}

// Attach creates an evaluator playing in on node, registers it with g, and
// returns it. The node is animated by a TweenHost the scene updates.
func (s *Scene) Attach(g *Group, node *Node, in Animation, env Env) *Flourish {
	f := New(s.newHost(node), in, env)
	f.Name = node.Name
	g.Add(f)
	return f
}

// AttachAsymmetric is like Attach but plays out when withering.
func (s *Scene) AttachAsymmetric(g *Group, node *Node, in, out Animation, env Env) *Flourish {
	f := NewAsymmetric(s.newHost(node), in, out, env)
	f.Name = node.Name
	g.Add(f)
	return f
}

func (s *Scene) newHost(node *Node) *TweenHost {
	h := NewTweenHost(node)
	s.hosts = append(s.hosts, h)
	return h
}

// Update advances the scene by dt seconds: deferred group work and timers
// first, then tweens, node callbacks, and finally world transforms.
func (s *Scene) Update(dt float64) {
	s.clock.Update(dt)

	live := s.hosts[:0]
	for _, h := range s.hosts {
		if h.node.IsDisposed() {
			continue
		}
		h.Update(dt)
		live = append(live, h)
	}
	for i := len(live); i < len(s.hosts); i++ {
		s.hosts[i] = nil
	}
	s.hosts = live

	s.root.Walk(func(n *Node) {
		if n.OnUpdate != nil {
			n.OnUpdate(dt)
		}
	})
	updateWorldTransform(s.root, identityTransform, 1.0, false)
}

// Idle reports whether the scene has no scheduled group work and no
// running tweens.
func (s *Scene) Idle() bool {
	if s.clock.Pending() > 0 {
		return false
	}
	for _, h := range s.hosts {
		if !h.Idle() {
			return false
		}
	}
	return true
}

// Find returns the first node named name in the tree under the root, or nil.
// Detached nodes are not searched.
func (s *Scene) Find(name string) *Node {
	var found *Node
	s.root.Walk(func(n *Node) {
		if found == nil && n.Name == name {
			found = n
		}
	})
	return found
}
