package reflow

// Container is a hierarchical layout node. It has no visual representation
// of its own: it resolves a rectangle from its dock/anchor declaration and
// its parent's bounds, and that rectangle becomes the parent bounds for its
// own children. Visual objects read the resolved bounds to place themselves.
type Container struct {
	Name string

	// Dock flushes the container against one edge of its reference bounds.
	Dock Dock
	// Anchor places the container at a compass point of its reference
	// bounds. Wins over Dock when both are set.
	Anchor Anchor
	// Origin is the normalized pivot used by Position: {0, 0} is the
	// container's top-left corner, {0.5, 0.5} its center.
	Origin Vec2
	// FollowBackground substitutes the background's container bounds for
	// the natural parent bounds during resolution.
	FollowBackground bool

	// Width and Height are the container's declared size.
	Width, Height float64

	Parent   *Container
	children []*Container

	bounds Bounds
}

// NewLayoutContainer creates a container with the given name and size.
// Origin defaults to the center.
func NewLayoutContainer(name string, width, height float64) *Container {
	return &Container{
		Name:   name,
		Origin: Vec2{X: 0.5, Y: 0.5},
		Width:  width,
		Height: height,
	}
}

// AddChild appends child to this container's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this container (cycle).
func (c *Container) AddChild(child *Container) {
	if child == nil {
		panic("reflow: cannot add nil child")
	}
	if isAncestor(child, c) {
		panic("reflow: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = c
	c.children = append(c.children, child)
}

// RemoveChild detaches child from this container.
// Panics if child.Parent != c.
func (c *Container) RemoveChild(child *Container) {
	if child.Parent != c {
		panic("reflow: child's parent is not this container")
	}
	c.removeChildByPtr(child)
	child.Parent = nil
}

// RemoveFromParent detaches this container from its parent.
// No-op if it has no parent.
func (c *Container) RemoveFromParent() {
	if c.Parent == nil {
		return
	}
	c.Parent.RemoveChild(c)
}

// Children returns the child list. The returned slice MUST NOT be mutated
// by the caller.
func (c *Container) Children() []*Container {
	return c.children
}

// NumChildren returns the number of children.
func (c *Container) NumChildren() int {
	return len(c.children)
}

// Bounds returns the rectangle resolved by the last Layout call.
func (c *Container) Bounds() Bounds {
	return c.bounds
}

// Position returns the point a visual object with this container's Origin
// would be placed at: the resolved top-left offset by Origin times size.
func (c *Container) Position() Vec2 {
	return Vec2{
		X: c.bounds.X + c.Origin.X*c.Width,
		Y: c.bounds.Y + c.Origin.Y*c.Height,
	}
}

// Layout resolves this container and, recursively outside-in, all of its
// descendants. parent is the natural reference bounds (the viewport for a
// root container); bg, when non-nil, is substituted for any node that has
// FollowBackground set. The substitution happens here, in the caller of
// ResolvePosition, keeping the resolver itself parent-source-agnostic.
func (c *Container) Layout(parent Bounds, bg *BackgroundBounds) {
	ref := parent
	if c.FollowBackground && bg != nil {
		ref = bg.Container
	}
	center := ResolvePosition(c.Width, c.Height, ref, c.Dock, c.Anchor)
	c.bounds = Bounds{
		X:      center.X - c.Width/2,
		Y:      center.Y - c.Height/2,
		Width:  c.Width,
		Height: c.Height,
	}
	for _, child := range c.children {
		child.Layout(c.bounds, bg)
	}
}

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Container) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from c.children without clearing
// child.Parent. Uses copy+nil to avoid retaining a dangling pointer in the
// backing array.
func (c *Container) removeChildByPtr(child *Container) {
	for i, cc := range c.children {
		if cc == child {
			copy(c.children[i:], c.children[i+1:])
			c.children[len(c.children)-1] = nil
			c.children = c.children[:len(c.children)-1]
			return
		}
	}
}
