package reflow

// ResolvePosition computes the center point of a child of size
// (childW, childH) placed inside parent according to dock and anchor.
//
// The child starts at the parent's center. A dock moves only its own axis,
// flushing the child against the named edge (offset inward by half the
// child's size); the perpendicular axis stays centered. An anchor fully
// determines both axes. Dock and anchor are declared independently in scene
// configuration; when both are set the anchor wins. That precedence is part
// of the contract, not an accident.
//
// Pure and parent-source-agnostic: callers substitute the background bounds
// for parent when the node follows the background.
func ResolvePosition(childW, childH float64, parent Bounds, dock Dock, anchor Anchor) Vec2 {
	pos := Vec2{X: parent.CenterX(), Y: parent.CenterY()}

	switch dock {
	case DockTop:
		pos.Y = parent.Top() + childH/2
	case DockBottom:
		pos.Y = parent.Bottom() - childH/2
	case DockLeft:
		pos.X = parent.Left() + childW/2
	case DockRight:
		pos.X = parent.Right() - childW/2
	case DockCenter:
		// Already centered on both axes.
	}

	if anchor == AnchorNone {
		return pos
	}

	left := parent.Left() + childW/2
	right := parent.Right() - childW/2
	top := parent.Top() + childH/2
	bottom := parent.Bottom() - childH/2

	switch anchor {
	case AnchorTopLeft:
		pos.X, pos.Y = left, top
	case AnchorTop:
		pos.X, pos.Y = parent.CenterX(), top
	case AnchorTopRight:
		pos.X, pos.Y = right, top
	case AnchorLeft:
		pos.X, pos.Y = left, parent.CenterY()
	case AnchorCenter:
		pos.X, pos.Y = parent.CenterX(), parent.CenterY()
	case AnchorRight:
		pos.X, pos.Y = right, parent.CenterY()
	case AnchorBottomLeft:
		pos.X, pos.Y = left, bottom
	case AnchorBottom:
		pos.X, pos.Y = parent.CenterX(), bottom
	case AnchorBottomRight:
		pos.X, pos.Y = right, bottom
	}
	return pos
}
