package reflow

// Bounds is an axis-aligned rectangle. The coordinate system has its origin
// at the top-left, with Y increasing downward. Derived edges are computed on
// demand so that Right == X+Width and Bottom == Y+Height always hold.
type Bounds struct {
	X, Y, Width, Height float64
}

// Left returns the minimum X edge.
func (b Bounds) Left() float64 { return b.X }

// Right returns the maximum X edge.
func (b Bounds) Right() float64 { return b.X + b.Width }

// Top returns the minimum Y edge.
func (b Bounds) Top() float64 { return b.Y }

// Bottom returns the maximum Y edge.
func (b Bounds) Bottom() float64 { return b.Y + b.Height }

// CenterX returns the horizontal center.
func (b Bounds) CenterX() float64 { return b.X + b.Width/2 }

// CenterY returns the vertical center.
func (b Bounds) CenterY() float64 { return b.Y + b.Height/2 }

// Contains reports whether the point (x, y) lies inside the bounds.
// Points on the edge are considered inside.
func (b Bounds) Contains(x, y float64) bool {
	return x >= b.X && x <= b.X+b.Width &&
		y >= b.Y && y <= b.Y+b.Height
}

// ContainsBounds reports whether other lies entirely inside b.
func (b Bounds) ContainsBounds(other Bounds) bool {
	return other.Left() >= b.Left() && other.Right() <= b.Right() &&
		other.Top() >= b.Top() && other.Bottom() <= b.Bottom()
}

// boundsEpsilon is the tolerance used when comparing bounds for change
// detection. Large enough to absorb float drift, far below a pixel.
const boundsEpsilon = 1e-6

func near(a, b float64) bool {
	d := a - b
	return d > -boundsEpsilon && d < boundsEpsilon
}

// Near reports whether b and other are equal within tolerance.
func (b Bounds) Near(other Bounds) bool {
	return near(b.X, other.X) && near(b.Y, other.Y) &&
		near(b.Width, other.Width) && near(b.Height, other.Height)
}

// BackgroundBounds describes the reference visual both as displayed and as a
// logical container. The embedded Bounds is the displayed image rectangle;
// Container is the (possibly larger) allocated area that dependent content
// uses as its coordinate basis. The two differ under FitContain when the
// image does not fill its allocated area.
type BackgroundBounds struct {
	Bounds

	// OriginalWidth and OriginalHeight are the natural image size.
	OriginalWidth, OriginalHeight float64
	// FinalWidth and FinalHeight are the size as displayed.
	FinalWidth, FinalHeight float64

	// Container is the allocated area the image was fitted into.
	Container Bounds
}

// DisplayScale returns the uniform scale from natural to displayed width,
// or 1 when the natural size is unknown.
func (b BackgroundBounds) DisplayScale() float64 {
	if b.OriginalWidth == 0 {
		return 1
	}
	return b.FinalWidth / b.OriginalWidth
}

// Near reports whether b and other are equal within tolerance.
func (b BackgroundBounds) Near(other BackgroundBounds) bool {
	return b.Bounds.Near(other.Bounds) &&
		b.Container.Near(other.Container) &&
		near(b.FinalWidth, other.FinalWidth) &&
		near(b.FinalHeight, other.FinalHeight) &&
		near(b.OriginalWidth, other.OriginalWidth) &&
		near(b.OriginalHeight, other.OriginalHeight)
}
