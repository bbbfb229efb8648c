package reflow

import "fmt"

// Vec2 is a 2D vector used for positions, offsets, and origins throughout
// the API.
type Vec2 struct {
	X, Y float64
}

// Size is an integer pixel size, used for canvas/render-surface dimensions.
type Size struct {
	Width, Height int
}

// Metrics is a snapshot of the host viewport at the start of a layout pass.
type Metrics struct {
	// Width and Height are the viewport size in CSS/logical pixels.
	Width, Height float64
	// DPR is the device pixel ratio reported by the host.
	DPR float64
}

// Aspect returns the width/height ratio, or 0 when height is zero.
func (m Metrics) Aspect() float64 {
	if m.Height == 0 {
		return 0
	}
	return m.Width / m.Height
}

// FitMode selects how a natural image size is mapped into a target area.
type FitMode uint8

const (
	FitContain FitMode = iota // uniform scale, whole image visible, letterboxed
	FitCover                  // uniform scale, area fully covered, image may overflow
	FitStretch                // non-uniform scale, exact fill, aspect not preserved
)

// String returns the configuration keyword for the fit mode.
func (f FitMode) String() string {
	switch f {
	case FitContain:
		return "contain"
	case FitCover:
		return "cover"
	case FitStretch:
		return "stretch"
	default:
		return "unknown"
	}
}

// ParseFitMode converts a configuration keyword into a FitMode.
func ParseFitMode(s string) (FitMode, error) {
	switch s {
	case "contain":
		return FitContain, nil
	case "cover":
		return FitCover, nil
	case "stretch":
		return FitStretch, nil
	default:
		return FitContain, fmt.Errorf("reflow: unknown fit mode %q", s)
	}
}

// Dock positions a child flush against one edge (or the center) of its
// parent's bounds, moving only the corresponding axis.
type Dock uint8

const (
	DockNone   Dock = iota // no docking; child stays at the parent center
	DockTop                // flush against the top edge
	DockBottom             // flush against the bottom edge
	DockLeft               // flush against the left edge
	DockRight              // flush against the right edge
	DockCenter             // centered on both axes
)

// String returns the configuration keyword for the dock.
func (d Dock) String() string {
	switch d {
	case DockNone:
		return "none"
	case DockTop:
		return "top"
	case DockBottom:
		return "bottom"
	case DockLeft:
		return "left"
	case DockRight:
		return "right"
	case DockCenter:
		return "center"
	default:
		return "unknown"
	}
}

// ParseDock converts a configuration keyword into a Dock.
func ParseDock(s string) (Dock, error) {
	switch s {
	case "", "none":
		return DockNone, nil
	case "top":
		return DockTop, nil
	case "bottom":
		return DockBottom, nil
	case "left":
		return DockLeft, nil
	case "right":
		return DockRight, nil
	case "center":
		return DockCenter, nil
	default:
		return DockNone, fmt.Errorf("reflow: unknown dock %q", s)
	}
}

// Anchor positions a child at one of nine compass points within its parent's
// bounds, fully determining both axes. When both a Dock and an Anchor are
// set on the same node, the anchor wins.
type Anchor uint8

const (
	AnchorNone        Anchor = iota // no anchoring
	AnchorTopLeft                   // top-left corner
	AnchorTop                       // top edge, horizontally centered
	AnchorTopRight                  // top-right corner
	AnchorLeft                      // left edge, vertically centered
	AnchorCenter                    // centered on both axes
	AnchorRight                     // right edge, vertically centered
	AnchorBottomLeft                // bottom-left corner
	AnchorBottom                    // bottom edge, horizontally centered
	AnchorBottomRight               // bottom-right corner
)

// String returns the configuration keyword for the anchor.
func (a Anchor) String() string {
	switch a {
	case AnchorNone:
		return "none"
	case AnchorTopLeft:
		return "top-left"
	case AnchorTop:
		return "top"
	case AnchorTopRight:
		return "top-right"
	case AnchorLeft:
		return "left"
	case AnchorCenter:
		return "center"
	case AnchorRight:
		return "right"
	case AnchorBottomLeft:
		return "bottom-left"
	case AnchorBottom:
		return "bottom"
	case AnchorBottomRight:
		return "bottom-right"
	default:
		return "unknown"
	}
}

// ParseAnchor converts a configuration keyword into an Anchor.
func ParseAnchor(s string) (Anchor, error) {
	switch s {
	case "", "none":
		return AnchorNone, nil
	case "top-left":
		return AnchorTopLeft, nil
	case "top":
		return AnchorTop, nil
	case "top-right":
		return AnchorTopRight, nil
	case "left":
		return AnchorLeft, nil
	case "center":
		return AnchorCenter, nil
	case "right":
		return AnchorRight, nil
	case "bottom-left":
		return AnchorBottomLeft, nil
	case "bottom":
		return AnchorBottom, nil
	case "bottom-right":
		return AnchorBottomRight, nil
	default:
		return AnchorNone, fmt.Errorf("reflow: unknown anchor %q", s)
	}
}
