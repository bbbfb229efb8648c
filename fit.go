package reflow

import (
	"errors"
	"fmt"
)

// ErrInvalidGeometry reports a degenerate (zero or negative sized) natural
// image passed to Fit. Callers skip the image rather than propagate NaN
// scales into the layout.
var ErrInvalidGeometry = errors.New("reflow: invalid geometry")

// FitResult is the outcome of mapping a natural image size into a target
// area. Offsets center the displayed image within the area; under FitCover
// they are negative on the overflowing axis.
type FitResult struct {
	// ScaleX and ScaleY are the applied scale factors. Equal for the
	// uniform modes (FitContain, FitCover).
	ScaleX, ScaleY float64
	// Width and Height are the displayed size.
	Width, Height float64
	// OffsetX and OffsetY position the displayed image inside the target
	// area, relative to the area's top-left corner.
	OffsetX, OffsetY float64
}

// Fit computes the displayed size and centering offset for a natural image
// of size (iw, ih) placed into a target area of size (tw, th).
//
// Pure: identical inputs always produce identical outputs.
func Fit(mode FitMode, iw, ih, tw, th float64) (FitResult, error) {
	if iw <= 0 || ih <= 0 {
		return FitResult{}, fmt.Errorf("%w: natural size %gx%g", ErrInvalidGeometry, iw, ih)
	}

	var sx, sy float64
	switch mode {
	case FitContain:
		s := tw / iw
		if alt := th / ih; alt < s {
			s = alt
		}
		sx, sy = s, s
	case FitCover:
		s := tw / iw
		if alt := th / ih; alt > s {
			s = alt
		}
		sx, sy = s, s
	case FitStretch:
		sx = tw / iw
		sy = th / ih
	default:
		return FitResult{}, fmt.Errorf("reflow: unknown fit mode %d", mode)
	}

	w := iw * sx
	h := ih * sy
	return FitResult{
		ScaleX:  sx,
		ScaleY:  sy,
		Width:   w,
		Height:  h,
		OffsetX: (tw - w) / 2,
		OffsetY: (th - h) / 2,
	}, nil
}
