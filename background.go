package reflow

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// BoundsProvider exposes the reference visual's displayed bounds. The
// provider is injected into the Manager explicitly; the engine never scans
// a scene for a conventionally named background node.
type BoundsProvider interface {
	// DisplayBounds returns the current background bounds, or ok=false
	// when no reference visual is available (layout is skipped for that
	// pass, not failed).
	DisplayBounds() (BackgroundBounds, bool)
}

// Background wraps the scene's reference visual: an image fitted into an
// allocated area. It caches the computed BackgroundBounds; the cache is
// recomputed only after an explicit invalidation (texture swap, fit-mode
// change, area change), never per frame.
type Background struct {
	img                *ebiten.Image
	naturalW, naturalH float64
	mode               FitMode
	area               Bounds

	cached BackgroundBounds
	valid  bool
}

// NewBackground creates a Background reading its natural size from img.
// A nil img is allowed: DisplayBounds reports not-ok until an image is set.
func NewBackground(img *ebiten.Image, mode FitMode) *Background {
	b := &Background{mode: mode}
	b.SetImage(img)
	return b
}

// NewFixedBackground creates a Background with an explicit natural size and
// no backing image. Useful for headless layout and tests.
func NewFixedBackground(naturalW, naturalH float64, mode FitMode) *Background {
	return &Background{naturalW: naturalW, naturalH: naturalH, mode: mode}
}

// SetImage swaps the backing image and invalidates the cache.
func (b *Background) SetImage(img *ebiten.Image) {
	b.img = img
	if img != nil {
		r := img.Bounds()
		b.naturalW = float64(r.Dx())
		b.naturalH = float64(r.Dy())
	} else {
		b.naturalW, b.naturalH = 0, 0
	}
	b.Invalidate()
}

// Image returns the backing image, or nil for a fixed-size background.
func (b *Background) Image() *ebiten.Image {
	return b.img
}

// SetFitMode changes the fit mode and invalidates the cache.
func (b *Background) SetFitMode(mode FitMode) {
	b.mode = mode
	b.Invalidate()
}

// FitMode returns the current fit mode.
func (b *Background) FitMode() FitMode {
	return b.mode
}

// SetArea sets the allocated target area and invalidates the cache.
func (b *Background) SetArea(area Bounds) {
	b.area = area
	b.Invalidate()
}

// Invalidate discards the cached bounds. The next DisplayBounds call
// recomputes them. The background's owner calls this after any change the
// setters above don't cover.
func (b *Background) Invalidate() {
	b.valid = false
}

// DisplayBounds implements BoundsProvider. The embedded Bounds of the
// result is the displayed image rectangle; Container is the allocated area.
func (b *Background) DisplayBounds() (BackgroundBounds, bool) {
	if b.valid {
		return b.cached, true
	}
	if b.naturalW <= 0 || b.naturalH <= 0 {
		return BackgroundBounds{}, false
	}
	fr, err := Fit(b.mode, b.naturalW, b.naturalH, b.area.Width, b.area.Height)
	if err != nil {
		log.Printf("reflow: background fit failed: %v", err)
		return BackgroundBounds{}, false
	}
	b.cached = BackgroundBounds{
		Bounds: Bounds{
			X:      b.area.X + fr.OffsetX,
			Y:      b.area.Y + fr.OffsetY,
			Width:  fr.Width,
			Height: fr.Height,
		},
		OriginalWidth:  b.naturalW,
		OriginalHeight: b.naturalH,
		FinalWidth:     fr.Width,
		FinalHeight:    fr.Height,
		Container:      b.area,
	}
	b.valid = true
	return b.cached, true
}
