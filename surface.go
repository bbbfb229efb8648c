package reflow

import "github.com/hajimehoshi/ebiten/v2"

// Surface abstracts the host render surface: the engine reads viewport
// metrics from it and resizes it when the active profile declares a canvas
// size. Resizing may synchronously raise another resize notification from
// the host; the Manager's reentrancy guard swallows it.
type Surface interface {
	Metrics() Metrics
	CanvasSize() Size
	SetCanvasSize(s Size)
}

// WindowSurface is the ebiten-backed Surface for a windowed game.
type WindowSurface struct{}

// Metrics reads the current window size and monitor device scale factor.
func (WindowSurface) Metrics() Metrics {
	w, h := ebiten.WindowSize()
	return Metrics{
		Width:  float64(w),
		Height: float64(h),
		DPR:    ebiten.Monitor().DeviceScaleFactor(),
	}
}

// CanvasSize returns the current window size.
func (WindowSurface) CanvasSize() Size {
	w, h := ebiten.WindowSize()
	return Size{Width: w, Height: h}
}

// SetCanvasSize resizes the window.
func (WindowSurface) SetCanvasSize(s Size) {
	ebiten.SetWindowSize(s.Width, s.Height)
}

// FixedSurface is an in-memory Surface for headless layout and tests. It
// records every SetCanvasSize call.
type FixedSurface struct {
	W, H int
	DPR  float64

	// Resizes records the sizes passed to SetCanvasSize, oldest first.
	Resizes []Size

	// OnResize, if set, is called after each SetCanvasSize. Tests use it
	// to simulate the host's synchronous resize notification.
	OnResize func(s Size)
}

// NewFixedSurface creates a FixedSurface with the given size and a DPR of 1.
func NewFixedSurface(w, h int) *FixedSurface {
	return &FixedSurface{W: w, H: h, DPR: 1}
}

// Metrics returns the surface's current size and DPR.
func (f *FixedSurface) Metrics() Metrics {
	return Metrics{Width: float64(f.W), Height: float64(f.H), DPR: f.DPR}
}

// CanvasSize returns the surface's current size.
func (f *FixedSurface) CanvasSize() Size {
	return Size{Width: f.W, Height: f.H}
}

// SetCanvasSize records and applies the new size, then fires OnResize.
func (f *FixedSurface) SetCanvasSize(s Size) {
	f.W, f.H = s.Width, s.Height
	f.Resizes = append(f.Resizes, s)
	if f.OnResize != nil {
		f.OnResize(s)
	}
}
