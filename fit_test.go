package reflow

import (
	"errors"
	"testing"
)

// --- FitContain ---

func TestFitContainLandscapeIntoWide(t *testing.T) {
	// 2560x1440 into 1200x800: scale min(1200/2560, 800/1440) = 0.46875,
	// displayed 1200x675, vertically centered.
	fr, err := Fit(FitContain, 2560, 1440, 1200, 800)
	if err != nil {
		t.Fatalf("Fit: %v", err)
	}
	assertNear(t, "scaleX", fr.ScaleX, 0.46875)
	assertNear(t, "scaleY", fr.ScaleY, 0.46875)
	assertNear(t, "width", fr.Width, 1200)
	assertNear(t, "height", fr.Height, 675)
	assertNear(t, "offsetX", fr.OffsetX, 0)
	assertNear(t, "offsetY", fr.OffsetY, (800-675)/2.0)
}

func TestFitContainPortraitIntoWide(t *testing.T) {
	fr, err := Fit(FitContain, 100, 200, 400, 400)
	if err != nil {
		t.Fatalf("Fit: %v", err)
	}
	assertNear(t, "scaleX", fr.ScaleX, 2)
	assertNear(t, "width", fr.Width, 200)
	assertNear(t, "height", fr.Height, 400)
	assertNear(t, "offsetX", fr.OffsetX, 100)
	assertNear(t, "offsetY", fr.OffsetY, 0)
}

func TestFitContainIdempotent(t *testing.T) {
	a, err := Fit(FitContain, 1337, 911, 640, 480)
	if err != nil {
		t.Fatalf("Fit: %v", err)
	}
	b, err := Fit(FitContain, 1337, 911, 640, 480)
	if err != nil {
		t.Fatalf("Fit: %v", err)
	}
	if a != b {
		t.Fatalf("identical inputs diverged: %+v vs %+v", a, b)
	}
}

// --- FitCover ---

func TestFitCoverOverflows(t *testing.T) {
	// 100x200 into 400x400: scale max(4, 2) = 4, displayed 400x800,
	// overflowing vertically with a negative centering offset.
	fr, err := Fit(FitCover, 100, 200, 400, 400)
	if err != nil {
		t.Fatalf("Fit: %v", err)
	}
	assertNear(t, "scaleX", fr.ScaleX, 4)
	assertNear(t, "width", fr.Width, 400)
	assertNear(t, "height", fr.Height, 800)
	assertNear(t, "offsetX", fr.OffsetX, 0)
	assertNear(t, "offsetY", fr.OffsetY, -200)
}

func TestFitCoverExactFit(t *testing.T) {
	fr, err := Fit(FitCover, 200, 100, 400, 200)
	if err != nil {
		t.Fatalf("Fit: %v", err)
	}
	assertNear(t, "width", fr.Width, 400)
	assertNear(t, "height", fr.Height, 200)
	assertNear(t, "offsetX", fr.OffsetX, 0)
	assertNear(t, "offsetY", fr.OffsetY, 0)
}

// --- FitStretch ---

func TestFitStretchIgnoresAspect(t *testing.T) {
	fr, err := Fit(FitStretch, 100, 200, 400, 300)
	if err != nil {
		t.Fatalf("Fit: %v", err)
	}
	assertNear(t, "scaleX", fr.ScaleX, 4)
	assertNear(t, "scaleY", fr.ScaleY, 1.5)
	assertNear(t, "width", fr.Width, 400)
	assertNear(t, "height", fr.Height, 300)
	assertNear(t, "offsetX", fr.OffsetX, 0)
	assertNear(t, "offsetY", fr.OffsetY, 0)
}

// --- Degenerate input ---

func TestFitZeroNaturalSize(t *testing.T) {
	for _, dims := range [][2]float64{{0, 100}, {100, 0}, {0, 0}, {-5, 100}} {
		_, err := Fit(FitContain, dims[0], dims[1], 400, 300)
		if !errors.Is(err, ErrInvalidGeometry) {
			t.Errorf("Fit(%gx%g) err = %v, want ErrInvalidGeometry", dims[0], dims[1], err)
		}
	}
}

func TestFitUnknownMode(t *testing.T) {
	if _, err := Fit(FitMode(99), 100, 100, 400, 300); err == nil {
		t.Fatal("Fit with unknown mode should error")
	}
}
