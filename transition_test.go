package reflow

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTransitionTweensInsteadOfSnapping(t *testing.T) {
	fx := newManagerFixture(640, 360)
	fx.m.SetTransition(0.5, ease.Linear)
	fx.m.profiles = nil // force the fallback path: scale 0.5

	fx.m.Layout()

	// Not snapped: the target still holds its starting scale.
	assertNear(t, "before update", fx.wheel.scale, 1)

	fx.m.Update(0.25)
	assertNear(t, "halfway", fx.wheel.scale, 0.75)

	fx.m.Update(0.25)
	assertNear(t, "done", fx.wheel.scale, 0.5)
	if fx.m.transitions.active() != 0 {
		t.Fatal("finished tween not dropped")
	}
}

func TestTransitionReplacedFromCurrentScale(t *testing.T) {
	wheel := newFakeTarget("wheel")
	ts := newTransitionSet(1, ease.Linear)

	ts.start(wheel, 2)
	ts.update(0.5) // halfway: scale 1.5
	assertNear(t, "halfway", wheel.scale, 1.5)

	// Retarget mid-flight: the new tween starts from the current scale.
	ts.start(wheel, 1)
	ts.update(1)
	assertNear(t, "retargeted", wheel.scale, 1)
	if ts.active() != 0 {
		t.Fatal("tween still active after completion")
	}
}

func TestTransitionNoOpForUnchangedScale(t *testing.T) {
	wheel := newFakeTarget("wheel")
	ts := newTransitionSet(1, ease.Linear)
	ts.start(wheel, 1) // already at scale 1
	if ts.active() != 0 {
		t.Fatal("tween started for an unchanged scale")
	}
}

func TestTransitionDisabledSnaps(t *testing.T) {
	fx := newManagerFixture(640, 360)
	fx.m.SetTransition(0.5, ease.Linear)
	fx.m.SetTransition(0, nil) // disable again
	fx.m.profiles = nil

	fx.m.Layout()
	assertNear(t, "snapped", fx.wheel.scale, 0.5)
}

func TestManagerUpdateWithoutTransitions(t *testing.T) {
	fx := newManagerFixture(640, 360)
	fx.m.Update(0.016) // no-op, no panic
}
