package reflow

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// scaleAnim holds one in-flight scale tween for a target.
type scaleAnim struct {
	target Target
	tween  *gween.Tween
}

// transitionSet animates scale changes instead of snapping them. One tween
// per target id; restarting a target's tween replaces the old one from the
// target's current scale, so rapid profile flips stay continuous.
type transitionSet struct {
	duration float32
	easeFn   ease.TweenFunc
	anims    map[string]*scaleAnim
}

func newTransitionSet(duration float32, easeFn ease.TweenFunc) *transitionSet {
	return &transitionSet{
		duration: duration,
		easeFn:   easeFn,
		anims:    make(map[string]*scaleAnim),
	}
}

// start begins (or replaces) a tween bringing t's scale to target.
func (ts *transitionSet) start(t Target, target float64) {
	from := t.Scale()
	if near(from, target) {
		delete(ts.anims, t.TargetID())
		return
	}
	ts.anims[t.TargetID()] = &scaleAnim{
		target: t,
		tween:  gween.New(float32(from), float32(target), ts.duration, ts.easeFn),
	}
}

// update advances all tweens by dt seconds, applying the interpolated scale
// and dropping finished animations.
func (ts *transitionSet) update(dt float32) {
	for id, a := range ts.anims {
		v, done := a.tween.Update(dt)
		a.target.SetScale(float64(v))
		if done {
			delete(ts.anims, id)
		}
	}
}

// active returns the number of in-flight tweens.
func (ts *transitionSet) active() int {
	return len(ts.anims)
}
