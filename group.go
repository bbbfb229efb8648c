package reflow

import "log"

// Target is the minimal contract a visual object exposes for group
// transforms. The engine never inspects a target beyond these methods.
type Target interface {
	TargetID() string
	Position() (x, y float64)
	SetPosition(x, y float64)
	Scale() float64
	SetScale(s float64)
	SetVisible(v bool)
}

// GroupMap names the concrete objects each profile layer applies to.
// Declared once per scene, immutable thereafter.
type GroupMap map[string][]string

// BudgetEvent is a particle-budget hint for one group, broadcast while a
// profile's transforms are applied and before observers are notified.
// Effect consumers reinterpret the budget independently; the engine never
// writes it onto objects.
type BudgetEvent struct {
	Group  string
	Budget int
}

// BudgetSink receives BudgetEvents. See the ecs subpackage for a
// Donburi-backed implementation.
type BudgetSink interface {
	EmitBudget(event BudgetEvent)
}

// FallbackConfig controls the uniform scale applied when no profile matches
// the viewport.
type FallbackConfig struct {
	// Min and Max clamp the computed scale. Zero values mean unclamped.
	Min, Max float64
	// Exempt lists object ids fallback scaling must skip, typically
	// fixed-size text whose glyphs would distort.
	Exempt []string
}

// applyProfile applies one profile's layer transforms. Only present fields
// are written; nil fields never reset a target. A layer naming a group
// absent from groups is a warned no-op: scene configuration evolves
// independently of profile authoring, and a stale group name must not break
// the pass.
func applyProfile(p *Profile, groups GroupMap, targets map[string]Target, sink BudgetSink, setScale func(Target, float64)) {
	for name, tr := range p.Layers {
		ids, ok := groups[name]
		if !ok {
			log.Printf("reflow: profile %q references unknown group %q", p.Name, name)
			continue
		}
		if tr.MaxParticles != nil && sink != nil {
			sink.EmitBudget(BudgetEvent{Group: name, Budget: *tr.MaxParticles})
		}
		for _, id := range ids {
			t, ok := targets[id]
			if !ok {
				debugf("group %q references unregistered object %q", name, id)
				continue
			}
			applyTransform(t, tr, setScale)
		}
	}
}

// applyTransform writes the transform's present fields onto one target.
func applyTransform(t Target, tr Transform, setScale func(Target, float64)) {
	if tr.Scale != nil {
		setScale(t, *tr.Scale)
	}
	if tr.X != nil || tr.Y != nil {
		x, y := t.Position()
		if tr.X != nil {
			x = *tr.X
		}
		if tr.Y != nil {
			y = *tr.Y
		}
		t.SetPosition(x, y)
	}
	if tr.Visible != nil {
		t.SetVisible(*tr.Visible)
	}
}

// applyFallback computes a single uniform scale from the viewport and the
// design canvas size, clamps it to the fallback range, and applies it to
// every object referenced by any group, deduplicated, minus the exemption
// set. Objects outside every group are untouched. Returns the scale.
func applyFallback(m Metrics, base Size, fb FallbackConfig, groups GroupMap, targets map[string]Target, setScale func(Target, float64)) float64 {
	scale := 1.0
	if base.Width > 0 && base.Height > 0 {
		scale = m.Width / float64(base.Width)
		if alt := m.Height / float64(base.Height); alt < scale {
			scale = alt
		}
	}
	scale = clampScale(scale, fb)

	exempt := make(map[string]bool, len(fb.Exempt))
	for _, id := range fb.Exempt {
		exempt[id] = true
	}

	seen := make(map[string]bool)
	for _, ids := range groups {
		for _, id := range ids {
			if seen[id] || exempt[id] {
				continue
			}
			seen[id] = true
			if t, ok := targets[id]; ok {
				setScale(t, scale)
			}
		}
	}
	return scale
}

func clampScale(s float64, fb FallbackConfig) float64 {
	if fb.Min != 0 && s < fb.Min {
		s = fb.Min
	}
	if fb.Max != 0 && s > fb.Max {
		s = fb.Max
	}
	return s
}

func snapScale(t Target, s float64) {
	t.SetScale(s)
}
