package reflow

import "sort"

// Range is an optional inclusive [Min, Max] constraint. A nil bound is
// unconstrained on that side; a nil Range matches everything.
type Range struct {
	Min *float64
	Max *float64
}

// Contains reports whether v satisfies the range. A nil receiver always
// matches. Total: never panics, never errors.
func (r *Range) Contains(v float64) bool {
	if r == nil {
		return true
	}
	if r.Min != nil && v < *r.Min {
		return false
	}
	if r.Max != nil && v > *r.Max {
		return false
	}
	return true
}

// Condition constrains the viewport metrics a profile applies to. Every
// present range must contain the corresponding metric for the condition to
// match; absent ranges are unconstrained.
type Condition struct {
	Width  *Range
	Height *Range
	Aspect *Range
	DPR    *Range
}

// Matches reports whether all present constraints contain the metrics.
func (c Condition) Matches(m Metrics) bool {
	return c.Width.Contains(m.Width) &&
		c.Height.Contains(m.Height) &&
		c.Aspect.Contains(m.Aspect()) &&
		c.DPR.Contains(m.DPR)
}

// Transform is a partial per-group override. Nil fields leave the target
// object's current value untouched; they are never reset to a default.
type Transform struct {
	Scale   *float64
	X       *float64
	Y       *float64
	Visible *bool
	// MaxParticles is a particle-budget hint for effect consumers. It is
	// broadcast through the manager's BudgetSink, never written onto the
	// target objects themselves.
	MaxParticles *int
}

// Profile maps a viewport condition to a canvas size and per-group
// transforms. Profiles are immutable after scene load.
type Profile struct {
	Name      string
	Priority  int
	Condition Condition
	// CanvasSize, if set, is the render-surface size this profile wants.
	CanvasSize *Size
	// Layers maps group names to the transform applied to that group's
	// objects while this profile is active.
	Layers map[string]Transform
}

// SelectProfile returns the first profile, in ascending priority order,
// whose condition matches the metrics. Ties keep declaration order.
// Returns nil when no profile matches; callers fall back to uniform
// scaling. Deterministic: identical inputs select the identical profile.
func SelectProfile(profiles []*Profile, m Metrics) *Profile {
	if len(profiles) == 0 {
		return nil
	}
	ordered := make([]*Profile, len(profiles))
	copy(ordered, profiles)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Priority < ordered[j].Priority
	})
	for _, p := range ordered {
		if p.Condition.Matches(m) {
			return p
		}
	}
	return nil
}
