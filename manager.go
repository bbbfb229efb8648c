package reflow

import "github.com/tanema/gween/ease"

// Config is the static scene configuration a Manager is built from.
// Profiles and Groups are read-only after construction.
type Config struct {
	Profiles []*Profile
	Groups   GroupMap
	// BaseCanvas is the design canvas size the fallback scale is computed
	// against when no profile matches.
	BaseCanvas Size
	Fallback   FallbackConfig
}

// Manager is the top-level layout driver. On each resize it reads the
// viewport metrics, resolves the background bounds, selects the active
// profile, resizes the render surface if the profile asks for it, applies
// the group transforms (or the uniform fallback), and notifies attached
// observers. All of it runs inside a reentrancy guard, because resizing the
// surface synchronously raises another resize notification from the host.
//
// The Manager exposes two facets of the same engine: the observer protocol
// (Attach/Detach, driven by Layout) and direct group application
// (ApplyProfile/ApplyFallback) for callers that manage their own cycle.
type Manager struct {
	surface  Surface
	provider BoundsProvider

	profiles []*Profile
	groups   GroupMap
	base     Size
	fallback FallbackConfig

	targets map[string]Target
	subject Subject
	sink    BudgetSink

	transitions *transitionSet

	// applying is the reentrancy guard. Set for the duration of a Layout
	// pass and released on every exit path.
	applying bool

	active     *Profile
	lastScale  float64
	lastBounds BackgroundBounds
	notified   bool
}

// NewManager creates a Manager. provider may be nil and set later with
// SetBoundsProvider; until one is available every layout pass is skipped.
func NewManager(surface Surface, provider BoundsProvider, cfg Config) *Manager {
	return &Manager{
		surface:  surface,
		provider: provider,
		profiles: cfg.Profiles,
		groups:   cfg.Groups,
		base:     cfg.BaseCanvas,
		fallback: cfg.Fallback,
		targets:  make(map[string]Target),
	}
}

// SetBoundsProvider injects the reference-visual provider. The Manager
// never looks the background up by name; it only ever uses what it is
// given here or at construction.
func (m *Manager) SetBoundsProvider(p BoundsProvider) {
	m.provider = p
}

// SetBudgetSink sets the receiver for particle-budget hints. A nil sink
// drops them.
func (m *Manager) SetBudgetSink(s BudgetSink) {
	m.sink = s
}

// AddTarget registers a visual object for group transforms, keyed by its
// TargetID. Re-registering an id replaces the previous target.
func (m *Manager) AddTarget(t Target) {
	m.targets[t.TargetID()] = t
}

// RemoveTarget unregisters an object. No-op for unknown ids.
func (m *Manager) RemoveTarget(id string) {
	delete(m.targets, id)
}

// Attach registers an observer for layout change notifications.
func (m *Manager) Attach(o Observer) {
	m.subject.Attach(o)
}

// Detach unregisters an observer. The Manager holds no reference to it
// afterwards.
func (m *Manager) Detach(o Observer) {
	m.subject.Detach(o)
}

// ObserverCount returns the number of attached observers.
func (m *Manager) ObserverCount() int {
	return m.subject.Count()
}

// ActiveProfile returns the profile selected by the last layout pass, or
// nil when the pass fell back to uniform scaling (or no pass has run).
func (m *Manager) ActiveProfile() *Profile {
	return m.active
}

// SetTransition enables animated scale changes: instead of snapping,
// profile and fallback scales tween over duration seconds with the given
// easing. Advance the tweens from the host loop with Update. Passing
// duration <= 0 disables transitions again.
func (m *Manager) SetTransition(duration float32, easeFn ease.TweenFunc) {
	if duration <= 0 {
		m.transitions = nil
		return
	}
	m.transitions = newTransitionSet(duration, easeFn)
}

// Update advances in-flight scale transitions by dt seconds. No-op when
// transitions are disabled.
func (m *Manager) Update(dt float32) {
	if m.transitions != nil {
		m.transitions.update(dt)
	}
}

// Layout runs one layout pass. Reentrant triggers (a nested resize raised
// while a pass is applying) are ignored; the guard is released on every
// exit path, including panics, so a broken pass never blocks the next one.
func (m *Manager) Layout() {
	if m.applying {
		debugf("reentrant layout ignored")
		return
	}
	m.applying = true
	defer func() { m.applying = false }()

	metrics := m.surface.Metrics()
	if m.provider == nil {
		debugf("no bounds provider; layout skipped")
		return
	}
	bounds, ok := m.provider.DisplayBounds()
	if !ok {
		debugf("reference bounds unavailable; layout skipped")
		return
	}

	p := SelectProfile(m.profiles, metrics)
	var scale float64
	if p != nil {
		if m.active == nil || m.active.Name != p.Name {
			debugf("profile %q active (%gx%g dpr %g)", p.Name, metrics.Width, metrics.Height, metrics.DPR)
		}
		m.active = p
		if p.CanvasSize != nil && *p.CanvasSize != m.surface.CanvasSize() {
			debugf("canvas resized to %dx%d", p.CanvasSize.Width, p.CanvasSize.Height)
			// May raise a nested resize notification; swallowed by the guard.
			m.surface.SetCanvasSize(*p.CanvasSize)
		}
		applyProfile(p, m.groups, m.targets, m.sink, m.setScale)
		scale = bounds.DisplayScale()
	} else {
		m.active = nil
		scale = applyFallback(metrics, m.base, m.fallback, m.groups, m.targets, m.setScale)
		debugf("no profile matched; fallback scale %g", scale)
	}

	if m.notified && near(scale, m.lastScale) && bounds.Near(m.lastBounds) {
		debugf("layout unchanged; notify skipped")
		return
	}
	m.lastScale = scale
	m.lastBounds = bounds
	m.notified = true
	m.subject.Notify(scale, bounds)
}

// ApplyProfile applies one profile's layer transforms directly, outside a
// layout pass. Unknown groups are warned no-ops.
func (m *Manager) ApplyProfile(p *Profile) {
	applyProfile(p, m.groups, m.targets, m.sink, m.setScale)
}

// ApplyFallback applies the uniform fallback scale directly, outside a
// layout pass, and returns the scale.
func (m *Manager) ApplyFallback() float64 {
	return applyFallback(m.surface.Metrics(), m.base, m.fallback, m.groups, m.targets, m.setScale)
}

func (m *Manager) setScale(t Target, s float64) {
	if m.transitions != nil {
		m.transitions.start(t, s)
		return
	}
	t.SetScale(s)
}
