// Package reflow is an adaptive scene layout engine for [Ebitengine].
//
// Reflow keeps a branded 2D scene legible across viewport sizes: it
// classifies the current viewport into a named profile by priority-ordered
// range matching, resizes the render surface, redistributes per-group
// transforms (scale, position, visibility, particle budgets), resolves
// dock/anchor placement of nested containers against the background's
// displayed bounds, and tells interested objects about the result through
// an observer protocol, with reentrancy protection against the resize
// loops a surface resize would otherwise trigger.
//
// # Quick start
//
//	profiles, _ := reflow.LoadProfiles(profileJSON)
//	groups, _ := reflow.LoadGroups(groupJSON)
//
//	bg := reflow.NewBackground(bgImage, reflow.FitContain)
//	bg.SetArea(reflow.Bounds{Width: 1280, Height: 720})
//
//	m := reflow.NewManager(reflow.WindowSurface{}, bg, reflow.Config{
//		Profiles:   profiles,
//		Groups:     groups,
//		BaseCanvas: reflow.Size{Width: 1280, Height: 720},
//		Fallback:   reflow.FallbackConfig{Min: 0.5, Max: 1.5},
//	})
//
// Register visual objects as [Target]s so profiles can reach them, attach
// [Observer]s for anything that derives geometry from the layout, and call
// [Manager.Layout] from the host's resize notification.
//
// # Containers
//
// [Container] nodes resolve a rectangle from a dock or anchor keyword and
// their parent's bounds, recursively outside-in. A container with
// FollowBackground set resolves against the background's container bounds
// instead of its natural parent, so content can track a letterboxed image.
//
// # Scope
//
// Reflow computes layout only. Rendering, input, audio, and the particle
// simulations that consume its budget hints live in the host game; they
// see the engine through [Observer], [Target], and [BudgetSink].
//
// [Ebitengine]: https://ebitengine.org
package reflow
