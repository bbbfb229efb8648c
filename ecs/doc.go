// Package ecs provides ECS adapters for reflow's particle-budget hints.
//
// The primary adapter is [NewDonburiSink], which publishes
// [reflow.BudgetEvent]s into a [Donburi] world as typed events. Effect
// systems subscribe to [BudgetEventType] to learn their per-group particle
// budget whenever a layout profile is applied.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	manager.SetBudgetSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
