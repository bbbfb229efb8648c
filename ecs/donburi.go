// Package ecs provides ECS adapters for reflow.
package ecs

import (
	"github.com/phanxgames/reflow"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// BudgetEventType is the Donburi event type for particle-budget hints.
// Subscribe to this in your effect systems to receive per-group budgets.
var BudgetEventType = events.NewEventType[reflow.BudgetEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates a BudgetSink backed by a Donburi world. Budget
// events are published to BudgetEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) reflow.BudgetSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitBudget(event reflow.BudgetEvent) {
	BudgetEventType.Publish(s.world, event)
}
