package systems

import (
	"github.com/automoto/skyhop/components"
	cfg "github.com/automoto/skyhop/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateStates advances the time spent in the current state.
func UpdateStates(ecs *ecs.ECS) {
	dt := cfg.C.TickDelta()
	components.State.Each(ecs.World, func(e *donburi.Entry) {
		components.State.Get(e).StateTimer += dt
	})
}

// setState moves e to next and publishes StateChanged. It reports whether
// the state actually changed.
func setState(w donburi.World, e *donburi.Entry, next cfg.StateID) bool {
	state := components.State.Get(e)
	if state.CurrentState == next {
		return false
	}

	prev := state.CurrentState
	state.PreviousState = prev
	state.CurrentState = next
	state.StateTimer = 0

	StateChanged.Publish(w, StateChangedEvent{Entry: e, From: prev, To: next})
	return true
}
