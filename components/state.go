package components

import (
	"github.com/automoto/skyhop/config"
	"github.com/yohamta/donburi"
)

type StateData struct {
	CurrentState  config.StateID
	PreviousState config.StateID
	// StateTimer counts seconds spent in CurrentState.
	StateTimer float64
}

var State = donburi.NewComponentType[StateData]()
