package components

import (
	"github.com/automoto/gobble/config"
	"github.com/yohamta/donburi"
)

// StateData is shared by the player and enemy state machines. StateTimer is
// reset to zero on every state entry and advanced once per tick.
type StateData struct {
	CurrentState  config.StateID
	PreviousState config.StateID
	StateTimer    int
}

var State = donburi.NewComponentType[StateData]()
