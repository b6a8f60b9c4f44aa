package systems

import (
	"github.com/automoto/gobble/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock advances simulated time by one tick. It runs first so every
// system in a tick sees the same Now.
func UpdateClock(ecs *ecs.ECS) {
	getOrCreateClock(ecs.World).Tick++
}

func getOrCreateClock(w donburi.World) *components.ClockData {
	entry, ok := components.Clock.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.Clock))
	}
	return components.Clock.Get(entry)
}

// Now returns the current simulation tick.
func Now(w donburi.World) int {
	return getOrCreateClock(w).Tick
}
