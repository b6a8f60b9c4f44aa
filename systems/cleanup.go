package systems

import (
	"github.com/automoto/gobble/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// MarkForRemoval schedules entry for removal at the end of the tick. Until
// then the entity stays valid so in-flight iterations and callbacks can still
// read it.
func MarkForRemoval(entry *donburi.Entry) {
	if entry == nil || !entry.Valid() {
		return
	}
	getOrCreateRemovalQueue(entry.World).Enqueue(entry.Entity())
}

func getOrCreateRemovalQueue(w donburi.World) *components.RemovalQueueData {
	entry, ok := components.RemovalQueue.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.RemovalQueue))
	}
	return components.RemovalQueue.Get(entry)
}

// UpdateCleanup removes every entity marked this tick and compacts the
// collider registry. Must run last.
func UpdateCleanup(ecs *ecs.ECS) {
	w := ecs.World
	pending := getOrCreateRemovalQueue(w).Drain()

	spaceEntry, hasSpace := components.Space.First(w)

	for _, entity := range pending {
		if !w.Valid(entity) {
			continue
		}
		entry := w.Entry(entity)
		RemoveCollidersFor(w, entity)
		if hasSpace && entry.HasComponent(components.Object) {
			if obj := components.Object.Get(entry); obj.Object != nil {
				components.Space.Get(spaceEntry).Remove(obj.Object)
			}
		}
		w.Remove(entity)
	}

	compactColliders(w)
}
