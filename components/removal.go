package components

import "github.com/yohamta/donburi"

// RemovalQueueData holds entities to remove at the end of the tick.
type RemovalQueueData struct {
	Pending []donburi.Entity
	queued  map[donburi.Entity]bool
}

// Enqueue adds e once; repeated calls are ignored.
func (q *RemovalQueueData) Enqueue(e donburi.Entity) {
	if q.queued == nil {
		q.queued = make(map[donburi.Entity]bool)
	}
	if q.queued[e] {
		return
	}
	q.queued[e] = true
	q.Pending = append(q.Pending, e)
}

// Drain returns the queued entities and empties the queue.
func (q *RemovalQueueData) Drain() []donburi.Entity {
	out := q.Pending
	q.Pending = nil
	q.queued = nil
	return out
}

var RemovalQueue = donburi.NewComponentType[RemovalQueueData]()
