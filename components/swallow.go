package components

import "github.com/automoto/gobble/config"

// SwallowRecord remembers a captured enemy so it can be recreated on respawn.
type SwallowRecord struct {
	Kind   config.EnemyKind
	ID     int
	SpawnX float64
	SpawnY float64
}

// SwallowManager is the ordered list of enemies the player is holding.
type SwallowManager struct {
	records []SwallowRecord
}

func (m *SwallowManager) Add(r SwallowRecord) {
	m.records = append(m.records, r)
}

func (m *SwallowManager) Count() int {
	return len(m.records)
}

// Clear empties the manager and returns what it held.
func (m *SwallowManager) Clear() []SwallowRecord {
	out := m.records
	m.records = nil
	return out
}
