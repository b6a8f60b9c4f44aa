package systems

import (
	"testing"

	"github.com/automoto/gobble/components"
	cfg "github.com/automoto/gobble/config"
	"github.com/automoto/gobble/leveldata"
	"github.com/automoto/gobble/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// harness runs a level with the real system order and scripted input.
type harness struct {
	t      *testing.T
	ecs    *ecs.ECS
	player *donburi.Entry
	input  *components.InputData
}

func newHarness(t *testing.T, level *leveldata.Level) *harness {
	t.Helper()
	t.Cleanup(cfg.Reset)

	e := ecs.NewECS(donburi.NewWorld())
	for _, system := range GameplaySystems() {
		e.AddSystem(WithGameplayChecks(system))
	}
	player := SetupLevel(e, level)

	return &harness{
		t:      t,
		ecs:    e,
		player: player,
		input:  getOrCreateInput(e),
	}
}

func (h *harness) world() donburi.World {
	return h.ecs.World
}

// setInput replaces this tick's held actions, keeping last tick's for edge
// detection.
func (h *harness) setInput(actions ...cfg.ActionID) {
	h.input.Previous = h.input.Current
	h.input.Current = [cfg.ActionCount]bool{}
	for _, a := range actions {
		h.input.Current[a] = true
	}
}

func (h *harness) step(actions ...cfg.ActionID) {
	h.setInput(actions...)
	h.ecs.Update()
}

func (h *harness) stepN(n int, actions ...cfg.ActionID) {
	for i := 0; i < n; i++ {
		h.step(actions...)
	}
}

// stepUntil steps until cond holds, failing after max ticks. It returns the
// number of ticks taken.
func (h *harness) stepUntil(max int, cond func() bool, actions ...cfg.ActionID) int {
	h.t.Helper()
	for i := 1; i <= max; i++ {
		h.step(actions...)
		if cond() {
			return i
		}
	}
	h.t.Fatalf("condition not met within %d ticks", max)
	return 0
}

func (h *harness) state() cfg.StateID {
	return PlayerState(h.player)
}

func (h *harness) playerData() *components.PlayerData {
	return components.Player.Get(h.player)
}

func (h *harness) levelData() *components.LevelData {
	return components.Level.Get(components.Level.MustFirst(h.world()))
}

func (h *harness) enemy(id int) *donburi.Entry {
	var found *donburi.Entry
	tags.Enemy.Each(h.world(), func(e *donburi.Entry) {
		if components.Enemy.Get(e).ID == id && !components.Enemy.Get(e).Destroyed {
			found = e
		}
	})
	return found
}

func (h *harness) projectiles(kind cfg.ProjectileKind) []*donburi.Entry {
	var out []*donburi.Entry
	tags.Projectile.Each(h.world(), func(e *donburi.Entry) {
		if p := components.Projectile.Get(e); p.Kind == kind && !p.Destroyed {
			out = append(out, e)
		}
	})
	return out
}

// roomLevel is a closed 320x180 room: floor, ceiling and a wall on each side.
// The player stands on the floor at x=40.
func roomLevel(enemies ...leveldata.EnemySpawn) *leveldata.Level {
	return &leveldata.Level{
		Name:   "room",
		Width:  320,
		Height: 180,
		Platforms: []leveldata.Rect{
			{X: 0, Y: 164, W: 320, H: 16},  // floor
			{X: 0, Y: 0, W: 320, H: 16},    // ceiling
			{X: 0, Y: 16, W: 16, H: 148},   // left wall
			{X: 304, Y: 16, W: 16, H: 148}, // right wall
		},
		PlayerSpawn: leveldata.Point{X: 40, Y: 140},
		Enemies:     enemies,
	}
}

// parkedTurret is out of the player's vertical band, so it never fires.
func parkedTurret(x float64) leveldata.EnemySpawn {
	return leveldata.EnemySpawn{Kind: cfg.EnemyTurret, X: x, Y: 20}
}

func patrolAt(x, y float64) leveldata.EnemySpawn {
	return leveldata.EnemySpawn{Kind: cfg.EnemyPatrol, X: x, Y: y}
}

func turretAt(x, y float64) leveldata.EnemySpawn {
	return leveldata.EnemySpawn{Kind: cfg.EnemyTurret, X: x, Y: y}
}

// swallow stuns enemy id and feeds it to the player.
func (h *harness) swallow(id int) {
	h.t.Helper()
	enemy := h.enemy(id)
	if enemy == nil {
		h.t.Fatalf("enemy %d not found", id)
	}
	StunEnemy(enemy)
	SwallowEnemy(h.player, enemy)
}
