package systems

import (
	"log"
	"math"

	"github.com/automoto/gobble/components"
	cfg "github.com/automoto/gobble/config"
	"github.com/automoto/gobble/events"
	"github.com/automoto/gobble/leveldata"
	"github.com/automoto/gobble/systems/factory"
	"github.com/automoto/gobble/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SetupLevel builds the level: geometry, player, enemies and the event
// handlers that wire projectile collisions and track the win condition.
// It returns the player entry.
func SetupLevel(e *ecs.ECS, level *leveldata.Level) *donburi.Entry {
	w := e.World

	getOrCreateClock(w)
	getOrCreateColliders(w)
	getOrCreateRemovalQueue(w)
	GetOrCreatePause(w)
	GetOrCreateLevelComplete(w)

	factory.CreateSpace(e, int(level.Width), int(level.Height), cfg.Physics.CellSize, cfg.Physics.CellSize)
	levelEntry := factory.CreateLevel(e, level)
	ld := components.Level.Get(levelEntry)

	createGeometry(e, ld.Geometry)

	player := factory.CreatePlayer(e, level.PlayerSpawn.X, level.PlayerSpawn.Y)
	wireTerrain(player, ld.Geometry)
	AddOverlap(player, ColliderOptions{
		Tags:     []string{tags.ResolvEnemy},
		Callback: playerTouchesEnemy,
	})

	for i, spawn := range level.Enemies {
		spawnEnemy(e, spawn.Kind, i+1, spawn.X, spawn.Y)
	}

	factory.CreateCamera(e, level.PlayerSpawn.X, level.PlayerSpawn.Y)

	subscribeLevelEvents(e, levelEntry)

	log.Printf("[level] %q ready: %d platforms (%d floor, %d ceiling, %d wall, %d one-way), %d enemies",
		ld.Name, len(ld.Platforms), len(ld.Geometry.Floors), len(ld.Geometry.Ceilings),
		len(ld.Geometry.Walls), len(ld.Geometry.OneWay), ld.TotalEnemies)

	events.Emit(w, events.LevelReady, events.LevelReadyEvent{TotalEnemies: ld.TotalEnemies})
	// An empty level is won as soon as it loads.
	checkVictory(w, ld)
	return player
}

func createGeometry(e *ecs.ECS, g leveldata.Classification) {
	for _, r := range g.Floors {
		factory.CreatePlatform(e, r, tags.ResolvFloor)
	}
	for _, r := range g.Ceilings {
		factory.CreatePlatform(e, r, tags.ResolvCeiling)
	}
	for _, r := range g.Walls {
		factory.CreatePlatform(e, r, tags.ResolvWall)
	}
	for _, r := range g.OneWay {
		factory.CreatePlatform(e, r, tags.ResolvOneWay)
	}

	if len(g.Floors) == 0 {
		log.Printf("[level] no floor found, skipping floor colliders")
	}
	if len(g.Ceilings) == 0 {
		log.Printf("[level] no ceiling found, skipping ceiling colliders")
	}
	if len(g.Walls) == 0 {
		log.Printf("[level] no walls found, skipping wall colliders")
	}
}

// presentTags keeps only the tags of geometry classes the level actually has.
func presentTags(g leveldata.Classification, want ...string) []string {
	var out []string
	for _, t := range want {
		var n int
		switch t {
		case tags.ResolvFloor:
			n = len(g.Floors)
		case tags.ResolvCeiling:
			n = len(g.Ceilings)
		case tags.ResolvWall:
			n = len(g.Walls)
		case tags.ResolvOneWay:
			n = len(g.OneWay)
		}
		if n > 0 {
			out = append(out, t)
		}
	}
	return out
}

// wireTerrain gives a walking body solid floor, ceiling and walls plus
// one-way platforms.
func wireTerrain(body *donburi.Entry, g leveldata.Classification) {
	if solid := presentTags(g, tags.ResolvFloor, tags.ResolvCeiling, tags.ResolvWall); len(solid) > 0 {
		AddCollider(body, ColliderOptions{Tags: solid})
	}
	if len(g.OneWay) > 0 {
		AddCollider(body, ColliderOptions{
			Tags:    []string{tags.ResolvOneWay},
			OneWay:  true,
			Process: landsOnOneWay,
		})
	}
}

// landsOnOneWay lets a body stand on a one-way platform only if its bottom
// edge was above the platform top last tick and it is not moving up.
func landsOnOneWay(body, platform *donburi.Entry) bool {
	physics := components.Physics.Get(body)
	obj := components.Object.Get(body)
	top := components.Object.Get(platform).Y
	return physics.PrevY+obj.H <= top+cfg.Physics.OneWayTolerance && physics.SpeedY >= 0
}

// spawnEnemy creates an enemy and gives walkers their terrain colliders.
func spawnEnemy(e *ecs.ECS, kind cfg.EnemyKind, id int, x, y float64) *donburi.Entry {
	enemy := factory.CreateEnemy(e, kind, id, x, y)
	if kind == cfg.EnemyPatrol {
		if levelEntry, ok := components.Level.First(e.World); ok {
			wireTerrain(enemy, components.Level.Get(levelEntry).Geometry)
		}
	}
	return enemy
}

// playerTouchesEnemy kills an exposed player on contact with a NORMAL enemy
// and swallows a STUNNED one while inhaling.
func playerTouchesEnemy(player, enemy *donburi.Entry) {
	switch EnemyState(enemy) {
	case cfg.EnemyNormal:
		if !IsHiding(player) {
			KillPlayer(player)
		}
	case cfg.EnemyStunned:
		if PlayerState(player) == cfg.Inhaling {
			SwallowEnemy(player, enemy)
		}
	}
}

func subscribeLevelEvents(e *ecs.ECS, levelEntry *donburi.Entry) {
	w := e.World
	ld := components.Level.Get(levelEntry)

	events.PlayerFiredWave.Subscribe(w, func(w donburi.World, ev events.PlayerFiredWaveEvent) {
		wireWave(w, ld, ev.Wave)
	})
	events.PlayerFiredSpout.Subscribe(w, func(w donburi.World, ev events.PlayerFiredSpoutEvent) {
		wireSpout(w, ld, ev.Spout)
		// Spat-out enemies never come back.
		for _, rec := range ev.Consumed {
			markDefeated(w, ld, rec.ID)
		}
	})
	events.TurretFiredProjectile.Subscribe(w, func(w donburi.World, ev events.TurretFiredProjectileEvent) {
		wireBolt(w, ld, ev.Bolt)
	})
	events.ProjectileDestroyed.Subscribe(w, func(w donburi.World, ev events.ProjectileDestroyedEvent) {
		RemoveCollidersOwnedBy(w, ev.Projectile)
		delete(ld.Projectiles, ev.Projectile)
	})
	events.ProjectileDestroyed.Subscribe(w, onTurretBoltDestroyed)

	events.PlayerInhaling.Subscribe(w, applySuction)

	events.EnemyDestroyed.Subscribe(w, func(w donburi.World, ev events.EnemyDestroyedEvent) {
		RemoveCollidersFor(w, ev.Enemy)
	})
	events.EnemyDefeated.Subscribe(w, func(w donburi.World, ev events.EnemyDefeatedEvent) {
		markDefeated(w, ld, ev.ID)
	})

	events.PlayerDied.Subscribe(w, func(w donburi.World, ev events.PlayerDiedEvent) {
		for _, rec := range ev.Lost {
			spawnEnemy(e, rec.Kind, rec.ID, rec.SpawnX, rec.SpawnY)
		}
		if w.Valid(ev.Player) {
			RespawnPlayer(w.Entry(ev.Player))
		}
	})
}

func trackProjectile(w donburi.World, ld *components.LevelData, projectile donburi.Entity, kind cfg.ProjectileKind) (*donburi.Entry, bool) {
	if !w.Valid(projectile) {
		return nil, false
	}
	entry := w.Entry(projectile)
	if !IsProjectileLive(entry) {
		return nil, false
	}
	ld.Projectiles[projectile] = kind
	return entry, true
}

// wireWave: walls stop the wave, the first enemy it touches is stunned.
// Floors, ceilings and platforms are ignored.
func wireWave(w donburi.World, ld *components.LevelData, wave donburi.Entity) {
	entry, ok := trackProjectile(w, ld, wave, cfg.ProjectileWave)
	if !ok {
		return
	}
	if walls := presentTags(ld.Geometry, tags.ResolvWall); len(walls) > 0 {
		AddCollider(entry, ColliderOptions{Tags: walls, Callback: destroyOnContact})
	}
	AddOverlap(entry, ColliderOptions{
		Tags:     []string{tags.ResolvEnemy},
		Process:  enemyNotDying,
		Callback: waveHitEnemy,
	})
}

// wireSpout: the floor destroys the spout, walls use up bounces, ceilings and
// platforms just bounce it, enemies are pierced.
func wireSpout(w donburi.World, ld *components.LevelData, spout donburi.Entity) {
	entry, ok := trackProjectile(w, ld, spout, cfg.ProjectileSpout)
	if !ok {
		return
	}
	if floors := presentTags(ld.Geometry, tags.ResolvFloor); len(floors) > 0 {
		AddCollider(entry, ColliderOptions{Tags: floors, Callback: destroyOnContact})
	}
	if walls := presentTags(ld.Geometry, tags.ResolvWall); len(walls) > 0 {
		AddCollider(entry, ColliderOptions{Tags: walls, Callback: spoutHitWall})
	}
	if ceilings := presentTags(ld.Geometry, tags.ResolvCeiling); len(ceilings) > 0 {
		AddCollider(entry, ColliderOptions{Tags: ceilings})
	}
	if len(ld.Geometry.OneWay) > 0 {
		AddCollider(entry, ColliderOptions{
			Tags:    []string{tags.ResolvOneWay},
			OneWay:  true,
			Process: landsOnOneWay,
		})
	}
	AddOverlap(entry, ColliderOptions{
		Tags:     []string{tags.ResolvEnemy},
		Process:  enemyNotDying,
		Callback: spoutHitEnemy,
	})
}

// wireBolt: any geometry destroys the bolt, and so does an exposed player.
func wireBolt(w donburi.World, ld *components.LevelData, bolt donburi.Entity) {
	entry, ok := trackProjectile(w, ld, bolt, cfg.ProjectileBolt)
	if !ok {
		return
	}
	geometry := presentTags(ld.Geometry, tags.ResolvFloor, tags.ResolvCeiling, tags.ResolvWall, tags.ResolvOneWay)
	if len(geometry) > 0 {
		AddCollider(entry, ColliderOptions{Tags: geometry, Callback: destroyOnContact})
	}
	AddOverlap(entry, ColliderOptions{
		Tags:     []string{tags.ResolvPlayer},
		Process:  boltBlocksPlayer,
		Callback: boltHitPlayer,
	})
}

// applySuction pulls every stunned enemy in front of the inhaling player
// toward it. The pull is applied by the next physics step.
func applySuction(w donburi.World, ev events.PlayerInhalingEvent) {
	pc := cfg.Player
	tags.Enemy.Each(w, func(enemy *donburi.Entry) {
		if EnemyState(enemy) != cfg.EnemyStunned || components.Enemy.Get(enemy).Destroyed {
			return
		}
		ex, ey := centerOf(enemy)
		dx := ex - ev.X
		if dx*ev.FacingX <= 0 || math.Abs(dx) > pc.InhaleRange || math.Abs(ey-ev.Y) > pc.InhaleBand {
			return
		}
		pull := math.Min(pc.SuctionSpeed, math.Abs(dx))
		components.Physics.Get(enemy).PushX = -ev.FacingX * pull
	})
}

// markDefeated counts an enemy id once and fires the win signal when the last
// one goes.
func markDefeated(w donburi.World, ld *components.LevelData, id int) {
	if ld.Defeated[id] {
		return
	}
	ld.Defeated[id] = true
	ld.DefeatedCount++
	checkVictory(w, ld)
}

func checkVictory(w donburi.World, ld *components.LevelData) {
	if ld.Victory || ld.DefeatedCount < ld.TotalEnemies {
		return
	}
	ld.Victory = true

	lc := GetOrCreateLevelComplete(w)
	lc.IsComplete = true
	lc.Defeated = ld.DefeatedCount
	lc.Total = ld.TotalEnemies

	log.Printf("[level] victory: %d/%d enemies defeated", ld.DefeatedCount, ld.TotalEnemies)
	events.Emit(w, events.Victory, events.VictoryEvent{
		Defeated: ld.DefeatedCount,
		Total:    ld.TotalEnemies,
	})
}
