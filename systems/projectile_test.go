package systems

import (
	"testing"

	"github.com/automoto/gobble/components"
	cfg "github.com/automoto/gobble/config"
	"github.com/automoto/gobble/events"
	"github.com/yohamta/donburi"
)

type destroyedProjectile struct {
	tick    int
	kind    cfg.ProjectileKind
	bounces int
}

func recordDestroyed(h *harness) *[]destroyedProjectile {
	out := &[]destroyedProjectile{}
	events.ProjectileDestroyed.Subscribe(h.world(), func(w donburi.World, ev events.ProjectileDestroyedEvent) {
		d := destroyedProjectile{tick: Now(w), kind: ev.Kind}
		if w.Valid(ev.Projectile) {
			d.bounces = components.Projectile.Get(w.Entry(ev.Projectile)).Bounces
		}
		*out = append(*out, d)
	})
	return out
}

func TestWaveExpiresAfterLifetime(t *testing.T) {
	h := newHarness(t, roomLevel(parkedTurret(200)))
	cfg.Projectile.Wave.Speed = 1
	cfg.Projectile.Wave.Lifetime = 3
	destroyed := recordDestroyed(h)

	h.step(cfg.ActionAttack)
	if n := len(h.projectiles(cfg.ProjectileWave)); n != 1 {
		t.Fatalf("live waves = %d, want 1", n)
	}
	h.stepN(5)

	if len(*destroyed) != 1 {
		t.Fatalf("destroyed = %d, want 1", len(*destroyed))
	}
	if got := (*destroyed)[0].tick; got != 4 {
		t.Errorf("wave destroyed at tick %d, want 4", got)
	}
}

func TestWaveExpiresAfterMaxDistance(t *testing.T) {
	h := newHarness(t, roomLevel(parkedTurret(200)))
	cfg.Projectile.Wave.Speed = 5
	cfg.Projectile.Wave.MaxDistance = 12
	destroyed := recordDestroyed(h)

	h.step(cfg.ActionAttack)
	h.stepN(5)

	if len(*destroyed) != 1 {
		t.Fatalf("destroyed = %d, want 1", len(*destroyed))
	}
	if got := (*destroyed)[0].tick; got != 3 {
		t.Errorf("wave destroyed at tick %d, want 3", got)
	}
}

func TestWaveStunsOnlyOneEnemy(t *testing.T) {
	h := newHarness(t, roomLevel(patrolAt(120, 144), patrolAt(120, 144)))

	h.step(cfg.ActionAttack)
	h.stepUntil(40, func() bool { return len(h.projectiles(cfg.ProjectileWave)) == 0 })

	stunned := 0
	for id := 1; id <= 2; id++ {
		if EnemyState(h.enemy(id)) == cfg.EnemyStunned {
			stunned++
		}
	}
	if stunned != 1 {
		t.Errorf("stunned enemies = %d, want 1", stunned)
	}
}

func TestWaveStopsAtWall(t *testing.T) {
	level := roomLevel(parkedTurret(200))
	level.PlayerSpawn.X = 250
	h := newHarness(t, level)
	destroyed := recordDestroyed(h)

	h.step(cfg.ActionAttack)
	wave := h.projectiles(cfg.ProjectileWave)[0]
	h.stepUntil(20, func() bool { return !IsProjectileLive(wave) })

	if len(*destroyed) != 1 || (*destroyed)[0].kind != cfg.ProjectileWave {
		t.Errorf("destroyed = %+v, want one wave", *destroyed)
	}
}

func TestSpoutBouncesUntilLimit(t *testing.T) {
	h := newHarness(t, roomLevel(parkedTurret(120), parkedTurret(180), parkedTurret(240)))
	cfg.Projectile.Spout.Gravity = 0
	cfg.Projectile.Spout.LaunchSpeed = 0
	destroyed := recordDestroyed(h)

	var counts []int
	events.SwallowCountChanged.Subscribe(h.world(), func(w donburi.World, ev events.SwallowCountChangedEvent) {
		counts = append(counts, ev.Count)
	})

	h.swallow(1)
	h.swallow(2)
	if got := h.playerData().Swallowed.Count(); got != 2 {
		t.Fatalf("swallowed = %d, want 2", got)
	}

	h.step(cfg.ActionAttack)

	spouts := h.projectiles(cfg.ProjectileSpout)
	if len(spouts) != 1 {
		t.Fatalf("live spouts = %d, want 1", len(spouts))
	}
	if got := components.Projectile.Get(spouts[0]).BounceLimit; got != 3 {
		t.Errorf("bounce limit = %d, want 3", got)
	}

	p := h.playerData()
	if p.Swallowed.Count() != 0 || p.Enlarged || p.Spit.Active {
		t.Errorf("player after spout: swallowed=%d enlarged=%v spit=%+v", p.Swallowed.Count(), p.Enlarged, p.Spit)
	}
	if got := components.Display.Get(h.player).ScaleX; got != 1 {
		t.Errorf("player scale = %v, want 1", got)
	}
	if want := []int{1, 2, 0}; len(counts) != 3 || counts[0] != 1 || counts[1] != 2 || counts[2] != 0 {
		t.Errorf("swallow counts = %v, want %v", counts, want)
	}

	h.stepUntil(400, func() bool { return len(*destroyed) > 0 })

	got := (*destroyed)[0]
	if got.kind != cfg.ProjectileSpout || got.bounces != 3 {
		t.Errorf("destroyed %v after %d bounces, want spout after 3", got.kind, got.bounces)
	}
}

func TestSpoutDestroyedByFloor(t *testing.T) {
	h := newHarness(t, roomLevel(parkedTurret(120), parkedTurret(240)))
	destroyed := recordDestroyed(h)

	h.swallow(1)
	h.step(cfg.ActionAttack)
	h.stepUntil(60, func() bool { return len(*destroyed) > 0 })

	if got := (*destroyed)[0]; got.kind != cfg.ProjectileSpout || got.bounces != 0 {
		t.Errorf("destroyed %v after %d bounces, want spout after 0", got.kind, got.bounces)
	}
}

func TestSpoutPiercesEnemies(t *testing.T) {
	h := newHarness(t, roomLevel(parkedTurret(60), patrolAt(150, 144), patrolAt(200, 144)))
	cfg.Projectile.Spout.Gravity = 0
	cfg.Projectile.Spout.LaunchSpeed = 0

	h.swallow(1)
	h.step(cfg.ActionAttack)
	spout := h.projectiles(cfg.ProjectileSpout)[0]

	h.stepUntil(60, func() bool {
		return EnemyState(h.enemy(2)) == cfg.Dying && EnemyState(h.enemy(3)) == cfg.Dying
	})

	if !IsProjectileLive(spout) {
		t.Error("spout was consumed by an enemy")
	}
}

func TestDestroyProjectileIsIdempotent(t *testing.T) {
	h := newHarness(t, roomLevel(parkedTurret(200)))
	destroyed := recordDestroyed(h)

	h.step(cfg.ActionAttack)
	wave := h.projectiles(cfg.ProjectileWave)[0]

	DestroyProjectile(wave)
	DestroyProjectile(wave)
	h.step()
	DestroyProjectile(wave)

	if len(*destroyed) != 1 {
		t.Errorf("destroy notifications = %d, want 1", len(*destroyed))
	}
	if wave.Valid() {
		t.Error("wave still in the world after cleanup")
	}
}
