package systems

import (
	"math"
	"testing"

	"github.com/automoto/gobble/components"
	cfg "github.com/automoto/gobble/config"
	"github.com/automoto/gobble/events"
	"github.com/yohamta/donburi"
)

func TestEvaluatePlayerState(t *testing.T) {
	grounded := PlayerSnapshot{State: cfg.Idle, PreviousState: cfg.Idle, OnGround: true}
	airborne := PlayerSnapshot{State: cfg.Falling, PreviousState: cfg.Jumping, SpeedY: 2, JumpPhase: cfg.JumpPhaseAir}

	tests := []struct {
		name string
		snap PlayerSnapshot
		in   PlayerInputs
		want cfg.StateID
	}{
		{"idle", grounded, PlayerInputs{}, cfg.Idle},
		{"dying is sticky", PlayerSnapshot{State: cfg.Dying, OnGround: true}, PlayerInputs{AttackPressed: true, JumpPressed: true}, cfg.Dying},
		{"attack press", grounded, PlayerInputs{AttackPressed: true}, cfg.Attacking},
		{"attack beats inhale", grounded, PlayerInputs{AttackPressed: true, Inhale: true}, cfg.Attacking},
		{"attack beats jump", grounded, PlayerInputs{AttackPressed: true, JumpPressed: true}, cfg.Attacking},
		{"no attack in the air", airborne, PlayerInputs{AttackPressed: true}, cfg.Falling},
		{"attack beats move left", grounded, PlayerInputs{AttackPressed: true, Left: true}, cfg.Attacking},
		{"attack beats move right", grounded, PlayerInputs{AttackPressed: true, Right: true}, cfg.Attacking},
		{"attack while moving", PlayerSnapshot{State: cfg.Moving, PreviousState: cfg.Idle, OnGround: true}, PlayerInputs{AttackPressed: true, Right: true}, cfg.Attacking},
		{"no attack while hiding", PlayerSnapshot{State: cfg.Hiding, PreviousState: cfg.Idle, OnGround: true}, PlayerInputs{AttackPressed: true, Hide: true}, cfg.Hiding},
		{"no attack after respawn", PlayerSnapshot{State: cfg.Hiding, PreviousState: cfg.Dying, OnGround: true}, PlayerInputs{AttackPressed: true}, cfg.Hiding},
		{"attack holds", PlayerSnapshot{State: cfg.Attacking, OnGround: true, StateTimer: 3}, PlayerInputs{Right: true}, cfg.Attacking},
		{"attack ends", PlayerSnapshot{State: cfg.Attacking, OnGround: true, StateTimer: cfg.Player.AttackFrames}, PlayerInputs{}, cfg.Idle},
		{"inhale", grounded, PlayerInputs{Inhale: true, Right: true}, cfg.Inhaling},
		{"inhale beats jump", grounded, PlayerInputs{Inhale: true, JumpPressed: true}, cfg.Inhaling},
		{"no inhale in the air", airborne, PlayerInputs{Inhale: true}, cfg.Falling},
		{"jump press", grounded, PlayerInputs{JumpPressed: true, Hide: true}, cfg.Jumping},
		{"no jump in the air", PlayerSnapshot{State: cfg.Idle, SpeedY: 1}, PlayerInputs{JumpPressed: true}, cfg.Falling},
		{"rising", PlayerSnapshot{State: cfg.Jumping, SpeedY: -4, JumpPhase: cfg.JumpPhaseAir}, PlayerInputs{}, cfg.Jumping},
		{"apex", PlayerSnapshot{State: cfg.Jumping, SpeedY: -0.05, JumpPhase: cfg.JumpPhaseAir}, PlayerInputs{}, cfg.Falling},
		{"falling", PlayerSnapshot{State: cfg.Idle, SpeedY: 0.45}, PlayerInputs{Right: true}, cfg.Falling},
		{"landing", PlayerSnapshot{State: cfg.Falling, OnGround: true, JumpPhase: cfg.JumpPhaseLanding}, PlayerInputs{Right: true}, cfg.Falling},
		{"hide", grounded, PlayerInputs{Hide: true, Left: true}, cfg.Hiding},
		{"move", grounded, PlayerInputs{Left: true}, cfg.Moving},
		{"respawn stays hidden", PlayerSnapshot{State: cfg.Hiding, PreviousState: cfg.Dying}, PlayerInputs{}, cfg.Hiding},
		{"hiding ends", PlayerSnapshot{State: cfg.Hiding, PreviousState: cfg.Idle, OnGround: true}, PlayerInputs{}, cfg.Idle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EvaluatePlayerState(tt.snap, tt.in)
			if got != tt.want {
				t.Errorf("EvaluatePlayerState() = %v, want %v", got, tt.want)
			}
			if again := EvaluatePlayerState(tt.snap, tt.in); again != got {
				t.Errorf("second evaluation = %v, first = %v", again, got)
			}
		})
	}
}

type stateRun struct {
	state cfg.StateID
	phase cfg.JumpPhase
	ticks int
}

func TestJumpPhases(t *testing.T) {
	h := newHarness(t, roomLevel(parkedTurret(280)))
	cfg.Enemy.Turret.RangeY = -1
	h.step()
	if !components.Physics.Get(h.player).OnGround {
		t.Fatal("player not grounded after the first tick")
	}

	// Run the jump tick by hand to see the impulse before gravity.
	order := GameplaySystems()
	h.setInput(cfg.ActionJump)
	UpdateClock(h.ecs)
	UpdatePlayer(h.ecs)
	if got := components.Physics.Get(h.player).SpeedY; got != -cfg.Player.JumpSpeed {
		t.Errorf("jump impulse = %v, want %v", got, -cfg.Player.JumpSpeed)
	}
	for _, s := range order[2:] {
		s(h.ecs)
	}

	companion := h.playerData().Companion
	if companion.Visible || companion.X != 40 {
		t.Errorf("companion while airborne = %+v, want parked at the takeoff point", companion)
	}

	var runs []stateRun
	record := func() {
		s, p := h.state(), h.playerData().JumpPhase
		if n := len(runs); n > 0 && runs[n-1].state == s && runs[n-1].phase == p {
			runs[n-1].ticks++
			return
		}
		runs = append(runs, stateRun{state: s, phase: p, ticks: 1})
	}
	record()
	for i := 0; i < 200 && h.state() != cfg.Idle; i++ {
		h.step()
		record()
	}

	want := []stateRun{
		{cfg.Jumping, cfg.JumpPhaseStart, cfg.Player.JumpStartFrames},
		{cfg.Jumping, cfg.JumpPhaseAir, -1},
		{cfg.Falling, cfg.JumpPhaseAir, -1},
		{cfg.Falling, cfg.JumpPhaseLanding, cfg.Player.JumpLandingFrames},
		{cfg.Idle, cfg.JumpPhaseNone, 1},
	}
	if len(runs) != len(want) {
		t.Fatalf("runs = %+v, want %d runs", runs, len(want))
	}
	for i, w := range want {
		r := runs[i]
		if r.state != w.state || r.phase != w.phase || (w.ticks > 0 && r.ticks != w.ticks) {
			t.Errorf("run %d = %v/%v x%d, want %v/%v x%d", i, r.state, r.phase, r.ticks, w.state, w.phase, w.ticks)
		}
	}

	if y := components.Object.Get(h.player).Y; math.Abs(y-140) > 1e-6 {
		t.Errorf("landed at y = %v, want 140", y)
	}
	if !h.playerData().Companion.Visible {
		t.Error("companion hidden after landing")
	}
}

func TestDeathAndRespawn(t *testing.T) {
	h := newHarness(t, roomLevel(parkedTurret(120), parkedTurret(240)))
	cfg.Player.DeathFrames = 10

	var died []events.PlayerDiedEvent
	events.PlayerDied.Subscribe(h.world(), func(w donburi.World, ev events.PlayerDiedEvent) {
		died = append(died, ev)
	})

	h.swallow(1)
	h.step()
	KillPlayer(h.player)
	KillPlayer(h.player)

	if got := h.playerData().Swallowed.Count(); got != 0 {
		t.Errorf("swallowed while dying = %d, want 0", got)
	}
	if components.Physics.Get(h.player).Enabled {
		t.Error("dying player still collides")
	}

	h.stepN(cfg.Player.DeathFrames - 1)
	if len(died) != 0 {
		t.Fatalf("died after %d ticks, want %d", cfg.Player.DeathFrames-1, cfg.Player.DeathFrames)
	}
	if got := components.Display.Get(h.player).ScaleY; got <= 0 || got >= 1 {
		t.Errorf("dying scale = %v, want in (0, 1)", got)
	}

	h.step()
	if len(died) != 1 {
		t.Fatalf("died events = %d, want 1", len(died))
	}
	if len(died[0].Lost) != 1 || died[0].Lost[0].ID != 1 {
		t.Errorf("lost = %+v, want enemy 1", died[0].Lost)
	}

	state := components.State.Get(h.player)
	if state.CurrentState != cfg.Hiding || state.PreviousState != cfg.Dying {
		t.Errorf("after respawn state = %v (prev %v), want hiding after dying", state.CurrentState, state.PreviousState)
	}
	obj := components.Object.Get(h.player)
	if obj.X != 40 || math.Abs(obj.Y-140) > 1e-6 {
		t.Errorf("respawned at (%v, %v), want (40, 140)", obj.X, obj.Y)
	}
	if d := components.Display.Get(h.player); !d.Visible || d.ScaleY != 1 {
		t.Errorf("display after respawn = %+v", d)
	}

	back := h.enemy(1)
	if back == nil {
		t.Fatal("swallowed enemy not recreated")
	}
	if e := components.Enemy.Get(back); e.SpawnX != 120 || e.SpawnY != 20 || e.Kind != cfg.EnemyTurret {
		t.Errorf("recreated enemy = %+v", e)
	}

	h.stepN(3)
	if got := h.state(); got != cfg.Hiding {
		t.Errorf("idle after respawn = %v, want hiding", got)
	}
	h.step(cfg.ActionMoveRight)
	if got := h.state(); got != cfg.Moving {
		t.Errorf("moving after respawn = %v, want moving", got)
	}
	if len(died) != 1 {
		t.Errorf("died events = %d after respawn, want 1", len(died))
	}
}

func TestEnemyContactKillsExposedPlayer(t *testing.T) {
	h := newHarness(t, roomLevel(patrolAt(120, 144)))
	h.stepUntil(100, func() bool { return h.state() == cfg.Dying })
}

func TestHidingPlayerSurvivesContact(t *testing.T) {
	h := newHarness(t, roomLevel(patrolAt(120, 144)))
	h.stepN(150, cfg.ActionHide)
	if got := h.state(); got != cfg.Hiding {
		t.Errorf("state = %v, want hiding", got)
	}
}

func TestAttackWhileMovingFiresOneWave(t *testing.T) {
	h := newHarness(t, roomLevel(parkedTurret(280)))
	h.stepN(3, cfg.ActionMoveRight)
	if got := h.state(); got != cfg.Moving {
		t.Fatalf("state = %v, want moving", got)
	}

	h.step(cfg.ActionMoveRight, cfg.ActionAttack)
	if got := h.state(); got != cfg.Attacking {
		t.Errorf("state = %v, want attacking", got)
	}
	if n := len(h.projectiles(cfg.ProjectileWave)); n != 1 {
		t.Fatalf("waves = %d, want 1", n)
	}

	h.stepN(3, cfg.ActionMoveRight, cfg.ActionAttack)
	if n := len(h.projectiles(cfg.ProjectileWave)); n != 1 {
		t.Errorf("waves after holding attack = %d, want 1", n)
	}
}

func TestHidingSuppressesAttack(t *testing.T) {
	h := newHarness(t, roomLevel(parkedTurret(280)))
	h.stepN(3, cfg.ActionHide)
	if got := h.state(); got != cfg.Hiding {
		t.Fatalf("state = %v, want hiding", got)
	}

	h.step(cfg.ActionHide, cfg.ActionAttack)
	if got := h.state(); got != cfg.Hiding {
		t.Errorf("state = %v, want hiding", got)
	}
	if n := len(h.projectiles(cfg.ProjectileWave)); n != 0 {
		t.Errorf("waves = %d, want 0", n)
	}
}

func TestSpitTimerExpiryKills(t *testing.T) {
	h := newHarness(t, roomLevel(parkedTurret(120), parkedTurret(240)))
	cfg.Player.SpitCountdown = 20

	h.swallow(1)
	if !h.playerData().Spit.Active {
		t.Fatal("spit timer not started by the first swallow")
	}
	if got := h.stepUntil(30, func() bool { return h.state() == cfg.Dying }); got != 20 {
		t.Errorf("died after %d ticks, want 20", got)
	}
}

func TestSecondSwallowKeepsSpitTimer(t *testing.T) {
	h := newHarness(t, roomLevel(parkedTurret(120), parkedTurret(240)))

	h.swallow(1)
	h.stepN(5)
	h.swallow(2)

	want := cfg.Player.SpitCountdown - 5
	if got := h.playerData().Spit.Remaining; got != want {
		t.Errorf("spit remaining = %d, want %d", got, want)
	}
}

func TestInhaleSwallowsStunnedEnemy(t *testing.T) {
	h := newHarness(t, roomLevel(patrolAt(120, 144)))
	cfg.Enemy.StunFrames = 600
	StunEnemy(h.enemy(1))

	h.stepUntil(60, func() bool { return h.playerData().Swallowed.Count() == 1 }, cfg.ActionInhale)

	if h.enemy(1) != nil {
		t.Error("swallowed enemy still in play")
	}
	p := h.playerData()
	if !p.Enlarged || !p.Spit.Active {
		t.Errorf("player after swallow: enlarged=%v spit=%+v", p.Enlarged, p.Spit)
	}
	if got := components.Display.Get(h.player).ScaleX; got != cfg.Player.EnlargedScale {
		t.Errorf("scale = %v, want %v", got, cfg.Player.EnlargedScale)
	}
}

func TestSuctionIgnoresEnemiesBehind(t *testing.T) {
	level := roomLevel(patrolAt(150, 144))
	level.PlayerSpawn.X = 200
	h := newHarness(t, level)
	StunEnemy(h.enemy(1))
	x := components.Object.Get(h.enemy(1)).X

	// The player faces right; the enemy is to the left.
	h.stepN(10, cfg.ActionInhale)
	if got := components.Object.Get(h.enemy(1)).X; got != x {
		t.Errorf("enemy behind the player moved from %v to %v", x, got)
	}
}
