package systems

import (
	"log"
	"math"

	"github.com/automoto/gobble/components"
	cfg "github.com/automoto/gobble/config"
	"github.com/automoto/gobble/events"
	"github.com/automoto/gobble/systems/factory"
	"github.com/automoto/gobble/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const companionFrames = 4

// PlayerSnapshot is everything the state evaluator reads. Identical snapshots
// and inputs always produce the same state.
type PlayerSnapshot struct {
	State         cfg.StateID
	PreviousState cfg.StateID
	StateTimer    int
	OnGround      bool
	SpeedY        float64
	JumpPhase     cfg.JumpPhase
}

func UpdatePlayer(ecs *ecs.ECS) {
	entry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	in := readPlayerInputs(getOrCreateInput(ecs))
	stepPlayer(ecs, entry, in)
}

func stepPlayer(e *ecs.ECS, entry *donburi.Entry, in PlayerInputs) {
	state := components.State.Get(entry)
	player := components.Player.Get(entry)
	physics := components.Physics.Get(entry)

	if state.CurrentState != cfg.Dying {
		advanceJumpPhase(player, physics)
		tickSpitTimer(entry)
	}

	next := EvaluatePlayerState(snapshotPlayer(entry), in)
	if next != state.CurrentState {
		transitionPlayer(e, entry, next, in)
	}

	updatePlayerState(e, entry, in)
	updateCompanion(e.World, entry)
	state.StateTimer++

	if state.CurrentState == cfg.Dying && player.DeathProgress >= 1 && !player.DeathNotified {
		finishPlayerDeath(entry)
	}
}

func snapshotPlayer(entry *donburi.Entry) PlayerSnapshot {
	state := components.State.Get(entry)
	physics := components.Physics.Get(entry)
	return PlayerSnapshot{
		State:         state.CurrentState,
		PreviousState: state.PreviousState,
		StateTimer:    state.StateTimer,
		OnGround:      physics.OnGround,
		SpeedY:        physics.SpeedY,
		JumpPhase:     components.Player.Get(entry).JumpPhase,
	}
}

// EvaluatePlayerState picks the state for this tick. Rules are checked in
// priority order and the first match wins; DYING is only left through
// RespawnPlayer. An attack press is dropped while airborne or HIDING.
func EvaluatePlayerState(s PlayerSnapshot, in PlayerInputs) cfg.StateID {
	if s.State == cfg.Dying {
		return cfg.Dying
	}

	airborne := s.State == cfg.Jumping || s.State == cfg.Falling

	if in.AttackPressed && !airborne && s.State != cfg.Hiding {
		return cfg.Attacking
	}
	if s.State == cfg.Attacking && s.StateTimer < cfg.Player.AttackFrames {
		return cfg.Attacking
	}
	if in.Inhale && !airborne {
		return cfg.Inhaling
	}

	if in.JumpPressed && s.OnGround && s.State != cfg.Jumping {
		return cfg.Jumping
	}
	if s.SpeedY < -cfg.Player.RiseEpsilon {
		return cfg.Jumping
	}
	if !s.OnGround && (s.SpeedY > 0 || s.JumpPhase == cfg.JumpPhaseStart || s.JumpPhase == cfg.JumpPhaseAir) {
		return cfg.Falling
	}
	if s.JumpPhase == cfg.JumpPhaseLanding {
		return cfg.Falling
	}

	if s.OnGround && in.Hide {
		return cfg.Hiding
	}
	if s.OnGround && (in.Left || in.Right) {
		return cfg.Moving
	}

	// Right after a respawn the player stays hidden until something else
	// takes over.
	if s.PreviousState == cfg.Dying && s.State == cfg.Hiding {
		return cfg.Hiding
	}
	return cfg.Idle
}

// advanceJumpPhase runs the start -> air -> landing -> none sub-machine.
func advanceJumpPhase(player *components.PlayerData, physics *components.PhysicsData) {
	switch player.JumpPhase {
	case cfg.JumpPhaseStart:
		player.JumpPhaseTimer++
		if player.JumpPhaseTimer >= cfg.Player.JumpStartFrames {
			player.JumpPhase = cfg.JumpPhaseAir
			player.JumpPhaseTimer = 0
		}
	case cfg.JumpPhaseAir:
		if physics.OnGround {
			player.JumpPhase = cfg.JumpPhaseLanding
			player.JumpPhaseTimer = 0
		}
	case cfg.JumpPhaseLanding:
		player.JumpPhaseTimer++
		if player.JumpPhaseTimer >= cfg.Player.JumpLandingFrames {
			player.JumpPhase = cfg.JumpPhaseNone
			player.JumpPhaseTimer = 0
		}
	case cfg.JumpPhaseNone:
		// Walking off a ledge still plays the landing.
		if !physics.OnGround && physics.SpeedY > 0 {
			player.JumpPhase = cfg.JumpPhaseAir
			player.JumpPhaseTimer = 0
		}
	}
}

func setPlayerState(entry *donburi.Entry, next cfg.StateID) {
	state := components.State.Get(entry)
	state.PreviousState = state.CurrentState
	state.CurrentState = next
	state.StateTimer = 0
}

func transitionPlayer(e *ecs.ECS, entry *donburi.Entry, next cfg.StateID, in PlayerInputs) {
	setPlayerState(entry, next)

	physics := components.Physics.Get(entry)
	player := components.Player.Get(entry)

	switch next {
	case cfg.Jumping:
		if in.JumpPressed && physics.OnGround {
			physics.SpeedY = -cfg.Player.JumpSpeed
			player.JumpPhase = cfg.JumpPhaseStart
			player.JumpPhaseTimer = 0
		}
	case cfg.Attacking:
		physics.SpeedX = 0
		firePlayerAttack(e, entry)
	case cfg.Hiding, cfg.Inhaling:
		physics.SpeedX = 0
	case cfg.Dying:
		enterPlayerDying(entry)
	}
}

func updatePlayerState(e *ecs.ECS, entry *donburi.Entry, in PlayerInputs) {
	state := components.State.Get(entry)
	physics := components.Physics.Get(entry)
	player := components.Player.Get(entry)

	switch state.CurrentState {
	case cfg.Idle, cfg.Hiding, cfg.Attacking:
		physics.SpeedX = 0
	case cfg.Moving, cfg.Jumping, cfg.Falling:
		steerPlayer(entry, in)
	case cfg.Inhaling:
		physics.SpeedX = 0
		x, y := centerOf(entry)
		events.Emit(e.World, events.PlayerInhaling, events.PlayerInhalingEvent{
			Player:  entry.Entity(),
			X:       x,
			Y:       y,
			FacingX: player.FacingX,
		})
	case cfg.Dying:
		physics.SpeedX = 0
		physics.SpeedY = 0
		progress := float64(state.StateTimer+1) / float64(cfg.Player.DeathFrames)
		player.DeathProgress = math.Min(1, progress)
		components.Display.Get(entry).ScaleY = 1 - player.DeathProgress
	}
}

func steerPlayer(entry *donburi.Entry, in PlayerInputs) {
	dir := 0.0
	if in.Left && !in.Right {
		dir = cfg.DirectionLeft
	} else if in.Right && !in.Left {
		dir = cfg.DirectionRight
	}

	components.Physics.Get(entry).SpeedX = dir * cfg.Player.MoveSpeed
	if dir != 0 {
		components.Player.Get(entry).FacingX = dir
		components.Display.Get(entry).FlipX = dir < 0
	}
}

// firePlayerAttack launches a wave, or a spout carrying everything swallowed.
func firePlayerAttack(e *ecs.ECS, entry *donburi.Entry) {
	player := components.Player.Get(entry)

	n := player.Swallowed.Count()
	if n == 0 {
		wave := factory.CreateWave(e, entry, player.FacingX)
		events.Emit(e.World, events.PlayerFiredWave, events.PlayerFiredWaveEvent{
			Player: entry.Entity(),
			Wave:   wave.Entity(),
		})
		return
	}

	spout := factory.CreateSpout(e, entry, player.FacingX, n+1)
	consumed := player.Swallowed.Clear()
	shrinkPlayer(entry)

	events.Emit(e.World, events.PlayerFiredSpout, events.PlayerFiredSpoutEvent{
		Player:   entry.Entity(),
		Spout:    spout.Entity(),
		Consumed: consumed,
	})
	events.Emit(e.World, events.SwallowCountChanged, events.SwallowCountChangedEvent{
		Player: entry.Entity(),
		Count:  0,
	})
}

// shrinkPlayer returns the player to normal size and stops the spit timer.
func shrinkPlayer(entry *donburi.Entry) {
	player := components.Player.Get(entry)
	player.Enlarged = false
	player.Spit = components.SpitTimer{}

	display := components.Display.Get(entry)
	display.ScaleX = 1
	display.ScaleY = 1
	display.Tinted = false
}

func tickSpitTimer(entry *donburi.Entry) {
	player := components.Player.Get(entry)
	spit := &player.Spit
	if !spit.Active {
		return
	}

	spit.Remaining--
	display := components.Display.Get(entry)
	if spit.Remaining <= cfg.Player.SpitWarningFrames {
		display.Tinted = (spit.Remaining/cfg.Player.SpitFlashInterval)%2 == 0
	}
	if spit.Remaining <= 0 {
		spit.Active = false
		display.Tinted = false
		KillPlayer(entry)
	}
}

// SwallowEnemy banks enemy with the player and removes it from play. The first
// swallow starts the spit countdown.
func SwallowEnemy(player, enemy *donburi.Entry) {
	if PlayerState(player) == cfg.StateNone || PlayerState(player) == cfg.Dying {
		return
	}
	if !isLiveEnemy(enemy) || EnemyState(enemy) == cfg.Dying {
		return
	}

	data := components.Enemy.Get(enemy)
	p := components.Player.Get(player)
	p.Swallowed.Add(components.SwallowRecord{
		Kind:   data.Kind,
		ID:     data.ID,
		SpawnX: data.SpawnX,
		SpawnY: data.SpawnY,
	})

	p.Enlarged = true
	display := components.Display.Get(player)
	display.ScaleX = cfg.Player.EnlargedScale
	display.ScaleY = cfg.Player.EnlargedScale
	if p.Swallowed.Count() == 1 {
		p.Spit = components.SpitTimer{Remaining: cfg.Player.SpitCountdown, Active: true}
	}

	removeSwallowedEnemy(enemy)

	events.Emit(player.World, events.SwallowCountChanged, events.SwallowCountChangedEvent{
		Player: player.Entity(),
		Count:  p.Swallowed.Count(),
	})
}

func removeSwallowedEnemy(enemy *donburi.Entry) {
	data := components.Enemy.Get(enemy)
	data.Destroyed = true
	data.Shrink = nil

	physics := components.Physics.Get(enemy)
	physics.Enabled = false
	physics.SpeedX = 0
	physics.SpeedY = 0
	components.Display.Get(enemy).Visible = false
	MarkForRemoval(enemy)

	events.Emit(enemy.World, events.EnemyDestroyed, events.EnemyDestroyedEvent{
		Enemy:     enemy.Entity(),
		ID:        data.ID,
		Kind:      data.Kind,
		Swallowed: true,
	})
}

// KillPlayer starts the death sequence. It is a no-op while already dying.
func KillPlayer(entry *donburi.Entry) {
	if s := PlayerState(entry); s == cfg.StateNone || s == cfg.Dying {
		return
	}
	setPlayerState(entry, cfg.Dying)
	enterPlayerDying(entry)
}

func enterPlayerDying(entry *donburi.Entry) {
	physics := components.Physics.Get(entry)
	physics.SpeedX = 0
	physics.SpeedY = 0
	physics.PushX = 0
	physics.Enabled = false

	player := components.Player.Get(entry)
	player.DeathProgress = 0
	player.DeathNotified = false
	player.JumpPhase = cfg.JumpPhaseNone
	player.JumpPhaseTimer = 0

	hadSwallowed := player.Swallowed.Count() > 0
	player.LostOnDeath = player.Swallowed.Clear()
	shrinkPlayer(entry)

	if hadSwallowed {
		events.Emit(entry.World, events.SwallowCountChanged, events.SwallowCountChangedEvent{
			Player: entry.Entity(),
			Count:  0,
		})
	}
}

func finishPlayerDeath(entry *donburi.Entry) {
	player := components.Player.Get(entry)
	player.DeathNotified = true
	components.Display.Get(entry).Visible = false

	lost := player.LostOnDeath
	player.LostOnDeath = nil
	log.Printf("[player] died, %d swallowed enemies lost", len(lost))

	events.Emit(entry.World, events.PlayerDied, events.PlayerDiedEvent{
		Player: entry.Entity(),
		Lost:   lost,
	})
}

// RespawnPlayer puts the player back at its spawn point, hidden. Swallowed
// enemies are not recreated here.
func RespawnPlayer(entry *donburi.Entry) {
	if PlayerState(entry) == cfg.StateNone {
		return
	}
	player := components.Player.Get(entry)

	obj := components.Object.Get(entry)
	obj.X = player.SpawnX
	obj.Y = player.SpawnY
	obj.Update()

	physics := components.Physics.Get(entry)
	physics.SpeedX = 0
	physics.SpeedY = 0
	physics.PushX = 0
	physics.PrevX = player.SpawnX
	physics.PrevY = player.SpawnY
	physics.Enabled = true
	physics.OnGround = false
	physics.BlockedLeft = false
	physics.BlockedRight = false
	physics.BlockedUp = false
	physics.BlockedDown = false

	player.Swallowed.Clear()
	player.LostOnDeath = nil
	player.JumpPhase = cfg.JumpPhaseNone
	player.JumpPhaseTimer = 0
	player.DeathProgress = 0
	player.DeathNotified = false
	player.Companion = components.CompanionData{
		X:       player.SpawnX,
		Y:       player.SpawnY,
		AnchorX: player.SpawnX,
		AnchorY: player.SpawnY,
		Visible: true,
	}
	shrinkPlayer(entry)

	display := components.Display.Get(entry)
	display.Angle = 0
	display.Visible = true

	state := components.State.Get(entry)
	state.PreviousState = cfg.Dying
	state.CurrentState = cfg.Hiding
	state.StateTimer = 0

	log.Printf("[player] respawned at (%.0f, %.0f)", player.SpawnX, player.SpawnY)
}

// IsHiding reports whether the player is currently immune to contact damage.
func IsHiding(entry *donburi.Entry) bool {
	return PlayerState(entry) == cfg.Hiding
}

// PlayerState returns the player's state, or StateNone if entry is not a
// live player.
func PlayerState(entry *donburi.Entry) cfg.StateID {
	if entry == nil || !entry.Valid() || !entry.HasComponent(components.Player) {
		return cfg.StateNone
	}
	return components.State.Get(entry).CurrentState
}

// updateCompanion keeps the wave sprite beside the player on the ground and
// parks it at the takeoff point while airborne.
func updateCompanion(w donburi.World, entry *donburi.Entry) {
	player := components.Player.Get(entry)
	c := &player.Companion
	obj := components.Object.Get(entry)

	switch components.State.Get(entry).CurrentState {
	case cfg.Jumping, cfg.Falling:
		c.X, c.Y = c.AnchorX, c.AnchorY
		c.Visible = false
		c.Animating = false
	case cfg.Dying:
		c.Visible = false
		c.Animating = false
	case cfg.Hiding:
		c.X, c.Y = obj.X, obj.Y
		c.AnchorX, c.AnchorY = obj.X, obj.Y
		c.Visible = true
		c.Animating = false
	default:
		c.X, c.Y = obj.X, obj.Y
		c.AnchorX, c.AnchorY = obj.X, obj.Y
		c.Visible = true
		c.Animating = true
	}

	if c.Animating && Now(w)%cfg.Player.CompanionAnimSpeed == 0 {
		c.Frame = (c.Frame + 1) % companionFrames
	}
}
