package systems

import (
	"github.com/automoto/gobble/components"
	cfg "github.com/automoto/gobble/config"
	"github.com/automoto/gobble/events"
	"github.com/automoto/gobble/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// EnemyBehavior is the set of hooks an archetype plugs into the shared
// NORMAL/STUNNED/DYING machine. Any hook may be nil.
type EnemyBehavior struct {
	EnterNormal   func(entry *donburi.Entry)
	ExitNormal    func(entry *donburi.Entry)
	UpdateNormal  func(e *ecs.ECS, entry *donburi.Entry)
	EnterStunned  func(entry *donburi.Entry)
	ExitStunned   func(entry *donburi.Entry)
	UpdateStunned func(e *ecs.ECS, entry *donburi.Entry)
	// EnterDying runs before the shared dying entry; it cannot replace it.
	EnterDying func(entry *donburi.Entry)
}

var enemyBehaviors map[cfg.EnemyKind]*EnemyBehavior

func init() {
	enemyBehaviors = map[cfg.EnemyKind]*EnemyBehavior{
		cfg.EnemyPatrol: patrolBehavior,
		cfg.EnemyTurret: turretBehavior,
	}
}

func behaviorOf(entry *donburi.Entry) *EnemyBehavior {
	if b, ok := enemyBehaviors[components.Enemy.Get(entry).Kind]; ok {
		return b
	}
	return &EnemyBehavior{}
}

// UpdateEnemies runs one tick of every enemy's state machine.
func UpdateEnemies(ecs *ecs.ECS) {
	var enemies []*donburi.Entry
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		enemies = append(enemies, e)
	})

	for _, entry := range enemies {
		updateEnemy(ecs, entry)
	}
}

func updateEnemy(e *ecs.ECS, entry *donburi.Entry) {
	if !entry.Valid() || components.Enemy.Get(entry).Destroyed {
		return
	}

	state := components.State.Get(entry)
	if desired := desiredEnemyState(entry); desired != state.CurrentState {
		transitionEnemy(entry, desired)
	}

	b := behaviorOf(entry)
	switch state.CurrentState {
	case cfg.EnemyNormal:
		if b.UpdateNormal != nil {
			b.UpdateNormal(e, entry)
		}
	case cfg.EnemyStunned:
		components.Enemy.Get(entry).StunTimer--
		if b.UpdateStunned != nil {
			b.UpdateStunned(e, entry)
		}
	case cfg.Dying:
		updateEnemyDying(entry)
	}

	if entry.Valid() {
		components.State.Get(entry).StateTimer++
	}
}

// desiredEnemyState only ever moves STUNNED back to NORMAL. STUNNED and DYING
// are entered through StunEnemy and KillEnemy.
func desiredEnemyState(entry *donburi.Entry) cfg.StateID {
	current := components.State.Get(entry).CurrentState
	if current == cfg.EnemyStunned && components.Enemy.Get(entry).StunTimer <= 0 {
		return cfg.EnemyNormal
	}
	return current
}

func transitionEnemy(entry *donburi.Entry, next cfg.StateID) {
	state := components.State.Get(entry)
	b := behaviorOf(entry)

	switch state.CurrentState {
	case cfg.EnemyNormal:
		callHook(b.ExitNormal, entry)
	case cfg.EnemyStunned:
		callHook(b.ExitStunned, entry)
	}

	state.PreviousState = state.CurrentState
	state.CurrentState = next
	state.StateTimer = 0

	switch next {
	case cfg.EnemyNormal:
		callHook(b.EnterNormal, entry)
	case cfg.EnemyStunned:
		callHook(b.EnterStunned, entry)
	case cfg.Dying:
		callHook(b.EnterDying, entry)
		enterEnemyDying(entry)
	}
}

func callHook(hook func(*donburi.Entry), entry *donburi.Entry) {
	if hook != nil {
		hook(entry)
	}
}

// StunEnemy puts the enemy into STUNNED with a full countdown. Stunning a
// stunned enemy refreshes the countdown; stunning a dying one does nothing.
func StunEnemy(entry *donburi.Entry) {
	if !isLiveEnemy(entry) {
		return
	}
	state := components.State.Get(entry)
	if state.CurrentState == cfg.Dying {
		return
	}
	components.Enemy.Get(entry).StunTimer = cfg.Enemy.StunFrames
	if state.CurrentState != cfg.EnemyStunned {
		transitionEnemy(entry, cfg.EnemyStunned)
	}
}

// KillEnemy starts the death sequence. It is a no-op once dying.
func KillEnemy(entry *donburi.Entry) {
	if !isLiveEnemy(entry) || components.State.Get(entry).CurrentState == cfg.Dying {
		return
	}
	transitionEnemy(entry, cfg.Dying)
}

// EnemyState returns the current state, or StateNone for a removed enemy.
func EnemyState(entry *donburi.Entry) cfg.StateID {
	if entry == nil || !entry.Valid() || !entry.HasComponent(components.Enemy) {
		return cfg.StateNone
	}
	return components.State.Get(entry).CurrentState
}

func isLiveEnemy(entry *donburi.Entry) bool {
	return entry != nil && entry.Valid() && entry.HasComponent(components.Enemy) &&
		!components.Enemy.Get(entry).Destroyed
}

func enterEnemyDying(entry *donburi.Entry) {
	physics := components.Physics.Get(entry)
	physics.Enabled = false
	physics.SpeedX = 0
	physics.SpeedY = 0
	physics.AllowGravity = false

	enemy := components.Enemy.Get(entry)
	enemy.StunTimer = 0
	enemy.Shrink = gween.New(1, 0, float32(cfg.Enemy.DeathFrames), ease.Linear)
}

func updateEnemyDying(entry *donburi.Entry) {
	enemy := components.Enemy.Get(entry)
	if enemy.Shrink == nil {
		return
	}
	scale, done := enemy.Shrink.Update(1)
	display := components.Display.Get(entry)
	display.ScaleX = float64(scale)
	display.ScaleY = float64(scale)
	if done {
		destroyEnemy(entry)
	}
}

// destroyEnemy removes a fully shrunk enemy and reports it defeated, once.
func destroyEnemy(entry *donburi.Entry) {
	enemy := components.Enemy.Get(entry)
	if enemy.Destroyed {
		return
	}
	enemy.Destroyed = true
	enemy.Shrink = nil
	components.Display.Get(entry).Visible = false
	MarkForRemoval(entry)
	events.Emit(entry.World, events.EnemyDestroyed, events.EnemyDestroyedEvent{
		Enemy: entry.Entity(),
		ID:    enemy.ID,
		Kind:  enemy.Kind,
	})
	events.Emit(entry.World, events.EnemyDefeated, events.EnemyDefeatedEvent{
		ID:   enemy.ID,
		Kind: enemy.Kind,
	})
}
