package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning is an optional override file for gameplay constants. Every field is
// optional; only values present in the file replace the defaults.
//
// Example:
//
//	player:
//	  jumpSpeed: 10
//	  spitCountdown: 480
//	enemy:
//	  stunFrames: 120
//	  turret:
//	    cooldown: 60
type Tuning struct {
	Player     PlayerTuning     `yaml:"player"`
	Enemy      EnemyTuning      `yaml:"enemy"`
	Projectile ProjectileTuning `yaml:"projectile"`
}

type PlayerTuning struct {
	MoveSpeed         *float64 `yaml:"moveSpeed"`
	JumpSpeed         *float64 `yaml:"jumpSpeed"`
	Gravity           *float64 `yaml:"gravity"`
	AttackFrames      *int     `yaml:"attackFrames"`
	JumpStartFrames   *int     `yaml:"jumpStartFrames"`
	JumpLandingFrames *int     `yaml:"jumpLandingFrames"`
	DeathFrames       *int     `yaml:"deathFrames"`
	SpitCountdown     *int     `yaml:"spitCountdown"`
	SpitWarningFrames *int     `yaml:"spitWarningFrames"`
	EnlargedScale     *float64 `yaml:"enlargedScale"`
	InhaleRange       *float64 `yaml:"inhaleRange"`
	SuctionSpeed      *float64 `yaml:"suctionSpeed"`
}

type EnemyTuning struct {
	StunFrames  *int `yaml:"stunFrames"`
	DeathFrames *int `yaml:"deathFrames"`
	Patrol      struct {
		Speed      *float64 `yaml:"speed"`
		TurnFrames *int     `yaml:"turnFrames"`
	} `yaml:"patrol"`
	Turret struct {
		RangeY   *float64 `yaml:"rangeY"`
		Cooldown *int     `yaml:"cooldown"`
	} `yaml:"turret"`
}

type ProjectileTuning struct {
	Bolt struct {
		Speed *float64 `yaml:"speed"`
	} `yaml:"bolt"`
	Wave struct {
		Speed       *float64 `yaml:"speed"`
		Lifetime    *int     `yaml:"lifetime"`
		MaxDistance *float64 `yaml:"maxDistance"`
	} `yaml:"wave"`
	Spout struct {
		Speed   *float64 `yaml:"speed"`
		Gravity *float64 `yaml:"gravity"`
		BounceY *float64 `yaml:"bounceY"`
	} `yaml:"spout"`
}

// LoadTuning reads and validates a YAML tuning file.
func LoadTuning(path string) (*Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tuning file: %w", err)
	}

	var t Tuning
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse tuning file: %w", err)
	}

	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tuning file %s: %w", path, err)
	}
	return &t, nil
}

// Validate rejects values the simulation cannot run with.
func (t *Tuning) Validate() error {
	positiveInts := map[string]*int{
		"player.attackFrames":      t.Player.AttackFrames,
		"player.jumpStartFrames":   t.Player.JumpStartFrames,
		"player.jumpLandingFrames": t.Player.JumpLandingFrames,
		"player.deathFrames":       t.Player.DeathFrames,
		"player.spitCountdown":     t.Player.SpitCountdown,
		"enemy.stunFrames":         t.Enemy.StunFrames,
		"enemy.deathFrames":        t.Enemy.DeathFrames,
		"enemy.patrol.turnFrames":  t.Enemy.Patrol.TurnFrames,
		"projectile.wave.lifetime": t.Projectile.Wave.Lifetime,
	}
	for name, v := range positiveInts {
		if v != nil && *v <= 0 {
			return fmt.Errorf("%s must be positive, got %d", name, *v)
		}
	}

	positiveFloats := map[string]*float64{
		"player.moveSpeed":            t.Player.MoveSpeed,
		"player.jumpSpeed":            t.Player.JumpSpeed,
		"player.enlargedScale":        t.Player.EnlargedScale,
		"enemy.patrol.speed":          t.Enemy.Patrol.Speed,
		"projectile.bolt.speed":       t.Projectile.Bolt.Speed,
		"projectile.wave.speed":       t.Projectile.Wave.Speed,
		"projectile.wave.maxDistance": t.Projectile.Wave.MaxDistance,
		"projectile.spout.speed":      t.Projectile.Spout.Speed,
	}
	for name, v := range positiveFloats {
		if v != nil && *v <= 0 {
			return fmt.Errorf("%s must be positive, got %g", name, *v)
		}
	}

	if t.Enemy.Turret.Cooldown != nil && *t.Enemy.Turret.Cooldown < 0 {
		return fmt.Errorf("enemy.turret.cooldown must not be negative, got %d", *t.Enemy.Turret.Cooldown)
	}
	if w := t.Player.SpitWarningFrames; w != nil && *w < 0 {
		return fmt.Errorf("player.spitWarningFrames must not be negative, got %d", *w)
	}
	if b := t.Projectile.Spout.BounceY; b != nil && (*b < 0 || *b > 1) {
		return fmt.Errorf("projectile.spout.bounceY must be within [0,1], got %g", *b)
	}
	return nil
}

// Apply writes the supplied overrides into the global configuration.
func (t *Tuning) Apply() {
	setFloat(&Player.MoveSpeed, t.Player.MoveSpeed)
	setFloat(&Player.JumpSpeed, t.Player.JumpSpeed)
	setFloat(&Player.Gravity, t.Player.Gravity)
	setInt(&Player.AttackFrames, t.Player.AttackFrames)
	setInt(&Player.JumpStartFrames, t.Player.JumpStartFrames)
	setInt(&Player.JumpLandingFrames, t.Player.JumpLandingFrames)
	setInt(&Player.DeathFrames, t.Player.DeathFrames)
	setInt(&Player.SpitCountdown, t.Player.SpitCountdown)
	setInt(&Player.SpitWarningFrames, t.Player.SpitWarningFrames)
	setFloat(&Player.EnlargedScale, t.Player.EnlargedScale)
	setFloat(&Player.InhaleRange, t.Player.InhaleRange)
	setFloat(&Player.SuctionSpeed, t.Player.SuctionSpeed)

	setInt(&Enemy.StunFrames, t.Enemy.StunFrames)
	setInt(&Enemy.DeathFrames, t.Enemy.DeathFrames)
	setFloat(&Enemy.Patrol.Speed, t.Enemy.Patrol.Speed)
	setInt(&Enemy.Patrol.TurnFrames, t.Enemy.Patrol.TurnFrames)
	setFloat(&Enemy.Turret.RangeY, t.Enemy.Turret.RangeY)
	setInt(&Enemy.Turret.Cooldown, t.Enemy.Turret.Cooldown)

	setFloat(&Projectile.Bolt.Speed, t.Projectile.Bolt.Speed)
	setFloat(&Projectile.Wave.Speed, t.Projectile.Wave.Speed)
	setInt(&Projectile.Wave.Lifetime, t.Projectile.Wave.Lifetime)
	setFloat(&Projectile.Wave.MaxDistance, t.Projectile.Wave.MaxDistance)
	setFloat(&Projectile.Spout.Speed, t.Projectile.Spout.Speed)
	setFloat(&Projectile.Spout.Gravity, t.Projectile.Spout.Gravity)
	setFloat(&Projectile.Spout.BounceY, t.Projectile.Spout.BounceY)
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}
