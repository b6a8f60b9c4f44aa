package components

import (
	"github.com/automoto/gobble/config"
	"github.com/yohamta/donburi"
)

// SpitTimer counts down while the player holds swallowed enemies.
type SpitTimer struct {
	Remaining int
	Active    bool
}

// CompanionData is the wave sprite that trails the player.
type CompanionData struct {
	X, Y      float64
	AnchorX   float64 // x at jump takeoff
	AnchorY   float64 // last platform-level y
	Visible   bool
	Animating bool
	Frame     int
}

type PlayerData struct {
	SpawnX, SpawnY float64
	FacingX        float64

	JumpPhase      config.JumpPhase
	JumpPhaseTimer int

	DeathProgress float64
	DeathNotified bool

	Enlarged  bool
	Spit      SpitTimer
	Swallowed SwallowManager
	// LostOnDeath holds the records cleared by the last death until the
	// death notification carries them out.
	LostOnDeath []SwallowRecord

	Companion CompanionData
}

var Player = donburi.NewComponentType[PlayerData]()
