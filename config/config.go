package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the layer every entity and renderer lives on.
const Default ecs.LayerID = 0

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	MoveSpeed    float64
	JumpSpeed    float64
	RiseEpsilon  float64 // SpeedY below -RiseEpsilon counts as rising
	Gravity      float64
	MaxFallSpeed float64

	// State durations (frames)
	AttackFrames       int
	JumpStartFrames    int
	JumpLandingFrames  int
	DeathFrames        int
	SpitCountdown      int
	SpitWarningFrames  int
	SpitFlashInterval  int
	CompanionAnimSpeed int // ticks per companion frame

	// Swallowing
	EnlargedScale float64
	InhaleRange   float64 // horizontal reach in front of the player
	InhaleBand    float64 // vertical half-height of the suction area
	SuctionSpeed  float64 // pixels per tick an enemy is pulled

	// Dimensions
	CollisionWidth  float64
	CollisionHeight float64
}

// PatrolConfig contains configuration for the edge-detecting patroller
type PatrolConfig struct {
	Speed      float64
	LedgeAhead float64
	LedgeBelow float64
	TurnFrames int
	RollFactor float64 // radians of roll per pixel travelled
	Gravity    float64
	Width      float64
	Height     float64
}

// TurretConfig contains configuration for the stationary shooter
type TurretConfig struct {
	RangeY   float64 // vertical band half-height in which the player is tracked
	Cooldown int     // frames after the previous bolt was destroyed
	Width    float64
	Height   float64
}

// EnemyConfig contains values shared by every enemy archetype
type EnemyConfig struct {
	StunFrames  int
	DeathFrames int

	Patrol PatrolConfig
	Turret TurretConfig
}

// BoltConfig configures the turret projectile
type BoltConfig struct {
	Speed  float64
	Width  float64
	Height float64
}

// WaveConfig configures the player's default attack
type WaveConfig struct {
	Speed       float64
	Lifetime    int     // frames
	MaxDistance float64 // pixels from origin
	Width       float64
	Height      float64
	WobbleAmp   float64
	WobbleFreq  float64 // radians per frame
}

// SpoutConfig configures the bouncing attack fired after swallowing
type SpoutConfig struct {
	Speed       float64
	LaunchSpeed float64 // initial vertical velocity, negative is up
	Gravity     float64
	MaxFall     float64
	BounceX     float64
	BounceY     float64
	Width       float64
	Height      float64
}

// ProjectileConfig groups the three projectile kinds
type ProjectileConfig struct {
	Bolt  BoltConfig
	Wave  WaveConfig
	Spout SpoutConfig
}

// PhysicsConfig contains physics-service configuration values
type PhysicsConfig struct {
	CellSize        int
	OneWayTolerance float64 // pixels above a platform top that still count as "from above"
	OutOfBoundsPad  float64 // projectiles further than this outside the level are destroyed
}

// LevelConfig contains geometry classification values
type LevelConfig struct {
	EdgeTolerance float64
}

// CameraConfig contains camera follow values
type CameraConfig struct {
	FollowSmoothing float64
}

// HUDConfig contains HUD colors and layout
type HUDConfig struct {
	Margin        float64
	TextColor     color.RGBA
	WarningColor  color.RGBA
	FloorColor    color.RGBA
	CeilingColor  color.RGBA
	WallColor     color.RGBA
	OneWayColor   color.RGBA
	EntityColors  map[string]color.RGBA
	CompanionSize float64
}

// PauseConfig contains pause overlay configuration
type PauseConfig struct {
	OverlayColor color.RGBA
	TextColor    color.RGBA
	Title        string
}

// LevelCompleteConfig contains level complete overlay configuration
type LevelCompleteConfig struct {
	OverlayColor color.RGBA
	TitleColor   color.RGBA
	TextColor    color.RGBA
	TitleY       float64
	MessageY     float64
	Title        string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	DrawColliders bool
}

// Config holds general game configuration
type Config struct {
	Width    int
	Height   int
	TickRate int
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Enemy EnemyConfig
var Projectile ProjectileConfig
var Physics PhysicsConfig
var Level LevelConfig
var Camera CameraConfig
var HUD HUDConfig
var Pause PauseConfig
var LevelComplete LevelCompleteConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	Gray         = color.RGBA{R: 110, G: 110, B: 120, A: 255}
	DarkGray     = color.RGBA{R: 60, G: 60, B: 70, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// Direction constants for facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	Reset()
}

// Reset restores every tunable to its built-in default.
func Reset() {
	C = &Config{
		Width:    640,
		Height:   360,
		TickRate: 60,
	}

	Physics = PhysicsConfig{
		CellSize:        16,
		OneWayTolerance: 6,
		OutOfBoundsPad:  32,
	}

	Player = PlayerConfig{
		MoveSpeed:    2.5,
		JumpSpeed:    9.5,
		RiseEpsilon:  0.1,
		Gravity:      0.45,
		MaxFallSpeed: 9,

		AttackFrames:       18,
		JumpStartFrames:    6,
		JumpLandingFrames:  8,
		DeathFrames:        45,
		SpitCountdown:      600, // 10 seconds at 60fps
		SpitWarningFrames:  180,
		SpitFlashInterval:  6,
		CompanionAnimSpeed: 8,

		EnlargedScale: 1.5,
		InhaleRange:   96,
		InhaleBand:    32,
		SuctionSpeed:  2.5,

		CollisionWidth:  24,
		CollisionHeight: 24,
	}

	Enemy = EnemyConfig{
		StunFrames:  180,
		DeathFrames: 30,
		Patrol: PatrolConfig{
			Speed:      1.2,
			LedgeAhead: 2,
			LedgeBelow: 4,
			TurnFrames: 20,
			RollFactor: 0.08,
			Gravity:    0.45,
			Width:      20,
			Height:     20,
		},
		Turret: TurretConfig{
			RangeY:   40,
			Cooldown: 90,
			Width:    24,
			Height:   24,
		},
	}

	Projectile = ProjectileConfig{
		Bolt: BoltConfig{
			Speed:  4,
			Width:  10,
			Height: 6,
		},
		Wave: WaveConfig{
			Speed:       5,
			Lifetime:    40,
			MaxDistance: 160,
			Width:       20,
			Height:      24,
			WobbleAmp:   0.25,
			WobbleFreq:  0.5,
		},
		Spout: SpoutConfig{
			Speed:       5,
			LaunchSpeed: -3,
			Gravity:     0.3,
			MaxFall:     8,
			BounceX:     1.0,
			BounceY:     0.6,
			Width:       16,
			Height:      16,
		},
	}

	Level = LevelConfig{
		EdgeTolerance: 8,
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.15,
	}

	HUD = HUDConfig{
		Margin:       8,
		TextColor:    White,
		WarningColor: LightRed,
		FloorColor:   Gray,
		CeilingColor: DarkGray,
		WallColor:    Gray,
		OneWayColor:  LightBlue,
		EntityColors: map[string]color.RGBA{
			"player":          Yellow,
			"patrol":          Orange,
			"patrol-stunned":  BrightOrange,
			"turret":          Purple,
			"turret-tracking": Magenta,
			"turret-stunned":  LightBlue,
			"bolt":            Red,
			"wave":            LightGreen,
			"spout":           Green,
		},
		CompanionSize: 8,
	}

	Pause = PauseConfig{
		OverlayColor: BlackOverlay,
		TextColor:    White,
		Title:        "PAUSED",
	}

	LevelComplete = LevelCompleteConfig{
		OverlayColor: BlackOverlay,
		TitleColor:   BrightOrange,
		TextColor:    White,
		TitleY:       140,
		MessageY:     180,
		Title:        "LEVEL COMPLETE",
	}

	Debug = DebugConfig{}
}
