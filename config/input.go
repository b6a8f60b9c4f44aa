package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionAttack
	ActionInhale
	ActionHide
	ActionPause
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the keys bound to an action
type InputBinding struct {
	Keys []ebiten.Key
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionMoveLeft:  {Keys: []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA}},
			ActionMoveRight: {Keys: []ebiten.Key{ebiten.KeyRight, ebiten.KeyD}},
			ActionJump:      {Keys: []ebiten.Key{ebiten.KeyX, ebiten.KeyUp, ebiten.KeyW}},
			ActionAttack:    {Keys: []ebiten.Key{ebiten.KeyZ, ebiten.KeyJ}},
			ActionInhale:    {Keys: []ebiten.Key{ebiten.KeyC, ebiten.KeyK}},
			ActionHide:      {Keys: []ebiten.Key{ebiten.KeyDown, ebiten.KeyS}},
			ActionPause:     {Keys: []ebiten.Key{ebiten.KeyEscape, ebiten.KeyP}},
		},
	}
}
