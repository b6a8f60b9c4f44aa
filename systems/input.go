package systems

import (
	"github.com/automoto/gobble/components"
	cfg "github.com/automoto/gobble/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInput polls the keyboard and updates the Input component.
// Must run BEFORE UpdatePlayer in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
	}
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// PlayerInputs is the per-tick input snapshot the player state machine reads.
type PlayerInputs struct {
	Left, Right   bool
	Hide          bool
	Inhale        bool
	JumpPressed   bool // fresh press this tick
	AttackPressed bool // fresh press this tick
}

func readPlayerInputs(input *components.InputData) PlayerInputs {
	return PlayerInputs{
		Left:          GetAction(input, cfg.ActionMoveLeft).Pressed,
		Right:         GetAction(input, cfg.ActionMoveRight).Pressed,
		Hide:          GetAction(input, cfg.ActionHide).Pressed,
		Inhale:        GetAction(input, cfg.ActionInhale).Pressed,
		JumpPressed:   GetAction(input, cfg.ActionJump).JustPressed,
		AttackPressed: GetAction(input, cfg.ActionAttack).JustPressed,
	}
}
