package systems

import (
	"fmt"

	"github.com/automoto/gobble/components"
	cfg "github.com/automoto/gobble/config"
	"github.com/automoto/gobble/fonts"
	"github.com/automoto/gobble/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the swallow count, spit countdown and defeat progress in
// the top-left corner.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	face := fonts.Regular.Get()
	margin := int(cfg.HUD.Margin)
	lineHeight := face.Metrics().Height.Ceil()

	y := margin + lineHeight
	text.Draw(screen, fmt.Sprintf("Swallowed: %d", player.Swallowed.Count()), face, margin, y, cfg.HUD.TextColor)

	if levelEntry, ok := components.Level.First(e.World); ok {
		ld := components.Level.Get(levelEntry)
		y += lineHeight
		text.Draw(screen, fmt.Sprintf("Defeated: %d/%d", ld.DefeatedCount, ld.TotalEnemies), face, margin, y, cfg.HUD.TextColor)
	}

	if player.Spit.Active {
		y += lineHeight
		c := cfg.HUD.TextColor
		if player.Spit.Remaining <= cfg.Player.SpitWarningFrames {
			c = cfg.HUD.WarningColor
		}
		seconds := float64(player.Spit.Remaining) / float64(cfg.C.TickRate)
		text.Draw(screen, fmt.Sprintf("Spit in %.1fs", seconds), face, margin, y, c)
	}
}
