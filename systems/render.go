package systems

import (
	"image/color"

	"github.com/automoto/gobble/components"
	cfg "github.com/automoto/gobble/config"
	"github.com/automoto/gobble/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var tintColor = color.RGBA{R: 255, G: 40, B: 40, A: 255}

// view converts world coordinates to screen coordinates.
type view struct {
	offX, offY float64
	minX, maxX float64
	minY, maxY float64
}

func newView(e *ecs.ECS, screen *ebiten.Image) (view, bool) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return view{}, false // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())

	// Culling bounds
	padding := 64.0
	return view{
		offX: width/2 - camera.Position.X,
		offY: height/2 - camera.Position.Y,
		minX: camera.Position.X - width/2 - padding,
		maxX: camera.Position.X + width/2 + padding,
		minY: camera.Position.Y - height/2 - padding,
		maxY: camera.Position.Y + height/2 + padding,
	}, true
}

func (v view) culled(x, y, w, h float64) bool {
	return x+w < v.minX || x > v.maxX || y+h < v.minY || y > v.maxY
}

func (v view) fill(screen *ebiten.Image, x, y, w, h float64, c color.Color) {
	if w <= 0 || h <= 0 || v.culled(x, y, w, h) {
		return
	}
	vector.FillRect(screen, float32(x+v.offX), float32(y+v.offY), float32(w), float32(h), c, false)
}

// DrawLevel renders the classified level geometry.
func DrawLevel(e *ecs.ECS, screen *ebiten.Image) {
	v, ok := newView(e, screen)
	if !ok {
		return
	}
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	g := components.Level.Get(levelEntry).Geometry

	fillRects := func(rects []leveldata.Rect, c color.Color) {
		for _, r := range rects {
			v.fill(screen, r.X, r.Y, r.W, r.H, c)
		}
	}
	fillRects(g.Floors, cfg.HUD.FloorColor)
	fillRects(g.Ceilings, cfg.HUD.CeilingColor)
	fillRects(g.Walls, cfg.HUD.WallColor)
	fillRects(g.OneWay, cfg.HUD.OneWayColor)
}

// DrawEntities renders every visible body as a box colored by its texture and
// scaled around its feet.
func DrawEntities(e *ecs.ECS, screen *ebiten.Image) {
	v, ok := newView(e, screen)
	if !ok {
		return
	}

	components.Display.Each(e.World, func(entry *donburi.Entry) {
		display := components.Display.Get(entry)
		if !display.Visible || !entry.HasComponent(components.Object) {
			return
		}
		o := components.Object.Get(entry)

		var c color.Color = cfg.White
		if known, ok := cfg.HUD.EntityColors[display.Texture]; ok {
			c = known
		}
		if display.Tinted {
			c = tintColor
		}

		w := o.W * display.ScaleX
		h := o.H * display.ScaleY
		x := o.X + (o.W-w)/2
		y := o.Y + o.H - h
		v.fill(screen, x, y, w, h, c)

		if entry.HasComponent(components.Player) {
			drawCompanion(screen, v, components.Player.Get(entry))
		}
	})
}

func drawCompanion(screen *ebiten.Image, v view, player *components.PlayerData) {
	c := player.Companion
	if !c.Visible {
		return
	}
	size := cfg.HUD.CompanionSize
	// Bob by animation frame so the companion visibly animates.
	bob := float64(c.Frame%2) * 2
	x := c.X - size - 2
	if player.FacingX < 0 {
		x = c.X + cfg.Player.CollisionWidth + 2
	}
	v.fill(screen, x, c.Y+cfg.Player.CollisionHeight-size-bob, size, size, cfg.HUD.EntityColors["wave"])
}
