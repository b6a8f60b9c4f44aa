package scenes

import (
	"image/color"
	"log"
	"sync"

	cfg "github.com/automoto/gobble/config"
	"github.com/automoto/gobble/leveldata"
	"github.com/automoto/gobble/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type PlatformerScene struct {
	ecs    *ecs.ECS
	level  *leveldata.Level
	tuning string
	reload *cfg.TuningWatcher
	once   sync.Once
}

// NewPlatformerScene creates a scene playing level. tuningPath and reload are
// optional; when reload is set, tuning changes are re-applied between ticks.
func NewPlatformerScene(level *leveldata.Level, tuningPath string, reload *cfg.TuningWatcher) *PlatformerScene {
	return &PlatformerScene{level: level, tuning: tuningPath, reload: reload}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	ps.pollTuning()
	ps.ecs.Update()
}

// pollTuning drains the watcher without blocking so the simulation stays on
// the game goroutine.
func (ps *PlatformerScene) pollTuning() {
	if ps.reload == nil {
		return
	}
	for {
		select {
		case _, ok := <-ps.reload.Events:
			if !ok {
				ps.reload = nil
				return
			}
			t, err := cfg.LoadTuning(ps.tuning)
			if err != nil {
				log.Printf("[tuning] reload failed, keeping current values: %v", err)
				continue
			}
			t.Apply()
			log.Printf("[tuning] reloaded %s", ps.tuning)
		case err, ok := <-ps.reload.Errors:
			if ok {
				log.Printf("[tuning] watcher error: %v", err)
			}
		default:
			return
		}
	}
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlatformerScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePause)

	// Game systems wrapped with pause and level complete checks
	for _, system := range systems.GameplaySystems() {
		ecs.AddSystem(systems.WithGameplayChecks(system))
	}

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawEntities)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawPause)
	ecs.AddRenderer(cfg.Default, systems.DrawLevelComplete)

	ps.ecs = ecs
	systems.SetupLevel(ps.ecs, ps.level)
}
