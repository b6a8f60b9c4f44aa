package main

import (
	"flag"
	"image"
	"log"
	"os"
	"path/filepath"

	"github.com/automoto/gobble/config"
	"github.com/automoto/gobble/fonts"
	"github.com/automoto/gobble/leveldata"
	"github.com/automoto/gobble/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(scene Scene) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scene,
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	levelPath := flag.String("level", "", "Tiled .tmx level to play (default: built-in level)")
	tuningPath := flag.String("tuning", "", "YAML file overriding gameplay tuning")
	watch := flag.Bool("watch", false, "reload the tuning file when it changes")
	debug := flag.Bool("debug", false, "draw collider outlines")
	flag.Parse()

	config.Debug.DrawColliders = *debug

	if *tuningPath != "" {
		if t, err := config.LoadTuning(*tuningPath); err != nil {
			log.Printf("[tuning] %v, using defaults", err)
		} else {
			t.Apply()
			log.Printf("[tuning] loaded %s", *tuningPath)
		}
	}

	var watcher *config.TuningWatcher
	if *watch && *tuningPath != "" {
		w, err := config.WatchTuning(*tuningPath)
		if err != nil {
			log.Printf("[tuning] watch disabled: %v", err)
		} else {
			watcher = w
			defer watcher.Close()
		}
	}

	level := leveldata.Default()
	if *levelPath != "" {
		l, err := leveldata.Load(os.DirFS(filepath.Dir(*levelPath)), filepath.Base(*levelPath))
		if err != nil {
			log.Fatalf("[level] %v", err)
		}
		level = l
	}

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("gobble")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(config.C.TickRate)

	if err := ebiten.RunGame(NewGame(scenes.NewPlatformerScene(level, *tuningPath, watcher))); err != nil {
		log.Fatal(err)
	}
}
