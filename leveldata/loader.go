package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/automoto/gobble/config"
	"github.com/lafriks/go-tiled"
)

// Object group names read from TMX files.
const (
	PlatformsGroup = "platforms"
	SpawnsGroup    = "spawns"
)

// Load parses a TMX file into a Level. Platforms come from rectangle objects
// in the "platforms" group; spawns are objects in the "spawns" group named
// "player", "patrol" or "turret". It takes an fs.FS so callers can pass
// embed.FS or os.DirFS.
func Load(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level := &Level{
		Name:   strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:  float64(levelMap.Width * levelMap.TileWidth),
		Height: float64(levelMap.Height * levelMap.TileHeight),
	}

	hasPlayer := false
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case PlatformsGroup:
			for _, o := range og.Objects {
				if o.Width <= 0 || o.Height <= 0 {
					continue
				}
				level.Platforms = append(level.Platforms, Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			}
		case SpawnsGroup:
			for _, o := range og.Objects {
				name := strings.ToLower(strings.TrimSpace(o.Name))
				if name == "player" {
					level.PlayerSpawn = Point{X: o.X, Y: o.Y}
					hasPlayer = true
					continue
				}
				kind, ok := config.ParseEnemyKind(name)
				if !ok {
					return nil, fmt.Errorf("load TMX %s: unknown spawn %q", tmxPath, o.Name)
				}
				level.Enemies = append(level.Enemies, EnemySpawn{Kind: kind, X: o.X, Y: o.Y})
			}
		}
	}

	if len(level.Platforms) == 0 {
		return nil, fmt.Errorf("load TMX %s: no %q object group with rectangles", tmxPath, PlatformsGroup)
	}
	if !hasPlayer {
		return nil, fmt.Errorf("load TMX %s: no player spawn defined", tmxPath)
	}
	return level, nil
}
