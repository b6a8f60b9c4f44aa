package leveldata

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/automoto/gobble/config"
)

const testTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="40" height="20" tilewidth="16" tileheight="16" infinite="0" nextlayerid="3" nextobjectid="7">
 <objectgroup id="1" name="platforms">
  <object id="1" x="0" y="304" width="640" height="16"/>
  <object id="2" x="100" y="200" width="96" height="12"/>
 </objectgroup>
 <objectgroup id="2" name="spawns">
  <object id="3" name="player" x="32" y="280">
   <point/>
  </object>
  <object id="4" name="patrol" x="200" y="284">
   <point/>
  </object>
  <object id="5" name="Turret" x="400" y="280">
   <point/>
  </object>
 </objectgroup>
</map>
`

func TestLoad(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/arena.tmx": {Data: []byte(testTMX)},
	}

	level, err := Load(fsys, "levels/arena.tmx")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if level.Name != "arena" {
		t.Errorf("Name = %q, want arena", level.Name)
	}
	if level.Width != 640 || level.Height != 320 {
		t.Errorf("size = %vx%v, want 640x320", level.Width, level.Height)
	}
	if len(level.Platforms) != 2 {
		t.Fatalf("platforms = %d, want 2", len(level.Platforms))
	}
	if level.Platforms[1] != (Rect{X: 100, Y: 200, W: 96, H: 12}) {
		t.Errorf("platform[1] = %+v", level.Platforms[1])
	}
	if level.PlayerSpawn != (Point{X: 32, Y: 280}) {
		t.Errorf("player spawn = %+v", level.PlayerSpawn)
	}
	if len(level.Enemies) != 2 {
		t.Fatalf("enemies = %d, want 2", len(level.Enemies))
	}
	if level.Enemies[0].Kind != config.EnemyPatrol || level.Enemies[1].Kind != config.EnemyTurret {
		t.Errorf("enemy kinds = %v, %v", level.Enemies[0].Kind, level.Enemies[1].Kind)
	}
}

func TestLoadErrors(t *testing.T) {
	noPlayer := strings.Replace(testTMX, `name="player"`, `name="patrol"`, 1)
	unknown := strings.Replace(testTMX, `name="patrol"`, `name="dragon"`, 1)

	tests := []struct {
		name string
		data string
		want string
	}{
		{"missing player", noPlayer, "no player spawn"},
		{"unknown spawn", unknown, "unknown spawn"},
		{"not xml", "nope", "load TMX"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fstest.MapFS{"l.tmx": {Data: []byte(tt.data)}}
			_, err := Load(fsys, "l.tmx")
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(fstest.MapFS{}, "missing.tmx"); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
