package factory

import (
	"testing"

	"github.com/automoto/skyhop/assets"
	"github.com/automoto/skyhop/components"
	cfg "github.com/automoto/skyhop/config"
	"github.com/automoto/skyhop/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestCheckpointSpawn(t *testing.T) {
	w := float64(cfg.Player.CollisionWidth)
	h := float64(cfg.Player.CollisionHeight)
	cases := []struct {
		name         string
		x, y, cw, ch float64
		wantX, wantY float64
	}{
		{"player_sized", 10, 20, w, h, 10, 20},
		{"wide_and_tall", 100, 50, 64, 80, 100 + 32 - w/2, 50 + 80 - h},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			x, y := CheckpointSpawn(c.x, c.y, c.cw, c.ch)
			if x != c.wantX || y != c.wantY {
				t.Fatalf("spawn = (%v, %v), want (%v, %v)", x, y, c.wantX, c.wantY)
			}
		})
	}
}

func TestCreateLevelAtIndex(t *testing.T) {
	levels := []assets.Level{{Name: "a"}, {Name: "b"}}
	cases := []struct {
		name     string
		index    int
		wantName string
	}{
		{"first", 0, "a"},
		{"second", 1, "b"},
		{"too_large", 5, "a"},
		{"negative", -1, "a"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e := ecs.NewECS(donburi.NewWorld())
			entry, err := CreateLevelAtIndex(e, levels, c.index)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := components.Level.Get(entry).CurrentLevel.Name; got != c.wantName {
				t.Fatalf("level = %q, want %q", got, c.wantName)
			}
		})
	}

	if _, err := CreateLevel(ecs.NewECS(donburi.NewWorld()), nil); err == nil {
		t.Fatal("expected error for no levels")
	}
}

func TestPopulateEmbeddedLevels(t *testing.T) {
	for _, level := range assets.NewLevelLoader().MustLoadLevels() {
		level := level
		t.Run(level.Name, func(t *testing.T) {
			e := ecs.NewECS(donburi.NewWorld())
			player := PopulateLevel(e, &level)

			obj := components.Object.Get(player)
			if obj.Space == nil || components.Probe.Get(player).Space == nil {
				t.Fatal("player or probe not added to the space")
			}
			spawn := level.PlayerSpawns[0]
			if obj.X != spawn.X || obj.Y != spawn.Y {
				t.Fatalf("player at (%v, %v), want (%v, %v)", obj.X, obj.Y, spawn.X, spawn.Y)
			}

			count := func(each func(donburi.World, func(*donburi.Entry))) int {
				n := 0
				each(e.World, func(*donburi.Entry) { n++ })
				return n
			}
			if got := count(tags.Checkpoint.Each); got != len(level.Checkpoints) {
				t.Fatalf("checkpoints = %d, want %d", got, len(level.Checkpoints))
			}
			if got := count(tags.EnemySpawner.Each); got != len(level.EnemySpawns) {
				t.Fatalf("spawners = %d, want %d", got, len(level.EnemySpawns))
			}
			if got := count(tags.Wall.Each); got != len(level.SolidTiles) {
				t.Fatalf("walls = %d, want %d", got, len(level.SolidTiles))
			}
			if _, ok := components.Camera.First(e.World); !ok {
				t.Fatal("no camera")
			}

			for _, o := range obj.Space.Objects() {
				if o.HasTags(tags.ResolvCheckpoint) {
					if _, ok := o.Data.(*donburi.Entry); !ok {
						t.Fatal("checkpoint object has no entry")
					}
				}
			}
		})
	}
}
