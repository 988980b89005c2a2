package systems

import (
	"math"
	"testing"

	"github.com/automoto/skyhop/assets"
	"github.com/automoto/skyhop/components"
	cfg "github.com/automoto/skyhop/config"
	"github.com/automoto/skyhop/systems/factory"
	"github.com/automoto/skyhop/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func TestSpawnerReleasesOnce(t *testing.T) {
	tw := newTestWorld(t)
	factory.CreateEnemySpawner(tw.ecs, assets.EnemySpawn{X: 400, Y: 200, Delay: 0.5})

	count := func() int {
		n := 0
		tags.Enemy.Each(tw.ecs.World, func(*donburi.Entry) { n++ })
		return n
	}

	spawnedAt := 0
	for frame := 1; frame <= 90; frame++ {
		UpdateEnemySpawners(tw.ecs)
		if spawnedAt == 0 && count() > 0 {
			spawnedAt = frame
		}
	}
	if spawnedAt != 30 {
		t.Fatalf("spawned on frame %d, want 30", spawnedAt)
	}
	if n := count(); n != 1 {
		t.Fatalf("enemies = %d, want 1", n)
	}

	enemyEntry, _ := tags.Enemy.First(tw.ecs.World)
	enemy := components.Enemy.Get(enemyEntry)
	if enemy.Speed != cfg.Enemy.Speed || enemy.StopDistance != cfg.Enemy.StopDistance {
		t.Fatalf("enemy = %+v, want config defaults", enemy)
	}
}

func TestChaseVelocity(t *testing.T) {
	target := resolv.NewObject(100, 0, 10, 10)
	cases := []struct {
		name        string
		x, y        float64
		wantHolding bool
	}{
		{"far_left", 0, 0, false},
		{"far_above", 100, -200, false},
		{"inside_stop", 80, 0, true},
		{"on_top", 100, 0, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			from := resolv.NewObject(c.x, c.y, 10, 10)
			vx, vy, holding := chaseVelocity(from, target, 60, 32)
			if holding != c.wantHolding {
				t.Fatalf("holding = %t, want %t", holding, c.wantHolding)
			}
			speed := math.Hypot(vx, vy)
			if holding && speed != 0 {
				t.Fatalf("holding with speed %v", speed)
			}
			if !holding && math.Abs(speed-60) > 1e-9 {
				t.Fatalf("speed = %v, want 60", speed)
			}
		})
	}
}

func TestEnemyStopsAtDistance(t *testing.T) {
	tw := newTestWorld(t)
	tw.settle(t)
	body := tw.object()
	cx, cy := body.X+body.W/2, body.Y+body.H/2
	enemyEntry := factory.CreateEnemy(tw.ecs, cx+150, cy, 60, 20)
	enemy := components.Object.Get(enemyEntry)

	for i := 0; i < 300; i++ {
		UpdateEnemies(tw.ecs)
		UpdatePhysics(tw.ecs)
	}

	dist := math.Hypot(enemy.X+enemy.W/2-cx, enemy.Y+enemy.H/2-cy)
	if dist > 20+1 || dist < 20-1 {
		t.Fatalf("distance = %v, want about 20", dist)
	}
	if s := components.State.Get(enemyEntry).CurrentState; s != cfg.EnemyHolding {
		t.Fatalf("state = %s, want holding", s)
	}
}
