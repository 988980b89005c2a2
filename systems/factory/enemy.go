package factory

import (
	"github.com/automoto/skyhop/archetypes"
	"github.com/automoto/skyhop/assets"
	"github.com/automoto/skyhop/components"
	cfg "github.com/automoto/skyhop/config"
	"github.com/automoto/skyhop/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEnemySpawner creates a spawner that releases one chaser after its
// delay. Zero values in spawn fall back to config.Enemy.
func CreateEnemySpawner(ecs *ecs.ECS, spawn assets.EnemySpawn) *donburi.Entry {
	spawner := archetypes.EnemySpawner.Spawn(ecs)

	delay := spawn.Delay
	if delay == 0 {
		delay = cfg.Enemy.SpawnDelay
	}
	components.EnemySpawner.SetValue(spawner, components.EnemySpawnerData{
		Delay:        delay,
		X:            spawn.X,
		Y:            spawn.Y,
		Speed:        orDefault(spawn.Speed, cfg.Enemy.Speed),
		StopDistance: orDefault(spawn.StopDistance, cfg.Enemy.StopDistance),
	})
	return spawner
}

// CreateEnemy spawns a flying chaser centered on x, y.
func CreateEnemy(ecs *ecs.ECS, x, y, speed, stopDistance float64) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)

	size := cfg.Enemy.Size
	addToSpace(ecs, newRegion(enemy, x-size/2, y-size/2, size, size, "character", tags.ResolvEnemy))

	components.Enemy.SetValue(enemy, components.EnemyData{
		Speed:        speed,
		StopDistance: stopDistance,
		Lethal:       cfg.Enemy.Lethal,
	})
	components.Physics.SetValue(enemy, components.PhysicsData{
		Flying: true,
	})
	components.State.SetValue(enemy, components.StateData{
		CurrentState:  cfg.EnemyWaiting,
		PreviousState: cfg.StateNone,
	})
	components.Hazard.SetValue(enemy, components.HazardData{
		Kind: tags.ResolvEnemy,
	})

	return enemy
}

func orDefault(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}
