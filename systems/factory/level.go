package factory

import (
	"fmt"

	"github.com/automoto/skyhop/archetypes"
	"github.com/automoto/skyhop/assets"
	"github.com/automoto/skyhop/components"
	cfg "github.com/automoto/skyhop/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateLevel(ecs *ecs.ECS, levels []assets.Level) (*donburi.Entry, error) {
	return CreateLevelAtIndex(ecs, levels, 0)
}

// CreateLevelAtIndex creates the level entity for levels[levelIndex]. An out
// of range index falls back to the first level.
func CreateLevelAtIndex(ecs *ecs.ECS, levels []assets.Level, levelIndex int) (*donburi.Entry, error) {
	if len(levels) == 0 {
		return nil, fmt.Errorf("create level: no levels loaded")
	}
	if levelIndex < 0 || levelIndex >= len(levels) {
		levelIndex = 0
	}

	level := archetypes.Level.Spawn(ecs)
	components.Level.Set(level, &components.LevelData{
		Levels:       levels,
		LevelIndex:   levelIndex,
		CurrentLevel: &levels[levelIndex],
	})
	return level, nil
}

// PopulateLevel creates the collision space and every level object, and
// returns the player spawned at the first spawn point.
func PopulateLevel(ecs *ecs.ECS, level *assets.Level) *donburi.Entry {
	CreateSpace(ecs, level.Width, level.Height, cfg.Physics.CellSize, cfg.Physics.CellSize)

	for _, r := range level.SolidTiles {
		CreateWall(ecs, r.X, r.Y, r.Width, r.Height)
	}
	for _, r := range level.Platforms {
		CreatePlatform(ecs, r.X, r.Y, r.Width, r.Height)
	}
	for _, fp := range level.FloatingPlatforms {
		CreateFloatingPlatform(ecs, fp.X, fp.Y, fp.Width, fp.Height, fp.Travel, fp.Duration)
	}
	for _, r := range level.DeadZones {
		CreateDeadZone(ecs, r.X, r.Y, r.Width, r.Height)
	}
	for _, r := range level.Traps {
		CreateTrap(ecs, r.X, r.Y, r.Width, r.Height)
	}
	for _, cp := range level.Checkpoints {
		CreateCheckpoint(ecs, cp.X, cp.Y, cp.Width, cp.Height, cp.CheckpointID)
	}
	for _, tp := range level.Teleporters {
		CreateTeleporter(ecs, tp.X, tp.Y, tp.Width, tp.Height, tp.Name, tp.DestX, tp.DestY)
	}
	for _, r := range level.FinishLines {
		CreateFinishLine(ecs, r.X, r.Y, r.Width, r.Height)
	}
	for _, es := range level.EnemySpawns {
		CreateEnemySpawner(ecs, es)
	}

	spawn := level.PlayerSpawns[0]
	player := CreatePlayer(ecs, spawn.X, spawn.Y)
	CreateCamera(ecs, spawn.X, spawn.Y)
	return player
}
