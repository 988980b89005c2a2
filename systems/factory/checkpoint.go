package factory

import (
	"github.com/automoto/skyhop/archetypes"
	"github.com/automoto/skyhop/components"
	cfg "github.com/automoto/skyhop/config"
	"github.com/automoto/skyhop/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCheckpoint creates a checkpoint region. The player respawns standing
// on the region's bottom edge, centered horizontally.
func CreateCheckpoint(ecs *ecs.ECS, x, y, w, h, checkpointID float64) *donburi.Entry {
	checkpoint := archetypes.Checkpoint.Spawn(ecs)
	addToSpace(ecs, newRegion(checkpoint, x, y, w, h, tags.ResolvCheckpoint))

	spawnX, spawnY := CheckpointSpawn(x, y, w, h)
	components.Checkpoint.SetValue(checkpoint, components.CheckpointData{
		CheckpointID: checkpointID,
		SpawnX:       spawnX,
		SpawnY:       spawnY,
	})

	return checkpoint
}

// CheckpointSpawn returns the player's top-left corner for a checkpoint region.
func CheckpointSpawn(x, y, w, h float64) (float64, float64) {
	return x + w/2 - float64(cfg.Player.CollisionWidth)/2, y + h - float64(cfg.Player.CollisionHeight)
}
