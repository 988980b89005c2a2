package components

import "github.com/yohamta/donburi"

type CheckpointData struct {
	CheckpointID float64
	Activated    bool
	// Occupied is true while the player overlaps the region.
	Occupied bool
	SpawnX   float64 // Respawn position (top-left of the player box)
	SpawnY   float64
}

var Checkpoint = donburi.NewComponentType[CheckpointData]()

// RespawnData is the position a character returns to after dying.
type RespawnData struct {
	X            float64
	Y            float64
	CheckpointID float64 // 0 = level start
}

var Respawn = donburi.NewComponentType[RespawnData]()
