package systems

import (
	"github.com/automoto/skyhop/components"
	"github.com/automoto/skyhop/tags"
	"github.com/yohamta/donburi"
)

// OnCheckpointTrigger stores the checkpoint's spawn position as the
// player's respawn point every time the player enters it.
func OnCheckpointTrigger(w donburi.World, ev TriggerEvent) {
	if ev.Tag != tags.ResolvCheckpoint {
		return
	}
	checkpointEntry, ok := entryOf(ev.Other)
	if !ok || !checkpointEntry.HasComponent(components.Checkpoint) {
		return
	}
	checkpoint := components.Checkpoint.Get(checkpointEntry)

	if !ev.Entered {
		checkpoint.Occupied = false
		return
	}
	checkpoint.Occupied = true

	if !ev.Entry.HasComponent(components.Respawn) {
		return
	}
	SetCheckpoint(ev.Entry, checkpoint.SpawnX, checkpoint.SpawnY, checkpoint.CheckpointID)

	first := !checkpoint.Activated
	checkpoint.Activated = true
	if first {
		ShowBanner(w, "Checkpoint")
		_ = SaveGameProgress(levelIndex(w), components.Respawn.Get(ev.Entry))
	}

	CheckpointReached.Publish(w, CheckpointReachedEvent{
		Entry:        ev.Entry,
		CheckpointID: checkpoint.CheckpointID,
		X:            checkpoint.SpawnX,
		Y:            checkpoint.SpawnY,
		First:        first,
	})
}

// SetCheckpoint overwrites the respawn position.
func SetCheckpoint(e *donburi.Entry, x, y, id float64) {
	respawn := components.Respawn.Get(e)
	respawn.X = x
	respawn.Y = y
	respawn.CheckpointID = id
}

func levelIndex(w donburi.World) int {
	if levelEntry, ok := components.Level.First(w); ok {
		return components.Level.Get(levelEntry).LevelIndex
	}
	return 0
}
