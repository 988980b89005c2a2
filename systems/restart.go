package systems

import (
	"log"

	"github.com/automoto/skyhop/components"
	cfg "github.com/automoto/skyhop/config"
	"github.com/automoto/skyhop/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateRestart restarts the level when the restart action is pressed.
func UpdateRestart(ecs *ecs.ECS) {
	if GetAction(getOrCreateInput(ecs.World), cfg.ActionRestart).JustPressed {
		RestartLevel(ecs.World)
	}
}

// RestartLevel forgets every checkpoint, clears saved progress and sends
// the player back to the level's first spawn point with a fresh timer.
func RestartLevel(w donburi.World) {
	levelEntry, ok := components.Level.First(w)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry).CurrentLevel
	if level == nil || len(level.PlayerSpawns) == 0 {
		return
	}
	spawn := level.PlayerSpawns[0]

	components.Checkpoint.Each(w, func(e *donburi.Entry) {
		cp := components.Checkpoint.Get(e)
		cp.Activated = false
		cp.Occupied = false
	})
	components.FinishLine.Each(w, func(e *donburi.Entry) {
		components.FinishLine.Get(e).Activated = false
	})
	_ = ClearGameProgress()

	var players []*donburi.Entry
	tags.Player.Each(w, func(e *donburi.Entry) {
		players = append(players, e)
	})
	for _, e := range players {
		if e.HasComponent(components.Death) {
			donburi.Remove[components.DeathData](e, components.Death)
		}
		SetCheckpoint(e, spawn.X, spawn.Y, 0)
		RespawnPlayer(w, e)
	}

	StartTimer(w)
	log.Printf("Level %q restarted", level.Name)
}

// RestoreProgress moves the respawn point to a saved checkpoint for the
// current level and respawns the player there.
func RestoreProgress(w donburi.World, progress *SavedGameProgress) bool {
	if progress == nil || progress.LevelIndex != levelIndex(w) {
		return false
	}
	restored := false
	tags.Player.Each(w, func(e *donburi.Entry) {
		SetCheckpoint(e, progress.SpawnX, progress.SpawnY, progress.CheckpointID)
		resetPlayerAtPosition(w, e, progress.SpawnX, progress.SpawnY)
		restored = true
	})
	components.Checkpoint.Each(w, func(e *donburi.Entry) {
		cp := components.Checkpoint.Get(e)
		if cp.CheckpointID == progress.CheckpointID {
			cp.Activated = true
		}
	})
	if restored {
		log.Printf("Restored checkpoint %.0f", progress.CheckpointID)
	}
	return restored
}
