package systems

import (
	"log"

	cfg "github.com/automoto/skyhop/config"
	"github.com/automoto/skyhop/tags"
	"github.com/yohamta/donburi"
)

func logStateChange(w donburi.World, ev StateChangedEvent) {
	if !cfg.Debug.LogStates || !ev.Entry.HasComponent(tags.Player) {
		return
	}
	log.Printf("Player State: %s", ev.To)
}

func logGroundedChange(w donburi.World, ev GroundedChangedEvent) {
	if !cfg.Debug.LogStates {
		return
	}
	if ev.Grounded {
		log.Print("Grounded")
	} else {
		log.Print("Not grounded")
	}
}

func logCheckpoint(w donburi.World, ev CheckpointReachedEvent) {
	log.Printf("Checkpoint %.0f set at (%.0f, %.0f)", ev.CheckpointID, ev.X, ev.Y)
}

func logRespawn(w donburi.World, ev RespawnedEvent) {
	log.Printf("Respawned at (%.0f, %.0f)", ev.X, ev.Y)
}

func logTeleport(w donburi.World, ev TeleportedEvent) {
	log.Printf("Teleported to %q at (%.0f, %.0f)", ev.Name, ev.X, ev.Y)
}
