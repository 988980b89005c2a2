package systems

import "github.com/yohamta/donburi/ecs"

// Simulation returns the per-frame gameplay systems in execution order.
// Input polling and pause handling run before these.
func Simulation() []ecs.System {
	return []ecs.System{
		UpdateRestart,
		UpdateTimer,
		UpdateEnemySpawners,
		UpdateFloatingPlatforms,
		UpdateGroundSensors,
		UpdateStates,
		UpdatePlayer,
		UpdateEnemies,
		UpdatePhysics,
		UpdateTriggers,
		UpdateDeaths,
		UpdateEvents,
		UpdateBanner,
		UpdateCamera,
	}
}
