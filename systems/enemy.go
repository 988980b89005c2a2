package systems

import (
	"log"
	"math"

	"github.com/automoto/skyhop/components"
	cfg "github.com/automoto/skyhop/config"
	"github.com/automoto/skyhop/systems/factory"
	"github.com/automoto/skyhop/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEnemySpawners releases each spawner's enemy once its delay has passed.
func UpdateEnemySpawners(ecs *ecs.ECS) {
	dt := cfg.C.TickDelta()
	var ready []*donburi.Entry
	components.EnemySpawner.Each(ecs.World, func(e *donburi.Entry) {
		spawner := components.EnemySpawner.Get(e)
		if spawner.Spawned {
			return
		}
		spawner.Elapsed += dt
		if spawner.Elapsed >= spawner.Delay-bufferSlack {
			ready = append(ready, e)
		}
	})

	// Spawning creates entities, so it happens outside Each.
	for _, e := range ready {
		spawner := components.EnemySpawner.Get(e)
		spawner.Spawned = true
		enemy := factory.CreateEnemy(ecs, spawner.X, spawner.Y, spawner.Speed, spawner.StopDistance)
		components.Enemy.Get(enemy).Spawner = e
		log.Printf("Enemy spawned at (%.0f, %.0f)", spawner.X, spawner.Y)
	}
}

// UpdateEnemies steers every enemy toward the first player and holds it in
// place once it is within its stop distance.
func UpdateEnemies(ecs *ecs.ECS) {
	var target *resolv.Object
	if playerEntry, ok := tags.Player.First(ecs.World); ok && !playerEntry.HasComponent(components.Death) {
		target = components.Object.Get(playerEntry).Object
	}

	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)

		if target == nil {
			physics.SpeedX, physics.SpeedY = 0, 0
			setState(ecs.World, e, cfg.EnemyWaiting)
			return
		}

		vx, vy, holding := chaseVelocity(obj.Object, target, enemy.Speed, enemy.StopDistance)
		physics.SpeedX, physics.SpeedY = vx, vy
		if holding {
			setState(ecs.World, e, cfg.EnemyHolding)
		} else {
			setState(ecs.World, e, cfg.EnemyChasing)
		}
	})
}

// chaseVelocity returns the velocity that moves from's center toward to's
// center at speed, or zero and true once within stop distance.
func chaseVelocity(from, to *resolv.Object, speed, stop float64) (float64, float64, bool) {
	dx := (to.X + to.W/2) - (from.X + from.W/2)
	dy := (to.Y + to.H/2) - (from.Y + from.H/2)
	dist := math.Hypot(dx, dy)
	if dist <= stop || dist == 0 {
		return 0, 0, true
	}
	return dx / dist * speed, dy / dist * speed, false
}
