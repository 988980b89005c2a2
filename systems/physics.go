package systems

import (
	"math"

	"github.com/automoto/skyhop/components"
	cfg "github.com/automoto/skyhop/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics applies friction and gravity, then moves each body through
// the collision space.
func UpdatePhysics(ecs *ecs.ECS) {
	dt := cfg.C.TickDelta()
	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		// Freeze in place during the death delay
		if e.HasComponent(components.Death) {
			return
		}
		if !e.HasComponent(components.Object) {
			return
		}

		physics := components.Physics.Get(e)
		if physics.Static {
			return
		}
		obj := components.Object.Get(e)

		if physics.Braking {
			physics.SpeedX = ApplyFriction(physics.SpeedX, cfg.Player.GroundFriction, cfg.Player.FrictionEpsilon, dt)
		}

		if !physics.Flying {
			physics.SpeedY += physics.Gravity * physics.GravityScale * dt
			physics.SpeedY = math.Max(math.Min(physics.SpeedY, physics.MaxFallSpeed), cfg.Physics.MaxRiseSpeed)
		}

		if physics.Flying {
			obj.X += physics.SpeedX * dt
			obj.Y += physics.SpeedY * dt
			obj.Update()
			return
		}

		resolveHorizontalCollision(physics, obj.Object, physics.SpeedX*dt)
		resolveVerticalCollision(physics, obj.Object, physics.SpeedY*dt)
	})
}
