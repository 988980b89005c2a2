package systems

import (
	"github.com/automoto/skyhop/components"
	cfg "github.com/automoto/skyhop/config"
	"github.com/automoto/skyhop/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// riderTolerance is how far above a platform a body's feet may be and still
// ride it.
const riderTolerance = 2.0

// UpdateFloatingPlatforms advances each platform's tween and carries
// anything standing on it. Must run before UpdateGroundSensors.
func UpdateFloatingPlatforms(ecs *ecs.ECS) {
	dt := float32(cfg.C.TickDelta())

	tags.FloatingPlatform.Each(ecs.World, func(e *donburi.Entry) {
		tw := components.Tween.Get(e)
		obj := components.Object.Get(e)

		riders := ridersOf(ecs.World, obj.Object)

		y, _, seqDone := tw.Update(dt)
		dy := float64(y) - obj.Y
		obj.Y = float64(y)
		obj.Update()
		if seqDone {
			tw.Reset()
		}

		for _, rider := range riders {
			rider.Y += dy
			rider.Update()
		}
	})
}

// ridersOf returns the bodies standing on top of platform.
func ridersOf(w donburi.World, platform *resolv.Object) []*resolv.Object {
	var riders []*resolv.Object
	components.Physics.Each(w, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		if physics.Flying || physics.Static || !e.HasComponent(components.Object) {
			return
		}
		body := components.Object.Get(e).Object
		if body == nil || physics.SpeedY < 0 {
			return
		}
		bottom := body.Y + body.H
		if spansOverlap(body.X, body.W, platform.X, platform.W) &&
			bottom >= platform.Y-riderTolerance && bottom <= platform.Y+riderTolerance {
			riders = append(riders, body)
		}
	})
	return riders
}
