package systems

import (
	"github.com/automoto/skyhop/components"
	"github.com/automoto/skyhop/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateGroundSensors samples every ground probe and records enter/exit edges.
// Must run before UpdatePlayer.
func UpdateGroundSensors(ecs *ecs.ECS) {
	components.GroundSensor.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Object) || !e.HasComponent(components.Probe) {
			return
		}
		ground := components.GroundSensor.Get(e)
		ground.Entered = false
		ground.Exited = false

		if e.HasComponent(components.Physics) && components.Physics.Get(e).Static {
			return
		}

		obj := components.Object.Get(e)
		probe := components.Probe.Get(e)
		if obj.Object == nil || probe.Object == nil {
			return
		}

		rising := e.HasComponent(components.Physics) && components.Physics.Get(e).SpeedY < 0
		grounded, contacts := senseGround(obj.Object, probe.Object, ground, rising)
		ground.Contacts = contacts

		ground.WasGrounded = ground.Grounded
		ground.Grounded = grounded
		ground.Entered = ground.Grounded && !ground.WasGrounded
		ground.Exited = !ground.Grounded && ground.WasGrounded

		if ground.Entered || ground.Exited {
			GroundedChanged.Publish(ecs.World, GroundedChangedEvent{Entry: e, Grounded: ground.Grounded})
		}
	})
}

// ProbeCenter returns the probe circle's center for a body.
func ProbeCenter(body *resolv.Object, ground *components.GroundSensorData) (float64, float64) {
	return body.X + body.W/2 + ground.OffsetX, body.Y + body.H + ground.OffsetY
}

// senseGround moves the probe over the feet circle and counts the ground
// colliders it overlaps. One-way platforms only count when the body is not
// rising and its feet are at or above the platform top.
func senseGround(body, probe *resolv.Object, ground *components.GroundSensorData, rising bool) (bool, int) {
	cx, cy := ProbeCenter(body, ground)
	r := ground.Radius

	probe.X = cx - r
	probe.Y = cy - r
	probe.W = r * 2
	probe.H = r * 2
	probe.Update()

	check := probe.Check(0, 0, ground.Mask...)
	if check == nil {
		return false, 0
	}

	contacts := 0
	for _, o := range check.ObjectsByTags(ground.Mask...) {
		if o == body {
			continue
		}
		if o.HasTags(tags.ResolvPlatform) && !o.HasTags(tags.ResolvSolid) &&
			(rising || body.Y+body.H > o.Y+platformTolerance) {
			continue
		}
		if circleIntersectsRect(cx, cy, r, o.X, o.Y, o.W, o.H) {
			contacts++
		}
	}
	return contacts > 0, contacts
}

func circleIntersectsRect(cx, cy, r, x, y, w, h float64) bool {
	nearestX := clamp(cx, x, x+w)
	nearestY := clamp(cy, y, y+h)
	dx := cx - nearestX
	dy := cy - nearestY
	return dx*dx+dy*dy <= r*r
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
