package systems

import (
	"math"

	"github.com/automoto/skyhop/components"
	"github.com/automoto/skyhop/tags"
	"github.com/solarlune/resolv"
)

// platformTolerance lets a body that sank slightly into a one-way platform
// still land on it.
const platformTolerance = 2.0

// resolveHorizontalCollision moves object by dx, stopping flush against solids.
func resolveHorizontalCollision(physics *components.PhysicsData, object *resolv.Object, dx float64) {
	if dx == 0 {
		return
	}

	allowed := dx
	if check := object.Check(dx, 0, tags.ResolvSolid); check != nil {
		for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
			if !spansOverlap(object.Y, object.H, solid.Y, solid.H) {
				continue
			}
			if dx > 0 && object.X+object.W <= solid.X {
				allowed = math.Min(allowed, solid.X-(object.X+object.W))
			} else if dx < 0 && object.X >= solid.X+solid.W {
				allowed = math.Max(allowed, solid.X+solid.W-object.X)
			}
		}
	}

	if allowed != dx {
		physics.SpeedX = 0
	}
	object.X += allowed
	object.Update()
}

// resolveVerticalCollision moves object by dy. Solids block both ways;
// platforms only catch a body falling onto them from above.
func resolveVerticalCollision(physics *components.PhysicsData, object *resolv.Object, dy float64) {
	physics.OnGround = false
	if dy == 0 {
		return
	}

	allowed := dy
	landed := false
	if check := object.Check(0, dy, tags.ResolvSolid, tags.ResolvPlatform); check != nil {
		for _, o := range check.ObjectsByTags(tags.ResolvSolid, tags.ResolvPlatform) {
			if !spansOverlap(object.X, object.W, o.X, o.W) {
				continue
			}
			bottom := object.Y + object.H
			switch {
			case dy > 0 && o.HasTags(tags.ResolvSolid) && bottom <= o.Y:
				if d := o.Y - bottom; d < allowed {
					allowed = d
					landed = true
				}
			case dy > 0 && o.HasTags(tags.ResolvPlatform) && bottom <= o.Y+platformTolerance:
				if d := o.Y - bottom; d < allowed {
					allowed = d
					landed = true
				}
			case dy < 0 && o.HasTags(tags.ResolvSolid) && object.Y >= o.Y+o.H:
				if d := o.Y + o.H - object.Y; d > allowed {
					allowed = d
				}
			}
		}
	}

	if allowed != dy {
		physics.SpeedY = 0
	}
	if landed {
		physics.OnGround = true
	}
	object.Y += allowed
	object.Update()
}

// spansOverlap reports whether [a, a+al) and [b, b+bl) share any length.
func spansOverlap(a, al, b, bl float64) bool {
	return a < b+bl && b < a+al
}

// rectsOverlap reports whether two objects overlap with positive area.
func rectsOverlap(a, b *resolv.Object) bool {
	return spansOverlap(a.X, a.W, b.X, b.W) && spansOverlap(a.Y, a.H, b.Y, b.H)
}
