package factory

import (
	"github.com/automoto/skyhop/archetypes"
	"github.com/automoto/skyhop/components"
	"github.com/automoto/skyhop/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateDeadZone creates an invisible collision zone that triggers death when touched
func CreateDeadZone(ecs *ecs.ECS, x, y, w, h float64) *resolv.Object {
	obj := resolv.NewObject(x, y, w, h, tags.ResolvDeadZone)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	addToSpace(ecs, obj)
	return obj
}

// CreateTrap creates a visible hazard such as a spike strip.
func CreateTrap(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	trap := archetypes.Trap.Spawn(ecs)
	addToSpace(ecs, newRegion(trap, x, y, w, h, tags.ResolvTrap))
	components.Hazard.SetValue(trap, components.HazardData{Kind: tags.ResolvTrap})
	return trap
}
