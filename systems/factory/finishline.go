package factory

import (
	"github.com/automoto/skyhop/archetypes"
	"github.com/automoto/skyhop/components"
	"github.com/automoto/skyhop/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateFinishLine creates a finish line entity with collision detection
func CreateFinishLine(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	finishLine := archetypes.FinishLine.Spawn(ecs)
	addToSpace(ecs, newRegion(finishLine, x, y, w, h, tags.ResolvFinishLine))
	components.FinishLine.SetValue(finishLine, components.FinishLineData{
		Activated: false,
	})
	return finishLine
}
