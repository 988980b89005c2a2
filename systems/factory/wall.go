package factory

import (
	"github.com/automoto/skyhop/archetypes"
	"github.com/automoto/skyhop/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateWall(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)
	addToSpace(ecs, newRegion(wall, x, y, w, h, tags.ResolvSolid))
	return wall
}
