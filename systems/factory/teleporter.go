package factory

import (
	"github.com/automoto/skyhop/archetypes"
	"github.com/automoto/skyhop/components"
	"github.com/automoto/skyhop/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateTeleporter creates a region that moves the player to destX, destY.
func CreateTeleporter(ecs *ecs.ECS, x, y, w, h float64, name string, destX, destY float64) *donburi.Entry {
	teleporter := archetypes.Teleporter.Spawn(ecs)
	addToSpace(ecs, newRegion(teleporter, x, y, w, h, tags.ResolvTeleporter))
	components.Teleporter.SetValue(teleporter, components.TeleporterData{
		DestX: destX,
		DestY: destY,
		Name:  name,
	})
	return teleporter
}
