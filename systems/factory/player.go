package factory

import (
	"github.com/automoto/skyhop/archetypes"
	"github.com/automoto/skyhop/components"
	cfg "github.com/automoto/skyhop/config"
	"github.com/automoto/skyhop/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns a player whose collision box has its top-left corner
// at x, y. The spawn point is also the first respawn position.
func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	w := float64(cfg.Player.CollisionWidth)
	h := float64(cfg.Player.CollisionHeight)
	obj := resolv.NewObject(x, y, w, h)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.AddTags("character", tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	ground := components.GroundSensorData{
		OffsetX: cfg.Ground.OffsetX,
		OffsetY: cfg.Ground.OffsetY,
		Radius:  cfg.Ground.Radius,
		Mask:    append([]string(nil), cfg.Ground.Mask...),
	}
	components.GroundSensor.SetValue(player, ground)

	r := ground.Radius
	probe := resolv.NewObject(x+w/2+ground.OffsetX-r, y+h+ground.OffsetY-r, r*2, r*2, tags.ResolvProbe)
	probe.Data = player
	components.Probe.SetValue(player, components.ProbeData{Object: probe})
	addToSpace(ecs, probe)

	components.Player.SetValue(player, components.PlayerData{
		Facing:       cfg.DirectionRight,
		AirJumpsLeft: cfg.Player.AirJumps,
	})
	components.State.SetValue(player, components.StateData{
		CurrentState:  cfg.Idle,
		PreviousState: cfg.StateNone,
		StateTimer:    0,
	})
	components.Physics.SetValue(player, components.PhysicsData{
		Gravity:      cfg.Physics.Gravity,
		GravityScale: cfg.Player.GravityScale,
		MaxFallSpeed: cfg.Physics.MaxFallSpeed,
	})
	components.AirDash.SetValue(player, components.AirDashData{
		Available: true,
	})
	components.Respawn.SetValue(player, components.RespawnData{
		X: x,
		Y: y,
	})
	components.TriggerContacts.SetValue(player, components.TriggerContactsData{
		Touching: map[*resolv.Object]bool{},
	})

	return player
}
