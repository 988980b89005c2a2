package systems

import (
	"log"

	"github.com/automoto/skyhop/components"
	cfg "github.com/automoto/skyhop/config"
	"github.com/automoto/skyhop/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// OnHazardTrigger kills a player that touches a trap, dead zone or lethal enemy.
func OnHazardTrigger(w donburi.World, ev TriggerEvent) {
	if !ev.Entered || !ev.Entry.HasComponent(tags.Player) {
		return
	}
	switch ev.Tag {
	case tags.ResolvTrap, tags.ResolvDeadZone:
		KillPlayer(w, ev.Entry, ev.Tag)
	case tags.ResolvEnemy:
		enemyEntry, ok := entryOf(ev.Other)
		if !ok || !enemyEntry.HasComponent(components.Enemy) {
			return
		}
		if components.Enemy.Get(enemyEntry).Lethal {
			KillPlayer(w, ev.Entry, ev.Tag)
		}
	}
}

// KillPlayer starts the death sequence. With no respawn delay the player is
// relocated before this returns.
func KillPlayer(w donburi.World, e *donburi.Entry, cause string) {
	if e.HasComponent(components.Death) {
		return
	}
	log.Printf("Player died: %s", cause)
	Died.Publish(w, DiedEvent{Entry: e, Cause: cause})
	TriggerScreenShake(w, cfg.Camera.DeathShakeIntensity, cfg.Camera.DeathShakeDuration)

	if cfg.Player.RespawnDelay <= 0 {
		RespawnPlayer(w, e)
		return
	}

	physics := components.Physics.Get(e)
	physics.SpeedX = 0
	physics.SpeedY = 0
	donburi.Add(e, components.Death, &components.DeathData{
		Timer: cfg.Player.RespawnDelay,
		Cause: cause,
	})
}

// UpdateDeaths counts down pending respawns.
func UpdateDeaths(ecs *ecs.ECS) {
	dt := cfg.C.TickDelta()
	var ready []*donburi.Entry
	components.Death.Each(ecs.World, func(e *donburi.Entry) {
		death := components.Death.Get(e)
		death.Timer -= dt
		if death.Timer <= bufferSlack {
			ready = append(ready, e)
		}
	})
	// Removing components changes archetypes, so it happens outside Each.
	for _, e := range ready {
		donburi.Remove[components.DeathData](e, components.Death)
		RespawnPlayer(ecs.World, e)
	}
}

// RespawnPlayer disables physics, resets the run timer, re-enables physics
// and moves the player to its stored respawn position.
func RespawnPlayer(w donburi.World, e *donburi.Entry) {
	physics := components.Physics.Get(e)
	respawn := components.Respawn.Get(e)

	physics.Static = true
	ResetTimer(w)
	physics.Static = false

	resetPlayerAtPosition(w, e, respawn.X, respawn.Y)

	Respawned.Publish(w, RespawnedEvent{Entry: e, X: respawn.X, Y: respawn.Y})
}

func resetPlayerAtPosition(w donburi.World, e *donburi.Entry, x, y float64) {
	obj := components.Object.Get(e)
	obj.X = x
	obj.Y = y
	obj.Update()

	physics := components.Physics.Get(e)
	physics.SpeedX = 0
	physics.SpeedY = 0
	physics.Braking = false
	physics.OnGround = false

	dash := components.AirDash.Get(e)
	if dash.Active {
		physics.GravityScale = dash.SavedGravityScale
	}
	dash.Active = false
	dash.Remaining = 0
	dash.Available = true

	buffer := components.JumpBuffer.Get(e)
	buffer.Pending = false
	buffer.Elapsed = 0

	player := components.Player.Get(e)
	player.DirectionLocked = false
	player.LockedSpeedX = 0
	player.AirJumpsLeft = cfg.Player.AirJumps

	ground := components.GroundSensor.Get(e)
	ground.Grounded = false
	ground.WasGrounded = false
	ground.Entered = false
	ground.Exited = false

	setState(w, e, cfg.Idle)
}
