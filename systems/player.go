package systems

import (
	"log"
	"math"

	"github.com/automoto/skyhop/components"
	cfg "github.com/automoto/skyhop/config"
	"github.com/automoto/skyhop/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// bufferSlack absorbs float drift from summing fixed steps.
const bufferSlack = 1e-9

// UpdatePlayer runs the movement controller for every player.
// Must run after UpdateGroundSensors and before UpdatePhysics.
func UpdatePlayer(ecs *ecs.ECS) {
	dt := cfg.C.TickDelta()
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		if !controllable(e) {
			return
		}
		in := components.PlayerInput.Get(e).Sample
		stepPlayer(ecs.World, e, in, dt)
	})
}

// controllable reports whether e has everything the controller touches and
// is not waiting to respawn.
func controllable(e *donburi.Entry) bool {
	if !e.HasComponent(components.Player) || components.Player.Get(e).Disabled {
		return false
	}
	if e.HasComponent(components.Death) {
		return false
	}
	for _, c := range []donburi.IComponentType{
		components.Physics,
		components.State,
		components.GroundSensor,
		components.JumpBuffer,
		components.AirDash,
		components.PlayerInput,
	} {
		if !e.HasComponent(c) {
			return false
		}
	}
	return !components.Physics.Get(e).Static
}

// stepPlayer applies one frame of input in the fixed order: buffer aging,
// landing, dash countdown, ledge fall, jump request, dash request, then
// horizontal movement.
func stepPlayer(w donburi.World, e *donburi.Entry, in components.InputSample, dt float64) {
	player := components.Player.Get(e)
	physics := components.Physics.Get(e)
	state := components.State.Get(e)
	ground := components.GroundSensor.Get(e)
	buffer := components.JumpBuffer.Get(e)
	dash := components.AirDash.Get(e)
	tuning := cfg.Player

	in.Axis = clamp(in.Axis, -1, 1)

	ageJumpBuffer(buffer, dt, tuning.JumpBufferWindow)

	jumped := false
	landed := ground.Entered || settled(ground, physics, state)
	if landed {
		if dash.Active {
			endAirDash(w, e)
		}
		land(w, e)
		if buffer.Pending {
			buffer.Pending = false
			jump(w, e, in.Axis, true)
			jumped = true
		}
	} else if dash.Active {
		advanceAirDash(w, e, dt)
		return
	}

	if !ground.Grounded && !jumped && !state.CurrentState.Airborne() {
		// Walked off a ledge, or spawned in the air
		setState(w, e, cfg.Jumping)
	}

	if in.JumpPressed && !jumped {
		switch {
		case ground.Grounded && !state.CurrentState.Airborne():
			jump(w, e, in.Axis, false)
			jumped = true
		case !ground.Grounded && player.AirJumpsLeft > 0:
			player.AirJumpsLeft--
			airJump(w, e, in.Axis)
			jumped = true
		case !ground.Grounded:
			buffer.Pending = true
			buffer.Elapsed = 0
		}
	}

	if in.DashPressed && !ground.Grounded && dash.Available && !dash.Active {
		startAirDash(w, e, in.Axis)
		return
	}

	moveHorizontal(w, e, in, landed || jumped)

	updateFacing(e)

	if cfg.Debug.Verbose {
		log.Printf("player vx=%.2f vy=%.2f state=%s grounded=%t", physics.SpeedX, physics.SpeedY, state.CurrentState, ground.Grounded)
	}
}

// settled reports an airborne body that came back to rest without the probe
// ever leaving the ground, as after a hop under a low ceiling.
func settled(ground *components.GroundSensorData, physics *components.PhysicsData, state *components.StateData) bool {
	return ground.Grounded && state.CurrentState.Airborne() && physics.OnGround && physics.SpeedY >= 0
}

// ageJumpBuffer discards a pending jump once it is older than window.
func ageJumpBuffer(buffer *components.JumpBufferData, dt, window float64) {
	if !buffer.Pending {
		return
	}
	buffer.Elapsed += dt
	if buffer.Elapsed > window+bufferSlack {
		buffer.Pending = false
		buffer.Elapsed = 0
	}
}

// land resets everything that is restored by touching the ground.
func land(w donburi.World, e *donburi.Entry) {
	player := components.Player.Get(e)
	dash := components.AirDash.Get(e)

	player.DirectionLocked = false
	player.LockedSpeedX = 0
	player.AirJumpsLeft = cfg.Player.AirJumps
	dash.Available = true

	setState(w, e, cfg.Idle)
}

// jump zeroes vertical speed, applies the impulse and pins horizontal
// speed until the next landing.
func jump(w donburi.World, e *donburi.Entry, axis float64, buffered bool) {
	player := components.Player.Get(e)
	physics := components.Physics.Get(e)
	buffer := components.JumpBuffer.Get(e)

	physics.SpeedY = 0
	physics.SpeedY -= cfg.Player.JumpImpulse
	physics.Braking = false

	player.DirectionLocked = true
	player.LockedSpeedX = axis * cfg.Player.AirSpeed
	physics.SpeedX = player.LockedSpeedX

	buffer.Pending = false
	buffer.Elapsed = 0

	setState(w, e, cfg.Jumping)
	Jumped.Publish(w, JumpedEvent{Entry: e, Buffered: buffered})
}

// airJump is a jump from mid-air; it re-pins horizontal speed to the
// current input.
func airJump(w donburi.World, e *donburi.Entry, axis float64) {
	player := components.Player.Get(e)
	physics := components.Physics.Get(e)

	physics.SpeedY = 0
	physics.SpeedY -= cfg.Player.JumpImpulse

	player.DirectionLocked = true
	player.LockedSpeedX = axis * cfg.Player.AirSpeed
	physics.SpeedX = player.LockedSpeedX

	setState(w, e, cfg.DoubleJumping)
	Jumped.Publish(w, JumpedEvent{Entry: e, AirJump: true})
}

func startAirDash(w donburi.World, e *donburi.Entry, axis float64) {
	player := components.Player.Get(e)
	physics := components.Physics.Get(e)
	dash := components.AirDash.Get(e)

	dir := sign(axis)
	speed := axis * cfg.Player.DashSpeed
	if dir == 0 {
		dir = player.Facing
		speed = dir * cfg.Player.DashSpeed
	}

	dash.Active = true
	dash.Available = false
	dash.Remaining = cfg.Player.DashDuration
	dash.SavedGravityScale = physics.GravityScale
	dash.Direction = dir

	physics.GravityScale = 0
	physics.SpeedY = 0
	physics.SpeedX = speed
	physics.Braking = false

	setState(w, e, cfg.AirDashing)
	AirDashed.Publish(w, AirDashedEvent{Entry: e, Direction: dir})
}

// advanceAirDash holds the dash velocity and ends it once the duration runs out.
func advanceAirDash(w donburi.World, e *donburi.Entry, dt float64) {
	dash := components.AirDash.Get(e)
	physics := components.Physics.Get(e)

	dash.Remaining -= dt
	physics.SpeedY = 0
	if dash.Remaining <= bufferSlack {
		endAirDash(w, e)
	}
}

// endAirDash restores gravity and stops horizontal motion.
func endAirDash(w donburi.World, e *donburi.Entry) {
	dash := components.AirDash.Get(e)
	if !dash.Active {
		return
	}
	player := components.Player.Get(e)
	physics := components.Physics.Get(e)
	ground := components.GroundSensor.Get(e)

	dash.Active = false
	dash.Remaining = 0
	physics.GravityScale = dash.SavedGravityScale
	physics.SpeedX = 0
	if player.DirectionLocked {
		player.LockedSpeedX = 0
	}

	if ground.Grounded {
		setState(w, e, cfg.Idle)
	} else {
		setState(w, e, cfg.Jumping)
	}
	DashEnded.Publish(w, DashEndedEvent{Entry: e})
}

// moveHorizontal sets SpeedX from input. Grounded state transitions are
// skipped on frames where an edge or jump already decided the state.
func moveHorizontal(w donburi.World, e *donburi.Entry, in components.InputSample, edgeFrame bool) {
	player := components.Player.Get(e)
	physics := components.Physics.Get(e)
	state := components.State.Get(e)

	if state.CurrentState.Airborne() {
		physics.Braking = false
		if player.DirectionLocked {
			physics.SpeedX = player.LockedSpeedX
		} else {
			physics.SpeedX = in.Axis * cfg.Player.AirSpeed
		}
		return
	}

	if in.Axis == 0 {
		physics.Braking = true
		if !edgeFrame {
			setState(w, e, cfg.Idle)
		}
		return
	}

	physics.Braking = false
	speed := cfg.Player.WalkSpeed
	next := cfg.Walking
	if in.RunHeld {
		speed = cfg.Player.RunSpeed
		next = cfg.Running
	}
	physics.SpeedX = in.Axis * speed
	if !edgeFrame {
		setState(w, e, next)
	}
}

// updateFacing turns toward the opponent when one is set, otherwise toward
// the direction of travel.
func updateFacing(e *donburi.Entry) {
	player := components.Player.Get(e)
	physics := components.Physics.Get(e)

	if opp := player.Opponent; opp != nil && opp.Valid() && opp.HasComponent(components.Object) {
		self := components.Object.Get(e)
		other := components.Object.Get(opp)
		if dir := sign((other.X + other.W/2) - (self.X + self.W/2)); dir != 0 {
			player.Facing = dir
		}
		return
	}

	if dir := sign(physics.SpeedX); dir != 0 {
		player.Facing = dir
	}
}

// ApplyFriction decays v toward zero at rate decay. Speeds within eps are
// returned unchanged.
func ApplyFriction(v, decay, eps, dt float64) float64 {
	if math.Abs(v) <= eps {
		return v
	}
	t := decay * dt
	if t > 1 {
		t = 1
	}
	return v + (0-v)*t
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
