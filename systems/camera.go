package systems

import (
	"math"

	"github.com/automoto/skyhop/components"
	"github.com/automoto/skyhop/config"
	"github.com/automoto/skyhop/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	playerObject := components.Object.Get(playerEntry)
	playerData := components.Player.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	if levelData.CurrentLevel == nil {
		return
	}

	// Only update look-ahead when player is moving - freeze offset when idle
	if math.Abs(physics.SpeedX) > config.Camera.LookAheadSpeedThreshold {
		targetLookAhead := playerData.Facing * config.Camera.LookAheadDistanceX
		camera.LookAheadX += (targetLookAhead - camera.LookAheadX) * config.Camera.LookAheadSmoothing
	}

	targetX := playerObject.X + playerObject.W/2 + camera.LookAheadX
	targetY := playerObject.Y + playerObject.H/2

	screenWidth := float64(config.C.Width)
	screenHeight := float64(config.C.Height)
	levelWidth := float64(levelData.CurrentLevel.Width)
	levelHeight := float64(levelData.CurrentLevel.Height)

	// Keep the level filling the screen
	targetX = clampAxis(targetX, screenWidth/2, levelWidth-screenWidth/2)
	targetY = clampAxis(targetY, screenHeight/2, levelHeight-screenHeight/2)

	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowSmoothing

	updateScreenShake(camera, config.C.TickDelta())
}

// clampAxis is clamp for levels smaller than the screen, where the
// bounds cross and the camera centers on the level.
func clampAxis(v, lo, hi float64) float64 {
	if lo > hi {
		return (lo + hi) / 2
	}
	return clamp(v, lo, hi)
}

// updateScreenShake offsets the camera by a decaying oscillation.
func updateScreenShake(camera *components.CameraData, dt float64) {
	if camera.ShakeDuration <= 0 {
		return
	}
	camera.ShakeElapsed += dt

	progress := 1 - camera.ShakeElapsed/camera.ShakeDuration
	if progress < 0 {
		progress = 0
	}
	intensity := camera.ShakeIntensity * progress
	frame := camera.ShakeElapsed * float64(config.C.TPS)

	camera.Position.X += math.Sin(frame*1.1) * intensity
	camera.Position.Y += math.Cos(frame*1.3) * intensity

	if camera.ShakeElapsed >= camera.ShakeDuration {
		camera.ShakeIntensity = 0
		camera.ShakeDuration = 0
		camera.ShakeElapsed = 0
	}
}

// TriggerScreenShake starts a shake lasting duration seconds. A weaker shake
// does not replace a running one.
func TriggerScreenShake(w donburi.World, intensity, duration float64) {
	cameraEntry, ok := components.Camera.First(w)
	if !ok || duration <= 0 {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	if camera.ShakeDuration > 0 && intensity <= camera.ShakeIntensity {
		return
	}
	camera.ShakeIntensity = intensity
	camera.ShakeDuration = duration
	camera.ShakeElapsed = 0
}
