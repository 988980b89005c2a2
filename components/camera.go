package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position   math.Vec2
	LookAheadX float64

	// Shake is a decaying offset started on player death.
	ShakeIntensity float64
	ShakeDuration  float64
	ShakeElapsed   float64
}

var Camera = donburi.NewComponentType[CameraData]()
