package components

import (
	"github.com/yohamta/donburi"
)

// Vector represents a 2D vector.
type Vector struct {
	X, Y float64
}

// PhysicsData holds a body's velocity in pixels per second.
type PhysicsData struct {
	SpeedX       float64
	SpeedY       float64
	Gravity      float64
	GravityScale float64
	MaxFallSpeed float64

	// Static disables integration and collision response.
	Static bool
	// Braking is set by the controller when friction should decay SpeedX.
	Braking bool
	// Flying bodies ignore gravity and solid collision.
	Flying bool

	OnGround bool
}

var Physics = donburi.NewComponentType[PhysicsData]()
