package components

import "github.com/yohamta/donburi"

// GroundSensorData is a circle probe at the character's feet.
type GroundSensorData struct {
	OffsetX float64
	OffsetY float64
	Radius  float64
	Mask    []string

	Grounded    bool
	WasGrounded bool
	// Entered and Exited are true only on the frame the value flips.
	Entered bool
	Exited  bool
	// Contacts is the number of overlapping colliders, for debugging only.
	Contacts int
}

var GroundSensor = donburi.NewComponentType[GroundSensorData]()
