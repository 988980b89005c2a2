package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Facing float64 // -1 or 1

	// DirectionLocked pins SpeedX to LockedSpeedX until the next landing.
	DirectionLocked bool
	LockedSpeedX    float64

	AirJumpsLeft int

	// Opponent, when set, is the entry the player turns to face.
	Opponent *donburi.Entry

	// Disabled players failed setup validation and are skipped.
	Disabled bool
}

var Player = donburi.NewComponentType[PlayerData]()

// JumpBufferData remembers a jump pressed while airborne.
type JumpBufferData struct {
	Pending bool
	Elapsed float64
}

var JumpBuffer = donburi.NewComponentType[JumpBufferData]()

// AirDashData tracks the once-per-airborne-period dash.
type AirDashData struct {
	Available         bool
	Active            bool
	Remaining         float64
	SavedGravityScale float64
	Direction         float64
}

var AirDash = donburi.NewComponentType[AirDashData]()
