package components

import "github.com/yohamta/donburi"

// DeathData marks a player waiting to respawn. Timer counts down in
// seconds; the player is relocated when it reaches 0.
type DeathData struct {
	Timer float64
	Cause string
}

var Death = donburi.NewComponentType[DeathData]()

// HazardData marks a collider that kills on contact.
type HazardData struct {
	Kind string
}

var Hazard = donburi.NewComponentType[HazardData]()
