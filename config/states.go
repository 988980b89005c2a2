package config

// StateID identifies a character movement state.
type StateID int

const (
	StateNone StateID = iota - 1

	Idle
	Walking
	Running
	Jumping
	DoubleJumping
	AirDashing

	// Enemy states
	EnemyWaiting
	EnemyChasing
	EnemyHolding
)

var stateNames = map[StateID]string{
	StateNone:     "None",
	Idle:          "Idle",
	Walking:       "Walking",
	Running:       "Running",
	Jumping:       "Jumping",
	DoubleJumping: "DoubleJumping",
	AirDashing:    "AirDashing",
	EnemyWaiting:  "Waiting",
	EnemyChasing:  "Chasing",
	EnemyHolding:  "Holding",
}

func (s StateID) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "Unknown"
}

// Airborne reports whether the state only occurs off the ground.
func (s StateID) Airborne() bool {
	return s == Jumping || s == DoubleJumping || s == AirDashing
}
