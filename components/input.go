package components

import (
	cfg "github.com/automoto/skyhop/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed     bool // Currently held down
	JustPressed bool // Pressed this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed is computed on-demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
	Axis     float64 // analog horizontal axis, 0 when no stick is deflected
}

var Input = donburi.NewComponentType[InputData]()

// InputSample is what a character's controller reads each frame.
type InputSample struct {
	Axis        float64 // [-1, 1]
	JumpPressed bool
	DashPressed bool
	RunHeld     bool
}

// PlayerInputData is the sample for the current frame.
type PlayerInputData struct {
	Sample InputSample
}

var PlayerInput = donburi.NewComponentType[PlayerInputData]()
