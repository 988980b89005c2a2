package systems

import (
	"github.com/automoto/skyhop/components"
	cfg "github.com/automoto/skyhop/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls raw input and updates the Input component.
// Must run BEFORE UpdatePlayerInput in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs.World)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	input.Axis = 0

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
				}
			}
		}
	}

	input.Axis = analogAxis(gamepadIDs)
}

// analogAxis returns the first left stick deflection outside the deadzone.
func analogAxis(gamepads []ebiten.GamepadID) float64 {
	deadzone := cfg.Input.AnalogDeadzone
	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		h := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if h < -deadzone || h > deadzone {
			return clamp(h, -1, 1)
		}
	}
	return 0
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(w donburi.World) *components.InputData {
	entry, ok := components.Input.First(w)
	if !ok {
		// Zero-value InputData is correct (all bools false)
		entry = w.Entry(w.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed is derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:     curr,
		JustPressed: curr && !prev,
	}
}

// UpdatePlayerInput copies this frame's sample into every player.
func UpdatePlayerInput(ecs *ecs.ECS) {
	sample := SampleInput(getOrCreateInput(ecs.World))
	components.PlayerInput.Each(ecs.World, func(entry *donburi.Entry) {
		components.PlayerInput.Get(entry).Sample = sample
	})
}

// SampleInput reduces action state to what the movement controller reads.
// Digital directions give -1, 0 or 1; an analog stick overrides them.
func SampleInput(input *components.InputData) components.InputSample {
	var axis float64
	if GetAction(input, cfg.ActionMoveLeft).Pressed {
		axis--
	}
	if GetAction(input, cfg.ActionMoveRight).Pressed {
		axis++
	}
	if input.Axis != 0 {
		axis = input.Axis
	}
	return components.InputSample{
		Axis:        axis,
		JumpPressed: GetAction(input, cfg.ActionJump).JustPressed,
		DashPressed: GetAction(input, cfg.ActionDash).JustPressed,
		RunHeld:     GetAction(input, cfg.ActionRun).Pressed,
	}
}
